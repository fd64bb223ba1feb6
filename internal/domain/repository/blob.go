package repository

import "context"

// Keys of the records the dashboard persists.
const (
	KeyPinnedProperties = "pinnedProperties"
	KeyDashboardConfig  = "dashboardConfig"
)

// BlobStore is a durable key-value store of opaque records.
// There is no partial update: every Set replaces the whole record.
type BlobStore interface {
	// Get returns the record for key, or nil if it does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set creates or replaces the record for key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the record for key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}
