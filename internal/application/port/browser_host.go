package port

import (
	"context"

	"github.com/bnema/pinboard/internal/domain/entity"
)

// TabProvider defines the port interface for reading the active tab.
type TabProvider interface {
	// GetCurrentTab returns the active tab, or nil if there is none.
	GetCurrentTab(ctx context.Context) (*entity.Tab, error)
}

// StorageProvider defines the port interface for the page-context
// collaborator that reads and writes web storage inside a tab.
// Calls may fail or hang on pages that do not accept injected scripts.
type StorageProvider interface {
	// LoadStorageByType returns every item of the given storage type.
	// Values are strings, or decoded JSON for structured entries.
	LoadStorageByType(ctx context.Context, tab *entity.Tab, t entity.PropertyType) (map[string]any, error)

	// SetItem writes a storage item.
	SetItem(ctx context.Context, tab *entity.Tab, t entity.PropertyType, key, value string) (entity.OperationResult, error)

	// RemoveItem deletes a storage item.
	RemoveItem(ctx context.Context, tab *entity.Tab, t entity.PropertyType, key string) (entity.OperationResult, error)
}

// CookieProvider defines the port interface for the privileged cookie API.
type CookieProvider interface {
	// GetCookies returns the cookies visible to the tab.
	GetCookies(ctx context.Context, tab *entity.Tab) ([]entity.Cookie, error)

	// SetCookie creates or replaces a cookie for the tab's URL.
	SetCookie(ctx context.Context, tab *entity.Tab, cookie entity.Cookie) (entity.OperationResult, error)

	// DeleteCookie removes a cookie by name, domain and path.
	DeleteCookie(ctx context.Context, tab *entity.Tab, name, domain, path string) (entity.OperationResult, error)
}

// ProbeResult is the reply of a content-script reachability probe.
type ProbeResult struct {
	Success bool
	Ready   bool
}

// ContentProbe checks whether the page-context collaborator can run in a tab.
type ContentProbe interface {
	// Ping reports whether scripts can be evaluated in the tab.
	Ping(ctx context.Context, tab *entity.Tab) (ProbeResult, error)
}

// BrowserHost bundles every collaborator the panel needs from the browser.
type BrowserHost interface {
	TabProvider
	StorageProvider
	CookieProvider
	ContentProbe
}
