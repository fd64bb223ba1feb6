// Package memory provides an in-process blob store for tests and
// ephemeral sessions.
package memory

import (
	"bytes"
	"context"
	"sync"

	"github.com/bnema/pinboard/internal/domain/repository"
)

// BlobStore keeps records in a map. Values are copied on the way in and out.
type BlobStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewBlobStore creates an empty store.
func NewBlobStore() *BlobStore {
	return &BlobStore{records: make(map[string][]byte)}
}

var _ repository.BlobStore = (*BlobStore)(nil)

func (s *BlobStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.records[key]
	if !ok {
		return nil, nil
	}
	return bytes.Clone(v), nil
}

func (s *BlobStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[key] = bytes.Clone(value)
	return nil
}

func (s *BlobStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, key)
	return nil
}
