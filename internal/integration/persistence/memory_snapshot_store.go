// Package persistence implements the snapshot stores and the in-memory
// profile repository.
package persistence

import (
	"context"
	"sync"

	"github.com/gap-tools/financial-tracker-backend/internal/application/adapter"
	domainerror "github.com/gap-tools/financial-tracker-backend/internal/domain/error"
)

// memorySnapshotStore implements adapter.SnapshotStore in process memory.
// Used when no database or redis is reachable, and by tests.
type memorySnapshotStore struct {
	mu   sync.Mutex
	docs map[string][]byte
}

// NewMemorySnapshotStore creates a new in-memory snapshot store.
func NewMemorySnapshotStore() adapter.SnapshotStore {
	return &memorySnapshotStore{docs: make(map[string][]byte)}
}

// Put stores the payload under the key.
func (s *memorySnapshotStore) Put(_ context.Context, key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(payload))
	copy(buf, payload)
	s.docs[key] = buf
	return nil
}

// Get returns the payload stored under the key.
func (s *memorySnapshotStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, ok := s.docs[key]
	if !ok {
		return nil, domainerror.ErrSnapshotNotFound
	}
	return payload, nil
}

// Delete removes the document stored under the key, if any.
func (s *memorySnapshotStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, key)
	return nil
}
