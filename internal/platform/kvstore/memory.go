package kvstore

import (
	"context"
	"sync"
)

// MemoryStore provides an in-memory implementation useful for testing and
// local development.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStore constructs an empty memory-backed store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get implements the Store interface.
func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	return value, ok, nil
}

// Set implements the Store interface.
func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Delete implements the Store interface.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
