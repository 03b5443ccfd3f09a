// Package counter provides CounterStore implementations: a mutex-guarded
// in-memory map, SQLite and MySQL backends, and a failover wrapper that
// degrades remote errors to local counting.
package counter

import (
	"context"
	"sync"
)

// MemoryStore is the in-process CounterStore. It is non-durable and not
// shared across instances, which makes it suitable only for single-instance
// or development operation; it is the fallback when no external store is
// configured.
type MemoryStore struct {
	mu     sync.Mutex
	counts map[string]int64
}

// NewMemoryStore creates an empty in-memory counter store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		counts: make(map[string]int64),
	}
}

// Get retrieves the current counter value, zero for unknown keys
func (s *MemoryStore) Get(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[key], nil
}

// IncrementBy atomically adds n and returns the new value. The mutex is what
// makes concurrent allowance checks on the same key lose no updates.
func (s *MemoryStore) IncrementBy(_ context.Context, key string, n int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[key] += n
	return s.counts[key], nil
}
