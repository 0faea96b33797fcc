package once

import (
	"context"
	"sync"
)

// MemoryStore is a Store for single process deployments and tests.
type MemoryStore struct {
	mu   sync.Mutex
	done map[string]bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{done: map[string]bool{}}
}

func (m *MemoryStore) MarkDone(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done[key] {
		return false, nil
	}
	m.done[key] = true
	return true, nil
}
