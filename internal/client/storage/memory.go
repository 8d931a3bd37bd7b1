package storage

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory KVStore used by tests and by runs that do not
// need durability. Safe for concurrent use.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]string)
	return nil
}

// Batch applies fn to a staged copy of the data and swaps it in only if fn
// succeeds, so a failed batch leaves the store untouched.
func (m *MemoryStore) Batch(ctx context.Context, fn func(ctx context.Context, s KVStore) error) error {
	m.mu.Lock()
	staged := NewMemoryStore()
	for k, v := range m.data {
		staged.data[k] = v
	}
	m.mu.Unlock()

	if err := fn(ctx, staged); err != nil {
		return err
	}

	m.mu.Lock()
	m.data = staged.data
	m.mu.Unlock()
	return nil
}
