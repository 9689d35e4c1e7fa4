package store

import (
	"context"
	"sync"
)

type memoryKeyValueStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryKeyValueStorage returns a process-local [KeyValueStorage]. Nothing
// survives a restart.
func NewMemoryKeyValueStorage() KeyValueStorage {
	return &memoryKeyValueStorage{items: make(map[string]string)}
}

func (m *memoryKeyValueStorage) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.items[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

func (m *memoryKeyValueStorage) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	m.items[key] = value
	m.mu.Unlock()
	return nil
}

func (m *memoryKeyValueStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()
	return nil
}
