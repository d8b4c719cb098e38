package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is a map-backed adapter used in tests. Documents round-trip
// through JSON so it behaves like the real drivers.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
	sets int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, key string, out interface{}) (bool, error) {
	m.mu.RLock()
	raw, ok := m.docs[key]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	m.mu.Lock()
	m.docs[key] = raw
	m.sets++
	m.mu.Unlock()
	return nil
}

// Writes reports how many Set calls the store has seen. Test helper.
func (m *MemoryStore) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sets
}
