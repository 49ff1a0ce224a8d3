package storage

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-deck/pkg/storage"
)

type memoryPort struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryPort constructs an in-memory key/value port. It is safe for
// concurrent use and is the default backend for tests and ephemeral runs.
func NewMemoryPort() storage.Port {
	return &memoryPort{entries: make(map[string][]byte)}
}

func (m *memoryPort) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.entries[key]
	if !ok {
		return nil, storage.ErrKeyNotFound
	}
	return cloneValue(value), nil
}

func (m *memoryPort) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = cloneValue(value)
	return nil
}

func (m *memoryPort) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}

func (m *memoryPort) Keys(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.entries))
	for key := range m.entries {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *memoryPort) Apply(_ context.Context, ops []storage.Op) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, op := range ops {
		if op.Delete {
			delete(m.entries, op.Key)
			continue
		}
		m.entries[op.Key] = cloneValue(op.Value)
	}
	return nil
}

func cloneValue(value []byte) []byte {
	if value == nil {
		return nil
	}
	cloned := make([]byte, len(value))
	copy(cloned, value)
	return cloned
}
