package cache

import (
	"context"
	"sync"

	"fieldscope/internal/models"
)

// Memory is an in-process store safe for concurrent use. Values are copied
// on both get and put so callers cannot mutate cached entries.
type Memory struct {
	mu      sync.RWMutex
	entries map[string][]models.FieldAssignment
}

func NewMemory() *Memory {
	return &Memory{entries: map[string][]models.FieldAssignment{}}
}

func (m *Memory) Get(ctx context.Context, key string) ([]models.FieldAssignment, bool, error) {
	_ = ctx
	m.mu.RLock()
	defer m.mu.RUnlock()
	fields, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	return models.CloneFields(fields), true, nil
}

func (m *Memory) Put(ctx context.Context, key string, fields []models.FieldAssignment) error {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = models.CloneFields(fields)
	return nil
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
