package store

import (
	"context"
	"maps"
	"slices"
	"sync"
)

// Memory keeps options in process memory.
type Memory struct {
	mu     sync.RWMutex
	values map[string]any
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]any)}
}

func (m *Memory) Get(ctx context.Context, key string, def any) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return def, nil
}

func (m *Memory) Set(ctx context.Context, key string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

func (m *Memory) Keys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	return sortKeys(slices.Collect(maps.Keys(m.values))), nil
}

func (m *Memory) Close() error {
	return nil
}
