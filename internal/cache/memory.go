package cache

import (
	"context"
	"sync"
)

// Memory is the in-process Store backing: a mutex-guarded map. Values are
// overwritten wholesale and never mutated in place, so concurrent readers
// racing a writer see either the old blob or the new one.
type Memory struct {
	mu    sync.RWMutex
	store map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{store: make(map[string][]byte)}
}

func (m *Memory) Has(_ context.Context, key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.store[key]
	return ok
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.store[key]
	return v, ok
}

func (m *Memory) Set(_ context.Context, key string, value []byte) {
	m.mu.Lock()
	m.store[key] = value
	m.mu.Unlock()
}

func (m *Memory) Delete(_ context.Context, keys ...string) {
	m.mu.Lock()
	for _, k := range keys {
		delete(m.store, k)
	}
	m.mu.Unlock()
}
