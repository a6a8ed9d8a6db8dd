package repository

import (
	"context"
	"fmt"
	"sync"
)

// MemStateStore is a map-backed StateStore. It backs tests and any embedding
// that does not want a database on disk.
type MemStateStore struct {
	mu     sync.Mutex
	data   map[string][]byte
	nextID int
	subs   map[int]func(string)
}

// NewMemStateStore creates an empty in-memory state store.
func NewMemStateStore() *MemStateStore {
	return &MemStateStore{
		data: make(map[string][]byte),
		subs: make(map[int]func(string)),
	}
}

func (m *MemStateStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	if !ok {
		return nil, fmt.Errorf("state key %q: %w", key, ErrNotFound)
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *MemStateStore) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	m.mu.Unlock()
	m.notify(key)
	return nil
}

func (m *MemStateStore) SetBatch(ctx context.Context, entries map[string][]byte) error {
	m.mu.Lock()
	for key, value := range entries {
		stored := make([]byte, len(value))
		copy(stored, value)
		m.data[key] = stored
	}
	m.mu.Unlock()
	for key := range entries {
		m.notify(key)
	}
	return nil
}

func (m *MemStateStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	m.notify(key)
	return nil
}

func (m *MemStateStore) Keys(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	return keys, nil
}

func (m *MemStateStore) Subscribe(fn func(key string)) (cancel func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

func (m *MemStateStore) notify(key string) {
	m.mu.Lock()
	listeners := make([]func(string), 0, len(m.subs))
	for _, fn := range m.subs {
		listeners = append(listeners, fn)
	}
	m.mu.Unlock()
	for _, fn := range listeners {
		fn(key)
	}
}
