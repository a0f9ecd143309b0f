package store

import (
	"context"
	"sync"
)

// MemoryStore is a process-local store
type MemoryStore struct {
	mu    sync.Mutex
	score int
	set   bool
	saves int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return 0, ErrNotFound
	}
	return m.score, nil
}

func (m *MemoryStore) Save(ctx context.Context, score int) error {
	if _, err := validate(score); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score, m.set = score, true
	m.saves++
	return nil
}

// Saves counts successful writes
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func (m *MemoryStore) Close() error {
	return nil
}
