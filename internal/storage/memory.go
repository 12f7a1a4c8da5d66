package storage

import (
	"context"
	"sync"

	"debenture/internal/debenture"
)

// MemoryStore is a process-local debenture.Store.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[debenture.FieldKey][]byte
}

var _ debenture.BatchStore = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[debenture.FieldKey][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key debenture.FieldKey) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *MemoryStore) Set(_ context.Context, key debenture.FieldKey, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryStore) SetBatch(_ context.Context, entries []debenture.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entries {
		s.entries[e.Key] = append([]byte(nil), e.Value...)
	}
	return nil
}

// Len returns the number of stored fields.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// MemoryProvider hands out one MemoryStore per contract ID.
type MemoryProvider struct {
	mu     sync.Mutex
	stores map[string]*MemoryStore
}

// NewMemoryProvider creates an empty provider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{stores: make(map[string]*MemoryStore)}
}

func (p *MemoryProvider) ForContract(contractID string) debenture.Store {
	p.mu.Lock()
	defer p.mu.Unlock()
	st, ok := p.stores[contractID]
	if !ok {
		st = NewMemoryStore()
		p.stores[contractID] = st
	}
	return st
}

func (p *MemoryProvider) Backend() string { return BackendMemory }

func (p *MemoryProvider) Close() error { return nil }
