package store

import (
	"context"
	"sync"

	"ledger/internal/core"
)

// MemoryStore keeps records in an ordered slice guarded by a mutex.
// It is the default backend for single-process use.
type MemoryStore struct {
	mu    sync.Mutex
	items []core.Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Add(_ context.Context, r core.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, r)
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]core.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Record(nil), s.items...), nil
}

func (s *MemoryStore) Update(_ context.Context, r core.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == r.ID {
			s.items[i] = r
			break
		}
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	// Zero the tail so removed records do not linger in the backing array.
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = core.Record{}
	}
	s.items = kept
	return nil
}

var _ Store = (*MemoryStore)(nil)
