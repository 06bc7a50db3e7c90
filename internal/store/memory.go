package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Orrie-Dan/Movasafe-Portal-sub002/internal/model"
)

// MemoryStore implements Store with in-memory storage. Insertion order is
// preserved: risk scoring is sensitive to transaction order, so listings
// must come back in the order transactions arrived.
type MemoryStore struct {
	mu   sync.RWMutex
	txns []model.Transaction
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// AddTransactions appends transactions, assigning an ID to any record
// missing one.
func (s *MemoryStore) AddTransactions(_ context.Context, txns []model.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range txns {
		if t.ID == "" {
			t.ID = uuid.New().String()
		}
		s.txns = append(s.txns, t)
	}
	return nil
}

// ListTransactions returns transactions matching the filter in insertion
// order. When a time window is set, records whose timestamps cannot be
// parsed are excluded, since they cannot be compared against the window.
func (s *MemoryStore) ListTransactions(_ context.Context, filter Filter) ([]model.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Transaction, 0, len(s.txns))
	for _, t := range s.txns {
		if filter.UserID != "" && t.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Type != "" && t.TransactionType != filter.Type {
			continue
		}
		if filter.Start != nil || filter.End != nil {
			ts, err := t.ParseCreatedAt(nil)
			if err != nil {
				continue
			}
			if filter.Start != nil && ts.Before(*filter.Start) {
				continue
			}
			if filter.End != nil && ts.After(*filter.End) {
				continue
			}
		}
		out = append(out, t)
	}
	return out, nil
}
