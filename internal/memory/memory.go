// Package memory provides an in-memory transaction store, used as the
// default development backend and by tests.
package memory

import (
	"context"
	"sync"

	"financas/internal/core"
)

type Store struct {
	mu        sync.Mutex
	nextID    int64
	items     []core.Transaction
	portfolio core.Money
}

func New() *Store {
	return &Store{nextID: 1}
}

// NewWith seeds the store with the given records, assigning ids to any
// that lack one. Invalid seeds are rejected the same way Save rejects them.
func NewWith(seed []core.Transaction) (*Store, error) {
	s := New()
	for _, t := range seed {
		if _, err := s.Save(context.Background(), t); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// GetAll returns a snapshot of the whole collection. Order is not
// meaningful; callers sort for display themselves.
func (s *Store) GetAll(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.items...), nil
}

// Save upserts the record. A zero ID means creation and is assigned a new
// unique id; a known ID replaces that record wholesale; an unknown
// nonzero ID is a benign no-op, like Delete and ToggleStatus on absent
// ids. The record is validated and normalized before it enters the
// collection.
func (s *Store) Save(_ context.Context, t core.Transaction) (core.Transaction, error) {
	t = t.Normalized()
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == 0 {
		t.ID = s.nextID
		s.nextID++
		s.items = append(s.items, t)
		return t, nil
	}

	for i := range s.items {
		if s.items[i].ID == t.ID {
			s.items[i] = t
			return t, nil
		}
	}
	// Edit against an id that no longer exists: drop it silently, the
	// UI may race a delete.
	return t, nil
}

// Delete removes the record with the given id. Absent ids are a benign
// no-op: the UI may race a stale reference.
func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// ToggleStatus flips IsPaid on the record with the given id; no-op when
// absent. Investments are skipped: their IsPaid stays true.
func (s *Store) ToggleStatus(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			if s.items[i].Type == core.Investment {
				return nil
			}
			s.items[i].IsPaid = !s.items[i].IsPaid
			return nil
		}
	}
	return nil
}

// PortfolioValue returns the last stored snapshot, zero when never set.
func (s *Store) PortfolioValue(_ context.Context) (core.Money, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.portfolio, nil
}

// SetPortfolioValue overwrites the snapshot wholesale.
func (s *Store) SetPortfolioValue(_ context.Context, v core.Money) error {
	if v.Cents < 0 {
		return core.ErrInvalidAmount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.portfolio = v
	return nil
}
