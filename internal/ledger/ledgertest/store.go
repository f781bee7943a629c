// Package ledgertest provides a mutex-guarded in-memory Repository used to
// exercise the engine's concurrency properties without a running document
// store. Each method is atomic under one lock, mirroring the per-document
// atomicity the mongo store gets from conditional updates.
package ledgertest

import (
	"context"
	"sync"

	"github.com/justinjeff517/jefstore-gasstations-backend/internal/ledger"
)

type Store[T ledger.Entry] struct {
	mu    sync.Mutex
	forms []*ledger.Form[T]

	// FailPushes rejects the next n PushAndReturn calls as zero-match
	// lost races.
	FailPushes int
}

func NewStore[T ledger.Entry]() *Store[T] {
	return &Store[T]{}
}

// Seed adds a form document.
func (s *Store[T]) Seed(form *ledger.Form[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.forms = append(s.forms, form)
}

// Form returns the stored form with the given identity.
func (s *Store[T]) Form(id string) (*ledger.Form[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.locate(id)
}

func (s *Store[T]) locate(id string) (*ledger.Form[T], bool) {
	for _, f := range s.forms {
		if f.ID == id {
			return f, true
		}
	}

	return nil, false
}

func snapshot[T ledger.Entry](f *ledger.Form[T]) *ledger.Form[T] {
	c := *f
	c.Items = make([]T, len(f.Items))
	copy(c.Items, f.Items)

	return &c
}

func (s *Store[T]) FindOpen(_ context.Context, limit int64) ([]*ledger.Form[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var open []*ledger.Form[T]

	for _, f := range s.forms {
		if !f.IsEmpty {
			continue
		}

		open = append(open, snapshot(f))
		if int64(len(open)) == limit {
			break
		}
	}

	return open, nil
}

func (s *Store[T]) Reload(_ context.Context, formID string) (*ledger.Form[T], bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.locate(formID)
	if !ok || !f.IsEmpty {
		return nil, false, nil
	}

	return snapshot(f), true, nil
}

func (s *Store[T]) Fetch(_ context.Context, formID string) (*ledger.Form[T], bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.locate(formID)
	if !ok {
		return nil, false, nil
	}

	return snapshot(f), true, nil
}

func (s *Store[T]) PushAndReturn(_ context.Context, formID string, item T) (*ledger.Form[T], bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailPushes > 0 {
		s.FailPushes--
		return nil, false, nil
	}

	f, ok := s.locate(formID)
	if !ok || !f.IsEmpty {
		return nil, false, nil
	}

	for _, it := range f.Items {
		if it.Number() == item.Number() {
			return nil, false, nil
		}
	}

	f.Items = append(f.Items, item)

	return snapshot(f), true, nil
}

func (s *Store[T]) PullByKey(_ context.Context, formID, key string) (ledger.WriteCounts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.locate(formID)
	if !ok {
		return ledger.WriteCounts{}, nil
	}

	kept := f.Items[:0:0]

	for _, it := range f.Items {
		if it.Key() != key {
			kept = append(kept, it)
		}
	}

	counts := ledger.WriteCounts{Matched: 1}
	if len(kept) != len(f.Items) {
		counts.Modified = 1
	}

	f.Items = kept

	return counts, nil
}

func (s *Store[T]) SetItems(_ context.Context, formID string, items []T) (ledger.WriteCounts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.locate(formID)
	if !ok {
		return ledger.WriteCounts{}, nil
	}

	f.Items = make([]T, len(items))
	copy(f.Items, items)

	return ledger.WriteCounts{Matched: 1, Modified: 1}, nil
}
