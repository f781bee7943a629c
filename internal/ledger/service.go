package ledger

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// defaultMaxRetries bounds the optimistic append loop.
const defaultMaxRetries = 3

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger

// Repository is the document-store contract the engine runs on. Every write
// is a single-document atomic conditional update; no cross-document
// transactions are assumed.
type Repository[T Entry] interface {
	// FindOpen returns at most limit forms with is_empty=true, with items
	// projected to sequence number and business key.
	FindOpen(ctx context.Context, limit int64) ([]*Form[T], error)

	// Reload re-reads the open form by identity, with the same projection
	// as FindOpen. found is false when the form is gone or no longer open.
	Reload(ctx context.Context, formID string) (form *Form[T], found bool, err error)

	// Fetch reads the full form by identity regardless of its open state.
	Fetch(ctx context.Context, formID string) (form *Form[T], found bool, err error)

	// PushAndReturn atomically appends item to the open form, guarded by
	// "no existing item carries item.Number()", and returns the
	// post-write document. matched is false when the guard rejected the
	// write (a lost race, no side effects).
	PushAndReturn(ctx context.Context, formID string, item T) (form *Form[T], matched bool, err error)

	// PullByKey atomically removes every item whose business key equals
	// key.
	PullByKey(ctx context.Context, formID, key string) (WriteCounts, error)

	// SetItems atomically replaces the form's whole items array.
	SetItems(ctx context.Context, formID string, items []T) (WriteCounts, error)
}

// Service is the open-form engine for one collection.
type Service[T Entry] struct {
	repo       Repository[T]
	now        func() time.Time
	newID      func() string
	maxRetries int
}

// Option overrides a Service default; used by tests to inject a fixed clock
// and identifier generator.
type Option[T Entry] func(*Service[T])

func WithClock[T Entry](now func() time.Time) Option[T] {
	return func(s *Service[T]) { s.now = now }
}

func WithIDGenerator[T Entry](newID func() string) Option[T] {
	return func(s *Service[T]) { s.newID = newID }
}

func WithMaxRetries[T Entry](n int) Option[T] {
	return func(s *Service[T]) { s.maxRetries = n }
}

func NewService[T Entry](repo Repository[T], opts ...Option[T]) *Service[T] {
	s := &Service[T]{
		repo:       repo,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      func() string { return uuid.NewString() },
		maxRetries: defaultMaxRetries,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Now returns the service clock, shared with domain services that stamp
// timestamps of their own.
func (s *Service[T]) Now() time.Time { return s.now() }

// Locate resolves the single open form. A limit-2 read cheaply separates
// "one" from "more than one" without scanning the collection.
func (s *Service[T]) Locate(ctx context.Context) (*Form[T], error) {
	forms, err := s.repo.FindOpen(ctx, 2)
	if err != nil {
		return nil, Unavailable(err)
	}

	switch len(forms) {
	case 0:
		return nil, ErrNoOpenForm
	case 1:
		return forms[0], nil
	default:
		return nil, ErrAmbiguousOpenForm
	}
}

// Append adds item to the open form with the next free sequence number.
//
// The duplicate-key pre-check reads the located form's items before the
// conditional write; two racing appends with distinct numbers but equal
// business keys can therefore both land. That narrow race is accepted: the
// stored identities stay unique, only the key becomes ambiguous in display.
func (s *Service[T]) Append(ctx context.Context, item T) (*AppendResult[T], error) {
	form, err := s.Locate(ctx)
	if err != nil {
		return nil, err
	}

	if form.HasKey(item.Key()) {
		return nil, Errorf(ReasonDuplicateKey, "%q already exists in the open form", item.Key())
	}

	item.Stamp(s.newID(), s.now())

	var lastCandidate string

	for attempt := 0; attempt < s.maxRetries; attempt++ {
		fresh, found, err := s.repo.Reload(ctx, form.ID)
		if err != nil {
			return nil, Unavailable(err)
		}

		if !found {
			return nil, ErrFormChanged
		}

		next := 1
		for _, it := range fresh.Items {
			if n, ok := itemNumberValue(it.Number()); ok && n >= next {
				next = n + 1
			}
		}

		lastCandidate = strconv.Itoa(next)
		item.SetNumber(lastCandidate)

		updated, matched, err := s.repo.PushAndReturn(ctx, form.ID, item)
		if err != nil {
			return nil, Unavailable(err)
		}

		if !matched {
			// Lost the race for this number; no side effects.
			continue
		}

		added, ok := updated.ItemByID(item.EntryID())
		if !ok {
			return nil, Errorf(ReasonInsertUnknownState,
				"appended item not found on document %s", updated.ID)
		}

		return &AppendResult[T]{FormID: updated.ID, QRCode: updated.QRCode, Item: added}, nil
	}

	return nil, Errorf(ReasonConflict,
		"failed to append after %d attempts (last candidate item_number %s); try again",
		s.maxRetries, lastCandidate)
}

// Remove deletes every item matching key from the open form, then renumbers
// the remainder into a dense 1..N sequence. Removing a key that is not
// present is a no-op with RemovedCount zero.
func (s *Service[T]) Remove(ctx context.Context, key string) (*RemoveResult, error) {
	form, err := s.Locate(ctx)
	if err != nil {
		return nil, err
	}

	beforeLen := len(form.Items)

	pull, err := s.repo.PullByKey(ctx, form.ID, key)
	if err != nil {
		return nil, Unavailable(err)
	}

	if pull.Matched == 0 {
		return nil, ErrFormChanged
	}

	after, found, err := s.repo.Fetch(ctx, form.ID)
	if err != nil {
		return nil, Unavailable(err)
	}

	if !found {
		return nil, ErrFormChanged
	}

	result := &RemoveResult{
		FormID:       form.ID,
		QRCode:       form.QRCode,
		RemovedCount: max(beforeLen-len(after.Items), 0),
		Pull:         pull,
		ItemNumbers:  []string{},
	}

	if len(after.Items) == 0 {
		return result, nil
	}

	items := sortForRenumber(after.Items)
	for i, it := range items {
		it.SetNumber(strconv.Itoa(i + 1))
	}

	set, err := s.repo.SetItems(ctx, form.ID, items)
	if err != nil {
		return nil, Unavailable(err)
	}

	result.Set = set
	for _, it := range items {
		result.ItemNumbers = append(result.ItemNumbers, it.Number())
	}

	return result, nil
}

// sortForRenumber orders items by presence of a creation timestamp (missing
// last), then creation time ascending, then the numeric value of the prior
// sequence number as the final tie-break. The order is reproducible from
// the document alone.
func sortForRenumber[T Entry](items []T) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		ci, cj := sorted[i].CreatedAt(), sorted[j].CreatedAt()
		if ci.IsZero() != cj.IsZero() {
			return !ci.IsZero()
		}

		if !ci.Equal(cj) {
			return ci.Before(cj)
		}

		return itemNumberSortValue(sorted[i].Number()) < itemNumberSortValue(sorted[j].Number())
	})

	return sorted
}
