// Package ledger implements the open-form concurrency engine shared by the
// inventory and sales-invoice collections: locating the single writable form,
// appending line items with collision-free sequence numbers, and removing
// items with deterministic renumbering.
package ledger

import "time"

// Entry is a line item on a form. Domain item types (inventory, invoice)
// implement it with pointer receivers so the engine can stamp identity and
// sequence numbers onto them.
type Entry interface {
	// EntryID returns the item's generated unique identifier.
	EntryID() string
	// Number returns the string-encoded sequence number.
	Number() string
	// SetNumber assigns the sequence number.
	SetNumber(n string)
	// Key returns the business key (barcode, receipt_number).
	Key() string
	// CreatedAt returns the creation timestamp; zero means unknown.
	CreatedAt() time.Time
	// Stamp assigns the generated identifier and creation/update timestamps.
	Stamp(id string, now time.Time)
}

// Form is one batch document. At most one form per collection is open
// (IsEmpty true); all others are immutable history.
type Form[T Entry] struct {
	ID      string
	QRCode  string
	IsEmpty bool
	Created time.Time
	Items   []T
}

// ItemByID returns the item with the given generated identifier.
func (f *Form[T]) ItemByID(id string) (T, bool) {
	for _, it := range f.Items {
		if it.EntryID() == id {
			return it, true
		}
	}

	var zero T

	return zero, false
}

// HasKey reports whether any item on the form carries the business key.
func (f *Form[T]) HasKey(key string) bool {
	for _, it := range f.Items {
		if it.Key() == key {
			return true
		}
	}

	return false
}

// WriteCounts reports how many documents a conditional write matched and
// modified.
type WriteCounts struct {
	Matched  int64 `json:"matched"`
	Modified int64 `json:"modified"`
}

// AppendResult is the outcome of a successful append.
type AppendResult[T Entry] struct {
	FormID string
	QRCode string
	Item   T
}

// RemoveResult is the outcome of a delete-and-renumber pass.
type RemoveResult struct {
	FormID       string
	QRCode       string
	RemovedCount int
	Pull         WriteCounts
	Set          WriteCounts
	ItemNumbers  []string
}
