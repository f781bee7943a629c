package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/justinjeff517/jefstore-gasstations-backend/internal/ledger"
)

// Repository extends the generic form-ledger contract with the quantity
// update evaluated server-side, so the scalar fields are never read,
// modified and written back from the client.
type Repository interface {
	ledger.Repository[*Item]

	// UpdateQuantities rewrites only the item matching barcode on the
	// open form: addstock, sold, updated, and the recomputed
	// current_quantity, all in one atomic operation.
	UpdateQuantities(ctx context.Context, formID, barcode string, addstock, sold float64, now time.Time) (ledger.WriteCounts, error)

	// ItemByKey reads back only the matching item, not the whole
	// document.
	ItemByKey(ctx context.Context, formID, barcode string) (*Item, bool, error)
}

type Service struct {
	repo   Repository
	engine *ledger.Service[*Item]
	now    func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(s)
	}

	s.engine = ledger.NewService(ledger.Repository[*Item](repo),
		ledger.WithClock[*Item](s.now),
		ledger.WithIDGenerator[*Item](uuid.NewString))

	return s
}

// AppendParams carries the caller-supplied fields of a new inventory line.
// Numeric fields accept JSON numbers or numeric strings with comma
// thousands separators.
type AppendParams struct {
	Barcode          string
	Type             string
	Name             string
	Unit             string
	Price            any
	PreviousQuantity any
}

func (s *Service) Append(ctx context.Context, params AppendParams) (*ledger.AppendResult[*Item], error) {
	required := []struct{ field, value string }{
		{"barcode", params.Barcode},
		{"type", params.Type},
		{"name", params.Name},
		{"unit", params.Unit},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, ledger.Errorf(ledger.ReasonValidation, "missing parameter: %s", r.field)
		}
	}

	price, err := ledger.ParseAmount("price", params.Price)
	if err != nil {
		return nil, err
	}

	prev, err := ledger.ParseAmount("previous_quantity", params.PreviousQuantity)
	if err != nil {
		return nil, err
	}

	item := &Item{
		Barcode:          params.Barcode,
		Type:             params.Type,
		Name:             params.Name,
		Unit:             params.Unit,
		Price:            price,
		PreviousQuantity: prev,
		CurrentQuantity:  prev,
	}

	return s.engine.Append(ctx, item)
}

func (s *Service) Remove(ctx context.Context, barcode string) (*ledger.RemoveResult, error) {
	if strings.TrimSpace(barcode) == "" {
		return nil, ledger.NewError(ledger.ReasonValidation, "missing parameter: barcode")
	}

	return s.engine.Remove(ctx, barcode)
}

// UpdateResult reports the post-write state of the updated item. BalanceOK
// is a verification signal: false flags a store-level anomaly without
// rejecting the already-committed write.
type UpdateResult struct {
	FormID    string
	QRCode    string
	Item      *Item
	BalanceOK bool
}

// UpdateQuantities sets addstock and sold on the item matching barcode and
// recomputes current_quantity server-side in the same atomic write.
func (s *Service) UpdateQuantities(ctx context.Context, barcode string, addstock, sold any) (*UpdateResult, error) {
	if strings.TrimSpace(barcode) == "" {
		return nil, ledger.NewError(ledger.ReasonValidation, "missing parameter: barcode")
	}

	add, err := ledger.ParseAmount("addstock", addstock)
	if err != nil {
		return nil, err
	}

	soldQty, err := ledger.ParseAmount("sold", sold)
	if err != nil {
		return nil, err
	}

	form, err := s.engine.Locate(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.UpdateQuantities(ctx, form.ID, barcode, add, soldQty, s.now())
	if err != nil {
		return nil, ledger.Unavailable(err)
	}

	if counts.Matched == 0 {
		return nil, ledger.Errorf(ledger.ReasonItemOrFormNotFound,
			"open form not found with barcode %q (or no longer open)", barcode)
	}

	item, found, err := s.repo.ItemByKey(ctx, form.ID, barcode)
	if err != nil {
		return nil, ledger.Unavailable(err)
	}

	if !found {
		return nil, ledger.Errorf(ledger.ReasonItemOrFormNotFound,
			"updated item %q not found after write", barcode)
	}

	return &UpdateResult{
		FormID:    form.ID,
		QRCode:    form.QRCode,
		Item:      item,
		BalanceOK: item.Balanced(),
	}, nil
}
