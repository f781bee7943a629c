package invoice

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/justinjeff517/jefstore-gasstations-backend/internal/ledger"
)

// Repository extends the generic form-ledger contract with the employee
// slots stored alongside the items array.
type Repository interface {
	ledger.Repository[*Item]

	// Employees reads the open form's employee slots.
	Employees(ctx context.Context, formID string) ([]Employee, bool, error)

	// SetEmployees atomically replaces the employee slots on the form,
	// provided it is still open.
	SetEmployees(ctx context.Context, formID string, employees []Employee) (ledger.WriteCounts, error)
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

// AppendParams carries a new receipt line. Amounts accept JSON numbers or
// numeric strings.
type AppendParams struct {
	ReceiptNumber string
	CustomerName  string
	Type          string
	VatableSales  any
	VatAmount     any
	TotalAmount   any
}

func (s *Service) Append(ctx context.Context, params AppendParams) (*ledger.AppendResult[*Item], error) {
	required := []struct{ field, value string }{
		{"receipt_number", params.ReceiptNumber},
		{"customer_name", params.CustomerName},
		{"type", params.Type},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, ledger.Errorf(ledger.ReasonValidation, "missing parameter: %s", r.field)
		}
	}

	typ := Type(params.Type)
	if !typ.Valid() {
		return nil, ledger.Errorf(ledger.ReasonValidation,
			"type must be %q or %q, got %q", TypeFuel, TypeLubricant, params.Type)
	}

	vatable, err := ledger.ParseAmount("vatable_sales", params.VatableSales)
	if err != nil {
		return nil, err
	}

	vat, err := ledger.ParseAmount("vat_amount", params.VatAmount)
	if err != nil {
		return nil, err
	}

	total, err := ledger.ParseAmount("total_amount", params.TotalAmount)
	if err != nil {
		return nil, err
	}

	if math.Abs(vatable+vat-total) > vatTolerance {
		return nil, ledger.Errorf(ReasonVatMismatch,
			"vatable_sales + vat_amount must equal total_amount (within %.2f)", vatTolerance)
	}

	item := &Item{
		ReceiptNumber: params.ReceiptNumber,
		CustomerName:  params.CustomerName,
		Type:          typ,
		VatableSales:  round2(vatable),
		VatAmount:     round2(vat),
		TotalAmount:   round2(total),
	}

	return s.engine.Append(ctx, item)
}

func (s *Service) Remove(ctx context.Context, receiptNumber string) (*ledger.RemoveResult, error) {
	if strings.TrimSpace(receiptNumber) == "" {
		return nil, ledger.NewError(ledger.ReasonValidation, "missing parameter: receipt_number")
	}

	return s.engine.Remove(ctx, receiptNumber)
}

// PatchEmployeeResult reports the updated slot and the write counts of the
// set.
type PatchEmployeeResult struct {
	FormID   string
	Counts   ledger.WriteCounts
	Employee Employee
}

// PatchEmployee updates the open form's slot for role. The role must
// already exist on the form; blank inputs keep the current values.
func (s *Service) PatchEmployee(ctx context.Context, role, employeeNumber, name string) (*PatchEmployeeResult, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return nil, ledger.NewError(ledger.ReasonValidation, "missing parameter: role")
	}

	form, err := s.engine.Locate(ctx)
	if err != nil {
		return nil, err
	}

	employees, found, err := s.repo.Employees(ctx, form.ID)
	if err != nil {
		return nil, ledger.Unavailable(err)
	}

	if !found {
		return nil, ledger.ErrFormChanged
	}

	idx := -1

	for i, e := range employees {
		if strings.EqualFold(strings.TrimSpace(e.Role), role) {
			idx = i
			break
		}
	}

	if idx < 0 {
		return nil, ledger.Errorf(ReasonRoleNotInForm,
			"role %q is not on the open form", role)
	}

	current := employees[idx]
	patched := Employee{
		Role:           firstNonEmpty(current.Role, role),
		EmployeeNumber: firstNonEmpty(strings.TrimSpace(employeeNumber), current.EmployeeNumber),
		Name:           firstNonEmpty(strings.TrimSpace(name), current.Name),
	}
	employees[idx] = patched

	counts, err := s.repo.SetEmployees(ctx, form.ID, employees)
	if err != nil {
		return nil, ledger.Unavailable(err)
	}

	if counts.Matched == 0 {
		return nil, ledger.ErrFormChanged
	}

	return &PatchEmployeeResult{FormID: form.ID, Counts: counts, Employee: patched}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
