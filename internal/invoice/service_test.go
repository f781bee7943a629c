package invoice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justinjeff517/jefstore-gasstations-backend/internal/invoice"
	"github.com/justinjeff517/jefstore-gasstations-backend/internal/ledger"
	"github.com/justinjeff517/jefstore-gasstations-backend/internal/ledger/ledgertest"
)

type fakeRepo struct {
	*ledgertest.Store[*invoice.Item]

	employees map[string][]invoice.Employee
}

func (f *fakeRepo) Employees(ctx context.Context, formID string) ([]invoice.Employee, bool, error) {
	form, found, err := f.Reload(ctx, formID)
	if err != nil || !found {
		return nil, false, err
	}

	return f.employees[form.ID], true, nil
}

func (f *fakeRepo) SetEmployees(ctx context.Context, formID string, employees []invoice.Employee) (ledger.WriteCounts, error) {
	_, found, err := f.Reload(ctx, formID)
	if err != nil || !found {
		return ledger.WriteCounts{}, err
	}

	f.employees[formID] = employees

	return ledger.WriteCounts{Matched: 1, Modified: 1}, nil
}

var fixedNow = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

func seededService(t *testing.T, items ...*invoice.Item) (*invoice.Service, *fakeRepo) {
	t.Helper()

	repo := &fakeRepo{
		Store:     ledgertest.NewStore[*invoice.Item](),
		employees: make(map[string][]invoice.Employee),
	}
	repo.Seed(&ledger.Form[*invoice.Item]{
		ID:      "si-form-1",
		QRCode:  "QR-SI-001",
		IsEmpty: true,
		Items:   items,
	})

	svc := invoice.NewService(repo, invoice.WithClock(func() time.Time { return fixedNow }))

	return svc, repo
}

func fuelSale(receipt string) *invoice.Item {
	return &invoice.Item{
		ID:            "item-" + receipt,
		ItemNumber:    "1",
		ReceiptNumber: receipt,
		CustomerName:  "Walk-in",
		Type:          invoice.TypeFuel,
		VatableSales:  892.86,
		VatAmount:     107.14,
		TotalAmount:   1000,
		Created:       fixedNow.Add(-time.Hour),
	}
}

func TestService_Append(t *testing.T) {
	ctx := context.Background()

	params := func() invoice.AppendParams {
		return invoice.AppendParams{
			ReceiptNumber: "OR-1001",
			CustomerName:  "Juan Dela Cruz",
			Type:          "fuel",
			VatableSales:  892.86,
			VatAmount:     107.14,
			TotalAmount:   1000,
		}
	}

	t.Run("Success", func(t *testing.T) {
		svc, _ := seededService(t, fuelSale("OR-1000"))

		res, err := svc.Append(ctx, params())

		require.NoError(t, err)
		assert.Equal(t, "si-form-1", res.FormID)
		assert.Equal(t, "2", res.Item.ItemNumber)
		assert.Equal(t, invoice.TypeFuel, res.Item.Type)
		assert.Equal(t, 1000.0, res.Item.TotalAmount)
		assert.Equal(t, fixedNow, res.Item.Created)
	})

	t.Run("RoundsAmountsToCentavos", func(t *testing.T) {
		svc, _ := seededService(t)

		p := params()
		p.VatableSales = "892.857"
		p.VatAmount = "107.143"
		p.TotalAmount = "1,000.00"

		res, err := svc.Append(ctx, p)

		require.NoError(t, err)
		assert.Equal(t, 892.86, res.Item.VatableSales)
		assert.Equal(t, 107.14, res.Item.VatAmount)
		assert.Equal(t, 1000.0, res.Item.TotalAmount)
	})

	t.Run("VatMismatch", func(t *testing.T) {
		svc, _ := seededService(t)

		p := params()
		p.VatAmount = 150.0

		_, err := svc.Append(ctx, p)

		assert.ErrorIs(t, err, ledger.NewError(invoice.ReasonVatMismatch, ""))
	})

	t.Run("InvalidType", func(t *testing.T) {
		svc, _ := seededService(t)

		p := params()
		p.Type = "snacks"

		_, err := svc.Append(ctx, p)

		assert.ErrorIs(t, err, ledger.NewError(ledger.ReasonValidation, ""))
	})

	t.Run("DuplicateReceiptNumber", func(t *testing.T) {
		svc, _ := seededService(t, fuelSale("OR-1001"))

		_, err := svc.Append(ctx, params())

		assert.ErrorIs(t, err, ledger.ErrDuplicateKey)
	})

	t.Run("NoOpenForm", func(t *testing.T) {
		repo := &fakeRepo{
			Store:     ledgertest.NewStore[*invoice.Item](),
			employees: make(map[string][]invoice.Employee),
		}
		svc := invoice.NewService(repo)

		_, err := svc.Append(ctx, params())

		assert.ErrorIs(t, err, ledger.ErrNoOpenForm)
	})
}

func TestService_Remove(t *testing.T) {
	ctx := context.Background()

	first := fuelSale("OR-1000")
	second := fuelSale("OR-1001")
	second.ItemNumber = "2"
	second.Created = fixedNow.Add(-30 * time.Minute)

	svc, repo := seededService(t, first, second)

	res, err := svc.Remove(ctx, "OR-1000")

	require.NoError(t, err)
	assert.Equal(t, 1, res.RemovedCount)
	assert.Equal(t, []string{"1"}, res.ItemNumbers)

	form, ok := repo.Form("si-form-1")
	require.True(t, ok)
	require.Len(t, form.Items, 1)
	assert.Equal(t, "OR-1001", form.Items[0].ReceiptNumber)
	assert.Equal(t, "1", form.Items[0].ItemNumber)
}

func TestService_PatchEmployee(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*invoice.Service, *fakeRepo) {
		t.Helper()

		svc, repo := seededService(t)
		repo.employees["si-form-1"] = []invoice.Employee{
			{Role: "Cashier", EmployeeNumber: "E-01", Name: "Ana"},
			{Role: "Attendant"},
		}

		return svc, repo
	}

	t.Run("UpdatesMatchingRole", func(t *testing.T) {
		svc, repo := seed(t)

		res, err := svc.PatchEmployee(ctx, "attendant", "E-07", "Ben")

		require.NoError(t, err)
		assert.Equal(t, invoice.Employee{Role: "Attendant", EmployeeNumber: "E-07", Name: "Ben"}, res.Employee)
		assert.Equal(t, "Ben", repo.employees["si-form-1"][1].Name)
	})

	t.Run("BlankInputKeepsCurrentValues", func(t *testing.T) {
		svc, _ := seed(t)

		res, err := svc.PatchEmployee(ctx, "cashier", "", "")

		require.NoError(t, err)
		assert.Equal(t, invoice.Employee{Role: "Cashier", EmployeeNumber: "E-01", Name: "Ana"}, res.Employee)
	})

	t.Run("RoleNotOnForm", func(t *testing.T) {
		svc, _ := seed(t)

		_, err := svc.PatchEmployee(ctx, "manager", "E-99", "Cora")

		assert.ErrorIs(t, err, ledger.NewError(invoice.ReasonRoleNotInForm, ""))
	})

	t.Run("MissingRole", func(t *testing.T) {
		svc, _ := seed(t)

		_, err := svc.PatchEmployee(ctx, "  ", "E-99", "Cora")

		assert.ErrorIs(t, err, ledger.NewError(ledger.ReasonValidation, ""))
	})
}
