package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justinjeff517/jefstore-gasstations-backend/internal/inventory"
	"github.com/justinjeff517/jefstore-gasstations-backend/internal/ledger"
	"github.com/justinjeff517/jefstore-gasstations-backend/internal/ledger/ledgertest"
)

// fakeRepo backs the service with the in-memory ledger store and mimics the
// server-side quantity pipeline: current_quantity is recomputed inside the
// "store", never by the service. skew forces a divergence between the
// stored value and the balance identity.
type fakeRepo struct {
	*ledgertest.Store[*inventory.Item]

	skew float64
}

func (f *fakeRepo) UpdateQuantities(ctx context.Context, formID, barcode string, addstock, sold float64, now time.Time) (ledger.WriteCounts, error) {
	form, found, err := f.Fetch(ctx, formID)
	if err != nil || !found || !form.IsEmpty {
		return ledger.WriteCounts{}, err
	}

	for _, it := range form.Items {
		if it.Barcode != barcode {
			continue
		}

		it.AddStock = addstock
		it.Sold = sold
		it.Updated = now
		it.CurrentQuantity = it.PreviousQuantity + addstock - sold + f.skew

		return ledger.WriteCounts{Matched: 1, Modified: 1}, nil
	}

	return ledger.WriteCounts{}, nil
}

func (f *fakeRepo) ItemByKey(ctx context.Context, formID, barcode string) (*inventory.Item, bool, error) {
	form, found, err := f.Fetch(ctx, formID)
	if err != nil || !found {
		return nil, false, err
	}

	for _, it := range form.Items {
		if it.Barcode == barcode {
			return it, true, nil
		}
	}

	return nil, false, nil
}

var fixedNow = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

func seededService(t *testing.T, items ...*inventory.Item) (*inventory.Service, *fakeRepo) {
	t.Helper()

	repo := &fakeRepo{Store: ledgertest.NewStore[*inventory.Item]()}
	repo.Seed(&ledger.Form[*inventory.Item]{
		ID:      "inv-form-1",
		QRCode:  "QR-INV-001",
		IsEmpty: true,
		Items:   items,
	})

	svc := inventory.NewService(repo, inventory.WithClock(func() time.Time { return fixedNow }))

	return svc, repo
}

func diesel(prev float64) *inventory.Item {
	return &inventory.Item{
		ID:               "item-1",
		ItemNumber:       "1",
		Barcode:          "4800-001",
		Type:             "fuel",
		Name:             "Diesel",
		Price:            62.5,
		Unit:             "liter",
		PreviousQuantity: prev,
		CurrentQuantity:  prev,
		Created:          fixedNow.Add(-24 * time.Hour),
	}
}

func TestService_UpdateQuantities(t *testing.T) {
	ctx := context.Background()

	t.Run("RecomputesBalance", func(t *testing.T) {
		svc, _ := seededService(t, diesel(10))

		res, err := svc.UpdateQuantities(ctx, "4800-001", 5, 3)

		require.NoError(t, err)
		assert.Equal(t, "inv-form-1", res.FormID)
		assert.Equal(t, "QR-INV-001", res.QRCode)
		assert.Equal(t, 12.0, res.Item.CurrentQuantity)
		assert.Equal(t, fixedNow, res.Item.Updated)
		assert.True(t, res.BalanceOK)
	})

	t.Run("AcceptsNumericStrings", func(t *testing.T) {
		svc, _ := seededService(t, diesel(2000))

		res, err := svc.UpdateQuantities(ctx, "4800-001", "1,250.5", "750")

		require.NoError(t, err)
		assert.Equal(t, 1250.5, res.Item.AddStock)
		assert.Equal(t, 750.0, res.Item.Sold)
		assert.Equal(t, 2500.5, res.Item.CurrentQuantity)
		assert.True(t, res.BalanceOK)
	})

	t.Run("DivergenceIsSoftSignal", func(t *testing.T) {
		svc, repo := seededService(t, diesel(10))
		repo.skew = 0.5

		res, err := svc.UpdateQuantities(ctx, "4800-001", 5, 3)

		// The committed write is authoritative; a mismatch is
		// surfaced, not rejected.
		require.NoError(t, err)
		assert.False(t, res.BalanceOK)
	})

	t.Run("ValidationRejectsBeforeAnyWrite", func(t *testing.T) {
		type testCase struct {
			name     string
			barcode  string
			addstock any
			sold     any
		}

		tests := []testCase{
			{name: "MissingBarcode", barcode: "", addstock: 1, sold: 1},
			{name: "NegativeAddstock", barcode: "4800-001", addstock: -1, sold: 0},
			{name: "NegativeSold", barcode: "4800-001", addstock: 0, sold: -2},
			{name: "JunkAddstock", barcode: "4800-001", addstock: "many", sold: 0},
			{name: "MissingSold", barcode: "4800-001", addstock: 1, sold: nil},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc, repo := seededService(t, diesel(10))

				_, err := svc.UpdateQuantities(ctx, tt.barcode, tt.addstock, tt.sold)

				assert.ErrorIs(t, err, ledger.NewError(ledger.ReasonValidation, ""))

				form, ok := repo.Form("inv-form-1")
				require.True(t, ok)
				assert.Equal(t, 10.0, form.Items[0].CurrentQuantity)
			})
		}
	})

	t.Run("UnknownBarcode", func(t *testing.T) {
		svc, _ := seededService(t, diesel(10))

		_, err := svc.UpdateQuantities(ctx, "no-such-barcode", 1, 1)

		assert.ErrorIs(t, err, ledger.ErrItemOrFormNotFound)
	})

	t.Run("NoOpenForm", func(t *testing.T) {
		repo := &fakeRepo{Store: ledgertest.NewStore[*inventory.Item]()}
		svc := inventory.NewService(repo)

		_, err := svc.UpdateQuantities(ctx, "4800-001", 1, 1)

		assert.ErrorIs(t, err, ledger.ErrNoOpenForm)
	})
}

func TestService_Append(t *testing.T) {
	ctx := context.Background()

	t.Run("AssignsNextNumberAndStartsBalanced", func(t *testing.T) {
		svc, _ := seededService(t, diesel(10))

		res, err := svc.Append(ctx, inventory.AppendParams{
			Barcode:          "4800-002",
			Type:             "lubricant",
			Name:             "Engine Oil 1L",
			Unit:             "bottle",
			Price:            "450",
			PreviousQuantity: 24,
		})

		require.NoError(t, err)
		assert.Equal(t, "2", res.Item.ItemNumber)
		assert.Equal(t, 450.0, res.Item.Price)
		assert.Equal(t, 24.0, res.Item.PreviousQuantity)
		assert.Equal(t, 24.0, res.Item.CurrentQuantity)
		assert.NotEmpty(t, res.Item.ID)
		assert.True(t, res.Item.Balanced())
	})

	t.Run("DuplicateBarcode", func(t *testing.T) {
		svc, _ := seededService(t, diesel(10))

		_, err := svc.Append(ctx, inventory.AppendParams{
			Barcode:          "4800-001",
			Type:             "fuel",
			Name:             "Diesel",
			Unit:             "liter",
			Price:            62.5,
			PreviousQuantity: 0,
		})

		assert.ErrorIs(t, err, ledger.ErrDuplicateKey)
	})

	t.Run("MissingRequiredField", func(t *testing.T) {
		svc, _ := seededService(t)

		_, err := svc.Append(ctx, inventory.AppendParams{
			Barcode: "4800-003",
			Type:    "fuel",
			Unit:    "liter",
			Price:   1,
		})

		assert.ErrorIs(t, err, ledger.NewError(ledger.ReasonValidation, ""))
	})
}

func TestService_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("RenumbersRemainder", func(t *testing.T) {
		second := diesel(5)
		second.ID = "item-2"
		second.ItemNumber = "2"
		second.Barcode = "4800-002"
		second.Created = fixedNow.Add(-12 * time.Hour)

		third := diesel(8)
		third.ID = "item-3"
		third.ItemNumber = "3"
		third.Barcode = "4800-003"
		third.Created = fixedNow.Add(-6 * time.Hour)

		svc, repo := seededService(t, diesel(10), second, third)

		res, err := svc.Remove(ctx, "4800-002")

		require.NoError(t, err)
		assert.Equal(t, 1, res.RemovedCount)
		assert.Equal(t, []string{"1", "2"}, res.ItemNumbers)

		form, ok := repo.Form("inv-form-1")
		require.True(t, ok)
		require.Len(t, form.Items, 2)
		assert.Equal(t, "item-1", form.Items[0].ID)
		assert.Equal(t, "item-3", form.Items[1].ID)
	})

	t.Run("AbsentBarcodeChangesNothing", func(t *testing.T) {
		svc, repo := seededService(t, diesel(10))

		res, err := svc.Remove(ctx, "absent")

		require.NoError(t, err)
		assert.Equal(t, 0, res.RemovedCount)
		assert.Equal(t, []string{"1"}, res.ItemNumbers)

		form, ok := repo.Form("inv-form-1")
		require.True(t, ok)
		require.Len(t, form.Items, 1)
	})
}
