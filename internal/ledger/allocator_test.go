package ledger_test

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justinjeff517/jefstore-gasstations-backend/internal/ledger"
	"github.com/justinjeff517/jefstore-gasstations-backend/internal/ledger/ledgertest"
)

// Concurrent appenders must never double-allocate a sequence number or lose
// an append: N successful appends yield exactly N unique numbers with
// maximum N.
func TestAppend_ConcurrentAllocatorsAssignUniqueNumbers(t *testing.T) {
	const writers = 25

	store := ledgertest.NewStore[*testItem]()
	store.Seed(openForm())

	svc := ledger.NewService[*testItem](store,
		ledger.WithClock[*testItem](fixedClock),
		// Contention between 25 writers over 3 attempts each would
		// exhaust the default budget; the property under test is
		// number uniqueness, not retry exhaustion.
		ledger.WithMaxRetries[*testItem](writers),
	)

	var wg sync.WaitGroup

	errs := make([]error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			item := &testItem{id: fmt.Sprintf("id-%d", i), key: fmt.Sprintf("key-%d", i)}
			_, errs[i] = svc.Append(context.Background(), item)
		}(i)
	}

	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "writer %d", i)
	}

	form, ok := store.Form("form-1")
	require.True(t, ok)
	require.Len(t, form.Items, writers)

	seen := make(map[string]bool, writers)
	maxNumber := 0

	for _, it := range form.Items {
		assert.False(t, seen[it.Number()], "duplicate item_number %s", it.Number())
		seen[it.Number()] = true

		n, err := strconv.Atoi(it.Number())
		require.NoError(t, err)

		if n > maxNumber {
			maxNumber = n
		}
	}

	// No deletions ran concurrently, so the sequence is gap-free.
	assert.Equal(t, writers, maxNumber)
}

func TestAppend_SimulatedContentionExhaustsRetries(t *testing.T) {
	store := ledgertest.NewStore[*testItem]()
	store.Seed(openForm())
	store.FailPushes = 3

	svc := ledger.NewService[*testItem](store, ledger.WithClock[*testItem](fixedClock))

	_, err := svc.Append(context.Background(), &testItem{id: "id-1", key: "key-1"})

	assert.ErrorIs(t, err, ledger.ErrConflict)

	form, ok := store.Form("form-1")
	require.True(t, ok)
	assert.Empty(t, form.Items, "no item may be persisted after a conflict")
}
