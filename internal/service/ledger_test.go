package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentcore-backend/internal/domain"
	"rentcore-backend/internal/repository/memory"
	"rentcore-backend/internal/service"
)

func TestLedgerService_Snapshot(t *testing.T) {
	ctx := context.Background()

	products := memory.NewProductStore(drill())
	holds := memory.NewHoldStore(reservedHold("tool-drill", "order-1", 4, 10, 15))
	svc := service.NewLedgerService(products, holds)

	t.Run("Inside hold window", func(t *testing.T) {
		snap, err := svc.Snapshot(ctx, "tool-drill", jan(12, 0))
		require.NoError(t, err)
		assert.Equal(t, 10, snap.TotalStock)
		assert.Equal(t, 4, snap.HeldQuantity)
		assert.Equal(t, 6, snap.AvailableQuantity)
	})

	t.Run("At hold end nothing is held", func(t *testing.T) {
		// End is exclusive: at Jan 15 00:00 the hold has returned
		snap, err := svc.Snapshot(ctx, "tool-drill", jan(15, 0))
		require.NoError(t, err)
		assert.Equal(t, 0, snap.HeldQuantity)
		assert.Equal(t, 10, snap.AvailableQuantity)
	})

	t.Run("Unknown product", func(t *testing.T) {
		_, err := svc.Snapshot(ctx, "missing", jan(12, 0))
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestLedgerService_ActiveHolds(t *testing.T) {
	ctx := context.Background()

	products := memory.NewProductStore(drill())
	holds := memory.NewHoldStore(
		reservedHold("tool-drill", "order-1", 4, 10, 15),
		reservedHold("tool-drill", "order-2", 2, 20, 25),
	)
	svc := service.NewLedgerService(products, holds)

	overlapping, err := svc.ActiveHolds(ctx, "tool-drill", jan(14, 0), jan(16, 0))
	require.NoError(t, err)
	require.Len(t, overlapping, 1)
	assert.Equal(t, "order-1", overlapping[0].OwnerID)
}

func TestLedgerService_CommitHold(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful commit emits event", func(t *testing.T) {
		products := memory.NewProductStore(drill())
		holds := memory.NewHoldStore()
		svc := service.NewLedgerService(products, holds)

		hold, events, err := svc.CommitHold(ctx, service.CommitHoldRequest{
			ProductID: "tool-drill",
			OwnerID:   "order-1",
			Quantity:  3,
			Start:     jan(10, 0),
			End:       jan(15, 0),
		})
		require.NoError(t, err)
		require.NotNil(t, hold)
		assert.NotEmpty(t, hold.ID)
		assert.Equal(t, domain.HoldStatusReserved, hold.Status)

		require.Len(t, events, 1)
		committed, ok := events[0].(domain.HoldCommittedEvent)
		require.True(t, ok)
		assert.Equal(t, "hold.committed", committed.EventName())
		assert.Equal(t, hold.ID, committed.HoldID)
		assert.Equal(t, 3, committed.Quantity)

		// The hold is durably visible to subsequent reads
		stored, err := holds.GetByID(ctx, hold.ID)
		require.NoError(t, err)
		assert.Equal(t, "order-1", stored.OwnerID)
	})

	t.Run("Over-committed window is rejected", func(t *testing.T) {
		products := memory.NewProductStore(drill())
		holds := memory.NewHoldStore(reservedHold("tool-drill", "order-1", 8, 10, 15))
		svc := service.NewLedgerService(products, holds)

		hold, events, err := svc.CommitHold(ctx, service.CommitHoldRequest{
			ProductID: "tool-drill",
			OwnerID:   "order-2",
			Quantity:  5,
			Start:     jan(12, 0),
			End:       jan(14, 0),
		})
		assert.Nil(t, hold)
		assert.True(t, errors.Is(err, domain.ErrInsufficientAvailability))

		require.Len(t, events, 1)
		prevented, ok := events[0].(domain.OverbookingPreventedEvent)
		require.True(t, ok)
		assert.Equal(t, 2, prevented.AvailableQuantity) // 10 - 8
	})

	t.Run("Retry with exclude own holds is idempotent", func(t *testing.T) {
		products := memory.NewProductStore(drill())
		holds := memory.NewHoldStore(reservedHold("tool-drill", "order-1", 8, 10, 15))
		svc := service.NewLedgerService(products, holds)

		// order-1 re-validates its own window; its committed 8 units are
		// not counted against itself
		hold, _, err := svc.CommitHold(ctx, service.CommitHoldRequest{
			ProductID:       "tool-drill",
			OwnerID:         "order-1",
			Quantity:        8,
			Start:           jan(10, 0),
			End:             jan(15, 0),
			ExcludeOwnHolds: true,
		})
		require.NoError(t, err)
		require.NotNil(t, hold)
	})

	t.Run("Concurrent commits never over-book", func(t *testing.T) {
		one := &domain.Product{ID: "tool-lift", CategoryID: "cat-heavy", TotalStock: 1, Rentable: true}
		products := memory.NewProductStore(one)
		holds := memory.NewHoldStore()
		svc := service.NewLedgerService(products, holds)

		const attempts = 16
		var wg sync.WaitGroup
		committed := make(chan domain.Event, attempts)
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				_, events, err := svc.CommitHold(ctx, service.CommitHoldRequest{
					ProductID: "tool-lift",
					OwnerID:   "order-x",
					Quantity:  1,
					Start:     jan(10, 0),
					End:       jan(15, 0),
				})
				if err == nil {
					committed <- events[0]
				}
			}(i)
		}
		wg.Wait()
		close(committed)

		count := 0
		for range committed {
			count++
		}
		assert.Equal(t, 1, count) // stock 1: exactly one commit may win
	})

	t.Run("Invalid request", func(t *testing.T) {
		svc := service.NewLedgerService(memory.NewProductStore(drill()), memory.NewHoldStore())

		_, _, err := svc.CommitHold(ctx, service.CommitHoldRequest{
			ProductID: "tool-drill",
			OwnerID:   "order-1",
			Quantity:  0,
			Start:     jan(10, 0),
			End:       jan(15, 0),
		})
		assert.True(t, domain.IsInvalidRange(err))
	})
}

func TestLedgerService_ReleaseHold(t *testing.T) {
	ctx := context.Background()

	t.Run("Release frees the quantity", func(t *testing.T) {
		h := reservedHold("tool-drill", "order-1", 4, 10, 15)
		h.ID = "hold-1"
		products := memory.NewProductStore(drill())
		holds := memory.NewHoldStore(h)
		svc := service.NewLedgerService(products, holds)

		released, events, err := svc.ReleaseHold(ctx, "hold-1")
		require.NoError(t, err)
		assert.Equal(t, domain.HoldStatusCancelled, released.Status)
		require.Len(t, events, 1)
		assert.Equal(t, "hold.released", events[0].EventName())

		snap, err := svc.Snapshot(ctx, "tool-drill", jan(12, 0))
		require.NoError(t, err)
		assert.Equal(t, 10, snap.AvailableQuantity)
	})

	t.Run("Terminal holds cannot be released", func(t *testing.T) {
		h := reservedHold("tool-drill", "order-1", 4, 10, 15)
		h.ID = "hold-1"
		h.Status = domain.HoldStatusCompleted
		svc := service.NewLedgerService(memory.NewProductStore(drill()), memory.NewHoldStore(h))

		_, _, err := svc.ReleaseHold(ctx, "hold-1")
		assert.Error(t, err)
	})

	t.Run("Unknown hold", func(t *testing.T) {
		svc := service.NewLedgerService(memory.NewProductStore(drill()), memory.NewHoldStore())

		_, _, err := svc.ReleaseHold(ctx, "missing")
		assert.True(t, domain.IsNotFound(err))
	})
}
