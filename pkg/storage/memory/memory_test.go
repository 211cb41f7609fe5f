package memory

import (
	"context"
	"testing"
	"time"

	"github.com/cueshop/station-ledger/pkg/models"
	"github.com/cueshop/station-ledger/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStationLifecycle(t *testing.T) {
	ctx := context.Background()
	store := New()

	_, err := store.CreateStation(ctx, &models.Station{Id: "st-1", Name: "Table 1", Status: models.AVAILABLE, HourlyRate: 100})
	require.NoError(t, err)

	_, err = store.CreateStation(ctx, &models.Station{Id: "st-1"})
	assert.ErrorIs(t, err, storage.ErrStationExists)

	rate := 120.0
	updated, err := store.UpdateStation(ctx, "st-1", storage.StationUpdate{HourlyRate: &rate})
	require.NoError(t, err)
	assert.Equal(t, 120.0, updated.HourlyRate)
	assert.Equal(t, "Table 1", updated.Name)

	require.NoError(t, store.DeleteStation(ctx, "st-1"))
	assert.ErrorIs(t, store.DeleteStation(ctx, "st-1"), storage.ErrStationNotFound)

	_, err = store.GetStation(ctx, "st-1")
	assert.ErrorIs(t, err, storage.ErrStationNotFound)
}

func TestStationConditionalClaim(t *testing.T) {
	ctx := context.Background()
	store := New()

	_, err := store.CreateStation(ctx, &models.Station{Id: "st-1", Status: models.AVAILABLE})
	require.NoError(t, err)

	occupied := models.OCCUPIED
	available := models.AVAILABLE
	claim := storage.StationUpdate{Status: &occupied, ExpectStatus: &available}

	_, err = store.UpdateStation(ctx, "st-1", claim)
	require.NoError(t, err)

	// Second claim sees occupied and loses.
	_, err = store.UpdateStation(ctx, "st-1", claim)
	assert.ErrorIs(t, err, storage.ErrPreconditionFailed)
}

func TestSessionConditionalClose(t *testing.T) {
	ctx := context.Background()
	store := New()
	t0 := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)

	_, err := store.AppendSession(ctx, &models.Session{Id: "sess-1", StartTime: t0, PaymentStatus: models.PENDING})
	require.NoError(t, err)

	pending := models.PENDING
	paid := models.PAID
	end := t0.Add(time.Hour)
	amount := int64(100)
	zero := int64(0)
	closeUpd := storage.SessionUpdate{
		EndTime:         &end,
		SuggestedAmount: &amount,
		PaidAmount:      &amount,
		Balance:         &zero,
		PaymentStatus:   &paid,
		ExpectStatus:    &pending,
	}

	closed, err := store.UpdateSession(ctx, "sess-1", closeUpd)
	require.NoError(t, err)
	assert.Equal(t, models.PAID, closed.PaymentStatus)
	require.NotNil(t, closed.EndTime)
	assert.Equal(t, end, *closed.EndTime)

	_, err = store.UpdateSession(ctx, "sess-1", closeUpd)
	assert.ErrorIs(t, err, storage.ErrPreconditionFailed)
}

func TestCreditConditionalSettle(t *testing.T) {
	ctx := context.Background()
	store := New()

	_, err := store.AppendCredit(ctx, &models.Credit{Id: "cr-1", CustomerName: "Alice", Amount: 50, Status: models.UNPAID})
	require.NoError(t, err)

	paid := models.CREDITPAID
	unpaid := models.UNPAID
	settle := storage.CreditUpdate{Status: &paid, ExpectStatus: &unpaid}

	settled, err := store.UpdateCredit(ctx, "cr-1", settle)
	require.NoError(t, err)
	assert.Equal(t, models.CREDITPAID, settled.Status)

	_, err = store.UpdateCredit(ctx, "cr-1", settle)
	assert.ErrorIs(t, err, storage.ErrPreconditionFailed)
}

func TestPaymentsAppendOnly(t *testing.T) {
	ctx := context.Background()
	store := New()
	t0 := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)

	for i, amount := range []int64{100, 50} {
		_, err := store.AppendPayment(ctx, &models.Payment{
			Id:     string(rune('a' + i)),
			Date:   t0.Add(time.Duration(i) * time.Hour),
			Amount: amount,
			Method: models.CASH,
		})
		require.NoError(t, err)
	}

	payments, err := store.ListPayments(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	// Newest first.
	assert.Equal(t, int64(50), payments[0].Amount)
	assert.Equal(t, int64(100), payments[1].Amount)
}
