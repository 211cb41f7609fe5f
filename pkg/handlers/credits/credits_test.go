package credits_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cueshop/station-ledger/pkg/handlers/credits"
	"github.com/cueshop/station-ledger/pkg/ledger"
	"github.com/cueshop/station-ledger/pkg/models"
	"github.com/cueshop/station-ledger/pkg/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler(t *testing.T) (*credits.CreditsHandler, *memory.Store) {
	t.Helper()
	store := memory.New()
	return credits.NewCreditsHandler(ledger.New(store, nil), store), store
}

func TestOpenCredit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, store := newHandler(t)

		body, _ := json.Marshal(map[string]interface{}{"customer_name": "Bob", "amount": 50})
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.Routes().ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var created models.Credit
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
		assert.Equal(t, models.UNPAID, created.Status)
		assert.Equal(t, int64(50), created.Amount)

		listed, err := store.ListCredits(context.Background())
		require.NoError(t, err)
		assert.Len(t, listed, 1)
	})

	t.Run("Missing Name", func(t *testing.T) {
		h, _ := newHandler(t)

		body, _ := json.Marshal(map[string]interface{}{"amount": 50})
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.Routes().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("Non-Positive Amount", func(t *testing.T) {
		h, _ := newHandler(t)

		body, _ := json.Marshal(map[string]interface{}{"customer_name": "Bob", "amount": 0})
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		h.Routes().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})
}

func TestListCredits(t *testing.T) {
	t.Run("Status Filter", func(t *testing.T) {
		h, store := newHandler(t)

		now := time.Now()
		_, err := store.AppendCredit(context.Background(), &models.Credit{
			Id: "cr-unpaid", CustomerName: "Bob", Amount: 50, Status: models.UNPAID, CreatedAt: now,
		})
		require.NoError(t, err)
		_, err = store.AppendCredit(context.Background(), &models.Credit{
			Id: "cr-paid", CustomerName: "Alice", Amount: 30, Status: models.CREDITPAID, CreatedAt: now.Add(-time.Hour),
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/?status=unpaid", nil)
		rr := httptest.NewRecorder()

		h.Routes().ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var got []models.Credit
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "cr-unpaid", got[0].Id)
	})
}

func TestSettleCredit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, store := newHandler(t)

		_, err := store.AppendCredit(context.Background(), &models.Credit{
			Id: "cr-1", CustomerName: "Bob", Amount: 50, Status: models.UNPAID, CreatedAt: time.Now(),
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/cr-1/settle", nil)
		rr := httptest.NewRecorder()

		h.Routes().ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var settled models.Credit
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &settled))
		assert.Equal(t, models.CREDITPAID, settled.Status)

		payments, err := store.ListPayments(context.Background())
		require.NoError(t, err)
		require.Len(t, payments, 1)
		assert.Equal(t, int64(50), payments[0].Amount)
		assert.Equal(t, models.CASH, payments[0].Method)
	})

	t.Run("Already Paid", func(t *testing.T) {
		h, store := newHandler(t)

		_, err := store.AppendCredit(context.Background(), &models.Credit{
			Id: "cr-1", CustomerName: "Bob", Amount: 50, Status: models.CREDITPAID, CreatedAt: time.Now(),
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/cr-1/settle", nil)
		rr := httptest.NewRecorder()

		h.Routes().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Not Found", func(t *testing.T) {
		h, _ := newHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/ghost/settle", nil)
		rr := httptest.NewRecorder()

		h.Routes().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
