package payments_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cueshop/station-ledger/pkg/handlers/payments"
	"github.com/cueshop/station-ledger/pkg/models"
	"github.com/cueshop/station-ledger/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListPayments(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("ListPayments", mock.Anything).Return([]models.Payment{
			{Id: "pay-1", Date: time.Now(), Amount: 75, Method: models.CASH, SessionId: "sess-1"},
		}, nil)

		h := payments.NewPaymentsHandler(mockStorage)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()

		h.Routes().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Storage Failure", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("ListPayments", mock.Anything).Return(nil, errors.New("scan failed"))

		h := payments.NewPaymentsHandler(mockStorage)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()

		h.Routes().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
