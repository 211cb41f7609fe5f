package payments

import (
	"net/http"

	"github.com/cueshop/station-ledger/pkg/handlers"
	"github.com/cueshop/station-ledger/pkg/storage"
	"github.com/go-chi/chi/v5"
)

// PaymentsHandler holds the dependencies for payment-log handlers. The log is
// read-only over HTTP; entries are only ever written by the ledger.
type PaymentsHandler struct {
	Store storage.PaymentStore
}

// NewPaymentsHandler creates a new PaymentsHandler.
func NewPaymentsHandler(store storage.PaymentStore) *PaymentsHandler {
	return &PaymentsHandler{Store: store}
}

// Routes mounts the payment log endpoints.
func (h *PaymentsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListPayments)
	return r
}

// ListPayments retrieves the audit trail.
func (h *PaymentsHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Store.ListPayments(r.Context())
	if err != nil {
		handlers.WriteError(w, err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, payments)
}
