package credits

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cueshop/station-ledger/pkg/handlers"
	"github.com/cueshop/station-ledger/pkg/ledger"
	"github.com/cueshop/station-ledger/pkg/models"
	"github.com/cueshop/station-ledger/pkg/storage"
	"github.com/go-chi/chi/v5"
)

// CreditsHandler holds the dependencies for credit handlers.
type CreditsHandler struct {
	Ledger *ledger.Ledger
	Store  storage.CreditStore
}

// NewCreditsHandler creates a new CreditsHandler.
func NewCreditsHandler(l *ledger.Ledger, store storage.CreditStore) *CreditsHandler {
	return &CreditsHandler{Ledger: l, Store: store}
}

// Routes mounts the credit endpoints.
func (h *CreditsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListCredits)
	r.Post("/", h.OpenCredit)
	r.Post("/{creditID}/settle", h.SettleCredit)
	return r
}

type openCreditRequest struct {
	CustomerName string `json:"customer_name"`
	Amount       int64  `json:"amount"`
	SessionId    string `json:"session_id"`
}

// ListCredits retrieves credits; ?status=unpaid or ?status=paid narrows.
func (h *CreditsHandler) ListCredits(w http.ResponseWriter, r *http.Request) {
	credits, err := h.Store.ListCredits(r.Context())
	if err != nil {
		handlers.WriteError(w, err)
		return
	}

	if status := r.URL.Query().Get("status"); status != "" {
		filtered := credits[:0]
		for _, credit := range credits {
			if credit.Status == models.CreditStatus(status) {
				filtered = append(filtered, credit)
			}
		}
		credits = filtered
	}
	handlers.WriteJSON(w, http.StatusOK, credits)
}

// OpenCredit records an outstanding balance directly, outside a session close.
func (h *CreditsHandler) OpenCredit(w http.ResponseWriter, r *http.Request) {
	var req openCreditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	credit, err := h.Ledger.OpenCredit(r.Context(), req.CustomerName, req.Amount, req.SessionId, time.Now())
	if err != nil {
		handlers.WriteError(w, err)
		return
	}
	handlers.WriteJSON(w, http.StatusCreated, credit)
}

// SettleCredit marks a credit paid and reconciles its session.
func (h *CreditsHandler) SettleCredit(w http.ResponseWriter, r *http.Request) {
	creditID := chi.URLParam(r, "creditID")

	settled, err := h.Ledger.SettleCredit(r.Context(), creditID, time.Now())
	if err != nil {
		handlers.WriteError(w, err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, settled)
}
