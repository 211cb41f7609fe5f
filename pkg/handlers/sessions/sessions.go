package sessions

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cueshop/station-ledger/pkg/handlers"
	"github.com/cueshop/station-ledger/pkg/ledger"
	"github.com/go-chi/chi/v5"
)

// SessionsHandler holds the dependencies for session handlers. All billing
// decisions live in the ledger; the handler only decodes, stamps the clock,
// and maps errors.
type SessionsHandler struct {
	Ledger *ledger.Ledger
}

// NewSessionsHandler creates a new SessionsHandler.
func NewSessionsHandler(l *ledger.Ledger) *SessionsHandler {
	return &SessionsHandler{Ledger: l}
}

// Routes mounts the session endpoints.
func (h *SessionsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListSessions)
	r.Post("/", h.StartSession)
	r.Get("/{sessionID}", h.GetSession)
	r.Post("/{sessionID}/end", h.EndSession)
	return r
}

type startSessionRequest struct {
	StationId    string `json:"station_id"`
	CustomerName string `json:"customer_name"`
}

type endSessionRequest struct {
	Mode         ledger.Mode `json:"mode"`
	Amount       int64       `json:"amount"`
	CustomerName string      `json:"customer_name"`
}

// StartSession opens a session on an available station.
func (h *SessionsHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if req.StationId == "" {
		http.Error(w, "station_id is required", http.StatusBadRequest)
		return
	}

	session, err := h.Ledger.StartSession(r.Context(), req.StationId, req.CustomerName, time.Now())
	if err != nil {
		handlers.WriteError(w, err)
		return
	}
	handlers.WriteJSON(w, http.StatusCreated, session)
}

// EndSession closes a session with a payment mode and amount.
func (h *SessionsHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req endSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	closed, err := h.Ledger.EndSession(r.Context(), sessionID, req.Mode, req.Amount, req.CustomerName, time.Now())
	if err != nil {
		handlers.WriteError(w, err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, closed)
}

// GetSession retrieves one session; an active one carries its running charge.
func (h *SessionsHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	session, err := h.Ledger.GetSession(r.Context(), sessionID, time.Now())
	if err != nil {
		handlers.WriteError(w, err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, session)
}

// ListSessions retrieves sessions; ?active=true narrows to open ones.
func (h *SessionsHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	sessions, err := h.Ledger.ListSessions(r.Context(), activeOnly, time.Now())
	if err != nil {
		handlers.WriteError(w, err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, sessions)
}
