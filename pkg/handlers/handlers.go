// Package handlers holds the shared HTTP plumbing for the per-record handler
// packages: JSON responses and the mapping from the core's typed errors to
// status codes.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cueshop/station-ledger/pkg/ledger"
	"github.com/cueshop/station-ledger/pkg/storage"
)

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", slog.String("error", err.Error()))
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// WriteError maps a core or storage error onto an HTTP status. Every failure
// in the taxonomy is recoverable at the caller; anything unrecognized is
// reported as a storage failure.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInvalidMode),
		errors.Is(err, ledger.ErrMissingCustomerName):
		WriteJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, ledger.ErrStationUnavailable),
		errors.Is(err, ledger.ErrSessionAlreadyClosed),
		errors.Is(err, ledger.ErrCreditAlreadyPaid),
		errors.Is(err, storage.ErrStationExists):
		WriteJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, storage.ErrStationNotFound),
		errors.Is(err, storage.ErrSessionNotFound),
		errors.Is(err, storage.ErrCreditNotFound):
		WriteJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		slog.Error("request failed on storage", slog.String("error", err.Error()))
		WriteJSON(w, http.StatusInternalServerError, errorResponse{Error: "storage unavailable"})
	}
}
