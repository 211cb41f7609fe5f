package stations

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cueshop/station-ledger/pkg/handlers"
	"github.com/cueshop/station-ledger/pkg/models"
	"github.com/cueshop/station-ledger/pkg/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// StationsHandler holds the dependencies for station-directory handlers.
type StationsHandler struct {
	Store storage.StationStore
}

// NewStationsHandler creates a new StationsHandler.
func NewStationsHandler(store storage.StationStore) *StationsHandler {
	return &StationsHandler{Store: store}
}

// Routes mounts the station directory endpoints.
func (h *StationsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListStations)
	r.Post("/", h.CreateStation)
	r.Patch("/{stationID}", h.UpdateStation)
	r.Delete("/{stationID}", h.DeleteStation)
	return r
}

type newStationRequest struct {
	Name       string               `json:"name"`
	Type       models.StationType   `json:"type"`
	Status     models.StationStatus `json:"status"`
	HourlyRate float64              `json:"hourly_rate"`
}

type updateStationRequest struct {
	Name       *string               `json:"name"`
	Type       *models.StationType   `json:"type"`
	Status     *models.StationStatus `json:"status"`
	HourlyRate *float64              `json:"hourly_rate"`
}

// ListStations handles the logic for retrieving all stations.
func (h *StationsHandler) ListStations(w http.ResponseWriter, r *http.Request) {
	stations, err := h.Store.ListStations(r.Context())
	if err != nil {
		handlers.WriteError(w, err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, stations)
}

// CreateStation handles the logic for adding a station to the directory.
func (h *StationsHandler) CreateStation(w http.ResponseWriter, r *http.Request) {
	var req newStationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.Status == "" {
		req.Status = models.AVAILABLE
	}
	if err := validateStation(req.Name, req.Type, req.Status, req.HourlyRate); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	created, err := h.Store.CreateStation(r.Context(), &models.Station{
		Id:         uuid.New().String(),
		Name:       req.Name,
		Type:       req.Type,
		Status:     req.Status,
		HourlyRate: req.HourlyRate,
	})
	if err != nil {
		handlers.WriteError(w, err)
		return
	}
	handlers.WriteJSON(w, http.StatusCreated, created)
}

// UpdateStation handles the logic for mutating a station in place.
func (h *StationsHandler) UpdateStation(w http.ResponseWriter, r *http.Request) {
	stationID := chi.URLParam(r, "stationID")

	var req updateStationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.Type != nil && !validType(*req.Type) {
		http.Error(w, fmt.Sprintf("unknown station type %q", *req.Type), http.StatusUnprocessableEntity)
		return
	}
	if req.Status != nil && !validStatus(*req.Status) {
		http.Error(w, fmt.Sprintf("unknown station status %q", *req.Status), http.StatusUnprocessableEntity)
		return
	}
	if req.HourlyRate != nil && *req.HourlyRate < 0 {
		http.Error(w, "hourly rate must not be negative", http.StatusUnprocessableEntity)
		return
	}
	if req.Name == nil && req.Type == nil && req.Status == nil && req.HourlyRate == nil {
		http.Error(w, "no fields to update", http.StatusBadRequest)
		return
	}

	updated, err := h.Store.UpdateStation(r.Context(), stationID, storage.StationUpdate{
		Name:       req.Name,
		Type:       req.Type,
		Status:     req.Status,
		HourlyRate: req.HourlyRate,
	})
	if err != nil {
		handlers.WriteError(w, err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, updated)
}

// DeleteStation handles the logic for removing a station from the directory.
func (h *StationsHandler) DeleteStation(w http.ResponseWriter, r *http.Request) {
	stationID := chi.URLParam(r, "stationID")

	if err := h.Store.DeleteStation(r.Context(), stationID); err != nil {
		handlers.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func validateStation(name string, stationType models.StationType, status models.StationStatus, hourlyRate float64) error {
	if name == "" {
		return fmt.Errorf("station name is required")
	}
	if !validType(stationType) {
		return fmt.Errorf("unknown station type %q", stationType)
	}
	if !validStatus(status) {
		return fmt.Errorf("unknown station status %q", status)
	}
	if hourlyRate < 0 {
		return fmt.Errorf("hourly rate must not be negative")
	}
	return nil
}

func validType(t models.StationType) bool {
	return t == models.BILLIARD || t == models.PS4
}

func validStatus(s models.StationStatus) bool {
	return s == models.AVAILABLE || s == models.OCCUPIED || s == models.MAINTENANCE
}
