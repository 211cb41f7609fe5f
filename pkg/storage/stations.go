package storage

import (
	"context"

	"github.com/cueshop/station-ledger/pkg/models"
)

// StationUpdate carries the station fields an update may change. Nil fields
// are left untouched.
type StationUpdate struct {
	Name       *string
	Type       *models.StationType
	Status     *models.StationStatus
	HourlyRate *float64

	// ExpectStatus, when set, makes the update conditional: it fails with
	// ErrPreconditionFailed unless the stored station's status still equals
	// this value at write time. Claiming a station for a new session rides on
	// this.
	ExpectStatus *models.StationStatus
}

// StationStore defines the interface for managing the station directory.
type StationStore interface {
	// GetStation retrieves a station by its ID.
	GetStation(ctx context.Context, stationID string) (*models.Station, error)

	// ListStations retrieves all stations.
	ListStations(ctx context.Context) ([]models.Station, error)

	// CreateStation creates a new station.
	CreateStation(ctx context.Context, station *models.Station) (*models.Station, error)

	// UpdateStation applies the non-nil fields of the update to a station
	// addressed by ID and returns the updated record.
	UpdateStation(ctx context.Context, stationID string, upd StationUpdate) (*models.Station, error)

	// DeleteStation removes a station from the directory.
	DeleteStation(ctx context.Context, stationID string) error
}
