// Package memory implements the storage ports with mutex-guarded in-memory
// maps keyed by record ID. It backs the core's tests and the
// STORAGE_BACKEND=memory mode for local development.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/cueshop/station-ledger/pkg/models"
	"github.com/cueshop/station-ledger/pkg/storage"
)

// Store holds all records in process memory.
type Store struct {
	mu       sync.Mutex
	stations map[string]models.Station
	sessions map[string]models.Session
	credits  map[string]models.Credit
	payments []models.Payment
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		stations: make(map[string]models.Station),
		sessions: make(map[string]models.Session),
		credits:  make(map[string]models.Credit),
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// GetStation retrieves a station by its ID.
func (s *Store) GetStation(ctx context.Context, stationID string) (*models.Station, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	station, ok := s.stations[stationID]
	if !ok {
		return nil, storage.ErrStationNotFound
	}
	return &station, nil
}

// ListStations retrieves all stations, ordered by name for stable output.
func (s *Store) ListStations(ctx context.Context) ([]models.Station, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stations := make([]models.Station, 0, len(s.stations))
	for _, station := range s.stations {
		stations = append(stations, station)
	}
	sort.Slice(stations, func(i, j int) bool { return stations[i].Name < stations[j].Name })
	return stations, nil
}

// CreateStation creates a new station.
func (s *Store) CreateStation(ctx context.Context, station *models.Station) (*models.Station, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.stations[station.Id]; ok {
		return nil, storage.ErrStationExists
	}
	s.stations[station.Id] = *station
	created := *station
	return &created, nil
}

// UpdateStation applies the non-nil fields of the update to a station.
func (s *Store) UpdateStation(ctx context.Context, stationID string, upd storage.StationUpdate) (*models.Station, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	station, ok := s.stations[stationID]
	if !ok {
		return nil, storage.ErrStationNotFound
	}
	if upd.ExpectStatus != nil && station.Status != *upd.ExpectStatus {
		return nil, storage.ErrPreconditionFailed
	}
	if upd.Name != nil {
		station.Name = *upd.Name
	}
	if upd.Type != nil {
		station.Type = *upd.Type
	}
	if upd.Status != nil {
		station.Status = *upd.Status
	}
	if upd.HourlyRate != nil {
		station.HourlyRate = *upd.HourlyRate
	}
	s.stations[stationID] = station
	return &station, nil
}

// DeleteStation removes a station from the directory.
func (s *Store) DeleteStation(ctx context.Context, stationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.stations[stationID]; !ok {
		return storage.ErrStationNotFound
	}
	delete(s.stations, stationID)
	return nil
}

// GetSession retrieves a session by its ID.
func (s *Store) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, storage.ErrSessionNotFound
	}
	return &session, nil
}

// ListSessions retrieves all sessions, newest start first.
func (s *Store) ListSessions(ctx context.Context) ([]models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := make([]models.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		sessions = append(sessions, session)
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].StartTime.After(sessions[j].StartTime) })
	return sessions, nil
}

// AppendSession stores a newly started session.
func (s *Store) AppendSession(ctx context.Context, session *models.Session) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.Id] = *session
	created := *session
	return &created, nil
}

// UpdateSession applies the non-nil fields of the update to a session. When
// ExpectStatus is set the whole update is rejected unless the stored payment
// status still matches, which is what makes a session close idempotent.
func (s *Store) UpdateSession(ctx context.Context, sessionID string, upd storage.SessionUpdate) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, storage.ErrSessionNotFound
	}
	if upd.ExpectStatus != nil && session.PaymentStatus != *upd.ExpectStatus {
		return nil, storage.ErrPreconditionFailed
	}
	if upd.EndTime != nil {
		endTime := *upd.EndTime
		session.EndTime = &endTime
	}
	if upd.SuggestedAmount != nil {
		session.SuggestedAmount = *upd.SuggestedAmount
	}
	if upd.PaidAmount != nil {
		session.PaidAmount = *upd.PaidAmount
	}
	if upd.Balance != nil {
		session.Balance = *upd.Balance
	}
	if upd.PaymentType != nil {
		session.PaymentType = *upd.PaymentType
	}
	if upd.CustomerName != nil {
		session.CustomerName = *upd.CustomerName
	}
	if upd.PaymentStatus != nil {
		session.PaymentStatus = *upd.PaymentStatus
	}
	s.sessions[sessionID] = session
	return &session, nil
}

// GetCredit retrieves a credit by its ID.
func (s *Store) GetCredit(ctx context.Context, creditID string) (*models.Credit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	credit, ok := s.credits[creditID]
	if !ok {
		return nil, storage.ErrCreditNotFound
	}
	return &credit, nil
}

// ListCredits retrieves all credits, newest first.
func (s *Store) ListCredits(ctx context.Context) ([]models.Credit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	credits := make([]models.Credit, 0, len(s.credits))
	for _, credit := range s.credits {
		credits = append(credits, credit)
	}
	sort.Slice(credits, func(i, j int) bool { return credits[i].CreatedAt.After(credits[j].CreatedAt) })
	return credits, nil
}

// AppendCredit stores a newly opened credit.
func (s *Store) AppendCredit(ctx context.Context, credit *models.Credit) (*models.Credit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.credits[credit.Id] = *credit
	created := *credit
	return &created, nil
}

// UpdateCredit applies the non-nil fields of the update to a credit.
func (s *Store) UpdateCredit(ctx context.Context, creditID string, upd storage.CreditUpdate) (*models.Credit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	credit, ok := s.credits[creditID]
	if !ok {
		return nil, storage.ErrCreditNotFound
	}
	if upd.ExpectStatus != nil && credit.Status != *upd.ExpectStatus {
		return nil, storage.ErrPreconditionFailed
	}
	if upd.Status != nil {
		credit.Status = *upd.Status
	}
	s.credits[creditID] = credit
	return &credit, nil
}

// AppendPayment stores a new payment log entry.
func (s *Store) AppendPayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.payments = append(s.payments, *payment)
	created := *payment
	return &created, nil
}

// ListPayments retrieves all payment log entries, newest first.
func (s *Store) ListPayments(ctx context.Context) ([]models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payments := make([]models.Payment, len(s.payments))
	copy(payments, s.payments)
	sort.SliceStable(payments, func(i, j int) bool { return payments[i].Date.After(payments[j].Date) })
	return payments, nil
}
