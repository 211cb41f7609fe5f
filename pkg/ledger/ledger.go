// Package ledger is the billing core: it opens and closes timed sessions on
// stations, splits a closing charge across cash, partial, and credit payment
// paths, and reconciles credit settlements back into the originating session.
//
// Every operation reads current record state through the storage ports,
// computes, and writes back. The authoritative write (session close, credit
// status flip) always goes first and is guarded by an expected-status
// precondition, so a retry or a racing writer fails cleanly instead of
// double-crediting. Derived writes (credit record, payment log entry, station
// release) follow and are best-effort: a failure there is logged but cannot
// invent or duplicate money.
//
// Time is an explicit argument everywhere so billing stays deterministic.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cueshop/station-ledger/pkg/billing"
	"github.com/cueshop/station-ledger/pkg/metrics"
	"github.com/cueshop/station-ledger/pkg/models"
	"github.com/cueshop/station-ledger/pkg/storage"
	"github.com/google/uuid"
)

// Mode is the payment mode a cashier picks when closing a session.
type Mode string

const (
	ModeCash    Mode = "cash"
	ModePartial Mode = "partial"
	ModeCredit  Mode = "credit"
)

// Ledger orchestrates session and credit operations over the storage ports.
type Ledger struct {
	store  storage.Storage
	logger *slog.Logger
}

// New creates a Ledger over the given store.
func New(store storage.Storage, logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{store: store, logger: logger}
}

// StartSession opens a session on a station. The station flip to occupied is
// a conditional write on status=available, so two cashiers grabbing the same
// table at once cannot both win.
func (l *Ledger) StartSession(ctx context.Context, stationID, customerName string, now time.Time) (*models.Session, error) {
	station, err := l.store.GetStation(ctx, stationID)
	if err != nil {
		return nil, storeErr(err)
	}
	if station.Status != models.AVAILABLE {
		return nil, fmt.Errorf("%w: station %s is %s", ErrStationUnavailable, stationID, station.Status)
	}

	occupied := models.OCCUPIED
	available := models.AVAILABLE
	if _, err := l.store.UpdateStation(ctx, stationID, storage.StationUpdate{
		Status:       &occupied,
		ExpectStatus: &available,
	}); err != nil {
		if errors.Is(err, storage.ErrPreconditionFailed) {
			return nil, fmt.Errorf("%w: station %s was taken", ErrStationUnavailable, stationID)
		}
		return nil, storeErr(err)
	}

	session := &models.Session{
		Id:            uuid.New().String(),
		StationId:     station.Id,
		StationName:   station.Name,
		StartTime:     now,
		PaymentType:   models.PENDING_MODE,
		CustomerName:  customerName,
		PaymentStatus: models.PENDING,
	}
	created, err := l.store.AppendSession(ctx, session)
	if err != nil {
		// Give the station back before reporting failure.
		if _, rbErr := l.store.UpdateStation(ctx, stationID, storage.StationUpdate{Status: &available}); rbErr != nil {
			l.logger.Error("failed to release station after session append failure",
				slog.String("station_id", stationID), slog.String("error", rbErr.Error()))
		}
		return nil, storeErr(err)
	}
	return created, nil
}

// EndSession closes a session with the given payment mode and amount.
//
// cash takes the entered amount as both the charge and the payment: the
// cashier directly states the charge, overriding the time-based suggestion.
// partial and credit price the session from elapsed time; partial collects
// the entered amount and credits the shortfall, credit collects nothing and
// credits the whole charge. A partial payment covering the full charge is
// treated as a full cash settlement and opens no credit.
//
// Re-invoking on an already-closed session fails with ErrSessionAlreadyClosed
// and creates no duplicate credit or payment.
func (l *Ledger) EndSession(ctx context.Context, sessionID string, mode Mode, enteredAmount int64, customerName string, now time.Time) (*models.Session, error) {
	session, err := l.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, storeErr(err)
	}
	if !session.Active() {
		return nil, fmt.Errorf("%w: session %s is %s", ErrSessionAlreadyClosed, sessionID, session.PaymentStatus)
	}

	if enteredAmount < 0 {
		return nil, fmt.Errorf("%w: entered amount %d is negative", ErrInvalidAmount, enteredAmount)
	}
	name := customerName
	if name == "" {
		name = session.CustomerName
	}

	var suggested, paid int64
	var paymentType models.PaymentMode

	switch mode {
	case ModeCash:
		if enteredAmount == 0 {
			return nil, fmt.Errorf("%w: cash close requires a positive amount", ErrInvalidAmount)
		}
		suggested = enteredAmount
		paid = enteredAmount
		paymentType = models.CASH_MODE

	case ModePartial, ModeCredit:
		if name == "" {
			return nil, fmt.Errorf("%w: mode %s needs a customer to carry the balance", ErrMissingCustomerName, mode)
		}
		station, err := l.store.GetStation(ctx, session.StationId)
		if err != nil {
			return nil, storeErr(err)
		}
		suggested, err = billing.SuggestedCost(session.StartTime, now, station.HourlyRate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
		}
		if mode == ModePartial {
			paid = enteredAmount
			paymentType = models.CASH_MODE
			if paid > suggested {
				// Covers the charge in full; overage is change handed back.
				paid = suggested
			}
			if paid == 0 {
				// No cash moved; the whole charge rides on credit.
				paymentType = models.CREDIT_MODE
			}
		} else {
			paid = 0
			paymentType = models.CREDIT_MODE
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	classification, err := billing.ClassifyPayment(suggested, paid)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	status := statusFor(classification)
	balance := suggested - paid

	// Authoritative write first: the close only succeeds if the session is
	// still pending at write time.
	pending := models.PENDING
	upd := storage.SessionUpdate{
		EndTime:         &now,
		SuggestedAmount: &suggested,
		PaidAmount:      &paid,
		Balance:         &balance,
		PaymentType:     &paymentType,
		PaymentStatus:   &status,
		ExpectStatus:    &pending,
	}
	if name != "" {
		upd.CustomerName = &name
	}
	closed, err := l.store.UpdateSession(ctx, sessionID, upd)
	if err != nil {
		if errors.Is(err, storage.ErrPreconditionFailed) {
			return nil, fmt.Errorf("%w: session %s", ErrSessionAlreadyClosed, sessionID)
		}
		return nil, storeErr(err)
	}

	// Derived writes. The session is closed; failures here are logged, not
	// rolled back.
	if balance > 0 {
		if _, err := l.OpenCredit(ctx, name, balance, sessionID, now); err != nil {
			l.logger.Error("session closed but credit was not recorded",
				slog.String("session_id", sessionID),
				slog.Int64("balance", balance),
				slog.String("error", err.Error()))
		}
	}
	if paid > 0 {
		l.logPayment(ctx, paid, models.CASH, sessionID, now)
	}
	l.releaseStation(ctx, session.StationId)

	return closed, nil
}

// OpenCredit records an outstanding customer balance, optionally linked to
// the session that produced it.
func (l *Ledger) OpenCredit(ctx context.Context, customerName string, amount int64, sessionID string, now time.Time) (*models.Credit, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: credit amount must be positive, got %d", ErrInvalidAmount, amount)
	}
	if customerName == "" {
		return nil, ErrMissingCustomerName
	}
	credit := &models.Credit{
		Id:           uuid.New().String(),
		CustomerName: customerName,
		Amount:       amount,
		Status:       models.UNPAID,
		CreatedAt:    now,
		SessionId:    sessionID,
	}
	created, err := l.store.AppendCredit(ctx, credit)
	if err != nil {
		return nil, storeErr(err)
	}
	return created, nil
}

// SettleCredit marks a credit paid, reconciles the originating session, and
// logs the collected cash.
//
// Reconciliation adds the credit amount to the session's paid amount rather
// than forcing paidAmount = suggestedAmount: for credits opened by EndSession
// the result is identical (the credit is exactly the shortfall), and a
// partial payment that preceded the credit is never silently overwritten.
func (l *Ledger) SettleCredit(ctx context.Context, creditID string, now time.Time) (*models.Credit, error) {
	credit, err := l.store.GetCredit(ctx, creditID)
	if err != nil {
		return nil, storeErr(err)
	}
	if credit.Status == models.CREDITPAID {
		return nil, fmt.Errorf("%w: credit %s", ErrCreditAlreadyPaid, creditID)
	}

	paidStatus := models.CREDITPAID
	unpaid := models.UNPAID
	settled, err := l.store.UpdateCredit(ctx, creditID, storage.CreditUpdate{
		Status:       &paidStatus,
		ExpectStatus: &unpaid,
	})
	if err != nil {
		if errors.Is(err, storage.ErrPreconditionFailed) {
			return nil, fmt.Errorf("%w: credit %s", ErrCreditAlreadyPaid, creditID)
		}
		return nil, storeErr(err)
	}

	if credit.SessionId != "" {
		l.reconcileSession(ctx, credit)
	}
	l.logPayment(ctx, credit.Amount, models.CASH, credit.SessionId, now)

	return settled, nil
}

// reconcileSession propagates a settled credit back onto the session that
// opened it.
func (l *Ledger) reconcileSession(ctx context.Context, credit *models.Credit) {
	session, err := l.store.GetSession(ctx, credit.SessionId)
	if err != nil {
		l.logger.Error("credit settled but linked session could not be read",
			slog.String("credit_id", credit.Id),
			slog.String("session_id", credit.SessionId),
			slog.String("error", err.Error()))
		return
	}

	paid := session.PaidAmount + credit.Amount
	if paid > session.SuggestedAmount {
		paid = session.SuggestedAmount
	}
	balance := session.SuggestedAmount - paid
	// A hand-opened credit can cover less than what the session owes; the
	// session is only paid once nothing remains outstanding.
	status := models.PAID
	if balance > 0 {
		status = models.PARTIALLY_PAID
	}
	if _, err := l.store.UpdateSession(ctx, credit.SessionId, storage.SessionUpdate{
		PaidAmount:    &paid,
		Balance:       &balance,
		PaymentStatus: &status,
	}); err != nil {
		l.logger.Error("credit settled but session reconciliation failed",
			slog.String("credit_id", credit.Id),
			slog.String("session_id", credit.SessionId),
			slog.String("error", err.Error()))
	}
}

// logPayment appends to the audit trail; the money has already moved, so a
// failure is logged rather than returned.
func (l *Ledger) logPayment(ctx context.Context, amount int64, method models.PaymentMethod, sessionID string, now time.Time) {
	payment := &models.Payment{
		Id:        uuid.New().String(),
		Date:      now,
		Amount:    amount,
		Method:    method,
		SessionId: sessionID,
	}
	if _, err := l.store.AppendPayment(ctx, payment); err != nil {
		l.logger.Error("payment collected but not recorded in the log",
			slog.String("session_id", sessionID),
			slog.Int64("amount", amount),
			slog.String("error", err.Error()))
		return
	}
	metrics.PaymentsRecorded.WithLabelValues(string(method)).Inc()
	metrics.PaymentsAmount.WithLabelValues(string(method)).Add(float64(amount))
}

// releaseStation flips a station back to available after its session ends.
// The station may have been deleted or put into maintenance mid-session.
func (l *Ledger) releaseStation(ctx context.Context, stationID string) {
	available := models.AVAILABLE
	occupied := models.OCCUPIED
	if _, err := l.store.UpdateStation(ctx, stationID, storage.StationUpdate{
		Status:       &available,
		ExpectStatus: &occupied,
	}); err != nil && !errors.Is(err, storage.ErrStationNotFound) && !errors.Is(err, storage.ErrPreconditionFailed) {
		l.logger.Error("failed to release station after session close",
			slog.String("station_id", stationID), slog.String("error", err.Error()))
	}
}

// GetSession returns a session; active sessions carry a live suggested
// amount computed from elapsed time. The live amount is display state and is
// never written back.
func (l *Ledger) GetSession(ctx context.Context, sessionID string, now time.Time) (*models.Session, error) {
	session, err := l.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, storeErr(err)
	}
	l.decorateLiveAmount(ctx, session, now)
	return session, nil
}

// ListSessions returns sessions, optionally only active ones, each active one
// decorated with its live suggested amount.
func (l *Ledger) ListSessions(ctx context.Context, activeOnly bool, now time.Time) ([]models.Session, error) {
	sessions, err := l.store.ListSessions(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	out := sessions[:0]
	for i := range sessions {
		if activeOnly && !sessions[i].Active() {
			continue
		}
		l.decorateLiveAmount(ctx, &sessions[i], now)
		out = append(out, sessions[i])
	}
	return out, nil
}

func (l *Ledger) decorateLiveAmount(ctx context.Context, session *models.Session, now time.Time) {
	if !session.Active() {
		return
	}
	station, err := l.store.GetStation(ctx, session.StationId)
	if err != nil {
		return
	}
	if amount, err := billing.SuggestedCost(session.StartTime, now, station.HourlyRate); err == nil {
		session.SuggestedAmount = amount
		session.Balance = amount
	}
}

func statusFor(c billing.Classification) models.PaymentStatus {
	switch c {
	case billing.FULL:
		return models.PAID
	case billing.PARTIAL:
		return models.PARTIALLY_PAID
	default:
		return models.CREDIT
	}
}

// storeErr passes domain sentinels through untouched and tags everything else
// as a storage failure.
func storeErr(err error) error {
	switch {
	case errors.Is(err, storage.ErrStationNotFound),
		errors.Is(err, storage.ErrSessionNotFound),
		errors.Is(err, storage.ErrCreditNotFound),
		errors.Is(err, storage.ErrStationExists),
		errors.Is(err, storage.ErrPreconditionFailed):
		return err
	}
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
