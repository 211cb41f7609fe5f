package ledger

import "errors"

// ErrInvalidAmount is returned when an entered amount is negative, or zero
// where money must change hands.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInvalidMode is returned when the payment mode is not cash, partial, or credit.
var ErrInvalidMode = errors.New("invalid payment mode")

// ErrMissingCustomerName is returned when a partial or credit close has no
// customer to hang the open balance on.
var ErrMissingCustomerName = errors.New("customer name required")

// ErrStationUnavailable is returned when starting a session on a station that
// is occupied or under maintenance.
var ErrStationUnavailable = errors.New("station unavailable")

// ErrSessionAlreadyClosed is returned when closing a session whose payment
// status is no longer pending. A retried close lands here instead of
// double-crediting.
var ErrSessionAlreadyClosed = errors.New("session already closed")

// ErrCreditAlreadyPaid is returned when settling a credit that was already
// settled. Settlement is a hard error on repeat, not a no-op.
var ErrCreditAlreadyPaid = errors.New("credit already paid")

// ErrStorageUnavailable wraps failures of the external store. Every operation
// that surfaces it left the authoritative record untouched.
var ErrStorageUnavailable = errors.New("storage unavailable")
