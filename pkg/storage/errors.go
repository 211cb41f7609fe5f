package storage

import "errors"

// ErrStationNotFound is returned when no station exists for the given ID.
var ErrStationNotFound = errors.New("station not found")

// ErrSessionNotFound is returned when no session exists for the given ID.
var ErrSessionNotFound = errors.New("session not found")

// ErrCreditNotFound is returned when no credit exists for the given ID.
var ErrCreditNotFound = errors.New("credit not found")

// ErrStationExists is returned when creating a station whose ID is taken.
var ErrStationExists = errors.New("station already exists")

// ErrPreconditionFailed is returned when a conditional update's expected
// status no longer matches the stored record, e.g. a second close of the same
// session or two racing settlements of one credit.
var ErrPreconditionFailed = errors.New("record state precondition failed")
