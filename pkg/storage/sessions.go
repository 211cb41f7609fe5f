package storage

import (
	"context"
	"time"

	"github.com/cueshop/station-ledger/pkg/models"
)

// SessionUpdate carries the session fields an update may change. Nil fields
// are left untouched. Records are addressed by ID only; how the backing store
// locates the row is its own business.
type SessionUpdate struct {
	EndTime         *time.Time
	SuggestedAmount *int64
	PaidAmount      *int64
	Balance         *int64
	PaymentType     *models.PaymentMode
	CustomerName    *string
	PaymentStatus   *models.PaymentStatus

	// ExpectStatus, when set, makes the update conditional: it fails with
	// ErrPreconditionFailed unless the stored session's payment status still
	// equals this value at write time.
	ExpectStatus *models.PaymentStatus
}

// SessionReader defines the interface for reading session data.
type SessionReader interface {
	// GetSession retrieves a session by its ID.
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)

	// ListSessions retrieves all sessions, open and closed.
	ListSessions(ctx context.Context) ([]models.Session, error)
}

// SessionWriter defines the interface for creating and updating sessions.
type SessionWriter interface {
	// AppendSession stores a newly started session.
	AppendSession(ctx context.Context, session *models.Session) (*models.Session, error)

	// UpdateSession applies the non-nil fields of the update to a session
	// addressed by ID and returns the updated record.
	UpdateSession(ctx context.Context, sessionID string, upd SessionUpdate) (*models.Session, error)
}

// SessionStore combines the reader and writer interfaces.
type SessionStore interface {
	SessionReader
	SessionWriter
}
