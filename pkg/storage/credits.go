package storage

import (
	"context"

	"github.com/cueshop/station-ledger/pkg/models"
)

// CreditUpdate carries the credit fields an update may change. Nil fields are
// left untouched.
type CreditUpdate struct {
	Status *models.CreditStatus

	// ExpectStatus, when set, makes the update conditional: it fails with
	// ErrPreconditionFailed unless the stored credit's status still equals
	// this value at write time.
	ExpectStatus *models.CreditStatus
}

// CreditStore defines the interface for managing customer credits.
type CreditStore interface {
	// GetCredit retrieves a credit by its ID.
	GetCredit(ctx context.Context, creditID string) (*models.Credit, error)

	// ListCredits retrieves all credits.
	ListCredits(ctx context.Context) ([]models.Credit, error)

	// AppendCredit stores a newly opened credit.
	AppendCredit(ctx context.Context, credit *models.Credit) (*models.Credit, error)

	// UpdateCredit applies the non-nil fields of the update to a credit
	// addressed by ID and returns the updated record.
	UpdateCredit(ctx context.Context, creditID string, upd CreditUpdate) (*models.Credit, error)
}
