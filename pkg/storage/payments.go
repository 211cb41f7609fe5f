package storage

import (
	"context"

	"github.com/cueshop/station-ledger/pkg/models"
)

// PaymentStore defines the interface for the payment log. The log is the
// audit trail: append-only, with no update or delete operations by design.
type PaymentStore interface {
	// AppendPayment stores a new payment log entry.
	AppendPayment(ctx context.Context, payment *models.Payment) (*models.Payment, error)

	// ListPayments retrieves all payment log entries.
	ListPayments(ctx context.Context) ([]models.Payment, error)
}
