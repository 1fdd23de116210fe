package storage

import (
	"context"

	"github.com/chris/upi-wallet/pkg/models"
)

// PaymentProcessor commits a money movement as one atomic unit.
type PaymentProcessor interface {
	// RecordPayment applies the balance change, appends the transaction, and settles the
	// referenced bill or bumps the matching contact, all or nothing.
	RecordPayment(ctx context.Context, order *models.PaymentOrder) (*models.Payment, error)
}
