// Package events publishes committed payments for asynchronous consumers.
package events

import (
	"context"
	"time"

	"github.com/chris/upi-wallet/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentEvent announces a payment that has been committed to the ledger.
type PaymentEvent struct {
	EventId     string             `json:"event_id"`
	Transaction models.Transaction `json:"transaction"`
	Balance     decimal.Decimal    `json:"balance"`
	OccurredAt  time.Time          `json:"occurred_at"`
}

// NewPaymentEvent builds the event for a committed payment.
func NewPaymentEvent(p *models.Payment) *PaymentEvent {
	return &PaymentEvent{
		EventId:     uuid.New().String(),
		Transaction: p.Transaction,
		Balance:     p.Account.Balance,
		OccurredAt:  p.Transaction.Date,
	}
}

// Publisher defines the interface for a component that delivers payment events.
type Publisher interface {
	// PublishPayment enqueues a committed payment event.
	PublishPayment(ctx context.Context, event *PaymentEvent) error
}

// NoOpPublisher drops every event. It is used when no queue is configured.
type NoOpPublisher struct{}

// Make sure we conform to the interface
var _ Publisher = (*NoOpPublisher)(nil)

// PublishPayment does nothing.
func (p *NoOpPublisher) PublishPayment(ctx context.Context, event *PaymentEvent) error {
	return nil
}
