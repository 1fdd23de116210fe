// Package notifications turns committed-payment events into user-facing notification lines.
package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	lambda_events "github.com/aws/aws-lambda-go/events"
	"github.com/chris/upi-wallet/pkg/events"
	"github.com/chris/upi-wallet/pkg/format"
	"github.com/chris/upi-wallet/pkg/models"
)

var errMissingEventId = errors.New("payment event has no event_id")

// Render builds the notification line for a payment event.
func Render(event *events.PaymentEvent) string {
	tx := event.Transaction
	amount := format.Currency(tx.Amount)
	switch tx.Type {
	case models.SEND:
		return fmt.Sprintf("%s sent to %s", amount, tx.Recipient)
	case models.RECEIVE:
		return fmt.Sprintf("%s received from %s", amount, tx.Recipient)
	case models.BILL:
		return fmt.Sprintf("Bill payment of %s to %s successful", amount, tx.Recipient)
	case models.RECHARGE:
		return fmt.Sprintf("Recharge of %s successful", amount)
	default:
		return fmt.Sprintf("Payment of %s recorded", amount)
	}
}

// Handler consumes SQS batches of payment events.
type Handler struct {
	Logger *slog.Logger
}

// NewHandler creates a new Handler.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{Logger: logger}
}

// Handle logs a notification for every record. Records that cannot be decoded are
// reported as batch item failures, so SQS redelivers only those.
func (h *Handler) Handle(ctx context.Context, sqsEvent lambda_events.SQSEvent) (lambda_events.SQSEventResponse, error) {
	var resp lambda_events.SQSEventResponse
	for _, message := range sqsEvent.Records {
		event, err := decode(message.Body)
		if err != nil {
			h.Logger.ErrorContext(ctx, "failed to decode payment event", "message_id", message.MessageId, "error", err)
			resp.BatchItemFailures = append(resp.BatchItemFailures, lambda_events.SQSBatchItemFailure{ItemIdentifier: message.MessageId})
			continue
		}
		h.Logger.InfoContext(ctx, Render(event),
			"event_id", event.EventId,
			"transaction_id", event.Transaction.Id,
			"balance", format.Currency(event.Balance),
		)
	}
	return resp, nil
}

func decode(body string) (*events.PaymentEvent, error) {
	var event events.PaymentEvent
	if err := json.Unmarshal([]byte(body), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payment event: %w", err)
	}
	if event.EventId == "" {
		return nil, errMissingEventId
	}
	return &event, nil
}
