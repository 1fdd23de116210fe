package websockets

import (
	"github.com/chris/upi-wallet/pkg/models"
	"github.com/shopspring/decimal"
)

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeBalanceUpdate is sent after every committed payment.
	MessageTypeBalanceUpdate MessageType = "balanceUpdate"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// BalanceUpdatePayload is the payload for a balanceUpdate message.
type BalanceUpdatePayload struct {
	TransactionID int64                  `json:"transaction_id"`
	Type          models.TransactionType `json:"type"`
	// Change is signed: positive for receives, negative otherwise.
	Change     decimal.Decimal `json:"change"`
	NewBalance decimal.Decimal `json:"new_balance"`
	SpentToday decimal.Decimal `json:"spent_today"`
}

// NewBalanceUpdate builds the balanceUpdate message for a committed payment.
func NewBalanceUpdate(p *models.Payment) Message {
	change := p.Transaction.Amount
	if p.Transaction.Type != models.RECEIVE {
		change = change.Neg()
	}
	return Message{
		Type: MessageTypeBalanceUpdate,
		Payload: BalanceUpdatePayload{
			TransactionID: p.Transaction.Id,
			Type:          p.Transaction.Type,
			Change:        change,
			NewBalance:    p.Account.Balance,
			SpentToday:    p.Account.SpentToday,
		},
	}
}
