package mapping

import (
	"testing"
	"time"

	"github.com/chris/upi-wallet/pkg/api"
	"github.com/chris/upi-wallet/pkg/models"
	"github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToBillOrder(t *testing.T) {
	bill := &models.Bill{
		Id:            4,
		Category:      "gas",
		Provider:      "Indraprastha Gas",
		AccountNumber: "IGL88210",
		Amount:        decimal.RequireFromString("760.40"),
		DueDate:       types.Date{Time: time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)},
	}

	t.Run("Full Amount", func(t *testing.T) {
		order := ToBillOrder(bill, &api.BillPayment{BillId: 4})

		assert.Equal(t, int64(4), order.BillId)
		assert.Equal(t, models.BILL, order.Transaction.Type)
		assert.True(t, order.Transaction.Amount.Equal(bill.Amount))
		assert.Equal(t, "Indraprastha Gas", order.Transaction.Recipient)
		assert.Equal(t, "IGL88210", order.Transaction.RecipientId)
		assert.Equal(t, "gas bill payment", order.Transaction.Note)
		assert.Equal(t, "gas", order.Transaction.Category)
	})

	t.Run("Partial Amount", func(t *testing.T) {
		order := ToBillOrder(bill, &api.BillPayment{Amount: decimal.NewNullDecimal(decimal.NewFromInt(500))})

		assert.Equal(t, "500", order.Transaction.Amount.String())
	})
}

func TestToReceiveOrder(t *testing.T) {
	order := ToReceiveOrder(&api.ReceiveMoney{Amount: decimal.NewFromInt(10), Sender: "Rohan Verma", SenderId: "rohan.verma@okicici"})

	assert.Equal(t, models.RECEIVE, order.Transaction.Type)
	assert.Equal(t, "Rohan Verma", order.Transaction.Recipient)
	assert.Zero(t, order.BillId)
}
