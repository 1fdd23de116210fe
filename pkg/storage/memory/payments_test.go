package memory

import (
	"context"
	"testing"

	"github.com/chris/upi-wallet/pkg/ledger"
	"github.com/chris/upi-wallet/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Send", func(t *testing.T) {
		store, _ := newTestStore(t, nil)

		payment, err := store.RecordPayment(ctx, &models.PaymentOrder{Transaction: models.Transaction{
			Type:        models.SEND,
			Amount:      decimal.NewFromInt(500),
			Recipient:   "Priya Sharma",
			RecipientId: "9812345670",
		}})

		require.NoError(t, err)
		assert.Equal(t, int64(9), payment.Transaction.Id)
		assertAmount(t, "24930.5", payment.Account.Balance)
		assertAmount(t, "1700", payment.Account.SpentToday)

		contact, err := store.GetContact(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 15, contact.TransactionCount)
		assertAmount(t, "500", contact.LastTransactionAmount)
	})

	t.Run("Receive", func(t *testing.T) {
		store, _ := newTestStore(t, withAccount(100, 1000, 1000))

		payment, err := store.RecordPayment(ctx, &models.PaymentOrder{Transaction: models.Transaction{
			Type:   models.RECEIVE,
			Amount: decimal.NewFromInt(60000),
		}})

		require.NoError(t, err)
		assertAmount(t, "60100", payment.Account.Balance)
		assertAmount(t, "1000", payment.Account.SpentToday)
	})

	t.Run("Bill", func(t *testing.T) {
		store, _ := newTestStore(t, nil)

		payment, err := store.RecordPayment(ctx, &models.PaymentOrder{
			BillId: 2,
			Transaction: models.Transaction{
				Type:     models.BILL,
				Amount:   decimal.NewFromInt(999),
				Category: "broadband",
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "broadband", payment.Transaction.Category)
		bill, err := store.GetBill(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, models.BILL_PAID, bill.Status)
		assert.True(t, bill.PaidAmount.Valid)
		assertAmount(t, "999", bill.PaidAmount.Decimal)
		require.NotNil(t, bill.PaidDate)
		assert.Equal(t, testNow, *bill.PaidDate)
	})

	t.Run("Bill Already Paid", func(t *testing.T) {
		store, _ := newTestStore(t, nil)

		_, err := store.RecordPayment(ctx, &models.PaymentOrder{
			BillId:      1,
			Transaction: models.Transaction{Type: models.BILL, Amount: decimal.NewFromInt(10)},
		})

		assert.ErrorIs(t, err, ledger.ErrAlreadyPaid)
		txs, _ := store.ListTransactions(ctx)
		assert.Len(t, txs, 8)
	})

	t.Run("Rule Violation Changes Nothing", func(t *testing.T) {
		store, _ := newTestStore(t, nil)
		before, _ := store.GetAccount(ctx)

		_, err := store.RecordPayment(ctx, &models.PaymentOrder{
			BillId:      6,
			Transaction: models.Transaction{Type: models.BILL, Amount: decimal.NewFromInt(60000)},
		})

		var lerr *ledger.Error
		require.ErrorAs(t, err, &lerr)
		assert.Equal(t, ledger.CodeInsufficientBalance, lerr.Code)
		assert.Len(t, lerr.Details, 3)

		after, _ := store.GetAccount(ctx)
		assert.Equal(t, before, after)
		txs, _ := store.ListTransactions(ctx)
		assert.Len(t, txs, 8)
		bill, _ := store.GetBill(ctx, 6)
		assert.Equal(t, models.BILL_PENDING, bill.Status)
	})

	t.Run("Below Minimum", func(t *testing.T) {
		store, _ := newTestStore(t, nil)

		_, err := store.RecordPayment(ctx, &models.PaymentOrder{Transaction: models.Transaction{
			Type:   models.RECHARGE,
			Amount: decimal.RequireFromString("0.5"),
		}})

		assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
	})
}
