package memory

import (
	"context"
	"testing"
	"time"

	"github.com/chris/upi-wallet/pkg/ledger"
	"github.com/chris/upi-wallet/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTransactions(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, nil)

	t.Run("Newest First", func(t *testing.T) {
		txs, err := store.ListTransactions(ctx)
		require.NoError(t, err)
		require.Len(t, txs, 8)
		for i := 1; i < len(txs); i++ {
			assert.False(t, txs[i].Date.After(txs[i-1].Date))
		}
	})

	t.Run("By Type", func(t *testing.T) {
		txs, err := store.ListTransactionsByType(ctx, models.RECEIVE)
		require.NoError(t, err)
		assert.Len(t, txs, 2)
		assert.Equal(t, int64(2), txs[0].Id)
	})

	t.Run("By Status", func(t *testing.T) {
		txs, err := store.ListTransactionsByStatus(ctx, models.FAILED)
		require.NoError(t, err)
		require.Len(t, txs, 1)
		assert.Equal(t, int64(6), txs[0].Id)
	})

	t.Run("Search", func(t *testing.T) {
		txs, err := store.SearchTransactions(ctx, "BILL PAYMENT")
		require.NoError(t, err)
		assert.Len(t, txs, 2)

		txs, err = store.SearchTransactions(ctx, "")
		require.NoError(t, err)
		assert.Len(t, txs, 8)
	})

	t.Run("Reads Are Idempotent", func(t *testing.T) {
		first, _ := store.ListTransactions(ctx)
		second, _ := store.ListTransactions(ctx)
		assert.Equal(t, first, second)
	})
}

func TestGetTransaction(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, nil)

	t.Run("Success", func(t *testing.T) {
		tx, err := store.GetTransaction(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Priya Sharma", tx.Recipient)
	})

	t.Run("Not Found", func(t *testing.T) {
		_, err := store.GetTransaction(ctx, 42)
		assert.ErrorIs(t, err, ledger.ErrNotFound)
		assert.EqualError(t, err, "Transaction not found")
	})
}

func TestTransactionAggregates(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, nil)

	total, err := store.GetTotalAmount(ctx)
	require.NoError(t, err)
	assertAmount(t, "850.25", total)

	stats, err := store.GetMonthlyStats(ctx, 2026, time.October)
	require.NoError(t, err)
	assertAmount(t, "1200", stats.Sent)
	assertAmount(t, "5000", stats.Received)
	assertAmount(t, "3800", stats.Total)

	_, err = store.GetMonthlyStats(ctx, 2026, time.Month(13))
	assert.Equal(t, ledger.CodeInvalidInput, ledger.CodeOf(err))
}

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("Assigns Id Date And Status", func(t *testing.T) {
		store, _ := newTestStore(t, nil)

		created, err := store.CreateTransaction(ctx, &models.Transaction{
			Id:        3,
			Type:      models.SEND,
			Amount:    decimal.NewFromInt(250),
			Recipient: "Meera Nair",
			Status:    models.FAILED,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(9), created.Id)
		assert.Equal(t, testNow, created.Date)
		assert.Equal(t, models.COMPLETED, created.Status)
		assert.Equal(t, "transfer", created.Category)

		got, err := store.GetTransaction(ctx, 9)
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("Does Not Touch Balance", func(t *testing.T) {
		store, _ := newTestStore(t, nil)

		_, err := store.CreateTransaction(ctx, &models.Transaction{Type: models.SEND, Amount: decimal.NewFromInt(999999)})

		require.NoError(t, err)
		acct, _ := store.GetAccount(ctx)
		assertAmount(t, "25430.5", acct.Balance)
	})

	t.Run("Ids Are Never Reused", func(t *testing.T) {
		store, _ := newTestStore(t, nil)

		deleted, err := store.DeleteTransaction(ctx, 8)
		require.NoError(t, err)
		assert.Equal(t, int64(8), deleted.Id)

		created, err := store.CreateTransaction(ctx, &models.Transaction{Type: models.RECEIVE, Amount: decimal.NewFromInt(1)})
		require.NoError(t, err)
		assert.Equal(t, int64(9), created.Id)
	})

	t.Run("Invalid", func(t *testing.T) {
		store, _ := newTestStore(t, nil)

		_, err := store.CreateTransaction(ctx, &models.Transaction{Type: "gift", Amount: decimal.NewFromInt(1)})
		assert.Equal(t, ledger.CodeInvalidInput, ledger.CodeOf(err))

		_, err = store.CreateTransaction(ctx, &models.Transaction{Type: models.SEND, Amount: decimal.Zero})
		assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
	})
}

func TestUpdateTransaction(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, nil)

	t.Run("Success", func(t *testing.T) {
		status := models.COMPLETED
		note := "Movie night"

		updated, err := store.UpdateTransaction(ctx, 5, &models.TransactionUpdate{Status: &status, Note: &note})

		require.NoError(t, err)
		assert.Equal(t, models.COMPLETED, updated.Status)
		assert.Equal(t, "Movie night", updated.Note)
		assert.Equal(t, "Ananya Iyer", updated.Recipient)
		assert.Equal(t, int64(5), updated.Id)
	})

	t.Run("Invalid Status", func(t *testing.T) {
		status := models.TransactionStatus("lost")
		_, err := store.UpdateTransaction(ctx, 5, &models.TransactionUpdate{Status: &status})
		assert.Equal(t, ledger.CodeInvalidInput, ledger.CodeOf(err))
	})

	t.Run("Not Found", func(t *testing.T) {
		_, err := store.UpdateTransaction(ctx, 99, &models.TransactionUpdate{})
		assert.ErrorIs(t, err, ledger.ErrNotFound)
	})
}
