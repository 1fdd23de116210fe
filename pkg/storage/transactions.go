package storage

import (
	"context"
	"time"

	"github.com/chris/upi-wallet/pkg/models"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read-only projections over the transaction log.
// Every list is ordered newest first.
type TransactionReader interface {
	// ListTransactions retrieves every transaction.
	ListTransactions(ctx context.Context) ([]models.Transaction, error)

	// GetTransaction retrieves a transaction by its ID.
	GetTransaction(ctx context.Context, id int64) (*models.Transaction, error)

	// ListTransactionsByType retrieves the transactions of one type.
	ListTransactionsByType(ctx context.Context, txType models.TransactionType) ([]models.Transaction, error)

	// ListTransactionsByStatus retrieves the transactions in one status.
	ListTransactionsByStatus(ctx context.Context, status models.TransactionStatus) ([]models.Transaction, error)

	// SearchTransactions matches query case-insensitively against recipient, note and category.
	SearchTransactions(ctx context.Context, query string) ([]models.Transaction, error)

	// GetTotalAmount nets completed transactions: receives add, everything else subtracts.
	GetTotalAmount(ctx context.Context) (decimal.Decimal, error)

	// GetMonthlyStats aggregates completed sends and receives of one calendar month.
	GetMonthlyStats(ctx context.Context, year int, month time.Month) (*models.MonthlyStats, error)
}

// TransactionManager defines the log mutations.
type TransactionManager interface {
	// CreateTransaction appends a completed transaction with the next ID and the current time.
	CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)

	// UpdateTransaction applies a partial update.
	UpdateTransaction(ctx context.Context, id int64, update *models.TransactionUpdate) (*models.Transaction, error)

	// DeleteTransaction removes a transaction and returns it.
	DeleteTransaction(ctx context.Context, id int64) (*models.Transaction, error)
}

// TransactionStore combines the reader and manager interfaces.
type TransactionStore interface {
	TransactionReader
	TransactionManager
}
