package storage

import (
	"context"

	"github.com/chris/upi-wallet/pkg/models"
	"github.com/shopspring/decimal"
)

// AccountReader defines read access to the wallet account.
type AccountReader interface {
	// GetAccount returns a snapshot of the account.
	GetAccount(ctx context.Context) (*models.Account, error)

	// GetBalance returns the balance and when it last changed.
	GetBalance(ctx context.Context) (*models.Balance, error)

	// GetDailySpending returns today's spend against the daily limit.
	GetDailySpending(ctx context.Context) (*models.DailySpending, error)

	// GetLinkedBanks returns the linked bank accounts in order.
	GetLinkedBanks(ctx context.Context) ([]models.LinkedBank, error)

	// ValidateTransaction runs the advisory pre-flight check for a debit of amount.
	ValidateTransaction(ctx context.Context, amount decimal.Decimal) (*models.Validation, error)
}

// AccountManager defines the mutations of the wallet account.
type AccountManager interface {
	// UpdateBalance debits or credits |amount|, rolling back on a balance or limit violation.
	UpdateBalance(ctx context.Context, amount decimal.Decimal, direction models.Direction) (*models.Account, error)

	// UpdateDailyLimit replaces the daily limit.
	UpdateDailyLimit(ctx context.Context, limit decimal.Decimal) (*models.Account, error)

	// ResetDailySpending zeroes today's spend.
	ResetDailySpending(ctx context.Context) (*models.Account, error)

	// AddLinkedBank links a bank account as non-primary.
	AddLinkedBank(ctx context.Context, bankName, accountNumber string) (*models.Account, error)

	// SetPrimaryBank marks the matching bank as the only primary one.
	SetPrimaryBank(ctx context.Context, accountNumber string) (*models.Account, error)
}

// AccountStore combines the reader and manager interfaces.
type AccountStore interface {
	AccountReader
	AccountManager
}
