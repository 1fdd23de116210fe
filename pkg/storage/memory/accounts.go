package memory

import (
	"context"
	"strings"

	"github.com/chris/upi-wallet/pkg/ledger"
	"github.com/chris/upi-wallet/pkg/models"
	"github.com/shopspring/decimal"
)

// GetAccount returns a snapshot of the account.
func (s *Store) GetAccount(ctx context.Context) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollLocked()
	return s.account.Clone(), nil
}

// GetBalance returns the balance and when it last changed.
func (s *Store) GetBalance(ctx context.Context) (*models.Balance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &models.Balance{Balance: s.account.Balance, LastUpdated: s.account.LastUpdated}, nil
}

// GetDailySpending returns today's spend against the daily limit.
func (s *Store) GetDailySpending(ctx context.Context) (*models.DailySpending, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollLocked()
	return ledger.Spending(&s.account), nil
}

// GetLinkedBanks returns the linked bank accounts in order.
func (s *Store) GetLinkedBanks(ctx context.Context) ([]models.LinkedBank, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.LinkedBank{}, s.account.LinkedBanks...), nil
}

// ValidateTransaction runs the advisory pre-flight check. It never mutates the balance.
func (s *Store) ValidateTransaction(ctx context.Context, amount decimal.Decimal) (*models.Validation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollLocked()
	return ledger.Validate(&s.account, amount), nil
}

// UpdateBalance debits or credits |amount|. It does not record a transaction;
// use RecordPayment to do both atomically.
func (s *Store) UpdateBalance(ctx context.Context, amount decimal.Decimal, direction models.Direction) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollLocked()

	switch direction {
	case models.DEBIT:
		if err := ledger.Debit(&s.account, amount, s.now()); err != nil {
			return nil, err
		}
	case models.CREDIT:
		ledger.Credit(&s.account, amount, s.now())
	default:
		return nil, ledger.InvalidInput("unknown direction %q", direction)
	}
	return s.account.Clone(), nil
}

// UpdateDailyLimit replaces the daily limit.
func (s *Store) UpdateDailyLimit(ctx context.Context, limit decimal.Decimal) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ledger.SetDailyLimit(&s.account, limit); err != nil {
		return nil, err
	}
	return s.account.Clone(), nil
}

// ResetDailySpending zeroes today's spend.
func (s *Store) ResetDailySpending(ctx context.Context) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ledger.ResetSpending(&s.account, s.now(), s.loc)
	return s.account.Clone(), nil
}

// AddLinkedBank links a bank account. Only the last four digits are kept.
func (s *Store) AddLinkedBank(ctx context.Context, bankName, accountNumber string) (*models.Account, error) {
	bankName = strings.TrimSpace(bankName)
	accountNumber = strings.TrimSpace(accountNumber)
	if bankName == "" || accountNumber == "" {
		return nil, ledger.InvalidInput("bank name and account number are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.account.LinkedBanks = append(s.account.LinkedBanks, models.LinkedBank{
		BankName:      bankName,
		AccountNumber: maskAccountNumber(accountNumber),
		IsPrimary:     false,
	})
	return s.account.Clone(), nil
}

// SetPrimaryBank makes the matching bank the only primary one.
// accountNumber may be given masked or in full.
func (s *Store) SetPrimaryBank(ctx context.Context, accountNumber string) (*models.Account, error) {
	masked := maskAccountNumber(strings.TrimSpace(accountNumber))

	s.mu.Lock()
	defer s.mu.Unlock()

	found := -1
	for i, b := range s.account.LinkedBanks {
		if b.AccountNumber == masked {
			found = i
			break
		}
	}
	if found < 0 {
		return nil, ledger.NotFound("Bank account")
	}
	for i := range s.account.LinkedBanks {
		s.account.LinkedBanks[i].IsPrimary = i == found
	}
	return s.account.Clone(), nil
}

func maskAccountNumber(number string) string {
	if strings.HasPrefix(number, "****") {
		return number
	}
	if len(number) > 4 {
		number = number[len(number)-4:]
	}
	return "****" + number
}
