package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/chris/upi-wallet/pkg/ledger"
	"github.com/chris/upi-wallet/pkg/models"
	"github.com/shopspring/decimal"
)

const defaultCategory = "transfer"

// ListTransactions retrieves every transaction, newest first.
func (s *Store) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	return s.filterTransactions(func(models.Transaction) bool { return true }), nil
}

// GetTransaction retrieves a transaction by its ID.
func (s *Store) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.transactionIndexLocked(id)
	if i < 0 {
		return nil, ledger.NotFound("Transaction")
	}
	tx := s.transactions[i]
	return &tx, nil
}

// ListTransactionsByType retrieves the transactions of one type, newest first.
func (s *Store) ListTransactionsByType(ctx context.Context, txType models.TransactionType) ([]models.Transaction, error) {
	return s.filterTransactions(func(tx models.Transaction) bool { return tx.Type == txType }), nil
}

// ListTransactionsByStatus retrieves the transactions in one status, newest first.
func (s *Store) ListTransactionsByStatus(ctx context.Context, status models.TransactionStatus) ([]models.Transaction, error) {
	return s.filterTransactions(func(tx models.Transaction) bool { return tx.Status == status }), nil
}

// SearchTransactions matches query case-insensitively against recipient, note and category.
func (s *Store) SearchTransactions(ctx context.Context, query string) ([]models.Transaction, error) {
	q := strings.ToLower(query)
	return s.filterTransactions(func(tx models.Transaction) bool {
		return strings.Contains(strings.ToLower(tx.Recipient), q) ||
			strings.Contains(strings.ToLower(tx.Note), q) ||
			strings.Contains(strings.ToLower(tx.Category), q)
	}), nil
}

// GetTotalAmount nets the completed transactions.
func (s *Store) GetTotalAmount(ctx context.Context) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, tx := range s.transactions {
		if tx.Status != models.COMPLETED {
			continue
		}
		if tx.Type == models.RECEIVE {
			total = total.Add(tx.Amount)
		} else {
			total = total.Sub(tx.Amount)
		}
	}
	return total, nil
}

// GetMonthlyStats aggregates the completed sends and receives of one calendar month.
func (s *Store) GetMonthlyStats(ctx context.Context, year int, month time.Month) (*models.MonthlyStats, error) {
	if month < time.January || month > time.December {
		return nil, ledger.InvalidInput("month must be between 1 and 12")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &models.MonthlyStats{Sent: decimal.Zero, Received: decimal.Zero}
	for _, tx := range s.transactions {
		d := tx.Date.In(s.loc)
		if d.Year() != year || d.Month() != month || tx.Status != models.COMPLETED {
			continue
		}
		switch tx.Type {
		case models.SEND:
			stats.Sent = stats.Sent.Add(tx.Amount)
		case models.RECEIVE:
			stats.Received = stats.Received.Add(tx.Amount)
		}
	}
	stats.Total = stats.Received.Sub(stats.Sent)
	return stats, nil
}

// CreateTransaction appends a transaction to the log. The ID, date and status are
// always assigned here. No account rule is checked.
func (s *Store) CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	if err := validateTransaction(tx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	created := s.appendTransactionLocked(*tx, s.now())
	return &created, nil
}

// UpdateTransaction applies a partial update. The ID and date never change.
func (s *Store) UpdateTransaction(ctx context.Context, id int64, update *models.TransactionUpdate) (*models.Transaction, error) {
	if update.Type != nil && !update.Type.Valid() {
		return nil, ledger.InvalidInput("unknown transaction type %q", *update.Type)
	}
	if update.Status != nil && !update.Status.Valid() {
		return nil, ledger.InvalidInput("unknown transaction status %q", *update.Status)
	}
	if update.Amount != nil && !update.Amount.IsPositive() {
		return nil, ledger.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.transactionIndexLocked(id)
	if i < 0 {
		return nil, ledger.NotFound("Transaction")
	}
	tx := &s.transactions[i]
	if update.Type != nil {
		tx.Type = *update.Type
	}
	if update.Amount != nil {
		tx.Amount = *update.Amount
	}
	if update.Recipient != nil {
		tx.Recipient = *update.Recipient
	}
	if update.RecipientId != nil {
		tx.RecipientId = *update.RecipientId
	}
	if update.Status != nil {
		tx.Status = *update.Status
	}
	if update.Note != nil {
		tx.Note = *update.Note
	}
	if update.Category != nil {
		tx.Category = *update.Category
	}
	updated := *tx
	return &updated, nil
}

// DeleteTransaction removes a transaction and returns it. Its ID is never reassigned.
func (s *Store) DeleteTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.transactionIndexLocked(id)
	if i < 0 {
		return nil, ledger.NotFound("Transaction")
	}
	deleted := s.transactions[i]
	s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
	return &deleted, nil
}

func validateTransaction(tx *models.Transaction) error {
	if !tx.Type.Valid() {
		return ledger.InvalidInput("unknown transaction type %q", tx.Type)
	}
	if !tx.Amount.IsPositive() {
		return ledger.ErrInvalidAmount
	}
	return nil
}

// appendTransactionLocked stamps and stores tx. s.mu must be held.
func (s *Store) appendTransactionLocked(tx models.Transaction, now time.Time) models.Transaction {
	tx.Id = s.nextTransactionID
	s.nextTransactionID++
	tx.Date = now
	tx.Status = models.COMPLETED
	if tx.Category == "" {
		tx.Category = defaultCategory
	}
	s.transactions = append(s.transactions, tx)
	return tx
}

func (s *Store) transactionIndexLocked(id int64) int {
	for i, tx := range s.transactions {
		if tx.Id == id {
			return i
		}
	}
	return -1
}

func (s *Store) filterTransactions(keep func(models.Transaction) bool) []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		if keep(tx) {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
