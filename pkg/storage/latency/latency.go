// Package latency wraps an ApiStore with a simulated network delay.
package latency

import (
	"context"
	"math/rand"
	"time"

	"github.com/chris/upi-wallet/pkg/models"
	"github.com/chris/upi-wallet/pkg/storage"
	"github.com/shopspring/decimal"
)

// Store delays every call to the wrapped store by a uniform random duration in [min, max).
type Store struct {
	next storage.ApiStore
	min  time.Duration
	max  time.Duration
}

// Make sure we conform to the interface
var _ storage.ApiStore = (*Store)(nil)

// New wraps next. A zero range disables the delay.
func New(next storage.ApiStore, min, max time.Duration) *Store {
	if max < min {
		max = min
	}
	return &Store{next: next, min: min, max: max}
}

func (s *Store) delay() time.Duration {
	if s.max <= s.min {
		return s.min
	}
	return s.min + time.Duration(rand.Int63n(int64(s.max-s.min)))
}

// wait sleeps for the simulated delay, returning early with ctx's error when it is cancelled.
// A cancelled call never reaches the wrapped store.
func (s *Store) wait(ctx context.Context) error {
	d := s.delay()
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func call[T any](ctx context.Context, s *Store, fn func() (T, error)) (T, error) {
	if err := s.wait(ctx); err != nil {
		var zero T
		return zero, err
	}
	return fn()
}

func (s *Store) GetAccount(ctx context.Context) (*models.Account, error) {
	return call(ctx, s, func() (*models.Account, error) { return s.next.GetAccount(ctx) })
}

func (s *Store) GetBalance(ctx context.Context) (*models.Balance, error) {
	return call(ctx, s, func() (*models.Balance, error) { return s.next.GetBalance(ctx) })
}

func (s *Store) GetDailySpending(ctx context.Context) (*models.DailySpending, error) {
	return call(ctx, s, func() (*models.DailySpending, error) { return s.next.GetDailySpending(ctx) })
}

func (s *Store) GetLinkedBanks(ctx context.Context) ([]models.LinkedBank, error) {
	return call(ctx, s, func() ([]models.LinkedBank, error) { return s.next.GetLinkedBanks(ctx) })
}

func (s *Store) ValidateTransaction(ctx context.Context, amount decimal.Decimal) (*models.Validation, error) {
	return call(ctx, s, func() (*models.Validation, error) { return s.next.ValidateTransaction(ctx, amount) })
}

func (s *Store) UpdateBalance(ctx context.Context, amount decimal.Decimal, direction models.Direction) (*models.Account, error) {
	return call(ctx, s, func() (*models.Account, error) { return s.next.UpdateBalance(ctx, amount, direction) })
}

func (s *Store) UpdateDailyLimit(ctx context.Context, limit decimal.Decimal) (*models.Account, error) {
	return call(ctx, s, func() (*models.Account, error) { return s.next.UpdateDailyLimit(ctx, limit) })
}

func (s *Store) ResetDailySpending(ctx context.Context) (*models.Account, error) {
	return call(ctx, s, func() (*models.Account, error) { return s.next.ResetDailySpending(ctx) })
}

func (s *Store) AddLinkedBank(ctx context.Context, bankName, accountNumber string) (*models.Account, error) {
	return call(ctx, s, func() (*models.Account, error) { return s.next.AddLinkedBank(ctx, bankName, accountNumber) })
}

func (s *Store) SetPrimaryBank(ctx context.Context, accountNumber string) (*models.Account, error) {
	return call(ctx, s, func() (*models.Account, error) { return s.next.SetPrimaryBank(ctx, accountNumber) })
}

func (s *Store) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	return call(ctx, s, func() ([]models.Transaction, error) { return s.next.ListTransactions(ctx) })
}

func (s *Store) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	return call(ctx, s, func() (*models.Transaction, error) { return s.next.GetTransaction(ctx, id) })
}

func (s *Store) ListTransactionsByType(ctx context.Context, txType models.TransactionType) ([]models.Transaction, error) {
	return call(ctx, s, func() ([]models.Transaction, error) { return s.next.ListTransactionsByType(ctx, txType) })
}

func (s *Store) ListTransactionsByStatus(ctx context.Context, status models.TransactionStatus) ([]models.Transaction, error) {
	return call(ctx, s, func() ([]models.Transaction, error) { return s.next.ListTransactionsByStatus(ctx, status) })
}

func (s *Store) SearchTransactions(ctx context.Context, query string) ([]models.Transaction, error) {
	return call(ctx, s, func() ([]models.Transaction, error) { return s.next.SearchTransactions(ctx, query) })
}

func (s *Store) GetTotalAmount(ctx context.Context) (decimal.Decimal, error) {
	return call(ctx, s, func() (decimal.Decimal, error) { return s.next.GetTotalAmount(ctx) })
}

func (s *Store) GetMonthlyStats(ctx context.Context, year int, month time.Month) (*models.MonthlyStats, error) {
	return call(ctx, s, func() (*models.MonthlyStats, error) { return s.next.GetMonthlyStats(ctx, year, month) })
}

func (s *Store) CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	return call(ctx, s, func() (*models.Transaction, error) { return s.next.CreateTransaction(ctx, tx) })
}

func (s *Store) UpdateTransaction(ctx context.Context, id int64, update *models.TransactionUpdate) (*models.Transaction, error) {
	return call(ctx, s, func() (*models.Transaction, error) { return s.next.UpdateTransaction(ctx, id, update) })
}

func (s *Store) DeleteTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	return call(ctx, s, func() (*models.Transaction, error) { return s.next.DeleteTransaction(ctx, id) })
}

func (s *Store) RecordPayment(ctx context.Context, order *models.PaymentOrder) (*models.Payment, error) {
	return call(ctx, s, func() (*models.Payment, error) { return s.next.RecordPayment(ctx, order) })
}

func (s *Store) ListBills(ctx context.Context) ([]models.Bill, error) {
	return call(ctx, s, func() ([]models.Bill, error) { return s.next.ListBills(ctx) })
}

func (s *Store) GetBill(ctx context.Context, id int64) (*models.Bill, error) {
	return call(ctx, s, func() (*models.Bill, error) { return s.next.GetBill(ctx, id) })
}

func (s *Store) ListBillsByCategory(ctx context.Context, category string) ([]models.Bill, error) {
	return call(ctx, s, func() ([]models.Bill, error) { return s.next.ListBillsByCategory(ctx, category) })
}

func (s *Store) ListBillsByStatus(ctx context.Context, status models.BillStatus) ([]models.Bill, error) {
	return call(ctx, s, func() ([]models.Bill, error) { return s.next.ListBillsByStatus(ctx, status) })
}

func (s *Store) ListPendingBills(ctx context.Context) ([]models.Bill, error) {
	return call(ctx, s, func() ([]models.Bill, error) { return s.next.ListPendingBills(ctx) })
}

func (s *Store) ListUpcomingBills(ctx context.Context, days int) ([]models.Bill, error) {
	return call(ctx, s, func() ([]models.Bill, error) { return s.next.ListUpcomingBills(ctx, days) })
}

func (s *Store) GetTotalPendingAmount(ctx context.Context) (decimal.Decimal, error) {
	return call(ctx, s, func() (decimal.Decimal, error) { return s.next.GetTotalPendingAmount(ctx) })
}

func (s *Store) GetCategoryStats(ctx context.Context) (map[string]models.CategoryStats, error) {
	return call(ctx, s, func() (map[string]models.CategoryStats, error) { return s.next.GetCategoryStats(ctx) })
}

func (s *Store) CreateBill(ctx context.Context, bill *models.Bill) (*models.Bill, error) {
	return call(ctx, s, func() (*models.Bill, error) { return s.next.CreateBill(ctx, bill) })
}

func (s *Store) PayBill(ctx context.Context, id int64, amount decimal.NullDecimal) (*models.Bill, error) {
	return call(ctx, s, func() (*models.Bill, error) { return s.next.PayBill(ctx, id, amount) })
}

func (s *Store) UpdateBill(ctx context.Context, id int64, update *models.BillUpdate) (*models.Bill, error) {
	return call(ctx, s, func() (*models.Bill, error) { return s.next.UpdateBill(ctx, id, update) })
}

func (s *Store) DeleteBill(ctx context.Context, id int64) (*models.Bill, error) {
	return call(ctx, s, func() (*models.Bill, error) { return s.next.DeleteBill(ctx, id) })
}

func (s *Store) ListBillReminders(ctx context.Context) ([]models.BillReminder, error) {
	return call(ctx, s, func() ([]models.BillReminder, error) { return s.next.ListBillReminders(ctx) })
}

func (s *Store) GetReminderStats(ctx context.Context) (*models.ReminderStats, error) {
	return call(ctx, s, func() (*models.ReminderStats, error) { return s.next.GetReminderStats(ctx) })
}

func (s *Store) SnoozeReminder(ctx context.Context, id int64, d time.Duration) (*models.Bill, error) {
	return call(ctx, s, func() (*models.Bill, error) { return s.next.SnoozeReminder(ctx, id, d) })
}

func (s *Store) DismissReminder(ctx context.Context, id int64) (*models.Bill, error) {
	return call(ctx, s, func() (*models.Bill, error) { return s.next.DismissReminder(ctx, id) })
}

func (s *Store) UpdateReminderSettings(ctx context.Context, id int64, enabled bool, daysBefore int) (*models.Bill, error) {
	return call(ctx, s, func() (*models.Bill, error) { return s.next.UpdateReminderSettings(ctx, id, enabled, daysBefore) })
}

func (s *Store) ListContacts(ctx context.Context) ([]models.Contact, error) {
	return call(ctx, s, func() ([]models.Contact, error) { return s.next.ListContacts(ctx) })
}

func (s *Store) GetContact(ctx context.Context, id int64) (*models.Contact, error) {
	return call(ctx, s, func() (*models.Contact, error) { return s.next.GetContact(ctx, id) })
}

func (s *Store) SearchContacts(ctx context.Context, query string) ([]models.Contact, error) {
	return call(ctx, s, func() ([]models.Contact, error) { return s.next.SearchContacts(ctx, query) })
}

func (s *Store) ListFrequentContacts(ctx context.Context) ([]models.Contact, error) {
	return call(ctx, s, func() ([]models.Contact, error) { return s.next.ListFrequentContacts(ctx) })
}

func (s *Store) FindContact(ctx context.Context, identifier string) (*models.Contact, error) {
	return call(ctx, s, func() (*models.Contact, error) { return s.next.FindContact(ctx, identifier) })
}

func (s *Store) CreateContact(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	return call(ctx, s, func() (*models.Contact, error) { return s.next.CreateContact(ctx, contact) })
}

func (s *Store) UpdateContact(ctx context.Context, id int64, update *models.ContactUpdate) (*models.Contact, error) {
	return call(ctx, s, func() (*models.Contact, error) { return s.next.UpdateContact(ctx, id, update) })
}

func (s *Store) UpdateContactStats(ctx context.Context, id int64, amount decimal.Decimal) (*models.Contact, error) {
	return call(ctx, s, func() (*models.Contact, error) { return s.next.UpdateContactStats(ctx, id, amount) })
}

func (s *Store) DeleteContact(ctx context.Context, id int64) (*models.Contact, error) {
	return call(ctx, s, func() (*models.Contact, error) { return s.next.DeleteContact(ctx, id) })
}
