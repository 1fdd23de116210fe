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

const defaultReminderDays = 3

// ListBills retrieves every bill ordered by due date.
func (s *Store) ListBills(ctx context.Context) ([]models.Bill, error) {
	return s.filterBills(func(models.Bill) bool { return true }), nil
}

// GetBill retrieves a bill by its ID.
func (s *Store) GetBill(ctx context.Context, id int64) (*models.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.billIndexLocked(id)
	if i < 0 {
		return nil, ledger.NotFound("Bill")
	}
	return s.bills[i].Clone(), nil
}

// ListBillsByCategory retrieves the bills of one category ordered by due date.
func (s *Store) ListBillsByCategory(ctx context.Context, category string) ([]models.Bill, error) {
	return s.filterBills(func(b models.Bill) bool { return b.Category == category }), nil
}

// ListBillsByStatus retrieves the bills in one status ordered by due date.
func (s *Store) ListBillsByStatus(ctx context.Context, status models.BillStatus) ([]models.Bill, error) {
	return s.filterBills(func(b models.Bill) bool { return b.Status == status }), nil
}

// ListPendingBills retrieves the unpaid bills ordered by due date.
func (s *Store) ListPendingBills(ctx context.Context) ([]models.Bill, error) {
	return s.ListBillsByStatus(ctx, models.BILL_PENDING)
}

// ListUpcomingBills retrieves pending bills due between today and days from now, inclusive.
func (s *Store) ListUpcomingBills(ctx context.Context, days int) ([]models.Bill, error) {
	if days < 0 {
		return nil, ledger.InvalidInput("days must not be negative")
	}
	today := s.today()
	return s.filterBills(func(b models.Bill) bool {
		until := daysBetween(today, b.DueDate.Time)
		return b.Status == models.BILL_PENDING && until >= 0 && until <= days
	}), nil
}

// GetTotalPendingAmount sums the amounts of all unpaid bills.
func (s *Store) GetTotalPendingAmount(ctx context.Context) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, b := range s.bills {
		if b.Status == models.BILL_PENDING {
			total = total.Add(b.Amount)
		}
	}
	return total, nil
}

// GetCategoryStats aggregates bill amounts per category.
func (s *Store) GetCategoryStats(ctx context.Context) (map[string]models.CategoryStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := make(map[string]models.CategoryStats)
	for _, b := range s.bills {
		st, ok := stats[b.Category]
		if !ok {
			st = models.CategoryStats{Total: decimal.Zero, Paid: decimal.Zero, Pending: decimal.Zero}
		}
		st.Total = st.Total.Add(b.Amount)
		st.Count++
		if b.Status == models.BILL_PAID {
			st.Paid = st.Paid.Add(b.Amount)
		} else {
			st.Pending = st.Pending.Add(b.Amount)
		}
		stats[b.Category] = st
	}
	return stats, nil
}

// CreateBill adds a pending bill with reminders enabled.
func (s *Store) CreateBill(ctx context.Context, bill *models.Bill) (*models.Bill, error) {
	if strings.TrimSpace(bill.Provider) == "" || strings.TrimSpace(bill.Category) == "" {
		return nil, ledger.InvalidInput("provider and category are required")
	}
	if !bill.Amount.IsPositive() {
		return nil, ledger.ErrInvalidAmount
	}
	if bill.DueDate.IsZero() {
		return nil, ledger.InvalidInput("due date is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created := models.Bill{
		Id:            s.nextBillID,
		Category:      bill.Category,
		Provider:      bill.Provider,
		AccountNumber: bill.AccountNumber,
		Amount:        bill.Amount,
		DueDate:       bill.DueDate,
		Status:        models.BILL_PENDING,
		Reminder:      models.ReminderSettings{Enabled: true, DaysBefore: defaultReminderDays},
	}
	s.nextBillID++
	s.bills = append(s.bills, created)
	return created.Clone(), nil
}

// PayBill marks a bill paid. paidAmount defaults to the bill amount.
func (s *Store) PayBill(ctx context.Context, id int64, amount decimal.NullDecimal) (*models.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.billIndexLocked(id)
	if i < 0 {
		return nil, ledger.NotFound("Bill")
	}
	if s.bills[i].Status == models.BILL_PAID {
		return nil, ledger.ErrAlreadyPaid
	}
	s.settleBillLocked(i, amount, s.now())
	return s.bills[i].Clone(), nil
}

// UpdateBill applies a partial update.
func (s *Store) UpdateBill(ctx context.Context, id int64, update *models.BillUpdate) (*models.Bill, error) {
	if update.Amount != nil && !update.Amount.IsPositive() {
		return nil, ledger.ErrInvalidAmount
	}
	if update.Status != nil && !update.Status.Valid() {
		return nil, ledger.InvalidInput("unknown bill status %q", *update.Status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.billIndexLocked(id)
	if i < 0 {
		return nil, ledger.NotFound("Bill")
	}
	b := &s.bills[i]
	if update.Category != nil {
		b.Category = *update.Category
	}
	if update.Provider != nil {
		b.Provider = *update.Provider
	}
	if update.AccountNumber != nil {
		b.AccountNumber = *update.AccountNumber
	}
	if update.Amount != nil {
		b.Amount = *update.Amount
	}
	if update.DueDate != nil {
		b.DueDate = *update.DueDate
	}
	if update.Status != nil {
		b.Status = *update.Status
	}
	return b.Clone(), nil
}

// DeleteBill removes a bill and returns it.
func (s *Store) DeleteBill(ctx context.Context, id int64) (*models.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.billIndexLocked(id)
	if i < 0 {
		return nil, ledger.NotFound("Bill")
	}
	deleted := s.bills[i]
	s.bills = append(s.bills[:i], s.bills[i+1:]...)
	return &deleted, nil
}

// settleBillLocked marks bill i paid. s.mu must be held.
func (s *Store) settleBillLocked(i int, amount decimal.NullDecimal, now time.Time) {
	b := &s.bills[i]
	if !amount.Valid {
		amount = decimal.NewNullDecimal(b.Amount)
	}
	b.Status = models.BILL_PAID
	b.PaidDate = &now
	b.PaidAmount = amount
}

func (s *Store) billIndexLocked(id int64) int {
	for i, b := range s.bills {
		if b.Id == id {
			return i
		}
	}
	return -1
}

func (s *Store) filterBills(keep func(models.Bill) bool) []models.Bill {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.filterBillsLocked()
	out := all[:0]
	for _, b := range all {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

// filterBillsLocked copies every bill ordered by due date. s.mu must be held.
func (s *Store) filterBillsLocked() []models.Bill {
	out := make([]models.Bill, len(s.bills))
	for i := range s.bills {
		out[i] = *s.bills[i].Clone()
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate.Time)
	})
	return out
}

// daysBetween counts calendar days from today to the due date. Both are dates at midnight UTC.
func daysBetween(today, due time.Time) int {
	y, m, d := due.Date()
	due = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(due.Sub(today).Hours() / 24)
}
