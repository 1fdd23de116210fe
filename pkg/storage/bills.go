package storage

import (
	"context"
	"time"

	"github.com/chris/upi-wallet/pkg/models"
	"github.com/shopspring/decimal"
)

// BillReader defines read access to the bill directory. Lists are ordered by due date.
type BillReader interface {
	ListBills(ctx context.Context) ([]models.Bill, error)
	GetBill(ctx context.Context, id int64) (*models.Bill, error)
	ListBillsByCategory(ctx context.Context, category string) ([]models.Bill, error)
	ListBillsByStatus(ctx context.Context, status models.BillStatus) ([]models.Bill, error)
	ListPendingBills(ctx context.Context) ([]models.Bill, error)

	// ListUpcomingBills retrieves pending bills due within the next days.
	ListUpcomingBills(ctx context.Context, days int) ([]models.Bill, error)

	GetTotalPendingAmount(ctx context.Context) (decimal.Decimal, error)
	GetCategoryStats(ctx context.Context) (map[string]models.CategoryStats, error)
}

// BillManager defines the bill directory mutations.
type BillManager interface {
	CreateBill(ctx context.Context, bill *models.Bill) (*models.Bill, error)

	// PayBill marks a bill paid without touching the account.
	PayBill(ctx context.Context, id int64, amount decimal.NullDecimal) (*models.Bill, error)

	UpdateBill(ctx context.Context, id int64, update *models.BillUpdate) (*models.Bill, error)
	DeleteBill(ctx context.Context, id int64) (*models.Bill, error)
}

// ReminderStore defines the payment reminder surface over pending bills.
type ReminderStore interface {
	ListBillReminders(ctx context.Context) ([]models.BillReminder, error)
	GetReminderStats(ctx context.Context) (*models.ReminderStats, error)
	SnoozeReminder(ctx context.Context, id int64, d time.Duration) (*models.Bill, error)
	DismissReminder(ctx context.Context, id int64) (*models.Bill, error)
	UpdateReminderSettings(ctx context.Context, id int64, enabled bool, daysBefore int) (*models.Bill, error)
}

// BillStore combines the bill interfaces.
type BillStore interface {
	BillReader
	BillManager
	ReminderStore
}
