package models

import (
	"time"

	"github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// BillStatus defines the possible states of a bill.
type BillStatus string

const (
	BILL_PENDING BillStatus = "pending"
	BILL_PAID    BillStatus = "paid"
)

// Valid reports whether s is one of the known bill statuses.
func (s BillStatus) Valid() bool {
	return s == BILL_PENDING || s == BILL_PAID
}

// Urgency ranks how pressing a reminder is.
type Urgency string

const (
	URGENCY_CRITICAL Urgency = "critical"
	URGENCY_HIGH     Urgency = "high"
	URGENCY_MEDIUM   Urgency = "medium"
	URGENCY_LOW      Urgency = "low"
)

// ReminderSettings controls when a pending bill shows up as a reminder.
type ReminderSettings struct {
	Enabled      bool       `json:"enabled"`
	DaysBefore   int        `json:"daysBefore"`
	SnoozedUntil *time.Time `json:"snoozedUntil,omitempty"`
	Dismissed    bool       `json:"dismissed"`
}

// Bill is a payable bill from a provider.
type Bill struct {
	Id            int64               `json:"id"`
	Category      string              `json:"category"`
	Provider      string              `json:"provider"`
	AccountNumber string              `json:"accountNumber"`
	Amount        decimal.Decimal     `json:"amount"`
	DueDate       types.Date          `json:"dueDate"`
	Status        BillStatus          `json:"status"`
	PaidDate      *time.Time          `json:"paidDate,omitempty"`
	PaidAmount    decimal.NullDecimal `json:"paidAmount"`
	Reminder      ReminderSettings    `json:"reminder"`
}

// Clone returns a deep copy of the bill.
func (b *Bill) Clone() *Bill {
	cp := *b
	if b.PaidDate != nil {
		t := *b.PaidDate
		cp.PaidDate = &t
	}
	if b.Reminder.SnoozedUntil != nil {
		t := *b.Reminder.SnoozedUntil
		cp.Reminder.SnoozedUntil = &t
	}
	return &cp
}

// BillUpdate carries a partial update. Nil fields are left untouched.
type BillUpdate struct {
	Category      *string          `json:"category,omitempty"`
	Provider      *string          `json:"provider,omitempty"`
	AccountNumber *string          `json:"accountNumber,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	DueDate       *types.Date      `json:"dueDate,omitempty"`
	Status        *BillStatus      `json:"status,omitempty"`
}

// BillReminder is a bill annotated with its due-date derived labels.
type BillReminder struct {
	Bill
	DaysUntilDue int     `json:"daysUntilDue"`
	IsOverdue    bool    `json:"isOverdue"`
	IsDueToday   bool    `json:"isDueToday"`
	IsDueSoon    bool    `json:"isDueSoon"`
	Urgency      Urgency `json:"urgency"`
}

// ReminderStats summarises the active reminders.
type ReminderStats struct {
	Total         int             `json:"total"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Overdue       int             `json:"overdue"`
	OverdueAmount decimal.Decimal `json:"overdueAmount"`
	DueToday      int             `json:"dueToday"`
	DueSoon       int             `json:"dueSoon"`
}

// CategoryStats aggregates bills of one category.
type CategoryStats struct {
	Total   decimal.Decimal `json:"total"`
	Paid    decimal.Decimal `json:"paid"`
	Pending decimal.Decimal `json:"pending"`
	Count   int             `json:"count"`
}
