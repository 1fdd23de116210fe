// Package api defines the request and response bodies of the HTTP surface.
package api

import (
	"github.com/chris/upi-wallet/pkg/models"
	"github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Error is the body of every failed request.
type Error struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// Amount is a bare amount, e.g. the pre-flight check input.
type Amount struct {
	Amount decimal.Decimal `json:"amount"`
}

// Total wraps an aggregate amount.
type Total struct {
	Total decimal.Decimal `json:"total"`
}

type DailyLimit struct {
	DailyLimit decimal.Decimal `json:"dailyLimit"`
}

// BalanceUpdate moves |amount| in the given direction without recording a transaction.
type BalanceUpdate struct {
	Amount    decimal.Decimal  `json:"amount"`
	Direction models.Direction `json:"direction"`
}

type NewLinkedBank struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
}

type PrimaryBank struct {
	AccountNumber string `json:"accountNumber"`
}

// NewTransaction is a raw log entry. It does not move money.
type NewTransaction struct {
	Type        models.TransactionType `json:"type"`
	Amount      decimal.Decimal        `json:"amount"`
	Recipient   string                 `json:"recipient"`
	RecipientId string                 `json:"recipientId"`
	Note        string                 `json:"note"`
	Category    string                 `json:"category"`
}

// SendMoney pays a contact by phone number or UPI ID.
type SendMoney struct {
	Amount      decimal.Decimal `json:"amount"`
	Recipient   string          `json:"recipient"`
	RecipientId string          `json:"recipientId"`
	Note        string          `json:"note"`
}

// ReceiveMoney credits the account.
type ReceiveMoney struct {
	Amount   decimal.Decimal `json:"amount"`
	Sender   string          `json:"sender"`
	SenderId string          `json:"senderId"`
	Note     string          `json:"note"`
}

// BillPayment pays a bill. Amount defaults to the bill amount.
type BillPayment struct {
	BillId int64               `json:"billId"`
	Amount decimal.NullDecimal `json:"amount"`
}

type Recharge struct {
	Operator string `json:"operator"`
	PlanId   int64  `json:"planId"`
	Phone    string `json:"phone"`
}

type NewBill struct {
	Category      string          `json:"category"`
	Provider      string          `json:"provider"`
	AccountNumber string          `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       types.Date      `json:"dueDate"`
}

// Snooze hides a reminder for Hours, 24 when omitted.
type Snooze struct {
	Hours *int `json:"hours,omitempty"`
}

type ReminderSettings struct {
	Enabled    bool `json:"enabled"`
	DaysBefore int  `json:"daysBefore"`
}

type NewContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	UpiId string `json:"upiId"`
}

// ContactStats records a payment to a contact.
type ContactStats struct {
	Amount decimal.Decimal `json:"amount"`
}
