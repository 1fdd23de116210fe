package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType defines what kind of money movement a transaction records.
// The sign of the amount is implied by the type.
type TransactionType string

const (
	SEND     TransactionType = "send"
	RECEIVE  TransactionType = "receive"
	BILL     TransactionType = "bill"
	RECHARGE TransactionType = "recharge"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case SEND, RECEIVE, BILL, RECHARGE:
		return true
	}
	return false
}

// TransactionStatus defines the possible states of a transaction.
type TransactionStatus string

const (
	COMPLETED TransactionStatus = "completed"
	PENDING   TransactionStatus = "pending"
	FAILED    TransactionStatus = "failed"
)

// Valid reports whether s is one of the known transaction statuses.
func (s TransactionStatus) Valid() bool {
	switch s {
	case COMPLETED, PENDING, FAILED:
		return true
	}
	return false
}

// Direction selects how UpdateBalance applies an amount.
type Direction string

const (
	DEBIT  Direction = "debit"
	CREDIT Direction = "credit"
)

// Transaction represents a single entry in the append-only transaction log.
type Transaction struct {
	Id          int64             `json:"id"`
	Type        TransactionType   `json:"type"`
	Amount      decimal.Decimal   `json:"amount"`
	Recipient   string            `json:"recipient"`
	RecipientId string            `json:"recipientId"`
	Date        time.Time         `json:"date"`
	Status      TransactionStatus `json:"status"`
	Note        string            `json:"note"`
	Category    string            `json:"category"`
}

// TransactionUpdate carries a partial update. Nil fields are left untouched.
// Id and Date are never updatable.
type TransactionUpdate struct {
	Type        *TransactionType   `json:"type,omitempty"`
	Amount      *decimal.Decimal   `json:"amount,omitempty"`
	Recipient   *string            `json:"recipient,omitempty"`
	RecipientId *string            `json:"recipientId,omitempty"`
	Status      *TransactionStatus `json:"status,omitempty"`
	Note        *string            `json:"note,omitempty"`
	Category    *string            `json:"category,omitempty"`
}

// LinkedBank is a bank account reference attached to the wallet.
type LinkedBank struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	IsPrimary     bool   `json:"isPrimary"`
}

// Account is the single wallet owned by the process.
type Account struct {
	Name        string          `json:"name"`
	UpiId       string          `json:"upiId"`
	Phone       string          `json:"phone"`
	Balance     decimal.Decimal `json:"balance"`
	DailyLimit  decimal.Decimal `json:"dailyLimit"`
	SpentToday  decimal.Decimal `json:"spentToday"`
	SpentOn     string          `json:"spentOn,omitempty"`
	LastUpdated time.Time       `json:"lastUpdated"`
	LinkedBanks []LinkedBank    `json:"linkedBanks"`
}

// Clone returns a deep copy of the account.
func (a *Account) Clone() *Account {
	cp := *a
	cp.LinkedBanks = append([]LinkedBank(nil), a.LinkedBanks...)
	return &cp
}

// Balance is the lightweight balance view.
type Balance struct {
	Balance     decimal.Decimal `json:"balance"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// DailySpending summarises the daily limit usage.
type DailySpending struct {
	Spent     decimal.Decimal `json:"spent"`
	Limit     decimal.Decimal `json:"limit"`
	Remaining decimal.Decimal `json:"remaining"`
}

// Validation is the result of the advisory pre-flight check.
type Validation struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// MonthlyStats aggregates completed transactions for one calendar month.
type MonthlyStats struct {
	Sent     decimal.Decimal `json:"sent"`
	Received decimal.Decimal `json:"received"`
	Total    decimal.Decimal `json:"total"`
}

// PaymentOrder is a money movement to be committed atomically.
// When BillId is non-zero the referenced bill is settled in the same step.
type PaymentOrder struct {
	Transaction Transaction
	BillId      int64
}

// Payment is the outcome of a committed PaymentOrder.
type Payment struct {
	Transaction Transaction `json:"transaction"`
	Account     Account     `json:"account"`
}
