// Package ledger holds the balance and limit rules of the wallet.
//
// The advisory pre-flight check and the enforcing mutations both evaluate the
// same rule set defined here. Nothing in this package keeps state; callers own
// the account and must serialise access to it.
package ledger

import (
	"time"

	"github.com/chris/upi-wallet/pkg/models"
	"github.com/shopspring/decimal"
)

var (
	MinTransactionAmount = decimal.NewFromInt(1)
	MaxTransactionAmount = decimal.NewFromInt(50000)
	MinDailyLimit        = decimal.NewFromInt(1000)
	MaxDailyLimit        = decimal.NewFromInt(100000)
)

// Violation is a single broken rule.
type Violation struct {
	Code    Code
	Message string
}

func exceedsBalance(acct *models.Account, amount decimal.Decimal) bool {
	return amount.GreaterThan(acct.Balance)
}

func exceedsDailyLimit(acct *models.Account, amount decimal.Decimal) bool {
	return acct.SpentToday.Add(amount).GreaterThan(acct.DailyLimit)
}

// Check evaluates every rule against a prospective debit of amount.
// All violations are collected, in a fixed order.
func Check(acct *models.Account, amount decimal.Decimal) []Violation {
	var violations []Violation
	if exceedsBalance(acct, amount) {
		violations = append(violations, Violation{CodeInsufficientBalance, ErrInsufficientBalance.Message})
	}
	if exceedsDailyLimit(acct, amount) {
		violations = append(violations, Violation{CodeDailyLimitExceeded, ErrDailyLimitExceeded.Message})
	}
	if amount.LessThan(MinTransactionAmount) {
		violations = append(violations, Violation{CodeInvalidAmount, "Minimum transaction amount is ₹1"})
	}
	if amount.GreaterThan(MaxTransactionAmount) {
		violations = append(violations, Violation{CodeInvalidAmount, "Maximum transaction amount is ₹50,000"})
	}
	return violations
}

// Validate is the side-effect free pre-flight check.
func Validate(acct *models.Account, amount decimal.Decimal) *models.Validation {
	violations := Check(acct, amount)
	errs := make([]string, len(violations))
	for i, v := range violations {
		errs[i] = v.Message
	}
	return &models.Validation{IsValid: len(errs) == 0, Errors: errs}
}

// Enforce turns the violations of Check into an error, or nil when the debit is allowed.
// The returned error carries the code of the first violation and lists all of them in Details.
func Enforce(acct *models.Account, amount decimal.Decimal) error {
	violations := Check(acct, amount)
	if len(violations) == 0 {
		return nil
	}
	details := make([]string, len(violations))
	for i, v := range violations {
		details[i] = v.Message
	}
	return &Error{Code: violations[0].Code, Message: violations[0].Message, Details: details}
}

// Debit subtracts |amount| from the balance and adds it to today's spend.
// The account is left untouched when either the balance or the daily limit would be violated.
func Debit(acct *models.Account, amount decimal.Decimal, now time.Time) error {
	amount = amount.Abs()
	if exceedsBalance(acct, amount) {
		return ErrInsufficientBalance
	}
	if exceedsDailyLimit(acct, amount) {
		return ErrDailyLimitExceeded
	}
	acct.Balance = acct.Balance.Sub(amount)
	acct.SpentToday = acct.SpentToday.Add(amount)
	acct.LastUpdated = now
	return nil
}

// Credit adds |amount| to the balance. Credits are unbounded and never touch today's spend.
func Credit(acct *models.Account, amount decimal.Decimal, now time.Time) {
	acct.Balance = acct.Balance.Add(amount.Abs())
	acct.LastUpdated = now
}

// SetDailyLimit replaces the daily limit when it lies within [MinDailyLimit, MaxDailyLimit].
func SetDailyLimit(acct *models.Account, limit decimal.Decimal) error {
	if limit.LessThan(MinDailyLimit) || limit.GreaterThan(MaxDailyLimit) {
		return ErrInvalidLimit
	}
	acct.DailyLimit = limit
	return nil
}
