package ledger

import (
	"errors"
	"fmt"
)

// Code classifies a ledger failure.
type Code string

const (
	CodeInsufficientBalance Code = "InsufficientBalance"
	CodeDailyLimitExceeded  Code = "DailyLimitExceeded"
	CodeInvalidLimit        Code = "InvalidLimit"
	CodeInvalidAmount       Code = "InvalidAmount"
	CodeInvalidInput        Code = "InvalidInput"
	CodeNotFound            Code = "NotFound"
	CodeValidationFailed    Code = "ValidationFailed"
	CodeAlreadyPaid         Code = "AlreadyPaid"
)

// Error is a ledger failure carrying a code and a human-readable message.
// Two errors match under errors.Is when their codes are equal.
type Error struct {
	Code    Code
	Message string
	// Details lists every violated rule when more than one applied.
	Details []string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches on the code only, so sentinels compare equal to contextual errors.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	// ErrInsufficientBalance is returned when a debit would drive the balance negative.
	ErrInsufficientBalance = &Error{Code: CodeInsufficientBalance, Message: "Insufficient balance"}

	// ErrDailyLimitExceeded is returned when a debit would push today's spend above the limit.
	ErrDailyLimitExceeded = &Error{Code: CodeDailyLimitExceeded, Message: "Daily limit exceeded"}

	// ErrInvalidLimit is returned when a daily limit change falls outside the allowed band.
	ErrInvalidLimit = &Error{Code: CodeInvalidLimit, Message: "Daily limit must be between ₹1,000 and ₹1,00,000"}

	// ErrInvalidAmount is returned for amounts outside the per-transaction bounds.
	ErrInvalidAmount = &Error{Code: CodeInvalidAmount, Message: "Invalid amount"}

	// ErrNotFound matches every lookup failure.
	ErrNotFound = &Error{Code: CodeNotFound, Message: "Not found"}

	// ErrAlreadyPaid is returned when settling a bill that is already paid.
	ErrAlreadyPaid = &Error{Code: CodeAlreadyPaid, Message: "Bill already paid"}
)

// InvalidInput builds an error for a malformed field.
func InvalidInput(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// NotFound builds a not-found error for the named entity, e.g. "Bill not found".
func NotFound(entity string) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf("%s not found", entity)}
}

// CodeOf extracts the code from err, or "" when err is not a ledger error.
func CodeOf(err error) Code {
	var le *Error
	if errors.As(err, &le) {
		return le.Code
	}
	return ""
}
