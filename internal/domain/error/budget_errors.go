// Package error defines domain-specific errors for the SmartExpenseTracker application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget row is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetMonth is returned when the month is outside 1-12.
	ErrInvalidBudgetMonth = errors.New("budget month must be between 1 and 12")

	// ErrNegativeBudgetAmount is returned when a budget amount is negative.
	ErrNegativeBudgetAmount = errors.New("budget amount must not be negative")

	// ErrReservedBudgetCategory is returned when an ordinary budget is created
	// under the reserved total-budget category name.
	ErrReservedBudgetCategory = errors.New("category name is reserved for the total budget")
)

// BudgetErrorCode defines error codes for budget errors.
type BudgetErrorCode string

const (
	ErrCodeBudgetNotFound         BudgetErrorCode = "BDG-010001"
	ErrCodeInvalidBudgetMonth     BudgetErrorCode = "BDG-010002"
	ErrCodeNegativeBudgetAmount   BudgetErrorCode = "BDG-010003"
	ErrCodeReservedBudgetCategory BudgetErrorCode = "BDG-010004"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
