// Package error defines domain-specific errors for the SmartExpenseTracker application.
package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found in the system.
	ErrAccountNotFound = errors.New("account not found")

	// ErrEmptyAccountName is returned when an account is created or renamed
	// with an empty name.
	ErrEmptyAccountName = errors.New("account name must not be empty")
)

// AccountErrorCode defines error codes for account errors.
type AccountErrorCode string

const (
	ErrCodeAccountNotFound  AccountErrorCode = "ACC-010001"
	ErrCodeEmptyAccountName AccountErrorCode = "ACC-010002"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
