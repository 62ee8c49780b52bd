// Package error defines domain-specific errors for the SmartExpenseTracker application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrNegativeTransactionAmount is returned when the transaction amount is negative.
	// Direction is carried by the type, never by the amount's sign.
	ErrNegativeTransactionAmount = errors.New("transaction amount must not be negative")

	// ErrInvalidRecordTime is returned when the record timestamp is invalid.
	ErrInvalidRecordTime = errors.New("invalid record time")

	// ErrBookNotFoundForTransaction is returned when the referenced book does not exist.
	ErrBookNotFoundForTransaction = errors.New("book not found")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType    TransactionErrorCode = "TXN-010001"
	ErrCodeNegativeAmount            TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidRecordTime         TransactionErrorCode = "TXN-010003"
	ErrCodeTransactionNotFound       TransactionErrorCode = "TXN-010004"
	ErrCodeTxnBookNotFound           TransactionErrorCode = "TXN-010005"
	ErrCodeMissingTransactionFields  TransactionErrorCode = "TXN-010006"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
