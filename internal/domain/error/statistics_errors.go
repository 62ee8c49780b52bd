// Package error defines domain-specific errors for the SmartExpenseTracker application.
package error

import "errors"

// Statistics domain errors.
var (
	// ErrInvalidPeriod is returned when a period's end precedes its start.
	ErrInvalidPeriod = errors.New("period end must not precede period start")

	// ErrInvalidYear is returned when a statistics year is out of range.
	ErrInvalidYear = errors.New("invalid year")

	// ErrInvalidMonth is returned when a statistics month is outside 1-12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
)

// StatisticsErrorCode defines error codes for statistics errors.
type StatisticsErrorCode string

const (
	ErrCodeInvalidPeriod StatisticsErrorCode = "STA-010001"
	ErrCodeInvalidYear   StatisticsErrorCode = "STA-010002"
	ErrCodeInvalidMonth  StatisticsErrorCode = "STA-010003"
)

// StatisticsError represents a statistics error with code and message.
type StatisticsError struct {
	Code    StatisticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StatisticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StatisticsError) Unwrap() error {
	return e.Err
}

// NewStatisticsError creates a new StatisticsError with the given code and message.
func NewStatisticsError(code StatisticsErrorCode, message string, err error) *StatisticsError {
	return &StatisticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
