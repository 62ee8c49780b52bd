// Package error defines domain-specific errors for the SmartExpenseTracker application.
package error

import "errors"

// Category and book domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidCategoryType is returned when the category type is invalid.
	ErrInvalidCategoryType = errors.New("invalid category type")

	// ErrEmptyCategoryName is returned when a category has an empty name.
	ErrEmptyCategoryName = errors.New("category name must not be empty")

	// ErrBookNotFound is returned when a book is not found in the system.
	ErrBookNotFound = errors.New("book not found")

	// ErrEmptyBookName is returned when a book has an empty name.
	ErrEmptyBookName = errors.New("book name must not be empty")
)

// CategoryErrorCode defines error codes for category and book errors.
type CategoryErrorCode string

const (
	ErrCodeCategoryNotFound    CategoryErrorCode = "CAT-010001"
	ErrCodeInvalidCategoryType CategoryErrorCode = "CAT-010002"
	ErrCodeEmptyCategoryName   CategoryErrorCode = "CAT-010003"
	ErrCodeBookNotFound        CategoryErrorCode = "CAT-020001"
	ErrCodeEmptyBookName       CategoryErrorCode = "CAT-020002"
)

// CategoryError represents a category or book error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
