// Package book contains the book lifecycle use cases.
package book

import (
	"context"
	"fmt"
	"strings"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
	domainerror "github.com/Avaria395/SmartExpenseTracker/internal/domain/error"
)

// CreateBookInput represents the input for book creation.
type CreateBookInput struct {
	Name string
}

// CreateBookOutput represents the output of book creation.
type CreateBookOutput struct {
	Book *entity.Book
}

// CreateBookUseCase handles book creation. New books are never created as
// the default; the default flag moves only through UpdateBookUseCase.
type CreateBookUseCase struct {
	bookRepo adapter.BookRepository
}

// NewCreateBookUseCase creates a new CreateBookUseCase instance.
func NewCreateBookUseCase(bookRepo adapter.BookRepository) *CreateBookUseCase {
	return &CreateBookUseCase{bookRepo: bookRepo}
}

// Execute creates the book.
func (uc *CreateBookUseCase) Execute(ctx context.Context, input CreateBookInput) (*CreateBookOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeEmptyBookName,
			"book name must not be empty",
			domainerror.ErrEmptyBookName,
		)
	}

	book := entity.NewBook(name, false)
	if err := uc.bookRepo.Create(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return &CreateBookOutput{Book: book}, nil
}
