package book

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
	domainerror "github.com/Avaria395/SmartExpenseTracker/internal/domain/error"
)

// UpdateBookInput represents the input for updating a book.
type UpdateBookInput struct {
	ID        uuid.UUID
	Name      string
	IsDefault bool
}

// UpdateBookOutput represents the output of updating a book.
type UpdateBookOutput struct {
	Book *entity.Book
}

// UpdateBookUseCase handles book edits. Marking a book default clears the
// flag from the previous default first, keeping at most one default book.
type UpdateBookUseCase struct {
	bookRepo adapter.BookRepository
}

// NewUpdateBookUseCase creates a new UpdateBookUseCase instance.
func NewUpdateBookUseCase(bookRepo adapter.BookRepository) *UpdateBookUseCase {
	return &UpdateBookUseCase{bookRepo: bookRepo}
}

// Execute updates the book.
func (uc *UpdateBookUseCase) Execute(ctx context.Context, input UpdateBookInput) (*UpdateBookOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeEmptyBookName,
			"book name must not be empty",
			domainerror.ErrEmptyBookName,
		)
	}

	book, err := uc.bookRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.IsDefault && !book.IsDefault {
		if err := uc.clearDefault(ctx, book.ID); err != nil {
			return nil, err
		}
	}

	book.Name = name
	book.IsDefault = input.IsDefault
	book.UpdatedAt = time.Now().UTC()

	if err := uc.bookRepo.Update(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	return &UpdateBookOutput{Book: book}, nil
}

func (uc *UpdateBookUseCase) clearDefault(ctx context.Context, exceptID uuid.UUID) error {
	current, err := uc.bookRepo.FindDefault(ctx)
	if err != nil {
		if errors.Is(err, domainerror.ErrBookNotFound) {
			return nil
		}
		return err
	}
	if current.ID == exceptID {
		return nil
	}

	current.IsDefault = false
	current.UpdatedAt = time.Now().UTC()
	return uc.bookRepo.Update(ctx, current)
}
