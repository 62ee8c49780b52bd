package book

import (
	"context"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

// GetDefaultBookOutput represents the output of the default book lookup.
type GetDefaultBookOutput struct {
	Book *entity.Book
}

// GetDefaultBookUseCase resolves the book new transactions land in when
// the client does not pick one.
type GetDefaultBookUseCase struct {
	bookRepo adapter.BookRepository
}

// NewGetDefaultBookUseCase creates a new GetDefaultBookUseCase instance.
func NewGetDefaultBookUseCase(bookRepo adapter.BookRepository) *GetDefaultBookUseCase {
	return &GetDefaultBookUseCase{bookRepo: bookRepo}
}

// Execute retrieves the default book.
func (uc *GetDefaultBookUseCase) Execute(ctx context.Context) (*GetDefaultBookOutput, error) {
	book, err := uc.bookRepo.FindDefault(ctx)
	if err != nil {
		return nil, err
	}
	return &GetDefaultBookOutput{Book: book}, nil
}
