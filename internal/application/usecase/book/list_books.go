package book

import (
	"context"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

// ListBooksOutput represents the output of listing books.
type ListBooksOutput struct {
	Books []*entity.Book
}

// ListBooksUseCase handles book listing.
type ListBooksUseCase struct {
	bookRepo adapter.BookRepository
}

// NewListBooksUseCase creates a new ListBooksUseCase instance.
func NewListBooksUseCase(bookRepo adapter.BookRepository) *ListBooksUseCase {
	return &ListBooksUseCase{bookRepo: bookRepo}
}

// Execute lists all books in creation order.
func (uc *ListBooksUseCase) Execute(ctx context.Context) (*ListBooksOutput, error) {
	books, err := uc.bookRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return &ListBooksOutput{Books: books}, nil
}
