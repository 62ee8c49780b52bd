package dto

import (
	"time"

	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

// CreateBookRequest represents the request body for book creation.
type CreateBookRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// UpdateBookRequest represents the request body for updating a book.
type UpdateBookRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=50"`
	IsDefault bool   `json:"is_default"`
}

// BookResponse represents a single book in API responses.
type BookResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookListResponse represents the response for listing books.
type BookListResponse struct {
	Books []BookResponse `json:"books"`
	Count int            `json:"count"`
}

// ToBookResponse converts a book entity to its response form.
func ToBookResponse(book *entity.Book) BookResponse {
	return BookResponse{
		ID:        book.ID.String(),
		Name:      book.Name,
		IsDefault: book.IsDefault,
		CreatedAt: book.CreatedAt,
		UpdatedAt: book.UpdatedAt,
	}
}

// ToBookListResponse converts a slice of book entities to the list
// response form.
func ToBookListResponse(books []*entity.Book) BookListResponse {
	responses := make([]BookResponse, 0, len(books))
	for _, book := range books {
		responses = append(responses, ToBookResponse(book))
	}
	return BookListResponse{
		Books: responses,
		Count: len(responses),
	}
}
