// Package adapter defines interfaces for external dependencies of the application layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence.
type CategoryRepository interface {
	// Create creates a new category.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindAll retrieves all categories.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// FindByType retrieves all categories of the given type.
	FindByType(ctx context.Context, categoryType entity.CategoryType) ([]*entity.Category, error)

	// Update updates an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category.
	Delete(ctx context.Context, id uuid.UUID) error
}

// BookRepository defines the interface for book persistence.
type BookRepository interface {
	// Create creates a new book.
	Create(ctx context.Context, book *entity.Book) error

	// FindByID retrieves a book by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error)

	// FindAll retrieves all books.
	FindAll(ctx context.Context) ([]*entity.Book, error)

	// FindDefault retrieves the default book, or ErrBookNotFound if none is
	// marked default.
	FindDefault(ctx context.Context) (*entity.Book, error)

	// Update updates an existing book.
	Update(ctx context.Context, book *entity.Book) error
}
