// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Book is the containing scope for transactions. A single default book is
// seeded at first run and used for everyday recording.
type Book struct {
	ID        uuid.UUID
	Name      string
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBook creates a new Book entity.
func NewBook(name string, isDefault bool) *Book {
	now := time.Now().UTC()

	return &Book{
		ID:        uuid.New(),
		Name:      name,
		IsDefault: isDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
