// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
// Numeric codes match the stored representation.
type CategoryType int

const (
	CategoryTypeExpense CategoryType = 0
	CategoryTypeIncome  CategoryType = 1
)

// Valid reports whether the type is a known category type.
func (t CategoryType) Valid() bool {
	return t == CategoryTypeExpense || t == CategoryTypeIncome
}

// Category represents a transaction category. Names are unique per type in
// practice but not enforced by the store.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      CategoryType
	Icon      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name string, categoryType CategoryType, icon string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Type:      categoryType,
		Icon:      icon,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
