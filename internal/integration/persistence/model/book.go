// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

// BookModel represents the books table in the database.
type BookModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(50);not null"`
	IsDefault bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the BookModel.
func (BookModel) TableName() string {
	return "books"
}

// ToEntity converts a BookModel to a domain Book entity.
func (m *BookModel) ToEntity() *entity.Book {
	return &entity.Book{
		ID:        m.ID,
		Name:      m.Name,
		IsDefault: m.IsDefault,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// BookFromEntity creates a BookModel from a domain Book entity.
func BookFromEntity(book *entity.Book) *BookModel {
	return &BookModel{
		ID:        book.ID,
		Name:      book.Name,
		IsDefault: book.IsDefault,
		CreatedAt: book.CreatedAt,
		UpdatedAt: book.UpdatedAt,
	}
}
