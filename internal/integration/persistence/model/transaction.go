// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// Amounts are stored in minor units; record_time is epoch milliseconds.
type TransactionModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BookID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	CategoryID *uuid.UUID `gorm:"type:uuid;index"`
	AccountID  *uuid.UUID `gorm:"type:uuid;index"`
	Amount     int64      `gorm:"not null"`
	Type       int        `gorm:"not null;index"`
	RecordTime int64      `gorm:"not null;index"`
	Remark     string     `gorm:"type:text"`
	CreatedAt  time.Time  `gorm:"not null"`
	UpdatedAt  time.Time  `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
	Account  *AccountModel  `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:         m.ID,
		BookID:     m.BookID,
		CategoryID: m.CategoryID,
		AccountID:  m.AccountID,
		Amount:     m.Amount,
		Type:       entity.TransactionType(m.Type),
		RecordTime: m.RecordTime,
		Remark:     m.Remark,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:         transaction.ID,
		BookID:     transaction.BookID,
		CategoryID: transaction.CategoryID,
		AccountID:  transaction.AccountID,
		Amount:     transaction.Amount,
		Type:       int(transaction.Type),
		RecordTime: transaction.RecordTime,
		Remark:     transaction.Remark,
		CreatedAt:  transaction.CreatedAt,
		UpdatedAt:  transaction.UpdatedAt,
	}
}
