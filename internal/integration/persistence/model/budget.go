// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database. Rows are keyed
// by (category name, year, month); the composite index backs the lookups
// the ledger does on every expense mutation.
type BudgetModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Category     string    `gorm:"type:varchar(50);not null;index:idx_budgets_cat_month"`
	BudgetAmount int64     `gorm:"not null"`
	SpentAmount  int64     `gorm:"not null;default:0"`
	Year         int       `gorm:"not null;index:idx_budgets_cat_month"`
	Month        int       `gorm:"not null;index:idx_budgets_cat_month"`
	Note         string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:           m.ID,
		Category:     m.Category,
		BudgetAmount: m.BudgetAmount,
		SpentAmount:  m.SpentAmount,
		Year:         m.Year,
		Month:        m.Month,
		Note:         m.Note,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:           budget.ID,
		Category:     budget.Category,
		BudgetAmount: budget.BudgetAmount,
		SpentAmount:  budget.SpentAmount,
		Year:         budget.Year,
		Month:        budget.Month,
		Note:         budget.Note,
		CreatedAt:    budget.CreatedAt,
		UpdatedAt:    budget.UpdatedAt,
	}
}
