// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TotalBudgetCategory is the reserved category name of the sentinel row
// holding the whole-month budget. At most one such row exists per
// (year, month).
const TotalBudgetCategory = "Total Budget"

// Budget represents a monthly budget for a category, keyed by category NAME
// rather than category ID. SpentAmount is a running total maintained by the
// ledger as expense transactions are recorded and deleted; it is a derived
// cache, not a source of truth.
type Budget struct {
	ID           uuid.UUID
	Category     string
	BudgetAmount int64
	SpentAmount  int64
	Year         int
	Month        int
	Note         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(category string, budgetAmount, spentAmount int64, year, month int, note string) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:           uuid.New(),
		Category:     category,
		BudgetAmount: budgetAmount,
		SpentAmount:  spentAmount,
		Year:         year,
		Month:        month,
		Note:         note,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsTotal reports whether this budget is the whole-month sentinel row.
func (b *Budget) IsTotal() bool {
	return b.Category == TotalBudgetCategory
}

// Remaining returns the unspent portion of the budget, which may be
// negative when the budget is overspent.
func (b *Budget) Remaining() int64 {
	return b.BudgetAmount - b.SpentAmount
}
