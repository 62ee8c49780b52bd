// Package adapter defines interfaces for external dependencies of the application layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence.
//
// Budget rows are keyed by (category name, year, month). Uniqueness is only
// guaranteed for the total-budget sentinel row, which is maintained through
// UpsertTotalForMonth; ordinary category budgets can be duplicated if the
// caller does not guard insertion.
type BudgetRepository interface {
	// Create creates a new budget row.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindAll retrieves all budget rows.
	FindAll(ctx context.Context) ([]*entity.Budget, error)

	// FindByMonth retrieves all budget rows for the given year and month.
	FindByMonth(ctx context.Context, year, month int) ([]*entity.Budget, error)

	// FindByCategoryAndMonth retrieves the budget row for an exact
	// (category name, year, month) match, or ErrBudgetNotFound.
	FindByCategoryAndMonth(ctx context.Context, category string, year, month int) (*entity.Budget, error)

	// Update updates an existing budget row.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget row.
	Delete(ctx context.Context, id uuid.UUID) error

	// UpsertTotalForMonth atomically replaces the total-budget sentinel row
	// for the budget's (year, month), leaving exactly one such row.
	UpsertTotalForMonth(ctx context.Context, budget *entity.Budget) error

	// TotalBudgetAmountForMonth returns the sentinel row's budget amount
	// for the given month. The boolean reports whether a total budget is
	// set at all.
	TotalBudgetAmountForMonth(ctx context.Context, year, month int) (int64, bool, error)

	// UpdateSpent sets the spent total of every (category, year, month)
	// row directly, bypassing ledger bookkeeping. Returns
	// ErrBudgetNotFound when no row matches.
	UpdateSpent(ctx context.Context, category string, year, month int, spent int64) error
}
