// Package budget contains the budget lifecycle use cases.
package budget

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
	domainerror "github.com/Avaria395/SmartExpenseTracker/internal/domain/error"
)

// SetTotalBudgetInput represents the input for setting the whole-month
// budget.
type SetTotalBudgetInput struct {
	Year   int
	Month  int
	Amount int64
	Note   string
}

// SetTotalBudgetOutput represents the output of setting the total budget.
type SetTotalBudgetOutput struct {
	Budget *entity.Budget
}

// SetTotalBudgetUseCase maintains the single total-budget row per month.
// Setting it replaces any previous row atomically, carrying the previous
// spent total forward so progress is not reset by a budget change.
type SetTotalBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	statsCache adapter.StatsCache
}

// NewSetTotalBudgetUseCase creates a new SetTotalBudgetUseCase instance.
func NewSetTotalBudgetUseCase(budgetRepo adapter.BudgetRepository, statsCache adapter.StatsCache) *SetTotalBudgetUseCase {
	return &SetTotalBudgetUseCase{
		budgetRepo: budgetRepo,
		statsCache: statsCache,
	}
}

// Execute sets the total budget for the month.
func (uc *SetTotalBudgetUseCase) Execute(ctx context.Context, input SetTotalBudgetInput) (*SetTotalBudgetOutput, error) {
	if err := validateBudgetInput(input.Year, input.Month, input.Amount); err != nil {
		return nil, err
	}

	var spent int64
	existing, err := uc.budgetRepo.FindByCategoryAndMonth(ctx, entity.TotalBudgetCategory, input.Year, input.Month)
	if err == nil {
		spent = existing.SpentAmount
	}

	budget := entity.NewBudget(entity.TotalBudgetCategory, input.Amount, spent, input.Year, input.Month, input.Note)
	if err := uc.budgetRepo.UpsertTotalForMonth(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to set total budget: %w", err)
	}

	invalidateStats(ctx, uc.statsCache)

	return &SetTotalBudgetOutput{Budget: budget}, nil
}

// validateBudgetInput checks the fields shared by the budget mutations.
func validateBudgetInput(year, month int, amount int64) error {
	if month < 1 || month > 12 {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidBudgetMonth,
		)
	}
	if amount < 0 {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeNegativeBudgetAmount,
			"budget amount must not be negative",
			domainerror.ErrNegativeBudgetAmount,
		)
	}
	return nil
}

// invalidateStats drops cached statistics after a budget mutation.
func invalidateStats(ctx context.Context, cache adapter.StatsCache) {
	if cache == nil {
		return
	}
	invalidateCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	if err := cache.InvalidateAll(invalidateCtx); err != nil {
		slog.Warn("failed to invalidate statistics cache", "error", err)
	}
}
