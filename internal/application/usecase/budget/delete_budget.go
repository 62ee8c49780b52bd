package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
)

// DeleteBudgetInput represents the input for deleting a budget.
type DeleteBudgetInput struct {
	ID uuid.UUID
}

// DeleteBudgetUseCase handles budget deletion. Deleting a budget does not
// touch the transactions that funded its spent total; the row simply stops
// tracking them.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	statsCache adapter.StatsCache
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(budgetRepo adapter.BudgetRepository, statsCache adapter.StatsCache) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo: budgetRepo,
		statsCache: statsCache,
	}
}

// Execute deletes the budget.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, input DeleteBudgetInput) error {
	if err := uc.budgetRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	invalidateStats(ctx, uc.statsCache)

	return nil
}
