package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
	domainerror "github.com/Avaria395/SmartExpenseTracker/internal/domain/error"
)

// UpdateBudgetInput represents the input for updating a budget's amount
// and note. The category, month and spent total are not editable here.
type UpdateBudgetInput struct {
	ID     uuid.UUID
	Amount int64
	Note   string
}

// UpdateBudgetOutput represents the output of updating a budget.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget amount edits.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	statsCache adapter.StatsCache
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository, statsCache adapter.StatsCache) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
		statsCache: statsCache,
	}
}

// Execute updates the budget.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	if input.Amount < 0 {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeNegativeBudgetAmount,
			"budget amount must not be negative",
			domainerror.ErrNegativeBudgetAmount,
		)
	}

	budget, err := uc.budgetRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	budget.BudgetAmount = input.Amount
	budget.Note = input.Note
	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	invalidateStats(ctx, uc.statsCache)

	return &UpdateBudgetOutput{Budget: budget}, nil
}
