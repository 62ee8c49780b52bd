package budget

import (
	"context"
	"fmt"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
	domainerror "github.com/Avaria395/SmartExpenseTracker/internal/domain/error"
)

// UpdateBudgetSpentInput represents the input for overwriting a budget's
// spent total.
type UpdateBudgetSpentInput struct {
	Category string
	Year     int
	Month    int
	Spent    int64
}

// UpdateBudgetSpentOutput represents the output of overwriting a budget's
// spent total.
type UpdateBudgetSpentOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetSpentUseCase overwrites the running spent total of a budget
// row directly. The ledger normally maintains spent totals as a side
// effect of recording transactions; this setter exists for manual
// corrections and accepts the category name as the key.
type UpdateBudgetSpentUseCase struct {
	budgetRepo adapter.BudgetRepository
	statsCache adapter.StatsCache
}

// NewUpdateBudgetSpentUseCase creates a new UpdateBudgetSpentUseCase instance.
func NewUpdateBudgetSpentUseCase(budgetRepo adapter.BudgetRepository, statsCache adapter.StatsCache) *UpdateBudgetSpentUseCase {
	return &UpdateBudgetSpentUseCase{
		budgetRepo: budgetRepo,
		statsCache: statsCache,
	}
}

// Execute sets the spent total and returns the refreshed budget row.
func (uc *UpdateBudgetSpentUseCase) Execute(ctx context.Context, input UpdateBudgetSpentInput) (*UpdateBudgetSpentOutput, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidBudgetMonth,
		)
	}
	if input.Spent < 0 {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeNegativeBudgetAmount,
			"spent amount must not be negative",
			domainerror.ErrNegativeBudgetAmount,
		)
	}

	if err := uc.budgetRepo.UpdateSpent(ctx, input.Category, input.Year, input.Month, input.Spent); err != nil {
		return nil, err
	}

	budget, err := uc.budgetRepo.FindByCategoryAndMonth(ctx, input.Category, input.Year, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to reload budget after spent update: %w", err)
	}

	invalidateStats(ctx, uc.statsCache)

	return &UpdateBudgetSpentOutput{Budget: budget}, nil
}
