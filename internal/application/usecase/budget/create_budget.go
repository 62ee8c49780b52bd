package budget

import (
	"context"
	"fmt"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
	domainerror "github.com/Avaria395/SmartExpenseTracker/internal/domain/error"
)

// CreateBudgetInput represents the input for creating a category budget.
type CreateBudgetInput struct {
	Category string
	Year     int
	Month    int
	Amount   int64
	Note     string
}

// CreateBudgetOutput represents the output of creating a budget.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles category budget creation. The total-budget
// sentinel name is reserved; it can only be written through
// SetTotalBudgetUseCase, which keeps the row unique per month.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	statsCache adapter.StatsCache
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository, statsCache adapter.StatsCache) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
		statsCache: statsCache,
	}
}

// Execute creates the budget row with a zero spent total.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if err := validateBudgetInput(input.Year, input.Month, input.Amount); err != nil {
		return nil, err
	}
	if input.Category == entity.TotalBudgetCategory {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeReservedBudgetCategory,
			"category name is reserved for the total budget",
			domainerror.ErrReservedBudgetCategory,
		)
	}

	budget := entity.NewBudget(input.Category, input.Amount, 0, input.Year, input.Month, input.Note)
	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	invalidateStats(ctx, uc.statsCache)

	return &CreateBudgetOutput{Budget: budget}, nil
}
