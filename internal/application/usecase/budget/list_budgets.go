package budget

import (
	"context"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
	domainerror "github.com/Avaria395/SmartExpenseTracker/internal/domain/error"
)

// ListBudgetsInput represents the optional month filter for listing
// budgets. When Year is zero, all budgets are returned.
type ListBudgetsInput struct {
	Year  int
	Month int
}

// ListBudgetsOutput represents the output of listing budgets. Total is the
// month's sentinel row when the listing is month-scoped and one exists.
type ListBudgetsOutput struct {
	Budgets []*entity.Budget
	Total   *entity.Budget
}

// ListBudgetsUseCase handles budget listing.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{budgetRepo: budgetRepo}
}

// Execute lists budgets. A month-scoped listing separates the total-budget
// sentinel from the category rows so callers never double-count it.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	if input.Year == 0 {
		budgets, err := uc.budgetRepo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		return &ListBudgetsOutput{Budgets: budgets}, nil
	}

	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidBudgetMonth,
		)
	}

	budgets, err := uc.budgetRepo.FindByMonth(ctx, input.Year, input.Month)
	if err != nil {
		return nil, err
	}

	output := &ListBudgetsOutput{Budgets: make([]*entity.Budget, 0, len(budgets))}
	for _, b := range budgets {
		if b.IsTotal() {
			output.Total = b
			continue
		}
		output.Budgets = append(output.Budgets, b)
	}
	return output, nil
}
