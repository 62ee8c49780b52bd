package budget

import (
	"context"
	"errors"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
	domainerror "github.com/Avaria395/SmartExpenseTracker/internal/domain/error"
)

// GetRemainingBudgetInput represents the input for reading the month's
// remaining total budget.
type GetRemainingBudgetInput struct {
	Year  int
	Month int
}

// GetRemainingBudgetOutput represents the remaining total budget for a
// month. HasBudget is false when no total budget is set, in which case
// Remaining is zero rather than negative.
type GetRemainingBudgetOutput struct {
	Year      int
	Month     int
	Remaining int64
	HasBudget bool
}

// GetRemainingBudgetUseCase reads how much of the month's total budget is
// left to spend.
type GetRemainingBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewGetRemainingBudgetUseCase creates a new GetRemainingBudgetUseCase instance.
func NewGetRemainingBudgetUseCase(budgetRepo adapter.BudgetRepository) *GetRemainingBudgetUseCase {
	return &GetRemainingBudgetUseCase{budgetRepo: budgetRepo}
}

// Execute returns the remaining total budget for the month.
func (uc *GetRemainingBudgetUseCase) Execute(ctx context.Context, input GetRemainingBudgetInput) (*GetRemainingBudgetOutput, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidBudgetMonth,
		)
	}

	output := &GetRemainingBudgetOutput{Year: input.Year, Month: input.Month}

	total, err := uc.budgetRepo.FindByCategoryAndMonth(ctx, entity.TotalBudgetCategory, input.Year, input.Month)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return output, nil
		}
		return nil, err
	}

	output.Remaining = total.Remaining()
	output.HasBudget = true
	return output, nil
}
