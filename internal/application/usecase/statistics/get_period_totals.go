package statistics

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
	domainerror "github.com/Avaria395/SmartExpenseTracker/internal/domain/error"
)

// GetPeriodTotalsInput represents an arbitrary closed interval of epoch
// milliseconds.
type GetPeriodTotalsInput struct {
	Start int64
	End   int64
}

// GetPeriodTotalsOutput represents the output of the period totals.
type GetPeriodTotalsOutput struct {
	Expense int64
	Income  int64
	Balance int64
}

// GetPeriodTotalsUseCase sums expense and income over an arbitrary period.
type GetPeriodTotalsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetPeriodTotalsUseCase creates a new GetPeriodTotalsUseCase instance.
func NewGetPeriodTotalsUseCase(transactionRepo adapter.TransactionRepository) *GetPeriodTotalsUseCase {
	return &GetPeriodTotalsUseCase{transactionRepo: transactionRepo}
}

// Execute computes the period totals. An empty period sums to zero.
func (uc *GetPeriodTotalsUseCase) Execute(ctx context.Context, input GetPeriodTotalsInput) (*GetPeriodTotalsOutput, error) {
	if input.End < input.Start {
		return nil, domainerror.NewStatisticsError(
			domainerror.ErrCodeInvalidPeriod,
			"period end must not precede period start",
			domainerror.ErrInvalidPeriod,
		)
	}

	var expense, income int64
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		expense, err = uc.transactionRepo.SumAmountByType(groupCtx, entity.TransactionTypeExpense, input.Start, input.End)
		return err
	})
	group.Go(func() error {
		var err error
		income, err = uc.transactionRepo.SumAmountByType(groupCtx, entity.TransactionTypeIncome, input.Start, input.End)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute period totals: %w", err)
	}

	return &GetPeriodTotalsOutput{
		Expense: expense,
		Income:  income,
		Balance: income - expense,
	}, nil
}
