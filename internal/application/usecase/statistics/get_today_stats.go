package statistics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

// GetTodayStatsOutput represents the output of the today summary.
type GetTodayStatsOutput struct {
	Stats *entity.TodayStats
}

// GetTodayStatsUseCase summarizes the current calendar day.
type GetTodayStatsUseCase struct {
	transactionRepo adapter.TransactionRepository
	loc             *time.Location
	now             func() time.Time
}

// NewGetTodayStatsUseCase creates a new GetTodayStatsUseCase instance.
func NewGetTodayStatsUseCase(transactionRepo adapter.TransactionRepository, loc *time.Location) *GetTodayStatsUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &GetTodayStatsUseCase{
		transactionRepo: transactionRepo,
		loc:             loc,
		now:             time.Now,
	}
}

// Execute computes today's expense and income totals. Balance is income
// minus expense for the day, not an account balance.
func (uc *GetTodayStatsUseCase) Execute(ctx context.Context) (*GetTodayStatsOutput, error) {
	now := uc.now().In(uc.loc)
	start, end := DayBounds(now, uc.loc)

	var expense, income int64
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		expense, err = uc.transactionRepo.SumAmountByType(groupCtx, entity.TransactionTypeExpense, start, end)
		return err
	})
	group.Go(func() error {
		var err error
		income, err = uc.transactionRepo.SumAmountByType(groupCtx, entity.TransactionTypeIncome, start, end)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute today stats: %w", err)
	}

	return &GetTodayStatsOutput{
		Stats: &entity.TodayStats{
			Date:    now.Format("2006-01-02"),
			Expense: expense,
			Income:  income,
			Balance: income - expense,
		},
	}, nil
}
