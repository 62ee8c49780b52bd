package statistics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
	domainerror "github.com/Avaria395/SmartExpenseTracker/internal/domain/error"
)

// GetMonthlyStatisticsInput represents the input for the monthly view.
type GetMonthlyStatisticsInput struct {
	Year  int
	Month int
}

// GetMonthlyStatisticsOutput represents the output of the monthly view.
// DailyTrend has one slot per calendar day of the month; the sum of its
// slots equals Stats.Expense.
type GetMonthlyStatisticsOutput struct {
	Stats      *entity.MonthlyStats
	DailyTrend []int64
}

// GetMonthlyStatisticsUseCase aggregates one calendar month: totals, the
// per-category expense breakdown and the per-day expense trend.
type GetMonthlyStatisticsUseCase struct {
	transactionRepo adapter.TransactionRepository
	loc             *time.Location
}

// NewGetMonthlyStatisticsUseCase creates a new GetMonthlyStatisticsUseCase instance.
func NewGetMonthlyStatisticsUseCase(transactionRepo adapter.TransactionRepository, loc *time.Location) *GetMonthlyStatisticsUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &GetMonthlyStatisticsUseCase{
		transactionRepo: transactionRepo,
		loc:             loc,
	}
}

// Execute computes the month's statistics. The four aggregations are
// independent reads, so they run concurrently.
func (uc *GetMonthlyStatisticsUseCase) Execute(ctx context.Context, input GetMonthlyStatisticsInput) (*GetMonthlyStatisticsOutput, error) {
	if err := validateYearMonth(input.Year, input.Month); err != nil {
		return nil, err
	}

	start, end := MonthBounds(input.Year, input.Month, uc.loc)

	var (
		expense, income int64
		totals          []adapter.CategoryTotal
		transactions    []*entity.Transaction
	)
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
	group.Go(func() error {
		var err error
		totals, err = uc.transactionRepo.CategoryTotals(groupCtx, start, end, nil)
		return err
	})
	group.Go(func() error {
		var err error
		transactions, err = uc.transactionRepo.FindByPeriod(groupCtx, start, end, nil)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute monthly statistics: %w", err)
	}

	categoryStats := make([]entity.CategoryStat, 0, len(totals))
	for _, total := range totals {
		categoryStats = append(categoryStats, entity.CategoryStat{
			CategoryID: total.CategoryID,
			Total:      total.Total,
		})
	}

	return &GetMonthlyStatisticsOutput{
		Stats: &entity.MonthlyStats{
			Year:          input.Year,
			Month:         input.Month,
			Expense:       expense,
			Income:        income,
			Balance:       income - expense,
			CategoryStats: categoryStats,
		},
		DailyTrend: binDailyTrend(transactions, input.Year, input.Month, uc.loc),
	}, nil
}

// validateYearMonth bounds the statistics window to plausible values.
func validateYearMonth(year, month int) error {
	if err := validateYear(year); err != nil {
		return err
	}
	if month < 1 || month > 12 {
		return domainerror.NewStatisticsError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}
	return nil
}

func validateYear(year int) error {
	if year < 1970 || year > 9999 {
		return domainerror.NewStatisticsError(
			domainerror.ErrCodeInvalidYear,
			"year must be between 1970 and 9999",
			domainerror.ErrInvalidYear,
		)
	}
	return nil
}
