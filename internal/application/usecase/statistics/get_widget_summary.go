package statistics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

// widgetSummaryCacheKey is the cache key for the widget payload. The value
// is keyed per (year, month, day) implicitly through invalidation: every
// ledger or budget mutation drops it, and stale day rollover only costs
// one refresh.
const widgetSummaryCacheKey = "widget:summary"

// GetWidgetSummaryOutput represents the output of the widget summary.
type GetWidgetSummaryOutput struct {
	Summary *entity.WidgetSummary
}

// GetWidgetSummaryUseCase builds the home-screen widget payload: the
// current month's budget position plus today's totals. Results are served
// through a read-through cache because widgets poll frequently.
type GetWidgetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
	statsCache      adapter.StatsCache
	cacheTTL        time.Duration
	loc             *time.Location
	now             func() time.Time
}

// NewGetWidgetSummaryUseCase creates a new GetWidgetSummaryUseCase instance.
func NewGetWidgetSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	statsCache adapter.StatsCache,
	cacheTTL time.Duration,
	loc *time.Location,
) *GetWidgetSummaryUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &GetWidgetSummaryUseCase{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		statsCache:      statsCache,
		cacheTTL:        cacheTTL,
		loc:             loc,
		now:             time.Now,
	}
}

// Execute returns the widget summary, from cache when possible. Cache
// errors degrade to a fresh computation.
func (uc *GetWidgetSummaryUseCase) Execute(ctx context.Context) (*GetWidgetSummaryOutput, error) {
	if uc.statsCache != nil {
		var cached entity.WidgetSummary
		hit, err := uc.statsCache.Get(ctx, widgetSummaryCacheKey, &cached)
		if err != nil {
			slog.Warn("widget summary cache read failed", "error", err)
		} else if hit && uc.isCurrent(&cached) {
			return &GetWidgetSummaryOutput{Summary: &cached}, nil
		}
	}

	summary, err := uc.compute(ctx)
	if err != nil {
		return nil, err
	}

	if uc.statsCache != nil {
		if err := uc.statsCache.Set(ctx, widgetSummaryCacheKey, summary, uc.cacheTTL); err != nil {
			slog.Warn("widget summary cache write failed", "error", err)
		}
	}

	return &GetWidgetSummaryOutput{Summary: summary}, nil
}

// isCurrent guards against serving a payload cached before a month
// rollover.
func (uc *GetWidgetSummaryUseCase) isCurrent(summary *entity.WidgetSummary) bool {
	now := uc.now().In(uc.loc)
	return summary.Year == now.Year() && summary.Month == int(now.Month())
}

func (uc *GetWidgetSummaryUseCase) compute(ctx context.Context) (*entity.WidgetSummary, error) {
	now := uc.now().In(uc.loc)
	year, month := now.Year(), int(now.Month())

	monthStart, monthEnd := MonthBounds(year, month, uc.loc)
	dayStart, dayEnd := DayBounds(now, uc.loc)

	var (
		totalBudget  int64
		monthExpense int64
		todayExpense int64
		todayIncome  int64
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		amount, _, err := uc.budgetRepo.TotalBudgetAmountForMonth(groupCtx, year, month)
		totalBudget = amount
		return err
	})
	group.Go(func() error {
		var err error
		monthExpense, err = uc.transactionRepo.SumAmountByType(groupCtx, entity.TransactionTypeExpense, monthStart, monthEnd)
		return err
	})
	group.Go(func() error {
		var err error
		todayExpense, err = uc.transactionRepo.SumAmountByType(groupCtx, entity.TransactionTypeExpense, dayStart, dayEnd)
		return err
	})
	group.Go(func() error {
		var err error
		todayIncome, err = uc.transactionRepo.SumAmountByType(groupCtx, entity.TransactionTypeIncome, dayStart, dayEnd)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute widget summary: %w", err)
	}

	return &entity.WidgetSummary{
		Year:            year,
		Month:           month,
		TotalBudget:     totalBudget,
		MonthExpense:    monthExpense,
		RemainingBudget: remainingBudget(totalBudget, monthExpense),
		ProgressPercent: budgetProgress(totalBudget, monthExpense),
		TodayExpense:    todayExpense,
		TodayIncome:     todayIncome,
	}, nil
}

// remainingBudget returns the unspent portion of the month budget.
// Without a budget there is nothing to count down from, so it stays at
// zero instead of going negative.
func remainingBudget(budget, spent int64) int64 {
	if budget <= 0 {
		return 0
	}
	return budget - spent
}

// budgetProgress returns spent/budget as a whole percentage clamped to
// [0, 100]. No budget reads as zero progress.
func budgetProgress(budget, spent int64) int {
	if budget <= 0 {
		return 0
	}
	progress := int(spent * 100 / budget)
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
