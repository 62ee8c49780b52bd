package statistics

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

// fakeSumRepo serves SumAmountByType from fixed per-type totals; the month
// window gets the month values, anything narrower the day values.
type fakeSumRepo struct {
	monthExpense int64
	todayExpense int64
	todayIncome  int64
}

func (f *fakeSumRepo) FindByID(context.Context, uuid.UUID) (*entity.Transaction, error) {
	return nil, nil
}
func (f *fakeSumRepo) FindAll(context.Context) ([]*entity.Transaction, error) { return nil, nil }
func (f *fakeSumRepo) FindByBook(context.Context, uuid.UUID) ([]*entity.Transaction, error) {
	return nil, nil
}
func (f *fakeSumRepo) FindByPeriod(context.Context, int64, int64, *uuid.UUID) ([]*entity.Transaction, error) {
	return nil, nil
}
func (f *fakeSumRepo) CategoryTotals(context.Context, int64, int64, *uuid.UUID) ([]adapter.CategoryTotal, error) {
	return nil, nil
}
func (f *fakeSumRepo) Update(context.Context, *entity.Transaction) error { return nil }
func (f *fakeSumRepo) SumAmountByType(_ context.Context, transactionType entity.TransactionType, start, end int64) (int64, error) {
	dayWindow := end-start < 48*60*60*1000
	switch {
	case transactionType == entity.TransactionTypeExpense && dayWindow:
		return f.todayExpense, nil
	case transactionType == entity.TransactionTypeExpense:
		return f.monthExpense, nil
	case transactionType == entity.TransactionTypeIncome && dayWindow:
		return f.todayIncome, nil
	}
	return 0, nil
}

// fakeTotalBudgetRepo answers TotalBudgetAmountForMonth from a fixed value
// and presence flag.
type fakeTotalBudgetRepo struct {
	amount int64
	set    bool
}

func (f *fakeTotalBudgetRepo) Create(context.Context, *entity.Budget) error { return nil }
func (f *fakeTotalBudgetRepo) FindByID(context.Context, uuid.UUID) (*entity.Budget, error) {
	return nil, nil
}
func (f *fakeTotalBudgetRepo) FindAll(context.Context) ([]*entity.Budget, error) { return nil, nil }
func (f *fakeTotalBudgetRepo) FindByMonth(context.Context, int, int) ([]*entity.Budget, error) {
	return nil, nil
}
func (f *fakeTotalBudgetRepo) FindByCategoryAndMonth(context.Context, string, int, int) (*entity.Budget, error) {
	return nil, nil
}
func (f *fakeTotalBudgetRepo) Update(context.Context, *entity.Budget) error { return nil }
func (f *fakeTotalBudgetRepo) Delete(context.Context, uuid.UUID) error      { return nil }
func (f *fakeTotalBudgetRepo) UpsertTotalForMonth(context.Context, *entity.Budget) error {
	return nil
}
func (f *fakeTotalBudgetRepo) UpdateSpent(context.Context, string, int, int, int64) error {
	return nil
}
func (f *fakeTotalBudgetRepo) TotalBudgetAmountForMonth(context.Context, int, int) (int64, bool, error) {
	return f.amount, f.set, nil
}

func widgetSummaryAt(t *testing.T, budgets *fakeTotalBudgetRepo, sums *fakeSumRepo) *entity.WidgetSummary {
	t.Helper()
	uc := NewGetWidgetSummaryUseCase(sums, budgets, nil, time.Minute, time.UTC)
	uc.now = func() time.Time {
		return time.Date(2024, time.July, 15, 12, 0, 0, 0, time.UTC)
	}

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	return output.Summary
}

func TestGetWidgetSummary(t *testing.T) {
	t.Run("with a total budget set", func(t *testing.T) {
		summary := widgetSummaryAt(t,
			&fakeTotalBudgetRepo{amount: 10000, set: true},
			&fakeSumRepo{monthExpense: 4500, todayExpense: 300, todayIncome: 1200},
		)

		if summary.Year != 2024 || summary.Month != 7 {
			t.Errorf("summary month = %d-%d, want 2024-7", summary.Year, summary.Month)
		}
		if summary.RemainingBudget != 5500 {
			t.Errorf("remaining budget = %d, want 5500", summary.RemainingBudget)
		}
		if summary.ProgressPercent != 45 {
			t.Errorf("progress = %d, want 45", summary.ProgressPercent)
		}
		if summary.TodayExpense != 300 || summary.TodayIncome != 1200 {
			t.Errorf("today totals = %d/%d, want 300/1200", summary.TodayExpense, summary.TodayIncome)
		}
	})

	t.Run("no total budget keeps remaining at zero", func(t *testing.T) {
		summary := widgetSummaryAt(t,
			&fakeTotalBudgetRepo{},
			&fakeSumRepo{monthExpense: 4500},
		)

		if summary.RemainingBudget != 0 {
			t.Errorf("remaining budget = %d, want 0 when no total budget is set", summary.RemainingBudget)
		}
		if summary.ProgressPercent != 0 {
			t.Errorf("progress = %d, want 0 when no total budget is set", summary.ProgressPercent)
		}
		if summary.MonthExpense != 4500 {
			t.Errorf("month expense = %d, want 4500", summary.MonthExpense)
		}
	})

	t.Run("overspent budget goes negative", func(t *testing.T) {
		summary := widgetSummaryAt(t,
			&fakeTotalBudgetRepo{amount: 3000, set: true},
			&fakeSumRepo{monthExpense: 4500},
		)

		if summary.RemainingBudget != -1500 {
			t.Errorf("remaining budget = %d, want -1500", summary.RemainingBudget)
		}
		if summary.ProgressPercent != 100 {
			t.Errorf("progress = %d, want clamped to 100", summary.ProgressPercent)
		}
	})
}
