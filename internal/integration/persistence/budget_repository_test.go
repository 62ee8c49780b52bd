package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
	domainerror "github.com/Avaria395/SmartExpenseTracker/internal/domain/error"
)

func TestBudgetRepository_UpsertTotalForMonth(t *testing.T) {
	db := openTestDB(t)
	repo := NewBudgetRepository(db)
	ctx := context.Background()

	t.Run("repeated upserts keep a single sentinel row", func(t *testing.T) {
		first := entity.NewBudget(entity.TotalBudgetCategory, 100000, 0, 2024, 7, "")
		if err := repo.UpsertTotalForMonth(ctx, first); err != nil {
			t.Fatalf("first upsert returned error: %v", err)
		}
		second := entity.NewBudget(entity.TotalBudgetCategory, 150000, 2500, 2024, 7, "raised")
		if err := repo.UpsertTotalForMonth(ctx, second); err != nil {
			t.Fatalf("second upsert returned error: %v", err)
		}

		budgets, err := repo.FindByMonth(ctx, 2024, 7)
		if err != nil {
			t.Fatalf("FindByMonth returned error: %v", err)
		}
		var sentinels []*entity.Budget
		for _, b := range budgets {
			if b.IsTotal() {
				sentinels = append(sentinels, b)
			}
		}
		if len(sentinels) != 1 {
			t.Fatalf("sentinel rows = %d, want 1", len(sentinels))
		}
		if sentinels[0].BudgetAmount != 150000 {
			t.Errorf("budget amount = %d, want 150000", sentinels[0].BudgetAmount)
		}
		if sentinels[0].SpentAmount != 2500 {
			t.Errorf("spent amount = %d, want carried-over 2500", sentinels[0].SpentAmount)
		}
	})

	t.Run("upsert scopes to its own month", func(t *testing.T) {
		august := entity.NewBudget(entity.TotalBudgetCategory, 80000, 0, 2024, 8, "")
		if err := repo.UpsertTotalForMonth(ctx, august); err != nil {
			t.Fatalf("upsert returned error: %v", err)
		}

		amount, ok, err := repo.TotalBudgetAmountForMonth(ctx, 2024, 7)
		if err != nil {
			t.Fatalf("TotalBudgetAmountForMonth returned error: %v", err)
		}
		if !ok || amount != 150000 {
			t.Errorf("july total = (%d, %v), want (150000, true)", amount, ok)
		}
	})
}

func TestBudgetRepository_TotalBudgetAmountForMonth(t *testing.T) {
	db := openTestDB(t)
	repo := NewBudgetRepository(db)
	ctx := context.Background()

	t.Run("not set reports ok=false without error", func(t *testing.T) {
		amount, ok, err := repo.TotalBudgetAmountForMonth(ctx, 2024, 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok || amount != 0 {
			t.Errorf("got (%d, %v), want (0, false)", amount, ok)
		}
	})

	t.Run("ordinary category budgets do not count as totals", func(t *testing.T) {
		if err := repo.Create(ctx, entity.NewBudget("Dining", 50000, 0, 2024, 7, "")); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		_, ok, err := repo.TotalBudgetAmountForMonth(ctx, 2024, 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("category budget reported as total")
		}
	})
}

func TestBudgetRepository_FindByCategoryAndMonth(t *testing.T) {
	db := openTestDB(t)
	repo := NewBudgetRepository(db)
	ctx := context.Background()

	older := entity.NewBudget("Dining", 30000, 0, 2024, 7, "older")
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	older.UpdatedAt = older.CreatedAt
	if err := repo.Create(ctx, older); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	newer := entity.NewBudget("Dining", 40000, 0, 2024, 7, "newer")
	if err := repo.Create(ctx, newer); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	t.Run("duplicates resolve to the oldest row", func(t *testing.T) {
		budget, err := repo.FindByCategoryAndMonth(ctx, "Dining", 2024, 7)
		if err != nil {
			t.Fatalf("FindByCategoryAndMonth returned error: %v", err)
		}
		if budget.ID != older.ID {
			t.Errorf("resolved row %s, want oldest %s", budget.ID, older.ID)
		}
	})

	t.Run("missing row maps to domain error", func(t *testing.T) {
		_, err := repo.FindByCategoryAndMonth(ctx, "Travel", 2024, 7)
		if !errors.Is(err, domainerror.ErrBudgetNotFound) {
			t.Errorf("err = %v, want ErrBudgetNotFound", err)
		}
	})
}

func TestBudgetRepository_UpdateDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewBudgetRepository(db)
	ctx := context.Background()

	t.Run("update missing row maps to domain error", func(t *testing.T) {
		ghost := entity.NewBudget("Dining", 10000, 0, 2024, 7, "")
		if err := repo.Update(ctx, ghost); !errors.Is(err, domainerror.ErrBudgetNotFound) {
			t.Errorf("err = %v, want ErrBudgetNotFound", err)
		}
	})

	t.Run("delete missing row maps to domain error", func(t *testing.T) {
		if err := repo.Delete(ctx, uuid.New()); !errors.Is(err, domainerror.ErrBudgetNotFound) {
			t.Errorf("err = %v, want ErrBudgetNotFound", err)
		}
	})
}

func TestBudgetRepository_UpdateSpent(t *testing.T) {
	db := openTestDB(t)
	repo := NewBudgetRepository(db)
	ctx := context.Background()

	seed := entity.NewBudget("Dining", 50000, 12000, 2024, 7, "")
	if err := repo.Create(ctx, seed); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	t.Run("overwrites the spent total by category and month", func(t *testing.T) {
		if err := repo.UpdateSpent(ctx, "Dining", 2024, 7, 8000); err != nil {
			t.Fatalf("UpdateSpent returned error: %v", err)
		}

		budget, err := repo.FindByCategoryAndMonth(ctx, "Dining", 2024, 7)
		if err != nil {
			t.Fatalf("FindByCategoryAndMonth returned error: %v", err)
		}
		if budget.SpentAmount != 8000 {
			t.Errorf("spent amount = %d, want 8000", budget.SpentAmount)
		}
		if budget.BudgetAmount != 50000 {
			t.Errorf("budget amount = %d, want untouched 50000", budget.BudgetAmount)
		}
	})

	t.Run("other months stay untouched", func(t *testing.T) {
		august := entity.NewBudget("Dining", 50000, 3000, 2024, 8, "")
		if err := repo.Create(ctx, august); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}

		if err := repo.UpdateSpent(ctx, "Dining", 2024, 7, 9000); err != nil {
			t.Fatalf("UpdateSpent returned error: %v", err)
		}

		budget, err := repo.FindByCategoryAndMonth(ctx, "Dining", 2024, 8)
		if err != nil {
			t.Fatalf("FindByCategoryAndMonth returned error: %v", err)
		}
		if budget.SpentAmount != 3000 {
			t.Errorf("august spent = %d, want 3000", budget.SpentAmount)
		}
	})

	t.Run("missing row maps to domain error", func(t *testing.T) {
		err := repo.UpdateSpent(ctx, "Travel", 2024, 7, 1000)
		if !errors.Is(err, domainerror.ErrBudgetNotFound) {
			t.Errorf("err = %v, want ErrBudgetNotFound", err)
		}
	})
}
