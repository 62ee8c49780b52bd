package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

// ledgerFixture seeds a book, an expense category, an account and both
// budget rows for the month of the fixture's record time.
type ledgerFixture struct {
	db         *gorm.DB
	book       *entity.Book
	category   *entity.Category
	account    *entity.Account
	recordTime int64
	year       int
	month      int
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	db := openTestDB(t)
	ctx := context.Background()

	book := entity.NewBook("Default Book", true)
	if err := NewBookRepository(db).Create(ctx, book); err != nil {
		t.Fatalf("failed to seed book: %v", err)
	}

	category := entity.NewCategory("Dining", entity.CategoryTypeExpense, "restaurant")
	if err := NewCategoryRepository(db).Create(ctx, category); err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}

	account := entity.NewAccount("Cash", 10000, "")
	if err := NewAccountRepository(db).Create(ctx, account); err != nil {
		t.Fatalf("failed to seed account: %v", err)
	}

	recordedAt := time.Date(2024, time.July, 15, 12, 0, 0, 0, time.UTC)

	budgetRepo := NewBudgetRepository(db)
	categoryBudget := entity.NewBudget("Dining", 50000, 0, 2024, 7, "")
	if err := budgetRepo.Create(ctx, categoryBudget); err != nil {
		t.Fatalf("failed to seed category budget: %v", err)
	}
	totalBudget := entity.NewBudget(entity.TotalBudgetCategory, 200000, 0, 2024, 7, "")
	if err := budgetRepo.Create(ctx, totalBudget); err != nil {
		t.Fatalf("failed to seed total budget: %v", err)
	}

	return &ledgerFixture{
		db:         db,
		book:       book,
		category:   category,
		account:    account,
		recordTime: recordedAt.UnixMilli(),
		year:       2024,
		month:      7,
	}
}

func (f *ledgerFixture) accountBalance(t *testing.T) int64 {
	t.Helper()
	account, err := NewAccountRepository(f.db).FindByID(context.Background(), f.account.ID)
	if err != nil {
		t.Fatalf("failed to load account: %v", err)
	}
	return account.Balance
}

func (f *ledgerFixture) budgetSpent(t *testing.T, category string) int64 {
	t.Helper()
	budget, err := NewBudgetRepository(f.db).FindByCategoryAndMonth(context.Background(), category, f.year, f.month)
	if err != nil {
		t.Fatalf("failed to load budget %q: %v", category, err)
	}
	return budget.SpentAmount
}

func TestLedgerRepository_RecordTransaction(t *testing.T) {
	t.Run("expense decrements balance and feeds both budgets", func(t *testing.T) {
		f := newLedgerFixture(t)
		repo := NewLedgerRepository(f.db, time.UTC)

		txn := entity.NewTransaction(f.book.ID, &f.category.ID, &f.account.ID, 3000, entity.TransactionTypeExpense, f.recordTime, "lunch")
		if err := repo.RecordTransaction(context.Background(), txn); err != nil {
			t.Fatalf("RecordTransaction returned error: %v", err)
		}

		if got := f.accountBalance(t); got != 7000 {
			t.Errorf("balance = %d, want 7000", got)
		}
		if got := f.budgetSpent(t, "Dining"); got != 3000 {
			t.Errorf("category spent = %d, want 3000", got)
		}
		if got := f.budgetSpent(t, entity.TotalBudgetCategory); got != 3000 {
			t.Errorf("total spent = %d, want 3000", got)
		}
	})

	t.Run("income increments balance and skips budgets", func(t *testing.T) {
		f := newLedgerFixture(t)
		repo := NewLedgerRepository(f.db, time.UTC)

		txn := entity.NewTransaction(f.book.ID, nil, &f.account.ID, 5000, entity.TransactionTypeIncome, f.recordTime, "salary")
		if err := repo.RecordTransaction(context.Background(), txn); err != nil {
			t.Fatalf("RecordTransaction returned error: %v", err)
		}

		if got := f.accountBalance(t); got != 15000 {
			t.Errorf("balance = %d, want 15000", got)
		}
		if got := f.budgetSpent(t, entity.TotalBudgetCategory); got != 0 {
			t.Errorf("total spent = %d, want 0", got)
		}
	})

	t.Run("transfer leaves balance untouched", func(t *testing.T) {
		f := newLedgerFixture(t)
		repo := NewLedgerRepository(f.db, time.UTC)

		txn := entity.NewTransaction(f.book.ID, nil, &f.account.ID, 2500, entity.TransactionTypeTransfer, f.recordTime, "")
		if err := repo.RecordTransaction(context.Background(), txn); err != nil {
			t.Fatalf("RecordTransaction returned error: %v", err)
		}

		if got := f.accountBalance(t); got != 10000 {
			t.Errorf("balance = %d, want 10000", got)
		}
	})

	t.Run("missing budget rows are skipped silently", func(t *testing.T) {
		f := newLedgerFixture(t)
		repo := NewLedgerRepository(f.db, time.UTC)

		// August has no budget rows.
		august := time.Date(2024, time.August, 1, 10, 0, 0, 0, time.UTC).UnixMilli()
		txn := entity.NewTransaction(f.book.ID, &f.category.ID, &f.account.ID, 1000, entity.TransactionTypeExpense, august, "")
		if err := repo.RecordTransaction(context.Background(), txn); err != nil {
			t.Fatalf("RecordTransaction returned error: %v", err)
		}

		if got := f.accountBalance(t); got != 9000 {
			t.Errorf("balance = %d, want 9000", got)
		}
	})

	t.Run("missing category skips budget propagation", func(t *testing.T) {
		f := newLedgerFixture(t)
		repo := NewLedgerRepository(f.db, time.UTC)

		danglingCategory := uuid.New()
		txn := entity.NewTransaction(f.book.ID, &danglingCategory, &f.account.ID, 1000, entity.TransactionTypeExpense, f.recordTime, "")
		if err := repo.RecordTransaction(context.Background(), txn); err != nil {
			t.Fatalf("RecordTransaction returned error: %v", err)
		}

		if got := f.budgetSpent(t, entity.TotalBudgetCategory); got != 0 {
			t.Errorf("total spent = %d, want 0", got)
		}
	})
}

func TestLedgerRepository_DeleteTransaction(t *testing.T) {
	t.Run("delete mirrors the insert exactly", func(t *testing.T) {
		f := newLedgerFixture(t)
		repo := NewLedgerRepository(f.db, time.UTC)
		ctx := context.Background()

		txn := entity.NewTransaction(f.book.ID, &f.category.ID, &f.account.ID, 3000, entity.TransactionTypeExpense, f.recordTime, "")
		if err := repo.RecordTransaction(ctx, txn); err != nil {
			t.Fatalf("RecordTransaction returned error: %v", err)
		}
		if err := repo.DeleteTransaction(ctx, txn); err != nil {
			t.Fatalf("DeleteTransaction returned error: %v", err)
		}

		if got := f.accountBalance(t); got != 10000 {
			t.Errorf("balance = %d, want original 10000", got)
		}
		if got := f.budgetSpent(t, "Dining"); got != 0 {
			t.Errorf("category spent = %d, want 0", got)
		}
		if got := f.budgetSpent(t, entity.TotalBudgetCategory); got != 0 {
			t.Errorf("total spent = %d, want 0", got)
		}

		if _, err := NewTransactionRepository(f.db).FindByID(ctx, txn.ID); err == nil {
			t.Error("expected the transaction row to be gone")
		}
	})

	t.Run("spent reversal clamps at zero", func(t *testing.T) {
		f := newLedgerFixture(t)
		repo := NewLedgerRepository(f.db, time.UTC)
		ctx := context.Background()

		txn := entity.NewTransaction(f.book.ID, &f.category.ID, &f.account.ID, 3000, entity.TransactionTypeExpense, f.recordTime, "")
		if err := repo.RecordTransaction(ctx, txn); err != nil {
			t.Fatalf("RecordTransaction returned error: %v", err)
		}

		// Simulate external drift: spent is lower than the reversal.
		budgetRepo := NewBudgetRepository(f.db)
		budget, err := budgetRepo.FindByCategoryAndMonth(ctx, "Dining", f.year, f.month)
		if err != nil {
			t.Fatalf("failed to load budget: %v", err)
		}
		budget.SpentAmount = 1000
		if err := budgetRepo.Update(ctx, budget); err != nil {
			t.Fatalf("failed to update budget: %v", err)
		}

		if err := repo.DeleteTransaction(ctx, txn); err != nil {
			t.Fatalf("DeleteTransaction returned error: %v", err)
		}

		if got := f.budgetSpent(t, "Dining"); got != 0 {
			t.Errorf("category spent = %d, want clamped 0", got)
		}
	})
}

func TestLedgerRepository_Recalculate(t *testing.T) {
	f := newLedgerFixture(t)
	repo := NewLedgerRepository(f.db, time.UTC)
	ctx := context.Background()

	txn1 := entity.NewTransaction(f.book.ID, &f.category.ID, &f.account.ID, 3000, entity.TransactionTypeExpense, f.recordTime, "")
	txn2 := entity.NewTransaction(f.book.ID, nil, &f.account.ID, 5000, entity.TransactionTypeIncome, f.recordTime, "")
	for _, txn := range []*entity.Transaction{txn1, txn2} {
		if err := repo.RecordTransaction(ctx, txn); err != nil {
			t.Fatalf("RecordTransaction returned error: %v", err)
		}
	}

	// Corrupt the derived state.
	accountRepo := NewAccountRepository(f.db)
	if err := accountRepo.ApplyBalanceDelta(ctx, f.account.ID, 99999); err != nil {
		t.Fatalf("failed to corrupt balance: %v", err)
	}
	budgetRepo := NewBudgetRepository(f.db)
	budget, err := budgetRepo.FindByCategoryAndMonth(ctx, "Dining", f.year, f.month)
	if err != nil {
		t.Fatalf("failed to load budget: %v", err)
	}
	budget.SpentAmount = 77777
	if err := budgetRepo.Update(ctx, budget); err != nil {
		t.Fatalf("failed to corrupt budget: %v", err)
	}

	result, err := repo.Recalculate(ctx)
	if err != nil {
		t.Fatalf("Recalculate returned error: %v", err)
	}
	if result.AccountsUpdated != 1 {
		t.Errorf("accounts updated = %d, want 1", result.AccountsUpdated)
	}
	if result.BudgetsUpdated != 1 {
		t.Errorf("budgets updated = %d, want 1", result.BudgetsUpdated)
	}

	// Balance rebuilds from a zero base: -3000 + 5000.
	if got := f.accountBalance(t); got != 2000 {
		t.Errorf("balance = %d, want 2000", got)
	}
	if got := f.budgetSpent(t, "Dining"); got != 3000 {
		t.Errorf("category spent = %d, want 3000", got)
	}
	if got := f.budgetSpent(t, entity.TotalBudgetCategory); got != 3000 {
		t.Errorf("total spent = %d, want 3000", got)
	}
}
