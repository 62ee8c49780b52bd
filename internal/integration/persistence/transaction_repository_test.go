package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
	domainerror "github.com/Avaria395/SmartExpenseTracker/internal/domain/error"
	"github.com/Avaria395/SmartExpenseTracker/internal/integration/persistence/model"
)

func insertTransaction(t *testing.T, db *gorm.DB, txn *entity.Transaction) {
	t.Helper()
	if err := db.Create(model.TransactionFromEntity(txn)).Error; err != nil {
		t.Fatalf("failed to insert transaction: %v", err)
	}
}

func TestTransactionRepository_FindByPeriod(t *testing.T) {
	db := openTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	bookID := uuid.New()
	otherBookID := uuid.New()
	start := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	end := time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC).UnixMilli() - 1

	atStart := entity.NewTransaction(bookID, nil, nil, 100, entity.TransactionTypeExpense, start, "at start")
	atEnd := entity.NewTransaction(bookID, nil, nil, 200, entity.TransactionTypeExpense, end, "at end")
	before := entity.NewTransaction(bookID, nil, nil, 300, entity.TransactionTypeExpense, start-1, "before")
	after := entity.NewTransaction(bookID, nil, nil, 400, entity.TransactionTypeExpense, end+1, "after")
	otherBook := entity.NewTransaction(otherBookID, nil, nil, 500, entity.TransactionTypeExpense, start+1000, "other book")
	for _, txn := range []*entity.Transaction{atStart, atEnd, before, after, otherBook} {
		insertTransaction(t, db, txn)
	}

	t.Run("interval is closed on both ends", func(t *testing.T) {
		transactions, err := repo.FindByPeriod(ctx, start, end, nil)
		if err != nil {
			t.Fatalf("FindByPeriod returned error: %v", err)
		}
		if len(transactions) != 3 {
			t.Fatalf("got %d transactions, want 3", len(transactions))
		}
		// Newest first.
		if transactions[0].ID != atEnd.ID {
			t.Errorf("first transaction = %q, want the one at the end bound", transactions[0].Remark)
		}
		if transactions[len(transactions)-1].ID != atStart.ID {
			t.Errorf("last transaction = %q, want the one at the start bound", transactions[len(transactions)-1].Remark)
		}
	})

	t.Run("book filter scopes the result", func(t *testing.T) {
		transactions, err := repo.FindByPeriod(ctx, start, end, &otherBookID)
		if err != nil {
			t.Fatalf("FindByPeriod returned error: %v", err)
		}
		if len(transactions) != 1 || transactions[0].ID != otherBook.ID {
			t.Fatalf("got %d transactions, want only the other book's one", len(transactions))
		}
	})
}

func TestTransactionRepository_SumAmountByType(t *testing.T) {
	db := openTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	bookID := uuid.New()
	day := time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC)
	start := day.UnixMilli()
	end := day.AddDate(0, 0, 1).UnixMilli() - 1

	insertTransaction(t, db, entity.NewTransaction(bookID, nil, nil, 1200, entity.TransactionTypeExpense, start+1000, ""))
	insertTransaction(t, db, entity.NewTransaction(bookID, nil, nil, 800, entity.TransactionTypeExpense, end, ""))
	insertTransaction(t, db, entity.NewTransaction(bookID, nil, nil, 5000, entity.TransactionTypeIncome, start+2000, ""))
	insertTransaction(t, db, entity.NewTransaction(bookID, nil, nil, 999, entity.TransactionTypeExpense, end+1, "next day"))

	t.Run("sums only the requested type inside the interval", func(t *testing.T) {
		expense, err := repo.SumAmountByType(ctx, entity.TransactionTypeExpense, start, end)
		if err != nil {
			t.Fatalf("SumAmountByType returned error: %v", err)
		}
		if expense != 2000 {
			t.Errorf("expense sum = %d, want 2000", expense)
		}

		income, err := repo.SumAmountByType(ctx, entity.TransactionTypeIncome, start, end)
		if err != nil {
			t.Fatalf("SumAmountByType returned error: %v", err)
		}
		if income != 5000 {
			t.Errorf("income sum = %d, want 5000", income)
		}
	})

	t.Run("empty interval sums to zero", func(t *testing.T) {
		sum, err := repo.SumAmountByType(ctx, entity.TransactionTypeExpense, 0, start-1)
		if err != nil {
			t.Fatalf("SumAmountByType returned error: %v", err)
		}
		if sum != 0 {
			t.Errorf("sum = %d, want 0", sum)
		}
	})
}

func TestTransactionRepository_CategoryTotals(t *testing.T) {
	db := openTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	bookID := uuid.New()
	dining := uuid.New()
	transport := uuid.New()
	day := time.Date(2024, time.July, 15, 12, 0, 0, 0, time.UTC).UnixMilli()

	insertTransaction(t, db, entity.NewTransaction(bookID, &dining, nil, 3000, entity.TransactionTypeExpense, day, ""))
	insertTransaction(t, db, entity.NewTransaction(bookID, &dining, nil, 2000, entity.TransactionTypeExpense, day, ""))
	insertTransaction(t, db, entity.NewTransaction(bookID, &transport, nil, 1500, entity.TransactionTypeExpense, day, ""))
	insertTransaction(t, db, entity.NewTransaction(bookID, nil, nil, 700, entity.TransactionTypeExpense, day, "uncategorized"))
	insertTransaction(t, db, entity.NewTransaction(bookID, &dining, nil, 9999, entity.TransactionTypeIncome, day, "refund"))

	totals, err := repo.CategoryTotals(ctx, 0, day+1, nil)
	if err != nil {
		t.Fatalf("CategoryTotals returned error: %v", err)
	}
	if len(totals) != 3 {
		t.Fatalf("got %d groups, want 3", len(totals))
	}

	byKey := make(map[string]int64, len(totals))
	for _, total := range totals {
		key := "nil"
		if total.CategoryID != nil {
			key = total.CategoryID.String()
		}
		byKey[key] = total.Total
	}
	if byKey[dining.String()] != 5000 {
		t.Errorf("dining total = %d, want 5000", byKey[dining.String()])
	}
	if byKey[transport.String()] != 1500 {
		t.Errorf("transport total = %d, want 1500", byKey[transport.String()])
	}
	if byKey["nil"] != 700 {
		t.Errorf("uncategorized total = %d, want 700", byKey["nil"])
	}

	// Descending by total.
	if totals[0].Total != 5000 {
		t.Errorf("first group total = %d, want the largest (5000)", totals[0].Total)
	}

	t.Run("book filter scopes the grouping", func(t *testing.T) {
		other := uuid.New()
		totals, err := repo.CategoryTotals(ctx, 0, day+1, &other)
		if err != nil {
			t.Fatalf("CategoryTotals returned error: %v", err)
		}
		if len(totals) != 0 {
			t.Errorf("got %d groups for an empty book, want 0", len(totals))
		}
	})
}

func TestTransactionRepository_Update(t *testing.T) {
	db := openTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	t.Run("persists the editable fields", func(t *testing.T) {
		txn := entity.NewTransaction(uuid.New(), nil, nil, 1000, entity.TransactionTypeExpense, 1000, "before")
		insertTransaction(t, db, txn)

		txn.Amount = 2500
		txn.Remark = "after"
		txn.UpdatedAt = time.Now().UTC()
		if err := repo.Update(ctx, txn); err != nil {
			t.Fatalf("Update returned error: %v", err)
		}

		stored, err := repo.FindByID(ctx, txn.ID)
		if err != nil {
			t.Fatalf("FindByID returned error: %v", err)
		}
		if stored.Amount != 2500 || stored.Remark != "after" {
			t.Errorf("stored = (%d, %q), want (2500, %q)", stored.Amount, stored.Remark, "after")
		}
	})

	t.Run("missing row maps to domain error", func(t *testing.T) {
		ghost := entity.NewTransaction(uuid.New(), nil, nil, 100, entity.TransactionTypeExpense, 1000, "")
		if err := repo.Update(ctx, ghost); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("err = %v, want ErrTransactionNotFound", err)
		}
	})

	t.Run("find missing row maps to domain error", func(t *testing.T) {
		if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("err = %v, want ErrTransactionNotFound", err)
		}
	})
}
