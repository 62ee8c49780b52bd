package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTransactionType_Valid(t *testing.T) {
	t.Run("known types are valid", func(t *testing.T) {
		for _, typ := range []TransactionType{TransactionTypeExpense, TransactionTypeIncome, TransactionTypeTransfer} {
			if !typ.Valid() {
				t.Errorf("expected type %d to be valid", typ)
			}
		}
	})

	t.Run("unknown types are invalid", func(t *testing.T) {
		for _, typ := range []TransactionType{-1, 3, 42} {
			if typ.Valid() {
				t.Errorf("expected type %d to be invalid", typ)
			}
		}
	})
}

func TestTransaction_BalanceDelta(t *testing.T) {
	accountID := uuid.New()

	t.Run("expense is a negative delta", func(t *testing.T) {
		txn := NewTransaction(uuid.New(), nil, &accountID, 3000, TransactionTypeExpense, time.Now().UnixMilli(), "")
		if got := txn.BalanceDelta(); got != -3000 {
			t.Errorf("expected delta -3000, got %d", got)
		}
	})

	t.Run("income is a positive delta", func(t *testing.T) {
		txn := NewTransaction(uuid.New(), nil, &accountID, 5000, TransactionTypeIncome, time.Now().UnixMilli(), "")
		if got := txn.BalanceDelta(); got != 5000 {
			t.Errorf("expected delta 5000, got %d", got)
		}
	})

	t.Run("transfer never moves a balance", func(t *testing.T) {
		txn := NewTransaction(uuid.New(), nil, &accountID, 3000, TransactionTypeTransfer, time.Now().UnixMilli(), "")
		if got := txn.BalanceDelta(); got != 0 {
			t.Errorf("expected delta 0, got %d", got)
		}
	})

	t.Run("no account means no delta", func(t *testing.T) {
		txn := NewTransaction(uuid.New(), nil, nil, 3000, TransactionTypeExpense, time.Now().UnixMilli(), "")
		if got := txn.BalanceDelta(); got != 0 {
			t.Errorf("expected delta 0, got %d", got)
		}
	})

	t.Run("zero amount is a zero delta", func(t *testing.T) {
		txn := NewTransaction(uuid.New(), nil, &accountID, 0, TransactionTypeExpense, time.Now().UnixMilli(), "")
		if got := txn.BalanceDelta(); got != 0 {
			t.Errorf("expected delta 0, got %d", got)
		}
	})
}

func TestTransaction_RecordedAt(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	// 2024-03-01T02:30 UTC is still 2024-02-29 in New York.
	recordTime := time.Date(2024, time.March, 1, 2, 30, 0, 0, time.UTC).UnixMilli()
	txn := NewTransaction(uuid.New(), nil, nil, 100, TransactionTypeExpense, recordTime, "")

	recordedAt := txn.RecordedAt(loc)
	if recordedAt.Year() != 2024 || recordedAt.Month() != time.February || recordedAt.Day() != 29 {
		t.Errorf("expected 2024-02-29 in New York, got %s", recordedAt.Format("2006-01-02"))
	}
}
