// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType represents the direction of a transaction. The numeric
// codes are fixed: they are stored as-is and carried across the API.
type TransactionType int

const (
	TransactionTypeExpense  TransactionType = 0
	TransactionTypeIncome   TransactionType = 1
	TransactionTypeTransfer TransactionType = 2
)

// Valid reports whether the type is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome || t == TransactionTypeTransfer
}

// Transaction represents a single ledger entry. Amount is always
// non-negative, in minor units (cents); direction is carried by Type.
// RecordTime is epoch milliseconds and user-editable, so it may differ
// from CreatedAt.
type Transaction struct {
	ID         uuid.UUID
	BookID     uuid.UUID
	CategoryID *uuid.UUID
	AccountID  *uuid.UUID
	Amount     int64
	Type       TransactionType
	RecordTime int64
	Remark     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	bookID uuid.UUID,
	categoryID *uuid.UUID,
	accountID *uuid.UUID,
	amount int64,
	transactionType TransactionType,
	recordTime int64,
	remark string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:         uuid.New(),
		BookID:     bookID,
		CategoryID: categoryID,
		AccountID:  accountID,
		Amount:     amount,
		Type:       transactionType,
		RecordTime: recordTime,
		Remark:     remark,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// BalanceDelta returns the signed change this transaction applies to its
// account balance: negative for expenses, positive for income, zero for
// transfers or transactions without an account.
func (t *Transaction) BalanceDelta() int64 {
	if t.AccountID == nil || t.Type == TransactionTypeTransfer {
		return 0
	}
	if t.Type == TransactionTypeExpense {
		return -t.Amount
	}
	return t.Amount
}

// RecordedAt returns the record timestamp as a time.Time in the given
// location. Budget propagation derives its (year, month) key from this,
// not from wall-clock now.
func (t *Transaction) RecordedAt(loc *time.Location) time.Time {
	return time.UnixMilli(t.RecordTime).In(loc)
}
