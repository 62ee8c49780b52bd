package dto

import (
	"time"

	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for recording a
// transaction. Amount is a non-negative decimal string; direction comes
// from Type. RecordTime is epoch milliseconds and defaults to now.
type CreateTransactionRequest struct {
	BookID     string  `json:"book_id" binding:"required,uuid"`
	CategoryID *string `json:"category_id,omitempty" binding:"omitempty,uuid"`
	AccountID  *string `json:"account_id,omitempty" binding:"omitempty,uuid"`
	Amount     string  `json:"amount" binding:"required"`
	Type       int     `json:"type" binding:"oneof=0 1 2"`
	RecordTime *int64  `json:"record_time,omitempty"`
	Remark     string  `json:"remark,omitempty" binding:"omitempty,max=500"`
}

// UpdateTransactionRequest represents the request body for updating a
// transaction. All fields are replaced wholesale.
type UpdateTransactionRequest struct {
	BookID     string  `json:"book_id" binding:"required,uuid"`
	CategoryID *string `json:"category_id,omitempty" binding:"omitempty,uuid"`
	AccountID  *string `json:"account_id,omitempty" binding:"omitempty,uuid"`
	Amount     string  `json:"amount" binding:"required"`
	Type       int     `json:"type" binding:"oneof=0 1 2"`
	RecordTime int64   `json:"record_time" binding:"required"`
	Remark     string  `json:"remark,omitempty" binding:"omitempty,max=500"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID         string    `json:"id"`
	BookID     string    `json:"book_id"`
	CategoryID *string   `json:"category_id,omitempty"`
	AccountID  *string   `json:"account_id,omitempty"`
	Amount     string    `json:"amount"`
	Type       int       `json:"type"`
	RecordTime int64     `json:"record_time"`
	Remark     string    `json:"remark"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}

// RecalculateResponse reports what a derived-state rebuild corrected.
type RecalculateResponse struct {
	AccountsUpdated int `json:"accounts_updated"`
	BudgetsUpdated  int `json:"budgets_updated"`
}

// ToTransactionResponse converts a transaction entity to its response form.
func ToTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:         transaction.ID.String(),
		BookID:     transaction.BookID.String(),
		Amount:     FormatAmount(transaction.Amount),
		Type:       int(transaction.Type),
		RecordTime: transaction.RecordTime,
		Remark:     transaction.Remark,
		CreatedAt:  transaction.CreatedAt,
		UpdatedAt:  transaction.UpdatedAt,
	}
	if transaction.CategoryID != nil {
		id := transaction.CategoryID.String()
		response.CategoryID = &id
	}
	if transaction.AccountID != nil {
		id := transaction.AccountID.String()
		response.AccountID = &id
	}
	return response
}

// ToTransactionListResponse converts a slice of transaction entities to the
// list response form.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		responses = append(responses, ToTransactionResponse(transaction))
	}
	return TransactionListResponse{
		Transactions: responses,
		Count:        len(responses),
	}
}
