package dto

import (
	"time"

	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
// Balance is a signed decimal string; negative opening balances mark
// liabilities.
type CreateAccountRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=50"`
	Balance string `json:"balance,omitempty"`
	Color   string `json:"color,omitempty" binding:"omitempty,hexcolor"`
}

// UpdateAccountRequest represents the request body for renaming or
// recoloring an account.
type UpdateAccountRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=50"`
	Color string `json:"color,omitempty" binding:"omitempty,hexcolor"`
}

// SetAccountBalanceRequest represents the request body for a balance
// correction.
type SetAccountBalanceRequest struct {
	Balance string `json:"balance" binding:"required"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Balance   string    `json:"balance"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Count    int               `json:"count"`
}

// ToAccountResponse converts an account entity to its response form.
func ToAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID.String(),
		Name:      account.Name,
		Balance:   FormatAmount(account.Balance),
		Color:     account.Color,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

// ToAccountListResponse converts a slice of account entities to the list
// response form.
func ToAccountListResponse(accounts []*entity.Account) AccountListResponse {
	responses := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, ToAccountResponse(account))
	}
	return AccountListResponse{
		Accounts: responses,
		Count:    len(responses),
	}
}
