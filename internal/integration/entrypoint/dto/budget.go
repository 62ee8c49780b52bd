package dto

import (
	"time"

	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for creating a category
// budget. Category is the category name the budget tracks.
type CreateBudgetRequest struct {
	Category string `json:"category" binding:"required,min=1,max=50"`
	Year     int    `json:"year" binding:"required"`
	Month    int    `json:"month" binding:"required"`
	Amount   string `json:"amount" binding:"required"`
	Note     string `json:"note,omitempty" binding:"omitempty,max=500"`
}

// UpdateBudgetRequest represents the request body for updating a budget's
// amount and note.
type UpdateBudgetRequest struct {
	Amount string `json:"amount" binding:"required"`
	Note   string `json:"note,omitempty" binding:"omitempty,max=500"`
}

// SetTotalBudgetRequest represents the request body for setting the
// whole-month budget.
type SetTotalBudgetRequest struct {
	Year   int    `json:"year" binding:"required"`
	Month  int    `json:"month" binding:"required"`
	Amount string `json:"amount" binding:"required"`
	Note   string `json:"note,omitempty" binding:"omitempty,max=500"`
}

// UpdateBudgetSpentRequest represents the request body for overwriting a
// budget's spent total, keyed by category name and month.
type UpdateBudgetSpentRequest struct {
	Category string `json:"category" binding:"required,min=1,max=50"`
	Year     int    `json:"year" binding:"required"`
	Month    int    `json:"month" binding:"required"`
	Spent    string `json:"spent" binding:"required"`
}

// RemainingBudgetResponse represents the month's remaining total budget.
// Remaining is "0.00" when no total budget is set.
type RemainingBudgetResponse struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Remaining string `json:"remaining"`
	HasBudget bool   `json:"has_budget"`
}

// BudgetResponse represents a single budget row in API responses.
type BudgetResponse struct {
	ID           string    `json:"id"`
	Category     string    `json:"category"`
	BudgetAmount string    `json:"budget_amount"`
	SpentAmount  string    `json:"spent_amount"`
	Remaining    string    `json:"remaining"`
	Year         int       `json:"year"`
	Month        int       `json:"month"`
	Note         string    `json:"note"`
	IsTotal      bool      `json:"is_total"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets. Total is
// present only for month-scoped listings with a total budget set.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
	Total   *BudgetResponse  `json:"total,omitempty"`
	Count   int              `json:"count"`
}

// ToBudgetResponse converts a budget entity to its response form.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:           budget.ID.String(),
		Category:     budget.Category,
		BudgetAmount: FormatAmount(budget.BudgetAmount),
		SpentAmount:  FormatAmount(budget.SpentAmount),
		Remaining:    FormatAmount(budget.Remaining()),
		Year:         budget.Year,
		Month:        budget.Month,
		Note:         budget.Note,
		IsTotal:      budget.IsTotal(),
		CreatedAt:    budget.CreatedAt,
		UpdatedAt:    budget.UpdatedAt,
	}
}

// ToBudgetListResponse converts budgets plus the optional sentinel row to
// the list response form.
func ToBudgetListResponse(budgets []*entity.Budget, total *entity.Budget) BudgetListResponse {
	responses := make([]BudgetResponse, 0, len(budgets))
	for _, budget := range budgets {
		responses = append(responses, ToBudgetResponse(budget))
	}
	response := BudgetListResponse{
		Budgets: responses,
		Count:   len(responses),
	}
	if total != nil {
		totalResponse := ToBudgetResponse(total)
		response.Total = &totalResponse
	}
	return response
}
