package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/usecase/budget"
	domainerror "github.com/Avaria395/SmartExpenseTracker/internal/domain/error"
	"github.com/Avaria395/SmartExpenseTracker/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	setTotalUseCase    *budget.SetTotalBudgetUseCase
	createUseCase      *budget.CreateBudgetUseCase
	listUseCase        *budget.ListBudgetsUseCase
	updateUseCase      *budget.UpdateBudgetUseCase
	deleteUseCase      *budget.DeleteBudgetUseCase
	remainingUseCase   *budget.GetRemainingBudgetUseCase
	updateSpentUseCase *budget.UpdateBudgetSpentUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	setTotalUseCase *budget.SetTotalBudgetUseCase,
	createUseCase *budget.CreateBudgetUseCase,
	listUseCase *budget.ListBudgetsUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	remainingUseCase *budget.GetRemainingBudgetUseCase,
	updateSpentUseCase *budget.UpdateBudgetSpentUseCase,
) *BudgetController {
	return &BudgetController{
		setTotalUseCase:    setTotalUseCase,
		createUseCase:      createUseCase,
		listUseCase:        listUseCase,
		updateUseCase:      updateUseCase,
		deleteUseCase:      deleteUseCase,
		remainingUseCase:   remainingUseCase,
		updateSpentUseCase: updateSpentUseCase,
	}
}

// SetTotal handles PUT /budgets/total requests.
func (c *BudgetController) SetTotal(ctx *gin.Context) {
	var req dto.SetTotalBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	output, err := c.setTotalUseCase.Execute(ctx.Request.Context(), budget.SetTotalBudgetInput{
		Year:   req.Year,
		Month:  req.Month,
		Amount: amount,
		Note:   req.Note,
	})
	if err != nil {
		respondBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// GetRemaining handles GET /budgets/remaining requests. Year and month
// arrive as query parameters.
func (c *BudgetController) GetRemaining(ctx *gin.Context) {
	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid year"})
		return
	}
	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid month"})
		return
	}

	output, err := c.remainingUseCase.Execute(ctx.Request.Context(), budget.GetRemainingBudgetInput{
		Year:  year,
		Month: month,
	})
	if err != nil {
		respondBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RemainingBudgetResponse{
		Year:      output.Year,
		Month:     output.Month,
		Remaining: dto.FormatAmount(output.Remaining),
		HasBudget: output.HasBudget,
	})
}

// UpdateSpent handles PUT /budgets/spent requests.
func (c *BudgetController) UpdateSpent(ctx *gin.Context) {
	var req dto.UpdateBudgetSpentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	spent, err := dto.ParseAmount(req.Spent)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	output, err := c.updateSpentUseCase.Execute(ctx.Request.Context(), budget.UpdateBudgetSpentInput{
		Category: req.Category,
		Year:     req.Year,
		Month:    req.Month,
		Spent:    spent,
	})
	if err != nil {
		respondBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), budget.CreateBudgetInput{
		Category: req.Category,
		Year:     req.Year,
		Month:    req.Month,
		Amount:   amount,
		Note:     req.Note,
	})
	if err != nil {
		respondBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget))
}

// List handles GET /budgets requests. With year and month query parameters
// the listing is month-scoped and separates the total-budget row.
func (c *BudgetController) List(ctx *gin.Context) {
	var input budget.ListBudgetsInput

	if yearStr := ctx.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid year"})
			return
		}
		month, err := strconv.Atoi(ctx.Query("month"))
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid month"})
			return
		}
		input.Year = year
		input.Month = month
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Budgets, output.Total))
}

// Update handles PUT /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid budget ID"})
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), budget.UpdateBudgetInput{
		ID:     id,
		Amount: amount,
		Note:   req.Note,
	})
	if err != nil {
		respondBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid budget ID"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{ID: id}); err != nil {
		respondBudgetError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// respondBudgetError maps domain errors to HTTP responses.
func respondBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		status := http.StatusBadRequest
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrBudgetNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Budget not found",
			Code:  string(domainerror.ErrCodeBudgetNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
}
