// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/usecase/ledger"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
	domainerror "github.com/Avaria395/SmartExpenseTracker/internal/domain/error"
	"github.com/Avaria395/SmartExpenseTracker/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	recordUseCase      *ledger.RecordTransactionUseCase
	getUseCase         *ledger.GetTransactionUseCase
	listUseCase        *ledger.ListTransactionsUseCase
	updateUseCase      *ledger.UpdateTransactionUseCase
	deleteUseCase      *ledger.DeleteTransactionUseCase
	recalculateUseCase *ledger.RecalculateUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	recordUseCase *ledger.RecordTransactionUseCase,
	getUseCase *ledger.GetTransactionUseCase,
	listUseCase *ledger.ListTransactionsUseCase,
	updateUseCase *ledger.UpdateTransactionUseCase,
	deleteUseCase *ledger.DeleteTransactionUseCase,
	recalculateUseCase *ledger.RecalculateUseCase,
) *TransactionController {
	return &TransactionController{
		recordUseCase:      recordUseCase,
		getUseCase:         getUseCase,
		listUseCase:        listUseCase,
		updateUseCase:      updateUseCase,
		deleteUseCase:      deleteUseCase,
		recalculateUseCase: recalculateUseCase,
	}
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeNegativeAmount),
		})
		return
	}

	bookID, err := uuid.Parse(req.BookID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid book ID"})
		return
	}

	categoryID, ok := parseOptionalUUID(ctx, req.CategoryID, "Invalid category ID")
	if !ok {
		return
	}
	accountID, ok := parseOptionalUUID(ctx, req.AccountID, "Invalid account ID")
	if !ok {
		return
	}

	recordTime := time.Now().UnixMilli()
	if req.RecordTime != nil {
		recordTime = *req.RecordTime
	}

	output, err := c.recordUseCase.Execute(ctx.Request.Context(), ledger.RecordTransactionInput{
		BookID:     bookID,
		CategoryID: categoryID,
		AccountID:  accountID,
		Amount:     amount,
		Type:       entity.TransactionType(req.Type),
		RecordTime: recordTime,
		Remark:     req.Remark,
	})
	if err != nil {
		respondTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Get handles GET /transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid transaction ID"})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), ledger.GetTransactionInput{ID: id})
	if err != nil {
		respondTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// List handles GET /transactions requests. Supported query parameters:
// book_id, start_date and end_date (YYYY-MM-DD).
func (c *TransactionController) List(ctx *gin.Context) {
	input := ledger.ListTransactionsInput{
		StartDate: ctx.Query("start_date"),
		EndDate:   ctx.Query("end_date"),
	}

	if bookIDStr := ctx.Query("book_id"); bookIDStr != "" {
		bookID, err := uuid.Parse(bookIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid book ID"})
			return
		}
		input.BookID = &bookID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid transaction ID"})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	amount, err := dto.ParseAmount(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeNegativeAmount),
		})
		return
	}

	bookID, err := uuid.Parse(req.BookID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid book ID"})
		return
	}

	categoryID, ok := parseOptionalUUID(ctx, req.CategoryID, "Invalid category ID")
	if !ok {
		return
	}
	accountID, ok := parseOptionalUUID(ctx, req.AccountID, "Invalid account ID")
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), ledger.UpdateTransactionInput{
		ID:         id,
		BookID:     bookID,
		CategoryID: categoryID,
		AccountID:  accountID,
		Amount:     amount,
		Type:       entity.TransactionType(req.Type),
		RecordTime: req.RecordTime,
		Remark:     req.Remark,
	})
	if err != nil {
		respondTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid transaction ID"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), ledger.DeleteTransactionInput{ID: id}); err != nil {
		respondTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Recalculate handles POST /transactions/recalculate requests.
func (c *TransactionController) Recalculate(ctx *gin.Context) {
	output, err := c.recalculateUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to recalculate"})
		return
	}

	ctx.JSON(http.StatusOK, dto.RecalculateResponse{
		AccountsUpdated: output.AccountsUpdated,
		BudgetsUpdated:  output.BudgetsUpdated,
	})
}

// parseOptionalUUID parses a nullable UUID reference, writing the error
// response itself when the value is malformed.
func parseOptionalUUID(ctx *gin.Context, value *string, message string) (*uuid.UUID, bool) {
	if value == nil || *value == "" {
		return nil, true
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: message})
		return nil, false
	}
	return &id, true
}

// respondTransactionError maps domain errors to HTTP responses.
func respondTransactionError(ctx *gin.Context, err error) {
	var transactionErr *domainerror.TransactionError
	if errors.As(err, &transactionErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: transactionErr.Message,
			Code:  string(transactionErr.Code),
		})
		return
	}

	var statisticsErr *domainerror.StatisticsError
	if errors.As(err, &statisticsErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: statisticsErr.Message,
			Code:  string(statisticsErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrTransactionNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Transaction not found",
			Code:  string(domainerror.ErrCodeTransactionNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
}
