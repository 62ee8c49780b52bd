package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/usecase/book"
	domainerror "github.com/Avaria395/SmartExpenseTracker/internal/domain/error"
	"github.com/Avaria395/SmartExpenseTracker/internal/integration/entrypoint/dto"
)

// BookController handles book endpoints.
type BookController struct {
	listUseCase       *book.ListBooksUseCase
	getDefaultUseCase *book.GetDefaultBookUseCase
	createUseCase     *book.CreateBookUseCase
	updateUseCase     *book.UpdateBookUseCase
}

// NewBookController creates a new book controller instance.
func NewBookController(
	listUseCase *book.ListBooksUseCase,
	getDefaultUseCase *book.GetDefaultBookUseCase,
	createUseCase *book.CreateBookUseCase,
	updateUseCase *book.UpdateBookUseCase,
) *BookController {
	return &BookController{
		listUseCase:       listUseCase,
		getDefaultUseCase: getDefaultUseCase,
		createUseCase:     createUseCase,
		updateUseCase:     updateUseCase,
	}
}

// List handles GET /books requests.
func (c *BookController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve books"})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBookListResponse(output.Books))
}

// GetDefault handles GET /books/default requests.
func (c *BookController) GetDefault(ctx *gin.Context) {
	output, err := c.getDefaultUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondBookError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBookResponse(output.Book))
}

// Create handles POST /books requests.
func (c *BookController) Create(ctx *gin.Context) {
	var req dto.CreateBookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), book.CreateBookInput{Name: req.Name})
	if err != nil {
		respondBookError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBookResponse(output.Book))
}

// Update handles PUT /books/:id requests.
func (c *BookController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid book ID"})
		return
	}

	var req dto.UpdateBookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), book.UpdateBookInput{
		ID:        id,
		Name:      req.Name,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		respondBookError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBookResponse(output.Book))
}

// respondBookError maps domain errors to HTTP responses.
func respondBookError(ctx *gin.Context, err error) {
	var categoryErr *domainerror.CategoryError
	if errors.As(err, &categoryErr) {
		status := http.StatusBadRequest
		if errors.Is(err, domainerror.ErrBookNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: categoryErr.Message,
			Code:  string(categoryErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrBookNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Book not found",
			Code:  string(domainerror.ErrCodeBookNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
}
