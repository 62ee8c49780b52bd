package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/usecase/statistics"
	domainerror "github.com/Avaria395/SmartExpenseTracker/internal/domain/error"
	"github.com/Avaria395/SmartExpenseTracker/internal/integration/entrypoint/dto"
)

// StatisticsController handles statistics and widget endpoints.
type StatisticsController struct {
	todayUseCase     *statistics.GetTodayStatsUseCase
	monthlyUseCase   *statistics.GetMonthlyStatisticsUseCase
	yearlyUseCase    *statistics.GetYearlyStatisticsUseCase
	breakdownUseCase *statistics.GetCategoryBreakdownUseCase
	totalsUseCase    *statistics.GetPeriodTotalsUseCase
	assetsUseCase    *statistics.GetAssetOverviewUseCase
	widgetUseCase    *statistics.GetWidgetSummaryUseCase
}

// NewStatisticsController creates a new statistics controller instance.
func NewStatisticsController(
	todayUseCase *statistics.GetTodayStatsUseCase,
	monthlyUseCase *statistics.GetMonthlyStatisticsUseCase,
	yearlyUseCase *statistics.GetYearlyStatisticsUseCase,
	breakdownUseCase *statistics.GetCategoryBreakdownUseCase,
	totalsUseCase *statistics.GetPeriodTotalsUseCase,
	assetsUseCase *statistics.GetAssetOverviewUseCase,
	widgetUseCase *statistics.GetWidgetSummaryUseCase,
) *StatisticsController {
	return &StatisticsController{
		todayUseCase:     todayUseCase,
		monthlyUseCase:   monthlyUseCase,
		yearlyUseCase:    yearlyUseCase,
		breakdownUseCase: breakdownUseCase,
		totalsUseCase:    totalsUseCase,
		assetsUseCase:    assetsUseCase,
		widgetUseCase:    widgetUseCase,
	}
}

// Today handles GET /statistics/today requests.
func (c *StatisticsController) Today(ctx *gin.Context) {
	output, err := c.todayUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondStatisticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTodayStatsResponse(output.Stats))
}

// Monthly handles GET /statistics/monthly requests. Requires year and
// month query parameters.
func (c *StatisticsController) Monthly(ctx *gin.Context) {
	year, month, ok := parseYearMonth(ctx)
	if !ok {
		return
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), statistics.GetMonthlyStatisticsInput{
		Year:  year,
		Month: month,
	})
	if err != nil {
		respondStatisticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyStatisticsResponse(output.Stats, output.DailyTrend))
}

// Yearly handles GET /statistics/yearly requests. Requires a year query
// parameter.
func (c *StatisticsController) Yearly(ctx *gin.Context) {
	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid year"})
		return
	}

	output, err := c.yearlyUseCase.Execute(ctx.Request.Context(), statistics.GetYearlyStatisticsInput{Year: year})
	if err != nil {
		respondStatisticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToYearlyStatisticsResponse(output))
}

// Categories handles GET /statistics/categories requests. Requires year
// and month; book_id optionally scopes the breakdown.
func (c *StatisticsController) Categories(ctx *gin.Context) {
	year, month, ok := parseYearMonth(ctx)
	if !ok {
		return
	}

	input := statistics.GetCategoryBreakdownInput{Year: year, Month: month}
	if bookIDStr := ctx.Query("book_id"); bookIDStr != "" {
		bookID, err := uuid.Parse(bookIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid book ID"})
			return
		}
		input.BookID = &bookID
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondStatisticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output.Stats))
}

// Totals handles GET /statistics/totals requests. Requires start and end
// query parameters in epoch milliseconds.
func (c *StatisticsController) Totals(ctx *gin.Context) {
	start, err := strconv.ParseInt(ctx.Query("start"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid start timestamp"})
		return
	}
	end, err := strconv.ParseInt(ctx.Query("end"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid end timestamp"})
		return
	}

	output, err := c.totalsUseCase.Execute(ctx.Request.Context(), statistics.GetPeriodTotalsInput{
		Start: start,
		End:   end,
	})
	if err != nil {
		respondStatisticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PeriodTotalsResponse{
		Expense: dto.FormatAmount(output.Expense),
		Income:  dto.FormatAmount(output.Income),
		Balance: dto.FormatAmount(output.Balance),
	})
}

// Assets handles GET /statistics/assets requests.
func (c *StatisticsController) Assets(ctx *gin.Context) {
	output, err := c.assetsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondStatisticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAssetOverviewResponse(output.Overview))
}

// Widget handles GET /widget/summary requests.
func (c *StatisticsController) Widget(ctx *gin.Context) {
	output, err := c.widgetUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondStatisticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWidgetSummaryResponse(output.Summary))
}

func parseYearMonth(ctx *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid year"})
		return 0, 0, false
	}
	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid month"})
		return 0, 0, false
	}
	return year, month, true
}

// respondStatisticsError maps domain errors to HTTP responses.
func respondStatisticsError(ctx *gin.Context, err error) {
	var statisticsErr *domainerror.StatisticsError
	if errors.As(err, &statisticsErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: statisticsErr.Message,
			Code:  string(statisticsErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
}
