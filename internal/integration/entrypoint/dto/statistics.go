package dto

import (
	"github.com/Avaria395/SmartExpenseTracker/internal/application/usecase/statistics"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

// TodayStatsResponse represents the today summary in API responses.
type TodayStatsResponse struct {
	Date    string `json:"date"`
	Expense string `json:"expense"`
	Income  string `json:"income"`
	Balance string `json:"balance"`
}

// CategoryStatResponse is one category's expense total in a breakdown.
// CategoryID is absent for uncategorized transactions.
type CategoryStatResponse struct {
	CategoryID *string `json:"category_id,omitempty"`
	Total      string  `json:"total"`
}

// MonthlyStatisticsResponse represents the monthly view in API responses.
// DailyTrend always has one entry per calendar day of the month.
type MonthlyStatisticsResponse struct {
	Year          int                    `json:"year"`
	Month         int                    `json:"month"`
	Expense       string                 `json:"expense"`
	Income        string                 `json:"income"`
	Balance       string                 `json:"balance"`
	CategoryStats []CategoryStatResponse `json:"category_stats"`
	DailyTrend    []string               `json:"daily_trend"`
}

// YearlyStatisticsResponse represents the yearly view in API responses.
// The trend slices always have twelve entries.
type YearlyStatisticsResponse struct {
	Year          int                    `json:"year"`
	Expense       string                 `json:"expense"`
	Income        string                 `json:"income"`
	Balance       string                 `json:"balance"`
	ExpenseTrend  []string               `json:"expense_trend"`
	IncomeTrend   []string               `json:"income_trend"`
	CategoryStats []CategoryStatResponse `json:"category_stats"`
}

// PeriodTotalsResponse represents arbitrary-period totals in API responses.
type PeriodTotalsResponse struct {
	Expense string `json:"expense"`
	Income  string `json:"income"`
	Balance string `json:"balance"`
}

// AccountItemResponse is the asset-overview projection of one account.
type AccountItemResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Balance  string `json:"balance"`
	Category string `json:"category"`
	Color    string `json:"color"`
}

// AssetOverviewResponse represents the asset overview in API responses.
type AssetOverviewResponse struct {
	TotalAssets      string                `json:"total_assets"`
	TotalLiabilities string                `json:"total_liabilities"`
	NetAssets        string                `json:"net_assets"`
	Accounts         []AccountItemResponse `json:"accounts"`
}

// WidgetSummaryResponse represents the home-screen widget payload.
type WidgetSummaryResponse struct {
	Year            int    `json:"year"`
	Month           int    `json:"month"`
	TotalBudget     string `json:"total_budget"`
	MonthExpense    string `json:"month_expense"`
	RemainingBudget string `json:"remaining_budget"`
	ProgressPercent int    `json:"progress_percent"`
	TodayExpense    string `json:"today_expense"`
	TodayIncome     string `json:"today_income"`
}

// ToTodayStatsResponse converts the today summary to its response form.
func ToTodayStatsResponse(stats *entity.TodayStats) TodayStatsResponse {
	return TodayStatsResponse{
		Date:    stats.Date,
		Expense: FormatAmount(stats.Expense),
		Income:  FormatAmount(stats.Income),
		Balance: FormatAmount(stats.Balance),
	}
}

// ToMonthlyStatisticsResponse converts the monthly view to its response form.
func ToMonthlyStatisticsResponse(stats *entity.MonthlyStats, dailyTrend []int64) MonthlyStatisticsResponse {
	return MonthlyStatisticsResponse{
		Year:          stats.Year,
		Month:         stats.Month,
		Expense:       FormatAmount(stats.Expense),
		Income:        FormatAmount(stats.Income),
		Balance:       FormatAmount(stats.Balance),
		CategoryStats: toCategoryStatResponses(stats.CategoryStats),
		DailyTrend:    formatAmounts(dailyTrend),
	}
}

// ToYearlyStatisticsResponse converts the yearly view to its response form.
func ToYearlyStatisticsResponse(output *statistics.GetYearlyStatisticsOutput) YearlyStatisticsResponse {
	return YearlyStatisticsResponse{
		Year:          output.Year,
		Expense:       FormatAmount(output.Expense),
		Income:        FormatAmount(output.Income),
		Balance:       FormatAmount(output.Balance),
		ExpenseTrend:  formatAmounts(output.ExpenseTrend),
		IncomeTrend:   formatAmounts(output.IncomeTrend),
		CategoryStats: toCategoryStatResponses(output.CategoryStats),
	}
}

// ToCategoryBreakdownResponse converts a breakdown to its response form.
func ToCategoryBreakdownResponse(stats []entity.CategoryStat) []CategoryStatResponse {
	return toCategoryStatResponses(stats)
}

// ToAssetOverviewResponse converts the asset overview to its response form.
func ToAssetOverviewResponse(overview *entity.AssetOverview) AssetOverviewResponse {
	accounts := make([]AccountItemResponse, 0, len(overview.Accounts))
	for _, item := range overview.Accounts {
		accounts = append(accounts, AccountItemResponse{
			ID:       item.ID.String(),
			Name:     item.Name,
			Balance:  FormatAmount(item.Balance),
			Category: item.Category,
			Color:    item.Color,
		})
	}
	return AssetOverviewResponse{
		TotalAssets:      FormatAmount(overview.TotalAssets),
		TotalLiabilities: FormatAmount(overview.TotalLiabilities),
		NetAssets:        FormatAmount(overview.NetAssets),
		Accounts:         accounts,
	}
}

// ToWidgetSummaryResponse converts the widget payload to its response form.
func ToWidgetSummaryResponse(summary *entity.WidgetSummary) WidgetSummaryResponse {
	return WidgetSummaryResponse{
		Year:            summary.Year,
		Month:           summary.Month,
		TotalBudget:     FormatAmount(summary.TotalBudget),
		MonthExpense:    FormatAmount(summary.MonthExpense),
		RemainingBudget: FormatAmount(summary.RemainingBudget),
		ProgressPercent: summary.ProgressPercent,
		TodayExpense:    FormatAmount(summary.TodayExpense),
		TodayIncome:     FormatAmount(summary.TodayIncome),
	}
}

func toCategoryStatResponses(stats []entity.CategoryStat) []CategoryStatResponse {
	responses := make([]CategoryStatResponse, 0, len(stats))
	for _, stat := range stats {
		response := CategoryStatResponse{Total: FormatAmount(stat.Total)}
		if stat.CategoryID != nil {
			id := stat.CategoryID.String()
			response.CategoryID = &id
		}
		responses = append(responses, response)
	}
	return responses
}

func formatAmounts(amounts []int64) []string {
	formatted := make([]string, len(amounts))
	for i, amount := range amounts {
		formatted[i] = FormatAmount(amount)
	}
	return formatted
}
