// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/google/uuid"

// TodayStats summarizes the current day's activity.
type TodayStats struct {
	Date    string
	Expense int64
	Income  int64
	Balance int64
}

// CategoryStat is one category's expense total within a period. A nil
// CategoryID groups uncategorized transactions.
type CategoryStat struct {
	CategoryID *uuid.UUID
	Total      int64
}

// MonthlyStats summarizes one calendar month: totals plus the per-category
// expense breakdown for the same window. Categories without matching
// transactions are absent, never zero-filled.
type MonthlyStats struct {
	Year          int
	Month         int
	Expense       int64
	Income        int64
	Balance       int64
	CategoryStats []CategoryStat
}

// AccountItem is the asset-overview projection of an account.
type AccountItem struct {
	ID       uuid.UUID
	Name     string
	Balance  int64
	Category string
	Color    string
}

// AssetOverview partitions all accounts by balance sign.
// TotalLiabilities is the absolute value of the summed negative balances,
// so NetAssets = TotalAssets - TotalLiabilities.
type AssetOverview struct {
	TotalAssets      int64
	TotalLiabilities int64
	NetAssets        int64
	Accounts         []AccountItem
}

// WidgetSummary is the home-screen widget payload: the current month's
// budget position plus today's totals.
type WidgetSummary struct {
	Year            int   `json:"year"`
	Month           int   `json:"month"`
	TotalBudget     int64 `json:"total_budget"`
	MonthExpense    int64 `json:"month_expense"`
	RemainingBudget int64 `json:"remaining_budget"`
	ProgressPercent int   `json:"progress_percent"`
	TodayExpense    int64 `json:"today_expense"`
	TodayIncome     int64 `json:"today_income"`
}
