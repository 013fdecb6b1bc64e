package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlyMetrics holds income and expense totals for one user and one target
// month. Total* fields sum the entire ledger regardless of date; Monthly*
// fields are restricted to transactions whose effective date falls inside the
// target month. Derived per request, never persisted.
type MonthlyMetrics struct {
	UserID          uuid.UUID       `json:"user_id"`
	Month           MonthRef        `json:"month"`
	TotalIncome     decimal.Decimal `json:"total_income"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
	TotalBalance    decimal.Decimal `json:"total_balance"`
	MonthlyIncome   decimal.Decimal `json:"monthly_income"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`
	MonthlyBalance  decimal.Decimal `json:"monthly_balance"`
	GeneratedAt     time.Time       `json:"generated_at"`
}

// CategoryBucket is one canonical expense category with its share of the
// period total and a display rank.
type CategoryBucket struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
	Rank       int             `json:"rank"`
	Color      string          `json:"color"`
}

// CategoryAnalyticsResult is an ordered expense breakdown for one period
type CategoryAnalyticsResult struct {
	Buckets []CategoryBucket `json:"buckets"`
	Total   decimal.Decimal  `json:"total"`
	Count   int              `json:"count"`
}

// CategoryTrend compares one category's spending across two adjacent periods.
// IsPositive is purely numeric (delta >= 0); callers decide whether a rising
// expense is good or bad.
type CategoryTrend struct {
	Category       string          `json:"category"`
	CurrentAmount  decimal.Decimal `json:"current_amount"`
	PreviousAmount decimal.Decimal `json:"previous_amount"`
	Delta          decimal.Decimal `json:"delta"`
	PercentChange  decimal.Decimal `json:"percent_change"`
	IsPositive     bool            `json:"is_positive"`
}

// CategoryTrendMap keys trends by canonical category name
type CategoryTrendMap map[string]CategoryTrend

// ComparisonPoint is one month in a historical series. Deltas are measured
// against the immediately preceding point in the sorted series, which is not
// necessarily the calendar-adjacent month when data is sparse.
type ComparisonPoint struct {
	Month        MonthRef        `json:"month"`
	Income       decimal.Decimal `json:"income"`
	Expenses     decimal.Decimal `json:"expenses"`
	Balance      decimal.Decimal `json:"balance"`
	IncomeDelta  decimal.Decimal `json:"income_delta"`
	ExpenseDelta decimal.Decimal `json:"expense_delta"`
	BalanceDelta decimal.Decimal `json:"balance_delta"`
}

// ComparisonSeries is a chronological run of comparison points
type ComparisonSeries []ComparisonPoint

// NetWorthPoint overlays the flat current asset snapshot on one month of the
// series. Assets carries the same snapshot value on every point.
type NetWorthPoint struct {
	Month         MonthRef        `json:"month"`
	NetWorth      decimal.Decimal `json:"net_worth"`
	Assets        decimal.Decimal `json:"assets"`
	CashAvailable decimal.Decimal `json:"cash_available"`
}

// NetWorthSeries is a chronological run of net worth points
type NetWorthSeries []NetWorthPoint

// HealthScore is the composite financial health result for one period
type HealthScore struct {
	Score       int    `json:"score"`
	Explanation string `json:"explanation"`
}
