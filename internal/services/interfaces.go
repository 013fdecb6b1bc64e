package services

import (
	"context"
	"time"

	"finpulse/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AnalyticsServiceInterface computes per-month income and expense metrics
type AnalyticsServiceInterface interface {
	// GetMonthlyMetrics computes metrics for one user and one target month
	// from a fresh ledger snapshot
	GetMonthlyMetrics(userID uuid.UUID, month models.MonthRef) (*models.MonthlyMetrics, error)

	// MetricsForSnapshot computes metrics for one month over an already
	// fetched ledger snapshot. Pure; never touches the repository.
	MetricsForSnapshot(userID uuid.UUID, snapshot []models.Transaction, month models.MonthRef) *models.MonthlyMetrics
}

// CategoryAnalyticsServiceInterface groups expenses into canonical category
// buckets and compares adjacent periods
type CategoryAnalyticsServiceInterface interface {
	// CanonicalCategory normalizes a raw category label to its canonical
	// display form
	CanonicalCategory(raw string) string

	// BuildBreakdown groups an expense-only transaction list into ranked
	// category buckets with percentages. Pure.
	BuildBreakdown(expenses []models.Transaction) *models.CategoryAnalyticsResult

	// BreakdownForMonth fetches one month of expenses and builds the breakdown
	BreakdownForMonth(userID uuid.UUID, month models.MonthRef) (*models.CategoryAnalyticsResult, error)

	// CompareBreakdowns computes per-category deltas between two periods. Pure.
	CompareBreakdowns(current, previous *models.CategoryAnalyticsResult) models.CategoryTrendMap

	// TrendsForMonth compares a month's breakdown against the immediately
	// preceding calendar month
	TrendsForMonth(userID uuid.UUID, month models.MonthRef) (models.CategoryTrendMap, error)
}

// HistoryServiceInterface assembles multi-month chronological series
type HistoryServiceInterface interface {
	// GetMonthlySeries builds a chronological series of up to window months
	// ending at anchor. Months that fail or are cancelled mid-build are
	// omitted, never retried.
	GetMonthlySeries(ctx context.Context, userID uuid.UUID, anchor models.MonthRef, window int) (models.ComparisonSeries, error)

	// ComparisonWindow returns the n most recent points of a series, with n
	// clamped to [1, len(series)]. Pure.
	ComparisonWindow(series models.ComparisonSeries, n int) models.ComparisonSeries
}

// NetWorthServiceInterface overlays the current asset snapshot on a
// historical series
type NetWorthServiceInterface interface {
	GetNetWorthSeries(ctx context.Context, userID uuid.UUID, anchor models.MonthRef, window int) (models.NetWorthSeries, error)
}

// HealthServiceInterface scores a period's income/expense balance
type HealthServiceInterface interface {
	// GetHealthScore evaluates the health score for one user and month
	GetHealthScore(userID uuid.UUID, month models.MonthRef) (*models.HealthScore, error)

	// EvaluateHealthScore applies the scoring formula to a period's income
	// and expenses. Pure.
	EvaluateHealthScore(income, expenses decimal.Decimal) *models.HealthScore
}

// LedgerGeneratorInterface generates realistic demo ledger data
type LedgerGeneratorInterface interface {
	GenerateLedger(userID uuid.UUID, anchor models.MonthRef, months int) []models.Transaction
	GenerateAssets(userID uuid.UUID, count int) []models.Asset
	GenerateTargets(userID uuid.UUID, count int) []models.Target
}

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
