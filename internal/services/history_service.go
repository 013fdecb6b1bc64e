package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"finpulse/internal/models"
	"finpulse/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Window bounds are package vars so main can override them from configuration
var (
	DefaultHistoryWindow = 12
	MaxHistoryWindow     = 60
)

// Upper bound on concurrent per-month aggregations within one series build
const monthFetchConcurrency = 4

type historyService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	analytics       AnalyticsServiceInterface
	recorder        MetricsRecorderInterface
}

// NewHistoryService creates a new historical series builder
func NewHistoryService(
	transactionRepo repositories.TransactionRepositoryInterface,
	analytics AnalyticsServiceInterface,
	recorder MetricsRecorderInterface,
) HistoryServiceInterface {
	return &historyService{
		transactionRepo: transactionRepo,
		analytics:       analytics,
		recorder:        recorder,
	}
}

// GetMonthlySeries fetches the user's ledger once and aggregates the window's
// months concurrently over that single snapshot, so every point in one series
// reflects the same read. A month that is cancelled mid-build is logged and
// dropped; the series is best-effort partial, never retried.
func (s *historyService) GetMonthlySeries(ctx context.Context, userID uuid.UUID, anchor models.MonthRef, window int) (models.ComparisonSeries, error) {
	if !anchor.IsValid() {
		return nil, ErrInvalidMonth
	}

	if window <= 0 {
		window = DefaultHistoryWindow
	}
	if window > MaxHistoryWindow {
		window = MaxHistoryWindow
	}

	started := time.Now()

	snapshot, err := s.transactionRepo.GetByUserID(userID)
	if err != nil {
		slog.Error("failed to fetch ledger snapshot for series",
			"user_id", userID,
			"anchor", anchor.String(),
			"error", err)
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	var (
		mu      sync.Mutex
		metrics []*models.MonthlyMetrics
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(monthFetchConcurrency)

	for i := 0; i < window; i++ {
		month := anchor.AddMonths(-i)

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				// Dropped point, not a failed series.
				slog.Warn("skipping month in series build",
					"user_id", userID,
					"month", month.String(),
					"reason", err)
				s.recorder.IncrementCounter("series.month.omitted", map[string]string{"reason": "cancelled"})
				return nil
			}

			m := s.analytics.MetricsForSnapshot(userID, snapshot, month)

			mu.Lock()
			metrics = append(metrics, m)
			mu.Unlock()
			return nil
		})
	}

	// Per-month goroutines never return an error; Wait only propagates a
	// future change to that contract.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	series := buildComparisonSeries(metrics)

	s.recorder.RecordProcessingTime("series.build", time.Since(started))
	s.recorder.RecordGauge("series.points", float64(len(series)), nil)
	slog.Info("monthly series generated",
		"user_id", userID,
		"anchor", anchor.String(),
		"requested_window", window,
		"point_count", len(series))

	return series, nil
}

// ComparisonWindow returns the suffix of the n most recent points. Out of
// range requests are clamped, never rejected.
func (s *historyService) ComparisonWindow(series models.ComparisonSeries, n int) models.ComparisonSeries {
	if len(series) == 0 {
		return models.ComparisonSeries{}
	}

	if n < 1 {
		n = 1
	}
	if n > len(series) {
		n = len(series)
	}

	window := make(models.ComparisonSeries, n)
	copy(window, series[len(series)-n:])
	return window
}

// buildComparisonSeries sorts collected month metrics ascending and attaches
// per-point deltas against the preceding point in the sorted sequence. The
// first point always carries zero deltas.
func buildComparisonSeries(metrics []*models.MonthlyMetrics) models.ComparisonSeries {
	sort.Slice(metrics, func(i, j int) bool {
		return metrics[i].Month.Before(metrics[j].Month)
	})

	series := make(models.ComparisonSeries, 0, len(metrics))
	for i, m := range metrics {
		point := models.ComparisonPoint{
			Month:    m.Month,
			Income:   m.MonthlyIncome,
			Expenses: m.MonthlyExpenses,
			Balance:  m.MonthlyBalance,
		}

		if i > 0 {
			prev := series[i-1]
			point.IncomeDelta = point.Income.Sub(prev.Income)
			point.ExpenseDelta = point.Expenses.Sub(prev.Expenses)
			point.BalanceDelta = point.Balance.Sub(prev.Balance)
		}

		series = append(series, point)
	}

	return series
}
