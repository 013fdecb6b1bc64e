package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finpulse/internal/models"
	"finpulse/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// The monthly metrics calculation fetches the user's full ledger once and
// aggregates in memory. Total* fields need the whole ledger anyway, and the
// single fetch keeps every figure in one result consistent with one snapshot.

var (
	ErrInvalidMonth = errors.New("month must be a valid calendar month")
)

var oneHundred = decimal.NewFromInt(100)

type analyticsService struct {
	transactionRepo repositories.TransactionRepositoryInterface
}

// NewAnalyticsService creates a new monthly metrics calculator
func NewAnalyticsService(transactionRepo repositories.TransactionRepositoryInterface) AnalyticsServiceInterface {
	return &analyticsService{
		transactionRepo: transactionRepo,
	}
}

func (s *analyticsService) GetMonthlyMetrics(userID uuid.UUID, month models.MonthRef) (*models.MonthlyMetrics, error) {
	if !month.IsValid() {
		return nil, ErrInvalidMonth
	}

	snapshot, err := s.transactionRepo.GetByUserID(userID)
	if err != nil {
		slog.Error("failed to fetch ledger for monthly metrics",
			"user_id", userID,
			"month", month.String(),
			"error", err)
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	metrics := s.MetricsForSnapshot(userID, snapshot, month)

	slog.Info("monthly metrics generated",
		"user_id", userID,
		"month", month.String(),
		"transaction_count", len(snapshot))

	return metrics, nil
}

func (s *analyticsService) MetricsForSnapshot(userID uuid.UUID, snapshot []models.Transaction, month models.MonthRef) *models.MonthlyMetrics {
	metrics := &models.MonthlyMetrics{
		UserID:          userID,
		Month:           month,
		TotalIncome:     decimal.Zero,
		TotalExpenses:   decimal.Zero,
		MonthlyIncome:   decimal.Zero,
		MonthlyExpenses: decimal.Zero,
		GeneratedAt:     time.Now(),
	}

	for i := range snapshot {
		txn := &snapshot[i]
		inMonth := txn.InMonth(month)

		switch txn.TransactionType {
		case models.TransactionTypeIncome:
			metrics.TotalIncome = metrics.TotalIncome.Add(txn.Amount)
			if inMonth {
				metrics.MonthlyIncome = metrics.MonthlyIncome.Add(txn.Amount)
			}
		case models.TransactionTypeExpense:
			metrics.TotalExpenses = metrics.TotalExpenses.Add(txn.Amount)
			if inMonth {
				metrics.MonthlyExpenses = metrics.MonthlyExpenses.Add(txn.Amount)
			}
		}
	}

	metrics.TotalBalance = metrics.TotalIncome.Sub(metrics.TotalExpenses)
	metrics.MonthlyBalance = metrics.MonthlyIncome.Sub(metrics.MonthlyExpenses)

	return metrics
}
