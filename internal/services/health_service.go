package services

import (
	"log/slog"

	"finpulse/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// The evaluator implements the single-factor formula only: the score is a
// piecewise function of the period's income/expense ratio. A two-factor
// variant weighting in month-over-month balance change was considered and
// rejected; one canonical formula keeps the score reproducible from a single
// month's metrics. See DESIGN.md.

const (
	healthScoreMax       = 100
	healthScoreBreakeven = 50

	explanationNoIncome     = "no income recorded"
	explanationSevereDef    = "spending exceeds income by half or more"
	explanationHighDeficit  = "spending exceeds income by a quarter or more"
	explanationMildDeficit  = "spending exceeds income"
	explanationBreakeven    = "income fully consumed by spending"
	explanationStrongSaving = "saving at least a fifth of income"
	explanationPartSaving   = "saving part of income"
)

var (
	pointTwo     = decimal.NewFromFloat(0.20)
	pointTwoFive = decimal.NewFromFloat(0.25)
	pointFive    = decimal.NewFromFloat(0.50)
	fifty        = decimal.NewFromInt(50)
)

type healthService struct {
	analytics AnalyticsServiceInterface
}

// NewHealthService creates a new health score evaluator
func NewHealthService(analytics AnalyticsServiceInterface) HealthServiceInterface {
	return &healthService{
		analytics: analytics,
	}
}

func (s *healthService) GetHealthScore(userID uuid.UUID, month models.MonthRef) (*models.HealthScore, error) {
	metrics, err := s.analytics.GetMonthlyMetrics(userID, month)
	if err != nil {
		return nil, err
	}

	score := s.EvaluateHealthScore(metrics.MonthlyIncome, metrics.MonthlyExpenses)

	slog.Info("health score evaluated",
		"user_id", userID,
		"month", month.String(),
		"score", score.Score)

	return score, nil
}

func (s *healthService) EvaluateHealthScore(income, expenses decimal.Decimal) *models.HealthScore {
	if income.LessThanOrEqual(decimal.Zero) {
		return &models.HealthScore{Score: 0, Explanation: explanationNoIncome}
	}

	if expenses.GreaterThan(income) {
		overspendRate := expenses.Sub(income).Div(income)
		switch {
		case overspendRate.GreaterThanOrEqual(pointFive):
			return &models.HealthScore{Score: 0, Explanation: explanationSevereDef}
		case overspendRate.GreaterThanOrEqual(pointTwoFive):
			return &models.HealthScore{Score: 15, Explanation: explanationHighDeficit}
		default:
			return &models.HealthScore{Score: 30, Explanation: explanationMildDeficit}
		}
	}

	if expenses.Equal(income) {
		return &models.HealthScore{Score: healthScoreBreakeven, Explanation: explanationBreakeven}
	}

	savingsRate := income.Sub(expenses).Div(income)
	if savingsRate.GreaterThanOrEqual(pointTwo) {
		return &models.HealthScore{Score: healthScoreMax, Explanation: explanationStrongSaving}
	}

	// 50..100 scaled linearly with the savings rate up to the 20% cap
	raw := fifty.Add(savingsRate.Div(pointTwo).Mul(fifty))
	return &models.HealthScore{
		Score:       clampScore(int(raw.Round(0).IntPart())),
		Explanation: explanationPartSaving,
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > healthScoreMax {
		return healthScoreMax
	}
	return score
}
