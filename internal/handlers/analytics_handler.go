package handlers

import (
	"net/http"
	"time"

	"finpulse/internal/errors"
	"finpulse/internal/models"
	"finpulse/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AnalyticsHandler handles the aggregation endpoints
type AnalyticsHandler struct {
	analytics  services.AnalyticsServiceInterface
	categories services.CategoryAnalyticsServiceInterface
	history    services.HistoryServiceInterface
	netWorth   services.NetWorthServiceInterface
	health     services.HealthServiceInterface
	recorder   services.MetricsRecorderInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(
	analytics services.AnalyticsServiceInterface,
	categories services.CategoryAnalyticsServiceInterface,
	history services.HistoryServiceInterface,
	netWorth services.NetWorthServiceInterface,
	health services.HealthServiceInterface,
	recorder services.MetricsRecorderInterface,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics:  analytics,
		categories: categories,
		history:    history,
		netWorth:   netWorth,
		health:     health,
		recorder:   recorder,
	}
}

// GetMonthlyMetrics returns income/expense totals for one month
// @Summary Monthly metrics
// @Description All-time and single-month income, expense, and balance totals for a user
// @Tags Analytics
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Param year query int false "Target year (defaults to current)"
// @Param month query int false "Target month 1-12 (defaults to current)"
// @Success 200 {object} SuccessResponse{data=models.MonthlyMetrics} "Monthly metrics"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid user ID or ANALYTICS_001 - Invalid month"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /users/{userId}/analytics/monthly [get]
func (h *AnalyticsHandler) GetMonthlyMetrics(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid user ID"))
	}

	month, ok := parseMonth(c)
	if !ok {
		return SendError(c, errors.AnalyticsInvalidMonth)
	}

	metrics, err := h.analytics.GetMonthlyMetrics(userID, month)
	if err != nil {
		if err == services.ErrInvalidMonth {
			h.recordRequest("monthly_metrics", "invalid")
			return SendError(c, errors.AnalyticsInvalidMonth)
		}
		h.recordRequest("monthly_metrics", "error")
		return SendSystemError(c, err)
	}

	h.recordRequest("monthly_metrics", "ok")
	return c.JSON(http.StatusOK, SuccessResponse{Data: metrics})
}

// GetCategoryBreakdown returns the ranked expense category breakdown for one month
// @Summary Category breakdown
// @Description Expenses of one month grouped into canonical categories with percentages, ranks, and colors
// @Tags Analytics
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Param year query int false "Target year (defaults to current)"
// @Param month query int false "Target month 1-12 (defaults to current)"
// @Success 200 {object} SuccessResponse{data=models.CategoryAnalyticsResult} "Category breakdown"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid user ID or ANALYTICS_001 - Invalid month"
// @Failure 500 {object} errors.ErrorResponse "ANALYTICS_005 - Breakdown failed"
// @Router /users/{userId}/analytics/categories [get]
func (h *AnalyticsHandler) GetCategoryBreakdown(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid user ID"))
	}

	month, ok := parseMonth(c)
	if !ok {
		return SendError(c, errors.AnalyticsInvalidMonth)
	}

	breakdown, err := h.categories.BreakdownForMonth(userID, month)
	if err != nil {
		if err == services.ErrInvalidMonth {
			h.recordRequest("category_breakdown", "invalid")
			return SendError(c, errors.AnalyticsInvalidMonth)
		}
		h.recordRequest("category_breakdown", "error")
		return SendError(c, errors.AnalyticsBreakdownFailed)
	}

	h.recordRequest("category_breakdown", "ok")
	return c.JSON(http.StatusOK, SuccessResponse{Data: breakdown})
}

// GetCategoryTrends returns month-over-month category deltas
// @Summary Category trends
// @Description Per-category spending change between the requested month and the month before it
// @Tags Analytics
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Param year query int false "Target year (defaults to current)"
// @Param month query int false "Target month 1-12 (defaults to current)"
// @Success 200 {object} SuccessResponse{data=models.CategoryTrendMap} "Category trends"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid user ID or ANALYTICS_001 - Invalid month"
// @Failure 500 {object} errors.ErrorResponse "ANALYTICS_005 - Breakdown failed"
// @Router /users/{userId}/analytics/trends [get]
func (h *AnalyticsHandler) GetCategoryTrends(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid user ID"))
	}

	month, ok := parseMonth(c)
	if !ok {
		return SendError(c, errors.AnalyticsInvalidMonth)
	}

	trends, err := h.categories.TrendsForMonth(userID, month)
	if err != nil {
		if err == services.ErrInvalidMonth {
			h.recordRequest("category_trends", "invalid")
			return SendError(c, errors.AnalyticsInvalidMonth)
		}
		h.recordRequest("category_trends", "error")
		return SendError(c, errors.AnalyticsBreakdownFailed)
	}

	h.recordRequest("category_trends", "ok")
	return c.JSON(http.StatusOK, SuccessResponse{Data: trends})
}

// GetMonthlySeries returns the chronological per-month series
// @Summary Monthly series
// @Description Chronological income/expense/balance points with month-over-month deltas, ending at the anchor month
// @Tags Analytics
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Param year query int false "Anchor year (defaults to current)"
// @Param month query int false "Anchor month 1-12 (defaults to current)"
// @Param window query int false "Number of months to include" default(12)
// @Success 200 {object} SuccessResponse{data=models.ComparisonSeries} "Monthly series"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid user ID or ANALYTICS_001 - Invalid month"
// @Failure 500 {object} errors.ErrorResponse "ANALYTICS_003 - Series generation failed"
// @Router /users/{userId}/analytics/series [get]
func (h *AnalyticsHandler) GetMonthlySeries(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid user ID"))
	}

	month, ok := parseMonth(c)
	if !ok {
		return SendError(c, errors.AnalyticsInvalidMonth)
	}

	window := getIntParam(c, "window", 0)

	series, err := h.history.GetMonthlySeries(c.Request().Context(), userID, month, window)
	if err != nil {
		if err == services.ErrInvalidMonth {
			h.recordRequest("monthly_series", "invalid")
			return SendError(c, errors.AnalyticsInvalidMonth)
		}
		h.recordRequest("monthly_series", "error")
		return SendError(c, errors.AnalyticsSeriesFailed)
	}

	h.recordRequest("monthly_series", "ok")
	return c.JSON(http.StatusOK, SuccessResponse{Data: series})
}

// GetComparison returns the n most recent points of the monthly series
// @Summary Comparison window
// @Description The most recent points of the monthly series, for side-by-side month comparison
// @Tags Analytics
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Param year query int false "Anchor year (defaults to current)"
// @Param month query int false "Anchor month 1-12 (defaults to current)"
// @Param window query int false "Number of months to aggregate" default(12)
// @Param last query int false "Number of most recent points to return" default(3)
// @Success 200 {object} SuccessResponse{data=models.ComparisonSeries} "Comparison window"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid user ID or ANALYTICS_001 - Invalid month"
// @Failure 500 {object} errors.ErrorResponse "ANALYTICS_003 - Series generation failed"
// @Router /users/{userId}/analytics/comparison [get]
func (h *AnalyticsHandler) GetComparison(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid user ID"))
	}

	month, ok := parseMonth(c)
	if !ok {
		return SendError(c, errors.AnalyticsInvalidMonth)
	}

	window := getIntParam(c, "window", 0)
	last := getIntParam(c, "last", 3)

	series, err := h.history.GetMonthlySeries(c.Request().Context(), userID, month, window)
	if err != nil {
		if err == services.ErrInvalidMonth {
			h.recordRequest("comparison", "invalid")
			return SendError(c, errors.AnalyticsInvalidMonth)
		}
		h.recordRequest("comparison", "error")
		return SendError(c, errors.AnalyticsSeriesFailed)
	}

	h.recordRequest("comparison", "ok")
	return c.JSON(http.StatusOK, SuccessResponse{Data: h.history.ComparisonWindow(series, last)})
}

// GetNetWorthSeries returns the projected net worth series
// @Summary Net worth series
// @Description Net worth projection per month: current asset snapshot plus accumulated cash balance
// @Tags Analytics
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Param year query int false "Anchor year (defaults to current)"
// @Param month query int false "Anchor month 1-12 (defaults to current)"
// @Param window query int false "Number of months to include" default(12)
// @Success 200 {object} SuccessResponse{data=models.NetWorthSeries} "Net worth series"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid user ID or ANALYTICS_001 - Invalid month"
// @Failure 500 {object} errors.ErrorResponse "ANALYTICS_003 - Series generation failed"
// @Router /users/{userId}/analytics/net-worth [get]
func (h *AnalyticsHandler) GetNetWorthSeries(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid user ID"))
	}

	month, ok := parseMonth(c)
	if !ok {
		return SendError(c, errors.AnalyticsInvalidMonth)
	}

	window := getIntParam(c, "window", 0)

	series, err := h.netWorth.GetNetWorthSeries(c.Request().Context(), userID, month, window)
	if err != nil {
		if err == services.ErrInvalidMonth {
			h.recordRequest("net_worth", "invalid")
			return SendError(c, errors.AnalyticsInvalidMonth)
		}
		h.recordRequest("net_worth", "error")
		return SendError(c, errors.AnalyticsSeriesFailed)
	}

	h.recordRequest("net_worth", "ok")
	return c.JSON(http.StatusOK, SuccessResponse{Data: series})
}

// GetHealthScore returns the financial health score for one month
// @Summary Health score
// @Description Composite 0-100 score of the month's income/expense balance with an explanation
// @Tags Analytics
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Param year query int false "Target year (defaults to current)"
// @Param month query int false "Target month 1-12 (defaults to current)"
// @Success 200 {object} SuccessResponse{data=models.HealthScore} "Health score"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid user ID or ANALYTICS_001 - Invalid month"
// @Failure 500 {object} errors.ErrorResponse "ANALYTICS_004 - Score evaluation failed"
// @Router /users/{userId}/analytics/health-score [get]
func (h *AnalyticsHandler) GetHealthScore(c echo.Context) error {
	userID, err := parseUserID(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid user ID"))
	}

	month, ok := parseMonth(c)
	if !ok {
		return SendError(c, errors.AnalyticsInvalidMonth)
	}

	score, err := h.health.GetHealthScore(userID, month)
	if err != nil {
		if err == services.ErrInvalidMonth {
			h.recordRequest("health_score", "invalid")
			return SendError(c, errors.AnalyticsInvalidMonth)
		}
		h.recordRequest("health_score", "error")
		return SendError(c, errors.AnalyticsScoreFailed)
	}

	h.recordRequest("health_score", "ok")
	h.recorder.RecordGauge("health.score", float64(score.Score), nil)
	return c.JSON(http.StatusOK, SuccessResponse{Data: score})
}

func (h *AnalyticsHandler) recordRequest(operation, status string) {
	h.recorder.IncrementCounter("analytics.request", map[string]string{
		"operation": operation,
		"status":    status,
	})
}

// parseMonth reads year/month query params, defaulting both to the current
// UTC month. ok is false when the supplied values do not form a calendar
// month.
func parseMonth(c echo.Context) (models.MonthRef, bool) {
	now := time.Now().UTC()
	month := models.MonthRef{
		Year:  getIntParam(c, "year", now.Year()),
		Month: getIntParam(c, "month", int(now.Month())),
	}
	return month, month.IsValid()
}

func parseUserID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("userId"))
}
