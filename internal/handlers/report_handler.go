package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"finpulse/internal/errors"
	"finpulse/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler exposes the monthly summary report.
type ReportHandler struct {
	reports services.ReportServiceInterface
	metrics services.MetricsRecorderInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports services.ReportServiceInterface, metrics services.MetricsRecorderInterface) *ReportHandler {
	return &ReportHandler{
		reports: reports,
		metrics: metrics,
	}
}

// GetMonthlySummary builds the report for one calendar month, defaulting to
// the current one.
//
// Method: GET /api/v1/reports/monthly
//
// Query parameters:
//   - year: Report year (default: current year)
//   - month: Report month 1-12 (default: current month)
//
// Error Responses:
//   - 400: Month outside 1-12
//   - 422: Budget profile not configured
func (h *ReportHandler) GetMonthlySummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidUserID)
	}

	now := time.Now()
	year := getIntQueryParam(c, "year", now.Year())
	month := getIntQueryParam(c, "month", int(now.Month()))

	summary, err := h.reports.MonthlySummary(userID, year, month)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrInvalidMonth):
			return SendError(c, errors.ReportInvalidPeriod)
		case stderrors.Is(err, services.ErrBudgetNotConfigured):
			return SendError(c, errors.ForecastBudgetNotConfigured)
		default:
			return SendSystemError(c, err)
		}
	}

	h.metrics.IncrementCounter("reports_generated", nil)
	h.metrics.RecordGauge("health_score", float64(summary.HealthScore), nil)

	return c.JSON(http.StatusOK, summary)
}

// HealthScoreResponse carries the standalone score for the current month.
type HealthScoreResponse struct {
	HealthScore int `json:"health_score"`
	Year        int `json:"year"`
	Month       int `json:"month"`
}

// GetHealthScore returns just the 0-100 budget health score for the current
// calendar month, for dashboards that do not need the full report.
//
// Method: GET /api/v1/reports/health-score
//
// Error Responses:
//   - 422: Budget profile not configured
func (h *ReportHandler) GetHealthScore(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidUserID)
	}

	now := time.Now()
	summary, err := h.reports.MonthlySummary(userID, now.Year(), int(now.Month()))
	if err != nil {
		if stderrors.Is(err, services.ErrBudgetNotConfigured) {
			return SendError(c, errors.ForecastBudgetNotConfigured)
		}
		return SendSystemError(c, err)
	}

	h.metrics.RecordGauge("health_score", float64(summary.HealthScore), nil)

	return c.JSON(http.StatusOK, HealthScoreResponse{
		HealthScore: summary.HealthScore,
		Year:        now.Year(),
		Month:       int(now.Month()),
	})
}
