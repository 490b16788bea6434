package handlers

import (
	stderrors "errors"
	"net/http"

	"finpulse/internal/dto"
	"finpulse/internal/errors"
	"finpulse/internal/models"
	"finpulse/internal/services"
	"finpulse/internal/validation"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler exposes spending statistics, anomaly checks, trends and
// confidence intervals.
type AnalyticsHandler struct {
	analytics services.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analytics services.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// GetCategoryStatistics returns trailing-window statistics for one category.
//
// Method: GET /api/v1/analytics/statistics/:category
//
// Query parameters:
//   - window_months: Trailing window in 30-day months (default: 6, max: 24)
//
// Error Responses:
//   - 400: Unknown category or window out of range
//   - 404: No spending history in the window
func (h *AnalyticsHandler) GetCategoryStatistics(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidUserID)
	}

	category := c.Param("category")
	if !models.IsValidCategory(category) {
		return SendError(c, errors.ValidationInvalidCategory)
	}

	windowMonths := getIntQueryParam(c, "window_months", 0)
	if windowMonths != 0 && (windowMonths < validation.MinWindowMonths || windowMonths > validation.MaxWindowMonths) {
		return SendError(c, errors.AnalyticsInvalidWindow)
	}

	result, err := h.analytics.CategoryStatistics(userID, category, windowMonths)
	if err != nil {
		if stderrors.Is(err, services.ErrNoSpendingHistory) {
			return SendError(c, errors.AnalyticsNoHistory)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// CheckAnomaly scores a hypothetical amount against category history without
// recording it.
//
// Method: POST /api/v1/analytics/anomaly-check
func (h *AnalyticsHandler) CheckAnomaly(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidUserID)
	}

	var req dto.AnomalyCheckRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(formatValidationErrors(err)...))
	}

	check, err := h.analytics.DetectAnomaly(userID, req.Category, req.Amount, req.Threshold)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, check)
}

// GetTrends returns month-by-category spending series for charting.
//
// Method: GET /api/v1/analytics/trends
func (h *AnalyticsHandler) GetTrends(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidUserID)
	}

	windowMonths := getIntQueryParam(c, "window_months", 0)
	if windowMonths != 0 && (windowMonths < validation.MinWindowMonths || windowMonths > validation.MaxWindowMonths) {
		return SendError(c, errors.AnalyticsInvalidWindow)
	}

	report, err := h.analytics.SpendingTrends(userID, windowMonths)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, report)
}

// GetConfidenceInterval estimates a Student-t interval for a submitted sample.
//
// Method: POST /api/v1/analytics/confidence-interval
func (h *AnalyticsHandler) GetConfidenceInterval(c echo.Context) error {
	var req dto.ConfidenceIntervalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(formatValidationErrors(err)...))
	}

	interval := h.analytics.ConfidenceInterval(req.Data, req.Confidence)
	return c.JSON(http.StatusOK, interval)
}
