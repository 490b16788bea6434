package handlers

import (
	stderrors "errors"
	"net/http"

	"finpulse/internal/dto"
	"finpulse/internal/errors"
	"finpulse/internal/services"

	"github.com/labstack/echo/v4"
)

// ForecastHandler exposes Monte Carlo balance projections.
type ForecastHandler struct {
	forecast services.ForecastServiceInterface
}

// NewForecastHandler creates a new forecast handler
func NewForecastHandler(forecast services.ForecastServiceInterface) *ForecastHandler {
	return &ForecastHandler{forecast: forecast}
}

// RunSimulation projects next month's ending balance distribution.
//
// Method: POST /api/v1/forecast/simulation
//
// Request body:
//   - simulations: Trial count (default: 1000, range: 100-10000)
//   - adjustments: Optional per-category deltas applied to historical means
//
// Error Responses:
//   - 400: Trial count or adjustment categories invalid
//   - 422: Budget profile not configured
func (h *ForecastHandler) RunSimulation(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidUserID)
	}

	var req dto.SimulationRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ForecastInvalidTrialCount, errors.WithDetails(formatValidationErrors(err)...))
	}

	result, err := h.forecast.Simulate(userID, req.Simulations, req.Adjustments)
	if err != nil {
		if stderrors.Is(err, services.ErrBudgetNotConfigured) {
			return SendError(c, errors.ForecastBudgetNotConfigured)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
