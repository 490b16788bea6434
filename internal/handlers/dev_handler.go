package handlers

import (
	"net/http"

	"finpulse/internal/errors"
	"finpulse/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	demoData    services.DemoDataServiceInterface
	environment string
}

// NewDevHandler creates a new development handler
func NewDevHandler(demoData services.DemoDataServiceInterface, environment string) *DevHandler {
	return &DevHandler{
		demoData:    demoData,
		environment: environment,
	}
}

// SeedDemoData wipes the caller's data and seeds six months of synthetic
// spending history, a demo budget profile, and fixed expenses.
//
// Method: POST /api/v1/dev/demo-data
// Environment: Development only
//
// Success Response: 200 OK
//   - transaction_count: Number of transactions created
//   - fixed_expense_count: Number of fixed expenses created
//   - months: Months of history seeded
//
// Error Responses:
//   - 403: Forbidden (production environment)
//   - 500: Internal server error
func (h *DevHandler) SeedDemoData(c echo.Context) error {
	if h.environment == "production" {
		return SendError(c, errors.SystemForbiddenEnv)
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidUserID)
	}

	summary, err := h.demoData.Generate(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    summary,
		Message: "demo data generated successfully",
	})
}
