package handlers

import (
	stderrors "errors"
	"net/http"

	"finpulse/internal/dto"
	"finpulse/internal/errors"
	"finpulse/internal/models"
	"finpulse/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ProfileHandler manages the caller's budget profile and fixed expenses.
type ProfileHandler struct {
	budgetRepo repositories.BudgetProfileRepositoryInterface
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(budgetRepo repositories.BudgetProfileRepositoryInterface) *ProfileHandler {
	return &ProfileHandler{budgetRepo: budgetRepo}
}

// profileResponse bundles the profile with its fixed expenses and the
// normalized monthly total the forecaster will subtract.
type profileResponse struct {
	Profile           *models.BudgetProfile `json:"profile"`
	FixedExpenses     []models.FixedExpense `json:"fixed_expenses"`
	MonthlyFixedTotal float64               `json:"monthly_fixed_total"`
}

// GetProfile returns the caller's budget profile with fixed expenses.
//
// Method: GET /api/v1/profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidUserID)
	}

	profile, err := h.budgetRepo.GetByUserID(userID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrBudgetProfileNotFound) {
			return SendError(c, errors.ProfileNotFound)
		}
		return SendSystemError(c, err)
	}

	expenses, err := h.budgetRepo.GetFixedExpenses(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, profileResponse{
		Profile:           profile,
		FixedExpenses:     expenses,
		MonthlyFixedTotal: models.MonthlyFixedTotal(expenses),
	})
}

// UpsertProfile creates or replaces the caller's budget profile.
//
// Method: PUT /api/v1/profile
func (h *ProfileHandler) UpsertProfile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidUserID)
	}

	var req dto.UpsertProfileRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ProfileInvalidBudget, errors.WithDetails(formatValidationErrors(err)...))
	}

	profile := &models.BudgetProfile{
		UserID:        userID,
		Name:          req.Name,
		MonthlyBudget: decimal.NewFromFloat(req.MonthlyBudget),
		SavingsGoal:   decimal.NewFromFloat(req.SavingsGoal),
	}

	if err := h.budgetRepo.Upsert(profile); err != nil {
		if stderrors.Is(err, models.ErrNegativeBudget) || stderrors.Is(err, models.ErrNegativeSavingsGoal) {
			return SendError(c, errors.ProfileInvalidBudget)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}

// AddFixedExpense adds a recurring obligation to the caller's profile.
//
// Method: POST /api/v1/profile/fixed-expenses
func (h *ProfileHandler) AddFixedExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidUserID)
	}

	var req dto.AddFixedExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(formatValidationErrors(err)...))
	}

	expense := &models.FixedExpense{
		UserID:    userID,
		Name:      req.Name,
		Amount:    decimal.NewFromFloat(req.Amount),
		Frequency: req.Frequency,
	}

	if err := h.budgetRepo.AddFixedExpense(expense); err != nil {
		if stderrors.Is(err, models.ErrInvalidFrequency) {
			return SendError(c, errors.ProfileInvalidFrequency)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, expense)
}

// DeleteFixedExpense removes a fixed expense from the caller's profile.
//
// Method: DELETE /api/v1/profile/fixed-expenses/:id
func (h *ProfileHandler) DeleteFixedExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidUserID)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("id must be a valid UUID"))
	}

	if err := h.budgetRepo.DeleteFixedExpense(id, userID); err != nil {
		if stderrors.Is(err, repositories.ErrFixedExpenseNotFound) {
			return SendError(c, errors.ProfileExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
