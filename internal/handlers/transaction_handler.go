package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"finpulse/internal/dto"
	"finpulse/internal/errors"
	"finpulse/internal/models"
	"finpulse/internal/repositories"
	"finpulse/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const defaultPageLimit = 50

// TransactionHandler records and lists spending transactions.
type TransactionHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	analytics       services.AnalyticsServiceInterface
	metrics         services.MetricsRecorderInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	analytics services.AnalyticsServiceInterface,
	metrics services.MetricsRecorderInterface,
) *TransactionHandler {
	return &TransactionHandler{
		transactionRepo: transactionRepo,
		analytics:       analytics,
		metrics:         metrics,
	}
}

// Create records a spending transaction. The amount is scored against the
// category's history before insertion, so the anomaly flag reflects spending
// patterns at the time of entry.
//
// Method: POST /api/v1/transactions
func (h *TransactionHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidUserID)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(formatValidationErrors(err)...))
	}

	occurredAt := time.Now()
	if req.OccurredAt != nil {
		occurredAt = *req.OccurredAt
	}

	check, err := h.analytics.DetectAnomaly(userID, req.Category, req.Amount, 0)
	if err != nil {
		return SendSystemError(c, err)
	}

	transaction := &models.Transaction{
		UserID:      userID,
		OccurredAt:  occurredAt,
		Amount:      decimal.NewFromFloat(req.Amount),
		Category:    req.Category,
		Description: req.Description,
		Currency:    req.Currency,
		IsAnomaly:   check.IsAnomaly,
		ZScore:      check.ZScore,
	}

	if err := h.transactionRepo.Create(transaction); err != nil {
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("transactions_recorded", map[string]string{"category": req.Category})

	return c.JSON(http.StatusCreated, transaction)
}

// List returns a page of the caller's transactions, newest first.
//
// Method: GET /api/v1/transactions
func (h *TransactionHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidUserID)
	}

	offset := getIntQueryParam(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	limit := getIntQueryParam(c, "limit", defaultPageLimit)
	if limit < 1 || limit > 500 {
		limit = defaultPageLimit
	}

	transactions, total, err := h.transactionRepo.GetByUserID(userID, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: transactions,
		Total:        total,
		Offset:       offset,
		Limit:        limit,
	})
}

// Delete removes one of the caller's transactions.
//
// Method: DELETE /api/v1/transactions/:id
func (h *TransactionHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidUserID)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("id must be a valid UUID"))
	}

	if err := h.transactionRepo.Delete(id, userID); err != nil {
		if stderrors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
