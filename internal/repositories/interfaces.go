package repositories

import (
	"time"

	"finpulse/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the contract for transaction store operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetByID(id, userID uuid.UUID) (*models.Transaction, error)
	GetByUserID(userID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error)
	GetByCategorySince(userID uuid.UUID, category string, since time.Time) ([]models.Transaction, error)
	GetSince(userID uuid.UUID, since time.Time) ([]models.Transaction, error)
	GetByDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Transaction, error)
	CountAnomaliesInRange(userID uuid.UUID, startDate, endDate time.Time) (int64, error)
	Delete(id, userID uuid.UUID) error
	DeleteByUserID(userID uuid.UUID) error
}

// BudgetProfileRepositoryInterface defines the contract for budget profile store operations
type BudgetProfileRepositoryInterface interface {
	GetByUserID(userID uuid.UUID) (*models.BudgetProfile, error)
	Upsert(profile *models.BudgetProfile) error
	GetFixedExpenses(userID uuid.UUID) ([]models.FixedExpense, error)
	AddFixedExpense(expense *models.FixedExpense) error
	DeleteFixedExpense(id, userID uuid.UUID) error
	DeleteFixedExpensesByUserID(userID uuid.UUID) error
}
