package repositories

import (
	"errors"
	"fmt"
	"time"

	"finpulse/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a transaction by ID scoped to a user
func (r *transactionRepository) GetByID(id, userID uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// GetByUserID retrieves a user's transactions with pagination, newest first
func (r *transactionRepository) GetByUserID(userID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	if err := r.db.Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	if err := r.db.Where("user_id = ?", userID).
		Offset(offset).Limit(limit).
		Order("occurred_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get transactions: %w", err)
	}

	return transactions, total, nil
}

// GetByCategorySince retrieves a user's transactions for one category from
// the cutoff onward, in chronological order
func (r *transactionRepository) GetByCategorySince(userID uuid.UUID, category string, since time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("user_id = ? AND category = ? AND occurred_at >= ?", userID, category, since).
		Order("occurred_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by category: %w", err)
	}
	return transactions, nil
}

// GetSince retrieves all of a user's transactions from the cutoff onward
func (r *transactionRepository) GetSince(userID uuid.UUID, since time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("user_id = ? AND occurred_at >= ?", userID, since).
		Order("occurred_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions since cutoff: %w", err)
	}
	return transactions, nil
}

// GetByDateRange retrieves a user's transactions within a date range
func (r *transactionRepository) GetByDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", userID, startDate, endDate).
		Order("occurred_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by date range: %w", err)
	}
	return transactions, nil
}

// CountAnomaliesInRange counts flagged transactions within a date range
func (r *transactionRepository) CountAnomaliesInRange(userID uuid.UUID, startDate, endDate time.Time) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).
		Where("user_id = ? AND is_anomaly = ? AND occurred_at >= ? AND occurred_at < ?", userID, true, startDate, endDate).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count anomalies: %w", err)
	}
	return count, nil
}

// Delete removes a transaction scoped to a user
func (r *transactionRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Transaction{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// DeleteByUserID removes all of a user's transactions. Used when reseeding
// demo data.
func (r *transactionRepository) DeleteByUserID(userID uuid.UUID) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&models.Transaction{}).Error; err != nil {
		return fmt.Errorf("failed to delete user transactions: %w", err)
	}
	return nil
}
