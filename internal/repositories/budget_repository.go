package repositories

import (
	"errors"
	"fmt"

	"finpulse/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBudgetProfileNotFound = errors.New("budget profile not found")
	ErrFixedExpenseNotFound  = errors.New("fixed expense not found")
)

// budgetProfileRepository implements BudgetProfileRepositoryInterface
type budgetProfileRepository struct {
	db *gorm.DB
}

// NewBudgetProfileRepository creates a new budget profile repository
func NewBudgetProfileRepository(db *gorm.DB) BudgetProfileRepositoryInterface {
	return &budgetProfileRepository{
		db: db,
	}
}

// GetByUserID retrieves the budget profile for a user
func (r *budgetProfileRepository) GetByUserID(userID uuid.UUID) (*models.BudgetProfile, error) {
	var profile models.BudgetProfile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetProfileNotFound
		}
		return nil, fmt.Errorf("failed to get budget profile: %w", err)
	}
	return &profile, nil
}

// Upsert creates or replaces the budget profile for a user
func (r *budgetProfileRepository) Upsert(profile *models.BudgetProfile) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "monthly_budget", "savings_goal", "updated_at"}),
	}).Create(profile).Error
	if err != nil {
		return fmt.Errorf("failed to upsert budget profile: %w", err)
	}
	return nil
}

// GetFixedExpenses retrieves a user's fixed expenses ordered by amount
func (r *budgetProfileRepository) GetFixedExpenses(userID uuid.UUID) ([]models.FixedExpense, error) {
	var expenses []models.FixedExpense
	if err := r.db.Where("user_id = ?", userID).
		Order("amount DESC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to get fixed expenses: %w", err)
	}
	return expenses, nil
}

// AddFixedExpense creates a new fixed expense
func (r *budgetProfileRepository) AddFixedExpense(expense *models.FixedExpense) error {
	if err := r.db.Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create fixed expense: %w", err)
	}
	return nil
}

// DeleteFixedExpense removes a fixed expense scoped to a user
func (r *budgetProfileRepository) DeleteFixedExpense(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.FixedExpense{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete fixed expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrFixedExpenseNotFound
	}
	return nil
}

// DeleteFixedExpensesByUserID removes all of a user's fixed expenses. Used
// when reseeding demo data.
func (r *budgetProfileRepository) DeleteFixedExpensesByUserID(userID uuid.UUID) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&models.FixedExpense{}).Error; err != nil {
		return fmt.Errorf("failed to delete user fixed expenses: %w", err)
	}
	return nil
}
