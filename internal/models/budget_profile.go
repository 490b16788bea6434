package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	FrequencyMonthly = "monthly"
	FrequencyWeekly  = "weekly"

	// WeeksPerMonth converts a weekly fixed expense into its monthly cost.
	WeeksPerMonth = 4.33
)

var (
	ErrInvalidFrequency    = errors.New("frequency must be monthly or weekly")
	ErrNegativeBudget      = errors.New("monthly budget cannot be negative")
	ErrNegativeSavingsGoal = errors.New("savings goal cannot be negative")
)

// BudgetProfile holds the per-user budget configuration the forecaster and
// health score read. One row per user.
type BudgetProfile struct {
	UserID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"user_id"`
	Name          string          `gorm:"type:varchar(100)" json:"name"`
	MonthlyBudget decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"monthly_budget"`
	SavingsGoal   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"savings_goal"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

// Validate validates the budget profile fields
func (p *BudgetProfile) Validate() error {
	if p.UserID == uuid.Nil {
		return ErrMissingUserID
	}
	if p.MonthlyBudget.IsNegative() {
		return ErrNegativeBudget
	}
	if p.SavingsGoal.IsNegative() {
		return ErrNegativeSavingsGoal
	}
	return nil
}

// BeforeSave hook for BudgetProfile
func (p *BudgetProfile) BeforeSave(tx *gorm.DB) error {
	return p.Validate()
}

// TableName returns the table name for BudgetProfile
func (p *BudgetProfile) TableName() string {
	return "budget_profiles"
}

// FixedExpense is a recurring obligation (rent, insurance, subscriptions)
// that is subtracted from the budget before variable spending is simulated.
type FixedExpense struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string          `gorm:"type:varchar(100);not null" json:"name"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Frequency string          `gorm:"type:varchar(10);not null;default:'monthly'" json:"frequency"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for FixedExpense
func (e *FixedExpense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Frequency == "" {
		e.Frequency = FrequencyMonthly
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	return e.Validate()
}

// Validate validates the fixed expense fields
func (e *FixedExpense) Validate() error {
	if e.UserID == uuid.Nil {
		return ErrMissingUserID
	}
	if e.Frequency != FrequencyMonthly && e.Frequency != FrequencyWeekly {
		return ErrInvalidFrequency
	}
	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}

// MonthlyAmount returns the expense normalized to a monthly cost.
func (e *FixedExpense) MonthlyAmount() float64 {
	amount := e.Amount.InexactFloat64()
	if e.Frequency == FrequencyWeekly {
		return amount * WeeksPerMonth
	}
	return amount
}

// MonthlyFixedTotal sums a set of fixed expenses normalized to monthly cost.
func MonthlyFixedTotal(expenses []FixedExpense) float64 {
	total := 0.0
	for i := range expenses {
		total += expenses[i].MonthlyAmount()
	}
	return total
}

// TableName returns the table name for FixedExpense
func (e *FixedExpense) TableName() string {
	return "fixed_expenses"
}
