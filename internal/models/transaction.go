package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const DefaultCurrency = "USD"

var (
	ErrInvalidCategory    = errors.New("invalid spending category")
	ErrInvalidAmount      = errors.New("transaction amount must be positive")
	ErrMissingUserID      = errors.New("user ID is required")
	ErrMissingOccurredAt  = errors.New("transaction date is required")
	ErrDescriptionTooLong = errors.New("description exceeds 255 characters")
)

// Transaction represents a single categorized expense. Amounts are stored in
// the reporting currency; conversion happens before a record reaches this
// model. IsAnomaly and ZScore are written at recording time by the anomaly
// detector so the dashboard can surface unusual purchases without rescoring
// history on every page load.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	OccurredAt  time.Time       `gorm:"not null;index" json:"occurred_at"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category    string          `gorm:"type:varchar(50);not null;index" json:"category"`
	Description string          `gorm:"type:varchar(255)" json:"description"`
	Currency    string          `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	IsAnomaly   bool            `gorm:"not null;default:false" json:"is_anomaly"`
	ZScore      float64         `gorm:"not null;default:0" json:"z_score"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.Currency == "" {
		t.Currency = DefaultCurrency
	}

	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return ErrMissingUserID
	}

	if t.OccurredAt.IsZero() {
		return ErrMissingOccurredAt
	}

	if !IsValidCategory(t.Category) {
		return ErrInvalidCategory
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if len(t.Description) > 255 {
		return ErrDescriptionTooLong
	}

	return nil
}

// MonthKey returns the calendar-month bucket the transaction falls into,
// formatted as YYYY-MM.
func (t *Transaction) MonthKey() string {
	return t.OccurredAt.Format("2006-01")
}

// AmountFloat returns the amount as a float64 for statistical computation.
func (t *Transaction) AmountFloat() float64 {
	return t.Amount.InexactFloat64()
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}
