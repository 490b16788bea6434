package validation

import (
	"reflect"
	"strings"

	"finpulse/internal/models"

	"github.com/go-playground/validator/v10"
)

// Bounds for analytics and forecast request parameters.
const (
	MinWindowMonths = 1
	MaxWindowMonths = 24

	MinSimulationCount = 100
	MaxSimulationCount = 10000
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("spending_category", validateSpendingCategory)
	_ = v.RegisterValidation("window_months", validateWindowMonths)
	_ = v.RegisterValidation("confidence_level", validateConfidenceLevel)
	_ = v.RegisterValidation("simulation_count", validateSimulationCount)
	_ = v.RegisterValidation("expense_frequency", validateExpenseFrequency)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateSpendingCategory checks the value against the closed category set.
func validateSpendingCategory(fl validator.FieldLevel) bool {
	return models.IsValidCategory(fl.Field().String())
}

// validateWindowMonths bounds the trailing analytics window. Zero is allowed
// and means "use the default".
func validateWindowMonths(fl validator.FieldLevel) bool {
	window := fl.Field().Int()
	if window == 0 {
		return true
	}
	return window >= MinWindowMonths && window <= MaxWindowMonths
}

// validateConfidenceLevel requires a confidence strictly inside (0, 1).
// Zero is allowed and means "use the default".
func validateConfidenceLevel(fl validator.FieldLevel) bool {
	confidence := fl.Field().Float()
	if confidence == 0 {
		return true
	}
	return confidence > 0 && confidence < 1
}

// validateSimulationCount bounds Monte Carlo trial counts. Zero is allowed
// and means "use the default".
func validateSimulationCount(fl validator.FieldLevel) bool {
	count := fl.Field().Int()
	if count == 0 {
		return true
	}
	return count >= MinSimulationCount && count <= MaxSimulationCount
}

// validateExpenseFrequency restricts fixed expense cadence values.
func validateExpenseFrequency(fl validator.FieldLevel) bool {
	frequency := strings.ToLower(fl.Field().String())
	return frequency == models.FrequencyMonthly || frequency == models.FrequencyWeekly
}

// validatePositiveAmount validates that an amount is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	default:
		return false
	}
}
