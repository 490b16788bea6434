package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral         ErrorCode = "VALIDATION_001"
	ValidationRequiredField   ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat   ErrorCode = "VALIDATION_003"
	ValidationOutOfRange      ErrorCode = "VALIDATION_004"
	ValidationInvalidCategory ErrorCode = "VALIDATION_005"
	ValidationInvalidDate     ErrorCode = "VALIDATION_006"
	ValidationInvalidUserID   ErrorCode = "VALIDATION_007"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound         ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount    ErrorCode = "TRANSACTION_002"
	TransactionValidationFailed ErrorCode = "TRANSACTION_003"
)

// Analytics error codes (ANALYTICS_*)
const (
	AnalyticsNoHistory         ErrorCode = "ANALYTICS_001"
	AnalyticsInvalidWindow     ErrorCode = "ANALYTICS_002"
	AnalyticsInvalidConfidence ErrorCode = "ANALYTICS_003"
)

// Forecast error codes (FORECAST_*)
const (
	ForecastBudgetNotConfigured ErrorCode = "FORECAST_001"
	ForecastInvalidTrialCount   ErrorCode = "FORECAST_002"
)

// Profile error codes (PROFILE_*)
const (
	ProfileNotFound         ErrorCode = "PROFILE_001"
	ProfileInvalidBudget    ErrorCode = "PROFILE_002"
	ProfileExpenseNotFound  ErrorCode = "PROFILE_003"
	ProfileInvalidFrequency ErrorCode = "PROFILE_004"
)

// Report error codes (REPORT_*)
const (
	ReportInvalidPeriod ErrorCode = "REPORT_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
	SystemForbiddenEnv       ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:         "Validation failed",
	ValidationRequiredField:   "Required field is missing",
	ValidationInvalidFormat:   "Invalid field format",
	ValidationOutOfRange:      "Field value is out of allowed range",
	ValidationInvalidCategory: "Unknown spending category",
	ValidationInvalidDate:     "Invalid date format or range",
	ValidationInvalidUserID:   "Invalid or missing user ID",

	// Transaction errors
	TransactionNotFound:         "Transaction not found",
	TransactionInvalidAmount:    "Transaction amount must be positive",
	TransactionValidationFailed: "Transaction validation failed",

	// Analytics errors
	AnalyticsNoHistory:         "No spending history for this category in the requested window",
	AnalyticsInvalidWindow:     "Window must be between 1 and 24 months",
	AnalyticsInvalidConfidence: "Confidence level must be between 0 and 1 exclusive",

	// Forecast errors
	ForecastBudgetNotConfigured: "Budget profile is not configured. Set a monthly budget before forecasting",
	ForecastInvalidTrialCount:   "Simulation count must be between 100 and 10000",

	// Profile errors
	ProfileNotFound:         "Budget profile not found",
	ProfileInvalidBudget:    "Monthly budget and savings goal must not be negative",
	ProfileExpenseNotFound:  "Fixed expense not found",
	ProfileInvalidFrequency: "Fixed expense frequency must be monthly or weekly",

	// Report errors
	ReportInvalidPeriod: "Report period must be a valid year and month",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemForbiddenEnv:       "This endpoint is disabled in the current environment",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
