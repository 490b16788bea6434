package dto

// StatisticsQuery holds query parameters for category statistics requests.
type StatisticsQuery struct {
	WindowMonths int `query:"window_months" validate:"window_months"`
}

// AnomalyCheckRequest asks whether a hypothetical amount would be flagged.
type AnomalyCheckRequest struct {
	Category  string  `json:"category" validate:"required,spending_category"`
	Amount    float64 `json:"amount" validate:"required,positive_amount"`
	Threshold float64 `json:"threshold" validate:"omitempty,gt=0,lte=10"`
}

// TrendsQuery holds query parameters for spending trend requests.
type TrendsQuery struct {
	WindowMonths int `query:"window_months" validate:"window_months"`
}

// ConfidenceIntervalRequest carries a raw sample to estimate an interval for.
type ConfidenceIntervalRequest struct {
	Data       []float64 `json:"data" validate:"required,min=1,max=10000"`
	Confidence float64   `json:"confidence" validate:"confidence_level"`
}
