package models

import "time"

// Insight severity levels for dashboard messages.
const (
	InsightSuccess = "success"
	InsightWarning = "warning"
	InsightInfo    = "info"
)

// Insight is a single human-readable observation about recent spending.
type Insight struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// CategoryBreakdown is one category's share of a monthly summary.
type CategoryBreakdown struct {
	Category         string  `json:"category"`
	Total            float64 `json:"total"`
	TransactionCount int     `json:"transaction_count"`
}

// MonthlySummary is the data backing a monthly financial report: category
// breakdown, budget position and the health score for one calendar month.
type MonthlySummary struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	TotalSpent      float64             `json:"total_spent"`
	FixedTotal      float64             `json:"fixed_total"`
	MonthlyBudget   float64             `json:"monthly_budget"`
	SavingsGoal     float64             `json:"savings_goal"`
	RemainingBudget float64             `json:"remaining_budget"`
	AnomalyCount    int                 `json:"anomaly_count"`
	HealthScore     int                 `json:"health_score"`
	Categories      []CategoryBreakdown `json:"categories"`
	Insights        []Insight           `json:"insights"`

	GeneratedAt time.Time `json:"generated_at"`
}
