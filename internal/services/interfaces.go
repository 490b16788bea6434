package services

import (
	"time"

	"finpulse/internal/models"

	"github.com/google/uuid"
)

// AnalyticsServiceInterface defines the statistical operations computed over
// a user's transaction history. Every call reads a fresh snapshot from the
// store and recomputes; nothing is cached between calls.
type AnalyticsServiceInterface interface {
	// CategoryStatistics computes trailing-window summaries for one category.
	// Returns ErrNoSpendingHistory when no transactions fall in the window.
	CategoryStatistics(userID uuid.UUID, category string, windowMonths int) (*models.CategoryStatistics, error)

	// DetectAnomaly scores a candidate amount against the category's
	// transaction-level distribution using a z-score test.
	DetectAnomaly(userID uuid.UUID, category string, amount, threshold float64) (*models.AnomalyCheck, error)

	// SpendingTrends reshapes the trailing window into a month-by-category
	// series for charting.
	SpendingTrends(userID uuid.UUID, windowMonths int) (*models.TrendReport, error)

	// ConfidenceInterval computes a two-sided Student-t interval for a sample.
	ConfidenceInterval(data []float64, confidence float64) models.ConfidenceInterval
}

// ForecastServiceInterface runs Monte Carlo projections of next month's
// ending balance.
type ForecastServiceInterface interface {
	// Simulate draws simulationCount independent trials from per-category
	// normal distributions. Returns ErrBudgetNotConfigured when the user has
	// no budget profile yet.
	Simulate(userID uuid.UUID, simulationCount int, adjustments map[string]float64) (*models.SimulationResult, error)
}

// HealthScoreServiceInterface computes the bounded 0-100 budget health score
type HealthScoreServiceInterface interface {
	Score(totalSpent, monthlyBudget, fixedTotal, savingsGoal float64, anomalyCount int) int
}

// ReportServiceInterface assembles monthly summaries and dashboard insights
type ReportServiceInterface interface {
	MonthlySummary(userID uuid.UUID, year, month int) (*models.MonthlySummary, error)
}

// DemoDataSummary reports what a demo seeding run produced.
type DemoDataSummary struct {
	TransactionCount  int `json:"transaction_count"`
	FixedExpenseCount int `json:"fixed_expense_count"`
	Months            int `json:"months"`
}

// DemoDataServiceInterface seeds realistic sample data for evaluation
type DemoDataServiceInterface interface {
	Generate(userID uuid.UUID) (*DemoDataSummary, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
