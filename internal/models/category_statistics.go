package models

import "time"

// CategoryStatistics summarizes spending for one category over a trailing
// window. Monthly fields (Mean, StdDev, Variance, Min, Max) describe the
// distribution of calendar-month totals; TransactionMean/TransactionStd
// describe individual purchase amounts and drive anomaly scoring. Recomputed
// on every request, never persisted.
type CategoryStatistics struct {
	Category     string `json:"category"`
	WindowMonths int    `json:"window_months"`

	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	Variance float64 `json:"variance"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Count    int     `json:"count"`

	// MonthlyTotals maps YYYY-MM keys to that month's total, MonthKeys holds
	// the keys in calendar order.
	MonthlyTotals map[string]float64 `json:"monthly_totals"`
	MonthKeys     []string           `json:"month_keys"`

	TransactionMean float64 `json:"transaction_mean"`
	TransactionStd  float64 `json:"transaction_std"`

	GeneratedAt time.Time `json:"generated_at"`
}

// AnomalyCheck is the outcome of scoring a candidate amount against a
// category's transaction-level distribution.
type AnomalyCheck struct {
	Category  string  `json:"category"`
	Amount    float64 `json:"amount"`
	Threshold float64 `json:"threshold"`
	IsAnomaly bool    `json:"is_anomaly"`
	ZScore    float64 `json:"z_score"`
}

// TrendReport is a month-by-category time series shaped for charting.
// Every dataset has exactly len(Labels) entries; missing month/category
// combinations are zero-filled.
type TrendReport struct {
	Labels   []string             `json:"labels"`
	Datasets map[string][]float64 `json:"datasets"`
}

// ConfidenceInterval is a two-sided Student-t interval around a sample mean.
type ConfidenceInterval struct {
	Lower      float64 `json:"lower"`
	Upper      float64 `json:"upper"`
	Confidence float64 `json:"confidence"`
	SampleSize int     `json:"sample_size"`
}
