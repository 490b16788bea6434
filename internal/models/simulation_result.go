package models

import "time"

const HistogramBins = 30

// SimulationProbabilities are outcome likelihoods expressed as percentages.
type SimulationProbabilities struct {
	PositiveBalance float64 `json:"positive_balance"`
	MeetSavingsGoal float64 `json:"meet_savings_goal"`
	OverBudget      float64 `json:"over_budget"`
}

// SimulationPercentiles are linear-interpolation percentiles of the
// simulated ending balances.
type SimulationPercentiles struct {
	P10 float64 `json:"p10"`
	P25 float64 `json:"p25"`
	P50 float64 `json:"p50"`
	P75 float64 `json:"p75"`
	P90 float64 `json:"p90"`
}

// Histogram buckets the simulated balances into HistogramBins uniform bins
// across the observed range. BinEdges always has len(Counts)+1 entries.
type Histogram struct {
	Counts   []int     `json:"counts"`
	BinEdges []float64 `json:"bin_edges"`
}

// SimulationResult is the outcome of one Monte Carlo run: the full balance
// sample plus its summary statistics. StdDev is the population deviation
// since the entire simulated population is observed. Created fresh per run.
type SimulationResult struct {
	Balances       []float64               `json:"balances"`
	Mean           float64                 `json:"mean"`
	StdDev         float64                 `json:"std_dev"`
	Probabilities  SimulationProbabilities `json:"probabilities"`
	Percentiles    SimulationPercentiles   `json:"percentiles"`
	Histogram      Histogram               `json:"histogram"`
	SavingsGoal    float64                 `json:"savings_goal"`
	FixedExpenses  float64                 `json:"fixed_expenses"`
	SimulationRuns int                     `json:"simulation_runs"`
	GeneratedAt    time.Time               `json:"generated_at"`
}
