package services

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"time"

	"finpulse/internal/models"
	"finpulse/internal/repositories"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
)

// DefaultSimulationCount is the number of Monte Carlo trials run when the
// caller does not specify one.
const DefaultSimulationCount = 1000

// ErrBudgetNotConfigured is returned when a forecast or report is requested
// for a user who has not set up a budget profile yet.
var ErrBudgetNotConfigured = errors.New("budget profile not configured")

// categoryDistribution holds the sampling parameters derived from one
// category's monthly history.
type categoryDistribution struct {
	category string
	mean     float64
	stdDev   float64
}

// forecastService implements ForecastServiceInterface
type forecastService struct {
	analytics  AnalyticsServiceInterface
	budgetRepo repositories.BudgetProfileRepositoryInterface
	metrics    MetricsRecorderInterface
	rng        *rand.Rand
}

// NewForecastService creates a forecast service with time-seeded randomness.
func NewForecastService(analytics AnalyticsServiceInterface, budgetRepo repositories.BudgetProfileRepositoryInterface, metrics MetricsRecorderInterface) ForecastServiceInterface {
	return NewForecastServiceWithSource(analytics, budgetRepo, metrics, rand.NewSource(time.Now().UnixNano()))
}

// NewForecastServiceWithSource creates a forecast service drawing from the
// given source, so tests can run deterministic simulations.
func NewForecastServiceWithSource(analytics AnalyticsServiceInterface, budgetRepo repositories.BudgetProfileRepositoryInterface, metrics MetricsRecorderInterface, src rand.Source) ForecastServiceInterface {
	return &forecastService{
		analytics:  analytics,
		budgetRepo: budgetRepo,
		metrics:    metrics,
		rng:        rand.New(src),
	}
}

// Simulate runs simulationCount Monte Carlo trials of next month's ending
// balance. Each trial samples every active category from a normal
// distribution fitted to its monthly history, clamps draws at zero, and
// subtracts total spend plus fixed expenses from the monthly budget.
func (s *forecastService) Simulate(userID uuid.UUID, simulationCount int, adjustments map[string]float64) (*models.SimulationResult, error) {
	if simulationCount <= 0 {
		simulationCount = DefaultSimulationCount
	}

	profile, err := s.budgetRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetProfileNotFound) {
			return nil, ErrBudgetNotConfigured
		}
		return nil, fmt.Errorf("failed to load budget profile: %w", err)
	}

	fixedExpenses, err := s.budgetRepo.GetFixedExpenses(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load fixed expenses: %w", err)
	}
	fixedTotal := models.MonthlyFixedTotal(fixedExpenses)

	distributions, err := s.fitDistributions(userID, adjustments)
	if err != nil {
		return nil, err
	}

	monthlyBudget := profile.MonthlyBudget.InexactFloat64()
	savingsGoal := profile.SavingsGoal.InexactFloat64()

	start := time.Now()
	balances := make([]float64, simulationCount)
	for i := range balances {
		spend := 0.0
		for _, dist := range distributions {
			sample := dist.mean + s.rng.NormFloat64()*dist.stdDev
			if sample < 0 {
				sample = 0
			}
			spend += sample
		}
		balances[i] = monthlyBudget - fixedTotal - spend
	}
	s.metrics.RecordProcessingTime("simulation", time.Since(start))
	s.metrics.IncrementCounter("simulations_run", nil)

	result := s.summarize(balances, savingsGoal)
	result.SavingsGoal = savingsGoal
	result.FixedExpenses = fixedTotal
	result.SimulationRuns = simulationCount
	result.GeneratedAt = time.Now()

	slog.Info("simulation completed",
		"user_id", userID,
		"trials", simulationCount,
		"categories", len(distributions),
		"mean_balance", result.Mean)

	return result, nil
}

// fitDistributions derives per-category sampling parameters from monthly
// history. Categories with no history or a non-positive historical mean are
// skipped; what-if adjustments shift the sampling mean afterwards, so a
// heavily adjusted category still contributes spend through its spread.
func (s *forecastService) fitDistributions(userID uuid.UUID, adjustments map[string]float64) ([]categoryDistribution, error) {
	distributions := make([]categoryDistribution, 0, len(models.AllCategories()))
	for _, category := range models.AllCategories() {
		catStats, err := s.analytics.CategoryStatistics(userID, category, DefaultWindowMonths)
		if err != nil {
			if errors.Is(err, ErrNoSpendingHistory) {
				continue
			}
			return nil, err
		}
		if catStats.Mean <= 0 {
			continue
		}
		distributions = append(distributions, categoryDistribution{
			category: category,
			mean:     catStats.Mean + adjustments[category],
			stdDev:   catStats.StdDev,
		})
	}
	return distributions, nil
}

// summarize reduces raw trial balances into the aggregate view returned to
// clients. Probabilities are percentages of trials; spread uses the
// population standard deviation since the trials are the whole population.
func (s *forecastService) summarize(balances []float64, savingsGoal float64) *models.SimulationResult {
	mean, _ := stats.Mean(balances)
	stdDev, _ := stats.StandardDeviationPopulation(balances)

	var positive, meetGoal, overBudget int
	for _, balance := range balances {
		if balance > 0 {
			positive++
		}
		if balance >= savingsGoal {
			meetGoal++
		}
		if balance < 0 {
			overBudget++
		}
	}
	total := float64(len(balances))

	sorted := make([]float64, len(balances))
	copy(sorted, balances)
	sort.Float64s(sorted)

	return &models.SimulationResult{
		Balances: balances,
		Mean:     mean,
		StdDev:   stdDev,
		Probabilities: models.SimulationProbabilities{
			PositiveBalance: float64(positive) / total * 100,
			MeetSavingsGoal: float64(meetGoal) / total * 100,
			OverBudget:      float64(overBudget) / total * 100,
		},
		Percentiles: models.SimulationPercentiles{
			P10: percentile(sorted, 10),
			P25: percentile(sorted, 25),
			P50: percentile(sorted, 50),
			P75: percentile(sorted, 75),
			P90: percentile(sorted, 90),
		},
		Histogram: buildHistogram(balances, models.HistogramBins),
	}
}
