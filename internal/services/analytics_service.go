package services

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"finpulse/internal/models"
	"finpulse/internal/repositories"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// DefaultWindowMonths is the trailing window applied when a caller does
	// not specify one. A "month" is a fixed 30-day span, not a calendar month.
	DefaultWindowMonths = 6

	// DefaultAnomalyThreshold is the absolute z-score above which an amount
	// is flagged as anomalous.
	DefaultAnomalyThreshold = 2.0

	// DefaultConfidenceLevel is the two-sided confidence level used when a
	// caller passes one outside (0, 1).
	DefaultConfidenceLevel = 0.90

	daysPerWindowMonth = 30
)

// ErrNoSpendingHistory is returned when a category has no transactions inside
// the requested window. Callers distinguish this from a present-but-flat
// history, which yields zero-valued statistics instead.
var ErrNoSpendingHistory = errors.New("no spending history for category in window")

// analyticsService implements AnalyticsServiceInterface
type analyticsService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
	now             func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(transactionRepo repositories.TransactionRepositoryInterface, metrics MetricsRecorderInterface) AnalyticsServiceInterface {
	return &analyticsService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
		now:             time.Now,
	}
}

// CategoryStatistics computes trailing-window statistics for one category.
// Monthly-level moments use Bessel's correction; a single observed month
// yields zero standard deviation and variance rather than NaN.
func (s *analyticsService) CategoryStatistics(userID uuid.UUID, category string, windowMonths int) (*models.CategoryStatistics, error) {
	if windowMonths <= 0 {
		windowMonths = DefaultWindowMonths
	}

	cutoff := s.now().AddDate(0, 0, -windowMonths*daysPerWindowMonth)
	transactions, err := s.transactionRepo.GetByCategorySince(userID, category, cutoff)
	if err != nil {
		slog.Error("failed to load category history",
			"user_id", userID,
			"category", category,
			"error", err)
		return nil, fmt.Errorf("failed to load category history: %w", err)
	}
	if len(transactions) == 0 {
		return nil, ErrNoSpendingHistory
	}

	amounts := make([]float64, len(transactions))
	for i := range transactions {
		amounts[i] = transactions[i].AmountFloat()
	}
	totals, monthKeys := monthlyTotals(transactions)
	monthlyValues := orderedValues(totals, monthKeys)

	result := &models.CategoryStatistics{
		Category:      category,
		WindowMonths:  windowMonths,
		Count:         len(transactions),
		MonthlyTotals: totals,
		MonthKeys:     monthKeys,
		GeneratedAt:   s.now(),
	}
	result.Mean, result.StdDev, result.Variance = sampleMoments(monthlyValues)
	result.Min, _ = stats.Min(monthlyValues)
	result.Max, _ = stats.Max(monthlyValues)
	result.TransactionMean, result.TransactionStd, _ = sampleMoments(amounts)

	s.metrics.IncrementCounter("statistics_computed", map[string]string{"category": category})

	return result, nil
}

// DetectAnomaly scores amount against the category's transaction-level
// distribution. Zero history and zero variance both yield a non-anomalous
// result with a zero score, so sparse users are never flagged.
func (s *analyticsService) DetectAnomaly(userID uuid.UUID, category string, amount, threshold float64) (*models.AnomalyCheck, error) {
	if threshold <= 0 {
		threshold = DefaultAnomalyThreshold
	}

	check := &models.AnomalyCheck{
		Category:  category,
		Amount:    amount,
		Threshold: threshold,
	}

	catStats, err := s.CategoryStatistics(userID, category, DefaultWindowMonths)
	if err != nil {
		if errors.Is(err, ErrNoSpendingHistory) {
			return check, nil
		}
		return nil, err
	}
	if catStats.TransactionStd == 0 {
		return check, nil
	}

	check.ZScore = (amount - catStats.TransactionMean) / catStats.TransactionStd
	check.IsAnomaly = math.Abs(check.ZScore) > threshold

	if check.IsAnomaly {
		s.metrics.IncrementCounter("anomalies_detected", map[string]string{"category": category})
		slog.Info("anomalous amount detected",
			"user_id", userID,
			"category", category,
			"amount", amount,
			"z_score", check.ZScore)
	}

	return check, nil
}

// SpendingTrends builds month-by-category series over the trailing window.
// Every known category gets a dataset aligned to the label axis, zero-filled
// for months where it had no spending.
func (s *analyticsService) SpendingTrends(userID uuid.UUID, windowMonths int) (*models.TrendReport, error) {
	if windowMonths <= 0 {
		windowMonths = DefaultWindowMonths
	}

	cutoff := s.now().AddDate(0, 0, -windowMonths*daysPerWindowMonth)
	transactions, err := s.transactionRepo.GetSince(userID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to load spending history: %w", err)
	}

	totals, labels := monthlyCategoryTotals(transactions)

	datasets := make(map[string][]float64, len(models.AllCategories()))
	for _, category := range models.AllCategories() {
		series := make([]float64, len(labels))
		for i, month := range labels {
			series[i] = totals[month][category]
		}
		datasets[category] = series
	}

	return &models.TrendReport{
		Labels:   labels,
		Datasets: datasets,
	}, nil
}

// ConfidenceInterval computes a two-sided Student-t interval around the
// sample mean. Fewer than two observations yield a degenerate (0, 0)
// interval since the standard error is undefined.
func (s *analyticsService) ConfidenceInterval(data []float64, confidence float64) models.ConfidenceInterval {
	if confidence <= 0 || confidence >= 1 {
		confidence = DefaultConfidenceLevel
	}

	interval := models.ConfidenceInterval{
		Confidence: confidence,
		SampleSize: len(data),
	}
	if len(data) < 2 {
		return interval
	}

	mean, _ := stats.Mean(data)
	stdDev, _ := stats.StandardDeviationSample(data)
	stdErr := stdDev / math.Sqrt(float64(len(data)))

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(len(data) - 1)}
	margin := tDist.Quantile((1+confidence)/2) * stdErr

	interval.Lower = mean - margin
	interval.Upper = mean + margin
	return interval
}

// sampleMoments returns mean, sample standard deviation, and sample variance.
// Fewer than two values yield zero spread.
func sampleMoments(values []float64) (mean, stdDev, variance float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}
	mean, _ = stats.Mean(values)
	if len(values) < 2 {
		return mean, 0, 0
	}
	stdDev, _ = stats.StandardDeviationSample(values)
	variance, _ = stats.SampleVariance(values)
	return mean, stdDev, variance
}
