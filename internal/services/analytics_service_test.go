package services

import (
	"errors"
	"testing"
	"time"

	"finpulse/internal/models"
	"finpulse/internal/repositories/repository_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// noopMetrics satisfies MetricsRecorderInterface for service tests.
type noopMetrics struct{}

func (noopMetrics) IncrementCounter(string, map[string]string)     {}
func (noopMetrics) RecordProcessingTime(string, time.Duration)     {}
func (noopMetrics) RecordGauge(string, float64, map[string]string) {}

func spendingTxn(userID uuid.UUID, category string, amount float64, occurredAt time.Time) models.Transaction {
	return models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		OccurredAt:  occurredAt,
		Amount:      decimal.NewFromFloat(amount),
		Category:    category,
		Description: gofakeit.ProductName(),
	}
}

// AnalyticsServiceTestSuite defines the test suite for the analytics service
type AnalyticsServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockTransactionRepo *repository_mocks.MockTransactionRepositoryInterface
	service             AnalyticsServiceInterface
	userID              uuid.UUID
}

// SetupTest runs before each test
func (s *AnalyticsServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockTransactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.service = NewAnalyticsService(s.mockTransactionRepo, noopMetrics{})
	s.userID = uuid.New()
}

// TearDownTest runs after each test
func (s *AnalyticsServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestAnalyticsServiceSuite runs the test suite
func TestAnalyticsServiceSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}

func (s *AnalyticsServiceTestSuite) TestCategoryStatistics_MonthlyMoments() {
	// Two January purchases sum into one monthly bucket; monthly totals are
	// 100, 120, 140.
	transactions := []models.Transaction{
		spendingTxn(s.userID, models.CategoryGroceries, 60, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)),
		spendingTxn(s.userID, models.CategoryGroceries, 40, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)),
		spendingTxn(s.userID, models.CategoryGroceries, 120, time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)),
		spendingTxn(s.userID, models.CategoryGroceries, 140, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)),
	}

	s.mockTransactionRepo.EXPECT().
		GetByCategorySince(s.userID, models.CategoryGroceries, gomock.Any()).
		Return(transactions, nil)

	result, err := s.service.CategoryStatistics(s.userID, models.CategoryGroceries, 6)

	s.NoError(err)
	s.Equal(models.CategoryGroceries, result.Category)
	s.Equal(6, result.WindowMonths)
	s.Equal(4, result.Count)
	s.Equal([]string{"2025-01", "2025-02", "2025-03"}, result.MonthKeys)
	s.InDelta(120.0, result.Mean, 1e-9)
	s.InDelta(20.0, result.StdDev, 1e-9)
	s.InDelta(400.0, result.Variance, 1e-9)
	s.InDelta(100.0, result.Min, 1e-9)
	s.InDelta(140.0, result.Max, 1e-9)
	s.InDelta(90.0, result.TransactionMean, 1e-9)
}

func (s *AnalyticsServiceTestSuite) TestCategoryStatistics_SingleMonthHasZeroSpread() {
	transactions := []models.Transaction{
		spendingTxn(s.userID, models.CategoryDiningOut, 75, time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)),
	}

	s.mockTransactionRepo.EXPECT().
		GetByCategorySince(s.userID, models.CategoryDiningOut, gomock.Any()).
		Return(transactions, nil)

	result, err := s.service.CategoryStatistics(s.userID, models.CategoryDiningOut, 6)

	s.NoError(err)
	s.InDelta(75.0, result.Mean, 1e-9)
	s.Zero(result.StdDev)
	s.Zero(result.Variance)
}

func (s *AnalyticsServiceTestSuite) TestCategoryStatistics_NoHistory() {
	s.mockTransactionRepo.EXPECT().
		GetByCategorySince(s.userID, models.CategoryShopping, gomock.Any()).
		Return([]models.Transaction{}, nil)

	result, err := s.service.CategoryStatistics(s.userID, models.CategoryShopping, 6)

	s.Nil(result)
	s.ErrorIs(err, ErrNoSpendingHistory)
}

func (s *AnalyticsServiceTestSuite) TestCategoryStatistics_DefaultWindowIsSixMonths() {
	var capturedSince time.Time
	s.mockTransactionRepo.EXPECT().
		GetByCategorySince(s.userID, models.CategoryOther, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, _ string, since time.Time) ([]models.Transaction, error) {
			capturedSince = since
			return []models.Transaction{
				spendingTxn(s.userID, models.CategoryOther, 10, time.Now().AddDate(0, 0, -5)),
			}, nil
		})

	_, err := s.service.CategoryStatistics(s.userID, models.CategoryOther, 0)

	s.NoError(err)
	s.WithinDuration(time.Now().AddDate(0, 0, -180), capturedSince, time.Minute)
}

func (s *AnalyticsServiceTestSuite) TestCategoryStatistics_RepositoryError() {
	s.mockTransactionRepo.EXPECT().
		GetByCategorySince(s.userID, models.CategoryGroceries, gomock.Any()).
		Return(nil, errors.New("connection reset"))

	result, err := s.service.CategoryStatistics(s.userID, models.CategoryGroceries, 6)

	s.Nil(result)
	s.ErrorContains(err, "failed to load category history")
}

func (s *AnalyticsServiceTestSuite) TestDetectAnomaly_FlagsOutlier() {
	// Transaction amounts 30, 40, 50, 60: mean 45, sample std ~12.91.
	transactions := []models.Transaction{
		spendingTxn(s.userID, models.CategoryDiningOut, 30, time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)),
		spendingTxn(s.userID, models.CategoryDiningOut, 40, time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC)),
		spendingTxn(s.userID, models.CategoryDiningOut, 50, time.Date(2025, 2, 8, 0, 0, 0, 0, time.UTC)),
		spendingTxn(s.userID, models.CategoryDiningOut, 60, time.Date(2025, 2, 21, 0, 0, 0, 0, time.UTC)),
	}

	s.mockTransactionRepo.EXPECT().
		GetByCategorySince(s.userID, models.CategoryDiningOut, gomock.Any()).
		Return(transactions, nil)

	check, err := s.service.DetectAnomaly(s.userID, models.CategoryDiningOut, 100, 0)

	s.NoError(err)
	s.True(check.IsAnomaly)
	s.InDelta(4.2603, check.ZScore, 0.001)
	s.Equal(DefaultAnomalyThreshold, check.Threshold)
}

func (s *AnalyticsServiceTestSuite) TestDetectAnomaly_ZeroVarianceNeverFlags() {
	transactions := []models.Transaction{
		spendingTxn(s.userID, models.CategoryTransportation, 50, time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)),
		spendingTxn(s.userID, models.CategoryTransportation, 50, time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)),
		spendingTxn(s.userID, models.CategoryTransportation, 50, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)),
	}

	s.mockTransactionRepo.EXPECT().
		GetByCategorySince(s.userID, models.CategoryTransportation, gomock.Any()).
		Return(transactions, nil)

	check, err := s.service.DetectAnomaly(s.userID, models.CategoryTransportation, 10000, 0)

	s.NoError(err)
	s.False(check.IsAnomaly)
	s.Zero(check.ZScore)
}

func (s *AnalyticsServiceTestSuite) TestDetectAnomaly_NoHistoryNeverFlags() {
	s.mockTransactionRepo.EXPECT().
		GetByCategorySince(s.userID, models.CategoryEntertainment, gomock.Any()).
		Return([]models.Transaction{}, nil)

	check, err := s.service.DetectAnomaly(s.userID, models.CategoryEntertainment, 500, 0)

	s.NoError(err)
	s.False(check.IsAnomaly)
	s.Zero(check.ZScore)
}

func (s *AnalyticsServiceTestSuite) TestDetectAnomaly_CustomThreshold() {
	transactions := []models.Transaction{
		spendingTxn(s.userID, models.CategoryDiningOut, 30, time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)),
		spendingTxn(s.userID, models.CategoryDiningOut, 40, time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC)),
		spendingTxn(s.userID, models.CategoryDiningOut, 50, time.Date(2025, 2, 8, 0, 0, 0, 0, time.UTC)),
		spendingTxn(s.userID, models.CategoryDiningOut, 60, time.Date(2025, 2, 21, 0, 0, 0, 0, time.UTC)),
	}

	s.mockTransactionRepo.EXPECT().
		GetByCategorySince(s.userID, models.CategoryDiningOut, gomock.Any()).
		Return(transactions, nil)

	// z ~1.16 clears a threshold of 1.0 but would not clear the default.
	check, err := s.service.DetectAnomaly(s.userID, models.CategoryDiningOut, 60, 1.0)

	s.NoError(err)
	s.True(check.IsAnomaly)
	s.InDelta(1.1619, check.ZScore, 0.001)
}

func (s *AnalyticsServiceTestSuite) TestSpendingTrends_AlignedZeroFilledDatasets() {
	transactions := []models.Transaction{
		spendingTxn(s.userID, models.CategoryGroceries, 100, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)),
		spendingTxn(s.userID, models.CategoryDiningOut, 50, time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)),
		spendingTxn(s.userID, models.CategoryGroceries, 80, time.Date(2025, 2, 7, 0, 0, 0, 0, time.UTC)),
	}

	s.mockTransactionRepo.EXPECT().
		GetSince(s.userID, gomock.Any()).
		Return(transactions, nil)

	report, err := s.service.SpendingTrends(s.userID, 6)

	s.NoError(err)
	s.Equal([]string{"2025-01", "2025-02"}, report.Labels)
	s.Len(report.Datasets, len(models.AllCategories()))
	s.Equal([]float64{100, 80}, report.Datasets[models.CategoryGroceries])
	s.Equal([]float64{50, 0}, report.Datasets[models.CategoryDiningOut])
	s.Equal([]float64{0, 0}, report.Datasets[models.CategoryEntertainment])
}

func (s *AnalyticsServiceTestSuite) TestSpendingTrends_EmptyHistory() {
	s.mockTransactionRepo.EXPECT().
		GetSince(s.userID, gomock.Any()).
		Return([]models.Transaction{}, nil)

	report, err := s.service.SpendingTrends(s.userID, 6)

	s.NoError(err)
	s.Empty(report.Labels)
	s.Len(report.Datasets, len(models.AllCategories()))
	for _, series := range report.Datasets {
		s.Empty(series)
	}
}

func (s *AnalyticsServiceTestSuite) TestConfidenceInterval_KnownSample() {
	// n=5, mean 3, sample std ~1.5811, t(0.975, df=4) ~2.7764.
	interval := s.service.ConfidenceInterval([]float64{1, 2, 3, 4, 5}, 0.95)

	s.Equal(5, interval.SampleSize)
	s.InDelta(1.0368, interval.Lower, 0.001)
	s.InDelta(4.9632, interval.Upper, 0.001)
}

func (s *AnalyticsServiceTestSuite) TestConfidenceInterval_TooFewSamples() {
	interval := s.service.ConfidenceInterval([]float64{42}, 0.95)

	s.Zero(interval.Lower)
	s.Zero(interval.Upper)
	s.Equal(1, interval.SampleSize)
}

func (s *AnalyticsServiceTestSuite) TestConfidenceInterval_ZeroSpreadCollapses() {
	interval := s.service.ConfidenceInterval([]float64{10, 10, 10}, 0.95)

	s.InDelta(10.0, interval.Lower, 1e-9)
	s.InDelta(10.0, interval.Upper, 1e-9)
}

func (s *AnalyticsServiceTestSuite) TestConfidenceInterval_InvalidConfidenceUsesDefault() {
	interval := s.service.ConfidenceInterval([]float64{1, 2, 3}, 1.5)

	s.Equal(DefaultConfidenceLevel, interval.Confidence)
	s.Less(interval.Lower, interval.Upper)
}
