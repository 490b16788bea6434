package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finpulse/internal/models"
	"finpulse/internal/repositories"

	"github.com/google/uuid"
)

// ErrInvalidMonth is returned for month values outside 1-12.
var ErrInvalidMonth = errors.New("month must be between 1 and 12")

// Categories whose month-over-month swings are worth calling out on the
// dashboard. Essentials like groceries and transport are excluded since
// their totals are not very actionable.
var discretionaryCategories = []string{
	models.CategoryDiningOut,
	models.CategoryEntertainment,
	models.CategoryShopping,
}

const elevatedSpendRatio = 1.3

// reportService implements ReportServiceInterface
type reportService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetProfileRepositoryInterface
	analytics       AnalyticsServiceInterface
	healthScore     HealthScoreServiceInterface
	now             func() time.Time
}

// NewReportService creates a new report service
func NewReportService(
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetRepo repositories.BudgetProfileRepositoryInterface,
	analytics AnalyticsServiceInterface,
	healthScore HealthScoreServiceInterface,
) ReportServiceInterface {
	return &reportService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		analytics:       analytics,
		healthScore:     healthScore,
		now:             time.Now,
	}
}

// MonthlySummary assembles the report for one calendar month: per-category
// breakdown, budget position, anomaly count, health score, and insights.
func (s *reportService) MonthlySummary(userID uuid.UUID, year, month int) (*models.MonthlySummary, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
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

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	transactions, err := s.transactionRepo.GetByDateRange(userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load month transactions: %w", err)
	}

	anomalyCount, err := s.transactionRepo.CountAnomaliesInRange(userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to count anomalies: %w", err)
	}

	totalSpent := 0.0
	categoryTotals := make(map[string]float64)
	categoryCounts := make(map[string]int)
	for i := range transactions {
		amount := transactions[i].AmountFloat()
		totalSpent += amount
		categoryTotals[transactions[i].Category] += amount
		categoryCounts[transactions[i].Category]++
	}

	breakdown := make([]models.CategoryBreakdown, 0, len(models.AllCategories()))
	for _, category := range models.AllCategories() {
		breakdown = append(breakdown, models.CategoryBreakdown{
			Category:         category,
			Total:            categoryTotals[category],
			TransactionCount: categoryCounts[category],
		})
	}

	fixedTotal := models.MonthlyFixedTotal(fixedExpenses)
	monthlyBudget := profile.MonthlyBudget.InexactFloat64()
	savingsGoal := profile.SavingsGoal.InexactFloat64()
	remaining := monthlyBudget - totalSpent - fixedTotal

	summary := &models.MonthlySummary{
		Year:            year,
		Month:           month,
		TotalSpent:      totalSpent,
		FixedTotal:      fixedTotal,
		MonthlyBudget:   monthlyBudget,
		SavingsGoal:     savingsGoal,
		RemainingBudget: remaining,
		AnomalyCount:    int(anomalyCount),
		HealthScore:     s.healthScore.Score(totalSpent, monthlyBudget, fixedTotal, savingsGoal, int(anomalyCount)),
		Categories:      breakdown,
		GeneratedAt:     s.now(),
	}
	summary.Insights = s.buildInsights(userID, summary, categoryTotals)

	slog.Info("monthly summary generated",
		"user_id", userID,
		"year", year,
		"month", month,
		"transactions", len(transactions),
		"health_score", summary.HealthScore)

	return summary, nil
}

// buildInsights derives dashboard messages from the summary: savings pace,
// anomaly warnings, and discretionary categories running well above their
// trailing average.
func (s *reportService) buildInsights(userID uuid.UUID, summary *models.MonthlySummary, categoryTotals map[string]float64) []models.Insight {
	insights := make([]models.Insight, 0, 4)

	if summary.SavingsGoal > 0 {
		if summary.RemainingBudget >= summary.SavingsGoal {
			insights = append(insights, models.Insight{
				Type:    models.InsightSuccess,
				Message: fmt.Sprintf("You're on track to save $%.2f this month, meeting your $%.2f goal.", summary.RemainingBudget, summary.SavingsGoal),
			})
		} else {
			insights = append(insights, models.Insight{
				Type:    models.InsightWarning,
				Message: fmt.Sprintf("Projected savings of $%.2f fall short of your $%.2f goal.", summary.RemainingBudget, summary.SavingsGoal),
			})
		}
	}

	if summary.AnomalyCount > 0 {
		insights = append(insights, models.Insight{
			Type:    models.InsightWarning,
			Message: fmt.Sprintf("%d unusual transaction(s) were flagged this month. Review them to make sure nothing is off.", summary.AnomalyCount),
		})
	}

	for _, category := range discretionaryCategories {
		total, ok := categoryTotals[category]
		if !ok || total == 0 {
			continue
		}
		catStats, err := s.analytics.CategoryStatistics(userID, category, DefaultWindowMonths)
		if err != nil {
			if errors.Is(err, ErrNoSpendingHistory) {
				continue
			}
			slog.Warn("skipping insight for category",
				"category", category,
				"error", err)
			continue
		}
		if catStats.Mean > 0 && total > catStats.Mean*elevatedSpendRatio {
			pctAbove := (total/catStats.Mean - 1) * 100
			insights = append(insights, models.Insight{
				Type:    models.InsightInfo,
				Message: fmt.Sprintf("%s spending is %.0f%% above your recent average.", category, pctAbove),
			})
		}
	}

	return insights
}
