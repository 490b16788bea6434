package services

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"finpulse/internal/models"
	"finpulse/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	demoMonths        = 6
	demoAnomalyZScore = 3.5
)

// demoCategoryParams drives one category's synthetic spending pattern:
// monthly totals drawn from N(monthlyMean, monthlyStd) and split across
// perMonth transactions constrained to [minAmount, maxAmount].
type demoCategoryParams struct {
	category    string
	monthlyMean float64
	monthlyStd  float64
	perMonth    int
	minAmount   float64
	maxAmount   float64
}

var demoParams = []demoCategoryParams{
	{models.CategoryGroceries, 200, 40, 8, 15, 85},
	{models.CategoryDiningOut, 150, 70, 12, 8, 50},
	{models.CategoryEntertainment, 80, 50, 4, 10, 100},
	{models.CategoryTransportation, 120, 30, 15, 5, 25},
	{models.CategoryShopping, 100, 80, 3, 15, 200},
	{models.CategoryOther, 50, 40, 2, 10, 100},
}

// demoAnomaly is an intentionally outsized transaction injected so anomaly
// views have something to show out of the box.
type demoAnomaly struct {
	monthOffset int
	category    string
	amount      float64
	description string
}

var demoAnomalies = []demoAnomaly{
	{2, models.CategoryTransportation, 300, "Car repair"},
	{4, models.CategoryShopping, 250, "New shoes"},
	{5, models.CategoryDiningOut, 180, "Birthday dinner"},
}

var demoDescriptions = map[string][]string{
	models.CategoryGroceries:      {"Grocery shopping", "Supermarket", "Weekly groceries", "Fresh produce", "Farmers market", "Corner store"},
	models.CategoryDiningOut:      {"Restaurant", "Lunch", "Coffee shop", "Fast food", "Dinner out", "Cafe", "Takeout"},
	models.CategoryEntertainment:  {"Movie tickets", "Concert", "Streaming service", "Game purchase", "Books", "Museum entry", "Sports event"},
	models.CategoryTransportation: {"Gas", "Uber", "Taxi", "Bus fare", "Parking", "Train ticket", "Lyft"},
	models.CategoryShopping:       {"Clothing", "Electronics", "Home goods", "Online shopping", "Department store", "Shoes", "Accessories"},
	models.CategoryOther:          {"Miscellaneous", "Gift", "Donation", "Personal care", "Pharmacy", "Pet supplies"},
}

var demoFixedExpenses = []struct {
	name   string
	amount float64
}{
	{"Rent", 800},
	{"Netflix", 15},
	{"Spotify", 10},
	{"Gym Membership", 30},
}

// demoDataService implements DemoDataServiceInterface
type demoDataService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetProfileRepositoryInterface
	rng             *rand.Rand
	now             func() time.Time
}

// NewDemoDataService creates a demo data service with time-seeded randomness.
func NewDemoDataService(transactionRepo repositories.TransactionRepositoryInterface, budgetRepo repositories.BudgetProfileRepositoryInterface) DemoDataServiceInterface {
	return NewDemoDataServiceWithSource(transactionRepo, budgetRepo, rand.NewSource(time.Now().UnixNano()))
}

// NewDemoDataServiceWithSource creates a demo data service drawing from the
// given source, so tests can seed deterministically.
func NewDemoDataServiceWithSource(transactionRepo repositories.TransactionRepositoryInterface, budgetRepo repositories.BudgetProfileRepositoryInterface, src rand.Source) DemoDataServiceInterface {
	return &demoDataService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		rng:             rand.New(src),
		now:             time.Now,
	}
}

// Generate wipes the user's data and seeds six months of synthetic history:
// per-category spending drawn from configured distributions, three injected
// anomalies, a demo budget profile, and a set of fixed expenses.
func (s *demoDataService) Generate(userID uuid.UUID) (*DemoDataSummary, error) {
	if err := s.transactionRepo.DeleteByUserID(userID); err != nil {
		return nil, fmt.Errorf("failed to clear transactions: %w", err)
	}
	if err := s.budgetRepo.DeleteFixedExpensesByUserID(userID); err != nil {
		return nil, fmt.Errorf("failed to clear fixed expenses: %w", err)
	}

	profile := &models.BudgetProfile{
		UserID:        userID,
		Name:          "Demo User",
		MonthlyBudget: decimal.NewFromInt(2000),
		SavingsGoal:   decimal.NewFromInt(300),
	}
	if err := s.budgetRepo.Upsert(profile); err != nil {
		return nil, fmt.Errorf("failed to seed budget profile: %w", err)
	}

	for _, fixed := range demoFixedExpenses {
		expense := &models.FixedExpense{
			UserID:    userID,
			Name:      fixed.name,
			Amount:    decimal.NewFromFloat(fixed.amount),
			Frequency: models.FrequencyMonthly,
		}
		if err := s.budgetRepo.AddFixedExpense(expense); err != nil {
			return nil, fmt.Errorf("failed to seed fixed expense: %w", err)
		}
	}

	transactions := s.buildTransactions(userID)
	if err := s.transactionRepo.CreateBatch(transactions); err != nil {
		return nil, fmt.Errorf("failed to seed transactions: %w", err)
	}

	slog.Info("demo data generated",
		"user_id", userID,
		"transactions", len(transactions),
		"months", demoMonths)

	return &DemoDataSummary{
		TransactionCount:  len(transactions),
		FixedExpenseCount: len(demoFixedExpenses),
		Months:            demoMonths,
	}, nil
}

func (s *demoDataService) buildTransactions(userID uuid.UUID) []models.Transaction {
	transactions := make([]models.Transaction, 0, 256)
	startDate := s.now().AddDate(0, 0, -demoMonths*daysPerWindowMonth)

	for monthOffset := 0; monthOffset < demoMonths; monthOffset++ {
		monthStart := startDate.AddDate(0, 0, daysPerWindowMonth*monthOffset)

		for _, params := range demoParams {
			monthlyTotal := params.monthlyMean + s.rng.NormFloat64()*params.monthlyStd
			if monthlyTotal <= 0 {
				continue
			}

			amounts := s.splitAmounts(monthlyTotal, params.perMonth, params.minAmount, params.maxAmount)
			for i, amount := range amounts {
				// Spread purchases through the month with a little jitter.
				dayOffset := float64(daysPerWindowMonth)/float64(len(amounts))*float64(i) + s.rng.Float64()*4 - 2
				if dayOffset < 0 {
					dayOffset = 0
				}
				if dayOffset > 29 {
					dayOffset = 29
				}

				pool := demoDescriptions[params.category]
				transactions = append(transactions, models.Transaction{
					UserID:      userID,
					OccurredAt:  monthStart.AddDate(0, 0, int(dayOffset)),
					Amount:      decimal.NewFromFloat(amount).Round(2),
					Category:    params.category,
					Description: pool[s.rng.Intn(len(pool))],
				})
			}
		}

		for _, anomaly := range demoAnomalies {
			if anomaly.monthOffset != monthOffset {
				continue
			}
			transactions = append(transactions, models.Transaction{
				UserID:      userID,
				OccurredAt:  monthStart.AddDate(0, 0, 5+s.rng.Intn(20)),
				Amount:      decimal.NewFromFloat(anomaly.amount),
				Category:    anomaly.category,
				Description: anomaly.description,
				IsAnomaly:   true,
				ZScore:      demoAnomalyZScore,
			})
		}
	}

	return transactions
}

// splitAmounts divides a monthly total into count individual purchases.
// Proportions come from normalized exponential draws (a flat Dirichlet),
// then each amount is clipped into [minAmount, maxAmount] and the whole set
// rescaled so it still sums to the total. The bounds are pre-rescale
// targets: the final rescale preserves the total exactly and may leave
// individual amounts slightly outside [minAmount, maxAmount].
func (s *demoDataService) splitAmounts(total float64, count int, minAmount, maxAmount float64) []float64 {
	amounts := make([]float64, count)
	sum := 0.0
	for i := range amounts {
		amounts[i] = s.rng.ExpFloat64()
		sum += amounts[i]
	}

	clippedSum := 0.0
	for i := range amounts {
		amount := amounts[i] / sum * total
		if amount < minAmount {
			amount = minAmount
		}
		if amount > maxAmount {
			amount = maxAmount
		}
		amounts[i] = amount
		clippedSum += amount
	}

	scale := total / clippedSum
	for i := range amounts {
		amounts[i] *= scale
	}
	return amounts
}
