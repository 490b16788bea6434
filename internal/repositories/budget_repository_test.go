package repositories

import (
	"testing"

	"finpulse/internal/database"
	"finpulse/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// BudgetProfileRepositorySuite defines the test suite for BudgetProfileRepository
type BudgetProfileRepositorySuite struct {
	suite.Suite
	db         *database.DB
	repo       BudgetProfileRepositoryInterface
	testUserID uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *BudgetProfileRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewBudgetProfileRepository(s.db.DB)
	s.testUserID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *BudgetProfileRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestBudgetProfileRepositorySuite runs the test suite
func TestBudgetProfileRepositorySuite(t *testing.T) {
	suite.Run(t, new(BudgetProfileRepositorySuite))
}

func (s *BudgetProfileRepositorySuite) TestUpsert_CreatesProfile() {
	profile := &models.BudgetProfile{
		UserID:        s.testUserID,
		Name:          "Alex",
		MonthlyBudget: decimal.NewFromInt(2000),
		SavingsGoal:   decimal.NewFromInt(300),
	}

	err := s.repo.Upsert(profile)
	s.NoError(err)

	found, err := s.repo.GetByUserID(s.testUserID)
	s.NoError(err)
	s.Equal("Alex", found.Name)
	s.True(found.MonthlyBudget.Equal(decimal.NewFromInt(2000)))
}

func (s *BudgetProfileRepositorySuite) TestUpsert_ReplacesExistingProfile() {
	s.NoError(s.repo.Upsert(&models.BudgetProfile{
		UserID:        s.testUserID,
		Name:          "Alex",
		MonthlyBudget: decimal.NewFromInt(2000),
		SavingsGoal:   decimal.NewFromInt(300),
	}))

	s.NoError(s.repo.Upsert(&models.BudgetProfile{
		UserID:        s.testUserID,
		Name:          "Alex Updated",
		MonthlyBudget: decimal.NewFromInt(2500),
		SavingsGoal:   decimal.NewFromInt(500),
	}))

	found, err := s.repo.GetByUserID(s.testUserID)
	s.NoError(err)
	s.Equal("Alex Updated", found.Name)
	s.True(found.MonthlyBudget.Equal(decimal.NewFromInt(2500)))
	s.True(found.SavingsGoal.Equal(decimal.NewFromInt(500)))
}

func (s *BudgetProfileRepositorySuite) TestUpsert_NegativeBudgetRejected() {
	err := s.repo.Upsert(&models.BudgetProfile{
		UserID:        s.testUserID,
		MonthlyBudget: decimal.NewFromInt(-100),
	})
	s.ErrorIs(err, models.ErrNegativeBudget)
}

func (s *BudgetProfileRepositorySuite) TestGetByUserID_NotFound() {
	found, err := s.repo.GetByUserID(uuid.New())
	s.Nil(found)
	s.ErrorIs(err, ErrBudgetProfileNotFound)
}

func (s *BudgetProfileRepositorySuite) TestAddFixedExpense() {
	expense := &models.FixedExpense{
		UserID: s.testUserID,
		Name:   "Rent",
		Amount: decimal.NewFromInt(800),
	}

	err := s.repo.AddFixedExpense(expense)
	s.NoError(err)
	s.NotEqual(uuid.Nil, expense.ID)
	s.Equal(models.FrequencyMonthly, expense.Frequency)
}

func (s *BudgetProfileRepositorySuite) TestAddFixedExpense_InvalidFrequencyRejected() {
	err := s.repo.AddFixedExpense(&models.FixedExpense{
		UserID:    s.testUserID,
		Name:      "Rent",
		Amount:    decimal.NewFromInt(800),
		Frequency: "hourly",
	})
	s.ErrorIs(err, models.ErrInvalidFrequency)
}

func (s *BudgetProfileRepositorySuite) TestGetFixedExpenses_OrderedByAmount() {
	s.NoError(s.repo.AddFixedExpense(&models.FixedExpense{
		UserID: s.testUserID, Name: "Netflix", Amount: decimal.NewFromInt(15),
	}))
	s.NoError(s.repo.AddFixedExpense(&models.FixedExpense{
		UserID: s.testUserID, Name: "Rent", Amount: decimal.NewFromInt(800),
	}))
	s.NoError(s.repo.AddFixedExpense(&models.FixedExpense{
		UserID: s.testUserID, Name: "Gym", Amount: decimal.NewFromInt(30),
	}))

	expenses, err := s.repo.GetFixedExpenses(s.testUserID)
	s.NoError(err)
	s.Len(expenses, 3)
	s.Equal("Rent", expenses[0].Name)
	s.Equal("Netflix", expenses[2].Name)
}

func (s *BudgetProfileRepositorySuite) TestDeleteFixedExpense() {
	expense := &models.FixedExpense{
		UserID: s.testUserID,
		Name:   "Rent",
		Amount: decimal.NewFromInt(800),
	}
	s.NoError(s.repo.AddFixedExpense(expense))

	s.NoError(s.repo.DeleteFixedExpense(expense.ID, s.testUserID))

	expenses, err := s.repo.GetFixedExpenses(s.testUserID)
	s.NoError(err)
	s.Empty(expenses)
}

func (s *BudgetProfileRepositorySuite) TestDeleteFixedExpense_NotFound() {
	err := s.repo.DeleteFixedExpense(uuid.New(), s.testUserID)
	s.ErrorIs(err, ErrFixedExpenseNotFound)
}

func (s *BudgetProfileRepositorySuite) TestDeleteFixedExpense_ScopedToUser() {
	expense := &models.FixedExpense{
		UserID: s.testUserID,
		Name:   "Rent",
		Amount: decimal.NewFromInt(800),
	}
	s.NoError(s.repo.AddFixedExpense(expense))

	err := s.repo.DeleteFixedExpense(expense.ID, uuid.New())
	s.ErrorIs(err, ErrFixedExpenseNotFound)
}

func (s *BudgetProfileRepositorySuite) TestDeleteFixedExpensesByUserID() {
	s.NoError(s.repo.AddFixedExpense(&models.FixedExpense{
		UserID: s.testUserID, Name: "Rent", Amount: decimal.NewFromInt(800),
	}))
	otherUser := uuid.New()
	s.NoError(s.repo.AddFixedExpense(&models.FixedExpense{
		UserID: otherUser, Name: "Rent", Amount: decimal.NewFromInt(900),
	}))

	s.NoError(s.repo.DeleteFixedExpensesByUserID(s.testUserID))

	mine, err := s.repo.GetFixedExpenses(s.testUserID)
	s.NoError(err)
	s.Empty(mine)

	theirs, err := s.repo.GetFixedExpenses(otherUser)
	s.NoError(err)
	s.Len(theirs, 1)
}
