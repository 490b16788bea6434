package validation

import (
	"testing"

	"finpulse/internal/dto"
	"finpulse/internal/models"

	"github.com/stretchr/testify/suite"
)

// ValidatorTestSuite defines the test suite for the custom validation rules
type ValidatorTestSuite struct {
	suite.Suite
	validator *Validator
}

// SetupTest runs before each test
func (s *ValidatorTestSuite) SetupTest() {
	s.validator = NewValidator()
}

// TestValidatorTestSuite runs the test suite
func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) TestGetValidator_ReturnsSingleton() {
	first := GetValidator()
	second := GetValidator()
	s.Same(first, second)
}

func (s *ValidatorTestSuite) TestSpendingCategory_AcceptsKnownCategories() {
	for _, category := range models.AllCategories() {
		s.Run(category, func() {
			req := dto.AnomalyCheckRequest{Category: category, Amount: 10}
			s.NoError(s.validator.GetValidate().Struct(req))
		})
	}
}

func (s *ValidatorTestSuite) TestSpendingCategory_RejectsUnknownCategory() {
	req := dto.AnomalyCheckRequest{Category: "Rocketry", Amount: 10}
	err := s.validator.GetValidate().Struct(req)
	s.Error(err)
	s.Contains(err.Error(), "spending_category")
}

func (s *ValidatorTestSuite) TestWindowMonths_ZeroMeansDefault() {
	req := dto.StatisticsQuery{WindowMonths: 0}
	s.NoError(s.validator.GetValidate().Struct(req))
}

func (s *ValidatorTestSuite) TestWindowMonths_Bounds() {
	testCases := []struct {
		name    string
		months  int
		wantErr bool
	}{
		{"lower bound", MinWindowMonths, false},
		{"upper bound", MaxWindowMonths, false},
		{"typical", 6, false},
		{"above upper bound", MaxWindowMonths + 1, true},
		{"negative", -1, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := s.validator.GetValidate().Struct(dto.StatisticsQuery{WindowMonths: tc.months})
			if tc.wantErr {
				s.Error(err)
			} else {
				s.NoError(err)
			}
		})
	}
}

func (s *ValidatorTestSuite) TestConfidenceLevel_ZeroMeansDefault() {
	req := dto.ConfidenceIntervalRequest{Data: []float64{1, 2, 3}}
	s.NoError(s.validator.GetValidate().Struct(req))
}

func (s *ValidatorTestSuite) TestConfidenceLevel_MustBeStrictlyInsideUnitInterval() {
	testCases := []struct {
		name       string
		confidence float64
		wantErr    bool
	}{
		{"ninety five percent", 0.95, false},
		{"eighty percent", 0.80, false},
		{"just under one", 0.999, false},
		{"exactly one", 1.0, true},
		{"above one", 1.5, true},
		{"negative", -0.5, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			req := dto.ConfidenceIntervalRequest{Data: []float64{1, 2, 3}, Confidence: tc.confidence}
			err := s.validator.GetValidate().Struct(req)
			if tc.wantErr {
				s.Error(err)
			} else {
				s.NoError(err)
			}
		})
	}
}

func (s *ValidatorTestSuite) TestSimulationCount_ZeroMeansDefault() {
	s.NoError(s.validator.GetValidate().Struct(dto.SimulationRequest{Simulations: 0}))
}

func (s *ValidatorTestSuite) TestSimulationCount_Bounds() {
	testCases := []struct {
		name    string
		count   int
		wantErr bool
	}{
		{"lower bound", MinSimulationCount, false},
		{"upper bound", MaxSimulationCount, false},
		{"below lower bound", MinSimulationCount - 1, true},
		{"above upper bound", MaxSimulationCount + 1, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := s.validator.GetValidate().Struct(dto.SimulationRequest{Simulations: tc.count})
			if tc.wantErr {
				s.Error(err)
			} else {
				s.NoError(err)
			}
		})
	}
}

func (s *ValidatorTestSuite) TestSimulationAdjustments_KeysMustBeCategories() {
	valid := dto.SimulationRequest{
		Adjustments: map[string]float64{models.CategoryDiningOut: -50},
	}
	s.NoError(s.validator.GetValidate().Struct(valid))

	invalid := dto.SimulationRequest{
		Adjustments: map[string]float64{"Yachts": -50},
	}
	s.Error(s.validator.GetValidate().Struct(invalid))
}

func (s *ValidatorTestSuite) TestExpenseFrequency_AllowedValues() {
	testCases := []struct {
		name      string
		frequency string
		wantErr   bool
	}{
		{"monthly", models.FrequencyMonthly, false},
		{"weekly", models.FrequencyWeekly, false},
		{"empty means default", "", false},
		{"uppercase accepted", "MONTHLY", false},
		{"hourly rejected", "hourly", true},
		{"yearly rejected", "yearly", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			req := dto.AddFixedExpenseRequest{Name: "Rent", Amount: 800, Frequency: tc.frequency}
			err := s.validator.GetValidate().Struct(req)
			if tc.wantErr {
				s.Error(err)
			} else {
				s.NoError(err)
			}
		})
	}
}

func (s *ValidatorTestSuite) TestPositiveAmount_RejectsNonPositive() {
	testCases := []struct {
		name    string
		amount  float64
		wantErr bool
	}{
		{"positive", 42.50, false},
		{"small positive", 0.01, false},
		{"negative", -10, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			req := dto.CreateTransactionRequest{Amount: tc.amount, Category: models.CategoryGroceries}
			err := s.validator.GetValidate().Struct(req)
			if tc.wantErr {
				s.Error(err)
			} else {
				s.NoError(err)
			}
		})
	}
}

func (s *ValidatorTestSuite) TestErrorMessagesUseJSONFieldNames() {
	req := dto.AnomalyCheckRequest{Category: "Rocketry", Amount: 10}
	err := s.validator.GetValidate().Struct(req)
	s.Error(err)
	s.Contains(err.Error(), "category")
}
