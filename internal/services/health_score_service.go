package services

import "math"

// Health score component weights. The four components sum to 95 plus the
// 10-point anomaly bonus, then the total is clamped into [0, 100].
const (
	budgetComponentPoints      = 40.0
	savingsComponentPoints     = 30.0
	consistencyComponentPoints = 15.0
	anomalyFreePoints          = 10.0
	fewAnomaliesPoints         = 5.0
	fewAnomaliesLimit          = 2
)

// healthScoreService implements HealthScoreServiceInterface. It is a pure
// calculator with no dependencies.
type healthScoreService struct{}

// NewHealthScoreService creates a new health score service
func NewHealthScoreService() HealthScoreServiceInterface {
	return &healthScoreService{}
}

// Score computes the 0-100 budget health score from a month's figures.
//
// Budget adherence awards up to 40 points, scaled by how much of the budget
// total expenses consume; spending over budget scores zero here. Savings
// awards 30 points when the remainder covers the goal, prorated below it.
// Consistency currently awards a flat 15 points. Anomaly hygiene awards 10
// points for a clean month and 5 for one or two flagged transactions.
// The sum is truncated to an integer and clamped into [0, 100].
func (s *healthScoreService) Score(totalSpent, monthlyBudget, fixedTotal, savingsGoal float64, anomalyCount int) int {
	score := 0.0

	totalExpenses := totalSpent + fixedTotal
	if totalExpenses <= monthlyBudget {
		ratio := 1.0
		if monthlyBudget > 0 {
			ratio = totalExpenses / monthlyBudget
		}
		score += budgetComponentPoints * (1 - ratio*0.5)
	}

	remaining := monthlyBudget - totalExpenses
	if remaining >= savingsGoal {
		score += savingsComponentPoints
	} else if remaining > 0 && savingsGoal > 0 {
		score += savingsComponentPoints * (remaining / savingsGoal)
	}

	score += consistencyComponentPoints

	switch {
	case anomalyCount == 0:
		score += anomalyFreePoints
	case anomalyCount <= fewAnomaliesLimit:
		score += fewAnomaliesPoints
	}

	final := int(math.Trunc(score))
	if final < 0 {
		return 0
	}
	if final > 100 {
		return 100
	}
	return final
}
