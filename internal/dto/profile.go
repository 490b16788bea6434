package dto

// UpsertProfileRequest creates or replaces the caller's budget profile.
type UpsertProfileRequest struct {
	Name          string  `json:"name" validate:"max=100"`
	MonthlyBudget float64 `json:"monthly_budget" validate:"min=0"`
	SavingsGoal   float64 `json:"savings_goal" validate:"min=0"`
}

// AddFixedExpenseRequest adds a recurring obligation to the profile.
type AddFixedExpenseRequest struct {
	Name      string  `json:"name" validate:"required,max=100"`
	Amount    float64 `json:"amount" validate:"required,positive_amount"`
	Frequency string  `json:"frequency" validate:"omitempty,expense_frequency"`
}
