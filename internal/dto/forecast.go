package dto

// SimulationRequest configures a Monte Carlo forecast run. Adjustments are
// per-category deltas applied to historical means for what-if scenarios;
// positive values simulate spending more, negative values spending less.
type SimulationRequest struct {
	Simulations int                `json:"simulations" validate:"simulation_count"`
	Adjustments map[string]float64 `json:"adjustments" validate:"omitempty,dive,keys,spending_category,endkeys"`
}
