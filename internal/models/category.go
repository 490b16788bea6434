package models

// Spending categories form a closed set; statistics and forecasts are keyed
// per category, so free-form values would silently fragment the monthly series.
const (
	CategoryGroceries      = "Food & Groceries"
	CategoryDiningOut      = "Dining Out"
	CategoryEntertainment  = "Entertainment"
	CategoryTransportation = "Transportation"
	CategoryShopping       = "Shopping"
	CategoryOther          = "Other"
)

// AllCategories returns all valid spending categories
func AllCategories() []string {
	return []string{
		CategoryGroceries,
		CategoryDiningOut,
		CategoryEntertainment,
		CategoryTransportation,
		CategoryShopping,
		CategoryOther,
	}
}

// IsValidCategory checks if a category string is valid
func IsValidCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}
