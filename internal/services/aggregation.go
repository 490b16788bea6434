package services

import (
	"sort"

	"finpulse/internal/models"
)

// monthlyTotals groups transaction amounts into calendar-month buckets and
// returns the bucket keys in calendar order. Insertion order of the input is
// irrelevant since totals are summed.
func monthlyTotals(transactions []models.Transaction) (map[string]float64, []string) {
	totals := make(map[string]float64)
	for i := range transactions {
		totals[transactions[i].MonthKey()] += transactions[i].AmountFloat()
	}
	return totals, sortedKeys(totals)
}

// monthlyCategoryTotals groups amounts by calendar month and category.
func monthlyCategoryTotals(transactions []models.Transaction) (map[string]map[string]float64, []string) {
	totals := make(map[string]map[string]float64)
	for i := range transactions {
		txn := &transactions[i]
		month := txn.MonthKey()
		if totals[month] == nil {
			totals[month] = make(map[string]float64)
		}
		totals[month][txn.Category] += txn.AmountFloat()
	}

	keys := make([]string, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return totals, keys
}

// sortedKeys returns the month keys of a totals map in calendar order.
// YYYY-MM keys sort lexicographically into chronological order.
func sortedKeys(totals map[string]float64) []string {
	keys := make([]string, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// orderedValues flattens a totals map into a slice aligned with keys.
func orderedValues(totals map[string]float64, keys []string) []float64 {
	values := make([]float64, len(keys))
	for i, key := range keys {
		values[i] = totals[key]
	}
	return values
}
