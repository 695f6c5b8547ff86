// Package summary computes derived views over a user's transaction set.
// Every function is a pure function of its input slice; nothing here is
// cached or persisted.
package summary

import (
	"sort"

	"fintrack-server/src/models"
)

type CategoryExpense struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// MonthBucket holds income and expense totals for one calendar month.
// Month is a year-month label like "2023-07" so the same month of different
// years never collapses into one bucket.
type MonthBucket struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

func TotalIncome(txns []models.Transaction) float64 {
	var total float64
	for _, t := range txns {
		if t.Type == models.TypeIncome {
			total += t.Amount
		}
	}
	return total
}

func TotalExpense(txns []models.Transaction) float64 {
	var total float64
	for _, t := range txns {
		if t.Type == models.TypeExpense {
			total += t.Amount
		}
	}
	return total
}

func Balance(txns []models.Transaction) float64 {
	return TotalIncome(txns) - TotalExpense(txns)
}

// ExpensesByCategory groups expense transactions by category name and sums
// their amounts. Each entry carries the color resolved from the given
// category set. Categories without expense transactions are omitted. Entries
// are sorted by name so output is deterministic.
func ExpensesByCategory(txns []models.Transaction, categories []models.Category) []CategoryExpense {
	totals := make(map[string]float64)
	for _, t := range txns {
		if t.Type != models.TypeExpense {
			continue
		}
		totals[t.Category] += t.Amount
	}

	var out []CategoryExpense
	for name, value := range totals {
		out = append(out, CategoryExpense{
			Name:  name,
			Value: value,
			Color: models.ResolveColor(name, categories),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Monthly buckets transactions by calendar month of their date, keyed by
// year+month. Months with no transactions are absent. Buckets are sorted
// chronologically ascending; the zero-padded label sorts lexicographically
// in date order.
func Monthly(txns []models.Transaction) []MonthBucket {
	buckets := make(map[string]*MonthBucket)
	for _, t := range txns {
		key := t.Date.UTC().Format("2006-01")
		b, ok := buckets[key]
		if !ok {
			b = &MonthBucket{Month: key}
			buckets[key] = b
		}
		if t.Type == models.TypeIncome {
			b.Income += t.Amount
		} else {
			b.Expense += t.Amount
		}
	}

	var out []MonthBucket
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}
