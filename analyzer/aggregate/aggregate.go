// Package aggregate computes grouped-sum views over a frozen transaction
// snapshot. Recomputing over the same snapshot yields identical results.
package aggregate

import (
	"sort"

	"github.com/Puneet01302/my-expense-dashboard/analyzer/common"
	"github.com/shopspring/decimal"
)

// TopVendorLimit caps the vendor view.
const TopVendorLimit = 10

// MonthTotal is the summed amount for one year-month.
type MonthTotal struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// CategoryTotal is the summed amount for one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// VendorTotal is the summed amount for one vendor description.
type VendorTotal struct {
	Description string          `json:"description"`
	Total       decimal.Decimal `json:"total"`
}

// Summary bundles the three independent aggregate views.
type Summary struct {
	Monthly    []MonthTotal    `json:"monthly_spend"`
	Categories []CategoryTotal `json:"category_spend"`
	TopVendors []VendorTotal   `json:"top_vendors"`
}

// Summarize computes all three views. The input slice is read, never
// mutated.
func Summarize(transactions []common.Transaction) Summary {
	return Summary{
		Monthly:    MonthlySpend(transactions),
		Categories: CategorySpend(transactions),
		TopVendors: TopVendors(transactions),
	}
}

// MonthlySpend sums amounts per year-month, ordered by month ascending.
func MonthlySpend(transactions []common.Transaction) []MonthTotal {
	totals := map[string]decimal.Decimal{}
	for _, tx := range transactions {
		month := tx.Month()
		totals[month] = totals[month].Add(tx.Amount)
	}

	months := make([]string, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	sort.Strings(months)

	result := make([]MonthTotal, 0, len(months))
	for _, month := range months {
		result = append(result, MonthTotal{Month: month, Total: totals[month]})
	}
	return result
}

// CategorySpend sums amounts per category, ordered by category name so the
// output is deterministic.
func CategorySpend(transactions []common.Transaction) []CategoryTotal {
	totals := map[string]decimal.Decimal{}
	for _, tx := range transactions {
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}

	categories := make([]string, 0, len(totals))
	for category := range totals {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	result := make([]CategoryTotal, 0, len(categories))
	for _, category := range categories {
		result = append(result, CategoryTotal{Category: category, Total: totals[category]})
	}
	return result
}

// TopVendors sums amounts per description and returns the top entries by
// summed amount descending, at most TopVendorLimit of them. Equal totals
// keep first-encountered order.
func TopVendors(transactions []common.Transaction) []VendorTotal {
	totals := map[string]decimal.Decimal{}
	order := []string{}
	for _, tx := range transactions {
		if _, seen := totals[tx.Description]; !seen {
			order = append(order, tx.Description)
		}
		totals[tx.Description] = totals[tx.Description].Add(tx.Amount)
	}

	result := make([]VendorTotal, 0, len(order))
	for _, description := range order {
		result = append(result, VendorTotal{Description: description, Total: totals[description]})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Total.GreaterThan(result[j].Total)
	})

	if len(result) > TopVendorLimit {
		result = result[:TopVendorLimit]
	}
	return result
}
