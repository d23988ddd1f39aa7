package domain

import (
	"math"
	"sort"
)

// UncategorizedLabel stands in for an empty bigCategory in breakdowns.
const UncategorizedLabel = "未分類"

// ExpenseFilter describes the search predicates. Dimensions are ANDed;
// membership within one dimension is ORed. Year and month only apply when both
// are set.
type ExpenseFilter struct {
	Year           int
	Month          int
	Categories     []string
	Tags           []string
	PaymentMethods []string
}

func (f ExpenseFilter) hasMonth() bool {
	return f.Year > 0 && f.Month > 0
}

// Matches reports whether one expense passes every predicate of the filter.
func (f ExpenseFilter) Matches(expense Expense) bool {
	if f.hasMonth() {
		if expense.Date.IsZero() {
			return false
		}
		if expense.Date.Year() != f.Year || int(expense.Date.Month()) != f.Month {
			return false
		}
	}

	if len(f.Categories) > 0 && !containsString(f.Categories, expense.BigCategory) {
		return false
	}

	if len(f.Tags) > 0 {
		expenseTags := SplitTags(expense.Tags)
		matched := false
		for _, want := range f.Tags {
			if containsString(expenseTags, want) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if len(f.PaymentMethods) > 0 && !containsString(f.PaymentMethods, expense.PaymentMethod) {
		return false
	}

	return true
}

// FilterExpenses returns the subset passing the filter, preserving input order.
func FilterExpenses(expenses []Expense, filter ExpenseFilter) []Expense {
	var filtered []Expense
	for _, expense := range expenses {
		if filter.Matches(expense) {
			filtered = append(filtered, expense)
		}
	}
	return filtered
}

// TotalAmount sums the amounts of the given expenses.
func TotalAmount(expenses []Expense) float64 {
	var total float64
	for _, expense := range expenses {
		total += expense.Amount
	}
	return total
}

// MonthlyBucket is the derived per-month aggregate. It is recomputed on every
// read and never persisted.
type MonthlyBucket struct {
	Year              int                `json:"year"`
	Month             int                `json:"month"`
	Total             float64            `json:"total"`
	Count             int                `json:"count"`
	CategoryBreakdown map[string]float64 `json:"category_breakdown"`
}

// MonthlyBuckets partitions expenses by calendar (year, month), newest month
// first. Expenses without a date are skipped; months without expenses are
// never materialized.
func MonthlyBuckets(expenses []Expense) []MonthlyBucket {
	type key struct{ year, month int }
	byMonth := make(map[key]*MonthlyBucket)

	for _, expense := range expenses {
		if expense.Date.IsZero() {
			continue
		}
		k := key{expense.Date.Year(), int(expense.Date.Month())}
		bucket, ok := byMonth[k]
		if !ok {
			bucket = &MonthlyBucket{
				Year:              k.year,
				Month:             k.month,
				CategoryBreakdown: make(map[string]float64),
			}
			byMonth[k] = bucket
		}
		bucket.Total += expense.Amount
		bucket.Count++

		category := expense.BigCategory
		if category == "" {
			category = UncategorizedLabel
		}
		bucket.CategoryBreakdown[category] += expense.Amount
	}

	buckets := make([]MonthlyBucket, 0, len(byMonth))
	for _, bucket := range byMonth {
		buckets = append(buckets, *bucket)
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Year != buckets[j].Year {
			return buckets[i].Year > buckets[j].Year
		}
		return buckets[i].Month > buckets[j].Month
	})
	return buckets
}

// TimeSeries returns the buckets re-sorted oldest first for charting, leaving
// the display ordering untouched.
func TimeSeries(buckets []MonthlyBucket) []MonthlyBucket {
	series := make([]MonthlyBucket, len(buckets))
	copy(series, buckets)
	sort.Slice(series, func(i, j int) bool {
		if series[i].Year != series[j].Year {
			return series[i].Year < series[j].Year
		}
		return series[i].Month < series[j].Month
	})
	return series
}

// CategoryShare is one slice of a bucket's category breakdown. Percentage is
// rounded to one decimal place.
type CategoryShare struct {
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// CategoryShares converts a breakdown into shares of the bucket total, largest
// first. A bucket always has a positive total since empty buckets are never
// created.
func CategoryShares(breakdown map[string]float64, total float64) []CategoryShare {
	shares := make([]CategoryShare, 0, len(breakdown))
	for name, amount := range breakdown {
		shares = append(shares, CategoryShare{
			Name:       name,
			Amount:     amount,
			Percentage: math.Round(amount/total*1000) / 10,
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Amount != shares[j].Amount {
			return shares[i].Amount > shares[j].Amount
		}
		return shares[i].Name < shares[j].Name
	})
	return shares
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
