package domain

import (
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Tie-breaks reproduce localeCompare(..., 'ja'). A collate.Collator keeps
// mutable iterator state across CompareString calls, so instances are pooled
// instead of shared between request goroutines.
var collatorPool = sync.Pool{
	New: func() interface{} {
		return collate.New(language.Japanese)
	},
}

func compareNames(a, b string) int {
	c := collatorPool.Get().(*collate.Collator)
	defer collatorPool.Put(c)
	return c.CompareString(a, b)
}

func orderOrLast(order *int) int {
	if order == nil {
		return int(^uint(0) >> 1) // missing order sorts after every explicit one
	}
	return *order
}

// SortCategories orders by sort order ascending, ties broken by locale-aware
// name comparison.
func SortCategories(categories []Category) {
	sort.SliceStable(categories, func(i, j int) bool {
		oi, oj := orderOrLast(categories[i].Order), orderOrLast(categories[j].Order)
		if oi != oj {
			return oi < oj
		}
		return compareNames(categories[i].Name, categories[j].Name) < 0
	})
}

// SortTags applies the same ordering rule as SortCategories.
func SortTags(tags []Tag) {
	sort.SliceStable(tags, func(i, j int) bool {
		oi, oj := orderOrLast(tags[i].Order), orderOrLast(tags[j].Order)
		if oi != oj {
			return oi < oj
		}
		return compareNames(tags[i].Name, tags[j].Name) < 0
	})
}

func SortPaymentMethods(methods []PaymentMethod) {
	sort.SliceStable(methods, func(i, j int) bool {
		if methods[i].Order != methods[j].Order {
			return methods[i].Order < methods[j].Order
		}
		return compareNames(methods[i].Name, methods[j].Name) < 0
	})
}

// SortExpensesByDateDesc orders newest first; a zero date sorts as oldest.
func SortExpensesByDateDesc(expenses []Expense) {
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date.After(expenses[j].Date)
	})
}
