package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func sampleExpenses() []Expense {
	return []Expense{
		{ID: "e1", Date: date(2024, 1, 10), Amount: 1000, BigCategory: "食費", Tags: "ランチ, 外食", PaymentMethod: "現金"},
		{ID: "e2", Date: date(2024, 1, 20), Amount: 500, BigCategory: "食費", Tags: "カフェ", PaymentMethod: "クレジットカード"},
		{ID: "e3", Date: date(2024, 2, 5), Amount: 300, BigCategory: "交通費", Tags: "", PaymentMethod: "PayPay"},
	}
}

func TestMonthlyBuckets_PartitionsByCalendarMonth(t *testing.T) {
	buckets := MonthlyBuckets(sampleExpenses())

	assert.Equal(t, 2, len(buckets))

	// Newest month first.
	assert.Equal(t, 2024, buckets[0].Year)
	assert.Equal(t, 2, buckets[0].Month)
	assert.Equal(t, 300.0, buckets[0].Total)
	assert.Equal(t, 1, buckets[0].Count)

	assert.Equal(t, 1, buckets[1].Month)
	assert.Equal(t, 1500.0, buckets[1].Total)
	assert.Equal(t, 2, buckets[1].Count)
	assert.Equal(t, 1500.0, buckets[1].CategoryBreakdown["食費"])
}

func TestMonthlyBuckets_SkipsZeroDates(t *testing.T) {
	expenses := []Expense{
		{ID: "e1", Amount: 100, BigCategory: "食費"},
		{ID: "e2", Date: date(2024, 3, 1), Amount: 200, BigCategory: "食費"},
	}

	buckets := MonthlyBuckets(expenses)

	assert.Equal(t, 1, len(buckets))
	assert.Equal(t, 200.0, buckets[0].Total)
}

func TestMonthlyBuckets_UncategorizedLabel(t *testing.T) {
	expenses := []Expense{
		{ID: "e1", Date: date(2024, 1, 1), Amount: 100, BigCategory: ""},
	}

	buckets := MonthlyBuckets(expenses)

	assert.Equal(t, 100.0, buckets[0].CategoryBreakdown[UncategorizedLabel])
}

func TestMonthlyBuckets_Idempotent(t *testing.T) {
	expenses := sampleExpenses()

	first := MonthlyBuckets(expenses)
	second := MonthlyBuckets(expenses)

	assert.Equal(t, first, second)
}

func TestFilterExpenses_MonthAndCategory(t *testing.T) {
	filter := ExpenseFilter{Year: 2024, Month: 1, Categories: []string{"食費"}}

	filtered := FilterExpenses(sampleExpenses(), filter)

	assert.Equal(t, 2, len(filtered))
	assert.Equal(t, 1500.0, TotalAmount(filtered))
}

func TestFilterExpenses_YearWithoutMonthIgnored(t *testing.T) {
	filter := ExpenseFilter{Year: 2024}

	filtered := FilterExpenses(sampleExpenses(), filter)

	assert.Equal(t, 3, len(filtered))
}

func TestFilterExpenses_TagMatchIsExact(t *testing.T) {
	expenses := []Expense{
		{ID: "e1", Date: date(2024, 1, 1), Amount: 100, BigCategory: "食費", Tags: "タグ1, タグ2"},
		{ID: "e2", Date: date(2024, 1, 2), Amount: 200, BigCategory: "食費", Tags: "サブタグ1"},
	}
	filter := ExpenseFilter{Tags: []string{"タグ1"}}

	filtered := FilterExpenses(expenses, filter)

	assert.Equal(t, 1, len(filtered))
	assert.Equal(t, "e1", filtered[0].ID)
}

func TestFilterExpenses_DimensionsAreANDed(t *testing.T) {
	filter := ExpenseFilter{
		Categories:     []string{"食費"},
		PaymentMethods: []string{"PayPay"},
	}

	filtered := FilterExpenses(sampleExpenses(), filter)

	assert.Empty(t, filtered)
}

func TestFilterExpenses_ValuesWithinDimensionAreORed(t *testing.T) {
	filter := ExpenseFilter{PaymentMethods: []string{"現金", "PayPay"}}

	filtered := FilterExpenses(sampleExpenses(), filter)

	assert.Equal(t, 2, len(filtered))
}

func TestFilterExpenses_ZeroDateFailsMonthFilter(t *testing.T) {
	expenses := []Expense{{ID: "e1", Amount: 100, BigCategory: "食費"}}
	filter := ExpenseFilter{Year: 2024, Month: 1}

	filtered := FilterExpenses(expenses, filter)

	assert.Empty(t, filtered)
}

func TestTimeSeries_OldestFirst(t *testing.T) {
	buckets := MonthlyBuckets(sampleExpenses())
	series := TimeSeries(buckets)

	assert.Equal(t, 1, series[0].Month)
	assert.Equal(t, 2, series[1].Month)
	// The display ordering is untouched.
	assert.Equal(t, 2, buckets[0].Month)
}

func TestCategoryShares_PercentagesAndOrdering(t *testing.T) {
	breakdown := map[string]float64{
		"食費":  1500,
		"交通費": 500,
	}

	shares := CategoryShares(breakdown, 2000)

	assert.Equal(t, 2, len(shares))
	assert.Equal(t, "食費", shares[0].Name)
	assert.Equal(t, 75.0, shares[0].Percentage)
	assert.Equal(t, 25.0, shares[1].Percentage)
}

func TestCategoryShares_RoundsToOneDecimal(t *testing.T) {
	breakdown := map[string]float64{
		"食費":  1,
		"交通費": 2,
	}

	shares := CategoryShares(breakdown, 3)

	assert.Equal(t, 66.7, shares[0].Percentage)
	assert.Equal(t, 33.3, shares[1].Percentage)
}
