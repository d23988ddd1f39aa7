package domain

import (
	"math"
	"testing"
	"time"

	ledgerErrors "github.com/kakeibo-app/kakeibo/internal/ledger/errors"
	"github.com/stretchr/testify/assert"
)

func validExpense() Expense {
	return Expense{
		ID:            "e1",
		UserID:        "user-1",
		Date:          time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Amount:        1000,
		BigCategory:   "食費",
		Tags:          "ランチ",
		PaymentMethod: "現金",
	}
}

func TestExpenseValidate_Valid(t *testing.T) {
	expense := validExpense()
	assert.NoError(t, expense.Validate())
}

func TestExpenseValidate_MissingRequiredFields(t *testing.T) {
	noDate := validExpense()
	noDate.Date = time.Time{}
	assert.ErrorIs(t, noDate.Validate(), ledgerErrors.ErrMissingRequiredFields)

	noCategory := validExpense()
	noCategory.BigCategory = ""
	assert.ErrorIs(t, noCategory.Validate(), ledgerErrors.ErrMissingRequiredFields)

	noMethod := validExpense()
	noMethod.PaymentMethod = ""
	assert.ErrorIs(t, noMethod.Validate(), ledgerErrors.ErrMissingRequiredFields)
}

func TestExpenseValidate_InvalidAmount(t *testing.T) {
	for _, amount := range []float64{0, -5, math.NaN(), math.Inf(1)} {
		expense := validExpense()
		expense.Amount = amount
		assert.ErrorIs(t, expense.Validate(), ledgerErrors.ErrInvalidAmount)
	}
}

func TestExpenseUpdateValidate_OnlyCarriedFields(t *testing.T) {
	empty := ExpenseUpdate{}
	assert.NoError(t, empty.Validate())

	bad := -5.0
	withAmount := ExpenseUpdate{Amount: &bad}
	assert.ErrorIs(t, withAmount.Validate(), ledgerErrors.ErrInvalidAmount)

	blank := "  "
	withCategory := ExpenseUpdate{BigCategory: &blank}
	assert.ErrorIs(t, withCategory.Validate(), ledgerErrors.ErrMissingRequiredFields)
}

func TestSplitTags_TrimsAndDropsEmpties(t *testing.T) {
	assert.Equal(t, []string{"タグ1", "タグ2"}, SplitTags("タグ1, タグ2"))
	assert.Equal(t, []string{"タグ1"}, SplitTags(" タグ1 "))
	assert.Nil(t, SplitTags(""))
}

func TestJoinTags_RoundTrip(t *testing.T) {
	tags := []string{"タグ1", "タグ2"}
	assert.Equal(t, tags, SplitTags(JoinTags(tags)))
}

func TestFindCategoryByName_CaseInsensitiveExcludingSelf(t *testing.T) {
	categories := []Category{
		{ID: "c1", Name: "Food"},
		{ID: "c2", Name: "交通費"},
	}

	assert.NotNil(t, FindCategoryByName(categories, "food", ""))
	assert.Nil(t, FindCategoryByName(categories, "food", "c1"))
	assert.NotNil(t, FindCategoryByName(categories, " 交通費 ", ""))
	assert.Nil(t, FindCategoryByName(categories, "住居費", ""))
}

func TestFindTagByName_ScopedToCategory(t *testing.T) {
	tags := []Tag{
		{ID: "t1", Name: "ランチ", CategoryID: "c1"},
	}

	assert.NotNil(t, FindTagByName(tags, "c1", "ランチ", ""))
	// Same name under another category is allowed.
	assert.Nil(t, FindTagByName(tags, "c2", "ランチ", ""))
	assert.Nil(t, FindTagByName(tags, "c1", "ランチ", "t1"))
}
