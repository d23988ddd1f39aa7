package domain

import (
	"math"
	"strings"
	"time"

	ledgerErrors "github.com/kakeibo-app/kakeibo/internal/ledger/errors"
)

// TagSeparator joins the selected tag names into the denormalized tags column.
// Renaming a tag later does not rewrite historical expenses.
const TagSeparator = ", "

// Expense is a single dated outflow owned by one user. BigCategory holds the
// category NAME at time of entry, not its id; the same denormalization applies
// to the joined tags string.
type Expense struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Date          time.Time `json:"date"`
	Amount        float64   `json:"amount"`
	BigCategory   string    `json:"big_category"`
	Tags          string    `json:"tags"`
	PaymentMethod string    `json:"payment_method"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ExpenseUpdate carries a partial update: nil fields are left untouched, so a
// caller can distinguish "not supplied" from "set to empty". UpdatedAt is
// always refreshed by the store.
type ExpenseUpdate struct {
	Date          *time.Time `json:"date,omitempty"`
	Amount        *float64   `json:"amount,omitempty"`
	BigCategory   *string    `json:"big_category,omitempty"`
	Tags          []string   `json:"tags,omitempty"`
	PaymentMethod *string    `json:"payment_method,omitempty"`
	Description   *string    `json:"description,omitempty"`
}

type ExpenseRepository interface {
	// FindByUser returns the user's expenses newest-first by date.
	FindByUser(userID string) ([]Expense, error)
	Save(expense Expense) error
	Update(userID, expenseID string, update ExpenseUpdate, updatedAt time.Time) error
	Delete(userID, expenseID string) error
}

// Validate applies the creation preconditions: every required field present
// and a positive, finite amount. It runs before any store call.
func (e *Expense) Validate() error {
	if e.Date.IsZero() || e.BigCategory == "" || e.PaymentMethod == "" {
		return ledgerErrors.ErrMissingRequiredFields
	}
	if err := validateAmount(e.Amount); err != nil {
		return err
	}
	return nil
}

// Validate checks only the fields the update actually carries.
func (u *ExpenseUpdate) Validate() error {
	if u.Amount != nil {
		if err := validateAmount(*u.Amount); err != nil {
			return err
		}
	}
	if u.Date != nil && u.Date.IsZero() {
		return ledgerErrors.ErrMissingRequiredFields
	}
	if u.BigCategory != nil && strings.TrimSpace(*u.BigCategory) == "" {
		return ledgerErrors.ErrMissingRequiredFields
	}
	if u.PaymentMethod != nil && strings.TrimSpace(*u.PaymentMethod) == "" {
		return ledgerErrors.ErrMissingRequiredFields
	}
	return nil
}

func validateAmount(amount float64) error {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ledgerErrors.ErrInvalidAmount
	}
	return nil
}

// JoinTags builds the stored tags string from the selected tag names.
func JoinTags(tags []string) string {
	return strings.Join(tags, TagSeparator)
}

// SplitTags is the inverse of JoinTags, trimming whitespace and dropping
// empties. Matching against the result is exact, so a filter for "タグ1" never
// matches an expense tagged only "サブタグ1".
func SplitTags(joined string) []string {
	var tags []string
	for _, tag := range strings.Split(joined, TagSeparator) {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
