package infrastructure

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/kakeibo-app/kakeibo/internal/ledger/domain"
)

type ExpenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) FindByUser(userID string) ([]domain.Expense, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, date, amount, big_category, tags, payment_method, description, created_at, updated_at
		 FROM expenses WHERE user_id = $1 ORDER BY date DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		var expense domain.Expense
		if err := rows.Scan(&expense.ID, &expense.UserID, &expense.Date, &expense.Amount, &expense.BigCategory,
			&expense.Tags, &expense.PaymentMethod, &expense.Description, &expense.CreatedAt, &expense.UpdatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

func (r *ExpenseRepository) Save(expense domain.Expense) error {
	_, err := r.db.Exec(
		`INSERT INTO expenses (id, user_id, date, amount, big_category, tags, payment_method, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		expense.ID, expense.UserID, expense.Date, expense.Amount, expense.BigCategory,
		expense.Tags, expense.PaymentMethod, expense.Description, expense.CreatedAt, expense.UpdatedAt,
	)
	return err
}

// Update writes only the supplied fields. The user_id predicate doubles as the
// ownership check: another user's expense id simply affects zero rows.
func (r *ExpenseRepository) Update(userID, expenseID string, update domain.ExpenseUpdate, updatedAt time.Time) error {
	query := `UPDATE expenses SET updated_at = $1`
	args := []interface{}{updatedAt}

	appendSet := func(column string, value interface{}) {
		args = append(args, value)
		query += fmt.Sprintf(", %s = $%d", column, len(args))
	}

	if update.Date != nil {
		appendSet("date", *update.Date)
	}
	if update.Amount != nil {
		appendSet("amount", *update.Amount)
	}
	if update.BigCategory != nil {
		appendSet("big_category", *update.BigCategory)
	}
	if update.Tags != nil {
		appendSet("tags", domain.JoinTags(update.Tags))
	}
	if update.PaymentMethod != nil {
		appendSet("payment_method", *update.PaymentMethod)
	}
	if update.Description != nil {
		appendSet("description", *update.Description)
	}

	args = append(args, expenseID, userID)
	query += fmt.Sprintf(" WHERE id = $%d AND user_id = $%d", len(args)-1, len(args))

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *ExpenseRepository) Delete(userID, expenseID string) error {
	result, err := r.db.Exec(`DELETE FROM expenses WHERE id = $1 AND user_id = $2`, expenseID, userID)
	if err != nil {
		return err
	}
	return checkAffected(result)
}
