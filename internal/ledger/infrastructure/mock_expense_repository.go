package infrastructure

import (
	"time"

	"github.com/kakeibo-app/kakeibo/internal/ledger/domain"
	ledgerErrors "github.com/kakeibo-app/kakeibo/internal/ledger/errors"
)

type recordedExpenseUpdate struct {
	UserID    string
	ExpenseID string
	Update    domain.ExpenseUpdate
}

type MockExpenseRepository struct {
	Expenses   []domain.Expense
	Saved      []domain.Expense
	Updates    []recordedExpenseUpdate
	DeletedIDs []string
	SaveErr    error
}

func (m *MockExpenseRepository) FindByUser(userID string) ([]domain.Expense, error) {
	var out []domain.Expense
	for _, expense := range m.Expenses {
		if expense.UserID == userID {
			out = append(out, expense)
		}
	}
	domain.SortExpensesByDateDesc(out)
	return out, nil
}

func (m *MockExpenseRepository) Save(expense domain.Expense) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Saved = append(m.Saved, expense)
	m.Expenses = append(m.Expenses, expense)
	return nil
}

func (m *MockExpenseRepository) Update(userID, expenseID string, update domain.ExpenseUpdate, updatedAt time.Time) error {
	for i := range m.Expenses {
		if m.Expenses[i].ID != expenseID || m.Expenses[i].UserID != userID {
			continue
		}
		if update.Date != nil {
			m.Expenses[i].Date = *update.Date
		}
		if update.Amount != nil {
			m.Expenses[i].Amount = *update.Amount
		}
		if update.BigCategory != nil {
			m.Expenses[i].BigCategory = *update.BigCategory
		}
		if update.Tags != nil {
			m.Expenses[i].Tags = domain.JoinTags(update.Tags)
		}
		if update.PaymentMethod != nil {
			m.Expenses[i].PaymentMethod = *update.PaymentMethod
		}
		if update.Description != nil {
			m.Expenses[i].Description = *update.Description
		}
		m.Expenses[i].UpdatedAt = updatedAt
		m.Updates = append(m.Updates, recordedExpenseUpdate{UserID: userID, ExpenseID: expenseID, Update: update})
		return nil
	}
	return ledgerErrors.ErrNotFound
}

func (m *MockExpenseRepository) Delete(userID, expenseID string) error {
	for i := range m.Expenses {
		if m.Expenses[i].ID == expenseID && m.Expenses[i].UserID == userID {
			m.Expenses = append(m.Expenses[:i], m.Expenses[i+1:]...)
			m.DeletedIDs = append(m.DeletedIDs, expenseID)
			return nil
		}
	}
	return ledgerErrors.ErrNotFound
}
