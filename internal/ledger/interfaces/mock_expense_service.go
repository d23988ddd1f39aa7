package interfaces

import (
	"errors"

	"github.com/kakeibo-app/kakeibo/internal/ledger/application"
	"github.com/kakeibo-app/kakeibo/internal/ledger/domain"
)

type MockExpenseService struct {
	expenses   []domain.Expense
	expense    *domain.Expense
	search     *application.SearchResult
	summary    *application.MonthlySummary
	err        error
	deletedIDs []string

	lastFilter domain.ExpenseFilter
	lastUpdate domain.ExpenseUpdate
}

func (m *MockExpenseService) GetUserExpenses(userID string) ([]domain.Expense, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.expenses, nil
}

func (m *MockExpenseService) CreateExpense(userID string, input application.CreateExpenseInput) (*domain.Expense, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.expense != nil {
		return m.expense, nil
	}
	return nil, errors.New("no expense configured")
}

func (m *MockExpenseService) UpdateExpense(userID, expenseID string, update domain.ExpenseUpdate) error {
	if m.err != nil {
		return m.err
	}
	m.lastUpdate = update
	return nil
}

func (m *MockExpenseService) DeleteExpense(userID, expenseID string) error {
	if m.err != nil {
		return m.err
	}
	m.deletedIDs = append(m.deletedIDs, expenseID)
	return nil
}

func (m *MockExpenseService) SearchExpenses(userID string, filter domain.ExpenseFilter) (*application.SearchResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastFilter = filter
	if m.search != nil {
		return m.search, nil
	}
	return &application.SearchResult{Expenses: []domain.Expense{}}, nil
}

func (m *MockExpenseService) GetMonthlySummary(userID string) (*application.MonthlySummary, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.summary != nil {
		return m.summary, nil
	}
	return &application.MonthlySummary{}, nil
}
