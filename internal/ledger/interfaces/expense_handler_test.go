package interfaces

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kakeibo-app/kakeibo/internal/ledger/application"
	"github.com/kakeibo-app/kakeibo/internal/ledger/domain"
	ledgerErrors "github.com/kakeibo-app/kakeibo/internal/ledger/errors"
	"github.com/stretchr/testify/assert"
)

func authenticated(req *http.Request, userID string) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), "userID", userID))
}

func TestGetExpenses_Unauthorized(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/expenses", nil)
	w := httptest.NewRecorder()

	handler := NewExpenseHandler(&MockExpenseService{}, respondJSON, respondError)
	handler.GetExpenses(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestCreateExpense_InvalidAmount(t *testing.T) {
	body := `{"date":"2024-01-10T00:00:00Z","amount":-5,"big_category":"食費","payment_method":"現金"}`
	req := authenticated(httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(body)), "user-1")
	w := httptest.NewRecorder()

	mockService := &MockExpenseService{err: ledgerErrors.ErrInvalidAmount}
	handler := NewExpenseHandler(mockService, respondJSON, respondError)
	handler.CreateExpense(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestCreateExpense_Success(t *testing.T) {
	body := `{"date":"2024-01-10T00:00:00Z","amount":1000,"big_category":"食費","tags":["ランチ"],"payment_method":"現金"}`
	req := authenticated(httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(body)), "user-1")
	w := httptest.NewRecorder()

	mockService := &MockExpenseService{
		expense: &domain.Expense{ID: "e1", UserID: "user-1", Amount: 1000, BigCategory: "食費", Tags: "ランチ"},
	}
	handler := NewExpenseHandler(mockService, respondJSON, respondError)
	handler.CreateExpense(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var response struct {
		Expense domain.Expense `json:"expense"`
	}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "e1", response.Expense.ID)
}

func TestUpdateExpense_PartialBody(t *testing.T) {
	body := `{"amount":2000}`
	req := authenticated(httptest.NewRequest(http.MethodPut, "/expenses/e1", strings.NewReader(body)), "user-1")
	req.SetPathValue("expenseID", "e1")
	w := httptest.NewRecorder()

	mockService := &MockExpenseService{}
	handler := NewExpenseHandler(mockService, respondJSON, respondError)
	handler.UpdateExpense(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotNil(t, mockService.lastUpdate.Amount)
	assert.Equal(t, 2000.0, *mockService.lastUpdate.Amount)
	assert.Nil(t, mockService.lastUpdate.BigCategory)
	assert.Nil(t, mockService.lastUpdate.Date)
}

func TestDeleteExpense_NotFound(t *testing.T) {
	req := authenticated(httptest.NewRequest(http.MethodDelete, "/expenses/missing", nil), "user-1")
	req.SetPathValue("expenseID", "missing")
	w := httptest.NewRecorder()

	mockService := &MockExpenseService{err: ledgerErrors.ErrNotFound}
	handler := NewExpenseHandler(mockService, respondJSON, respondError)
	handler.DeleteExpense(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestSearchExpenses_ParsesFilter(t *testing.T) {
	url := "/expenses/search?year=2024&month=1&category=食費&tag=ランチ&payment_method=現金"
	req := authenticated(httptest.NewRequest(http.MethodGet, url, nil), "user-1")
	w := httptest.NewRecorder()

	mockService := &MockExpenseService{
		search: &application.SearchResult{
			Expenses: []domain.Expense{{ID: "e1", Amount: 1000}},
			Total:    1000,
			Count:    1,
		},
	}
	handler := NewExpenseHandler(mockService, respondJSON, respondError)
	handler.SearchExpenses(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 2024, mockService.lastFilter.Year)
	assert.Equal(t, 1, mockService.lastFilter.Month)
	assert.Equal(t, []string{"食費"}, mockService.lastFilter.Categories)
	assert.Equal(t, []string{"ランチ"}, mockService.lastFilter.Tags)
	assert.Equal(t, []string{"現金"}, mockService.lastFilter.PaymentMethods)
}

func TestSearchExpenses_InvalidMonth(t *testing.T) {
	req := authenticated(httptest.NewRequest(http.MethodGet, "/expenses/search?month=13", nil), "user-1")
	w := httptest.NewRecorder()

	handler := NewExpenseHandler(&MockExpenseService{}, respondJSON, respondError)
	handler.SearchExpenses(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestGetMonthlySummary_ReturnsSummary(t *testing.T) {
	req := authenticated(httptest.NewRequest(http.MethodGet, "/expenses/summary/monthly", nil), "user-1")
	w := httptest.NewRecorder()

	mockService := &MockExpenseService{
		summary: &application.MonthlySummary{
			GrandTotal: 1800,
			Months: []application.MonthSummary{
				{Year: 2024, Month: 2, Total: 300, Count: 1},
				{Year: 2024, Month: 1, Total: 1500, Count: 2},
			},
			Series: []application.SeriesPoint{
				{Month: "2024/01", Amount: 1500, Year: 2024, Num: 1},
				{Month: "2024/02", Amount: 300, Year: 2024, Num: 2},
			},
		},
	}
	handler := NewExpenseHandler(mockService, respondJSON, respondError)
	handler.GetMonthlySummary(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Data application.MonthlySummary `json:"data"`
	}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, 1800.0, response.Data.GrandTotal)
	assert.Equal(t, "2024/01", response.Data.Series[0].Month)
}
