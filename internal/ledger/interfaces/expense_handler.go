package interfaces

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/kakeibo-app/kakeibo/internal/ledger/application"
	"github.com/kakeibo-app/kakeibo/internal/ledger/domain"
	ledgerErrors "github.com/kakeibo-app/kakeibo/internal/ledger/errors"
)

type ExpenseServiceInterface interface {
	GetUserExpenses(userID string) ([]domain.Expense, error)
	CreateExpense(userID string, input application.CreateExpenseInput) (*domain.Expense, error)
	UpdateExpense(userID, expenseID string, update domain.ExpenseUpdate) error
	DeleteExpense(userID, expenseID string) error
	SearchExpenses(userID string, filter domain.ExpenseFilter) (*application.SearchResult, error)
	GetMonthlySummary(userID string) (*application.MonthlySummary, error)
}

type ExpenseHandler struct {
	service      ExpenseServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewExpenseHandler(
	service ExpenseServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *ExpenseHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &ExpenseHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *ExpenseHandler) GetExpenses(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	expenses, err := h.service.GetUserExpenses(userID)
	if err != nil {
		log.Println("Error retrieving expenses:", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve expenses")
		return
	}
	if expenses == nil {
		expenses = []domain.Expense{}
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "success",
		"message":  "Expenses retrieved successfully.",
		"expenses": expenses,
	})
}

func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input application.CreateExpenseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	expense, err := h.service.CreateExpense(userID, input)
	if err != nil {
		h.respondExpenseError(w, err, "Failed to create expense")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Expense successfully created.",
		"expense": expense,
	})
}

func (h *ExpenseHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	expenseID := r.PathValue("expenseID")

	var update domain.ExpenseUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.UpdateExpense(userID, expenseID, update); err != nil {
		h.respondExpenseError(w, err, "Failed to update expense")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Expense successfully updated.",
	})
}

func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	expenseID := r.PathValue("expenseID")

	if err := h.service.DeleteExpense(userID, expenseID); err != nil {
		if errors.Is(err, ledgerErrors.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "Expense not found")
			return
		}
		log.Println("Error deleting expense:", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to delete expense")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Expense successfully deleted.",
	})
}

// SearchExpenses filters by month and by repeated category, tag and
// payment_method query parameters. Filter dimensions are ANDed; values within
// one dimension are ORed.
func (h *ExpenseHandler) SearchExpenses(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	query := r.URL.Query()
	var filter domain.ExpenseFilter
	var err error

	if yearStr := query.Get("year"); yearStr != "" {
		filter.Year, err = strconv.Atoi(yearStr)
		if err != nil || filter.Year <= 0 {
			h.respondError(w, http.StatusBadRequest, "Invalid year value")
			return
		}
	}
	if monthStr := query.Get("month"); monthStr != "" {
		filter.Month, err = strconv.Atoi(monthStr)
		if err != nil || filter.Month < 1 || filter.Month > 12 {
			h.respondError(w, http.StatusBadRequest, "Invalid month value")
			return
		}
	}
	filter.Categories = query["category"]
	filter.Tags = query["tag"]
	filter.PaymentMethods = query["payment_method"]

	result, err := h.service.SearchExpenses(userID, filter)
	if err != nil {
		log.Println("Error searching expenses:", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to search expenses")
		return
	}
	if result.Expenses == nil {
		result.Expenses = []domain.Expense{}
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Expenses retrieved successfully.",
		"data":    result,
	})
}

func (h *ExpenseHandler) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summary, err := h.service.GetMonthlySummary(userID)
	if err != nil {
		log.Println("Error retrieving monthly summary:", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve monthly summary")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Monthly summary retrieved successfully.",
		"data":    summary,
	})
}

func (h *ExpenseHandler) respondExpenseError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ledgerErrors.ErrMissingRequiredFields):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ledgerErrors.ErrInvalidAmount):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ledgerErrors.ErrNotFound):
		h.respondError(w, http.StatusNotFound, "Expense not found")
	default:
		log.Println("Expense service error:", err)
		h.respondError(w, http.StatusInternalServerError, fallback)
	}
}
