package interfaces

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/kakeibo-app/kakeibo/internal/ledger/domain"
	ledgerErrors "github.com/kakeibo-app/kakeibo/internal/ledger/errors"
)

type PaymentMethodServiceInterface interface {
	GetAllPaymentMethods() ([]domain.PaymentMethod, error)
	CreatePaymentMethod(name string, order int) (*domain.PaymentMethod, error)
	UpdatePaymentMethod(paymentMethodID, name string, order int) (*domain.PaymentMethod, error)
	DeletePaymentMethod(paymentMethodID string) error
}

type PaymentMethodHandler struct {
	service      PaymentMethodServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewPaymentMethodHandler(
	service PaymentMethodServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *PaymentMethodHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &PaymentMethodHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *PaymentMethodHandler) GetPaymentMethods(w http.ResponseWriter, _ *http.Request) {
	methods, err := h.service.GetAllPaymentMethods()
	if err != nil {
		log.Println("Error retrieving payment methods:", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve payment methods")
		return
	}
	if methods == nil {
		methods = []domain.PaymentMethod{}
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Payment methods retrieved successfully.",
		"methods": methods,
	})
}

func (h *PaymentMethodHandler) CreatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Order int    `json:"order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	method, err := h.service.CreatePaymentMethod(req.Name, req.Order)
	if err != nil {
		h.respondPaymentMethodError(w, err, "Failed to create payment method")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Payment method successfully created.",
		"method":  method,
	})
}

func (h *PaymentMethodHandler) UpdatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	paymentMethodID := r.PathValue("paymentMethodID")
	var req struct {
		Name  string `json:"name"`
		Order int    `json:"order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	method, err := h.service.UpdatePaymentMethod(paymentMethodID, req.Name, req.Order)
	if err != nil {
		h.respondPaymentMethodError(w, err, "Failed to update payment method")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Payment method successfully updated.",
		"method":  method,
	})
}

func (h *PaymentMethodHandler) DeletePaymentMethod(w http.ResponseWriter, r *http.Request) {
	paymentMethodID := r.PathValue("paymentMethodID")

	if err := h.service.DeletePaymentMethod(paymentMethodID); err != nil {
		if errors.Is(err, ledgerErrors.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "Payment method not found")
			return
		}
		log.Println("Error deleting payment method:", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to delete payment method")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Payment method successfully deleted.",
	})
}

func (h *PaymentMethodHandler) respondPaymentMethodError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ledgerErrors.ErrNameRequired):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ledgerErrors.ErrDuplicatePaymentMethod):
		h.respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ledgerErrors.ErrNotFound):
		h.respondError(w, http.StatusNotFound, "Payment method not found")
	default:
		log.Println("Payment method service error:", err)
		h.respondError(w, http.StatusInternalServerError, fallback)
	}
}
