package interfaces

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/kakeibo-app/kakeibo/internal/ledger/domain"
	ledgerErrors "github.com/kakeibo-app/kakeibo/internal/ledger/errors"
)

type CategoryServiceInterface interface {
	GetAllCategories() ([]domain.Category, error)
	CreateCategory(name string) (*domain.Category, error)
	UpdateCategory(categoryID, name string) (*domain.Category, error)
	DeleteCategory(categoryID string) error
	ReorderCategories(activeID, overID string) ([]domain.OrderUpdate, error)
	SeedDefaultCategories() ([]string, error)
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *CategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, _ *http.Request) {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		log.Println("Error retrieving categories:", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "success",
		"message":    "Categories retrieved successfully.",
		"categories": categories,
	})
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.CreateCategory(req.Name)
	if err != nil {
		h.respondCategoryError(w, err, "Failed to create category")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":   "success",
		"message":  "Category successfully created.",
		"category": category,
	})
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := r.PathValue("categoryID")
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.UpdateCategory(categoryID, req.Name)
	if err != nil {
		h.respondCategoryError(w, err, "Failed to update category")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "success",
		"message":  "Category successfully updated.",
		"category": category,
	})
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := r.PathValue("categoryID")

	if err := h.service.DeleteCategory(categoryID); err != nil {
		if errors.Is(err, ledgerErrors.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "Category not found")
			return
		}
		log.Println("Error deleting category:", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Category and its tags successfully deleted.",
	})
}

func (h *CategoryHandler) ReorderCategories(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ActiveID string `json:"active_id"`
		OverID   string `json:"over_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ActiveID == "" || req.OverID == "" {
		h.respondError(w, http.StatusBadRequest, "active_id and over_id are required")
		return
	}

	updates, err := h.service.ReorderCategories(req.ActiveID, req.OverID)
	if err != nil {
		log.Println("Error reordering categories:", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to reorder categories")
		return
	}
	if updates == nil {
		updates = []domain.OrderUpdate{}
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Categories reordered successfully.",
		"updates": updates,
	})
}

func (h *CategoryHandler) CreateDefaultCategories(w http.ResponseWriter, _ *http.Request) {
	created, err := h.service.SeedDefaultCategories()
	if err != nil {
		log.Println("Error seeding default categories:", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to create default categories")
		return
	}
	if created == nil {
		created = []string{}
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Default categories created successfully.",
		"created": created,
	})
}

func (h *CategoryHandler) respondCategoryError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ledgerErrors.ErrNameRequired):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ledgerErrors.ErrDuplicateCategoryName):
		h.respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ledgerErrors.ErrNotFound):
		h.respondError(w, http.StatusNotFound, "Category not found")
	default:
		log.Println("Category service error:", err)
		h.respondError(w, http.StatusInternalServerError, fallback)
	}
}
