package interfaces

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/kakeibo-app/kakeibo/internal/ledger/domain"
	ledgerErrors "github.com/kakeibo-app/kakeibo/internal/ledger/errors"
)

type TagServiceInterface interface {
	GetAllTags(categoryID string) ([]domain.Tag, error)
	CreateTag(name, categoryID string) (*domain.Tag, error)
	UpdateTag(tagID, name, categoryID string) (*domain.Tag, error)
	DeleteTag(tagID string) error
	ReorderTags(activeID, overID string) ([]domain.OrderUpdate, error)
}

type TagHandler struct {
	service      TagServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string)
}

func NewTagHandler(
	service TagServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, errors ...[]string),
) *TagHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &TagHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

// GetTags lists every tag, or only the tags of one category when the
// category_id query parameter is present.
func (h *TagHandler) GetTags(w http.ResponseWriter, r *http.Request) {
	categoryID := r.URL.Query().Get("category_id")

	tags, err := h.service.GetAllTags(categoryID)
	if err != nil {
		log.Println("Error retrieving tags:", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve tags")
		return
	}
	if tags == nil {
		tags = []domain.Tag{}
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Tags retrieved successfully.",
		"tags":    tags,
	})
}

func (h *TagHandler) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name       string `json:"name"`
		CategoryID string `json:"category_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tag, err := h.service.CreateTag(req.Name, req.CategoryID)
	if err != nil {
		h.respondTagError(w, err, "Failed to create tag")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Tag successfully created.",
		"tag":     tag,
	})
}

func (h *TagHandler) UpdateTag(w http.ResponseWriter, r *http.Request) {
	tagID := r.PathValue("tagID")
	var req struct {
		Name       string `json:"name"`
		CategoryID string `json:"category_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tag, err := h.service.UpdateTag(tagID, req.Name, req.CategoryID)
	if err != nil {
		h.respondTagError(w, err, "Failed to update tag")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Tag successfully updated.",
		"tag":     tag,
	})
}

func (h *TagHandler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	tagID := r.PathValue("tagID")

	if err := h.service.DeleteTag(tagID); err != nil {
		if errors.Is(err, ledgerErrors.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "Tag not found")
			return
		}
		log.Println("Error deleting tag:", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to delete tag")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Tag successfully deleted.",
	})
}

func (h *TagHandler) ReorderTags(w http.ResponseWriter, r *http.Request) {
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

	updates, err := h.service.ReorderTags(req.ActiveID, req.OverID)
	if err != nil {
		log.Println("Error reordering tags:", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to reorder tags")
		return
	}
	if updates == nil {
		updates = []domain.OrderUpdate{}
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Tags reordered successfully.",
		"updates": updates,
	})
}

func (h *TagHandler) respondTagError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ledgerErrors.ErrNameRequired):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ledgerErrors.ErrUnknownCategory):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ledgerErrors.ErrDuplicateTagName):
		h.respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ledgerErrors.ErrNotFound):
		h.respondError(w, http.StatusNotFound, "Tag not found")
	default:
		log.Println("Tag service error:", err)
		h.respondError(w, http.StatusInternalServerError, fallback)
	}
}
