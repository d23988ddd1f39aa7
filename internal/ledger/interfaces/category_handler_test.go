package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kakeibo-app/kakeibo/internal/ledger/domain"
	ledgerErrors "github.com/kakeibo-app/kakeibo/internal/ledger/errors"
	"github.com/stretchr/testify/assert"
)

func TestGetCategories_ReturnsCategories(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{
		categories: []domain.Category{
			{ID: "c1", Name: "食費"},
			{ID: "c2", Name: "交通費"},
		},
	}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)
	handler.GetCategories(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Categories []domain.Category `json:"categories"`
	}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(response.Categories))
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":"食費"}`))
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{err: ledgerErrors.ErrDuplicateCategoryName}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)
	handler.CreateCategory(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestCreateCategory_EmptyName(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":"  "}`))
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{err: ledgerErrors.ErrNameRequired}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)
	handler.CreateCategory(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestCreateCategory_Success(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":"食費"}`))
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{created: &domain.Category{ID: "c1", Name: "食費"}}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)
	handler.CreateCategory(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var response struct {
		Category domain.Category `json:"category"`
	}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "食費", response.Category.Name)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/categories/missing", nil)
	req.SetPathValue("categoryID", "missing")
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{err: ledgerErrors.ErrNotFound}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)
	handler.DeleteCategory(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestReorderCategories_MissingIDs(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/categories/reorder", strings.NewReader(`{"active_id":"c1"}`))
	w := httptest.NewRecorder()

	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)
	handler.ReorderCategories(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestReorderCategories_ReturnsUpdates(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/categories/reorder", strings.NewReader(`{"active_id":"c2","over_id":"c1"}`))
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{
		updates: []domain.OrderUpdate{{ID: "c2", Order: 0}, {ID: "c1", Order: 1}},
	}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)
	handler.ReorderCategories(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, [2]string{"c2", "c1"}, mockService.reorderCalls[0])

	var response struct {
		Updates []domain.OrderUpdate `json:"updates"`
	}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(response.Updates))
	assert.Equal(t, 0, response.Updates[0].Order)
}

func TestCreateDefaultCategories_ReturnsCreatedNames(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/categories/defaults", nil)
	w := httptest.NewRecorder()

	mockService := &MockCategoryService{seeded: []string{"食費", "交通費"}}
	handler := NewCategoryHandler(mockService, respondJSON, respondError)
	handler.CreateDefaultCategories(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var response struct {
		Created []string `json:"created"`
	}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, []string{"食費", "交通費"}, response.Created)
}
