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

func TestGetTags_FiltersByCategory(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/tags?category_id=c1", nil)
	w := httptest.NewRecorder()

	mockService := &MockTagService{
		tags: []domain.Tag{
			{ID: "t1", Name: "ランチ", CategoryID: "c1"},
			{ID: "t2", Name: "定期券", CategoryID: "c2"},
		},
	}
	handler := NewTagHandler(mockService, respondJSON, respondError)
	handler.GetTags(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "c1", mockService.lastCategoryFilter)

	var response struct {
		Tags []domain.Tag `json:"tags"`
	}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(response.Tags))
	assert.Equal(t, "ランチ", response.Tags[0].Name)
}

func TestCreateTag_UnknownCategory(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/tags", strings.NewReader(`{"name":"ランチ","category_id":"missing"}`))
	w := httptest.NewRecorder()

	mockService := &MockTagService{err: ledgerErrors.ErrUnknownCategory}
	handler := NewTagHandler(mockService, respondJSON, respondError)
	handler.CreateTag(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestCreateTag_DuplicateInCategory(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/tags", strings.NewReader(`{"name":"ランチ","category_id":"c1"}`))
	w := httptest.NewRecorder()

	mockService := &MockTagService{err: ledgerErrors.ErrDuplicateTagName}
	handler := NewTagHandler(mockService, respondJSON, respondError)
	handler.CreateTag(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestCreateTag_Success(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/tags", strings.NewReader(`{"name":"ランチ","category_id":"c1"}`))
	w := httptest.NewRecorder()

	mockService := &MockTagService{tag: &domain.Tag{ID: "t1", Name: "ランチ", CategoryID: "c1"}}
	handler := NewTagHandler(mockService, respondJSON, respondError)
	handler.CreateTag(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusCreated, res.StatusCode)
}

func TestDeleteTag_NotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/tags/missing", nil)
	req.SetPathValue("tagID", "missing")
	w := httptest.NewRecorder()

	mockService := &MockTagService{err: ledgerErrors.ErrNotFound}
	handler := NewTagHandler(mockService, respondJSON, respondError)
	handler.DeleteTag(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestReorderTags_ServiceError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/tags/reorder", strings.NewReader(`{"active_id":"t1","over_id":"t2"}`))
	w := httptest.NewRecorder()

	mockService := &MockTagService{err: assert.AnError}
	handler := NewTagHandler(mockService, respondJSON, respondError)
	handler.ReorderTags(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
}
