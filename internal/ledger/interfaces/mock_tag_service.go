package interfaces

import (
	"errors"

	"github.com/kakeibo-app/kakeibo/internal/ledger/domain"
)

type MockTagService struct {
	tags       []domain.Tag
	tag        *domain.Tag
	updates    []domain.OrderUpdate
	err        error
	deletedIDs []string

	lastCategoryFilter string
}

func (m *MockTagService) GetAllTags(categoryID string) ([]domain.Tag, error) {
	m.lastCategoryFilter = categoryID
	if m.err != nil {
		return nil, m.err
	}
	if categoryID == "" {
		return m.tags, nil
	}
	var filtered []domain.Tag
	for _, tag := range m.tags {
		if tag.CategoryID == categoryID {
			filtered = append(filtered, tag)
		}
	}
	return filtered, nil
}

func (m *MockTagService) CreateTag(name, categoryID string) (*domain.Tag, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.tag != nil {
		return m.tag, nil
	}
	return nil, errors.New("no tag configured")
}

func (m *MockTagService) UpdateTag(tagID, name, categoryID string) (*domain.Tag, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.tag != nil {
		return m.tag, nil
	}
	return nil, errors.New("no tag configured")
}

func (m *MockTagService) DeleteTag(tagID string) error {
	if m.err != nil {
		return m.err
	}
	m.deletedIDs = append(m.deletedIDs, tagID)
	return nil
}

func (m *MockTagService) ReorderTags(activeID, overID string) ([]domain.OrderUpdate, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.updates, nil
}
