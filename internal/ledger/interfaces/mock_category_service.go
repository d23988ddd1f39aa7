package interfaces

import (
	"errors"

	"github.com/kakeibo-app/kakeibo/internal/ledger/domain"
)

type MockCategoryService struct {
	categories []domain.Category
	created    *domain.Category
	updates    []domain.OrderUpdate
	seeded     []string
	err        error

	reorderCalls [][2]string
	deletedIDs   []string
}

func (m *MockCategoryService) GetAllCategories() ([]domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

func (m *MockCategoryService) CreateCategory(name string) (*domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.created != nil {
		return m.created, nil
	}
	return nil, errors.New("no category configured")
}

func (m *MockCategoryService) UpdateCategory(categoryID, name string) (*domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.created != nil {
		return m.created, nil
	}
	return nil, errors.New("no category configured")
}

func (m *MockCategoryService) DeleteCategory(categoryID string) error {
	if m.err != nil {
		return m.err
	}
	m.deletedIDs = append(m.deletedIDs, categoryID)
	return nil
}

func (m *MockCategoryService) ReorderCategories(activeID, overID string) ([]domain.OrderUpdate, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.reorderCalls = append(m.reorderCalls, [2]string{activeID, overID})
	return m.updates, nil
}

func (m *MockCategoryService) SeedDefaultCategories() ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.seeded, nil
}
