package infrastructure

import (
	"github.com/kakeibo-app/kakeibo/internal/ledger/domain"
	ledgerErrors "github.com/kakeibo-app/kakeibo/internal/ledger/errors"
)

type MockCategoryRepository struct {
	Categories   []domain.Category
	Saved        []domain.Category
	Updated      []domain.Category
	DeletedIDs   []string
	OrderUpdates [][]domain.OrderUpdate
	SaveErr      error
	UpdateErr    error
}

func (m *MockCategoryRepository) FindAll() ([]domain.Category, error) {
	out := make([]domain.Category, len(m.Categories))
	copy(out, m.Categories)
	return out, nil
}

func (m *MockCategoryRepository) FindByID(categoryID string) (*domain.Category, error) {
	for i := range m.Categories {
		if m.Categories[i].ID == categoryID {
			category := m.Categories[i]
			return &category, nil
		}
	}
	return nil, ledgerErrors.ErrNotFound
}

func (m *MockCategoryRepository) Save(category domain.Category) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Saved = append(m.Saved, category)
	m.Categories = append(m.Categories, category)
	return nil
}

func (m *MockCategoryRepository) Update(category domain.Category) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	for i := range m.Categories {
		if m.Categories[i].ID == category.ID {
			m.Categories[i] = category
			m.Updated = append(m.Updated, category)
			return nil
		}
	}
	return ledgerErrors.ErrNotFound
}

func (m *MockCategoryRepository) DeleteWithTags(categoryID string) error {
	for i := range m.Categories {
		if m.Categories[i].ID == categoryID {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			m.DeletedIDs = append(m.DeletedIDs, categoryID)
			return nil
		}
	}
	return ledgerErrors.ErrNotFound
}

func (m *MockCategoryRepository) UpdateOrders(updates []domain.OrderUpdate) error {
	m.OrderUpdates = append(m.OrderUpdates, updates)
	for _, update := range updates {
		for i := range m.Categories {
			if m.Categories[i].ID == update.ID {
				order := update.Order
				m.Categories[i].Order = &order
			}
		}
	}
	return nil
}
