package infrastructure

import (
	"github.com/kakeibo-app/kakeibo/internal/ledger/domain"
	ledgerErrors "github.com/kakeibo-app/kakeibo/internal/ledger/errors"
)

type MockTagRepository struct {
	Tags         []domain.Tag
	Saved        []domain.Tag
	Updated      []domain.Tag
	DeletedIDs   []string
	OrderUpdates [][]domain.OrderUpdate
	SaveErr      error
}

func (m *MockTagRepository) FindAll() ([]domain.Tag, error) {
	out := make([]domain.Tag, len(m.Tags))
	copy(out, m.Tags)
	return out, nil
}

func (m *MockTagRepository) FindByID(tagID string) (*domain.Tag, error) {
	for i := range m.Tags {
		if m.Tags[i].ID == tagID {
			tag := m.Tags[i]
			return &tag, nil
		}
	}
	return nil, ledgerErrors.ErrNotFound
}

func (m *MockTagRepository) FindByCategoryID(categoryID string) ([]domain.Tag, error) {
	var out []domain.Tag
	for _, tag := range m.Tags {
		if tag.CategoryID == categoryID {
			out = append(out, tag)
		}
	}
	return out, nil
}

func (m *MockTagRepository) Save(tag domain.Tag) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Saved = append(m.Saved, tag)
	m.Tags = append(m.Tags, tag)
	return nil
}

func (m *MockTagRepository) Update(tag domain.Tag) error {
	for i := range m.Tags {
		if m.Tags[i].ID == tag.ID {
			m.Tags[i] = tag
			m.Updated = append(m.Updated, tag)
			return nil
		}
	}
	return ledgerErrors.ErrNotFound
}

func (m *MockTagRepository) Delete(tagID string) error {
	for i := range m.Tags {
		if m.Tags[i].ID == tagID {
			m.Tags = append(m.Tags[:i], m.Tags[i+1:]...)
			m.DeletedIDs = append(m.DeletedIDs, tagID)
			return nil
		}
	}
	return ledgerErrors.ErrNotFound
}

func (m *MockTagRepository) UpdateOrders(updates []domain.OrderUpdate) error {
	m.OrderUpdates = append(m.OrderUpdates, updates)
	for _, update := range updates {
		for i := range m.Tags {
			if m.Tags[i].ID == update.ID {
				order := update.Order
				m.Tags[i].Order = &order
			}
		}
	}
	return nil
}
