package infrastructure

import (
	"github.com/kakeibo-app/kakeibo/internal/ledger/domain"
	ledgerErrors "github.com/kakeibo-app/kakeibo/internal/ledger/errors"
)

type MockPaymentMethodRepository struct {
	Methods    []domain.PaymentMethod
	Saved      []domain.PaymentMethod
	Updated    []domain.PaymentMethod
	DeletedIDs []string
	SaveErr    error
}

func (m *MockPaymentMethodRepository) FindAll() ([]domain.PaymentMethod, error) {
	out := make([]domain.PaymentMethod, len(m.Methods))
	copy(out, m.Methods)
	return out, nil
}

func (m *MockPaymentMethodRepository) FindByID(paymentMethodID string) (*domain.PaymentMethod, error) {
	for i := range m.Methods {
		if m.Methods[i].ID == paymentMethodID {
			method := m.Methods[i]
			return &method, nil
		}
	}
	return nil, ledgerErrors.ErrNotFound
}

func (m *MockPaymentMethodRepository) Save(method domain.PaymentMethod) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Saved = append(m.Saved, method)
	m.Methods = append(m.Methods, method)
	return nil
}

func (m *MockPaymentMethodRepository) Update(method domain.PaymentMethod) error {
	for i := range m.Methods {
		if m.Methods[i].ID == method.ID {
			m.Methods[i] = method
			m.Updated = append(m.Updated, method)
			return nil
		}
	}
	return ledgerErrors.ErrNotFound
}

func (m *MockPaymentMethodRepository) Delete(paymentMethodID string) error {
	for i := range m.Methods {
		if m.Methods[i].ID == paymentMethodID {
			m.Methods = append(m.Methods[:i], m.Methods[i+1:]...)
			m.DeletedIDs = append(m.DeletedIDs, paymentMethodID)
			return nil
		}
	}
	return ledgerErrors.ErrNotFound
}
