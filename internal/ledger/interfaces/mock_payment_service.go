package interfaces

import (
	"errors"

	"github.com/kakeibo-app/kakeibo/internal/ledger/domain"
)

type MockPaymentMethodService struct {
	methods    []domain.PaymentMethod
	method     *domain.PaymentMethod
	err        error
	deletedIDs []string
}

func (m *MockPaymentMethodService) GetAllPaymentMethods() ([]domain.PaymentMethod, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.methods, nil
}

func (m *MockPaymentMethodService) CreatePaymentMethod(name string, order int) (*domain.PaymentMethod, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.method != nil {
		return m.method, nil
	}
	return nil, errors.New("no payment method configured")
}

func (m *MockPaymentMethodService) UpdatePaymentMethod(paymentMethodID, name string, order int) (*domain.PaymentMethod, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.method != nil {
		return m.method, nil
	}
	return nil, errors.New("no payment method configured")
}

func (m *MockPaymentMethodService) DeletePaymentMethod(paymentMethodID string) error {
	if m.err != nil {
		return m.err
	}
	m.deletedIDs = append(m.deletedIDs, paymentMethodID)
	return nil
}
