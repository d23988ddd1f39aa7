package application

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kakeibo-app/kakeibo/internal/ledger/domain"
	ledgerErrors "github.com/kakeibo-app/kakeibo/internal/ledger/errors"
)

type PaymentMethodService struct {
	repo domain.PaymentMethodRepository
}

func NewPaymentMethodService(repo domain.PaymentMethodRepository) *PaymentMethodService {
	return &PaymentMethodService{repo: repo}
}

func (s *PaymentMethodService) GetAllPaymentMethods() ([]domain.PaymentMethod, error) {
	methods, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	domain.SortPaymentMethods(methods)
	return methods, nil
}

func (s *PaymentMethodService) CreatePaymentMethod(name string, order int) (*domain.PaymentMethod, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ledgerErrors.ErrNameRequired
	}

	existing, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	if domain.FindPaymentMethodByName(existing, name, "") != nil {
		return nil, ledgerErrors.ErrDuplicatePaymentMethod
	}

	now := time.Now()
	method := domain.PaymentMethod{
		ID:        uuid.NewString(),
		Name:      name,
		Order:     order,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Save(method); err != nil {
		return nil, fmt.Errorf("save payment method: %w", err)
	}
	return &method, nil
}

func (s *PaymentMethodService) UpdatePaymentMethod(paymentMethodID, name string, order int) (*domain.PaymentMethod, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ledgerErrors.ErrNameRequired
	}

	method, err := s.repo.FindByID(paymentMethodID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	if domain.FindPaymentMethodByName(existing, name, paymentMethodID) != nil {
		return nil, ledgerErrors.ErrDuplicatePaymentMethod
	}

	method.Name = name
	method.Order = order
	method.UpdatedAt = time.Now()
	if err := s.repo.Update(*method); err != nil {
		return nil, fmt.Errorf("update payment method: %w", err)
	}
	return method, nil
}

func (s *PaymentMethodService) DeletePaymentMethod(paymentMethodID string) error {
	if err := s.repo.Delete(paymentMethodID); err != nil {
		return fmt.Errorf("delete payment method: %w", err)
	}
	return nil
}
