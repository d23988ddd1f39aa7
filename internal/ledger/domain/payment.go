package domain

import (
	"strings"
	"time"
)

// PaymentMethod is a selectable way of paying (現金, クレジットカード, ...).
// Unlike categories and tags its order always has a value, defaulting to 0.
type PaymentMethod struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PaymentMethodRepository interface {
	FindAll() ([]PaymentMethod, error)
	FindByID(paymentMethodID string) (*PaymentMethod, error)
	Save(method PaymentMethod) error
	Update(method PaymentMethod) error
	Delete(paymentMethodID string) error
}

func FindPaymentMethodByName(methods []PaymentMethod, name, excludeID string) *PaymentMethod {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	for i := range methods {
		if methods[i].ID == excludeID {
			continue
		}
		if strings.ToLower(methods[i].Name) == trimmed {
			return &methods[i]
		}
	}
	return nil
}
