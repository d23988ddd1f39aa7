package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/kakeibo-app/kakeibo/internal/ledger/domain"
	ledgerErrors "github.com/kakeibo-app/kakeibo/internal/ledger/errors"
)

type PaymentMethodRepository struct {
	db *sql.DB
}

func NewPaymentMethodRepository(db *sql.DB) *PaymentMethodRepository {
	return &PaymentMethodRepository{db: db}
}

func (r *PaymentMethodRepository) FindAll() ([]domain.PaymentMethod, error) {
	rows, err := r.db.Query(`SELECT id, name, sort_order, created_at, updated_at FROM payment_methods`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var methods []domain.PaymentMethod
	for rows.Next() {
		var method domain.PaymentMethod
		if err := rows.Scan(&method.ID, &method.Name, &method.Order, &method.CreatedAt, &method.UpdatedAt); err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}
	return methods, rows.Err()
}

func (r *PaymentMethodRepository) FindByID(paymentMethodID string) (*domain.PaymentMethod, error) {
	row := r.db.QueryRow(`SELECT id, name, sort_order, created_at, updated_at FROM payment_methods WHERE id = $1`, paymentMethodID)

	var method domain.PaymentMethod
	err := row.Scan(&method.ID, &method.Name, &method.Order, &method.CreatedAt, &method.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledgerErrors.ErrNotFound
		}
		return nil, fmt.Errorf("could not find payment method: %v", err)
	}
	return &method, nil
}

func (r *PaymentMethodRepository) Save(method domain.PaymentMethod) error {
	_, err := r.db.Exec(
		`INSERT INTO payment_methods (id, name, sort_order, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		method.ID, method.Name, method.Order, method.CreatedAt, method.UpdatedAt,
	)
	return err
}

func (r *PaymentMethodRepository) Update(method domain.PaymentMethod) error {
	result, err := r.db.Exec(
		`UPDATE payment_methods SET name = $1, sort_order = $2, updated_at = $3 WHERE id = $4`,
		method.Name, method.Order, method.UpdatedAt, method.ID,
	)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *PaymentMethodRepository) Delete(paymentMethodID string) error {
	result, err := r.db.Exec(`DELETE FROM payment_methods WHERE id = $1`, paymentMethodID)
	if err != nil {
		return err
	}
	return checkAffected(result)
}
