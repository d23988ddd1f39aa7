package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/kakeibo-app/kakeibo/internal/ledger/domain"
	ledgerErrors "github.com/kakeibo-app/kakeibo/internal/ledger/errors"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) FindAll() ([]domain.Category, error) {
	rows, err := r.db.Query(`SELECT id, name, sort_order, created_at, updated_at FROM categories`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByID(categoryID string) (*domain.Category, error) {
	row := r.db.QueryRow(`SELECT id, name, sort_order, created_at, updated_at FROM categories WHERE id = $1`, categoryID)

	var (
		category  domain.Category
		sortOrder sql.NullInt64
	)
	err := row.Scan(&category.ID, &category.Name, &sortOrder, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledgerErrors.ErrNotFound
		}
		return nil, fmt.Errorf("could not find category: %v", err)
	}
	category.Order = nullableOrder(sortOrder)
	return &category, nil
}

func (r *CategoryRepository) Save(category domain.Category) error {
	_, err := r.db.Exec(
		`INSERT INTO categories (id, name, sort_order, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		category.ID, category.Name, orderValue(category.Order), category.CreatedAt, category.UpdatedAt,
	)
	return err
}

func (r *CategoryRepository) Update(category domain.Category) error {
	result, err := r.db.Exec(
		`UPDATE categories SET name = $1, updated_at = $2 WHERE id = $3`,
		category.Name, category.UpdatedAt, category.ID,
	)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

// DeleteWithTags removes the category's tags and then the category itself in
// one transaction, so the taxonomy never ends up half-deleted.
func (r *CategoryRepository) DeleteWithTags(categoryID string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tags WHERE category_id = $1`, categoryID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM categories WHERE id = $1`, categoryID); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *CategoryRepository) UpdateOrders(updates []domain.OrderUpdate) error {
	return updateOrdersInTx(r.db, `UPDATE categories SET sort_order = $1, updated_at = NOW() WHERE id = $2`, updates)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCategory(row rowScanner) (domain.Category, error) {
	var (
		category  domain.Category
		sortOrder sql.NullInt64
	)
	if err := row.Scan(&category.ID, &category.Name, &sortOrder, &category.CreatedAt, &category.UpdatedAt); err != nil {
		return domain.Category{}, err
	}
	category.Order = nullableOrder(sortOrder)
	return category, nil
}

func nullableOrder(value sql.NullInt64) *int {
	if !value.Valid {
		return nil
	}
	order := int(value.Int64)
	return &order
}

func orderValue(order *int) interface{} {
	if order == nil {
		return nil
	}
	return *order
}

func checkAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ledgerErrors.ErrNotFound
	}
	return nil
}

// updateOrdersInTx applies one order assignment per item inside a single
// transaction; the batch either lands fully or not at all.
func updateOrdersInTx(db *sql.DB, query string, updates []domain.OrderUpdate) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, update := range updates {
		if _, err := tx.Exec(query, update.Order, update.ID); err != nil {
			return err
		}
	}
	return tx.Commit()
}
