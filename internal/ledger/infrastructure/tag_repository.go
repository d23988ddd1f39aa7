package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/kakeibo-app/kakeibo/internal/ledger/domain"
	ledgerErrors "github.com/kakeibo-app/kakeibo/internal/ledger/errors"
)

type TagRepository struct {
	db *sql.DB
}

func NewTagRepository(db *sql.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) FindAll() ([]domain.Tag, error) {
	return r.queryTags(`SELECT id, name, category_id, sort_order, created_at, updated_at FROM tags`)
}

func (r *TagRepository) FindByCategoryID(categoryID string) ([]domain.Tag, error) {
	return r.queryTags(`SELECT id, name, category_id, sort_order, created_at, updated_at FROM tags WHERE category_id = $1`, categoryID)
}

func (r *TagRepository) FindByID(tagID string) (*domain.Tag, error) {
	row := r.db.QueryRow(`SELECT id, name, category_id, sort_order, created_at, updated_at FROM tags WHERE id = $1`, tagID)

	tag, err := scanTag(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledgerErrors.ErrNotFound
		}
		return nil, fmt.Errorf("could not find tag: %v", err)
	}
	return &tag, nil
}

func (r *TagRepository) Save(tag domain.Tag) error {
	_, err := r.db.Exec(
		`INSERT INTO tags (id, name, category_id, sort_order, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		tag.ID, tag.Name, tag.CategoryID, orderValue(tag.Order), tag.CreatedAt, tag.UpdatedAt,
	)
	return err
}

func (r *TagRepository) Update(tag domain.Tag) error {
	result, err := r.db.Exec(
		`UPDATE tags SET name = $1, category_id = $2, updated_at = $3 WHERE id = $4`,
		tag.Name, tag.CategoryID, tag.UpdatedAt, tag.ID,
	)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *TagRepository) Delete(tagID string) error {
	result, err := r.db.Exec(`DELETE FROM tags WHERE id = $1`, tagID)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *TagRepository) UpdateOrders(updates []domain.OrderUpdate) error {
	return updateOrdersInTx(r.db, `UPDATE tags SET sort_order = $1, updated_at = NOW() WHERE id = $2`, updates)
}

func (r *TagRepository) queryTags(query string, args ...interface{}) ([]domain.Tag, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []domain.Tag
	for rows.Next() {
		tag, err := scanTag(rows)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

func scanTag(row rowScanner) (domain.Tag, error) {
	var (
		tag       domain.Tag
		sortOrder sql.NullInt64
	)
	if err := row.Scan(&tag.ID, &tag.Name, &tag.CategoryID, &sortOrder, &tag.CreatedAt, &tag.UpdatedAt); err != nil {
		return domain.Tag{}, err
	}
	tag.Order = nullableOrder(sortOrder)
	return tag, nil
}
