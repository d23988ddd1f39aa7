package domain

import (
	"strings"
	"time"
)

// Category is a top-level, user-defined expense classification. Order is nil
// for categories that were never reordered; they sort after all ordered ones.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Order     *int      `json:"order,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CategoryRepository interface {
	FindAll() ([]Category, error)
	FindByID(categoryID string) (*Category, error)
	Save(category Category) error
	Update(category Category) error
	// DeleteWithTags removes the category and every tag referencing it in a
	// single transaction.
	DeleteWithTags(categoryID string) error
	UpdateOrders(updates []OrderUpdate) error
}

// FindCategoryByName returns the category whose name matches case-insensitively,
// skipping excludeID (the item being edited), or nil if there is none.
func FindCategoryByName(categories []Category, name, excludeID string) *Category {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	for i := range categories {
		if categories[i].ID == excludeID {
			continue
		}
		if strings.ToLower(categories[i].Name) == trimmed {
			return &categories[i]
		}
	}
	return nil
}
