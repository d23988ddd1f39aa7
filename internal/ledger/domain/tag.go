package domain

import (
	"strings"
	"time"
)

// Tag is a sub-classification scoped to exactly one category. A tag never
// outlives its category: deleting a category cascades to its tags.
type Tag struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CategoryID string    `json:"category_id"`
	Order      *int      `json:"order,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type TagRepository interface {
	FindAll() ([]Tag, error)
	FindByID(tagID string) (*Tag, error)
	FindByCategoryID(categoryID string) ([]Tag, error)
	Save(tag Tag) error
	Update(tag Tag) error
	Delete(tagID string) error
	UpdateOrders(updates []OrderUpdate) error
}

// FindTagByName returns the tag in categoryID whose name matches
// case-insensitively, skipping excludeID, or nil. Name uniqueness is scoped to
// a single category, so the same tag name may exist under another category.
func FindTagByName(tags []Tag, categoryID, name, excludeID string) *Tag {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	for i := range tags {
		if tags[i].ID == excludeID || tags[i].CategoryID != categoryID {
			continue
		}
		if strings.ToLower(tags[i].Name) == trimmed {
			return &tags[i]
		}
	}
	return nil
}

// TagsOfCategory filters tags down to one category, preserving input order.
func TagsOfCategory(tags []Tag, categoryID string) []Tag {
	var filtered []Tag
	for _, tag := range tags {
		if tag.CategoryID == categoryID {
			filtered = append(filtered, tag)
		}
	}
	return filtered
}
