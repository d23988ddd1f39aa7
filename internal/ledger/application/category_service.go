package application

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kakeibo-app/kakeibo/internal/ledger/domain"
	ledgerErrors "github.com/kakeibo-app/kakeibo/internal/ledger/errors"
)

// DefaultCategories are the stock classifications offered to a fresh account.
var DefaultCategories = []string{
	"食費",
	"交通費",
	"日用品",
	"趣味・娯楽",
	"衣服・美容",
	"健康・医療",
	"水道・光熱費",
	"通信費",
	"住居費",
	"その他",
}

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// GetAllCategories returns every category sorted for display: explicit order
// ascending, missing order last, ties by locale-aware name comparison.
func (s *CategoryService) GetAllCategories() ([]domain.Category, error) {
	categories, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	domain.SortCategories(categories)
	return categories, nil
}

func (s *CategoryService) CreateCategory(name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ledgerErrors.ErrNameRequired
	}

	existing, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if domain.FindCategoryByName(existing, name, "") != nil {
		return nil, ledgerErrors.ErrDuplicateCategoryName
	}

	now := time.Now()
	category := domain.Category{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Save(category); err != nil {
		return nil, fmt.Errorf("save category: %w", err)
	}
	return &category, nil
}

func (s *CategoryService) UpdateCategory(categoryID, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ledgerErrors.ErrNameRequired
	}

	category, err := s.repo.FindByID(categoryID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if domain.FindCategoryByName(existing, name, categoryID) != nil {
		return nil, ledgerErrors.ErrDuplicateCategoryName
	}

	category.Name = name
	category.UpdatedAt = time.Now()
	if err := s.repo.Update(*category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

// DeleteCategory removes the category and cascades to every tag referencing
// it. The repository performs both deletes in one transaction, so a failure
// leaves no half-deleted taxonomy behind.
func (s *CategoryService) DeleteCategory(categoryID string) error {
	if err := s.repo.DeleteWithTags(categoryID); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// ReorderCategories applies a drag-and-drop move of activeID relative to
// overID against the current displayed ordering and persists the full 0..n-1
// assignment. An unknown id or a drop on itself is a silent no-op.
func (s *CategoryService) ReorderCategories(activeID, overID string) ([]domain.OrderUpdate, error) {
	categories, err := s.GetAllCategories()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(categories))
	for i, category := range categories {
		ids[i] = category.ID
	}

	updates := domain.ComputeOrderUpdates(ids, activeID, overID)
	if updates == nil {
		return nil, nil
	}

	if err := s.repo.UpdateOrders(updates); err != nil {
		return nil, fmt.Errorf("update category order: %w", err)
	}
	return updates, nil
}

// SeedDefaultCategories inserts the stock categories that are not already
// present (case-insensitively) and returns the names it created.
func (s *CategoryService) SeedDefaultCategories() ([]string, error) {
	existing, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	var created []string
	for _, name := range DefaultCategories {
		if domain.FindCategoryByName(existing, name, "") != nil {
			continue
		}
		now := time.Now()
		category := domain.Category{
			ID:        uuid.NewString(),
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.repo.Save(category); err != nil {
			return created, fmt.Errorf("save default category %q: %w", name, err)
		}
		existing = append(existing, category)
		created = append(created, name)
	}
	return created, nil
}
