package application

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kakeibo-app/kakeibo/internal/ledger/domain"
	ledgerErrors "github.com/kakeibo-app/kakeibo/internal/ledger/errors"
)

type TagService struct {
	repo       domain.TagRepository
	categories domain.CategoryRepository
}

func NewTagService(repo domain.TagRepository, categories domain.CategoryRepository) *TagService {
	return &TagService{repo: repo, categories: categories}
}

// GetAllTags returns every tag in display order. When categoryID is set only
// that category's tags are returned.
func (s *TagService) GetAllTags(categoryID string) ([]domain.Tag, error) {
	var (
		tags []domain.Tag
		err  error
	)
	if categoryID != "" {
		tags, err = s.repo.FindByCategoryID(categoryID)
	} else {
		tags, err = s.repo.FindAll()
	}
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	domain.SortTags(tags)
	return tags, nil
}

func (s *TagService) CreateTag(name, categoryID string) (*domain.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ledgerErrors.ErrNameRequired
	}
	if err := s.checkCategoryExists(categoryID); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	if domain.FindTagByName(existing, categoryID, name, "") != nil {
		return nil, ledgerErrors.ErrDuplicateTagName
	}

	now := time.Now()
	tag := domain.Tag{
		ID:         uuid.NewString(),
		Name:       name,
		CategoryID: categoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Save(tag); err != nil {
		return nil, fmt.Errorf("save tag: %w", err)
	}
	return &tag, nil
}

func (s *TagService) UpdateTag(tagID, name, categoryID string) (*domain.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ledgerErrors.ErrNameRequired
	}
	if err := s.checkCategoryExists(categoryID); err != nil {
		return nil, err
	}

	tag, err := s.repo.FindByID(tagID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	// Uniqueness is checked in the target category, which may differ from the
	// tag's current one when the edit moves it.
	if domain.FindTagByName(existing, categoryID, name, tagID) != nil {
		return nil, ledgerErrors.ErrDuplicateTagName
	}

	tag.Name = name
	tag.CategoryID = categoryID
	tag.UpdatedAt = time.Now()
	if err := s.repo.Update(*tag); err != nil {
		return nil, fmt.Errorf("update tag: %w", err)
	}
	return tag, nil
}

func (s *TagService) DeleteTag(tagID string) error {
	if err := s.repo.Delete(tagID); err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}

// ReorderTags moves activeID relative to overID within the dragged tag's own
// category; tags of other categories keep their order values untouched.
func (s *TagService) ReorderTags(activeID, overID string) ([]domain.OrderUpdate, error) {
	dragged, err := s.repo.FindByID(activeID)
	if err != nil {
		if errors.Is(err, ledgerErrors.ErrNotFound) {
			return nil, nil // unknown id, silent no-op
		}
		return nil, err
	}

	tags, err := s.repo.FindByCategoryID(dragged.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	domain.SortTags(tags)

	ids := make([]string, len(tags))
	for i, tag := range tags {
		ids[i] = tag.ID
	}

	updates := domain.ComputeOrderUpdates(ids, activeID, overID)
	if updates == nil {
		return nil, nil
	}

	if err := s.repo.UpdateOrders(updates); err != nil {
		return nil, fmt.Errorf("update tag order: %w", err)
	}
	return updates, nil
}

func (s *TagService) checkCategoryExists(categoryID string) error {
	if categoryID == "" {
		return ledgerErrors.ErrUnknownCategory
	}
	_, err := s.categories.FindByID(categoryID)
	if err != nil {
		if errors.Is(err, ledgerErrors.ErrNotFound) {
			return ledgerErrors.ErrUnknownCategory
		}
		return fmt.Errorf("find category: %w", err)
	}
	return nil
}
