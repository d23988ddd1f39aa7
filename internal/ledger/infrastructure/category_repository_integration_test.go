package infrastructure

import (
	"testing"
	"time"

	"github.com/kakeibo-app/kakeibo/internal/ledger/domain"
	ledgerErrors "github.com/kakeibo-app/kakeibo/internal/ledger/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed repository test in short mode")
	}

	db := setupTestDB(t)
	categoryRepo := NewCategoryRepository(db)
	tagRepo := NewTagRepository(db)

	now := time.Now().UTC().Truncate(time.Second)
	food := domain.Category{
		ID:        "5a1b2c3d-0000-4000-8000-000000000001",
		Name:      "食費",
		CreatedAt: now,
		UpdatedAt: now,
	}
	transport := domain.Category{
		ID:        "5a1b2c3d-0000-4000-8000-000000000002",
		Name:      "交通費",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, categoryRepo.Save(food))
	require.NoError(t, categoryRepo.Save(transport))

	tags := []domain.Tag{
		{ID: "7c1d2e3f-0000-4000-8000-000000000001", Name: "ランチ", CategoryID: food.ID, CreatedAt: now, UpdatedAt: now},
		{ID: "7c1d2e3f-0000-4000-8000-000000000002", Name: "カフェ", CategoryID: food.ID, CreatedAt: now, UpdatedAt: now},
		{ID: "7c1d2e3f-0000-4000-8000-000000000003", Name: "定期券", CategoryID: transport.ID, CreatedAt: now, UpdatedAt: now},
	}
	for _, tag := range tags {
		require.NoError(t, tagRepo.Save(tag))
	}

	t.Run("DeleteWithTags on an unknown category removes nothing", func(t *testing.T) {
		require.NoError(t, categoryRepo.DeleteWithTags("5a1b2c3d-0000-4000-8000-00000000ffff"))

		foodTags, err := tagRepo.FindByCategoryID(food.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, len(foodTags))

		categories, err := categoryRepo.FindAll()
		require.NoError(t, err)
		assert.Equal(t, 2, len(categories))
	})

	t.Run("DeleteWithTags removes the category and every tag referencing it", func(t *testing.T) {
		require.NoError(t, categoryRepo.DeleteWithTags(food.ID))

		foodTags, err := tagRepo.FindByCategoryID(food.ID)
		require.NoError(t, err)
		assert.Empty(t, foodTags)

		_, err = categoryRepo.FindByID(food.ID)
		assert.ErrorIs(t, err, ledgerErrors.ErrNotFound)
	})

	t.Run("other categories keep their tags", func(t *testing.T) {
		transportTags, err := tagRepo.FindByCategoryID(transport.ID)
		require.NoError(t, err)
		require.Equal(t, 1, len(transportTags))
		assert.Equal(t, "定期券", transportTags[0].Name)

		categories, err := categoryRepo.FindAll()
		require.NoError(t, err)
		require.Equal(t, 1, len(categories))
		assert.Equal(t, transport.ID, categories[0].ID)
	})

	t.Run("a failed delete leaves no partial state", func(t *testing.T) {
		// Force the category DELETE to fail after the tag DELETE has already
		// run inside the transaction; the rollback must restore the tags.
		_, err := db.Exec(`
			CREATE FUNCTION reject_category_delete() RETURNS trigger AS $$
			BEGIN
				RAISE EXCEPTION 'category delete rejected';
			END;
			$$ LANGUAGE plpgsql`)
		require.NoError(t, err)
		_, err = db.Exec(`
			CREATE TRIGGER block_category_delete
				BEFORE DELETE ON categories
				FOR EACH ROW EXECUTE FUNCTION reject_category_delete()`)
		require.NoError(t, err)
		t.Cleanup(func() {
			_, _ = db.Exec(`DROP TRIGGER block_category_delete ON categories`)
			_, _ = db.Exec(`DROP FUNCTION reject_category_delete()`)
		})

		assert.Error(t, categoryRepo.DeleteWithTags(transport.ID))

		transportTags, err := tagRepo.FindByCategoryID(transport.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, len(transportTags))

		_, err = categoryRepo.FindByID(transport.ID)
		assert.NoError(t, err)
	})
}
