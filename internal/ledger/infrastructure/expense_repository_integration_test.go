package infrastructure

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	database "github.com/kakeibo-app/kakeibo/db"
	"github.com/kakeibo-app/kakeibo/internal/ledger/domain"
	ledgerErrors "github.com/kakeibo-app/kakeibo/internal/ledger/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("kakeibo_test"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, database.RunMigrations(db))
	return db
}

func TestExpenseRepository_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed repository test in short mode")
	}

	db := setupTestDB(t)
	repo := NewExpenseRepository(db)

	now := time.Now().UTC().Truncate(time.Second)
	expense := domain.Expense{
		ID:            "3f0a0d3c-9f5a-4a21-a2a8-7f6f4f7cf001",
		UserID:        "b2f6a1de-0000-4000-8000-000000000001",
		Date:          time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Amount:        1200,
		BigCategory:   "食費",
		Tags:          "ランチ, 外食",
		PaymentMethod: "現金",
		Description:   "昼ごはん",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	require.NoError(t, repo.Save(expense))

	other := expense
	other.ID = "3f0a0d3c-9f5a-4a21-a2a8-7f6f4f7cf002"
	other.UserID = "b2f6a1de-0000-4000-8000-000000000002"
	require.NoError(t, repo.Save(other))

	t.Run("FindByUser returns only own rows", func(t *testing.T) {
		expenses, err := repo.FindByUser(expense.UserID)
		require.NoError(t, err)
		require.Equal(t, 1, len(expenses))
		assert.Equal(t, expense.ID, expenses[0].ID)
		assert.Equal(t, "ランチ, 外食", expenses[0].Tags)
	})

	t.Run("partial update touches only supplied fields", func(t *testing.T) {
		amount := 1500.0
		err := repo.Update(expense.UserID, expense.ID, domain.ExpenseUpdate{Amount: &amount}, time.Now().UTC())
		require.NoError(t, err)

		expenses, err := repo.FindByUser(expense.UserID)
		require.NoError(t, err)
		assert.Equal(t, 1500.0, expenses[0].Amount)
		assert.Equal(t, "食費", expenses[0].BigCategory)
		assert.Equal(t, "昼ごはん", expenses[0].Description)
	})

	t.Run("update by another user is not found", func(t *testing.T) {
		amount := 1.0
		err := repo.Update(other.UserID, expense.ID, domain.ExpenseUpdate{Amount: &amount}, time.Now().UTC())
		assert.ErrorIs(t, err, ledgerErrors.ErrNotFound)
	})

	t.Run("delete enforces ownership", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(other.UserID, expense.ID), ledgerErrors.ErrNotFound)
		assert.NoError(t, repo.Delete(expense.UserID, expense.ID))

		expenses, err := repo.FindByUser(expense.UserID)
		require.NoError(t, err)
		assert.Empty(t, expenses)
	})
}
