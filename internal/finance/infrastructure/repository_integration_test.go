package infrastructure

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sebuszqo/BudgetMate/internal/finance/domain"
)

const testSchema = `
CREATE TABLE categories (
    id      TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    name    TEXT NOT NULL,
    icon    TEXT NOT NULL DEFAULT '',
    color   TEXT NOT NULL DEFAULT '',
    type    TEXT NOT NULL
);

CREATE TABLE transactions (
    id          TEXT PRIMARY KEY,
    user_id     TEXT NOT NULL,
    type        TEXT NOT NULL,
    amount      DOUBLE PRECISION NOT NULL,
    category_id TEXT NOT NULL REFERENCES categories (id),
    date        TIMESTAMPTZ NOT NULL,
    note        TEXT NOT NULL DEFAULT ''
);

CREATE TABLE goals (
    id            TEXT PRIMARY KEY,
    user_id       TEXT NOT NULL,
    title         TEXT NOT NULL,
    target_amount DOUBLE PRECISION NOT NULL,
    saved_amount  DOUBLE PRECISION NOT NULL DEFAULT 0,
    deadline      TIMESTAMPTZ NOT NULL
);

CREATE TABLE settings (
    user_id  TEXT PRIMARY KEY,
    currency TEXT NOT NULL
);
`

// startTestDatabase spins up a throwaway Postgres and applies the schema.
// Needs a local Docker daemon, so it only runs when INTEGRATION is set.
func startTestDatabase(t *testing.T) *sql.DB {
	t.Helper()
	if os.Getenv("INTEGRATION") == "" {
		t.Skip("set INTEGRATION to run tests against a real database")
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("budgetmate_test"),
		postgres.WithUsername("budgetmate"),
		postgres.WithPassword("budgetmate"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
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

	_, err = db.Exec(testSchema)
	require.NoError(t, err)
	return db
}

func TestTransactionRepository_RoundTrip(t *testing.T) {
	db := startTestDatabase(t)
	categories := NewCategoryRepository(db)
	transactions := NewTransactionRepository(db)

	category := domain.Category{ID: "cat-1", UserID: "user-1", Name: "Food & Dining", Type: domain.TypeExpense}
	require.NoError(t, categories.Save(category))

	date := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	transaction := domain.Transaction{
		ID:         "tx-1",
		UserID:     "user-1",
		Type:       domain.TypeExpense,
		Amount:     25.5,
		CategoryID: "cat-1",
		Date:       date,
		Note:       "groceries",
	}
	require.NoError(t, transactions.Save(transaction))

	found, err := transactions.FindByID("tx-1", "user-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, transaction.Amount, found.Amount)
	assert.Equal(t, transaction.Note, found.Note)
	assert.True(t, found.Date.Equal(date))

	// scoped to the owning user
	foreign, err := transactions.FindByID("tx-1", "user-2")
	require.NoError(t, err)
	assert.Nil(t, foreign)

	found.Amount = 30
	found.Note = "groceries and coffee"
	require.NoError(t, transactions.Update(*found))

	updated, err := transactions.FindByID("tx-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 30.0, updated.Amount)

	require.NoError(t, transactions.Delete("tx-1", "user-1"))
	gone, err := transactions.FindByID("tx-1", "user-1")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestTransactionRepository_Filters(t *testing.T) {
	db := startTestDatabase(t)
	categories := NewCategoryRepository(db)
	transactions := NewTransactionRepository(db)

	require.NoError(t, categories.Save(domain.Category{ID: "cat-food", UserID: "user-1", Name: "Food & Dining", Type: domain.TypeExpense}))
	require.NoError(t, categories.Save(domain.Category{ID: "cat-salary", UserID: "user-1", Name: "Salary", Type: domain.TypeIncome}))

	base := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	seed := []domain.Transaction{
		{ID: "tx-1", UserID: "user-1", Type: domain.TypeExpense, Amount: 10, CategoryID: "cat-food", Date: base},
		{ID: "tx-2", UserID: "user-1", Type: domain.TypeExpense, Amount: 20, CategoryID: "cat-food", Date: base.AddDate(0, 0, 5)},
		{ID: "tx-3", UserID: "user-1", Type: domain.TypeIncome, Amount: 1000, CategoryID: "cat-salary", Date: base.AddDate(0, 0, 10)},
	}
	for _, transaction := range seed {
		require.NoError(t, transactions.Save(transaction))
	}

	byType, err := transactions.FindByUser("user-1", domain.TransactionFilter{Type: domain.TypeExpense})
	require.NoError(t, err)
	assert.Len(t, byType, 2)

	byCategory, err := transactions.FindByUser("user-1", domain.TransactionFilter{CategoryID: "cat-salary"})
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)
	assert.Equal(t, "tx-3", byCategory[0].ID)

	start := base.AddDate(0, 0, 3)
	byDate, err := transactions.FindByUser("user-1", domain.TransactionFilter{StartDate: &start})
	require.NoError(t, err)
	assert.Len(t, byDate, 2)

	// newest first
	all, err := transactions.FindByUser("user-1", domain.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "tx-3", all[0].ID)
	assert.Equal(t, "tx-1", all[2].ID)

	other, err := transactions.FindByUser("user-2", domain.TransactionFilter{})
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestCategoryRepository_RoundTrip(t *testing.T) {
	db := startTestDatabase(t)
	categories := NewCategoryRepository(db)

	category := domain.Category{ID: "cat-1", UserID: "user-1", Name: "Food & Dining", Icon: "🍽️", Color: "#ef4444", Type: domain.TypeExpense}
	require.NoError(t, categories.Save(category))

	exists, err := categories.ExistsByID("cat-1", "user-1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = categories.ExistsByID("cat-1", "user-2")
	require.NoError(t, err)
	assert.False(t, exists)

	count, err := categories.CountByUserAndType("user-1", domain.TypeExpense)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	category.Name = "Restaurants"
	require.NoError(t, categories.Update(category))

	found, err := categories.FindByID("cat-1", "user-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Restaurants", found.Name)
	assert.Equal(t, "🍽️", found.Icon)

	byType, err := categories.FindByUser("user-1", domain.TypeExpense)
	require.NoError(t, err)
	assert.Len(t, byType, 1)

	require.NoError(t, categories.Delete("cat-1", "user-1"))
	gone, err := categories.FindByID("cat-1", "user-1")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestGoalRepository_RoundTrip(t *testing.T) {
	db := startTestDatabase(t)
	goals := NewGoalRepository(db)

	deadline := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	goal := domain.Goal{ID: "goal-1", UserID: "user-1", Title: "Emergency Fund", TargetAmount: 1200, SavedAmount: 300, Deadline: deadline}
	require.NoError(t, goals.Save(goal))

	found, err := goals.FindByID("goal-1", "user-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 300.0, found.SavedAmount)
	assert.True(t, found.Deadline.Equal(deadline))

	require.NoError(t, goals.UpdateSavedAmount("goal-1", "user-1", 450))
	found, err = goals.FindByID("goal-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, 450.0, found.SavedAmount)

	found.Title = "Rainy Day Fund"
	require.NoError(t, goals.Update(*found))
	found, err = goals.FindByID("goal-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Rainy Day Fund", found.Title)

	list, err := goals.FindByUser("user-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, goals.Delete("goal-1", "user-1"))
	gone, err := goals.FindByID("goal-1", "user-1")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestSettingsRepository_Upsert(t *testing.T) {
	db := startTestDatabase(t)
	settings := NewSettingsRepository(db)

	missing, err := settings.Find("user-1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, settings.Upsert(domain.Settings{UserID: "user-1", Currency: "USD"}))
	require.NoError(t, settings.Upsert(domain.Settings{UserID: "user-1", Currency: "EUR"}))

	found, err := settings.Find("user-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "EUR", found.Currency)
}
