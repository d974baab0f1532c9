//go:build integration

package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/carson-networks/household-ledger/internal/storage/sqlconfig"
)

func newPostgresStorage(t *testing.T) *Storage {
	t.Helper()
	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("ledger"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("testpassword"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	result, err := RunMigrations(db)
	require.NoError(t, err)
	assert.Equal(t, uint(0), result.PreMigrationVersion)
	assert.Equal(t, uint(1), result.PostMigrationVersion)

	return NewSQLStorage(db)
}

func TestSQLTable_RoundTrip(t *testing.T) {
	store := newPostgresStorage(t)
	ctx := context.Background()
	actor := uuid.Must(uuid.NewV4())
	now := time.Now().UTC().Truncate(time.Second)

	food, err := store.Categories.Insert(ctx, sqlconfig.Values{
		"name": "FOOD", "type": "EXPENSE",
		"created_at": now, "updated_at": now, "created_by": actor, "updated_by": actor,
	})
	require.NoError(t, err)
	assert.False(t, food.ID.IsNil())
	require.NotNil(t, food.CreatedBy)
	assert.Equal(t, actor, *food.CreatedBy)

	for i, day := range []int{1, 15, 29} {
		_, err := store.Transactions.Insert(ctx, sqlconfig.Values{
			"category_id":      food.ID,
			"amount":           decimal.NewFromInt(int64(10 * (i + 1))),
			"transaction_date": time.Date(2024, 2, day, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}
	_, err = store.Transactions.Insert(ctx, sqlconfig.Values{
		"amount":           decimal.NewFromInt(99),
		"transaction_date": time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	q := sqlconfig.NewQuery().
		FilterNull(sqlconfig.ColumnDeletedAt).
		FilterRange(sqlconfig.ColumnTransactionDate, "2024-02-01", "2024-02-29").
		OrderBy(sqlconfig.ColumnTransactionDate, true).
		OrderBy(sqlconfig.ColumnID, true).
		Range(0, 1)
	rows, total, err := store.Transactions.Select(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, rows, 2)
	assert.Equal(t, 29, rows[0].TransactionDate.Day())
	assert.True(t, decimal.NewFromInt(30).Equal(rows[0].Amount))

	lastPage, total, err := store.Transactions.Select(ctx, q.Range(2, 3))
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, lastPage, 1)
	assert.Equal(t, 1, lastPage[0].TransactionDate.Day())

	pastEnd, total, err := store.Transactions.Select(ctx, q.Range(10, 11))
	require.NoError(t, err)
	assert.Empty(t, pastEnd)
	assert.Equal(t, 3, total)

	deleted, err := store.Categories.Update(ctx,
		sqlconfig.NewQuery().FilterEquals(sqlconfig.ColumnID, food.ID).FilterNull(sqlconfig.ColumnDeletedAt),
		sqlconfig.Values{"deleted_at": now, "deleted_by": actor, "updated_at": now})
	require.NoError(t, err)
	require.Len(t, deleted, 1)
	assert.NotNil(t, deleted[0].DeletedAt)

	again, err := store.Categories.Update(ctx,
		sqlconfig.NewQuery().FilterEquals(sqlconfig.ColumnID, food.ID).FilterNull(sqlconfig.ColumnDeletedAt),
		sqlconfig.Values{"deleted_at": now})
	require.NoError(t, err)
	assert.Empty(t, again)

	byID, _, err := store.Categories.Select(ctx, sqlconfig.NewQuery().FilterIn(sqlconfig.ColumnID, food.ID))
	require.NoError(t, err)
	require.Len(t, byID, 1)
	assert.Equal(t, "FOOD", byID[0].Name)

	none, total, err := store.Categories.Select(ctx, sqlconfig.NewQuery().FilterIn(sqlconfig.ColumnID))
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.Zero(t, total)
}
