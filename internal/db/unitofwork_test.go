package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/worktimer/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countRecords(t *testing.T, tx db.DBTX) int {
	t.Helper()
	var n int
	require.NoError(t, tx.QueryRowContext(context.Background(),
		`SELECT COUNT(*) FROM history_records`).Scan(&n))
	return n
}

func insertRecord(ctx context.Context, tx db.DBTX, id string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO history_records (id, work_seconds, pause_seconds, end_unix, created_at)
		 VALUES (?, 1, 2, 3, '2024-06-10T00:00:00Z')`, id)
	return err
}

func TestOpenDB_MigrationsAreIdempotent(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, db.Migrate(database))
	assert.Equal(t, 0, countRecords(t, database))
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	uow := db.NewSQLiteUnitOfWork(database)

	err = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertRecord(ctx, tx, "a")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countRecords(t, database))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	uow := db.NewSQLiteUnitOfWork(database)

	boom := errors.New("boom")
	err = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertRecord(ctx, tx, "a"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countRecords(t, database))
}

func TestOpenDB_CreatesDirectory(t *testing.T) {
	path := t.TempDir() + "/nested/history.db"
	database, err := db.OpenDB(path)
	require.NoError(t, err)
	require.NoError(t, database.Close())
}
