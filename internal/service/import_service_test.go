package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/worktimer/internal/db"
	"github.com/alexanderramin/worktimer/internal/history"
	"github.com/alexanderramin/worktimer/internal/repository"
	"github.com/alexanderramin/worktimer/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededCSV(t *testing.T, content string) *history.CSVStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timer_data")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return history.NewCSVStore(path)
}

func TestImportService_CopiesValidRecords(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewImportService(db.NewSQLiteUnitOfWork(database), nil)
	src := seededCSV(t, "Work,Play,End\n10,1,100\nbad,row\n20,2,200\n")

	res, err := svc.Import(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 1, res.Skipped)

	got, _, err := repository.NewSQLiteHistoryRepo(database).ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(10), got[0].Work)
	assert.Equal(t, uint64(200), got[1].End)
}

func TestImportService_RollsBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	boom := errors.New("disk I/O error")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: boom}
	svc := NewImportService(uow, nil)
	src := seededCSV(t, "Work,Play,End\n1,1,1\n2,2,2\n3,3,3\n")

	_, err := svc.Import(context.Background(), src)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	n, err := repository.NewSQLiteHistoryRepo(database).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestImportService_SkipsOutOfRangeRow(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewImportService(db.NewSQLiteUnitOfWork(database), nil)
	src := seededCSV(t, "Work,Play,End\n1,2,3\n4,5,18446744073709551615\n6,7,8\n")

	res, err := svc.Import(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, &ImportResult{Imported: 2, Skipped: 1}, res)
}

func TestImportService_EmptySource(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewImportService(db.NewSQLiteUnitOfWork(database), nil)
	src := history.NewCSVStore(filepath.Join(t.TempDir(), "absent"))

	res, err := svc.Import(context.Background(), src)
	require.NoError(t, err)
	assert.Zero(t, res.Imported)
}
