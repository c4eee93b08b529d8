package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/worktimer/internal/clock"
	"github.com/alexanderramin/worktimer/internal/domain"
	"github.com/alexanderramin/worktimer/internal/history"
	"github.com/alexanderramin/worktimer/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newReportFixture returns a report service over a CSV store seeded with
// records, with "now" at testutil.DefaultEnd in UTC.
func newReportFixture(t *testing.T, records ...domain.Record) (ReportService, *bytes.Buffer) {
	t.Helper()
	store := history.NewCSVStore(filepath.Join(t.TempDir(), "timer_data"))
	ctx := context.Background()
	require.NoError(t, store.EnsureInitialized(ctx))
	for _, r := range records {
		require.NoError(t, store.Append(ctx, r))
	}
	logs := new(bytes.Buffer)
	svc := NewReportService(store, clock.NewFake(testutil.DefaultEnd), time.UTC, NewLogger(logs, "warn"))
	return svc, logs
}

func TestReportService_Today(t *testing.T) {
	svc, _ := newReportFixture(t,
		testutil.NewTestRecord(testutil.WithWork(100), testutil.WithPause(50)),
		testutil.NewTestRecord(testutil.WithWork(200)),
		testutil.RecordsOnDays(999, 1)[0],
	)

	b, err := svc.Today(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", b.Date.String())
	assert.Equal(t, domain.Totals{Work: 300, Pause: 50}, b.Totals)
}

func TestReportService_LastXDays(t *testing.T) {
	svc, _ := newReportFixture(t, testutil.RecordsOnDays(60, 0, 1, 2, 2, 3)...)

	buckets, err := svc.LastXDays(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, buckets, 3)
	assert.Equal(t, uint64(60), buckets[0].Work)
	assert.Equal(t, uint64(60), buckets[1].Work)
	assert.Equal(t, uint64(120), buckets[2].Work)
}

func TestReportService_LastXDaysRejectsNonPositive(t *testing.T) {
	svc, _ := newReportFixture(t)
	_, err := svc.LastXDays(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidDayCount)
}

func TestReportService_LastXDaysRejectsOversizedWindow(t *testing.T) {
	svc, _ := newReportFixture(t)
	_, err := svc.LastXDays(context.Background(), MaxDayCount+1)
	assert.ErrorIs(t, err, ErrInvalidDayCount)

	buckets, err := svc.LastXDays(context.Background(), MaxDayCount)
	require.NoError(t, err)
	assert.Len(t, buckets, MaxDayCount)
}

func TestReportService_Range(t *testing.T) {
	svc, _ := newReportFixture(t, testutil.RecordsOnDays(30, 0, 2, 2, 9)...)

	start, _ := domain.ParseDate("2024-06-05")
	end, _ := domain.ParseDate("2024-06-10")
	rep, err := svc.Range(context.Background(), start, end)
	require.NoError(t, err)

	require.Len(t, rep.Days, 2)
	assert.Equal(t, "2024-06-08", rep.Days[0].Date.String())
	assert.Equal(t, uint64(60), rep.Days[0].Work)
	assert.Equal(t, "2024-06-10", rep.Days[1].Date.String())
	assert.Equal(t, domain.Totals{Work: 90}, rep.Total)
}

func TestReportService_RangeInvalid(t *testing.T) {
	svc, _ := newReportFixture(t)
	start, _ := domain.ParseDate("2024-06-10")
	end, _ := domain.ParseDate("2024-06-01")

	_, err := svc.Range(context.Background(), start, end)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestReportService_WarnsAboutCorruptRows(t *testing.T) {
	svc, logs := newReportFixture(t, testutil.NewTestRecord(testutil.WithWork(10)))
	path := svc.(*reportService).store.(*history.CSVStore).Path()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("garbage\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b, err := svc.Today(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(10), b.Work)
	assert.Contains(t, logs.String(), "skipping corrupt history record")
	assert.Contains(t, logs.String(), "line=3")
}

func TestReportService_ObservesUseCases(t *testing.T) {
	store := history.NewCSVStore(filepath.Join(t.TempDir(), "timer_data"))
	logs := new(bytes.Buffer)
	logger := NewLogger(logs, "info")
	svc := NewReportService(store, clock.NewFake(testutil.DefaultEnd), time.UTC, logger, NewLogUseCaseObserver(logger))

	_, err := svc.Today(context.Background())
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "use_case=today")
	assert.Contains(t, logs.String(), "success=true")
}
