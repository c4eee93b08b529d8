package repository

import (
	"context"
	"fmt"
	"math"

	"github.com/alexanderramin/worktimer/internal/db"
	"github.com/alexanderramin/worktimer/internal/domain"
	"github.com/google/uuid"
)

// SQLiteHistoryRepo implements history.Store on a SQLite database.
type SQLiteHistoryRepo struct {
	db db.DBTX
}

// NewSQLiteHistoryRepo creates a repo over a database or transaction.
func NewSQLiteHistoryRepo(db db.DBTX) *SQLiteHistoryRepo {
	return &SQLiteHistoryRepo{db: db}
}

// EnsureInitialized is a no-op: the schema is applied when the database opens.
func (r *SQLiteHistoryRepo) EnsureInitialized(context.Context) error { return nil }

func (r *SQLiteHistoryRepo) Append(ctx context.Context, rec domain.Record) error {
	for _, v := range []uint64{rec.Work, rec.Pause, rec.End} {
		if v > math.MaxInt64 {
			return fmt.Errorf("%w: value %d exceeds storage range", domain.ErrPersistence, v)
		}
	}
	query := `INSERT INTO history_records (id, work_seconds, pause_seconds, end_unix, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		uuid.New().String(),
		int64(rec.Work),
		int64(rec.Pause),
		int64(rec.End),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("%w: inserting history record: %w", domain.ErrPersistence, err)
	}
	return nil
}

// ReadAll returns every record ordered by end time. Rows violating the
// schema cannot exist, so the corrupt list is always empty.
func (r *SQLiteHistoryRepo) ReadAll(ctx context.Context) ([]domain.Record, []*domain.CorruptRecordError, error) {
	query := `SELECT work_seconds, pause_seconds, end_unix
		FROM history_records ORDER BY end_unix, created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: listing history records: %w", domain.ErrPersistence, err)
	}
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		var work, pause, end int64
		if err := rows.Scan(&work, &pause, &end); err != nil {
			return nil, nil, fmt.Errorf("scanning history record: %w", err)
		}
		records = append(records, domain.Record{Work: uint64(work), Pause: uint64(pause), End: uint64(end)})
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating history records: %w", err)
	}
	return records, nil, nil
}

// Count returns the number of stored records.
func (r *SQLiteHistoryRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM history_records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting history records: %w", err)
	}
	return n, nil
}
