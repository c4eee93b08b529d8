package testutil

import (
	"time"

	"github.com/alexanderramin/worktimer/internal/domain"
)

// DefaultEnd is the end instant used by NewTestRecord: 2024-06-10 12:00 UTC.
var DefaultEnd = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

// RecordOption customizes a fixture record.
type RecordOption func(*domain.Record)

func WithWork(sec uint64) RecordOption {
	return func(r *domain.Record) {
		r.Work = sec
	}
}

func WithPause(sec uint64) RecordOption {
	return func(r *domain.Record) {
		r.Pause = sec
	}
}

func WithEnd(t time.Time) RecordOption {
	return func(r *domain.Record) {
		r.End = uint64(t.Unix())
	}
}

// NewTestRecord returns a one-hour work session ending at DefaultEnd.
func NewTestRecord(opts ...RecordOption) domain.Record {
	r := domain.Record{Work: 3600, End: uint64(DefaultEnd.Unix())}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RecordsOnDays returns one record per offset, each ending at noon UTC
// offset days before DefaultEnd with the given work seconds.
func RecordsOnDays(work uint64, offsets ...int) []domain.Record {
	out := make([]domain.Record, 0, len(offsets))
	for _, off := range offsets {
		out = append(out, NewTestRecord(WithWork(work), WithEnd(DefaultEnd.AddDate(0, 0, -off))))
	}
	return out
}
