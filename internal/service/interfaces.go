package service

import (
	"context"

	"github.com/alexanderramin/worktimer/internal/domain"
	"github.com/alexanderramin/worktimer/internal/history"
)

// RangeReport is the per-day breakdown of an inclusive date range.
type RangeReport struct {
	Start domain.Date
	End   domain.Date
	Days  []domain.DayBucket
	Total domain.Totals
}

// ImportResult summarizes a history import.
type ImportResult struct {
	Imported int
	Skipped  int
}

type ReportService interface {
	Today(ctx context.Context) (domain.DayBucket, error)
	LastXDays(ctx context.Context, x int) ([]domain.DayBucket, error)
	Range(ctx context.Context, start, end domain.Date) (*RangeReport, error)
	List(ctx context.Context) ([]domain.Record, error)
}

type ImportService interface {
	Import(ctx context.Context, src history.Store) (*ImportResult, error)
}
