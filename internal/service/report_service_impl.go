package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/worktimer/internal/clock"
	"github.com/alexanderramin/worktimer/internal/domain"
	"github.com/alexanderramin/worktimer/internal/history"
	"github.com/alexanderramin/worktimer/internal/report"
)

// MaxDayCount bounds a last-x-days window to roughly a century.
const MaxDayCount = 36600

// ErrInvalidDayCount indicates a last-x-days window outside 1..MaxDayCount.
var ErrInvalidDayCount = errors.New("day count must be between 1 and 36600")

type reportService struct {
	store    history.Store
	clock    clock.Clock
	loc      *time.Location
	logger   *slog.Logger
	observer UseCaseObserver
}

// NewReportService answers history queries against store. Calendar days are
// computed in loc; nil means the local zone.
func NewReportService(
	store history.Store,
	c clock.Clock,
	loc *time.Location,
	logger *slog.Logger,
	observers ...UseCaseObserver,
) ReportService {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &reportService{
		store:    store,
		clock:    c,
		loc:      loc,
		logger:   logger,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *reportService) today() domain.Date {
	return domain.DateOf(s.clock.Now(), s.loc)
}

func (s *reportService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

func (s *reportService) Today(ctx context.Context) (bucket domain.DayBucket, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { s.observe(ctx, "today", startedAt, fields, err) }()

	records, skipped, err := loadRecords(ctx, s.store, s.logger)
	if err != nil {
		return domain.DayBucket{}, err
	}
	fields["records"] = len(records)
	fields["skipped"] = skipped
	return report.Today(records, s.today(), s.loc), nil
}

func (s *reportService) LastXDays(ctx context.Context, x int) (buckets []domain.DayBucket, err error) {
	startedAt := time.Now()
	fields := map[string]any{"days": x}
	defer func() { s.observe(ctx, "last-x-days", startedAt, fields, err) }()

	if x <= 0 || x > MaxDayCount {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidDayCount, x)
	}
	records, skipped, err := loadRecords(ctx, s.store, s.logger)
	if err != nil {
		return nil, err
	}
	fields["records"] = len(records)
	fields["skipped"] = skipped
	return report.LastXDays(records, x, s.today(), s.loc), nil
}

func (s *reportService) Range(ctx context.Context, start, end domain.Date) (out *RangeReport, err error) {
	startedAt := time.Now()
	fields := map[string]any{"start": start.String(), "end": end.String()}
	defer func() { s.observe(ctx, "range", startedAt, fields, err) }()

	if start.After(end) {
		return nil, fmt.Errorf("%w: start %s is after end %s", domain.ErrInvalidRange, start, end)
	}
	records, skipped, err := loadRecords(ctx, s.store, s.logger)
	if err != nil {
		return nil, err
	}
	fields["records"] = len(records)
	fields["skipped"] = skipped

	days, err := report.Range(records, start, end, s.loc)
	if err != nil {
		return nil, err
	}
	sorted := report.SortedDays(days)
	return &RangeReport{
		Start: start,
		End:   end,
		Days:  sorted,
		Total: report.Sum(sorted),
	}, nil
}

func (s *reportService) List(ctx context.Context) ([]domain.Record, error) {
	records, _, err := loadRecords(ctx, s.store, s.logger)
	return records, err
}
