// Package report buckets history records by local calendar day.
//
// Dates are derived from each record's stored instant at query time using
// the supplied location, so the same record may land on different days when
// queried from different zones.
package report

import (
	"fmt"
	"slices"
	"time"

	"github.com/alexanderramin/worktimer/internal/domain"
)

// DayBucketIndex returns how many days day precedes reference, provided day
// lies in the closed window of x days ending on reference.
func DayBucketIndex(reference domain.Date, x int, day domain.Date) (int, bool) {
	if x <= 0 {
		return 0, false
	}
	offset := day.DaysUntil(reference)
	if offset < 0 || offset >= x {
		return 0, false
	}
	return offset, true
}

// LastXDays returns x buckets where index 0 is reference and each later index
// is one day further in the past.
func LastXDays(records []domain.Record, x int, reference domain.Date, loc *time.Location) []domain.DayBucket {
	if x <= 0 {
		return nil
	}
	buckets := make([]domain.DayBucket, x)
	for i := range buckets {
		buckets[i].Date = reference.AddDays(-i)
	}
	for _, r := range records {
		idx, ok := DayBucketIndex(reference, x, domain.DateOf(r.EndTime(), loc))
		if !ok {
			continue
		}
		buckets[idx].Add(r)
	}
	return buckets
}

// Today returns the bucket for the reference day.
func Today(records []domain.Record, reference domain.Date, loc *time.Location) domain.DayBucket {
	return LastXDays(records, 1, reference, loc)[0]
}

// Sum folds buckets into a single total.
func Sum(buckets []domain.DayBucket) domain.Totals {
	var total domain.Totals
	for _, b := range buckets {
		total = total.Plus(b.Totals)
	}
	return total
}

// Range totals records per day for the inclusive window [start, end]. Days
// without records are absent from the result.
func Range(records []domain.Record, start, end domain.Date, loc *time.Location) (map[domain.Date]domain.Totals, error) {
	if start.After(end) {
		return nil, fmt.Errorf("%w: start %s is after end %s", domain.ErrInvalidRange, start, end)
	}
	out := make(map[domain.Date]domain.Totals)
	for _, r := range records {
		day := domain.DateOf(r.EndTime(), loc)
		if day.Before(start) || day.After(end) {
			continue
		}
		t := out[day]
		t.Add(r)
		out[day] = t
	}
	return out, nil
}

// SortedDays flattens a Range result into ascending day order.
func SortedDays(days map[domain.Date]domain.Totals) []domain.DayBucket {
	out := make([]domain.DayBucket, 0, len(days))
	for d, t := range days {
		out = append(out, domain.DayBucket{Date: d, Totals: t})
	}
	slices.SortFunc(out, func(a, b domain.DayBucket) int {
		return b.Date.DaysUntil(a.Date)
	})
	return out
}
