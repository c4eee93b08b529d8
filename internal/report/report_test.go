package report

import (
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/worktimer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	june10 = domain.Date{Year: 2024, Month: time.June, Day: 10}
	june8  = domain.Date{Year: 2024, Month: time.June, Day: 8}
	june7  = domain.Date{Year: 2024, Month: time.June, Day: 7}
	june1  = domain.Date{Year: 2024, Month: time.June, Day: 1}
)

// at builds a record ending at hour:00 UTC on the given date.
func at(d domain.Date, hour int, work, pause uint64) domain.Record {
	end := time.Date(d.Year, d.Month, d.Day, hour, 0, 0, 0, time.UTC)
	return domain.Record{Work: work, Pause: pause, End: uint64(end.Unix())}
}

func TestDayBucketIndex_Boundary(t *testing.T) {
	idx, ok := DayBucketIndex(june10, 3, june8)
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = DayBucketIndex(june10, 3, june7)
	assert.False(t, ok)
}

func TestDayBucketIndex_Cases(t *testing.T) {
	tests := []struct {
		name    string
		x       int
		day     domain.Date
		wantIdx int
		wantOK  bool
	}{
		{"reference day", 3, june10, 0, true},
		{"one day before", 3, june10.AddDays(-1), 1, true},
		{"future day", 3, june10.AddDays(1), 0, false},
		{"zero window", 0, june10, 0, false},
		{"negative window", -2, june10, 0, false},
		{"single day window excludes yesterday", 1, june10.AddDays(-1), 0, false},
		{"across month", 15, domain.Date{Year: 2024, Month: time.May, Day: 31}, 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := DayBucketIndex(june10, tt.x, tt.day)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantIdx, idx)
			}
		})
	}
}

func TestLastXDays_SingleDayExcludesOutOfRange(t *testing.T) {
	records := []domain.Record{
		at(june10, 9, 100, 50),
		at(june10, 15, 200, 0),
		at(june10.AddDays(-1), 12, 0, 0),
	}
	buckets := LastXDays(records, 1, june10, time.UTC)
	require.Len(t, buckets, 1)
	assert.Equal(t, june10, buckets[0].Date)
	assert.Equal(t, domain.Totals{Work: 300, Pause: 50}, buckets[0].Totals)
}

func TestLastXDays_OrdersTodayFirst(t *testing.T) {
	records := []domain.Record{
		at(june8, 10, 30, 3),
		at(june10, 10, 10, 1),
		at(june7, 10, 999, 999),
		at(june10.AddDays(-1), 10, 20, 2),
	}
	buckets := LastXDays(records, 3, june10, time.UTC)
	require.Len(t, buckets, 3)

	assert.Equal(t, june10, buckets[0].Date)
	assert.Equal(t, domain.Totals{Work: 10, Pause: 1}, buckets[0].Totals)
	assert.Equal(t, domain.Totals{Work: 20, Pause: 2}, buckets[1].Totals)
	assert.Equal(t, june8, buckets[2].Date)
	assert.Equal(t, domain.Totals{Work: 30, Pause: 3}, buckets[2].Totals)

	assert.Equal(t, domain.Totals{Work: 60, Pause: 6}, Sum(buckets))
}

func TestLastXDays_EmptyDaysAreZero(t *testing.T) {
	buckets := LastXDays(nil, 4, june10, time.UTC)
	require.Len(t, buckets, 4)
	for _, b := range buckets {
		assert.Zero(t, b.Work)
		assert.Zero(t, b.Pause)
	}
	assert.Nil(t, LastXDays(nil, 0, june10, time.UTC))
}

func TestLastXDays_BucketsInQueryLocation(t *testing.T) {
	// 23:30 UTC on June 9 is already June 10 two hours east.
	rec := domain.Record{Work: 60, End: uint64(time.Date(2024, 6, 9, 23, 30, 0, 0, time.UTC).Unix())}
	east := time.FixedZone("UTC+2", 2*60*60)

	assert.Equal(t, uint64(0), Today([]domain.Record{rec}, june10, time.UTC).Work)
	assert.Equal(t, uint64(60), Today([]domain.Record{rec}, june10, east).Work)
}

func TestToday(t *testing.T) {
	records := []domain.Record{at(june10, 8, 40, 5), at(june8, 8, 1, 1)}
	b := Today(records, june10, time.UTC)
	assert.Equal(t, june10, b.Date)
	assert.Equal(t, domain.Totals{Work: 40, Pause: 5}, b.Totals)
}

func TestSum_Empty(t *testing.T) {
	assert.Equal(t, domain.Totals{}, Sum(nil))
}

func TestRange_InvalidWhenStartAfterEnd(t *testing.T) {
	_, err := Range(nil, june10, june1, time.UTC)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRange))
}

func TestRange_InclusiveBounds(t *testing.T) {
	records := []domain.Record{
		at(june1, 10, 1, 0),
		at(june1.AddDays(-1), 10, 1000, 0),
		at(june8, 10, 5, 5),
		at(june8, 18, 5, 0),
		at(june10, 10, 7, 0),
		at(june10.AddDays(1), 10, 1000, 0),
	}
	days, err := Range(records, june1, june10, time.UTC)
	require.NoError(t, err)

	assert.Len(t, days, 3)
	assert.Equal(t, domain.Totals{Work: 1}, days[june1])
	assert.Equal(t, domain.Totals{Work: 10, Pause: 5}, days[june8])
	assert.Equal(t, domain.Totals{Work: 7}, days[june10])

	sorted := SortedDays(days)
	require.Len(t, sorted, 3)
	assert.Equal(t, june1, sorted[0].Date)
	assert.Equal(t, june8, sorted[1].Date)
	assert.Equal(t, june10, sorted[2].Date)
}

func TestRange_SameDay(t *testing.T) {
	days, err := Range([]domain.Record{at(june8, 1, 3, 2)}, june8, june8, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, domain.Totals{Work: 3, Pause: 2}, days[june8])
}
