package domain

import (
	"fmt"
	"time"
)

// DateLayout is the textual form accepted and printed for calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar day with no time-of-day or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day of t as observed in loc.
func DateOf(t time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.In(loc).Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: use YYYY-MM-DD format", s)
	}
	return DateOf(t, time.UTC), nil
}

const secondsPerDay = 24 * 60 * 60

// utcMidnight anchors the date in UTC so day arithmetic is immune to DST.
func (d Date) utcMidnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days later (earlier when n is negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.utcMidnight().AddDate(0, 0, n), time.UTC)
}

// DaysUntil returns the number of calendar days from d to o.
// It is negative when o precedes d.
func (d Date) DaysUntil(o Date) int {
	return int((o.utcMidnight().Unix() - d.utcMidnight().Unix()) / secondsPerDay)
}

func (d Date) Before(o Date) bool { return d.DaysUntil(o) > 0 }
func (d Date) After(o Date) bool  { return d.DaysUntil(o) < 0 }

// Weekday reports the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.utcMidnight().Weekday()
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
