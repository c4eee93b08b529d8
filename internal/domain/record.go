package domain

import "time"

// Record is one completed timer session as persisted in history.
// All fields are whole seconds; End is a Unix timestamp.
type Record struct {
	Work  uint64
	Pause uint64
	End   uint64
}

// EndTime returns the session end instant.
func (r Record) EndTime() time.Time {
	return time.Unix(int64(r.End), 0)
}

// Totals holds summed work and pause seconds.
type Totals struct {
	Work  uint64
	Pause uint64
}

// Add accumulates a record into the totals.
func (t *Totals) Add(r Record) {
	t.Work += r.Work
	t.Pause += r.Pause
}

// Plus returns the sum of two totals.
func (t Totals) Plus(o Totals) Totals {
	return Totals{Work: t.Work + o.Work, Pause: t.Pause + o.Pause}
}

// DayBucket is the aggregate of all records ending on one local calendar day.
type DayBucket struct {
	Date Date
	Totals
}
