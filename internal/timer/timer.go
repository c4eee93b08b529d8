// Package timer implements the work/pause session state machine.
//
// Accumulators are recomputed from absolute elapsed time on every tick
// rather than incremented by deltas, so late or missed ticks never drift
// the totals: after each Tick, Work()+Pause() equals the elapsed seconds.
package timer

import (
	"time"

	"github.com/alexanderramin/worktimer/internal/domain"
)

// State is the timer mode.
type State string

const (
	StateRunning State = "running"
	StatePaused  State = "paused"
	StateQuit    State = "quit"
)

// Snapshot is the immutable result of finalizing a session.
type Snapshot struct {
	Work  uint64
	Pause uint64
	End   time.Time
}

// Record converts the snapshot into a persistable history record.
func (s Snapshot) Record() domain.Record {
	return domain.Record{Work: s.Work, Pause: s.Pause, End: uint64(s.End.Unix())}
}

// Timer owns the accumulators for a single session. It is not safe for
// concurrent use; the tick driver is its only caller.
type Timer struct {
	start  time.Time
	work   uint64
	pause  uint64
	paused bool
	final  *Snapshot
}

// New creates a running timer whose session began at start.
func New(start time.Time) *Timer {
	return &Timer{start: start}
}

// Start returns the session start instant.
func (t *Timer) Start() time.Time { return t.start }

func (t *Timer) Work() uint64  { return t.work }
func (t *Timer) Pause() uint64 { return t.pause }
func (t *Timer) Paused() bool  { return t.paused }
func (t *Timer) Quit() bool    { return t.final != nil }

// State reports the current mode.
func (t *Timer) State() State {
	switch {
	case t.final != nil:
		return StateQuit
	case t.paused:
		return StatePaused
	default:
		return StateRunning
	}
}

// Tick recomputes the active accumulator from the elapsed time since start.
// Elapsed time is truncated to whole seconds. A tick that reports less time
// than already accounted for is ignored.
func (t *Timer) Tick(elapsed time.Duration) {
	if t.final != nil || elapsed < 0 {
		return
	}
	secs := uint64(elapsed / time.Second)
	if secs < t.work+t.pause {
		return
	}
	if t.paused {
		t.pause = secs - t.work
	} else {
		t.work = secs - t.pause
	}
}

// TogglePause flips between running and paused. It has no effect once the
// timer has been finalized.
func (t *Timer) TogglePause() {
	if t.final != nil {
		return
	}
	t.paused = !t.paused
}

// Finalize ends the session at now and returns its snapshot. Later calls
// return the first snapshot unchanged.
func (t *Timer) Finalize(now time.Time) Snapshot {
	if t.final == nil {
		t.final = &Snapshot{Work: t.work, Pause: t.pause, End: now}
	}
	return *t.final
}
