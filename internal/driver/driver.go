// Package driver runs the fixed-period render/input loop around a timer.
package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/worktimer/internal/clock"
	"github.com/alexanderramin/worktimer/internal/domain"
	"github.com/alexanderramin/worktimer/internal/timer"
)

// DefaultPeriod is the redraw interval of an interactive session.
const DefaultPeriod = time.Second

// Event is a control event produced by an Input.
type Event int

const (
	EventNone Event = iota
	EventPause
	EventQuit
	EventOther
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventPause:
		return "pause"
	case EventQuit:
		return "quit"
	default:
		return "other"
	}
}

// Renderer redraws the session display. Implementations swallow their own
// output errors.
type Renderer interface {
	Draw(work, pause uint64, paused bool)
}

// Input blocks up to maxWait for a key event and returns EventNone on timeout.
type Input interface {
	PollEvent(maxWait time.Duration) (Event, error)
}

// Recorder persists a finalized session.
type Recorder interface {
	Append(ctx context.Context, r domain.Record) error
}

// Driver is the single-threaded loop that paces a session.
type Driver struct {
	clock    clock.Clock
	renderer Renderer
	input    Input
	recorder Recorder
	logger   *slog.Logger
	period   time.Duration
}

// Option configures a Driver.
type Option func(*Driver)

// WithPeriod overrides the tick period.
func WithPeriod(d time.Duration) Option {
	return func(drv *Driver) {
		if d > 0 {
			drv.period = d
		}
	}
}

// WithLogger sets the logger for session lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(drv *Driver) {
		if l != nil {
			drv.logger = l
		}
	}
}

// New creates a Driver. recorder may be nil, in which case the session is
// tracked and displayed but never persisted.
func New(c clock.Clock, r Renderer, in Input, recorder Recorder, opts ...Option) *Driver {
	d := &Driver{
		clock:    c,
		renderer: r,
		input:    in,
		recorder: recorder,
		logger:   slog.New(slog.DiscardHandler),
		period:   DefaultPeriod,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run drives a new session until the quit event and returns its snapshot.
// A non-nil error means the session ended but could not be fully handled:
// either the input source failed or the record could not be persisted.
// The snapshot is valid in both cases.
func (d *Driver) Run(ctx context.Context) (timer.Snapshot, error) {
	tm := timer.New(d.clock.Now())
	d.logger.InfoContext(ctx, "session_started", "start", tm.Start().Format(time.RFC3339))

	for {
		iterStart := d.clock.Now()
		tm.Tick(d.clock.Since(tm.Start()))
		d.renderer.Draw(tm.Work(), tm.Pause(), tm.Paused())

		wait := d.period - d.clock.Since(iterStart)
		if wait < 0 {
			wait = 0
		}
		ev, err := d.input.PollEvent(wait)
		if err != nil {
			tm.Tick(d.clock.Since(tm.Start()))
			if tm.Work()+tm.Pause() == 0 {
				// Input that closes before a second has passed is not a session.
				snap := tm.Finalize(d.clock.Now())
				d.logger.WarnContext(ctx, "session_not_persisted", "reason", "input closed immediately")
				return snap, fmt.Errorf("reading input: %w", err)
			}
			snap, persistErr := d.finish(ctx, tm)
			if persistErr != nil {
				return snap, fmt.Errorf("reading input: %v (%w)", err, persistErr)
			}
			return snap, fmt.Errorf("reading input: %w", err)
		}

		switch ev {
		case EventPause:
			tm.TogglePause()
		case EventQuit:
			return d.finish(ctx, tm)
		}
	}
}

// finish finalizes the timer and appends its record exactly once.
func (d *Driver) finish(ctx context.Context, tm *timer.Timer) (timer.Snapshot, error) {
	tm.Tick(d.clock.Since(tm.Start()))
	snap := tm.Finalize(d.clock.Now())
	d.renderer.Draw(snap.Work, snap.Pause, tm.Paused())
	d.logger.InfoContext(ctx, "session_finalized",
		"work_seconds", snap.Work,
		"pause_seconds", snap.Pause,
		"end_unix", snap.End.Unix(),
	)

	if d.recorder == nil {
		d.logger.WarnContext(ctx, "session_not_persisted", "reason", "no history store")
		return snap, nil
	}
	if err := d.recorder.Append(ctx, snap.Record()); err != nil {
		if !errors.Is(err, domain.ErrPersistence) {
			err = fmt.Errorf("%w: %w", domain.ErrPersistence, err)
		}
		d.logger.ErrorContext(ctx, "session_persist_failed", "error", err.Error())
		return snap, err
	}
	return snap, nil
}
