package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/worktimer/internal/cli/formatter"
	"github.com/alexanderramin/worktimer/internal/clock"
	"github.com/alexanderramin/worktimer/internal/domain"
	"github.com/alexanderramin/worktimer/internal/driver"
	"github.com/alexanderramin/worktimer/internal/timer"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg time.Time

type savedMsg struct{ err error }

type timerKeyMap struct {
	Pause key.Binding
	Quit  key.Binding
}

func newTimerKeyMap(pause, quit string) timerKeyMap {
	return timerKeyMap{
		Pause: key.NewBinding(key.WithKeys(pause), key.WithHelp(pause, "pause/resume")),
		Quit:  key.NewBinding(key.WithKeys(quit, "ctrl+c"), key.WithHelp(quit, "quit and save")),
	}
}

func (k timerKeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Pause, k.Quit} }
func (k timerKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// timerModel runs a session inside a bubbletea program. It follows the same
// rules as the plain driver: ticks recompute from absolute elapsed time and
// the finalized record is appended once.
type timerModel struct {
	ctx      context.Context
	clock    clock.Clock
	timer    *timer.Timer
	recorder driver.Recorder
	period   time.Duration
	keys     timerKeyMap
	help     help.Model

	snapshot  *timer.Snapshot
	persisted bool
	err       error
}

func newTimerModel(ctx context.Context, c clock.Clock, recorder driver.Recorder, keys timerKeyMap, period time.Duration) *timerModel {
	if period <= 0 {
		period = driver.DefaultPeriod
	}
	return &timerModel{
		ctx:      ctx,
		clock:    c,
		timer:    timer.New(c.Now()),
		recorder: recorder,
		period:   period,
		keys:     keys,
		help:     help.New(),
	}
}

func (m *timerModel) tick() tea.Cmd {
	return tea.Tick(m.period, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *timerModel) Init() tea.Cmd {
	return m.tick()
}

func (m *timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.snapshot != nil {
			return m, nil
		}
		m.timer.Tick(m.clock.Since(m.timer.Start()))
		return m, m.tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, m.finish()
		case key.Matches(msg, m.keys.Pause):
			m.timer.Tick(m.clock.Since(m.timer.Start()))
			m.timer.TogglePause()
		}
		return m, nil

	case savedMsg:
		m.persisted = true
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

// finish finalizes once; later quit presses are ignored.
func (m *timerModel) finish() tea.Cmd {
	if m.snapshot != nil {
		return nil
	}
	m.timer.Tick(m.clock.Since(m.timer.Start()))
	snap := m.timer.Finalize(m.clock.Now())
	m.snapshot = &snap

	if m.recorder == nil {
		return tea.Quit
	}
	recorder, ctx, record := m.recorder, m.ctx, snap.Record()
	return func() tea.Msg {
		err := recorder.Append(ctx, record)
		if err != nil && !errors.Is(err, domain.ErrPersistence) {
			err = fmt.Errorf("%w: %w", domain.ErrPersistence, err)
		}
		return savedMsg{err: err}
	}
}

func (m *timerModel) View() string {
	work, pause := m.timer.Work(), m.timer.Pause()
	if m.snapshot != nil {
		work, pause = m.snapshot.Work, m.snapshot.Pause
	}
	workLine, playLine := formatter.TimerLines(work, pause, m.timer.Paused())

	var b strings.Builder
	b.WriteString(formatter.RenderBox("worktimer", workLine+"\n"+playLine))
	b.WriteString("\n")
	if m.snapshot != nil {
		b.WriteString(formatter.Dim("Session finished."))
	} else {
		if m.timer.Paused() {
			b.WriteString(formatter.Dim("paused") + "  ")
		}
		b.WriteString(m.help.View(m.keys))
	}
	b.WriteString("\n")
	return b.String()
}

// Snapshot returns the finalized session, if any.
func (m *timerModel) Snapshot() (timer.Snapshot, bool) {
	if m.snapshot == nil {
		return timer.Snapshot{}, false
	}
	return *m.snapshot, true
}
