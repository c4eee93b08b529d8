package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alexanderramin/worktimer/internal/cli/formatter"
	"github.com/alexanderramin/worktimer/internal/config"
	"github.com/alexanderramin/worktimer/internal/domain"
	"github.com/alexanderramin/worktimer/internal/driver"
	"github.com/alexanderramin/worktimer/internal/terminal"
	"github.com/alexanderramin/worktimer/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// SessionIO replaces the terminal backends of "start".
type SessionIO struct {
	// Keys is read instead of stdin and never put into raw mode.
	Keys io.Reader
	// Period overrides the one-second redraw interval.
	Period time.Duration
}

func newStartCmd(app *App, store *storeFlag) *cobra.Command {
	var tui bool

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a work session (p pauses, q quits and saves)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := terminal.ParseKeys(app.Config.PauseKey, app.Config.QuitKey)
			if err != nil {
				return err
			}

			recorder, closeStore := app.sessionRecorder(cmd, store.kind)
			defer closeStore()

			var snap timer.Snapshot
			if tui {
				snap, err = app.runTUI(cmd, recorder)
			} else {
				snap, err = app.runPlain(cmd, recorder, keys)
			}
			if err != nil {
				if !errors.Is(err, domain.ErrPersistence) && !errors.Is(err, terminal.ErrInputClosed) {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), "Session ended. ")
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTotals(domain.Totals{Work: snap.Work, Pause: snap.Pause}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&tui, "tui", false, "Run the session as a full-screen TUI")
	return cmd
}

// sessionRecorder opens the history backend for a session. When the history
// location is unknown it warns once and returns a nil recorder so the session
// still runs.
func (a *App) sessionRecorder(cmd *cobra.Command, kind config.StoreKind) (driver.Recorder, func()) {
	h, err := a.openStore(kind)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; this session will not be saved\n", err)
		if !errors.Is(err, domain.ErrMissingHomeDirectory) {
			a.Logger.Error("history store unavailable", "error", err)
		}
		return nil, func() {}
	}
	if err := h.Store.EnsureInitialized(cmd.Context()); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}
	return h.Store, func() { _ = h.Close() }
}

func (a *App) runPlain(cmd *cobra.Command, recorder driver.Recorder, keys terminal.Keys) (timer.Snapshot, error) {
	var kb *terminal.Keyboard
	if a.Session.Keys != nil {
		kb = terminal.NewKeyboard(a.Session.Keys, keys)
	} else {
		var err error
		kb, err = terminal.OpenKeyboard(os.Stdin, keys)
		if err != nil {
			return timer.Snapshot{}, err
		}
	}
	defer func() { _ = kb.Close() }()

	screen := terminal.NewScreen(cmd.OutOrStdout())
	defer func() { _ = screen.Close() }()

	opts := []driver.Option{driver.WithLogger(a.Logger)}
	if a.Session.Period > 0 {
		opts = append(opts, driver.WithPeriod(a.Session.Period))
	}
	return driver.New(a.Clock, screen, kb, recorder, opts...).Run(cmd.Context())
}

func (a *App) runTUI(cmd *cobra.Command, recorder driver.Recorder) (timer.Snapshot, error) {
	model := newTimerModel(cmd.Context(), a.Clock, recorder,
		newTimerKeyMap(a.Config.PauseKey, a.Config.QuitKey), a.Session.Period)

	opts := []tea.ProgramOption{tea.WithContext(cmd.Context()), tea.WithOutput(cmd.OutOrStdout())}
	if a.Session.Keys != nil {
		opts = append(opts, tea.WithInput(a.Session.Keys))
	}
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return timer.Snapshot{}, fmt.Errorf("running timer: %w", err)
	}
	m := final.(*timerModel)
	snap, _ := m.Snapshot()
	return snap, m.err
}
