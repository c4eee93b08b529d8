package cli

import (
	"log/slog"
	"time"

	"github.com/alexanderramin/worktimer/internal/clock"
	"github.com/alexanderramin/worktimer/internal/config"
	"github.com/alexanderramin/worktimer/internal/service"
	"github.com/spf13/cobra"
)

// App holds the dependencies shared by all commands.
type App struct {
	Config   config.Config
	Clock    clock.Clock
	Location *time.Location
	Logger   *slog.Logger
	Observer service.UseCaseObserver

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// Session overrides the interactive session backends; used by tests.
	Session SessionIO
}

// NewRootCmd creates the top-level "worktimer" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	if app.Clock == nil {
		app.Clock = clock.System{}
	}
	if app.Location == nil {
		app.Location = time.Local
	}
	if app.Logger == nil {
		app.Logger = slog.New(slog.DiscardHandler)
	}

	store := storeFlag{kind: app.Config.Store}
	root := &cobra.Command{
		Use:           "worktimer",
		Short:         "Track work and break time from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Var(&store, "store", "History backend (csv|sqlite)")

	root.AddCommand(
		newStartCmd(app, &store),
		newTodayCmd(app, &store),
		newLastXDaysCmd(app, &store),
		newRangeCmd(app, &store),
		newHistoryCmd(app, &store),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) reports(s storeHandle) service.ReportService {
	return service.NewReportService(s.Store, a.Clock, a.Location, a.Logger, a.Observer)
}
