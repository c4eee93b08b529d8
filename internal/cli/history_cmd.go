package cli

import (
	"fmt"

	"github.com/alexanderramin/worktimer/internal/cli/formatter"
	"github.com/alexanderramin/worktimer/internal/db"
	"github.com/alexanderramin/worktimer/internal/history"
	"github.com/alexanderramin/worktimer/internal/repository"
	"github.com/alexanderramin/worktimer/internal/service"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App, store *storeFlag) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect and migrate session history",
	}

	cmd.AddCommand(
		newHistoryListCmd(app, store),
		newHistoryImportCmd(app),
	)

	return cmd
}

func newHistoryListCmd(app *App, store *storeFlag) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List recorded sessions",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := app.openStore(store.kind)
			if err != nil {
				return err
			}
			defer func() { _ = h.Close() }()

			records, err := app.reports(h).List(cmd.Context())
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No sessions recorded in "+h.Where+"."))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecords(records))
			return nil
		},
	}
}

func newHistoryImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import [csv-file]",
		Short: "Copy a CSV history file into the SQLite store",
		Long:  "Copy every valid row of a CSV history file (default: the configured history file) into the SQLite store in one transaction.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src string
			if len(args) == 1 {
				src = args[0]
			} else {
				var err error
				if src, err = app.Config.HistoryPath(); err != nil {
					return err
				}
			}

			database, dbPath, err := app.openDB()
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			importer := service.NewImportService(db.NewSQLiteUnitOfWork(database), app.Logger, app.Observer)
			result, err := importer.Import(cmd.Context(), history.NewCSVStore(src))
			if err != nil {
				return err
			}

			stored, err := repository.NewSQLiteHistoryRepo(database).Count(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d session(s) from %s into %s (%d stored).\n",
				result.Imported, src, dbPath, stored)
			if result.Skipped > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "Skipped %d corrupt row(s).\n", result.Skipped)
			}
			return nil
		},
	}
}
