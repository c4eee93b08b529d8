package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/worktimer/internal/cli/formatter"
	"github.com/alexanderramin/worktimer/internal/domain"
	"github.com/alexanderramin/worktimer/internal/report"
	"github.com/alexanderramin/worktimer/internal/service"
	"github.com/spf13/cobra"
)

func newTodayCmd(app *App, store *storeFlag) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's work and play totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := app.openStore(store.kind)
			if err != nil {
				return err
			}
			defer func() { _ = h.Close() }()

			bucket, err := app.reports(h).Today(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTotals(bucket.Totals))
			return nil
		},
	}
}

func newLastXDaysCmd(app *App, store *storeFlag) *cobra.Command {
	var sum bool

	cmd := &cobra.Command{
		Use:   "lastxdays <n>",
		Short: "Show totals for each of the last n days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid day count %q: %w", args[0], err)
			}
			if n <= 0 || n > service.MaxDayCount {
				return fmt.Errorf("invalid day count %d: %w", n, service.ErrInvalidDayCount)
			}

			h, err := app.openStore(store.kind)
			if err != nil {
				return err
			}
			defer func() { _ = h.Close() }()

			buckets, err := app.reports(h).LastXDays(cmd.Context(), n)
			if err != nil {
				return err
			}
			if sum {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTotals(report.Sum(buckets)))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLastDays(buckets))
			return nil
		},
	}

	cmd.Flags().BoolVar(&sum, "sum", false, "Print one combined total instead of a per-day breakdown")
	return cmd
}

func newRangeCmd(app *App, store *storeFlag) *cobra.Command {
	return &cobra.Command{
		Use:   "range [<start> <end>]",
		Short: "Show per-day totals for an inclusive date range (YYYY-MM-DD)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("range takes a start and an end date, got %d argument(s)", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var startText, endText string
			switch {
			case len(args) == 2:
				startText, endText = args[0], args[1]
			case app.interactive():
				var err error
				startText, endText, err = promptRange(app)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("range needs <start> <end> dates (YYYY-MM-DD)")
			}

			start, err := domain.ParseDate(startText)
			if err != nil {
				return fmt.Errorf("invalid start date: %w", err)
			}
			end, err := domain.ParseDate(endText)
			if err != nil {
				return fmt.Errorf("invalid end date: %w", err)
			}

			h, err := app.openStore(store.kind)
			if err != nil {
				return err
			}
			defer func() { _ = h.Close() }()

			r, err := app.reports(h).Range(cmd.Context(), start, end)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRange(r.Start, r.End, r.Days, r.Total))
			return nil
		},
	}
}
