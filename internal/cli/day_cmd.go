package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/physio/internal/cli/formatter"
	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/progress"
	"github.com/alexanderramin/physio/internal/service"
	"github.com/spf13/cobra"
)

func newDayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "day [DATE]",
		Aliases: []string{"today"},
		Short:   "Show the exercises for a day (default: today)",
		Long: "Show the exercises for a plan day. DATE is YYYY-MM-DD; without it the\n" +
			"day nearest to today is shown.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := ""
			if len(args) == 1 {
				if _, err := domain.ParseDate(args[0]); err != nil {
					return err
				}
				date = args[0]
			}
			return printDay(cmd, app, date)
		},
	}
}

// printDay renders date, or the resolved current day when date is empty.
func printDay(cmd *cobra.Command, app *App, date string) error {
	if date == "" {
		var err error
		date, err = progress.ResolveInitialDate(app.Tracker.Plan(), app.now())
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	view, err := app.Tracker.DayView(date)
	if errors.Is(err, service.ErrDayNotFound) {
		fmt.Fprintln(out, formatter.FormatNoDay(date))
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out, formatter.FormatDay(view))
	return nil
}
