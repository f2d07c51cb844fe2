package cli

import (
	"fmt"

	"github.com/alexanderramin/physio/internal/cli/formatter"
	"github.com/alexanderramin/physio/internal/progress"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show overall progress and per-day completion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStatus(app.Tracker.Summary()))
			return nil
		},
	}
}

func newDaysCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List the plan's days with their progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()
			current, err := progress.ResolveInitialDate(app.Tracker.Plan(), now)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDays(app.Tracker.Summary(), current, now))
			return nil
		},
	}
}
