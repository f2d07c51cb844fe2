package cli

import (
	"fmt"

	"github.com/alexanderramin/physio/internal/cli/formatter"
	"github.com/spf13/cobra"
)

const defaultHistoryLimit = 20

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent completion activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}
			events, err := app.Tracker.History(commandContext(cmd), limit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHistory(events, app.Tracker.Plan(), app.now()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", defaultHistoryLimit, "Number of events to show (0 for all)")

	return cmd
}
