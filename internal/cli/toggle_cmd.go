package cli

import (
	"fmt"

	"github.com/alexanderramin/physio/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle ID...",
		Short: "Mark exercises done, or undo a completion",
		Long: "Toggle the completion of one or more exercises. IDs are shown after\n" +
			"each exercise in `physio day`.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			out := cmd.OutOrStdout()
			plan := app.Tracker.Plan()

			touched := make(map[string]bool)
			var order []string
			for _, id := range args {
				done, err := app.Tracker.Toggle(ctx, id)
				if err != nil {
					return err
				}

				ex, _ := plan.ExerciseByID(id)
				if done {
					fmt.Fprintf(out, "%s %s\n", formatter.StyleGreen.Render("✔"), formatter.StyleDone.Render(ex.Name))
				} else {
					fmt.Fprintf(out, "%s %s %s\n", formatter.Dim("○"), ex.Name, formatter.Dim("(reopened)"))
				}

				if date, ok := plan.DateOfExercise(id); ok && !touched[date] {
					touched[date] = true
					order = append(order, date)
				}
			}

			for _, date := range order {
				view, err := app.Tracker.DayView(date)
				if err != nil {
					continue
				}
				line := formatter.Bold(view.Day.Label) + "  " + formatter.RenderProgress(view.Percent, 20)
				if view.Complete {
					line += "  " + formatter.StyleGreen.Render("Day complete!")
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
