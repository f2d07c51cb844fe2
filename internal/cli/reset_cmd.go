package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/physio/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var errResetNeedsConfirm = errors.New("refusing to reset without confirmation (pass --yes)")

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all completion state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			summary := app.Tracker.Summary()

			if !yes {
				if !app.interactive() {
					return errResetNeedsConfirm
				}
				confirmed := false
				err := huh.NewForm(
					huh.NewGroup(
						huh.NewConfirm().
							Title(fmt.Sprintf("Clear %d completed exercises?", summary.DoneExercises)).
							Affirmative("Reset").
							Negative("Keep").
							Value(&confirmed),
					),
				).WithTheme(physioHuhTheme()).WithShowHelp(false).Run()
				if err != nil {
					return fmt.Errorf("confirming reset: %w", err)
				}
				if !confirmed {
					fmt.Fprintln(out, formatter.Dim("Cancelled."))
					return nil
				}
			}

			if err := app.Tracker.Reset(commandContext(cmd)); err != nil {
				return err
			}
			fmt.Fprintf(out, "Cleared %d completed exercises.\n", summary.DoneExercises)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
