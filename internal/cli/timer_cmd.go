package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/alexanderramin/physio/internal/cli/formatter"
	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/timer"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// durationFlag accepts one of the selectable countdown lengths, written as
// "45" or "45s".
type durationFlag struct {
	seconds int
}

var _ pflag.Value = (*durationFlag)(nil)

func (f *durationFlag) String() string {
	if f.seconds == 0 {
		return ""
	}
	return strconv.Itoa(f.seconds)
}

func (f *durationFlag) Set(s string) error {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(s), "s"))
	if err != nil || !domain.IsTimerDuration(n) {
		return fmt.Errorf("%w: %q (choose from %v)", timer.ErrInvalidDuration, s, domain.TimerDurations)
	}
	f.seconds = n
	return nil
}

func (f *durationFlag) Type() string { return "seconds" }

func newTimerCmd(app *App) *cobra.Command {
	var duration durationFlag

	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Run a countdown for a timed exercise",
		Long: "Run a 30, 45 or 60 second countdown in the terminal. Ctrl-C stops it\n" +
			"without the completion sound.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			line := formatter.NewLiveLine(out)

			machine := app.newMachine(out, timer.WithSelectPolicy(timer.SetOnly))
			if duration.seconds != 0 {
				if err := machine.SelectDuration(duration.seconds); err != nil {
					return err
				}
			}
			machine.Subscribe(func(st domain.TimerState) {
				if st.Active {
					line.Update(formatter.FormatTimer(st))
				}
			})

			ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
			defer stop()

			runner := &timer.Runner{Machine: machine, NewTicker: app.NewTicker}
			finished, err := runner.RunOnce(ctx)
			if err != nil {
				return err
			}

			total := machine.State().Duration
			if finished {
				line.Finish(formatter.StyleGreen.Render("✔ Done!") + " " + formatter.Dim(formatter.DurationLabel(total)))
			} else {
				line.Finish(formatter.Dim("Stopped."))
			}
			app.logger().InfoContext(ctx, "timer_run", "duration", total, "finished", finished)
			return nil
		},
	}

	cmd.Flags().VarP(&duration, "duration", "d", "Countdown length: 30, 45 or 60 seconds")

	return cmd
}
