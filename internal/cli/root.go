package cli

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/physio/internal/config"
	"github.com/alexanderramin/physio/internal/service"
	"github.com/alexanderramin/physio/internal/timer"
	"github.com/spf13/cobra"
)

// App holds the wired dependencies used by CLI commands and the TUI.
// Tests set Tracker directly; otherwise Open wires it from configuration
// before the first command runs.
type App struct {
	Config  *config.Config
	Tracker service.TrackerService
	Logger  *slog.Logger

	// Now is the clock used to resolve "today".
	Now func() time.Time

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool

	// NewNotifier builds the completion notifier for a countdown. w is the
	// terminal the bell is written to.
	NewNotifier func(w io.Writer) timer.Notifier

	// NewTicker overrides the one-second ticker used by the timer command.
	NewTicker func() timer.Ticker

	closers []io.Closer
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (a *App) timerConfig() config.TimerConfig {
	if a.Config != nil {
		return a.Config.Timer
	}
	dir, _ := config.Dir()
	return config.DefaultConfig(dir).Timer
}

// NewRootCmd creates the top-level "physio" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	root := &cobra.Command{
		Use:           "physio",
		Short:         "ACL rehab exercise tracker",
		Long:          "Track daily ACL rehabilitation exercises, progress and timed holds.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var tee io.Writer
			if verbose {
				tee = cmd.ErrOrStderr()
			}
			return app.Open(commandContext(cmd), OpenParams{ConfigPath: configPath, Tee: tee})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runTUI(commandContext(cmd), app)
			}
			return printDay(cmd, app, "")
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ~/.physio/config.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Also write logs to stderr")

	root.AddCommand(
		newDayCmd(app),
		newToggleCmd(app),
		newStatusCmd(app),
		newDaysCmd(app),
		newTimerCmd(app),
		newHistoryCmd(app),
		newResetCmd(app),
		newPlanCmd(app),
	)

	return root
}

// commandContext returns the command's context, or Background when the
// command was executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
