package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alexanderramin/physio/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
)

// timerTickMsg is one second of countdown for a specific run. Ticks whose
// run is no longer current are dropped.
type timerTickMsg struct {
	run uint64
}

func tickTimer(run uint64) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{run: run}
	})
}

// startTimer schedules the first tick when the machine has just started a
// run.
func startTimer(m *timer.Machine) tea.Cmd {
	if !m.State().Active {
		return nil
	}
	return tickTimer(m.Run())
}

// asyncNotifier plays the chime off the update loop so a slow audio player
// never stalls rendering.
type asyncNotifier struct {
	next   timer.Notifier
	logger *slog.Logger
}

func (n asyncNotifier) Notify(context.Context) error {
	go func() {
		if err := n.next.Notify(context.Background()); err != nil {
			n.logger.Warn("timer_notification_failed", "error", err.Error())
		}
	}()
	return nil
}

func newTUIMachine(app *App) *timer.Machine {
	notifier := asyncNotifier{next: app.notifier(os.Stdout), logger: app.logger()}
	return app.newMachine(os.Stdout, timer.WithNotifier(notifier))
}

// runTUI runs the interactive day view until the user quits.
func runTUI(ctx context.Context, app *App) error {
	m := newAppModel(app)
	defer m.state.Timer.Stop()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
