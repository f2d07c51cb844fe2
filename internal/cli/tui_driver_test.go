package cli

import (
	"testing"

	"github.com/alexanderramin/physio/internal/teatest"
	"github.com/alexanderramin/physio/internal/timer"
)

// TestDriver wraps teatest.Driver with inspection methods for appModel
// internals (view stack, shared state, flash line) that the generic driver
// can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel for app, sets the terminal size and
// drains Init.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	t.Cleanup(m.state.Timer.Stop)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// Tick delivers one countdown second for the current run.
func (d *TestDriver) Tick() {
	d.T.Helper()
	d.Send(timerTickMsg{run: d.Timer().Run()})
}

// TickN delivers n countdown seconds.
func (d *TestDriver) TickN(n int) {
	d.T.Helper()
	for i := 0; i < n; i++ {
		d.Tick()
	}
}

// PlainView returns the rendered output without ANSI styling.
func (d *TestDriver) PlainView() string {
	return stripANSI(d.View())
}

// ── Inspection ───────────────────────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state pointer.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Date returns the displayed plan date.
func (d *TestDriver) Date() string {
	return d.State().Date
}

// Timer returns the session's countdown machine.
func (d *TestDriver) Timer() *timer.Machine {
	return d.State().Timer
}

// Flash returns the transient status line without styling.
func (d *TestDriver) Flash() string {
	return stripANSI(d.appModel().flash)
}

// IsQuitting reports whether the model asked to quit.
func (d *TestDriver) IsQuitting() bool {
	return d.Quitting || d.appModel().quitting
}
