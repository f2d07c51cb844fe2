package timer

import (
	"context"
	"fmt"
	"time"
)

// Ticker abstracts time.Ticker so tests can drive the runner by hand.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// NewSecondTicker returns a ticker firing once per second.
func NewSecondTicker() Ticker {
	return realTicker{t: time.NewTicker(time.Second)}
}

// Runner drives a Machine from a ticker until the run finishes or the
// context is cancelled.
type Runner struct {
	Machine   *Machine
	NewTicker func() Ticker
}

// RunOnce starts a countdown and blocks until it completes or ctx is
// cancelled. Cancellation stops the machine without notifying. The ticker
// is always stopped before RunOnce returns, so no tick outlives the run.
// It reports whether the countdown ran to completion.
func (r *Runner) RunOnce(ctx context.Context) (bool, error) {
	if err := r.Machine.Start(); err != nil {
		return false, err
	}
	run := r.Machine.Run()

	newTicker := r.NewTicker
	if newTicker == nil {
		newTicker = NewSecondTicker
	}
	ticker := newTicker()
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.Machine.Stop()
			return false, nil
		case <-ticker.C():
			st := r.Machine.TickFor(ctx, run)
			if !st.Active {
				return r.Machine.Run() == run && st.Remaining == 0, nil
			}
		}
	}
}

// FormatClock renders seconds as m:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
