// Package timer implements the countdown used for timed exercises.
//
// The Machine is a small reducer with two states. Idle means no countdown
// (Remaining 0, inactive). Running means a countdown is in progress
// (Remaining > 0). Stopping discards the remaining time. Tick sources carry
// the run number they were scheduled for, so a tick belonging to a stopped
// or replaced run never reaches the state.
package timer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/alexanderramin/physio/internal/domain"
)

var (
	ErrInvalidDuration = errors.New("invalid timer duration")
	ErrTimerRunning    = errors.New("timer is already running")
)

// SelectPolicy decides what choosing a duration from the menu does.
type SelectPolicy int

const (
	// StartOnSelect sets the duration and immediately starts a run.
	StartOnSelect SelectPolicy = iota
	// SetOnly sets the duration without starting.
	SetOnly
)

// Option configures a Machine.
type Option func(*Machine)

func WithNotifier(n Notifier) Option {
	return func(m *Machine) { m.notifier = n }
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) { m.logger = l }
}

func WithSelectPolicy(p SelectPolicy) Option {
	return func(m *Machine) { m.policy = p }
}

// WithDefaultDuration sets the initial duration. Invalid values fall back
// to domain.DefaultTimerDuration.
func WithDefaultDuration(d int) Option {
	return func(m *Machine) {
		if domain.IsTimerDuration(d) {
			m.state.Duration = d
		}
	}
}

// Machine is the countdown state machine. It is safe for concurrent use.
type Machine struct {
	mu       sync.Mutex
	state    domain.TimerState
	run      uint64
	policy   SelectPolicy
	notifier Notifier
	logger   *slog.Logger
	subs     []func(domain.TimerState)
}

// New returns an Idle machine with the default 30 second duration.
func New(opts ...Option) *Machine {
	m := &Machine{
		state:    domain.TimerState{Duration: domain.DefaultTimerDuration},
		policy:   StartOnSelect,
		notifier: NoopNotifier{},
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current snapshot.
func (m *Machine) State() domain.TimerState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Run returns the number of the current (or most recent) run.
func (m *Machine) Run() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.run
}

// Policy returns the duration-selection policy.
func (m *Machine) Policy() SelectPolicy { return m.policy }

// Subscribe registers fn to receive every state change. fn is called
// without the machine's lock held.
func (m *Machine) Subscribe(fn func(domain.TimerState)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// SelectDuration sets the countdown length. Under StartOnSelect it also
// starts the run. Only allowed while Idle.
func (m *Machine) SelectDuration(d int) error {
	if !domain.IsTimerDuration(d) {
		return fmt.Errorf("%w: %d (choose from %v)", ErrInvalidDuration, d, domain.TimerDurations)
	}

	m.mu.Lock()
	if m.state.Active {
		m.mu.Unlock()
		return ErrTimerRunning
	}
	m.state.Duration = d
	if m.policy == StartOnSelect {
		m.startLocked()
	}
	snap := m.state
	subs := m.subs
	m.mu.Unlock()

	publish(subs, snap)
	return nil
}

// Start moves Idle to Running with Remaining set to the duration.
func (m *Machine) Start() error {
	m.mu.Lock()
	if m.state.Active {
		m.mu.Unlock()
		return ErrTimerRunning
	}
	m.startLocked()
	snap := m.state
	subs := m.subs
	m.mu.Unlock()

	publish(subs, snap)
	return nil
}

func (m *Machine) startLocked() {
	m.run++
	m.state.Remaining = m.state.Duration
	m.state.Active = m.state.Remaining > 0
}

// Stop returns to Idle and discards the remaining time. It never notifies.
// Stop also invalidates any tick already scheduled for the current run.
func (m *Machine) Stop() {
	m.mu.Lock()
	wasActive := m.state.Active
	m.state.Remaining = 0
	m.state.Active = false
	m.run++
	snap := m.state
	subs := m.subs
	m.mu.Unlock()

	if wasActive {
		publish(subs, snap)
	}
}

// Toggle stops a running countdown or starts an idle one.
func (m *Machine) Toggle() {
	if m.State().Active {
		m.Stop()
		return
	}
	_ = m.Start()
}

// Tick advances the current run by one second.
func (m *Machine) Tick(ctx context.Context) domain.TimerState {
	return m.TickFor(ctx, m.Run())
}

// TickFor advances the countdown only if run is still the current run and
// the machine is Running. When the countdown reaches zero the machine
// returns to Idle and the notifier fires exactly once.
func (m *Machine) TickFor(ctx context.Context, run uint64) domain.TimerState {
	m.mu.Lock()
	if run != m.run || !m.state.Active {
		snap := m.state
		m.mu.Unlock()
		return snap
	}

	m.state.Remaining--
	finished := m.state.Remaining <= 0
	if finished {
		m.state.Remaining = 0
		m.state.Active = false
	}
	snap := m.state
	subs := m.subs
	notifier := m.notifier
	m.mu.Unlock()

	publish(subs, snap)
	if finished {
		if err := notifier.Notify(ctx); err != nil {
			m.logger.WarnContext(ctx, "timer_notification_failed", "error", err.Error())
		}
	}
	return snap
}

func publish(subs []func(domain.TimerState), s domain.TimerState) {
	for _, fn := range subs {
		fn(s)
	}
}
