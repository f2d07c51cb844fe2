package timer

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/alexanderramin/physio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingNotifier struct {
	calls atomic.Int32
	err   error
}

func (c *countingNotifier) Notify(context.Context) error {
	c.calls.Add(1)
	return c.err
}

func TestNew_StartsIdleWithDefaultDuration(t *testing.T) {
	m := New()
	st := m.State()
	assert.Equal(t, domain.TimerState{Remaining: 0, Active: false, Duration: 30}, st)
}

func TestWithDefaultDuration_IgnoresInvalid(t *testing.T) {
	assert.Equal(t, 45, New(WithDefaultDuration(45)).State().Duration)
	assert.Equal(t, 30, New(WithDefaultDuration(17)).State().Duration)
}

func TestStartThenDurationTicks_CompletesOnce(t *testing.T) {
	for _, d := range domain.TimerDurations {
		n := &countingNotifier{}
		m := New(WithNotifier(n), WithDefaultDuration(d))
		ctx := context.Background()

		require.NoError(t, m.Start())
		assert.Equal(t, domain.TimerState{Remaining: d, Active: true, Duration: d}, m.State())

		for i := 1; i < d; i++ {
			st := m.Tick(ctx)
			assert.True(t, st.Active, "tick %d", i)
			assert.Equal(t, d-i, st.Remaining)
		}
		assert.Equal(t, int32(0), n.calls.Load(), "no notification before zero")

		st := m.Tick(ctx)
		assert.False(t, st.Active)
		assert.Equal(t, 0, st.Remaining)
		assert.Equal(t, int32(1), n.calls.Load())

		// Further ticks while Idle are no-ops.
		m.Tick(ctx)
		assert.Equal(t, int32(1), n.calls.Load())
		assert.Equal(t, 0, m.State().Remaining)
	}
}

func TestStop_ResetsWithoutNotification(t *testing.T) {
	n := &countingNotifier{}
	m := New(WithNotifier(n))
	ctx := context.Background()

	require.NoError(t, m.Start())
	m.Tick(ctx)
	m.Tick(ctx)
	m.Stop()

	st := m.State()
	assert.False(t, st.Active)
	assert.Equal(t, 0, st.Remaining)
	assert.Equal(t, 30, st.Duration)
	assert.Equal(t, int32(0), n.calls.Load())
}

func TestStaleTickAfterStopIsIgnored(t *testing.T) {
	n := &countingNotifier{}
	m := New(WithNotifier(n))
	ctx := context.Background()

	require.NoError(t, m.Start())
	oldRun := m.Run()
	m.Stop()
	require.NoError(t, m.Start())

	st := m.TickFor(ctx, oldRun)
	assert.Equal(t, 30, st.Remaining, "tick scheduled for a previous run must not count")

	st = m.TickFor(ctx, m.Run())
	assert.Equal(t, 29, st.Remaining)
}

func TestStart_WhileRunningIsRejected(t *testing.T) {
	m := New()
	require.NoError(t, m.Start())
	m.Tick(context.Background())

	err := m.Start()
	assert.ErrorIs(t, err, ErrTimerRunning)
	assert.Equal(t, 29, m.State().Remaining)
}

func TestSelectDuration_StartOnSelect(t *testing.T) {
	m := New()
	require.NoError(t, m.SelectDuration(45))

	st := m.State()
	assert.True(t, st.Active)
	assert.Equal(t, 45, st.Remaining)
	assert.Equal(t, 45, st.Duration)
}

func TestSelectDuration_SetOnly(t *testing.T) {
	m := New(WithSelectPolicy(SetOnly))
	require.NoError(t, m.SelectDuration(60))

	st := m.State()
	assert.False(t, st.Active)
	assert.Equal(t, 0, st.Remaining)
	assert.Equal(t, 60, st.Duration)

	require.NoError(t, m.Start())
	assert.Equal(t, 60, m.State().Remaining)
}

func TestSelectDuration_Rejections(t *testing.T) {
	m := New()
	err := m.SelectDuration(20)
	assert.ErrorIs(t, err, ErrInvalidDuration)
	assert.Equal(t, 30, m.State().Duration)

	require.NoError(t, m.Start())
	err = m.SelectDuration(60)
	assert.ErrorIs(t, err, ErrTimerRunning)
	assert.Equal(t, 30, m.State().Duration)
}

func TestToggle(t *testing.T) {
	m := New()
	m.Toggle()
	assert.True(t, m.State().Active)
	m.Toggle()
	assert.False(t, m.State().Active)
	assert.Equal(t, 0, m.State().Remaining)
}

func TestNotificationFailure_IsLoggedAndSwallowed(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	n := &countingNotifier{err: errors.New("no audio device")}
	m := New(WithNotifier(n), WithLogger(logger), WithSelectPolicy(SetOnly))
	require.NoError(t, m.SelectDuration(30))
	require.NoError(t, m.Start())

	var st domain.TimerState
	for i := 0; i < 30; i++ {
		st = m.Tick(context.Background())
	}

	assert.False(t, st.Active)
	assert.Equal(t, 0, st.Remaining)
	assert.Equal(t, int32(1), n.calls.Load())
	assert.Contains(t, logs.String(), "timer_notification_failed")
	assert.Contains(t, logs.String(), "no audio device")
}

func TestSubscribe_ReceivesTransitions(t *testing.T) {
	m := New(WithDefaultDuration(30))
	var seen []domain.TimerState
	m.Subscribe(func(s domain.TimerState) { seen = append(seen, s) })

	require.NoError(t, m.Start())
	m.Tick(context.Background())
	m.Stop()
	m.Stop() // already idle: no event

	require.Len(t, seen, 3)
	assert.True(t, seen[0].Active)
	assert.Equal(t, 29, seen[1].Remaining)
	assert.False(t, seen[2].Active)
}

func TestActiveImpliesRemaining(t *testing.T) {
	m := New()
	check := func() {
		st := m.State()
		if st.Active {
			assert.Greater(t, st.Remaining, 0)
		}
	}
	ctx := context.Background()
	require.NoError(t, m.Start())
	for i := 0; i < 40; i++ {
		m.Tick(ctx)
		check()
	}
}
