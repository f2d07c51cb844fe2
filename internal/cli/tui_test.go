package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/physio/internal/service"
	"github.com/alexanderramin/physio/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_StartsOnResolvedDay(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	assert.Equal(t, ViewDay, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
	assert.Equal(t, "2025-12-22", d.Date())

	view := d.PlainView()
	assert.Contains(t, view, "physio › Monday, 22 Dec")
	assert.Contains(t, view, "MONDAY, 22 DEC")
	assert.Contains(t, view, "Today")
	assert.Contains(t, view, "0%")
	assert.Contains(t, view, "q: quit")
}

func TestTUI_SpaceTogglesSelectedExercise(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.PressSpace()
	assert.True(t, app.Tracker.IsCompleted("b1"))
	assert.Contains(t, d.PlainView(), "50%")

	d.PressSpace()
	assert.False(t, app.Tracker.IsCompleted("b1"), "second press reopens")
	assert.Contains(t, d.PlainView(), "0%")
}

func TestTUI_CompletingDayFlashes(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.PressSpace()
	assert.Empty(t, d.Flash())

	d.PressDown()
	d.PressSpace()
	assert.True(t, app.Tracker.IsCompleted("b2"))
	assert.Equal(t, "Day complete. Nice work!", d.Flash())
	assert.Contains(t, d.PlainView(), "100%")

	// Any key clears the flash.
	d.PressUp()
	assert.Empty(t, d.Flash())
}

func TestTUI_GuidanceCannotBeToggled(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.PressLeft()
	require.Equal(t, "2025-12-21", d.Date())
	d.PressN(d.PressDown, 3)
	d.PressSpace()

	assert.Equal(t, "Guidance notes can't be checked off.", d.Flash())
	assert.Equal(t, 0, app.Tracker.Completed().Len())
}

func TestTUI_DayNavigationStopsAtPlanEnds(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.PressLeft()
	assert.Equal(t, "2025-12-21", d.Date())
	d.PressLeft()
	assert.Equal(t, "2025-12-21", d.Date(), "first day is a floor")

	d.PressN(d.PressRight, 3)
	assert.Equal(t, "2025-12-23", d.Date(), "last day is a ceiling")
	assert.Contains(t, d.PlainView(), "TUESDAY, 23 DEC")

	d.PressKey('t')
	assert.Equal(t, "2025-12-22", d.Date())
}

func TestTUI_VimKeysNavigate(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('h')
	assert.Equal(t, "2025-12-21", d.Date())
	d.PressKey('l')
	assert.Equal(t, "2025-12-22", d.Date())

	d.PressKey('j')
	d.PressSpace()
	assert.True(t, app.Tracker.IsCompleted("b2"))
}

func TestTUI_DayMenuJumpsToDay(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('m')
	require.Equal(t, ViewDayMenu, d.ActiveViewID())
	assert.Equal(t, 2, d.ViewStackLen())
	view := d.PlainView()
	assert.Contains(t, view, "Overall")
	assert.Contains(t, view, "Sunday, 21 Dec")
	assert.Contains(t, view, "Tuesday, 23 Dec")
	assert.Contains(t, view, "esc: back")

	d.PressUp()
	d.PressEnter()

	assert.Equal(t, ViewDay, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
	assert.Equal(t, "2025-12-21", d.Date())
	assert.Contains(t, d.PlainView(), "SUNDAY, 21 DEC")
}

func TestTUI_DayMenuClosesWithoutChangingDay(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('m')
	d.PressDown()
	d.PressKey('m')
	assert.Equal(t, ViewDay, d.ActiveViewID())
	assert.Equal(t, "2025-12-22", d.Date())

	d.PressKey('m')
	d.PressEsc()
	assert.Equal(t, ViewDay, d.ActiveViewID())
	assert.Equal(t, "2025-12-22", d.Date())
}

func TestTUI_DayMenuReflectsToggles(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.PressSpace()
	d.PressDown()
	d.PressSpace()

	d.PressKey('m')
	assert.Contains(t, d.PlainView(), "1 of 3 days")
}

func TestTUI_DayMenuScrollsInShortTerminal(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	d.Send(tea.WindowSizeMsg{Width: 80, Height: 10})

	d.PressKey('m')
	view := d.PlainView()
	assert.Contains(t, view, "Monday, 22 Dec")
	assert.NotContains(t, view, "Sunday, 21 Dec")
	assert.Contains(t, view, "↑ more")
	assert.Contains(t, view, "↓ more")

	d.PressUp()
	view = d.PlainView()
	assert.Contains(t, view, "Sunday, 21 Dec")
	assert.NotContains(t, view, "↑ more")
}

// ── Timer ────────────────────────────────────────────────────────────────────

func TestTUI_TimerCountsDown(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('s')
	require.True(t, d.Timer().State().Active)
	assert.Equal(t, 1, d.Pending, "first tick is scheduled")
	assert.Contains(t, d.PlainView(), "⏱ 0:30")

	d.Tick()
	assert.Equal(t, 29, d.Timer().State().Remaining)
	assert.Equal(t, 2, d.Pending, "each tick schedules the next")
	assert.Contains(t, d.PlainView(), "⏱ 0:29")
}

func TestTUI_TimerFinishesOnceAndFlashes(t *testing.T) {
	app, notifier := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('s')
	d.TickN(30)
	assert.Equal(t, 30, d.Pending, "no tick is scheduled after the last second")

	st := d.Timer().State()
	assert.False(t, st.Active)
	assert.Equal(t, 0, st.Remaining)
	assert.Equal(t, "⏱ Time's up!", d.Flash())
	assert.Eventually(t, func() bool { return notifier.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	// A late tick for the finished run changes nothing.
	d.Send(timerTickMsg{run: d.Timer().Run()})
	assert.Equal(t, "⏱ Time's up!", d.Flash())
	assert.Never(t, func() bool { return notifier.calls.Load() > 1 }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestTUI_StopDiscardsRemainingAndStaleTicks(t *testing.T) {
	app, notifier := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('s')
	oldRun := d.Timer().Run()
	d.Tick()
	d.PressKey('s')
	require.False(t, d.Timer().State().Active)

	d.PressKey('s')
	require.True(t, d.Timer().State().Active)
	d.Send(timerTickMsg{run: oldRun})
	assert.Equal(t, 30, d.Timer().State().Remaining, "tick from a stopped run is ignored")

	d.PressKey('s')
	assert.Equal(t, int32(0), notifier.calls.Load())
}

func TestTUI_DurationWizardStartsTimer(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('d')
	require.Equal(t, ViewForm, d.ActiveViewID())
	assert.Contains(t, d.PlainView(), "Timer duration")
	assert.Contains(t, d.PlainView(), "45 seconds")

	d.PressDown()
	d.PressEnter()

	assert.Equal(t, ViewDay, d.ActiveViewID())
	st := d.Timer().State()
	assert.Equal(t, 45, st.Duration)
	assert.True(t, st.Active)
	assert.Equal(t, 45, st.Remaining)
}

func TestTUI_DurationWizardCancels(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('d')
	require.Equal(t, ViewForm, d.ActiveViewID())
	d.PressEsc()

	assert.Equal(t, ViewDay, d.ActiveViewID())
	assert.False(t, d.IsQuitting())
	st := d.Timer().State()
	assert.Equal(t, 30, st.Duration)
	assert.False(t, st.Active)
}

func TestTUI_DurationLockedWhileRunning(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('s')
	d.PressKey('d')
	assert.Equal(t, ViewDay, d.ActiveViewID())
	assert.Equal(t, "Stop the timer to change its duration.", d.Flash())
}

func TestTUI_TimedExerciseHintsDuration(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	// b1 is a 45s hold and the timer defaults to 30s.
	assert.Contains(t, d.PlainView(), "d: set 45 seconds")

	d.PressDown()
	assert.NotContains(t, d.PlainView(), "d: set")
}

func TestTUI_QuitStopsTimer(t *testing.T) {
	app, notifier := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('s')
	d.PressKey('q')

	assert.True(t, d.IsQuitting())
	assert.False(t, d.Timer().State().Active)
	assert.Equal(t, int32(0), notifier.calls.Load())
	assert.Empty(t, d.View())
}

func TestTUI_CtrlCQuitsFromWizard(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('d')
	d.PressCtrlC()
	assert.True(t, d.IsQuitting())
}

// ── Failure handling ─────────────────────────────────────────────────────────

func TestTUI_SaveFailureRollsBack(t *testing.T) {
	app, _ := testApp(t)
	kv := &testutil.FailingKV{Err: errors.New("disk full")}
	app.Tracker = service.NewTrackerService(testPlan(t), kv, nil, nil)
	require.NoError(t, app.Tracker.Load(context.Background()))

	d := NewTestDriver(t, app)
	d.PressSpace()

	assert.Equal(t, int32(1), kv.Sets.Load())
	assert.False(t, app.Tracker.IsCompleted("b1"))
	assert.Contains(t, d.Flash(), "Could not save")
	assert.Contains(t, d.Flash(), "disk full")
	assert.Contains(t, d.PlainView(), "0%")
}

func TestTUI_OutsidePlanShowsEmptyState(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.State().Date = "2026-03-01"
	d.Send(refreshViewMsg{})

	view := d.PlainView()
	assert.NotContains(t, view, "MONDAY")
	assert.Contains(t, view, "next ▶")

	d.PressSpace()
	assert.Equal(t, 0, app.Tracker.Completed().Len())
}
