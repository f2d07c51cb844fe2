package progress

import (
	"testing"
	"time"

	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func holidayPlan(t *testing.T) *domain.Plan {
	return testutil.NewRangePlan(t, "2025-12-21", "2026-01-03")
}

func TestResolveInitialDate_ExactMatch(t *testing.T) {
	got, err := ResolveInitialDate(holidayPlan(t), testutil.Date(t, "2025-12-24", 9))
	require.NoError(t, err)
	assert.Equal(t, "2025-12-24", got)
}

func TestResolveInitialDate_AfterPlanEnd(t *testing.T) {
	got, err := ResolveInitialDate(holidayPlan(t), testutil.Date(t, "2026-01-10", 9))
	require.NoError(t, err)
	assert.Equal(t, "2026-01-03", got)
}

func TestResolveInitialDate_BeforePlanStart(t *testing.T) {
	got, err := ResolveInitialDate(holidayPlan(t), testutil.Date(t, "2025-11-01", 0))
	require.NoError(t, err)
	assert.Equal(t, "2025-12-21", got)
}

func TestResolveInitialDate_GapTieGoesToEarlierEntry(t *testing.T) {
	plan := testutil.NewTestPlan(t,
		testutil.NewTestDay("2025-12-20", testutil.WithCountable("a")),
		testutil.NewTestDay("2025-12-24", testutil.WithCountable("b")),
	)
	got, err := ResolveInitialDate(plan, testutil.Date(t, "2025-12-22", 12))
	require.NoError(t, err)
	assert.Equal(t, "2025-12-20", got)

	got, err = ResolveInitialDate(plan, testutil.Date(t, "2025-12-23", 12))
	require.NoError(t, err)
	assert.Equal(t, "2025-12-24", got)
}

func TestResolveInitialDate_UsesLocalCalendarDate(t *testing.T) {
	// 23:30 on the 24th in UTC+10 is still the 24th locally.
	loc := time.FixedZone("AEST", 10*3600)
	got, err := ResolveInitialDate(holidayPlan(t), time.Date(2025, 12, 24, 23, 30, 0, 0, loc))
	require.NoError(t, err)
	assert.Equal(t, "2025-12-24", got)
}

func TestResolveInitialDate_EmptyPlan(t *testing.T) {
	_, err := ResolveInitialDate(testutil.NewTestPlan(t), time.Now())
	assert.ErrorIs(t, err, domain.ErrEmptyPlan)
}

func TestPreviousNext_Boundaries(t *testing.T) {
	plan := holidayPlan(t)

	assert.Equal(t, "2025-12-21", Previous(plan, "2025-12-21"), "previous at first entry is a no-op")
	assert.Equal(t, "2026-01-03", Next(plan, "2026-01-03"), "next at last entry is a no-op")

	assert.Equal(t, "2025-12-23", Previous(plan, "2025-12-24"))
	assert.Equal(t, "2025-12-25", Next(plan, "2025-12-24"))
	assert.Equal(t, "2026-01-01", Next(plan, "2025-12-31"))
}

func TestPreviousNext_UnknownDateIsNoop(t *testing.T) {
	plan := holidayPlan(t)
	assert.Equal(t, "1999-01-01", Previous(plan, "1999-01-01"))
	assert.Equal(t, "1999-01-01", Next(plan, "1999-01-01"))
}

func TestPreviousNext_WalkWholePlan(t *testing.T) {
	plan := holidayPlan(t)
	date := "2025-12-21"
	steps := 0
	for {
		next := Next(plan, date)
		if next == date {
			break
		}
		assert.Equal(t, date, Previous(plan, next))
		date = next
		steps++
	}
	assert.Equal(t, plan.Len()-1, steps)
}

func TestToday_UsesClock(t *testing.T) {
	now := func() time.Time { return testutil.Date(t, "2025-12-29", 8) }
	got, err := Today(holidayPlan(t), now)
	require.NoError(t, err)
	assert.Equal(t, "2025-12-29", got)
}

func TestPosition(t *testing.T) {
	plan := holidayPlan(t)

	i, first, last := Position(plan, "2025-12-21")
	assert.Equal(t, 0, i)
	assert.True(t, first)
	assert.False(t, last)

	i, first, last = Position(plan, "2026-01-03")
	assert.Equal(t, plan.Len()-1, i)
	assert.False(t, first)
	assert.True(t, last)

	i, _, _ = Position(plan, "nope")
	assert.Equal(t, -1, i)
}
