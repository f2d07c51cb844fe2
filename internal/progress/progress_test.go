package progress

import (
	"testing"

	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threeAndGuidance is a day with three countable exercises and one guidance note.
func threeAndGuidance() domain.WorkoutDay {
	return testutil.NewTestDay("2025-12-26",
		testutil.WithDayType(domain.DayFull),
		testutil.WithCountable("squat", "bridge", "plank"),
		testutil.WithExercises(testutil.NewGuidance("effort-note")),
	)
}

func TestCountableExercises_DropsGuidance(t *testing.T) {
	got := CountableExercises(threeAndGuidance())
	require.Len(t, got, 3)
	for _, e := range got {
		assert.NotEqual(t, "effort-note", e.ID)
	}
}

func TestCountableExercises_KeepsOptional(t *testing.T) {
	day := testutil.NewTestDay("2025-12-25",
		testutil.WithCountable("rest-2"),
		testutil.WithExercises(testutil.NewTestExercise("optional-mobility", testutil.WithNotes(domain.NoteOptional))),
	)
	assert.Len(t, CountableExercises(day), 2)
}

func TestDayProgress_ConcreteScenario(t *testing.T) {
	day := threeAndGuidance()
	set := domain.NewCompletedSet("squat", "bridge")

	assert.Equal(t, 67, DayProgress(day, set))
	assert.False(t, DayComplete(day, set))

	set.Toggle("plank")
	assert.Equal(t, 100, DayProgress(day, set))
	assert.True(t, DayComplete(day, set))

	// Guidance ids in the set never change the figures.
	set.Toggle("effort-note")
	assert.Equal(t, 100, DayProgress(day, set))
	assert.True(t, DayComplete(day, set))

	set.Toggle("plank")
	assert.Equal(t, 67, DayProgress(day, set))
	assert.False(t, DayComplete(day, set))
}

func TestDayProgress_NoCountableExercises(t *testing.T) {
	empty := testutil.NewTestDay("2025-12-21")
	onlyGuidance := testutil.NewTestDay("2025-12-22", testutil.WithExercises(testutil.NewGuidance("note")))
	set := domain.NewCompletedSet("note")

	assert.Equal(t, 0, DayProgress(empty, set))
	assert.False(t, DayComplete(empty, set))
	assert.Equal(t, 0, DayProgress(onlyGuidance, set))
	assert.False(t, DayComplete(onlyGuidance, set))
}

func TestDayProgress_BoundsAndCompleteness(t *testing.T) {
	day := testutil.NewTestDay("2025-12-21",
		testutil.WithCountable("a", "b", "c", "d", "e", "f", "g"),
		testutil.WithExercises(testutil.NewGuidance("g-note")),
	)
	ids := []string{"a", "b", "c", "d", "e", "f", "g", "g-note", "unrelated"}

	// Walk every subset of ids.
	for mask := 0; mask < 1<<len(ids); mask++ {
		set := domain.NewCompletedSet()
		for i, id := range ids {
			if mask&(1<<i) != 0 {
				set[id] = struct{}{}
			}
		}
		pct := DayProgress(day, set)
		assert.GreaterOrEqual(t, pct, 0)
		assert.LessOrEqual(t, pct, 100)

		allCountable := mask&0x7f == 0x7f
		assert.Equal(t, allCountable, pct == 100, "mask=%b", mask)
		assert.Equal(t, allCountable, DayComplete(day, set), "mask=%b", mask)
	}
}

func TestToggleTwice_RestoresProgress(t *testing.T) {
	plan := testutil.NewTestPlan(t, threeAndGuidance())
	set := domain.NewCompletedSet("squat")
	beforeDay := DayProgress(plan.At(0), set)
	beforeOverall := OverallProgress(plan, set)

	set.Toggle("bridge")
	set.Toggle("bridge")

	assert.Equal(t, domain.NewCompletedSet("squat"), set)
	assert.Equal(t, beforeDay, DayProgress(plan.At(0), set))
	assert.Equal(t, beforeOverall, OverallProgress(plan, set))
}

func TestOverallProgress_MonotonicUnderGrowth(t *testing.T) {
	plan := testutil.NewRangePlan(t, "2025-12-21", "2026-01-03")
	set := domain.NewCompletedSet()

	prev := OverallProgress(plan, set)
	assert.Equal(t, 0, prev)
	for i := 0; i < plan.Len(); i++ {
		for _, e := range plan.At(i).Exercises {
			set.Toggle(e.ID)
			cur := OverallProgress(plan, set)
			assert.GreaterOrEqual(t, cur, prev)
			assert.LessOrEqual(t, cur, 100)
			prev = cur
		}
	}
	assert.Equal(t, 100, prev)
	assert.Equal(t, plan.Len(), CompletedDaysCount(plan, set))
}

func TestOverallProgress_IgnoresGuidance(t *testing.T) {
	plan := testutil.NewTestPlan(t,
		threeAndGuidance(),
		testutil.NewTestDay("2025-12-27", testutil.WithCountable("calf")),
	)
	set := domain.NewCompletedSet("squat", "effort-note")

	// 1 of 4 countable.
	assert.Equal(t, 25, OverallProgress(plan, set))
	assert.Equal(t, 0, CompletedDaysCount(plan, set))

	set.Toggle("calf")
	assert.Equal(t, 50, OverallProgress(plan, set))
	assert.Equal(t, 1, CompletedDaysCount(plan, set))
}

func TestOverallProgress_EmptyPlan(t *testing.T) {
	plan := testutil.NewTestPlan(t)
	assert.Equal(t, 0, OverallProgress(plan, domain.NewCompletedSet("x")))
	assert.Equal(t, 0, CompletedDaysCount(plan, domain.NewCompletedSet("x")))
}

func TestPercent_RoundsHalfUp(t *testing.T) {
	cases := []struct{ done, total, want int }{
		{0, 0, 0},
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{1, 8, 13},
		{3, 8, 38},
		{5, 8, 63},
		{1, 200, 1},
		{3, 3, 100},
		{4, 3, 100},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Percent(tc.done, tc.total), "%d/%d", tc.done, tc.total)
	}
}

func TestSummarize_MatchesIndividualFunctions(t *testing.T) {
	plan := testutil.NewTestPlan(t,
		threeAndGuidance(),
		testutil.NewTestDay("2025-12-27", testutil.WithCountable("calf")),
		testutil.NewTestDay("2025-12-28", testutil.WithExercises(testutil.NewGuidance("walk-note"))),
	)
	set := domain.NewCompletedSet("squat", "calf", "walk-note")

	s := Summarize(plan, set)
	require.Len(t, s.Days, 3)
	assert.Equal(t, OverallProgress(plan, set), s.OverallPercent)
	assert.Equal(t, CompletedDaysCount(plan, set), s.CompletedDays)
	assert.Equal(t, 3, s.TotalDays)
	assert.Equal(t, 2, s.DoneExercises)
	assert.Equal(t, 4, s.TotalExercises)

	assert.Equal(t, 33, s.Days[0].Percent)
	assert.True(t, s.Days[0].InProgress())
	assert.True(t, s.Days[1].Complete)
	assert.False(t, s.Days[1].InProgress())
	assert.False(t, s.Days[2].Complete)
	assert.Equal(t, 0, s.Days[2].Total)
}
