package testutil

import (
	"testing"
	"time"

	"github.com/alexanderramin/physio/internal/domain"
	"github.com/google/uuid"
)

// Exercise options
type ExerciseOption func(*domain.Exercise)

func WithNotes(n string) ExerciseOption {
	return func(e *domain.Exercise) {
		e.Notes = n
	}
}

func WithDuration(d string) ExerciseOption {
	return func(e *domain.Exercise) {
		e.Duration = d
	}
}

func WithSetsReps(sets, reps string) ExerciseOption {
	return func(e *domain.Exercise) {
		e.Sets = sets
		e.Reps = reps
	}
}

func NewTestExercise(id string, opts ...ExerciseOption) domain.Exercise {
	e := domain.Exercise{
		ID:   id,
		Name: "Exercise " + id,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// NewGuidance returns an informational, non-completable exercise.
func NewGuidance(id string) domain.Exercise {
	return NewTestExercise(id, WithNotes(domain.NoteGuidance))
}

// Day options
type DayOption func(*domain.WorkoutDay)

func WithDayType(t domain.DayType) DayOption {
	return func(d *domain.WorkoutDay) {
		d.Type = t
	}
}

func WithLabel(l string) DayOption {
	return func(d *domain.WorkoutDay) {
		d.Label = l
	}
}

func WithDayDuration(s string) DayOption {
	return func(d *domain.WorkoutDay) {
		d.Duration = s
	}
}

func WithExercises(es ...domain.Exercise) DayOption {
	return func(d *domain.WorkoutDay) {
		d.Exercises = append(d.Exercises, es...)
	}
}

// WithCountable appends plain countable exercises with the given IDs.
func WithCountable(ids ...string) DayOption {
	return func(d *domain.WorkoutDay) {
		for _, id := range ids {
			d.Exercises = append(d.Exercises, NewTestExercise(id))
		}
	}
}

func NewTestDay(date string, opts ...DayOption) domain.WorkoutDay {
	d := domain.WorkoutDay{
		Date:  date,
		Label: date,
		Type:  domain.DayLight,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// NewTestPlan builds a plan from days and fails the test on error.
func NewTestPlan(t testing.TB, days ...domain.WorkoutDay) *domain.Plan {
	t.Helper()
	p, err := domain.NewPlan(days)
	if err != nil {
		t.Fatalf("building test plan: %v", err)
	}
	return p
}

// NewRangePlan builds a plan with one light day per calendar date from
// first to last inclusive. Each day holds two countable exercises with IDs
// "<date>-a" and "<date>-b".
func NewRangePlan(t testing.TB, first, last string) *domain.Plan {
	t.Helper()
	from, err := domain.ParseDate(first)
	if err != nil {
		t.Fatalf("parsing first date: %v", err)
	}
	to, err := domain.ParseDate(last)
	if err != nil {
		t.Fatalf("parsing last date: %v", err)
	}

	var days []domain.WorkoutDay
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		date := d.Format(domain.DateLayout)
		days = append(days, NewTestDay(date,
			WithLabel(d.Format("Monday, 2 Jan")),
			WithCountable(date+"-a", date+"-b"),
		))
	}
	return NewTestPlan(t, days...)
}

// Activity options
type ActivityOption func(*domain.ActivityEvent)

func WithActivityAt(at time.Time) ActivityOption {
	return func(e *domain.ActivityEvent) {
		e.At = at
	}
}

func WithPlanDate(date string) ActivityOption {
	return func(e *domain.ActivityEvent) {
		e.PlanDate = date
	}
}

func WithAction(a domain.ActivityAction) ActivityOption {
	return func(e *domain.ActivityEvent) {
		e.Action = a
	}
}

func NewTestActivity(exerciseID string, opts ...ActivityOption) *domain.ActivityEvent {
	e := &domain.ActivityEvent{
		ID:         uuid.New().String(),
		ExerciseID: exerciseID,
		Action:     domain.ActivityCompleted,
		At:         time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Date returns a UTC time for an ISO date at the given hour.
func Date(t testing.TB, iso string, hour int) time.Time {
	t.Helper()
	d, err := domain.ParseDate(iso)
	if err != nil {
		t.Fatalf("test date: %v", err)
	}
	return d.Add(time.Duration(hour) * time.Hour)
}
