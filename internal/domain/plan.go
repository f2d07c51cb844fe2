package domain

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the ISO calendar-date layout used for plan keys.
const DateLayout = "2006-01-02"

var ErrEmptyPlan = errors.New("plan has no days")

type WorkoutDay struct {
	Date      string
	Label     string
	Type      DayType
	Duration  string
	Exercises []Exercise
}

// ParseDate parses an ISO date into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// CalendarDate truncates t to its calendar date in t's own location,
// expressed as UTC midnight so day arithmetic ignores DST.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders t's calendar date as an ISO date string.
func FormatDate(t time.Time) string {
	return CalendarDate(t).Format(DateLayout)
}

// Plan is the fixed, ordered sequence of workout days. It is immutable
// after construction; accessors return copies.
type Plan struct {
	days      []WorkoutDay
	dateIndex map[string]int
	exercises map[string]Exercise
	dayOf     map[string]string
}

// NewPlan builds a Plan from days in the given order. Dates and exercise
// IDs must be unique across the whole plan.
func NewPlan(days []WorkoutDay) (*Plan, error) {
	p := &Plan{
		days:      make([]WorkoutDay, len(days)),
		dateIndex: make(map[string]int, len(days)),
		exercises: make(map[string]Exercise),
		dayOf:     make(map[string]string),
	}
	for i, d := range days {
		if _, err := ParseDate(d.Date); err != nil {
			return nil, fmt.Errorf("day %d: %w", i, err)
		}
		if _, err := ParseDayType(string(d.Type)); err != nil {
			return nil, fmt.Errorf("day %s: %w", d.Date, err)
		}
		if _, dup := p.dateIndex[d.Date]; dup {
			return nil, fmt.Errorf("duplicate plan date %s", d.Date)
		}
		p.dateIndex[d.Date] = i

		exercises := make([]Exercise, len(d.Exercises))
		copy(exercises, d.Exercises)
		for _, e := range exercises {
			if e.ID == "" {
				return nil, fmt.Errorf("day %s: exercise %q has no id", d.Date, e.Name)
			}
			if prev, dup := p.dayOf[e.ID]; dup {
				return nil, fmt.Errorf("duplicate exercise id %q (days %s and %s)", e.ID, prev, d.Date)
			}
			p.exercises[e.ID] = e
			p.dayOf[e.ID] = d.Date
		}
		d.Exercises = exercises
		p.days[i] = d
	}
	return p, nil
}

// Len returns the number of days in the plan.
func (p *Plan) Len() int { return len(p.days) }

// Days returns a copy of the plan's days in order.
func (p *Plan) Days() []WorkoutDay {
	out := make([]WorkoutDay, len(p.days))
	copy(out, p.days)
	return out
}

// At returns the day at position i.
func (p *Plan) At(i int) WorkoutDay { return p.days[i] }

// Index returns the position of date in the plan, or -1.
func (p *Plan) Index(date string) int {
	if i, ok := p.dateIndex[date]; ok {
		return i
	}
	return -1
}

// Day looks up the day for date.
func (p *Plan) Day(date string) (WorkoutDay, bool) {
	i := p.Index(date)
	if i < 0 {
		return WorkoutDay{}, false
	}
	return p.days[i], true
}

// First returns the first day of the plan.
func (p *Plan) First() (WorkoutDay, error) {
	if len(p.days) == 0 {
		return WorkoutDay{}, ErrEmptyPlan
	}
	return p.days[0], nil
}

// Last returns the last day of the plan.
func (p *Plan) Last() (WorkoutDay, error) {
	if len(p.days) == 0 {
		return WorkoutDay{}, ErrEmptyPlan
	}
	return p.days[len(p.days)-1], nil
}

// ExerciseByID looks up an exercise anywhere in the plan.
func (p *Plan) ExerciseByID(id string) (Exercise, bool) {
	e, ok := p.exercises[id]
	return e, ok
}

// DateOfExercise returns the date of the day that holds exercise id.
func (p *Plan) DateOfExercise(id string) (string, bool) {
	d, ok := p.dayOf[id]
	return d, ok
}
