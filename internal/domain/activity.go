package domain

import "time"

// ActivityEvent records a single change to the completion state.
// PlanDate is the day the exercise belongs to, empty for resets.
type ActivityEvent struct {
	ID         string
	ExerciseID string
	PlanDate   string
	Action     ActivityAction
	At         time.Time
}
