package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/progress"
)

var (
	ErrUnknownExercise = errors.New("unknown exercise")
	ErrNotCompletable  = errors.New("exercise is guidance and cannot be completed")
	ErrDayNotFound     = errors.New("no workout planned for date")
)

// TrackerService owns the completion set for one session. It is loaded
// once, and every mutation is flushed to storage before the call returns.
type TrackerService interface {
	Plan() *domain.Plan
	Load(ctx context.Context) error
	Toggle(ctx context.Context, exerciseID string) (bool, error)
	Completed() domain.CompletedSet
	IsCompleted(exerciseID string) bool
	DayView(date string) (*DayView, error)
	Summary() progress.Summary
	Reset(ctx context.Context) error
	History(ctx context.Context, limit int) ([]*domain.ActivityEvent, error)
}

// ExerciseItem is one row of a day view.
type ExerciseItem struct {
	Exercise    domain.Exercise
	Done        bool
	Completable bool
}

// DayView is a day with its completion state.
type DayView struct {
	Day      domain.WorkoutDay
	Items    []ExerciseItem
	Done     int
	Total    int
	Percent  int
	Complete bool
}
