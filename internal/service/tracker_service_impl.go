package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/alexanderramin/physio/internal/db"
	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/progress"
	"github.com/alexanderramin/physio/internal/repository"
	"github.com/alexanderramin/physio/internal/store"
	"github.com/google/uuid"
)

type TrackerOption func(*trackerService)

func WithObserver(o UseCaseObserver) TrackerOption {
	return func(s *trackerService) {
		if o != nil {
			s.observer = o
		}
	}
}

func WithLogger(l *slog.Logger) TrackerOption {
	return func(s *trackerService) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithClock(now func() time.Time) TrackerOption {
	return func(s *trackerService) {
		if now != nil {
			s.now = now
		}
	}
}

type trackerService struct {
	plan     *domain.Plan
	kv       store.KV
	activity repository.ActivityRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
	logger   *slog.Logger
	now      func() time.Time

	mu        sync.Mutex
	completed domain.CompletedSet
}

// NewTrackerService wires the tracker. With a unit of work, the completion
// set and its activity event are written in one transaction through
// tx-scoped SQLite repositories. Without one, kv is written directly and
// the activity log (if any) is best effort.
func NewTrackerService(
	plan *domain.Plan,
	kv store.KV,
	activity repository.ActivityRepo,
	uow db.UnitOfWork,
	opts ...TrackerOption,
) TrackerService {
	s := &trackerService{
		plan:      plan,
		kv:        kv,
		activity:  activity,
		uow:       uow,
		observer:  NoopUseCaseObserver{},
		logger:    slog.New(slog.DiscardHandler),
		now:       time.Now,
		completed: domain.NewCompletedSet(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *trackerService) Plan() *domain.Plan { return s.plan }

func (s *trackerService) Load(ctx context.Context) error {
	startedAt := s.now()
	set := store.NewCompletedStore(s.kv, s.logger).Load(ctx)

	s.mu.Lock()
	s.completed = set
	s.mu.Unlock()

	s.observe(ctx, "load-completed", startedAt, nil, map[string]any{"count": set.Len()})
	return nil
}

func (s *trackerService) Toggle(ctx context.Context, exerciseID string) (done bool, err error) {
	startedAt := s.now()
	fields := map[string]any{"exercise_id": exerciseID}
	defer func() {
		fields["done"] = done
		s.observe(ctx, "toggle-exercise", startedAt, err, fields)
	}()

	ex, ok := s.plan.ExerciseByID(exerciseID)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownExercise, exerciseID)
	}
	if ex.IsGuidance() {
		return false, fmt.Errorf("%w: %q", ErrNotCompletable, exerciseID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	done = s.completed.Toggle(exerciseID)
	action := domain.ActivityCompleted
	if !done {
		action = domain.ActivityReopened
	}
	date, _ := s.plan.DateOfExercise(exerciseID)
	event := &domain.ActivityEvent{
		ID:         uuid.New().String(),
		ExerciseID: exerciseID,
		PlanDate:   date,
		Action:     action,
		At:         s.now().UTC(),
	}

	if err := s.persist(ctx, s.completed, event); err != nil {
		s.completed.Toggle(exerciseID)
		return !done, fmt.Errorf("saving completion of %q: %w", exerciseID, err)
	}
	return done, nil
}

func (s *trackerService) Reset(ctx context.Context) (err error) {
	startedAt := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	previous := s.completed
	defer func() {
		s.observe(ctx, "reset-completed", startedAt, err, map[string]any{"cleared": previous.Len()})
	}()

	event := &domain.ActivityEvent{
		ID:     uuid.New().String(),
		Action: domain.ActivityReset,
		At:     s.now().UTC(),
	}
	empty := domain.NewCompletedSet()
	if err := s.persist(ctx, empty, event); err != nil {
		return fmt.Errorf("resetting completion: %w", err)
	}
	s.completed = empty
	return nil
}

func (s *trackerService) persist(ctx context.Context, set domain.CompletedSet, event *domain.ActivityEvent) error {
	if s.uow == nil {
		if err := store.NewCompletedStore(s.kv, s.logger).Save(ctx, set); err != nil {
			return err
		}
		if s.activity != nil {
			if err := s.activity.Append(ctx, event); err != nil {
				s.logger.WarnContext(ctx, "activity_append_failed", "exercise_id", event.ExerciseID, "error", err.Error())
			}
		}
		return nil
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txKV := repository.NewSQLiteKV(tx)
		txActivity := repository.NewSQLiteActivityRepo(tx)

		if err := store.NewCompletedStore(txKV, s.logger).Save(ctx, set); err != nil {
			return err
		}
		return txActivity.Append(ctx, event)
	})
}

func (s *trackerService) Completed() domain.CompletedSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed.Clone()
}

func (s *trackerService) IsCompleted(exerciseID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed.Has(exerciseID)
}

func (s *trackerService) DayView(date string) (*DayView, error) {
	day, ok := s.plan.Day(date)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDayNotFound, date)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	view := &DayView{Day: day, Items: make([]ExerciseItem, 0, len(day.Exercises))}
	for _, ex := range day.Exercises {
		view.Items = append(view.Items, ExerciseItem{
			Exercise:    ex,
			Done:        s.completed.Has(ex.ID),
			Completable: !ex.IsGuidance(),
		})
	}
	view.Done, view.Total = progress.DayCounts(day, s.completed)
	view.Percent = progress.DayProgress(day, s.completed)
	view.Complete = progress.DayComplete(day, s.completed)
	return view, nil
}

func (s *trackerService) Summary() progress.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return progress.Summarize(s.plan, s.completed)
}

func (s *trackerService) History(ctx context.Context, limit int) ([]*domain.ActivityEvent, error) {
	if s.activity == nil {
		return nil, nil
	}
	events, err := s.activity.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("loading activity history: %w", err)
	}
	return events, nil
}

func (s *trackerService) observe(ctx context.Context, name string, startedAt time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  s.now().Sub(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}
