package service

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// UseCaseEvent captures lightweight execution telemetry for a service use case.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

// DefaultSlowThreshold is how long a use case may take before it is logged
// as slow. Every toggle writes to disk before returning, so a slow disk
// shows up here first.
const DefaultSlowThreshold = 250 * time.Millisecond

type logUseCaseObserver struct {
	logger *slog.Logger
	slow   time.Duration
}

// NewLogUseCaseObserver writes use-case events through logger. Successful
// calls log at debug, or warn when slower than DefaultSlowThreshold.
// Rejected input logs at warn and storage failures at error.
func NewLogUseCaseObserver(logger *slog.Logger) UseCaseObserver {
	return NewLogUseCaseObserverWithThreshold(logger, DefaultSlowThreshold)
}

func NewLogUseCaseObserverWithThreshold(logger *slog.Logger, slow time.Duration) UseCaseObserver {
	if logger == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{logger: logger, slow: slow}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]any, 0, 6+len(event.Fields)*2)
	attrs = append(attrs,
		"use_case", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}

	switch {
	case event.Err != nil && isRejection(event.Err):
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.WarnContext(ctx, "service_use_case_rejected", attrs...)
	case event.Err != nil:
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "service_use_case", attrs...)
	case o.slow > 0 && event.Duration > o.slow:
		o.logger.WarnContext(ctx, "service_use_case_slow", attrs...)
	default:
		o.logger.DebugContext(ctx, "service_use_case", attrs...)
	}
}

// isRejection reports whether err is the caller's mistake rather than a
// storage failure.
func isRejection(err error) bool {
	return errors.Is(err, ErrUnknownExercise) || errors.Is(err, ErrNotCompletable)
}
