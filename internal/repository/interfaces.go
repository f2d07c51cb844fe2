package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/physio/internal/domain"
	"github.com/alexanderramin/physio/internal/store"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// KVRepo is the SQLite-backed persistence port for the completion set.
type KVRepo interface {
	store.KV
	Delete(ctx context.Context, key string) error
}

// ActivityRepo is the append-only log of completion changes.
type ActivityRepo interface {
	Append(ctx context.Context, e *domain.ActivityEvent) error
	GetByID(ctx context.Context, id string) (*domain.ActivityEvent, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.ActivityEvent, error)
	ListByExercise(ctx context.Context, exerciseID string) ([]*domain.ActivityEvent, error)
	CountByAction(ctx context.Context) (map[domain.ActivityAction]int, error)
}
