package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/physio/internal/domain"
)

// CompletedStore reads and writes the completion set as a JSON array of
// exercise ids under CompletedKey.
type CompletedStore struct {
	kv     KV
	logger *slog.Logger
}

func NewCompletedStore(kv KV, logger *slog.Logger) *CompletedStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CompletedStore{kv: kv, logger: logger}
}

// Load returns the persisted set. A missing, unreadable or malformed value
// yields an empty set; the problem is logged and never returned.
func (s *CompletedStore) Load(ctx context.Context) domain.CompletedSet {
	raw, ok, err := s.kv.Get(ctx, CompletedKey)
	if err != nil {
		s.logger.WarnContext(ctx, "completed_state_read_failed", "key", CompletedKey, "error", err.Error())
		return domain.NewCompletedSet()
	}
	if !ok || raw == "" {
		return domain.NewCompletedSet()
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.logger.WarnContext(ctx, "completed_state_malformed", "key", CompletedKey, "error", err.Error())
		return domain.NewCompletedSet()
	}
	return domain.NewCompletedSet(ids...)
}

// Save writes set, ids sorted.
func (s *CompletedStore) Save(ctx context.Context, set domain.CompletedSet) error {
	data, err := Encode(set)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, CompletedKey, data); err != nil {
		return fmt.Errorf("saving completed exercises: %w", err)
	}
	return nil
}

// Encode renders set in its persisted form.
func Encode(set domain.CompletedSet) (string, error) {
	data, err := json.Marshal(set.IDs())
	if err != nil {
		return "", fmt.Errorf("encoding completed exercises: %w", err)
	}
	return string(data), nil
}
