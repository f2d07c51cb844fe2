package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/physio/internal/db"
	"github.com/alexanderramin/physio/internal/domain"
	"github.com/google/uuid"
)

// SQLiteActivityRepo implements ActivityRepo using a SQLite database.
type SQLiteActivityRepo struct {
	db db.DBTX
}

func NewSQLiteActivityRepo(db db.DBTX) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: db}
}

const activityColumns = `id, exercise_id, plan_date, action, at`

// Append inserts e. A missing ID is generated.
func (r *SQLiteActivityRepo) Append(ctx context.Context, e *domain.ActivityEvent) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	query := `INSERT INTO activity (` + activityColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.ExerciseID,
		e.PlanDate,
		string(e.Action),
		formatTime(e.At),
	)
	if err != nil {
		return fmt.Errorf("inserting activity event: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) GetByID(ctx context.Context, id string) (*domain.ActivityEvent, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+activityColumns+` FROM activity WHERE id = ?`, id)
	e, err := scanActivity(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("activity event: %w", ErrNotFound)
	}
	return e, err
}

// ListRecent returns up to limit events, newest first. limit <= 0 means all.
func (r *SQLiteActivityRepo) ListRecent(ctx context.Context, limit int) ([]*domain.ActivityEvent, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `SELECT ` + activityColumns + ` FROM activity ORDER BY at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent activity: %w", err)
	}
	defer rows.Close()
	return scanActivities(rows)
}

func (r *SQLiteActivityRepo) ListByExercise(ctx context.Context, exerciseID string) ([]*domain.ActivityEvent, error) {
	query := `SELECT ` + activityColumns + ` FROM activity WHERE exercise_id = ? ORDER BY at, rowid`
	rows, err := r.db.QueryContext(ctx, query, exerciseID)
	if err != nil {
		return nil, fmt.Errorf("listing activity by exercise: %w", err)
	}
	defer rows.Close()
	return scanActivities(rows)
}

func (r *SQLiteActivityRepo) CountByAction(ctx context.Context) (map[domain.ActivityAction]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT action, COUNT(*) FROM activity GROUP BY action`)
	if err != nil {
		return nil, fmt.Errorf("counting activity: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.ActivityAction]int)
	for rows.Next() {
		var action string
		var n int
		if err := rows.Scan(&action, &n); err != nil {
			return nil, fmt.Errorf("scanning activity count: %w", err)
		}
		counts[domain.ActivityAction(action)] = n
	}
	return counts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(row rowScanner) (*domain.ActivityEvent, error) {
	var e domain.ActivityEvent
	var action, at string
	if err := row.Scan(&e.ID, &e.ExerciseID, &e.PlanDate, &action, &at); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning activity event: %w", err)
	}
	e.Action = domain.ActivityAction(action)
	t, err := parseTime(at)
	if err != nil {
		return nil, fmt.Errorf("parsing activity time %q: %w", at, err)
	}
	e.At = t
	return &e, nil
}

func scanActivities(rows *sql.Rows) ([]*domain.ActivityEvent, error) {
	var events []*domain.ActivityEvent
	for rows.Next() {
		e, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
