package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and are
// re-run on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN is not idempotent in SQLite.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS activity (
		id          TEXT PRIMARY KEY,
		exercise_id TEXT NOT NULL,
		action      TEXT NOT NULL
		            CHECK(action IN ('completed','reopened','reset')),
		at          TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activity_at ON activity(at)`,

	// plan_date records which plan day an exercise belonged to when the
	// event was written; older databases lack it.
	`ALTER TABLE activity ADD COLUMN plan_date TEXT NOT NULL DEFAULT ''`,

	`CREATE INDEX IF NOT EXISTS idx_activity_exercise ON activity(exercise_id)`,
}
