package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// migration system can re-run them on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// The engine persists each top-level state slice as an independently
// serializable JSON value under a distinct string key, so the whole schema
// is a single key-value table.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plan_state (
		key        TEXT PRIMARY KEY,
		value      BLOB NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_plan_state_updated_at ON plan_state(updated_at)`,
}
