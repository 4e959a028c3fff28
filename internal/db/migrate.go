package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent and
// re-run on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id         TEXT PRIMARY KEY,
		ws_id      TEXT NOT NULL,
		name       TEXT NOT NULL,
		color      TEXT NOT NULL DEFAULT 'BLUE'
		           CHECK(color IN ('RED','BLUE','GREEN','YELLOW','ORANGE',
		                           'PURPLE','PINK','INDIGO','CYAN','GRAY')),
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		completed  INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		id               TEXT PRIMARY KEY,
		ws_id            TEXT NOT NULL,
		title            TEXT NOT NULL,
		description      TEXT,
		category_id      TEXT REFERENCES categories(id) ON DELETE SET NULL,
		task_id          TEXT REFERENCES tasks(id) ON DELETE SET NULL,
		start_time       TEXT NOT NULL,
		end_time         TEXT,
		duration_seconds INTEGER,
		is_running       INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_ws_start
		ON sessions(ws_id, start_time)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_running
		ON sessions(ws_id, is_running)`,

	`CREATE TABLE IF NOT EXISTS approval_requests (
		id                TEXT PRIMARY KEY,
		ws_id             TEXT NOT NULL,
		title             TEXT NOT NULL,
		description       TEXT,
		category_id       TEXT,
		task_id           TEXT,
		start_time        TEXT NOT NULL,
		end_time          TEXT NOT NULL,
		proof_paths       TEXT NOT NULL DEFAULT '[]',
		linked_session_id TEXT,
		status            TEXT NOT NULL DEFAULT 'pending'
		                  CHECK(status IN ('pending','approved','rejected')),
		created_at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_requests_ws_status
		ON approval_requests(ws_id, status)`,

	`CREATE TABLE IF NOT EXISTS workspace_settings (
		ws_id          TEXT PRIMARY KEY,
		threshold_days INTEGER,
		updated_at     TEXT NOT NULL
	)`,
}
