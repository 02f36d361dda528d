package store

import (
	"context"
	"database/sql"
	"fmt"
)

const (
	tableProfiles       = "subject_profiles"
	tableSessionRecords = "session_records"
	tableLevelEvents    = "level_events"
)

// schema holds the DDL for every table. Statements are idempotent so they run
// on every Open.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS subject_profiles (
		subject TEXT PRIMARY KEY,
		data TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS session_records (
		id TEXT PRIMARY KEY,
		sequence INTEGER NOT NULL UNIQUE,
		timestamp INTEGER NOT NULL,
		subject TEXT NOT NULL,
		duration_minutes REAL NOT NULL DEFAULT 0,
		activities_completed INTEGER NOT NULL DEFAULT 0,
		coins_earned INTEGER NOT NULL DEFAULT 0,
		accuracy REAL NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS session_records_subject ON session_records (subject)`,
	`CREATE INDEX IF NOT EXISTS session_records_timestamp ON session_records (timestamp)`,
	`CREATE TABLE IF NOT EXISTS level_events (
		sequence INTEGER PRIMARY KEY,
		timestamp INTEGER NOT NULL,
		subject TEXT NOT NULL,
		from_level INTEGER NOT NULL,
		to_level INTEGER NOT NULL,
		accuracy REAL NOT NULL,
		reason TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS level_events_subject ON level_events (subject)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
