// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// DropSchema removes every table created by CreateSchema.
func DropSchema(db *sql.DB) error {
	_, err := db.Exec(`
		DROP TABLE IF EXISTS completed_response;
		DROP TABLE IF EXISTS partial_response;
	`)
	if err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	return nil
}

// The schema is shared by PostgreSQL and SQLite, so it avoids NOW() and
// JSONB; timestamps are always written by the application.
const schema = `
-- In-flight responses (answer store)
CREATE TABLE IF NOT EXISTS partial_response (
    id TEXT PRIMARY KEY,
    answers TEXT NOT NULL DEFAULT '{}',
    status TEXT NOT NULL DEFAULT 'in-progress' CHECK (status IN ('in-progress', 'complete')),
    progress INTEGER NOT NULL DEFAULT 0 CHECK (progress >= 0),
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_partial_response_status ON partial_response(status);

-- Completed responses (archive store, sql backend)
CREATE TABLE IF NOT EXISTS completed_response (
    id TEXT PRIMARY KEY,
    first_question TEXT NOT NULL DEFAULT '',
    second_question TEXT NOT NULL DEFAULT '',
    third_question TEXT NOT NULL DEFAULT '',
    fourth_question TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`
