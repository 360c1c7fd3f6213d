package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres schema for quotes and saved responses.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createQuotesQuery := `
	CREATE TABLE IF NOT EXISTS quotes (
		quote_id     TEXT PRIMARY KEY,
		submitted_at TIMESTAMPTZ NOT NULL,
		name         TEXT NOT NULL,
		email        TEXT NOT NULL,
		phone        TEXT NOT NULL DEFAULT '',
		company      TEXT NOT NULL DEFAULT '',
		passengers   INTEGER NOT NULL DEFAULT 0,
		description  TEXT NOT NULL DEFAULT '',
		trip_days    TEXT NOT NULL DEFAULT '',
		notes        TEXT NOT NULL DEFAULT ''
	);
	`

	createResponsesQuery := `
	CREATE TABLE IF NOT EXISTS quote_responses (
		quote_id     TEXT PRIMARY KEY,
		amount       DOUBLE PRECISION NOT NULL DEFAULT 0,
		agreed_price DOUBLE PRECISION NOT NULL DEFAULT 0,
		details      TEXT NOT NULL DEFAULT '',
		status       TEXT NOT NULL,
		admin_name   TEXT NOT NULL DEFAULT '',
		sent_at      TIMESTAMPTZ NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_quotes_submitted_at
	ON quotes(submitted_at);
	`

	statements := []string{
		createQuotesQuery,
		createResponsesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
