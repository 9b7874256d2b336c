package database

import (
	"database/sql"
	"fmt"

	"github.com/phuslu/log"
)

// Schema creates the tables used to record suite runs
const Schema = `
	CREATE TABLE IF NOT EXISTS test_attempts (
		id UUID PRIMARY KEY,
		run_id VARCHAR(64) NOT NULL,
		case_id VARCHAR(64) NOT NULL,
		number INTEGER NOT NULL,
		status VARCHAR(16) NOT NULL,
		error TEXT,
		started_at TIMESTAMP NOT NULL,
		finished_at TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_test_attempts_run ON test_attempts(run_id);
	CREATE INDEX IF NOT EXISTS idx_test_attempts_case ON test_attempts(case_id);

	CREATE TABLE IF NOT EXISTS attachments (
		id UUID PRIMARY KEY,
		attempt_id UUID REFERENCES test_attempts(id) ON DELETE CASCADE,
		case_id VARCHAR(64) NOT NULL,
		label VARCHAR(255) NOT NULL,
		content_type VARCHAR(64) NOT NULL,
		data BYTEA NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_attachments_attempt ON attachments(attempt_id);
	`

// RunMigrations creates the necessary database tables
func RunMigrations() error {
	return Migrate(DB)
}

// Migrate applies the schema to the given connection
func Migrate(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("database connection not initialized")
	}

	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create result tables: %w", err)
	}

	log.Info().Msg("database migrations completed")
	return nil
}
