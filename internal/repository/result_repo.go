package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/swaglabs/loginsuite/internal/database"
	"github.com/swaglabs/loginsuite/internal/models"
)

// ErrNoRuns is returned when no attempt has been recorded yet
var ErrNoRuns = errors.New("no recorded runs")

// ResultRepository persists test attempts and their attachments
type ResultRepository struct {
	db *sql.DB
}

// NewResultRepository creates a repository bound to the package-level connection
func NewResultRepository() *ResultRepository {
	return &ResultRepository{
		db: database.DB,
	}
}

// NewResultRepositoryWithDB creates a repository with a specific database connection
func NewResultRepositoryWithDB(db *sql.DB) *ResultRepository {
	return &ResultRepository{
		db: db,
	}
}

// CreateAttempt inserts a running attempt
func (r *ResultRepository) CreateAttempt(ctx context.Context, attempt *models.Attempt) error {
	query := `
		INSERT INTO test_attempts (id, run_id, case_id, number, status, started_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		attempt.ID,
		attempt.RunID,
		attempt.CaseID,
		attempt.Number,
		attempt.Status,
		attempt.StartedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create attempt: %w", err)
	}

	return nil
}

// FinishAttempt stores the terminal status of an attempt
func (r *ResultRepository) FinishAttempt(ctx context.Context, attempt *models.Attempt) error {
	query := `
		UPDATE test_attempts
		SET status = $1, error = $2, finished_at = $3
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query, attempt.Status, attempt.Error, attempt.FinishedAt, attempt.ID)
	if err != nil {
		return fmt.Errorf("failed to finish attempt: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("attempt %s not found", attempt.ID)
	}

	return nil
}

// ListAttempts returns the attempts of a run in the order they started
func (r *ResultRepository) ListAttempts(ctx context.Context, runID string) ([]*models.Attempt, error) {
	query := `
		SELECT id, run_id, case_id, number, status, COALESCE(error, ''),
		       started_at, COALESCE(finished_at, started_at)
		FROM test_attempts
		WHERE run_id = $1
		ORDER BY started_at, number
	`

	rows, err := r.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	defer rows.Close()

	var attempts []*models.Attempt
	for rows.Next() {
		a := &models.Attempt{}
		if err := rows.Scan(
			&a.ID,
			&a.RunID,
			&a.CaseID,
			&a.Number,
			&a.Status,
			&a.Error,
			&a.StartedAt,
			&a.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		attempts = append(attempts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attempts: %w", err)
	}

	return attempts, nil
}

// LatestRunID returns the run that started most recently
func (r *ResultRepository) LatestRunID(ctx context.Context) (string, error) {
	query := `
		SELECT run_id
		FROM test_attempts
		ORDER BY started_at DESC
		LIMIT 1
	`

	var runID string
	err := r.db.QueryRowContext(ctx, query).Scan(&runID)
	if err == sql.ErrNoRows {
		return "", ErrNoRuns
	}
	if err != nil {
		return "", fmt.Errorf("failed to get latest run: %w", err)
	}

	return runID, nil
}

// SaveAttachment stores a diagnostic attachment
func (r *ResultRepository) SaveAttachment(ctx context.Context, attachment *models.Attachment) error {
	query := `
		INSERT INTO attachments (id, attempt_id, case_id, label, content_type, data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	var attemptID interface{}
	if attachment.AttemptID != "" {
		attemptID = attachment.AttemptID
	}

	_, err := r.db.ExecContext(ctx, query,
		attachment.ID,
		attemptID,
		attachment.CaseID,
		attachment.Label,
		attachment.ContentType,
		attachment.Data,
		attachment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}

	return nil
}
