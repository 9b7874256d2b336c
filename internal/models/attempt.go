package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AttemptStatus represents the state of a single test case attempt
type AttemptStatus string

// Attempt statuses
const (
	AttemptStatusRunning AttemptStatus = "running"
	AttemptStatusPassed  AttemptStatus = "passed"
	AttemptStatusFailed  AttemptStatus = "failed"
)

// Attempt is one execution of a test case inside a run
type Attempt struct {
	ID         string
	RunID      string
	CaseID     string
	Number     int
	Status     AttemptStatus
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Domain errors
var (
	ErrInvalidRunID            = errors.New("run id cannot be empty")
	ErrInvalidCaseID           = errors.New("case id cannot be empty")
	ErrInvalidAttemptNumber    = errors.New("attempt number must be positive")
	ErrInvalidStatusTransition = errors.New("invalid attempt status transition")
)

// NewAttempt creates a running attempt with validation
func NewAttempt(runID, caseID string, number int) (*Attempt, error) {
	if runID == "" {
		return nil, ErrInvalidRunID
	}
	if caseID == "" {
		return nil, ErrInvalidCaseID
	}
	if number <= 0 {
		return nil, ErrInvalidAttemptNumber
	}

	return &Attempt{
		ID:        uuid.New().String(),
		RunID:     runID,
		CaseID:    caseID,
		Number:    number,
		Status:    AttemptStatusRunning,
		StartedAt: time.Now(),
	}, nil
}

// Pass marks the attempt as passed
func (a *Attempt) Pass() error {
	if a.Status != AttemptStatusRunning {
		return fmt.Errorf("%w: cannot pass attempt with status %s", ErrInvalidStatusTransition, a.Status)
	}

	a.Status = AttemptStatusPassed
	a.FinishedAt = time.Now()
	return nil
}

// Fail marks the attempt as failed with the cause
func (a *Attempt) Fail(cause error) error {
	if a.Status != AttemptStatusRunning {
		return fmt.Errorf("%w: cannot fail attempt with status %s", ErrInvalidStatusTransition, a.Status)
	}

	a.Status = AttemptStatusFailed
	if cause != nil {
		a.Error = cause.Error()
	}
	a.FinishedAt = time.Now()
	return nil
}

// IsFinished returns true once the attempt reached a terminal status
func (a *Attempt) IsFinished() bool {
	return a.Status == AttemptStatusPassed || a.Status == AttemptStatusFailed
}

// Duration returns how long the attempt ran, zero while still running
func (a *Attempt) Duration() time.Duration {
	if !a.IsFinished() {
		return 0
	}
	return a.FinishedAt.Sub(a.StartedAt)
}
