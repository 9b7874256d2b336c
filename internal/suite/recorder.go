package suite

import (
	"context"
	"sync"

	"github.com/phuslu/log"

	"github.com/swaglabs/loginsuite/internal/models"
)

// Recorder keeps track of attempts. Implementations must be safe for concurrent use.
type Recorder interface {
	CreateAttempt(ctx context.Context, attempt *models.Attempt) error
	FinishAttempt(ctx context.Context, attempt *models.Attempt) error
}

// LogRecorder writes attempt transitions to the log
type LogRecorder struct{}

func (LogRecorder) CreateAttempt(_ context.Context, a *models.Attempt) error {
	log.Info().Str("run", a.RunID).Str("case", a.CaseID).Int("attempt", a.Number).Msg("attempt started")
	return nil
}

func (LogRecorder) FinishAttempt(_ context.Context, a *models.Attempt) error {
	if a.Status == models.AttemptStatusFailed {
		log.Warn().Str("run", a.RunID).Str("case", a.CaseID).Int("attempt", a.Number).
			Dur("duration", a.Duration()).Str("error", a.Error).Msg("attempt failed")
		return nil
	}
	log.Info().Str("run", a.RunID).Str("case", a.CaseID).Int("attempt", a.Number).
		Dur("duration", a.Duration()).Msg("attempt passed")
	return nil
}

// MemoryRecorder keeps finished attempts in memory
type MemoryRecorder struct {
	mu       sync.Mutex
	attempts []models.Attempt
}

func (r *MemoryRecorder) CreateAttempt(context.Context, *models.Attempt) error { return nil }

func (r *MemoryRecorder) FinishAttempt(_ context.Context, a *models.Attempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts = append(r.attempts, *a)
	return nil
}

// Attempts returns a copy of the finished attempts in completion order
func (r *MemoryRecorder) Attempts() []models.Attempt {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Attempt, len(r.attempts))
	copy(out, r.attempts)
	return out
}

// Recorders fans out to several recorders, stopping at the first error
type Recorders []Recorder

func (rs Recorders) CreateAttempt(ctx context.Context, a *models.Attempt) error {
	for _, r := range rs {
		if err := r.CreateAttempt(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func (rs Recorders) FinishAttempt(ctx context.Context, a *models.Attempt) error {
	for _, r := range rs {
		if err := r.FinishAttempt(ctx, a); err != nil {
			return err
		}
	}
	return nil
}
