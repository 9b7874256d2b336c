package suite

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phuslu/log"

	"github.com/swaglabs/loginsuite/internal/models"
	"github.com/swaglabs/loginsuite/internal/report"
	"github.com/swaglabs/loginsuite/internal/retry"
)

// Session is what an attempt drives. It is opened fresh for every attempt
// and closed when the attempt ends.
type Session interface {
	CaptureScreenshot() ([]byte, error)
	Close() error
}

// Source resolves a case ID to its data record
type Source[R any] interface {
	Lookup(id string) (R, error)
}

// Opener creates a new isolated session
type Opener[S Session] func(ctx context.Context) (S, error)

// Body is the scenario of a case, run once per attempt
type Body[R any, S Session] func(ctx context.Context, session S, record R) error

// ErrSetup marks failures that happen before any attempt runs
var ErrSetup = errors.New("suite: setup failed")

// Options configures a Harness. Zero values fall back to sensible defaults.
type Options[R any, S Session] struct {
	RunID      string
	Source     Source[R]
	Open       Opener[S]
	Sink       report.Sink
	Recorder   Recorder
	Retries    int
	RetryDelay time.Duration
}

// Harness runs cases against a shared data source and session opener
type Harness[R any, S Session] struct {
	runID    string
	source   Source[R]
	open     Opener[S]
	sink     report.Sink
	recorder Recorder
	retries  int
	delay    time.Duration
}

// Result summarizes one executed case
type Result struct {
	CaseID   string
	Attempts int
	Err      error
}

func New[R any, S Session](opts Options[R, S]) *Harness[R, S] {
	h := &Harness[R, S]{
		runID:    opts.RunID,
		source:   opts.Source,
		open:     opts.Open,
		sink:     opts.Sink,
		recorder: opts.Recorder,
		retries:  opts.Retries,
		delay:    opts.RetryDelay,
	}
	if h.runID == "" {
		h.runID = uuid.New().String()
	}
	if h.sink == nil {
		h.sink = report.Discard
	}
	if h.recorder == nil {
		h.recorder = LogRecorder{}
	}
	return h
}

func (h *Harness[R, S]) RunID() string {
	return h.runID
}

// Run executes c as a Go test and fails t when every attempt failed
func (h *Harness[R, S]) Run(t testing.TB, c Case, body Body[R, S]) {
	t.Helper()
	t.Logf("%s [%s] %s", c, c.Kind, c.Story)

	res := h.Execute(context.Background(), c, body)
	if res.Err != nil {
		t.Fatal(res.Err)
	}
}

// Execute looks up the case record and runs body until it passes or the
// retry budget is spent. Setup failures are never retried.
func (h *Harness[R, S]) Execute(ctx context.Context, c Case, body Body[R, S]) Result {
	res := Result{CaseID: c.ID}

	record, err := h.source.Lookup(c.ID)
	if err != nil {
		res.Err = fmt.Errorf("%w: case %s: %w", ErrSetup, c.ID, err)
		return res
	}

	retries := c.Retries
	switch {
	case retries == 0:
		retries = h.retries
	case retries < 0:
		retries = 0
	}

	err = retry.Do(ctx, retry.WithRetries(retries, h.delay), func(ctx context.Context, a retry.Attempt) error {
		res.Attempts = a.Number
		return h.attempt(ctx, c, a, record, body)
	})
	if err != nil {
		res.Err = fmt.Errorf("suite: case %s failed after %d attempt(s): %w", c.ID, res.Attempts, err)
	}
	return res
}

func (h *Harness[R, S]) attempt(ctx context.Context, c Case, a retry.Attempt, record R, body Body[R, S]) error {
	rec, err := models.NewAttempt(h.runID, c.ID, a.Number)
	if err != nil {
		return retry.Permanent(err)
	}
	if err := h.recorder.CreateAttempt(ctx, rec); err != nil {
		log.Error().Err(err).Str("case", c.ID).Msg("failed to record attempt start")
	}

	err = h.runSession(ctx, c, a, rec, record, body)

	var terr error
	if err != nil {
		terr = rec.Fail(err)
	} else {
		terr = rec.Pass()
	}
	if terr != nil {
		log.Error().Err(terr).Str("case", c.ID).Int("attempt", a.Number).Msg("failed to finish attempt")
	}
	if ferr := h.recorder.FinishAttempt(ctx, rec); ferr != nil {
		log.Error().Err(ferr).Str("case", c.ID).Msg("failed to record attempt result")
	}
	return err
}

func (h *Harness[R, S]) runSession(ctx context.Context, c Case, a retry.Attempt, rec *models.Attempt, record R, body Body[R, S]) error {
	session, err := h.open(ctx)
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			log.Error().Err(cerr).Str("case", c.ID).Int("attempt", a.Number).Msg("failed to close session")
		}
	}()

	err = body(ctx, session, record)
	if err != nil && a.Final() {
		h.attachScreenshot(ctx, rec, session)
	}
	return err
}

func (h *Harness[R, S]) attachScreenshot(ctx context.Context, rec *models.Attempt, session S) {
	data, err := session.CaptureScreenshot()
	if err != nil {
		log.Error().Err(err).Str("case", rec.CaseID).Msg("failed to capture screenshot")
		return
	}

	attachment, err := models.NewAttachment(rec, models.FailureScreenshotLabel, models.ContentTypePNG, data)
	if err != nil {
		log.Error().Err(err).Str("case", rec.CaseID).Msg("failed to build screenshot attachment")
		return
	}
	if err := h.sink.Attach(ctx, attachment); err != nil {
		log.Error().Err(err).Str("case", rec.CaseID).Msg("failed to attach screenshot")
	}
}
