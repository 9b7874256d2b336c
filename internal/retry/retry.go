// Package retry re-runs an operation a bounded number of times.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy bounds how often and how quickly an operation is re-run
type Policy struct {
	// Attempts is the total number of runs, including the first. Values below 1 mean 1.
	Attempts int
	// Delay is the pause between runs
	Delay time.Duration
}

// WithRetries builds a policy from a retry count, the way test cases declare it
func WithRetries(retries int, delay time.Duration) Policy {
	return Policy{Attempts: retries + 1, Delay: delay}
}

// Attempt describes the run in progress
type Attempt struct {
	Number int
	Of     int
}

// Final reports whether no further run will follow a failure of this one
func (a Attempt) Final() bool {
	return a.Number >= a.Of
}

// Permanent wraps err so that Do stops retrying and returns err unwrapped
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// Do runs fn until it succeeds, returns a Permanent error, the policy is exhausted,
// or ctx is done. It returns the last error fn produced, or ctx.Err().
func Do(ctx context.Context, p Policy, fn func(context.Context, Attempt) error) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var b backoff.BackOff = backoff.NewConstantBackOff(p.Delay)
	b = backoff.WithMaxRetries(b, uint64(attempts-1))
	b = backoff.WithContext(b, ctx)

	n := 0
	return backoff.Retry(func() error {
		if err := ctx.Err(); err != nil {
			return backoff.Permanent(err)
		}
		n++
		return fn(ctx, Attempt{Number: n, Of: attempts})
	}, b)
}
