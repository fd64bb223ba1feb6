package port

import (
	"context"
	"fmt"
	"time"
)

const (
	defaultMaxAttempts = 3
	defaultBackoffStep = 100 * time.Millisecond
)

// RetryPolicy describes how transient collaborator failures are retried.
type RetryPolicy struct {
	// MaxAttempts includes the first call. Values below 1 mean one attempt.
	MaxAttempts int
	// Backoff returns the wait before attempt n+1, where n starts at 1.
	Backoff func(attempt int) time.Duration
}

// DefaultRetryPolicy retries up to 3 attempts with 100/200 ms backoff.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: defaultMaxAttempts,
		Backoff:     LinearBackoff(defaultBackoffStep),
	}
}

// NoRetry performs exactly one attempt.
func NoRetry() RetryPolicy {
	return RetryPolicy{MaxAttempts: 1}
}

// LinearBackoff waits step, 2*step, 3*step...
func LinearBackoff(step time.Duration) func(int) time.Duration {
	return func(attempt int) time.Duration {
		return time.Duration(attempt) * step
	}
}

func (p RetryPolicy) attempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}

func (p RetryPolicy) wait(attempt int) time.Duration {
	if p.Backoff == nil {
		return 0
	}
	return p.Backoff(attempt)
}

// Retry calls fn until it succeeds, returns a non-transient error, or the
// policy runs out of attempts. Only errors accepted by IsTransient are retried.
func Retry[T any](ctx context.Context, p RetryPolicy, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 1; attempt <= p.attempts(); attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err
		if !IsTransient(err) || attempt == p.attempts() {
			break
		}
		if err := sleepCtx(ctx, p.wait(attempt)); err != nil {
			return zero, fmt.Errorf("retry aborted: %w", err)
		}
	}
	return zero, lastErr
}

// Do is Retry for calls without a result.
func Do(ctx context.Context, p RetryPolicy, fn func(ctx context.Context) error) error {
	_, err := Retry(ctx, p, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
