package port

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastPolicy(attempts int) RetryPolicy {
	return RetryPolicy{MaxAttempts: attempts, Backoff: LinearBackoff(time.Millisecond)}
}

func TestRetry_SucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	got, err := Retry(context.Background(), fastPolicy(3), func(context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", fmt.Errorf("evaluate: %w", ErrTransient)
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 3, calls)
}

func TestRetry_StopsAtCap(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastPolicy(2), func(context.Context) error {
		calls++
		return ErrTransient
	})

	require.ErrorIs(t, err, ErrTransient)
	assert.Equal(t, 2, calls)
}

func TestRetry_BusinessErrorsAreNotRetried(t *testing.T) {
	business := errors.New("cookie not found")
	calls := 0
	err := Do(context.Background(), fastPolicy(3), func(context.Context) error {
		calls++
		return business
	})

	require.ErrorIs(t, err, business)
	assert.Equal(t, 1, calls)
}

func TestRetry_UnavailableIsNotRetried(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastPolicy(3), func(context.Context) error {
		calls++
		return fmt.Errorf("%w: %w", ErrCollaboratorUnavailable, ErrTransient)
	})

	require.ErrorIs(t, err, ErrCollaboratorUnavailable)
	assert.Equal(t, 1, calls)
}

func TestRetry_ContextCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := RetryPolicy{MaxAttempts: 3, Backoff: func(int) time.Duration { return time.Hour }}

	calls := 0
	err := Do(ctx, p, func(context.Context) error {
		calls++
		cancel()
		return ErrTransient
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestRetryPolicy_ZeroValueRunsOnce(t *testing.T) {
	calls := 0
	_ = Do(context.Background(), RetryPolicy{}, func(context.Context) error {
		calls++
		return ErrTransient
	})
	assert.Equal(t, 1, calls)
}

func TestDefaultRetryPolicy(t *testing.T) {
	p := DefaultRetryPolicy()
	assert.Equal(t, 3, p.MaxAttempts)
	assert.Equal(t, 100*time.Millisecond, p.Backoff(1))
	assert.Equal(t, 200*time.Millisecond, p.Backoff(2))
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(context.DeadlineExceeded))
	assert.True(t, IsTransient(fmt.Errorf("x: %w", ErrTransient)))
	assert.False(t, IsTransient(context.Canceled))
	assert.False(t, IsTransient(ErrCollaboratorUnavailable))
	assert.False(t, IsTransient(errors.New("boom")))
	assert.False(t, IsTransient(nil))
}
