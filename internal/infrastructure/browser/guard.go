package browser

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/bnema/pinboard/internal/application/port"
	"github.com/bnema/pinboard/internal/domain/entity"
	"github.com/bnema/pinboard/internal/logging"
)

// GuardedHost retries transient failures of a host and latches once the
// host reports it is unavailable. After the latch every call fails fast
// with port.ErrCollaboratorUnavailable without contacting the host.
type GuardedHost struct {
	inner  port.BrowserHost
	policy port.RetryPolicy
	failed atomic.Bool
}

var _ port.BrowserHost = (*GuardedHost)(nil)

// NewGuardedHost wraps inner with policy.
func NewGuardedHost(inner port.BrowserHost, policy port.RetryPolicy) *GuardedHost {
	return &GuardedHost{inner: inner, policy: policy}
}

// Failed reports whether the host has been latched as unavailable.
func (g *GuardedHost) Failed() bool {
	return g.failed.Load()
}

func (g *GuardedHost) observe(ctx context.Context, err error) error {
	if err != nil && errors.Is(err, port.ErrCollaboratorUnavailable) {
		if g.failed.CompareAndSwap(false, true) {
			logging.FromContext(ctx).Error().Err(err).Msg("browser connection lost")
		}
	}
	return err
}

func guarded[T any](ctx context.Context, g *GuardedHost, fn func(context.Context) (T, error)) (T, error) {
	if g.failed.Load() {
		var zero T
		return zero, port.ErrCollaboratorUnavailable
	}
	v, err := port.Retry(ctx, g.policy, fn)
	return v, g.observe(ctx, err)
}

func guardedMutation(ctx context.Context, g *GuardedHost, fn func(context.Context) (entity.OperationResult, error)) (entity.OperationResult, error) {
	res, err := guarded(ctx, g, fn)
	if err != nil {
		return entity.Failed(err), err
	}
	return res, nil
}

func (g *GuardedHost) GetCurrentTab(ctx context.Context) (*entity.Tab, error) {
	return guarded(ctx, g, func(ctx context.Context) (*entity.Tab, error) {
		return g.inner.GetCurrentTab(ctx)
	})
}

func (g *GuardedHost) LoadStorageByType(ctx context.Context, tab *entity.Tab, t entity.PropertyType) (map[string]any, error) {
	return guarded(ctx, g, func(ctx context.Context) (map[string]any, error) {
		return g.inner.LoadStorageByType(ctx, tab, t)
	})
}

func (g *GuardedHost) SetItem(ctx context.Context, tab *entity.Tab, t entity.PropertyType, key, value string) (entity.OperationResult, error) {
	return guardedMutation(ctx, g, func(ctx context.Context) (entity.OperationResult, error) {
		return g.inner.SetItem(ctx, tab, t, key, value)
	})
}

func (g *GuardedHost) RemoveItem(ctx context.Context, tab *entity.Tab, t entity.PropertyType, key string) (entity.OperationResult, error) {
	return guardedMutation(ctx, g, func(ctx context.Context) (entity.OperationResult, error) {
		return g.inner.RemoveItem(ctx, tab, t, key)
	})
}

func (g *GuardedHost) GetCookies(ctx context.Context, tab *entity.Tab) ([]entity.Cookie, error) {
	return guarded(ctx, g, func(ctx context.Context) ([]entity.Cookie, error) {
		return g.inner.GetCookies(ctx, tab)
	})
}

func (g *GuardedHost) SetCookie(ctx context.Context, tab *entity.Tab, cookie entity.Cookie) (entity.OperationResult, error) {
	return guardedMutation(ctx, g, func(ctx context.Context) (entity.OperationResult, error) {
		return g.inner.SetCookie(ctx, tab, cookie)
	})
}

func (g *GuardedHost) DeleteCookie(ctx context.Context, tab *entity.Tab, name, domain, path string) (entity.OperationResult, error) {
	return guardedMutation(ctx, g, func(ctx context.Context) (entity.OperationResult, error) {
		return g.inner.DeleteCookie(ctx, tab, name, domain, path)
	})
}

func (g *GuardedHost) Ping(ctx context.Context, tab *entity.Tab) (port.ProbeResult, error) {
	return guarded(ctx, g, func(ctx context.Context) (port.ProbeResult, error) {
		return g.inner.Ping(ctx, tab)
	})
}
