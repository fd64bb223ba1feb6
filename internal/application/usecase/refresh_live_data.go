package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/pinboard/internal/application/port"
	"github.com/bnema/pinboard/internal/domain/entity"
	"github.com/bnema/pinboard/internal/domain/url"
	"github.com/bnema/pinboard/internal/logging"
)

// DefaultRefreshTimeout bounds each source of a refresh cycle.
const DefaultRefreshTimeout = 5 * time.Second

// RefreshLiveDataUseCase caches the live local storage, session storage
// and cookies of the inspected tab.
//
// Each source is loaded under its own timeout. A source that fails or
// times out is empty for that cycle; the others are still applied.
type RefreshLiveDataUseCase struct {
	storage port.StorageProvider
	cookies port.CookieProvider
	probe   port.ContentProbe
	timeout time.Duration

	issued atomic.Uint64

	mu      sync.RWMutex
	cache   entity.Snapshot
	applied uint64
}

// NewRefreshLiveDataUseCase creates a new refresh use case.
// A timeout of zero selects DefaultRefreshTimeout.
func NewRefreshLiveDataUseCase(
	storage port.StorageProvider,
	cookies port.CookieProvider,
	probe port.ContentProbe,
	timeout time.Duration,
) *RefreshLiveDataUseCase {
	if timeout <= 0 {
		timeout = DefaultRefreshTimeout
	}
	return &RefreshLiveDataUseCase{
		storage: storage,
		cookies: cookies,
		probe:   probe,
		timeout: timeout,
		cache:   entity.NewSnapshot(),
	}
}

// ReserveRequest issues the id of a refresh cycle that has not started
// loading yet. Cycles are ordered by reservation, so a caller that still
// has to resolve the tab reserves first and passes the id to
// RefreshRequest.
func (uc *RefreshLiveDataUseCase) ReserveRequest() uint64 {
	return uc.issued.Add(1)
}

// RefreshAll reloads every source concurrently and waits for all of them.
// The result is applied only if no newer cycle has been applied in the
// meantime; applied reports which happened. The returned snapshot is
// always the current cache.
func (uc *RefreshLiveDataUseCase) RefreshAll(ctx context.Context, tab *entity.Tab) (snap entity.Snapshot, applied bool) {
	return uc.RefreshRequest(ctx, uc.ReserveRequest(), tab)
}

// RefreshRequest is RefreshAll for an id obtained from ReserveRequest.
func (uc *RefreshLiveDataUseCase) RefreshRequest(ctx context.Context, id uint64, tab *entity.Tab) (snap entity.Snapshot, applied bool) {
	log := logging.FromContext(ctx).With().Uint64("request_id", id).Logger()
	if tab != nil {
		log = log.With().Str("tab_id", tab.ID).Logger()
	}
	log.Debug().Msg("refreshing live data")
	ctx = logging.WithContext(ctx, log)

	var (
		local   map[string]any
		session map[string]any
		cookies []entity.Cookie
	)

	var g errgroup.Group
	g.Go(func() error {
		local = uc.loadStorage(ctx, tab, entity.PropertyTypeLocalStorage)
		return nil
	})
	g.Go(func() error {
		session = uc.loadStorage(ctx, tab, entity.PropertyTypeSessionStorage)
		return nil
	})
	g.Go(func() error {
		cookies = uc.loadCookies(ctx, tab)
		return nil
	})
	_ = g.Wait()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if id < uc.applied {
		log.Debug().Uint64("applied", uc.applied).Msg("discarding stale refresh")
		return uc.cache.Clone(), false
	}

	uc.cache = entity.Snapshot{
		LocalStorage:   local,
		SessionStorage: session,
		Cookies:        cookies,
		RequestID:      id,
	}
	uc.applied = id

	log.Debug().
		Int("local", len(local)).
		Int("session", len(session)).
		Int("cookies", len(cookies)).
		Msg("live data refreshed")
	return uc.cache.Clone(), true
}

// RefreshStorage reloads one storage type and stores it in the cache.
func (uc *RefreshLiveDataUseCase) RefreshStorage(ctx context.Context, tab *entity.Tab, t entity.PropertyType) map[string]any {
	base := uc.issued.Load()
	items := uc.loadStorage(ctx, tab, t)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if base < uc.applied {
		return items
	}
	switch t {
	case entity.PropertyTypeLocalStorage:
		uc.cache.LocalStorage = items
	case entity.PropertyTypeSessionStorage:
		uc.cache.SessionStorage = items
	}
	return items
}

// RefreshCookies reloads the cookie list and stores it in the cache.
func (uc *RefreshLiveDataUseCase) RefreshCookies(ctx context.Context, tab *entity.Tab) []entity.Cookie {
	base := uc.issued.Load()
	cookies := uc.loadCookies(ctx, tab)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if base >= uc.applied {
		uc.cache.Cookies = cookies
	}
	return cookies
}

// Snapshot returns a copy of the cached live data.
func (uc *RefreshLiveDataUseCase) Snapshot() entity.Snapshot {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.cache.Clone()
}

func (uc *RefreshLiveDataUseCase) loadStorage(ctx context.Context, tab *entity.Tab, t entity.PropertyType) map[string]any {
	log := logging.FromContext(ctx).With().Str("source", string(t)).Logger()
	empty := make(map[string]any)

	if tab == nil {
		return empty
	}
	if !url.IsScriptablePage(tab.URL) {
		log.Debug().Str("url", tab.URL).Msg("page cannot host scripts, skipping storage")
		return empty
	}

	probe, err := withTimeout(ctx, uc.timeout, func(ctx context.Context) (port.ProbeResult, error) {
		return uc.probe.Ping(ctx, tab)
	})
	if err != nil {
		logSourceFailure(&log, err, "content probe failed")
		return empty
	}
	if !probe.Success || !probe.Ready {
		log.Debug().Bool("success", probe.Success).Bool("ready", probe.Ready).Msg("page not ready, skipping storage")
		return empty
	}

	items, err := withTimeout(ctx, uc.timeout, func(ctx context.Context) (map[string]any, error) {
		return uc.storage.LoadStorageByType(ctx, tab, t)
	})
	if err != nil {
		logSourceFailure(&log, err, "failed to load storage")
		return empty
	}
	if items == nil {
		return empty
	}
	return items
}

func (uc *RefreshLiveDataUseCase) loadCookies(ctx context.Context, tab *entity.Tab) []entity.Cookie {
	log := logging.FromContext(ctx).With().Str("source", string(entity.PropertyTypeCookie)).Logger()
	empty := make([]entity.Cookie, 0)

	if tab == nil {
		return empty
	}

	cookies, err := withTimeout(ctx, uc.timeout, func(ctx context.Context) ([]entity.Cookie, error) {
		return uc.cookies.GetCookies(ctx, tab)
	})
	if err != nil {
		logSourceFailure(&log, err, "failed to load cookies")
		return empty
	}
	if cookies == nil {
		return empty
	}
	return cookies
}

// withTimeout runs fn under a deadline and stops waiting once the deadline
// passes, even if fn ignores its context. fn then finishes in the background
// and its result is dropped.
func withTimeout[T any](ctx context.Context, d time.Duration, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	type result struct {
		v   T
		err error
	}
	done := make(chan result, 1)
	go func() {
		v, err := fn(ctx)
		done <- result{v: v, err: err}
	}()

	select {
	case r := <-done:
		return r.v, r.err
	case <-ctx.Done():
		select {
		case r := <-done:
			return r.v, r.err
		default:
		}
		var zero T
		return zero, ctx.Err()
	}
}

func logSourceFailure(log *zerolog.Logger, err error, msg string) {
	if errors.Is(err, context.DeadlineExceeded) {
		log.Warn().Err(err).Msg("source timed out")
		return
	}
	log.Warn().Err(err).Msg(msg)
}
