package usecase_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/pinboard/internal/application/port"
	portmocks "github.com/bnema/pinboard/internal/application/port/mocks"
	"github.com/bnema/pinboard/internal/application/usecase"
	"github.com/bnema/pinboard/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type refreshMocks struct {
	storage *portmocks.MockStorageProvider
	cookies *portmocks.MockCookieProvider
	probe   *portmocks.MockContentProbe
}

func newRefreshUseCase(t *testing.T, timeout time.Duration) (*usecase.RefreshLiveDataUseCase, refreshMocks) {
	m := refreshMocks{
		storage: portmocks.NewMockStorageProvider(t),
		cookies: portmocks.NewMockCookieProvider(t),
		probe:   portmocks.NewMockContentProbe(t),
	}
	return usecase.NewRefreshLiveDataUseCase(m.storage, m.cookies, m.probe, timeout), m
}

var webTab = &entity.Tab{ID: "T1", URL: "https://app.example.com/home", Title: "Home"}

func TestRefreshLiveDataUseCase_RefreshAll_LoadsEverySource(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := testContext()
	uc, m := newRefreshUseCase(t, time.Second)

	m.probe.EXPECT().Ping(mock.Anything, webTab).Return(port.ProbeResult{Success: true, Ready: true}, nil)
	m.storage.EXPECT().LoadStorageByType(mock.Anything, webTab, entity.PropertyTypeLocalStorage).
		Return(map[string]any{"theme": "dark"}, nil)
	m.storage.EXPECT().LoadStorageByType(mock.Anything, webTab, entity.PropertyTypeSessionStorage).
		Return(map[string]any{"step": "2"}, nil)
	m.cookies.EXPECT().GetCookies(mock.Anything, webTab).
		Return([]entity.Cookie{{Name: "sid", Value: "abc", Domain: ".example.com", Path: "/"}}, nil)

	snap, applied := uc.RefreshAll(ctx, webTab)
	require.True(t, applied)
	assert.Equal(t, "dark", snap.LocalStorage["theme"])
	assert.Equal(t, "2", snap.SessionStorage["step"])
	require.Len(t, snap.Cookies, 1)
	assert.Equal(t, uint64(1), snap.RequestID)
}

func TestRefreshLiveDataUseCase_RefreshAll_FailingSourceIsEmpty(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := testContext()
	uc, m := newRefreshUseCase(t, time.Second)

	m.probe.EXPECT().Ping(mock.Anything, webTab).Return(port.ProbeResult{Success: true, Ready: true}, nil)
	m.storage.EXPECT().LoadStorageByType(mock.Anything, webTab, entity.PropertyTypeLocalStorage).
		Return(nil, errors.New("evaluation failed"))
	m.storage.EXPECT().LoadStorageByType(mock.Anything, webTab, entity.PropertyTypeSessionStorage).
		Return(map[string]any{"step": "2"}, nil)
	m.cookies.EXPECT().GetCookies(mock.Anything, webTab).Return(nil, port.ErrCollaboratorUnavailable)

	snap, applied := uc.RefreshAll(ctx, webTab)
	require.True(t, applied)
	assert.NotNil(t, snap.LocalStorage)
	assert.Empty(t, snap.LocalStorage)
	assert.Equal(t, "2", snap.SessionStorage["step"])
	assert.NotNil(t, snap.Cookies)
	assert.Empty(t, snap.Cookies)
}

func TestRefreshLiveDataUseCase_RefreshAll_TimeoutOnlyEmptiesSlowSource(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := testContext()
	uc, m := newRefreshUseCase(t, 50*time.Millisecond)

	m.probe.EXPECT().Ping(mock.Anything, webTab).Return(port.ProbeResult{Success: true, Ready: true}, nil)
	m.storage.EXPECT().LoadStorageByType(mock.Anything, webTab, entity.PropertyTypeLocalStorage).
		Return(map[string]any{"a": "1"}, nil)
	m.storage.EXPECT().LoadStorageByType(mock.Anything, webTab, entity.PropertyTypeSessionStorage).
		Return(map[string]any{"b": "2"}, nil)
	m.cookies.EXPECT().GetCookies(mock.Anything, webTab).
		RunAndReturn(func(ctx context.Context, _ *entity.Tab) ([]entity.Cookie, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	start := time.Now()
	snap, applied := uc.RefreshAll(ctx, webTab)
	assert.Less(t, time.Since(start), time.Second)
	require.True(t, applied)
	assert.Equal(t, "1", snap.LocalStorage["a"])
	assert.Equal(t, "2", snap.SessionStorage["b"])
	assert.Empty(t, snap.Cookies)
}

func TestRefreshLiveDataUseCase_RefreshAll_SkipsStorageOnInternalPages(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := testContext()
	uc, m := newRefreshUseCase(t, time.Second)

	tab := &entity.Tab{ID: "T2", URL: "chrome://settings"}
	m.cookies.EXPECT().GetCookies(mock.Anything, tab).Return([]entity.Cookie{}, nil)

	snap, applied := uc.RefreshAll(ctx, tab)
	require.True(t, applied)
	assert.Empty(t, snap.LocalStorage)
	assert.Empty(t, snap.SessionStorage)
	m.probe.AssertNotCalled(t, "Ping", mock.Anything, mock.Anything)
	m.storage.AssertNotCalled(t, "LoadStorageByType", mock.Anything, mock.Anything, mock.Anything)
}

func TestRefreshLiveDataUseCase_RefreshAll_SkipsStorageWhenProbeNotReady(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := testContext()
	uc, m := newRefreshUseCase(t, time.Second)

	m.probe.EXPECT().Ping(mock.Anything, webTab).Return(port.ProbeResult{Success: true, Ready: false}, nil)
	m.cookies.EXPECT().GetCookies(mock.Anything, webTab).Return([]entity.Cookie{{Name: "sid"}}, nil)

	snap, applied := uc.RefreshAll(ctx, webTab)
	require.True(t, applied)
	assert.Empty(t, snap.LocalStorage)
	assert.Empty(t, snap.SessionStorage)
	assert.Len(t, snap.Cookies, 1)
}

func TestRefreshLiveDataUseCase_RefreshAll_NilTab(t *testing.T) {
	uc, _ := newRefreshUseCase(t, time.Second)

	snap, applied := uc.RefreshAll(testContext(), nil)
	require.True(t, applied)
	assert.Empty(t, snap.LocalStorage)
	assert.Empty(t, snap.Cookies)
}

func TestRefreshLiveDataUseCase_RefreshAll_DiscardsStaleResponse(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := testContext()
	uc, m := newRefreshUseCase(t, 5*time.Second)

	tab := &entity.Tab{ID: "T1", URL: "about:blank"}
	entered := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32

	m.cookies.EXPECT().GetCookies(mock.Anything, tab).
		RunAndReturn(func(context.Context, *entity.Tab) ([]entity.Cookie, error) {
			if calls.Add(1) == 1 {
				close(entered)
				<-release
				return []entity.Cookie{{Name: "old"}}, nil
			}
			return []entity.Cookie{{Name: "new"}}, nil
		})

	type outcome struct {
		snap    entity.Snapshot
		applied bool
	}
	first := make(chan outcome, 1)
	go func() {
		snap, applied := uc.RefreshAll(ctx, tab)
		first <- outcome{snap: snap, applied: applied}
	}()
	<-entered

	snap, applied := uc.RefreshAll(ctx, tab)
	require.True(t, applied)
	require.Len(t, snap.Cookies, 1)
	assert.Equal(t, "new", snap.Cookies[0].Name)

	close(release)
	stale := <-first
	assert.False(t, stale.applied)
	require.Len(t, stale.snap.Cookies, 1)
	assert.Equal(t, "new", stale.snap.Cookies[0].Name)

	cached := uc.Snapshot()
	assert.Equal(t, "new", cached.Cookies[0].Name)
	assert.Equal(t, uint64(2), cached.RequestID)
}

func TestRefreshLiveDataUseCase_RefreshStorage_UpdatesOneSource(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := testContext()
	uc, m := newRefreshUseCase(t, time.Second)

	m.probe.EXPECT().Ping(mock.Anything, webTab).Return(port.ProbeResult{Success: true, Ready: true}, nil)
	m.storage.EXPECT().LoadStorageByType(mock.Anything, webTab, entity.PropertyTypeSessionStorage).
		Return(map[string]any{"cart": `{"items":2}`}, nil)
	m.cookies.EXPECT().GetCookies(mock.Anything, webTab).Return([]entity.Cookie{{Name: "sid"}}, nil)

	items := uc.RefreshStorage(ctx, webTab, entity.PropertyTypeSessionStorage)
	assert.Len(t, items, 1)

	cookies := uc.RefreshCookies(ctx, webTab)
	assert.Len(t, cookies, 1)

	snap := uc.Snapshot()
	assert.Empty(t, snap.LocalStorage)
	assert.Contains(t, snap.SessionStorage, "cart")
	assert.Len(t, snap.Cookies, 1)
}

func TestRefreshLiveDataUseCase_SnapshotIsACopy(t *testing.T) {
	uc, m := newRefreshUseCase(t, time.Second)
	tab := &entity.Tab{ID: "T1", URL: "about:blank"}
	m.cookies.EXPECT().GetCookies(mock.Anything, tab).Return([]entity.Cookie{{Name: "sid"}}, nil)

	uc.RefreshAll(testContext(), tab)

	snap := uc.Snapshot()
	snap.Cookies[0].Name = "mutated"
	snap.LocalStorage["x"] = "y"

	again := uc.Snapshot()
	assert.Equal(t, "sid", again.Cookies[0].Name)
	assert.NotContains(t, again.LocalStorage, "x")
}

func TestRefreshLiveDataUseCase_RefreshRequest_OrderedByReservation(t *testing.T) {
	ctx := testContext()
	uc, m := newRefreshUseCase(t, 5*time.Second)
	tab := &entity.Tab{ID: "T1", URL: "about:blank"}
	m.cookies.EXPECT().GetCookies(mock.Anything, tab).Return([]entity.Cookie{{Name: "sid"}}, nil)

	earlier := uc.ReserveRequest()
	later := uc.ReserveRequest()

	_, applied := uc.RefreshRequest(ctx, later, tab)
	require.True(t, applied)

	snap, applied := uc.RefreshRequest(ctx, earlier, tab)
	assert.False(t, applied)
	assert.Equal(t, later, snap.RequestID)
}
