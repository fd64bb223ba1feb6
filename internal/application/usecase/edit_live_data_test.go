package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/bnema/pinboard/internal/application/port"
	portmocks "github.com/bnema/pinboard/internal/application/port/mocks"
	"github.com/bnema/pinboard/internal/application/usecase"
	"github.com/bnema/pinboard/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestValidateCookie(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name  string
		in    usecase.CookieInput
		field string
	}{
		{name: "valid session cookie", in: usecase.CookieInput{Name: "sid", Value: "abc"}},
		{name: "valid persistent cookie", in: usecase.CookieInput{Name: "sid", Value: "abc", Expires: &future}},
		{name: "RFC SameSite name accepted", in: usecase.CookieInput{Name: "sid", SameSite: "None", Secure: true}},
		{name: "empty name", in: usecase.CookieInput{Value: "x"}, field: "name"},
		{name: "name with equals", in: usecase.CookieInput{Name: "a=b"}, field: "name"},
		{name: "name with space", in: usecase.CookieInput{Name: "a b"}, field: "name"},
		{name: "value with semicolon", in: usecase.CookieInput{Name: "a", Value: "x;y"}, field: "value"},
		{name: "value with newline", in: usecase.CookieInput{Name: "a", Value: "x\ny"}, field: "value"},
		{name: "unknown SameSite", in: usecase.CookieInput{Name: "a", SameSite: "sometimes"}, field: "sameSite"},
		{name: "SameSite none without secure", in: usecase.CookieInput{Name: "a", SameSite: entity.SameSiteNoRestriction}, field: "secure"},
		{name: "secure prefix without secure", in: usecase.CookieInput{Name: "__Secure-id"}, field: "secure"},
		{name: "host prefix without secure", in: usecase.CookieInput{Name: "__Host-id"}, field: "secure"},
		{name: "host prefix with path", in: usecase.CookieInput{Name: "__Host-id", Secure: true, Path: "/app"}, field: "path"},
		{name: "host prefix with domain", in: usecase.CookieInput{Name: "__Host-id", Secure: true, Domain: "example.com"}, field: "domain"},
		{name: "host prefix valid", in: usecase.CookieInput{Name: "__Host-id", Secure: true, Path: "/"}},
		{name: "relative path", in: usecase.CookieInput{Name: "a", Path: "app"}, field: "path"},
		{name: "expired", in: usecase.CookieInput{Name: "a", Expires: &past}, field: "expires"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := usecase.ValidateCookie(tt.in, now)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var verr *usecase.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestCookieInput_ToCookie(t *testing.T) {
	exp := time.Unix(1_900_000_000, 0)
	c := usecase.CookieInput{Name: "sid", Value: "v", SameSite: "Lax", Expires: &exp}.ToCookie()

	assert.Equal(t, "/", c.Path)
	assert.Equal(t, entity.SameSiteLax, c.SameSite)
	require.NotNil(t, c.ExpirationDate)
	assert.InDelta(t, 1_900_000_000.0, *c.ExpirationDate, 0.001)

	session := usecase.CookieInput{Name: "sid"}.ToCookie()
	assert.True(t, session.IsSession())
	assert.Equal(t, entity.SameSiteUnspecified, session.SameSite)
}

func TestEditLiveDataUseCase_SetCookie_InvalidInputMakesNoCall(t *testing.T) {
	storage := portmocks.NewMockStorageProvider(t)
	cookies := portmocks.NewMockCookieProvider(t)
	uc := usecase.NewEditLiveDataUseCase(storage, cookies, nil)

	err := uc.SetCookie(testContext(), webTab, usecase.CookieInput{Name: "bad name"})
	var verr *usecase.ValidationError
	require.ErrorAs(t, err, &verr)
	cookies.AssertNotCalled(t, "SetCookie", mock.Anything, mock.Anything, mock.Anything)
}

func TestEditLiveDataUseCase_SetCookie_RefreshesCache(t *testing.T) {
	ctx := testContext()
	storage := portmocks.NewMockStorageProvider(t)
	cookies := portmocks.NewMockCookieProvider(t)
	probe := portmocks.NewMockContentProbe(t)
	refresh := usecase.NewRefreshLiveDataUseCase(storage, cookies, probe, time.Second)
	uc := usecase.NewEditLiveDataUseCase(storage, cookies, refresh)

	cookies.EXPECT().SetCookie(mock.Anything, webTab, mock.MatchedBy(func(c entity.Cookie) bool {
		return c.Name == "sid" && c.Value == "new" && c.Path == "/"
	})).Return(entity.OK(), nil)
	cookies.EXPECT().GetCookies(mock.Anything, webTab).Return([]entity.Cookie{{Name: "sid", Value: "new"}}, nil)

	require.NoError(t, uc.SetCookie(ctx, webTab, usecase.CookieInput{Name: "sid", Value: "new"}))
	snap := refresh.Snapshot()
	require.Len(t, snap.Cookies, 1)
	assert.Equal(t, "new", snap.Cookies[0].Value)
}

func TestEditLiveDataUseCase_SetCookie_FailureShape(t *testing.T) {
	storage := portmocks.NewMockStorageProvider(t)
	cookies := portmocks.NewMockCookieProvider(t)
	uc := usecase.NewEditLiveDataUseCase(storage, cookies, nil)

	cookies.EXPECT().SetCookie(mock.Anything, webTab, mock.Anything).
		Return(entity.Failed(errors.New("invalid cookie fields")), nil)

	err := uc.SetCookie(testContext(), webTab, usecase.CookieInput{Name: "sid"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid cookie fields")
}

func TestEditLiveDataUseCase_SetCookie_Unavailable(t *testing.T) {
	storage := portmocks.NewMockStorageProvider(t)
	cookies := portmocks.NewMockCookieProvider(t)
	uc := usecase.NewEditLiveDataUseCase(storage, cookies, nil)

	cookies.EXPECT().SetCookie(mock.Anything, webTab, mock.Anything).
		Return(entity.Failed(port.ErrCollaboratorUnavailable), port.ErrCollaboratorUnavailable)

	err := uc.SetCookie(testContext(), webTab, usecase.CookieInput{Name: "sid"})
	require.ErrorIs(t, err, port.ErrCollaboratorUnavailable)
}

func TestEditLiveDataUseCase_DeleteCookie(t *testing.T) {
	ctx := testContext()
	storage := portmocks.NewMockStorageProvider(t)
	cookies := portmocks.NewMockCookieProvider(t)
	uc := usecase.NewEditLiveDataUseCase(storage, cookies, nil)

	cookies.EXPECT().GetCookies(mock.Anything, webTab).
		Return([]entity.Cookie{{Name: "sid", Domain: ".example.com", Path: "/"}}, nil)
	cookies.EXPECT().DeleteCookie(mock.Anything, webTab, "sid", "example.com", "/").Return(entity.OK(), nil)

	require.NoError(t, uc.DeleteCookie(ctx, webTab, "sid", "example.com", "/"))
}

func TestEditLiveDataUseCase_DeleteCookie_AlreadyGone(t *testing.T) {
	storage := portmocks.NewMockStorageProvider(t)
	cookies := portmocks.NewMockCookieProvider(t)
	uc := usecase.NewEditLiveDataUseCase(storage, cookies, nil)

	cookies.EXPECT().GetCookies(mock.Anything, webTab).Return([]entity.Cookie{{Name: "other", Path: "/"}}, nil)

	err := uc.DeleteCookie(testContext(), webTab, "sid", "", "/")
	require.ErrorIs(t, err, usecase.ErrCookieNotFound)
	cookies.AssertNotCalled(t, "DeleteCookie", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEditLiveDataUseCase_StorageItems(t *testing.T) {
	ctx := testContext()
	storage := portmocks.NewMockStorageProvider(t)
	cookies := portmocks.NewMockCookieProvider(t)
	uc := usecase.NewEditLiveDataUseCase(storage, cookies, nil)

	storage.EXPECT().SetItem(mock.Anything, webTab, entity.PropertyTypeLocalStorage, "theme", "light").Return(entity.OK(), nil)
	storage.EXPECT().RemoveItem(mock.Anything, webTab, entity.PropertyTypeSessionStorage, "draft").Return(entity.OK(), nil)

	require.NoError(t, uc.SetStorageItem(ctx, webTab, entity.PropertyTypeLocalStorage, "theme", "light"))
	require.NoError(t, uc.RemoveStorageItem(ctx, webTab, entity.PropertyTypeSessionStorage, "draft"))
}

func TestEditLiveDataUseCase_StorageItems_Rejected(t *testing.T) {
	ctx := testContext()
	storage := portmocks.NewMockStorageProvider(t)
	cookies := portmocks.NewMockCookieProvider(t)
	uc := usecase.NewEditLiveDataUseCase(storage, cookies, nil)

	internal := &entity.Tab{ID: "T9", URL: "chrome://extensions"}
	err := uc.SetStorageItem(ctx, internal, entity.PropertyTypeLocalStorage, "k", "v")
	require.ErrorIs(t, err, usecase.ErrUnsupportedPage)

	err = uc.SetStorageItem(ctx, webTab, entity.PropertyTypeCookie, "k", "v")
	var verr *usecase.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "type", verr.Field)

	err = uc.RemoveStorageItem(ctx, nil, entity.PropertyTypeLocalStorage, "k")
	require.ErrorIs(t, err, usecase.ErrNoActiveTab)
}
