package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/bnema/pinboard/internal/application/port"
	"github.com/bnema/pinboard/internal/domain/entity"
	"github.com/bnema/pinboard/internal/domain/url"
	"github.com/bnema/pinboard/internal/logging"
)

const (
	securePrefix = "__Secure-"
	hostPrefix   = "__Host-"
)

// CookieInput contains the editable fields of a cookie.
type CookieInput struct {
	Name     string
	Value    string
	Domain   string
	Path     string
	Secure   bool
	HTTPOnly bool
	SameSite entity.SameSite
	// Expires is nil for a session cookie.
	Expires *time.Time
}

// ToCookie converts the input into the entity sent to the browser.
func (in CookieInput) ToCookie() entity.Cookie {
	c := entity.Cookie{
		Name:     in.Name,
		Value:    in.Value,
		Domain:   in.Domain,
		Path:     in.Path,
		Secure:   in.Secure,
		HTTPOnly: in.HTTPOnly,
		SameSite: in.SameSite,
	}
	if c.Path == "" {
		c.Path = "/"
	}
	if ss, ok := entity.ParseSameSite(string(in.SameSite)); ok {
		c.SameSite = ss
	}
	if in.Expires != nil {
		sec := float64(in.Expires.UnixNano()) / float64(time.Second)
		c.ExpirationDate = &sec
	}
	return c
}

// ValidateCookie checks a cookie form before anything is sent to the browser.
func ValidateCookie(in CookieInput, now time.Time) error {
	if in.Name == "" {
		return invalid("name", "must not be empty")
	}
	if strings.ContainsFunc(in.Name, func(r rune) bool {
		return r == ';' || r == '=' || unicode.IsSpace(r) || unicode.IsControl(r)
	}) {
		return invalid("name", "must not contain ';', '=', whitespace or control characters")
	}
	if strings.ContainsFunc(in.Value, func(r rune) bool {
		return r == ';' || unicode.IsControl(r)
	}) {
		return invalid("value", "must not contain ';' or control characters")
	}
	sameSite, ok := entity.ParseSameSite(string(in.SameSite))
	if !ok {
		return invalid("sameSite", "unknown value %q", in.SameSite)
	}
	if sameSite == entity.SameSiteNoRestriction && !in.Secure {
		return invalid("secure", "SameSite=None requires Secure")
	}
	if strings.HasPrefix(in.Name, securePrefix) && !in.Secure {
		return invalid("secure", "%s cookies must be Secure", securePrefix)
	}
	if strings.HasPrefix(in.Name, hostPrefix) {
		if !in.Secure {
			return invalid("secure", "%s cookies must be Secure", hostPrefix)
		}
		if in.Path != "" && in.Path != "/" {
			return invalid("path", "%s cookies must use path /", hostPrefix)
		}
		if in.Domain != "" {
			return invalid("domain", "%s cookies must not set a domain", hostPrefix)
		}
	}
	if in.Path != "" && !strings.HasPrefix(in.Path, "/") {
		return invalid("path", "must start with /")
	}
	if in.Expires != nil && !in.Expires.After(now) {
		return invalid("expires", "must be in the future")
	}
	return nil
}

// EditLiveDataUseCase mutates cookies and web storage of the active tab.
// A successful mutation refreshes the affected source in the cache.
type EditLiveDataUseCase struct {
	storage port.StorageProvider
	cookies port.CookieProvider
	refresh *RefreshLiveDataUseCase
	now     func() time.Time
}

// NewEditLiveDataUseCase creates a new edit use case. refresh may be nil.
func NewEditLiveDataUseCase(
	storage port.StorageProvider,
	cookies port.CookieProvider,
	refresh *RefreshLiveDataUseCase,
) *EditLiveDataUseCase {
	return &EditLiveDataUseCase{
		storage: storage,
		cookies: cookies,
		refresh: refresh,
		now:     time.Now,
	}
}

// SetCookie validates and writes a cookie.
func (uc *EditLiveDataUseCase) SetCookie(ctx context.Context, tab *entity.Tab, in CookieInput) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("name", in.Name).Str("domain", in.Domain).Msg("setting cookie")

	if tab == nil {
		return ErrNoActiveTab
	}
	if err := ValidateCookie(in, uc.now()); err != nil {
		return err
	}

	res, err := uc.cookies.SetCookie(ctx, tab, in.ToCookie())
	if err := resultError("set cookie", res, err); err != nil {
		return err
	}

	log.Info().Str("name", in.Name).Msg("cookie set")
	uc.refreshCookies(ctx, tab)
	return nil
}

// DeleteCookie removes a cookie. ErrCookieNotFound is returned when the
// cookie no longer exists.
func (uc *EditLiveDataUseCase) DeleteCookie(ctx context.Context, tab *entity.Tab, name, domain, path string) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("name", name).Str("domain", domain).Str("path", path).Msg("deleting cookie")

	if tab == nil {
		return ErrNoActiveTab
	}

	current, err := uc.cookies.GetCookies(ctx, tab)
	if err != nil {
		return fmt.Errorf("failed to get cookies: %w", err)
	}
	if !cookieExists(current, name, domain, path) {
		return fmt.Errorf("%w: %s", ErrCookieNotFound, name)
	}

	res, err := uc.cookies.DeleteCookie(ctx, tab, name, domain, path)
	if err := resultError("delete cookie", res, err); err != nil {
		return err
	}

	log.Info().Str("name", name).Msg("cookie deleted")
	uc.refreshCookies(ctx, tab)
	return nil
}

// SetStorageItem writes a local or session storage item.
func (uc *EditLiveDataUseCase) SetStorageItem(ctx context.Context, tab *entity.Tab, t entity.PropertyType, key, value string) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("type", string(t)).Str("key", key).Msg("setting storage item")

	if err := uc.checkStorageTarget(tab, t, key); err != nil {
		return err
	}

	res, err := uc.storage.SetItem(ctx, tab, t, key, value)
	if err := resultError("set storage item", res, err); err != nil {
		return err
	}

	log.Info().Str("type", string(t)).Str("key", key).Msg("storage item set")
	uc.refreshStorage(ctx, tab, t)
	return nil
}

// RemoveStorageItem deletes a local or session storage item.
func (uc *EditLiveDataUseCase) RemoveStorageItem(ctx context.Context, tab *entity.Tab, t entity.PropertyType, key string) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("type", string(t)).Str("key", key).Msg("removing storage item")

	if err := uc.checkStorageTarget(tab, t, key); err != nil {
		return err
	}

	res, err := uc.storage.RemoveItem(ctx, tab, t, key)
	if err := resultError("remove storage item", res, err); err != nil {
		return err
	}

	log.Info().Str("type", string(t)).Str("key", key).Msg("storage item removed")
	uc.refreshStorage(ctx, tab, t)
	return nil
}

func (uc *EditLiveDataUseCase) checkStorageTarget(tab *entity.Tab, t entity.PropertyType, key string) error {
	if tab == nil {
		return ErrNoActiveTab
	}
	if !t.IsStorage() {
		return invalid("type", "%q is not a storage type", t)
	}
	if key == "" {
		return invalid("key", "must not be empty")
	}
	if !url.IsScriptablePage(tab.URL) {
		return fmt.Errorf("%w: %s", ErrUnsupportedPage, tab.URL)
	}
	return nil
}

func (uc *EditLiveDataUseCase) refreshCookies(ctx context.Context, tab *entity.Tab) {
	if uc.refresh != nil {
		uc.refresh.RefreshCookies(ctx, tab)
	}
}

func (uc *EditLiveDataUseCase) refreshStorage(ctx context.Context, tab *entity.Tab, t entity.PropertyType) {
	if uc.refresh != nil {
		uc.refresh.RefreshStorage(ctx, tab, t)
	}
}

func cookieExists(cookies []entity.Cookie, name, domain, path string) bool {
	for _, c := range cookies {
		if c.Name != name {
			continue
		}
		if domain != "" && url.NormalizeCookieDomain(c.Domain) != url.NormalizeCookieDomain(domain) {
			continue
		}
		if path != "" && c.Path != path {
			continue
		}
		return true
	}
	return false
}

// resultError folds a collaborator reply into a single error.
func resultError(op string, res entity.OperationResult, err error) error {
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if !res.Success {
		msg := res.Error
		if msg == "" {
			msg = "rejected by browser"
		}
		return fmt.Errorf("failed to %s: %s", op, msg)
	}
	return nil
}
