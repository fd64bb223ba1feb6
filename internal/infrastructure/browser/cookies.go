package browser

import (
	"context"
	"fmt"

	"github.com/go-rod/rod/lib/proto"

	"github.com/bnema/pinboard/internal/domain/entity"
	"github.com/bnema/pinboard/internal/logging"
)

// GetCookies returns the cookies the browser would send to the tab's URL.
func (h *Host) GetCookies(ctx context.Context, tab *entity.Tab) ([]entity.Cookie, error) {
	p, err := h.page(ctx, tab)
	if err != nil {
		return nil, err
	}

	res, err := proto.NetworkGetCookies{Urls: []string{tab.URL}}.Call(p)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to get cookies: %w", err))
	}

	cookies := make([]entity.Cookie, 0, len(res.Cookies))
	for _, c := range res.Cookies {
		cookies = append(cookies, toEntityCookie(c))
	}
	logging.FromContext(ctx).Debug().Int("count", len(cookies)).Msg("cookies loaded")
	return cookies, nil
}

// SetCookie creates or replaces a cookie scoped to the tab's URL.
func (h *Host) SetCookie(ctx context.Context, tab *entity.Tab, cookie entity.Cookie) (entity.OperationResult, error) {
	p, err := h.page(ctx, tab)
	if err != nil {
		return entity.Failed(err), err
	}

	if _, err := toSetCookie(tab.URL, cookie).Call(p); err != nil {
		err = classify(fmt.Errorf("failed to set cookie %s: %w", cookie.Name, err))
		return entity.Failed(err), err
	}
	return entity.OK(), nil
}

// DeleteCookie removes cookies matching name, domain and path.
func (h *Host) DeleteCookie(ctx context.Context, tab *entity.Tab, name, domain, path string) (entity.OperationResult, error) {
	p, err := h.page(ctx, tab)
	if err != nil {
		return entity.Failed(err), err
	}

	req := proto.NetworkDeleteCookies{Name: name, Domain: domain, Path: path}
	if domain == "" {
		req.URL = tab.URL
	}
	if err := req.Call(p); err != nil {
		err = classify(fmt.Errorf("failed to delete cookie %s: %w", name, err))
		return entity.Failed(err), err
	}
	return entity.OK(), nil
}

func toEntityCookie(c *proto.NetworkCookie) entity.Cookie {
	out := entity.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Domain:   c.Domain,
		Path:     c.Path,
		Secure:   c.Secure,
		HTTPOnly: c.HTTPOnly,
		SameSite: fromProtoSameSite(c.SameSite),
	}
	if !c.Session && c.Expires > 0 {
		exp := float64(c.Expires)
		out.ExpirationDate = &exp
	}
	return out
}

func toSetCookie(pageURL string, c entity.Cookie) proto.NetworkSetCookie {
	req := proto.NetworkSetCookie{
		Name:     c.Name,
		Value:    c.Value,
		Domain:   c.Domain,
		Path:     c.Path,
		Secure:   c.Secure,
		HTTPOnly: c.HTTPOnly,
		SameSite: toProtoSameSite(c.SameSite),
	}
	// Without a domain the cookie is host-only for the page URL.
	if c.Domain == "" {
		req.URL = pageURL
	}
	if c.ExpirationDate != nil {
		req.Expires = proto.TimeSinceEpoch(*c.ExpirationDate)
	}
	return req
}

func fromProtoSameSite(s proto.NetworkCookieSameSite) entity.SameSite {
	switch s {
	case proto.NetworkCookieSameSiteStrict:
		return entity.SameSiteStrict
	case proto.NetworkCookieSameSiteLax:
		return entity.SameSiteLax
	case proto.NetworkCookieSameSiteNone:
		return entity.SameSiteNoRestriction
	}
	return entity.SameSiteUnspecified
}

func toProtoSameSite(s entity.SameSite) proto.NetworkCookieSameSite {
	switch s {
	case entity.SameSiteStrict:
		return proto.NetworkCookieSameSiteStrict
	case entity.SameSiteLax:
		return proto.NetworkCookieSameSiteLax
	case entity.SameSiteNoRestriction:
		return proto.NetworkCookieSameSiteNone
	}
	return ""
}
