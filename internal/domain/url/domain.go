// Package url derives the domain identity of pages and cookies.
package url

import (
	"net/url"
	"strings"
)

// UnknownDomain is returned by DomainOf when no domain can be derived.
const UnknownDomain = "unknown"

// DomainOf returns the lowercased hostname of rawURL.
// It never fails: any parse error or missing host yields UnknownDomain.
func DomainOf(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return UnknownDomain
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return UnknownDomain
	}
	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return UnknownDomain
	}
	return host
}

// NormalizeCookieDomain lowercases, trims and strips one leading dot.
func NormalizeCookieDomain(domain string) string {
	d := strings.ToLower(strings.TrimSpace(domain))
	return strings.TrimPrefix(d, ".")
}

// CookieDomainsMatch reports whether two cookie domains refer to the same
// cookie scope. Domains match when they are equal after normalization, or
// when one is written in the leading-dot parent form and the other is a
// subdomain of it (".example.com" matches "sub.example.com").
func CookieDomainsMatch(a, b string) bool {
	na := NormalizeCookieDomain(a)
	nb := NormalizeCookieDomain(b)
	if na == "" || nb == "" {
		return na == nb
	}
	if na == nb {
		return true
	}

	aParent := strings.HasPrefix(strings.TrimSpace(a), ".")
	bParent := strings.HasPrefix(strings.TrimSpace(b), ".")

	if aParent && strings.HasSuffix(nb, "."+na) {
		return true
	}
	if bParent && strings.HasSuffix(na, "."+nb) {
		return true
	}
	return false
}
