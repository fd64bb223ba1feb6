package dashboard

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/bnema/pinboard/internal/domain/entity"
	"github.com/bnema/pinboard/internal/domain/url"
)

// MinQueryLength is the shortest query that triggers a scan.
const MinQueryLength = 2

// SearchOptions tunes a search. Zero values select the defaults.
type SearchOptions struct {
	MinQueryLength int
	// MaxResults caps the result set; 0 means unlimited.
	MaxResults int
}

// SearchResult is a live property matching a query.
type SearchResult struct {
	Type    entity.PropertyType
	Key     string
	Display string
	Value   any
	// Cookie is set for cookie results.
	Cookie *entity.Cookie
	// Pinned is true when a pin already covers this property on the
	// current domain (fuzzy cookie-domain match).
	Pinned bool
}

// Identity returns the identity a pin of this result would get on domain.
func (r SearchResult) Identity(domain string) entity.PropertyIdentity {
	return entity.PropertyIdentity{Type: r.Type, Key: r.Key, Domain: domain}
}

// Search scans local storage, session storage and cookies, in that order,
// for keys or values containing query (case-insensitive). Queries shorter
// than the minimum length return no results.
func Search(
	query string,
	snap entity.Snapshot,
	pins []entity.PinnedProperty,
	domain string,
	opts SearchOptions,
) []SearchResult {
	minLen := opts.MinQueryLength
	if minLen <= 0 {
		minLen = MinQueryLength
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(q) < minLen {
		return []SearchResult{}
	}

	results := make([]SearchResult, 0)
	full := func() bool {
		return opts.MaxResults > 0 && len(results) >= opts.MaxResults
	}

	for _, t := range []entity.PropertyType{entity.PropertyTypeLocalStorage, entity.PropertyTypeSessionStorage} {
		store := snap.Storage(t)
		keys := make([]string, 0, len(store))
		for k := range store {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		for _, k := range keys {
			if full() {
				return results
			}
			display := FormatValue(store[k])
			if !containsFold(k, q) && !containsFold(display, q) {
				continue
			}
			results = append(results, SearchResult{
				Type:    t,
				Key:     k,
				Display: display,
				Value:   store[k],
				Pinned:  IsPinnedFuzzy(pins, t, k, domain),
			})
		}
	}

	for i := range snap.Cookies {
		if full() {
			return results
		}
		c := snap.Cookies[i]
		if !containsFold(c.Name, q) && !containsFold(c.Value, q) {
			continue
		}
		pinned := IsPinnedFuzzy(pins, entity.PropertyTypeCookie, c.Name, domain) ||
			IsPinnedFuzzy(pins, entity.PropertyTypeCookie, c.Name, c.Domain)
		results = append(results, SearchResult{
			Type:    entity.PropertyTypeCookie,
			Key:     c.Name,
			Display: c.Value,
			Value:   c.Value,
			Cookie:  &c,
			Pinned:  pinned,
		})
	}

	return results
}

// IsPinnedFuzzy reports whether a pin for (type, key) applies to domain
// using cookie-domain semantics. Pins without a domain always apply.
// This is deliberately looser than the exact identity used to de-duplicate
// pins.
func IsPinnedFuzzy(pins []entity.PinnedProperty, t entity.PropertyType, key, domain string) bool {
	for _, p := range pins {
		if p.Type != t || p.Key != key {
			continue
		}
		if p.Domain == "" || url.CookieDomainsMatch(p.Domain, domain) {
			return true
		}
	}
	return false
}

// containsFold reports whether s contains the already-lowercased q.
func containsFold(s, q string) bool {
	return strings.Contains(strings.ToLower(s), q)
}
