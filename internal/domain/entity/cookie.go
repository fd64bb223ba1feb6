package entity

import (
	"strings"
	"time"
)

// SameSite mirrors the cookie SameSite attribute values exposed by browsers.
type SameSite string

const (
	SameSiteNoRestriction SameSite = "no_restriction"
	SameSiteLax           SameSite = "lax"
	SameSiteStrict        SameSite = "strict"
	SameSiteUnspecified   SameSite = "unspecified"
)

// ParseSameSite accepts both the extension-style names and the RFC names
// ("None", "Lax", "Strict"). Empty input maps to unspecified.
func ParseSameSite(s string) (SameSite, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unspecified":
		return SameSiteUnspecified, true
	case "none", "no_restriction":
		return SameSiteNoRestriction, true
	case "lax":
		return SameSiteLax, true
	case "strict":
		return SameSiteStrict, true
	}
	return "", false
}

// Cookie is a browser cookie as seen by the active tab.
type Cookie struct {
	Name     string   `json:"name"`
	Value    string   `json:"value"`
	Domain   string   `json:"domain"`
	Path     string   `json:"path"`
	Secure   bool     `json:"secure"`
	HTTPOnly bool     `json:"httpOnly"`
	SameSite SameSite `json:"sameSite"`
	// ExpirationDate is seconds since the Unix epoch. Nil for session cookies.
	ExpirationDate *float64 `json:"expirationDate,omitempty"`
}

// IsSession returns true if the cookie has no expiration date.
func (c Cookie) IsSession() bool {
	return c.ExpirationDate == nil
}

// Expires returns the expiration time, or the zero time for session cookies.
func (c Cookie) Expires() time.Time {
	if c.ExpirationDate == nil {
		return time.Time{}
	}
	sec := int64(*c.ExpirationDate)
	nsec := int64((*c.ExpirationDate - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec)
}

// HostOnly returns true when the cookie domain has no leading dot.
func (c Cookie) HostOnly() bool {
	return !strings.HasPrefix(c.Domain, ".")
}
