package entity

import (
	"fmt"
	"maps"
	"strings"
)

// Tab is the browser tab the panel is attached to.
type Tab struct {
	ID    string
	URL   string
	Title string
}

// Theme is the dashboard color theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	}
	return "", fmt.Errorf("unknown theme %q (want light or dark)", s)
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// OrganizationMode selects how dashboard records are ordered.
type OrganizationMode string

const (
	OrganizeDefault      OrganizationMode = "default"
	OrganizeByType       OrganizationMode = "type"
	OrganizeByDomain     OrganizationMode = "domain"
	OrganizeAlphabetical OrganizationMode = "alphabetical"
	OrganizeCustom       OrganizationMode = "custom"
)

// OrganizationModes lists the selectable modes.
var OrganizationModes = []OrganizationMode{
	OrganizeDefault,
	OrganizeByType,
	OrganizeByDomain,
	OrganizeAlphabetical,
	OrganizeCustom,
}

// ParseOrganizationMode validates a mode name.
func ParseOrganizationMode(s string) (OrganizationMode, error) {
	m := OrganizationMode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range OrganizationModes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown organization mode %q", s)
}

// DashboardConfig is the persisted dashboard settings record.
// PinnedProperties is only read as a fallback for stores written before
// the pinned list had its own record.
type DashboardConfig struct {
	PinnedProperties []PinnedProperty `json:"pinnedProperties,omitempty"`
	Theme            Theme            `json:"theme"`
	OrganizationMode OrganizationMode `json:"organizationMode"`
}

// DefaultDashboardConfig returns the settings used on first run.
func DefaultDashboardConfig() DashboardConfig {
	return DashboardConfig{
		Theme:            ThemeDark,
		OrganizationMode: OrganizeDefault,
	}
}

// Snapshot is the cached live data for one tab, one map/list per source.
type Snapshot struct {
	LocalStorage   map[string]any
	SessionStorage map[string]any
	Cookies        []Cookie
	// RequestID is the refresh cycle that produced this snapshot.
	RequestID uint64
}

// NewSnapshot returns an empty snapshot with non-nil maps.
func NewSnapshot() Snapshot {
	return Snapshot{
		LocalStorage:   make(map[string]any),
		SessionStorage: make(map[string]any),
		Cookies:        make([]Cookie, 0),
	}
}

// Storage returns the map for a storage type, or nil for cookies.
func (s Snapshot) Storage(t PropertyType) map[string]any {
	switch t {
	case PropertyTypeLocalStorage:
		return s.LocalStorage
	case PropertyTypeSessionStorage:
		return s.SessionStorage
	}
	return nil
}

// Lookup finds the live value for (type, key).
// Cookies are matched by name; the first match wins.
func (s Snapshot) Lookup(t PropertyType, key string) LiveValue {
	lv := LiveValue{Type: t, Key: key}
	if t == PropertyTypeCookie {
		for _, c := range s.Cookies {
			if c.Name == key {
				lv.Found = true
				lv.Value = c.Value
				return lv
			}
		}
		return lv
	}
	if v, ok := s.Storage(t)[key]; ok {
		lv.Found = true
		lv.Value = v
	}
	return lv
}

// Clone returns a copy whose maps and slice can be mutated independently.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		LocalStorage:   maps.Clone(s.LocalStorage),
		SessionStorage: maps.Clone(s.SessionStorage),
		Cookies:        append([]Cookie(nil), s.Cookies...),
		RequestID:      s.RequestID,
	}
	if out.LocalStorage == nil {
		out.LocalStorage = make(map[string]any)
	}
	if out.SessionStorage == nil {
		out.SessionStorage = make(map[string]any)
	}
	if out.Cookies == nil {
		out.Cookies = make([]Cookie, 0)
	}
	return out
}
