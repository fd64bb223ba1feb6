package entity

import (
	"errors"
	"fmt"
	"strings"
)

// PropertyType identifies which live data source a property comes from.
type PropertyType string

const (
	PropertyTypeLocalStorage   PropertyType = "local-storage"
	PropertyTypeSessionStorage PropertyType = "session-storage"
	PropertyTypeCookie         PropertyType = "cookie"
)

// PropertyTypes lists all property types in scan order.
var PropertyTypes = []PropertyType{
	PropertyTypeLocalStorage,
	PropertyTypeSessionStorage,
	PropertyTypeCookie,
}

// ParsePropertyType accepts the canonical names plus a few short aliases
// ("local", "session", "cookies").
func ParsePropertyType(s string) (PropertyType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "local-storage", "localstorage", "local":
		return PropertyTypeLocalStorage, nil
	case "session-storage", "sessionstorage", "session":
		return PropertyTypeSessionStorage, nil
	case "cookie", "cookies":
		return PropertyTypeCookie, nil
	}
	return "", fmt.Errorf("unknown property type %q", s)
}

// Valid returns true if t is one of the known property types.
func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypeLocalStorage, PropertyTypeSessionStorage, PropertyTypeCookie:
		return true
	}
	return false
}

// IsStorage returns true for the two web storage types.
func (t PropertyType) IsStorage() bool {
	return t == PropertyTypeLocalStorage || t == PropertyTypeSessionStorage
}

// Label returns a short human label.
func (t PropertyType) Label() string {
	switch t {
	case PropertyTypeLocalStorage:
		return "Local"
	case PropertyTypeSessionStorage:
		return "Session"
	case PropertyTypeCookie:
		return "Cookie"
	}
	return string(t)
}

// Rank is the fixed position of the type when grouping by type.
func (t PropertyType) Rank() int {
	for i, pt := range PropertyTypes {
		if pt == t {
			return i
		}
	}
	return len(PropertyTypes)
}

// PropertyIdentity is the domain-scoped identity of a pinned property.
// Two pins with the same identity are the same logical property.
type PropertyIdentity struct {
	Type   PropertyType
	Key    string
	Domain string
}

func (id PropertyIdentity) String() string {
	if id.Domain == "" {
		return fmt.Sprintf("%s:%s@*", id.Type, id.Key)
	}
	return fmt.Sprintf("%s:%s@%s", id.Type, id.Key, id.Domain)
}

// PinnedProperty is a persisted reference associating a (type, key)
// property with the domain it was pinned on.
type PinnedProperty struct {
	Type   PropertyType `json:"type"`
	Key    string       `json:"key"`
	Alias  string       `json:"alias"`
	Domain string       `json:"domain,omitempty"`
	URL    string       `json:"url,omitempty"`
	TabID  string       `json:"tabId,omitempty"`
	// Seq is the pin sequence number. Pin order is derived from it so the
	// stored list position can carry the manual (custom) order.
	Seq int64 `json:"seq,omitempty"`
}

// NewPinnedProperty creates a pin with the alias defaulting to the key.
func NewPinnedProperty(t PropertyType, key, domain string) *PinnedProperty {
	return &PinnedProperty{
		Type:   t,
		Key:    key,
		Alias:  key,
		Domain: domain,
	}
}

// Identity returns the (type, key, domain) triple.
func (p PinnedProperty) Identity() PropertyIdentity {
	return PropertyIdentity{Type: p.Type, Key: p.Key, Domain: p.Domain}
}

// Matches reports exact identity equality.
func (p PinnedProperty) Matches(id PropertyIdentity) bool {
	return p.Type == id.Type && p.Key == id.Key && p.Domain == id.Domain
}

// DisplayName returns the alias, or the key when no alias is set.
func (p PinnedProperty) DisplayName() string {
	if strings.TrimSpace(p.Alias) != "" {
		return p.Alias
	}
	return p.Key
}

// IsLegacy returns true for entries pinned before domains were recorded.
// Such entries act as a domain wildcard.
func (p PinnedProperty) IsLegacy() bool {
	return p.Domain == ""
}

// LiveValue is a freshly fetched value for a (type, key). Not persisted.
type LiveValue struct {
	Type  PropertyType
	Key   string
	Found bool
	// Value is a string for most entries, or a structured value
	// (map/slice) when the source returned decoded JSON.
	Value any
}

// OperationResult is the standard result shape for collaborator mutations.
type OperationResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// OK returns a successful result.
func OK() OperationResult {
	return OperationResult{Success: true}
}

// Failed wraps an error into a failure result.
func Failed(err error) OperationResult {
	if err == nil {
		return OperationResult{Success: false, Error: "unknown error"}
	}
	return OperationResult{Success: false, Error: err.Error()}
}

// Err returns nil for a successful result and the failure otherwise.
func (r OperationResult) Err() error {
	if r.Success {
		return nil
	}
	if r.Error == "" {
		return errors.New("operation failed")
	}
	return errors.New(r.Error)
}
