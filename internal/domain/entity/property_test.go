package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePropertyType(t *testing.T) {
	tests := []struct {
		in      string
		want    PropertyType
		wantErr bool
	}{
		{"local-storage", PropertyTypeLocalStorage, false},
		{"Local", PropertyTypeLocalStorage, false},
		{"session", PropertyTypeSessionStorage, false},
		{" cookies ", PropertyTypeCookie, false},
		{"indexeddb", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePropertyType(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPinnedProperty_DisplayNameFallsBackToKey(t *testing.T) {
	p := NewPinnedProperty(PropertyTypeCookie, "sid", "example.com")
	assert.Equal(t, "sid", p.DisplayName())

	p.Alias = "Session ID"
	assert.Equal(t, "Session ID", p.DisplayName())

	p.Alias = "   "
	assert.Equal(t, "sid", p.DisplayName())
}

func TestPinnedProperty_Matches(t *testing.T) {
	p := PinnedProperty{Type: PropertyTypeLocalStorage, Key: "token", Domain: "a.com"}

	assert.True(t, p.Matches(PropertyIdentity{Type: PropertyTypeLocalStorage, Key: "token", Domain: "a.com"}))
	assert.False(t, p.Matches(PropertyIdentity{Type: PropertyTypeSessionStorage, Key: "token", Domain: "a.com"}))
	assert.False(t, p.Matches(PropertyIdentity{Type: PropertyTypeLocalStorage, Key: "token", Domain: ".a.com"}))
	assert.False(t, p.IsLegacy())
	assert.True(t, PinnedProperty{Key: "x"}.IsLegacy())
}

func TestSnapshot_Lookup(t *testing.T) {
	s := NewSnapshot()
	s.LocalStorage["theme"] = "dark"
	s.SessionStorage["cart"] = map[string]any{"items": 2.0}
	s.Cookies = append(s.Cookies, Cookie{Name: "sid", Value: "abc"}, Cookie{Name: "sid", Value: "shadowed"})

	lv := s.Lookup(PropertyTypeLocalStorage, "theme")
	assert.True(t, lv.Found)
	assert.Equal(t, "dark", lv.Value)

	lv = s.Lookup(PropertyTypeSessionStorage, "cart")
	assert.True(t, lv.Found)
	assert.Equal(t, map[string]any{"items": 2.0}, lv.Value)

	lv = s.Lookup(PropertyTypeCookie, "sid")
	assert.True(t, lv.Found)
	assert.Equal(t, "abc", lv.Value)

	assert.False(t, s.Lookup(PropertyTypeLocalStorage, "missing").Found)
	assert.False(t, s.Lookup(PropertyTypeCookie, "missing").Found)
}

func TestSnapshot_CloneIsIndependent(t *testing.T) {
	s := NewSnapshot()
	s.LocalStorage["a"] = "1"
	c := s.Clone()
	c.LocalStorage["a"] = "2"
	c.Cookies = append(c.Cookies, Cookie{Name: "x"})

	assert.Equal(t, "1", s.LocalStorage["a"])
	assert.Empty(t, s.Cookies)

	empty := Snapshot{}.Clone()
	assert.NotNil(t, empty.LocalStorage)
	assert.NotNil(t, empty.SessionStorage)
	assert.NotNil(t, empty.Cookies)
}

func TestParseOrganizationMode(t *testing.T) {
	m, err := ParseOrganizationMode("Custom")
	require.NoError(t, err)
	assert.Equal(t, OrganizeCustom, m)

	_, err = ParseOrganizationMode("random")
	assert.Error(t, err)
}

func TestParseSameSite(t *testing.T) {
	s, ok := ParseSameSite("None")
	assert.True(t, ok)
	assert.Equal(t, SameSiteNoRestriction, s)

	s, ok = ParseSameSite("")
	assert.True(t, ok)
	assert.Equal(t, SameSiteUnspecified, s)

	_, ok = ParseSameSite("sometimes")
	assert.False(t, ok)
}

func TestCookie_Expires(t *testing.T) {
	exp := 1700000000.5
	c := Cookie{ExpirationDate: &exp}
	assert.False(t, c.IsSession())
	assert.Equal(t, int64(1700000000), c.Expires().Unix())
	assert.True(t, Cookie{}.IsSession())
	assert.True(t, Cookie{}.Expires().IsZero())
}

func TestOperationResult_Err(t *testing.T) {
	assert.NoError(t, OK().Err())
	assert.EqualError(t, Failed(errors.New("boom")).Err(), "boom")
	assert.EqualError(t, OperationResult{}.Err(), "operation failed")
}
