package dashboard

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pinboard/internal/domain/entity"
)

func searchSnapshot() entity.Snapshot {
	snap := entity.NewSnapshot()
	snap.LocalStorage["authToken"] = "eyJhbGci"
	snap.LocalStorage["theme"] = "dark"
	snap.LocalStorage["user"] = map[string]any{"name": "Ada", "role": "admin"}
	snap.SessionStorage["tokenExpiry"] = "3600"
	snap.Cookies = []entity.Cookie{
		{Name: "sid", Value: "abc-token-xyz", Domain: ".example.com"},
		{Name: "lang", Value: "fr", Domain: "example.com"},
	}
	return snap
}

func TestSearch_ShortQueryReturnsNothing(t *testing.T) {
	snap := searchSnapshot()

	assert.Empty(t, Search("a", snap, nil, "example.com", SearchOptions{}))
	assert.Empty(t, Search(" t ", snap, nil, "example.com", SearchOptions{}))
	assert.Empty(t, Search("", snap, nil, "example.com", SearchOptions{}))
	assert.NotNil(t, Search("a", snap, nil, "example.com", SearchOptions{}))
}

func TestSearch_TwoCharactersScans(t *testing.T) {
	got := Search("ad", searchSnapshot(), nil, "example.com", SearchOptions{})
	// "ad" occurs in the user value (Ada, admin)
	require.Len(t, got, 1)
	assert.Equal(t, "user", got[0].Key)
}

func TestSearch_MatchesKeysAndValuesInScanOrder(t *testing.T) {
	got := Search("TOKEN", searchSnapshot(), nil, "example.com", SearchOptions{})

	require.Len(t, got, 3)
	assert.Equal(t, entity.PropertyTypeLocalStorage, got[0].Type)
	assert.Equal(t, "authToken", got[0].Key)
	assert.Equal(t, entity.PropertyTypeSessionStorage, got[1].Type)
	assert.Equal(t, "tokenExpiry", got[1].Key)
	assert.Equal(t, entity.PropertyTypeCookie, got[2].Type)
	assert.Equal(t, "sid", got[2].Key)
	require.NotNil(t, got[2].Cookie)
	assert.Equal(t, ".example.com", got[2].Cookie.Domain)
}

func TestSearch_AnnotatesFuzzyPinStatus(t *testing.T) {
	pins := []entity.PinnedProperty{
		// pinned under the parent cookie-domain form
		{Type: entity.PropertyTypeCookie, Key: "sid", Domain: ".example.com"},
		// legacy wildcard
		{Type: entity.PropertyTypeLocalStorage, Key: "authToken"},
		// different site
		{Type: entity.PropertyTypeSessionStorage, Key: "tokenExpiry", Domain: "other.com"},
	}

	got := Search("token", searchSnapshot(), pins, "app.example.com", SearchOptions{})
	require.Len(t, got, 3)
	assert.True(t, got[0].Pinned, "legacy pin applies everywhere")
	assert.False(t, got[1].Pinned, "pin on another site does not apply")
	assert.True(t, got[2].Pinned, "dot-form parent matches subdomain")
}

func TestSearch_MaxResults(t *testing.T) {
	snap := entity.NewSnapshot()
	for i := range 10 {
		snap.LocalStorage[fmt.Sprintf("key%02d", i)] = "v"
	}
	got := Search("key", snap, nil, "x.com", SearchOptions{MaxResults: 4})
	require.Len(t, got, 4)
	assert.Equal(t, "key00", got[0].Key)
	assert.Equal(t, "key03", got[3].Key)
}

func TestSearch_CustomMinimumLength(t *testing.T) {
	got := Search("th", searchSnapshot(), nil, "x.com", SearchOptions{MinQueryLength: 3})
	assert.Empty(t, got)
	got = Search("the", searchSnapshot(), nil, "x.com", SearchOptions{MinQueryLength: 3})
	assert.Len(t, got, 1)
}

func TestIsPinnedFuzzy(t *testing.T) {
	pins := []entity.PinnedProperty{{Type: entity.PropertyTypeCookie, Key: "sid", Domain: "example.com"}}

	assert.True(t, IsPinnedFuzzy(pins, entity.PropertyTypeCookie, "sid", ".example.com"))
	assert.False(t, IsPinnedFuzzy(pins, entity.PropertyTypeCookie, "sid", "sub.example.com"))
	assert.False(t, IsPinnedFuzzy(pins, entity.PropertyTypeLocalStorage, "sid", "example.com"))
}
