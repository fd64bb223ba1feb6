package browser

import (
	"testing"

	"github.com/go-rod/rod/lib/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pinboard/internal/domain/entity"
)

func TestToEntityCookie(t *testing.T) {
	persistent := toEntityCookie(&proto.NetworkCookie{
		Name:     "sid",
		Value:    "abc",
		Domain:   ".example.com",
		Path:     "/",
		Expires:  proto.TimeSinceEpoch(1_900_000_000),
		HTTPOnly: true,
		Secure:   true,
		SameSite: proto.NetworkCookieSameSiteNone,
	})
	assert.Equal(t, "sid", persistent.Name)
	assert.True(t, persistent.HTTPOnly)
	assert.Equal(t, entity.SameSiteNoRestriction, persistent.SameSite)
	require.NotNil(t, persistent.ExpirationDate)
	assert.InDelta(t, 1_900_000_000.0, *persistent.ExpirationDate, 0.001)

	session := toEntityCookie(&proto.NetworkCookie{Name: "tmp", Expires: -1, Session: true})
	assert.True(t, session.IsSession())
	assert.Equal(t, entity.SameSiteUnspecified, session.SameSite)
}

func TestToSetCookie(t *testing.T) {
	exp := 1_900_000_000.5
	req := toSetCookie("https://app.example.com/x", entity.Cookie{
		Name:           "__Host-id",
		Value:          "v",
		Path:           "/",
		Secure:         true,
		SameSite:       entity.SameSiteLax,
		ExpirationDate: &exp,
	})
	assert.Equal(t, "https://app.example.com/x", req.URL)
	assert.Empty(t, req.Domain)
	assert.Equal(t, proto.NetworkCookieSameSiteLax, req.SameSite)
	assert.InDelta(t, exp, float64(req.Expires), 0.001)

	scoped := toSetCookie("https://app.example.com/x", entity.Cookie{Name: "sid", Domain: ".example.com", SameSite: entity.SameSiteUnspecified})
	assert.Empty(t, scoped.URL)
	assert.Equal(t, ".example.com", scoped.Domain)
	assert.Empty(t, scoped.SameSite)
	assert.Zero(t, scoped.Expires)
}

func TestSameSiteRoundTrip(t *testing.T) {
	for _, s := range []entity.SameSite{entity.SameSiteStrict, entity.SameSiteLax, entity.SameSiteNoRestriction, entity.SameSiteUnspecified} {
		assert.Equal(t, s, fromProtoSameSite(toProtoSameSite(s)))
	}
}
