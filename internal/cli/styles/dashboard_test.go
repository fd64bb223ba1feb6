package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pinboard/internal/app/panel"
	"github.com/bnema/pinboard/internal/cli/styles"
	"github.com/bnema/pinboard/internal/domain/dashboard"
	"github.com/bnema/pinboard/internal/domain/entity"
)

func newRenderer() *styles.DashboardRenderer {
	return styles.NewDashboardRenderer(styles.NewTheme(entity.ThemeDark))
}

func TestDashboardRenderer_RenderDashboard(t *testing.T) {
	r := newRenderer()

	out := r.RenderDashboard(panel.DashboardView{
		Tab:    &entity.Tab{ID: "t1", URL: "https://example.com/", Title: "Example"},
		Domain: "example.com",
		Mode:   entity.OrganizeDefault,
		Records: []dashboard.ReconciledRecord{
			{
				Index:    0,
				Property: entity.PinnedProperty{Type: entity.PropertyTypeLocalStorage, Key: "token", Alias: "Auth", Domain: "example.com"},
				Found:    true,
				Display:  "abc123",
			},
			{
				Index:    1,
				Property: entity.PinnedProperty{Type: entity.PropertyTypeCookie, Key: "sid"},
			},
		},
	})

	require.Contains(t, out, "example.com")
	require.Contains(t, out, "Example")
	require.Contains(t, out, "Auth")
	require.Contains(t, out, "token")
	require.Contains(t, out, "abc123")
	require.Contains(t, out, "not found")
	require.Contains(t, out, "any site")
}

func TestDashboardRenderer_RenderDashboard_Empty(t *testing.T) {
	out := newRenderer().RenderDashboard(panel.DashboardView{Domain: "example.com", Mode: entity.OrganizeCustom})

	assert.Contains(t, out, "Nothing pinned")
	assert.Contains(t, out, "custom")
}

func TestDashboardRenderer_RenderDashboard_NoSite(t *testing.T) {
	out := newRenderer().RenderDashboard(panel.DashboardView{})

	assert.Contains(t, out, "no site")
}

func TestDashboardRenderer_RenderSearch(t *testing.T) {
	r := newRenderer()

	out := r.RenderSearch(panel.SearchView{
		Query: "tok",
		Results: []dashboard.SearchResult{
			{Type: entity.PropertyTypeLocalStorage, Key: "token", Display: "abc"},
			{Type: entity.PropertyTypeCookie, Key: "tok_c", Display: "line1\nline2", Pinned: true},
		},
		Truncated: true,
	})

	require.Contains(t, out, `"tok"`)
	require.Contains(t, out, "token")
	require.Contains(t, out, "tok_c")
	require.Contains(t, out, "line1 line2")
	require.Contains(t, out, "first 2 results")
}

func TestDashboardRenderer_RenderSearch_Empty(t *testing.T) {
	out := newRenderer().RenderSearch(panel.SearchView{Query: "zz"})

	assert.Contains(t, out, "No matching")
}

func TestDashboardRenderer_RenderPins(t *testing.T) {
	r := newRenderer()

	out := r.RenderPins([]entity.PinnedProperty{
		{Type: entity.PropertyTypeSessionStorage, Key: "cart", Domain: "shop.test"},
		{Type: entity.PropertyTypeCookie, Key: "sid"},
	})

	assert.Contains(t, out, "cart")
	assert.Contains(t, out, "shop.test")
	assert.Contains(t, out, "Session")
	assert.Contains(t, out, "*")

	assert.Contains(t, r.RenderPins(nil), "No pins yet")
}

func TestDashboardRenderer_Messages(t *testing.T) {
	r := newRenderer()

	assert.Contains(t, r.RenderSuccess("pinned token"), "pinned token")
	assert.Contains(t, r.RenderNotice("already pinned"), "already pinned")
	assert.Contains(t, r.RenderBanner("browser unavailable"), "browser unavailable")
	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")

	settings := r.RenderSettings(entity.ThemeLight, entity.OrganizeAlphabetical)
	assert.Contains(t, settings, "light")
	assert.Contains(t, settings, "alphabetical")
}

func TestTypeIcon(t *testing.T) {
	seen := map[string]bool{}
	for _, pt := range entity.PropertyTypes {
		icon := styles.TypeIcon(pt)
		assert.NotEmpty(t, icon)
		seen[icon] = true
	}
	assert.Len(t, seen, len(entity.PropertyTypes))
}

func TestNewTheme(t *testing.T) {
	dark := styles.NewTheme(entity.ThemeDark)
	light := styles.NewTheme(entity.ThemeLight)

	assert.Equal(t, entity.ThemeDark, dark.Name)
	assert.Equal(t, entity.ThemeLight, light.Name)
	assert.NotEqual(t, dark.Background, light.Background)
}

func TestRecordRow(t *testing.T) {
	row := styles.RecordRow(dashboard.ReconciledRecord{
		Property: entity.PinnedProperty{Type: entity.PropertyTypeCookie, Key: "sid"},
	})

	assert.Contains(t, row, "not found")
	assert.Contains(t, row, "*")
}

func TestDashboardRenderer_RenderDashboard_IndentsJSON(t *testing.T) {
	out := newRenderer().RenderDashboard(panel.DashboardView{
		Domain: "example.com",
		Records: []dashboard.ReconciledRecord{{
			Property:     entity.PinnedProperty{Type: entity.PropertyTypeLocalStorage, Key: "prefs"},
			Found:        true,
			Display:      `{"lang":"en"}`,
			JSONViewable: true,
		}},
	})

	assert.Contains(t, out, `"lang": "en"`)
}
