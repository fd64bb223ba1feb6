package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/pinboard/internal/app/panel"
	"github.com/bnema/pinboard/internal/domain/dashboard"
	"github.com/bnema/pinboard/internal/domain/entity"
	"github.com/bnema/pinboard/internal/domain/url"
)

// DashboardRenderer renders dashboard and search output as styled text.
type DashboardRenderer struct {
	theme *Theme
}

// NewDashboardRenderer creates a new dashboard renderer with the given theme.
func NewDashboardRenderer(theme *Theme) *DashboardRenderer {
	return &DashboardRenderer{theme: theme}
}

// RenderDashboard renders the pinned properties of the current domain.
func (r *DashboardRenderer) RenderDashboard(v panel.DashboardView) string {
	var sb strings.Builder

	sb.WriteString(r.renderHeader(v))

	if len(v.Records) == 0 {
		sb.WriteString(fmt.Sprintf("  %s\n",
			r.theme.Subtle.Render("Nothing pinned for this site yet. Try 'pinboard search <query>'."),
		))
		return sb.String()
	}

	for _, rec := range v.Records {
		sb.WriteString(r.renderRecord(rec))
	}
	return sb.String()
}

func (r *DashboardRenderer) renderHeader(v panel.DashboardView) string {
	domain := v.Domain
	if domain == "" || domain == url.UnknownDomain {
		domain = "no site"
	}
	title := r.theme.Title.Render(fmt.Sprintf("%s Pinned on %s", IconPin, domain))
	mode := r.theme.BadgeMuted.Render(string(v.Mode))

	var tab string
	if v.Tab != nil && v.Tab.Title != "" {
		tab = "\n  " + r.theme.Subtle.Render(v.Tab.Title)
	}
	return fmt.Sprintf("\n  %s %s%s\n\n", title, mode, tab)
}

func (r *DashboardRenderer) renderRecord(rec dashboard.ReconciledRecord) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Accent).Render(TypeIcon(rec.Property.Type))
	name := r.theme.Highlight.Render(rec.Property.DisplayName())

	meta := []string{rec.Property.Type.Label()}
	if rec.Property.Alias != "" && rec.Property.Alias != rec.Property.Key {
		meta = append(meta, rec.Property.Key)
	}
	if rec.Property.IsLegacy() {
		meta = append(meta, "any site")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("  %s %s %s %s\n",
		r.theme.Subtle.Render(fmt.Sprintf("%2d", rec.Index)),
		icon,
		name,
		r.theme.Subtle.Render("("+strings.Join(meta, ", ")+")"),
	))

	if !rec.Found {
		sb.WriteString("       " + r.theme.Missing.Render(IconMissing+" "+notFoundText) + "\n")
		return sb.String()
	}
	value := rec.Display
	if rec.JSONViewable {
		value = dashboard.PrettyJSON(value)
	}
	for _, line := range strings.Split(value, "\n") {
		sb.WriteString("       " + r.theme.Normal.Render(line) + "\n")
	}
	return sb.String()
}

// RenderSearch renders search results, numbered from 1.
func (r *DashboardRenderer) RenderSearch(v panel.SearchView) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("\n  %s %s\n\n",
		r.theme.Title.Render(IconSearch+" Results for"),
		r.theme.Highlight.Render(fmt.Sprintf("%q", v.Query)),
	))

	if len(v.Results) == 0 {
		sb.WriteString("  " + r.theme.Subtle.Render("No matching keys or values.") + "\n")
		return sb.String()
	}

	for i, res := range v.Results {
		pinned := "  "
		if res.Pinned {
			pinned = r.theme.Highlight.Render(IconPin) + " "
		}
		sb.WriteString(fmt.Sprintf("  %s %s%s %s %s\n",
			r.theme.Subtle.Render(fmt.Sprintf("%3d", i+1)),
			pinned,
			lipgloss.NewStyle().Foreground(r.theme.Accent).Render(TypeIcon(res.Type)),
			r.theme.Normal.Bold(true).Render(res.Key),
			r.theme.Subtle.Render(truncate(OneLine(res.Display), 60)),
		))
	}

	if v.Truncated {
		sb.WriteString("\n  " + r.theme.WarningStyle.Render(
			fmt.Sprintf("%s Showing the first %d results, refine the query to see more.", IconWarning, len(v.Results)),
		) + "\n")
	}
	return sb.String()
}

// RenderPins renders the full persisted pin list.
func (r *DashboardRenderer) RenderPins(pins []entity.PinnedProperty) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s %s\n\n",
		r.theme.Title.Render(IconPin+" Pinned properties"),
		r.theme.BadgeMuted.Render(fmt.Sprintf("%d", len(pins))),
	))
	if len(pins) == 0 {
		sb.WriteString("  " + r.theme.Subtle.Render("No pins yet.") + "\n")
		return sb.String()
	}

	for i, p := range pins {
		domain := p.Domain
		if domain == "" {
			domain = "*"
		}
		sb.WriteString(fmt.Sprintf("  %s %s %s %s %s\n",
			r.theme.Subtle.Render(fmt.Sprintf("%2d", i)),
			lipgloss.NewStyle().Foreground(r.theme.Accent).Render(TypeIcon(p.Type)),
			r.theme.Highlight.Render(p.DisplayName()),
			r.theme.Subtle.Render(p.Type.Label()+" "+p.Key),
			r.theme.BadgeMuted.Render(domain),
		))
	}
	return sb.String()
}

// RenderSettings renders the theme and organization mode.
func (r *DashboardRenderer) RenderSettings(theme entity.Theme, mode entity.OrganizationMode) string {
	return fmt.Sprintf("\n  %s %s\n  %s %s\n",
		r.theme.Subtle.Render("theme"), r.theme.Highlight.Render(string(theme)),
		r.theme.Subtle.Render("mode "), r.theme.Highlight.Render(string(mode)),
	)
}

// RenderSuccess renders a confirmation line.
func (r *DashboardRenderer) RenderSuccess(msg string) string {
	return fmt.Sprintf("  %s %s\n",
		r.theme.SuccessStyle.Render(IconCheck),
		msg,
	)
}

// RenderNotice renders a non-fatal message.
func (r *DashboardRenderer) RenderNotice(msg string) string {
	return fmt.Sprintf("  %s %s\n",
		r.theme.WarningStyle.Render(IconInfo),
		msg,
	)
}

// RenderBanner renders a persistent failure.
func (r *DashboardRenderer) RenderBanner(msg string) string {
	return "\n  " + r.theme.Banner.Render(IconX+" "+msg) + "\n"
}

// RenderError renders an error message.
func (r *DashboardRenderer) RenderError(err error) string {
	return fmt.Sprintf("  %s %v\n",
		r.theme.ErrorStyle.Render(IconX),
		err,
	)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
