// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/pinboard/internal/domain/entity"
)

// Theme holds the colors and derived styles of one dashboard theme.
type Theme struct {
	Name entity.Theme

	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Error      lipgloss.Color
	Warning    lipgloss.Color
	Success    lipgloss.Color

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style
	BadgeMuted   lipgloss.Style
	// Missing marks a pinned property with no live value.
	Missing      lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	HelpKey      lipgloss.Style
	HelpDesc     lipgloss.Style
	Banner       lipgloss.Style
}

// NewTheme returns the styles for a dashboard theme. Unknown names fall
// back to dark.
func NewTheme(name entity.Theme) *Theme {
	var t *Theme
	if name == entity.ThemeLight {
		t = &Theme{
			Name:       entity.ThemeLight,
			Background: "#f7f5f0",
			Surface:    "#e6e1d6",
			Text:       "#24211c",
			Muted:      "#756f64",
			Accent:     "#b45309",
			Border:     "#d4cec2",
			Error:      "#b91c1c",
			Warning:    "#a16207",
			Success:    "#15803d",
		}
	} else {
		t = &Theme{
			Name:       entity.ThemeDark,
			Background: "#16161a",
			Surface:    "#2a2a31",
			Text:       "#ecebe8",
			Muted:      "#8c8a93",
			Accent:     "#fbbf24",
			Border:     "#3a3a44",
			Error:      "#f87171",
			Warning:    "#fb923c",
			Success:    "#4ade80",
		}
	}
	t.derive()
	return t
}

func (t *Theme) derive() {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	boxed := func(border lipgloss.Color) lipgloss.Style {
		return fg(t.Text).Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1)
	}

	t.Title = fg(t.Text).Bold(true)
	t.Normal = fg(t.Text)
	t.Subtle = fg(t.Muted)
	t.Highlight = fg(t.Accent).Bold(true)
	t.ErrorStyle = fg(t.Error)
	t.WarningStyle = fg(t.Warning)
	t.SuccessStyle = fg(t.Success)
	t.BadgeMuted = fg(t.Text).Background(t.Surface).Padding(0, 1)
	t.Missing = fg(t.Muted).Italic(true)
	t.Input = boxed(t.Border)
	t.InputFocused = boxed(t.Accent)
	t.HelpKey = fg(t.Accent)
	t.HelpDesc = fg(t.Muted)
	t.Banner = fg(t.Background).Background(t.Error).Bold(true).Padding(0, 1)
}
