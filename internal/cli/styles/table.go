package styles

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/pinboard/internal/domain/dashboard"
)

const (
	nameColumnWidth   = 24
	typeColumnWidth   = 9
	domainColumnWidth = 22
	minValueWidth     = 16
	notFoundText      = "not found"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.Surface).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// RecordColumns returns the dashboard table columns for a terminal width.
func RecordColumns(width int) []table.Column {
	valueWidth := width - nameColumnWidth - typeColumnWidth - domainColumnWidth - 8
	if valueWidth < minValueWidth {
		valueWidth = minValueWidth
	}
	return []table.Column{
		{Title: "Name", Width: nameColumnWidth},
		{Title: "Type", Width: typeColumnWidth},
		{Title: "Domain", Width: domainColumnWidth},
		{Title: "Value", Width: valueWidth},
	}
}

// RecordRow converts a reconciled record to a table row. Values are
// flattened to one line.
func RecordRow(r dashboard.ReconciledRecord) table.Row {
	domain := r.Property.Domain
	if domain == "" {
		domain = "*"
	}
	value := notFoundText
	if r.Found {
		value = OneLine(r.Display)
	}
	return table.Row{r.Property.DisplayName(), r.Property.Type.Label(), domain, value}
}

// SearchColumns returns the search result table columns.
func SearchColumns(width int) []table.Column {
	valueWidth := width - nameColumnWidth - typeColumnWidth - 12
	if valueWidth < minValueWidth {
		valueWidth = minValueWidth
	}
	return []table.Column{
		{Title: "", Width: 2},
		{Title: "Key", Width: nameColumnWidth},
		{Title: "Type", Width: typeColumnWidth},
		{Title: "Value", Width: valueWidth},
	}
}

// SearchRow converts a search result to a table row.
func SearchRow(r dashboard.SearchResult) table.Row {
	mark := ""
	if r.Pinned {
		mark = IconPin
	}
	return table.Row{mark, r.Key, r.Type.Label(), OneLine(r.Display)}
}

// OneLine collapses whitespace runs, newlines included, to single spaces.
func OneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
