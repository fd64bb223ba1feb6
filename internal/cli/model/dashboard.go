// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/pinboard/internal/app/panel"
	"github.com/bnema/pinboard/internal/cli/styles"
	"github.com/bnema/pinboard/internal/domain/dashboard"
	"github.com/bnema/pinboard/internal/domain/entity"
	"github.com/bnema/pinboard/internal/domain/url"
	"github.com/bnema/pinboard/internal/logging"
)

// TabPollInterval is how often the model asks the controller whether the
// active tab changed.
const TabPollInterval = time.Second

const (
	defaultWidth  = 100
	defaultHeight = 24
	// header, input, status and help lines around the table
	chromeHeight = 9
)

// Controller is the subset of panel.Panel the dashboard drives.
type Controller interface {
	Failed() bool
	CheckTab(ctx context.Context) bool
	Refresh(ctx context.Context) entity.OperationResult
	OnSearchInput(query string)
	FlushSearch()
	PinSearchResult(ctx context.Context, result dashboard.SearchResult, alias string) panel.PinOutcome
	UnpinAt(ctx context.Context, index int) entity.OperationResult
	Rename(ctx context.Context, id entity.PropertyIdentity, alias string) entity.OperationResult
	Reorder(ctx context.Context, dragged, target entity.PropertyIdentity) entity.OperationResult
	SetMode(ctx context.Context, mode string) entity.OperationResult
	ToggleTheme(ctx context.Context) entity.OperationResult
}

var _ Controller = (*panel.Panel)(nil)

type viewState int

const (
	stateDashboard viewState = iota
	stateSearch
	stateAlias
	stateDetail
)

// DashboardMsg carries a rendered dashboard view.
type DashboardMsg struct{ View panel.DashboardView }

// SearchMsg carries search results.
type SearchMsg struct{ View panel.SearchView }

// BannerMsg reports a persistent failure.
type BannerMsg struct{ Text string }

// NoticeMsg reports a transient message.
type NoticeMsg struct{ Text string }

type tickMsg time.Time

type opDoneMsg struct {
	action string
	result entity.OperationResult
}

// DashboardModel is the Bubble Tea model for the interactive dashboard.
type DashboardModel struct {
	// UI components
	help        help.Model
	keys        styles.DashboardKeyMap
	records     table.Model
	results     table.Model
	searchInput textinput.Model
	aliasInput  textinput.Model
	detail      viewport.Model

	// State
	state         viewState
	view          panel.DashboardView
	haveView      bool
	search        panel.SearchView
	aliasTarget   entity.PropertyIdentity
	detailTitle   string
	banner        string
	statusMessage string
	width         int
	height        int

	// Dependencies
	ctx        context.Context
	controller Controller
	theme      *styles.Theme
}

// NewDashboardModel creates the dashboard model.
func NewDashboardModel(ctx context.Context, theme *styles.Theme, controller Controller) DashboardModel {
	m := DashboardModel{
		keys:       styles.DefaultDashboardKeyMap(),
		width:      defaultWidth,
		height:     defaultHeight,
		ctx:        logging.WithComponent(ctx, "tui"),
		controller: controller,
	}
	m.applyTheme(theme)
	return m
}

func (m *DashboardModel) applyTheme(theme *styles.Theme) {
	m.theme = theme
	m.help = styles.NewStyledHelp(theme)
	m.help.Width = m.width

	tableHeight := max(m.height-chromeHeight, 3)
	m.records = styles.NewStyledTable(theme, styles.RecordColumns(m.width), m.recordRows(), m.width, tableHeight)
	m.results = styles.NewStyledTable(theme, styles.SearchColumns(m.width), m.resultRows(), m.width, tableHeight)

	query := m.searchInput.Value()
	m.searchInput = styles.NewSearchInput(theme)
	m.searchInput.SetValue(query)
	if m.state == stateSearch {
		m.searchInput.Focus()
	}
}

// Init implements tea.Model.
func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		m.do("refresh", func(ctx context.Context) entity.OperationResult {
			return m.controller.Refresh(ctx)
		}),
		tick(),
	)
}

func tick() tea.Cmd {
	return tea.Tick(TabPollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m DashboardModel) do(action string, fn func(context.Context) entity.OperationResult) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return opDoneMsg{action: action, result: fn(ctx)}
	}
}

// Update implements tea.Model.
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applyTheme(m.theme)
		m.detail.Width = m.width
		m.detail.Height = max(m.height-chromeHeight, 3)
		return m, nil

	case tickMsg:
		if m.controller.Failed() {
			return m, nil
		}
		ctx := m.ctx
		return m, tea.Batch(
			func() tea.Msg {
				m.controller.CheckTab(ctx)
				return nil
			},
			tick(),
		)

	case DashboardMsg:
		if m.haveView && msg.View.RequestID < m.view.RequestID {
			return m, nil
		}
		themeChanged := msg.View.Theme != m.theme.Name
		m.view = msg.View
		m.haveView = true
		if themeChanged {
			m.applyTheme(styles.NewTheme(msg.View.Theme))
		} else {
			m.records.SetRows(m.recordRows())
		}
		m.clampCursor(&m.records)
		return m, nil

	case SearchMsg:
		// results for an older query
		if msg.View.Query != strings.TrimSpace(m.searchInput.Value()) {
			return m, nil
		}
		m.search = msg.View
		m.results.SetRows(m.resultRows())
		m.clampCursor(&m.results)
		return m, nil

	case BannerMsg:
		m.banner = msg.Text
		return m, nil

	case NoticeMsg:
		m.statusMessage = msg.Text
		return m, nil

	case opDoneMsg:
		if !msg.result.Success {
			m.statusMessage = fmt.Sprintf("%s failed: %s", msg.action, msg.result.Error)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateSearch:
			return m.handleSearchKey(msg)
		case stateAlias:
			return m.handleAliasKey(msg)
		case stateDetail:
			return m.handleDetailKey(msg)
		default:
			return m.handleDashboardKey(msg)
		}
	}

	return m, nil
}

func (m DashboardModel) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.state = stateSearch
		m.statusMessage = ""
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.Refresh):
		m.statusMessage = ""
		return m, m.do("refresh", func(ctx context.Context) entity.OperationResult {
			return m.controller.Refresh(ctx)
		})

	case key.Matches(msg, m.keys.Mode):
		next := nextMode(m.view.Mode)
		return m, m.do("mode", func(ctx context.Context) entity.OperationResult {
			return m.controller.SetMode(ctx, string(next))
		})

	case key.Matches(msg, m.keys.Theme):
		return m, m.do("theme", func(ctx context.Context) entity.OperationResult {
			return m.controller.ToggleTheme(ctx)
		})

	case key.Matches(msg, m.keys.Unpin):
		rec, ok := m.selectedRecord()
		if !ok {
			return m, nil
		}
		return m, m.do("unpin", func(ctx context.Context) entity.OperationResult {
			return m.controller.UnpinAt(ctx, rec.Index)
		})

	case key.Matches(msg, m.keys.Rename):
		rec, ok := m.selectedRecord()
		if !ok {
			return m, nil
		}
		m.state = stateAlias
		m.aliasTarget = rec.Identity()
		m.aliasInput = styles.NewAliasInput(m.theme, rec.Property.DisplayName())
		return m, m.aliasInput.Focus()

	case key.Matches(msg, m.keys.View):
		rec, ok := m.selectedRecord()
		if !ok {
			return m, nil
		}
		m.state = stateDetail
		m.detailTitle = rec.Property.DisplayName()
		m.detail = viewport.New(m.width, max(m.height-chromeHeight, 3))
		m.detail.SetContent(detailContent(rec))
		return m, nil

	case key.Matches(msg, m.keys.MoveUp), key.Matches(msg, m.keys.MoveDown):
		return m.reorder(key.Matches(msg, m.keys.MoveUp))
	}

	var cmd tea.Cmd
	m.records, cmd = m.records.Update(msg)
	return m, cmd
}

// reorder swaps the selected record with its neighbour in custom mode.
func (m DashboardModel) reorder(up bool) (tea.Model, tea.Cmd) {
	if m.view.Mode != entity.OrganizeCustom {
		m.statusMessage = panel.ErrReorderRequiresCustomMode.Error()
		return m, nil
	}
	cursor := m.records.Cursor()
	other := cursor + 1
	if up {
		other = cursor - 1
	}
	if cursor < 0 || cursor >= len(m.view.Records) || other < 0 || other >= len(m.view.Records) {
		return m, nil
	}

	selected := m.view.Records[cursor].Identity()
	neighbour := m.view.Records[other].Identity()
	// Reorder inserts the dragged pin before the target.
	dragged, target := selected, neighbour
	if !up {
		dragged, target = neighbour, selected
	}
	m.records.SetCursor(other)
	return m, m.do("reorder", func(ctx context.Context) entity.OperationResult {
		return m.controller.Reorder(ctx, dragged, target)
	})
}

func (m DashboardModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.state = stateDashboard
		m.searchInput.Blur()
		return m, nil
	case tea.KeyUp:
		m.results.MoveUp(1)
		return m, nil
	case tea.KeyDown:
		m.results.MoveDown(1)
		return m, nil
	case tea.KeyEnter:
		if m.search.Query != strings.TrimSpace(m.searchInput.Value()) {
			return m, m.flushSearch()
		}
		cursor := m.results.Cursor()
		if cursor < 0 || cursor >= len(m.search.Results) {
			return m, nil
		}
		result := m.search.Results[cursor]
		m.statusMessage = fmt.Sprintf("pinned %s", result.Key)
		return m, m.do("pin", func(ctx context.Context) entity.OperationResult {
			return m.controller.PinSearchResult(ctx, result, "").OperationResult
		})
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if query := m.searchInput.Value(); query != before {
		m.controller.OnSearchInput(strings.TrimSpace(query))
	}
	return m, cmd
}

// flushSearch runs the debounced search for the current input so that Enter
// never pins from results of an older query.
func (m DashboardModel) flushSearch() tea.Cmd {
	c := m.controller
	return func() tea.Msg {
		c.FlushSearch()
		return nil
	}
}

func (m DashboardModel) handleAliasKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.state = stateDashboard
		return m, nil
	case tea.KeyEnter:
		m.state = stateDashboard
		id, alias := m.aliasTarget, m.aliasInput.Value()
		return m, m.do("rename", func(ctx context.Context) entity.OperationResult {
			return m.controller.Rename(ctx, id, alias)
		})
	}

	var cmd tea.Cmd
	m.aliasInput, cmd = m.aliasInput.Update(msg)
	return m, cmd
}

func (m DashboardModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.View), key.Matches(msg, m.keys.Quit):
		m.state = stateDashboard
		return m, nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// detailContent is the full value of a record, with JSON re-indented.
func detailContent(rec dashboard.ReconciledRecord) string {
	switch {
	case !rec.Found:
		return "not found"
	case rec.JSONViewable:
		return dashboard.PrettyJSON(rec.Display)
	}
	return rec.Display
}

func (m DashboardModel) selectedRecord() (dashboard.ReconciledRecord, bool) {
	cursor := m.records.Cursor()
	if cursor < 0 || cursor >= len(m.view.Records) {
		return dashboard.ReconciledRecord{}, false
	}
	return m.view.Records[cursor], true
}

func (m DashboardModel) clampCursor(t *table.Model) {
	n := len(t.Rows())
	if n == 0 {
		return
	}
	if t.Cursor() >= n {
		t.SetCursor(n - 1)
	}
	if t.Cursor() < 0 {
		t.SetCursor(0)
	}
}

func (m DashboardModel) recordRows() []table.Row {
	rows := make([]table.Row, 0, len(m.view.Records))
	for _, r := range m.view.Records {
		rows = append(rows, styles.RecordRow(r))
	}
	return rows
}

func (m DashboardModel) resultRows() []table.Row {
	rows := make([]table.Row, 0, len(m.search.Results))
	for _, r := range m.search.Results {
		rows = append(rows, styles.SearchRow(r))
	}
	return rows
}

func nextMode(current entity.OrganizationMode) entity.OrganizationMode {
	i := slices.Index(entity.OrganizationModes, current)
	return entity.OrganizationModes[(i+1)%len(entity.OrganizationModes)]
}

// View implements tea.Model.
func (m DashboardModel) View() string {
	t := m.theme
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.banner != "" {
		b.WriteString(t.Banner.Render(styles.IconX + " " + m.banner))
		b.WriteString("\n\n")
	}

	switch m.state {
	case stateSearch:
		b.WriteString(t.InputBox(m.searchInput.View(), true))
		b.WriteString("\n")
		b.WriteString(m.renderResults())
	case stateAlias:
		b.WriteString(t.InputBox(m.aliasInput.View(), true))
		b.WriteString("\n")
		b.WriteString(m.renderRecords())
	case stateDetail:
		b.WriteString(t.Highlight.Render("  " + m.detailTitle))
		b.WriteString("\n")
		b.WriteString(m.detail.View())
		b.WriteString("\n")
	default:
		b.WriteString(m.renderRecords())
	}

	if m.statusMessage != "" {
		b.WriteString("\n")
		b.WriteString(t.Subtle.Render(m.statusMessage))
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m DashboardModel) renderHeader() string {
	t := m.theme

	domain := m.view.Domain
	if domain == "" || domain == url.UnknownDomain {
		domain = "no site"
	}
	icon := lipgloss.NewStyle().Foreground(t.Accent).Render(styles.IconPin)
	title := t.Title.MarginLeft(1).Render(domain)

	mode := string(m.view.Mode)
	if mode == "" {
		mode = string(entity.OrganizeDefault)
	}
	stats := t.Subtle.Render(fmt.Sprintf("  %d pinned  %s %s", len(m.view.Records), styles.IconConfig, mode))
	return icon + title + stats
}

func (m DashboardModel) renderRecords() string {
	if !m.haveView {
		return m.theme.Subtle.Render("  Loading...") + "\n"
	}
	if len(m.view.Records) == 0 {
		return m.theme.Subtle.Render("  Nothing pinned for this site yet. Press / to search.") + "\n"
	}
	return m.records.View() + "\n"
}

func (m DashboardModel) renderResults() string {
	if m.search.Query == "" {
		return m.theme.Subtle.Render("  Type at least two characters.") + "\n"
	}
	if len(m.search.Results) == 0 {
		return m.theme.Subtle.Render("  No matching keys or values.") + "\n"
	}
	out := m.results.View() + "\n"
	if m.search.Truncated {
		out += m.theme.WarningStyle.Render(fmt.Sprintf("  %s first %d results", styles.IconWarning, len(m.search.Results))) + "\n"
	}
	return out
}
