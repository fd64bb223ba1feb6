package model

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pinboard/internal/app/panel"
	"github.com/bnema/pinboard/internal/cli/styles"
	"github.com/bnema/pinboard/internal/domain/dashboard"
	"github.com/bnema/pinboard/internal/domain/entity"
)

type fakeController struct {
	mu sync.Mutex

	failed    bool
	queries   []string
	unpinned  []int
	renamed   map[entity.PropertyIdentity]string
	reordered [][2]entity.PropertyIdentity
	modes     []string
	pinned    []dashboard.SearchResult
	flushes   int
	refreshes int
	toggles   int
}

func newFakeController() *fakeController {
	return &fakeController{renamed: map[entity.PropertyIdentity]string{}}
}

func (f *fakeController) Failed() bool { return f.failed }

func (f *fakeController) CheckTab(context.Context) bool { return false }

func (f *fakeController) Refresh(context.Context) entity.OperationResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshes++
	return entity.OK()
}

func (f *fakeController) OnSearchInput(query string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
}

func (f *fakeController) FlushSearch() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flushes++
}

func (f *fakeController) PinSearchResult(_ context.Context, r dashboard.SearchResult, _ string) panel.PinOutcome {
	f.pinned = append(f.pinned, r)
	return panel.PinOutcome{OperationResult: entity.OK()}
}

func (f *fakeController) UnpinAt(_ context.Context, index int) entity.OperationResult {
	f.unpinned = append(f.unpinned, index)
	return entity.OK()
}

func (f *fakeController) Rename(_ context.Context, id entity.PropertyIdentity, alias string) entity.OperationResult {
	f.renamed[id] = alias
	return entity.OK()
}

func (f *fakeController) Reorder(_ context.Context, dragged, target entity.PropertyIdentity) entity.OperationResult {
	f.reordered = append(f.reordered, [2]entity.PropertyIdentity{dragged, target})
	return entity.OK()
}

func (f *fakeController) SetMode(_ context.Context, mode string) entity.OperationResult {
	f.modes = append(f.modes, mode)
	return entity.OK()
}

func (f *fakeController) ToggleTheme(context.Context) entity.OperationResult {
	f.toggles++
	return entity.OK()
}

func pin(t entity.PropertyType, k, domain string) entity.PinnedProperty {
	return entity.PinnedProperty{Type: t, Key: k, Alias: k, Domain: domain}
}

func testView(mode entity.OrganizationMode) panel.DashboardView {
	return panel.DashboardView{
		Domain: "example.com",
		Mode:   mode,
		Theme:  entity.ThemeDark,
		Records: []dashboard.ReconciledRecord{
			{Index: 0, Property: pin(entity.PropertyTypeLocalStorage, "a", "example.com"), Found: true, Display: "1"},
			{Index: 2, Property: pin(entity.PropertyTypeCookie, "b", "example.com"), Found: true, Display: "2"},
			{Index: 3, Property: pin(entity.PropertyTypeSessionStorage, "c", ""), Found: false},
		},
		RequestID: 5,
	}
}

func newTestModel(t *testing.T, f *fakeController) DashboardModel {
	t.Helper()
	m := NewDashboardModel(context.Background(), styles.NewTheme(entity.ThemeDark), f)
	next, _ := m.Update(DashboardMsg{View: testView(entity.OrganizeCustom)})
	return next.(DashboardModel)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// run executes a command and returns its message.
func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func TestDashboardModel_ShowsRecords(t *testing.T) {
	m := newTestModel(t, newFakeController())

	view := m.View()
	assert.Contains(t, view, "example.com")
	assert.Contains(t, view, "3 pinned")
	assert.Contains(t, view, "not found")
}

func TestDashboardModel_IgnoresStaleDashboard(t *testing.T) {
	m := newTestModel(t, newFakeController())

	stale := testView(entity.OrganizeCustom)
	stale.RequestID = 4
	stale.Records = nil
	next, _ := m.Update(DashboardMsg{View: stale})

	assert.Len(t, next.(DashboardModel).view.Records, 3)
}

func TestDashboardModel_UnpinUsesPersistedIndex(t *testing.T) {
	f := newFakeController()
	m := newTestModel(t, f)
	m.records.SetCursor(1)

	_, cmd := m.Update(keyRunes("x"))
	msg := run(t, cmd)

	assert.Equal(t, []int{2}, f.unpinned)
	assert.True(t, msg.(opDoneMsg).result.Success)
}

func TestDashboardModel_ReorderDown(t *testing.T) {
	f := newFakeController()
	m := newTestModel(t, f)
	m.records.SetCursor(0)

	next, cmd := m.Update(keyRunes("J"))
	run(t, cmd)

	require.Len(t, f.reordered, 1)
	assert.Equal(t, "b", f.reordered[0][0].Key)
	assert.Equal(t, "a", f.reordered[0][1].Key)
	assert.Equal(t, 1, next.(DashboardModel).records.Cursor())
}

func TestDashboardModel_ReorderUp(t *testing.T) {
	f := newFakeController()
	m := newTestModel(t, f)
	m.records.SetCursor(2)

	_, cmd := m.Update(keyRunes("K"))
	run(t, cmd)

	require.Len(t, f.reordered, 1)
	assert.Equal(t, "c", f.reordered[0][0].Key)
	assert.Equal(t, "b", f.reordered[0][1].Key)
}

func TestDashboardModel_ReorderRequiresCustomMode(t *testing.T) {
	f := newFakeController()
	m := newTestModel(t, f)
	next, _ := m.Update(DashboardMsg{View: testView(entity.OrganizeAlphabetical)})
	m = next.(DashboardModel)

	next, cmd := m.Update(keyRunes("J"))

	assert.Nil(t, cmd)
	assert.Empty(t, f.reordered)
	assert.Contains(t, next.(DashboardModel).statusMessage, "custom mode")
}

func TestDashboardModel_CyclesMode(t *testing.T) {
	f := newFakeController()
	m := newTestModel(t, f)

	_, cmd := m.Update(keyRunes("m"))
	run(t, cmd)

	// custom is last, so the cycle wraps to the first mode
	assert.Equal(t, []string{string(entity.OrganizationModes[0])}, f.modes)
}

func TestDashboardModel_ThemeChangeRebuildsStyles(t *testing.T) {
	m := newTestModel(t, newFakeController())

	light := testView(entity.OrganizeCustom)
	light.Theme = entity.ThemeLight
	light.RequestID = 6
	next, _ := m.Update(DashboardMsg{View: light})

	assert.Equal(t, entity.ThemeLight, next.(DashboardModel).theme.Name)
}

func TestDashboardModel_SearchFlow(t *testing.T) {
	f := newFakeController()
	m := newTestModel(t, f)

	next, _ := m.Update(keyRunes("/"))
	m = next.(DashboardModel)
	require.Equal(t, stateSearch, m.state)

	next, _ = m.Update(keyRunes("to"))
	m = next.(DashboardModel)
	assert.Equal(t, []string{"to"}, f.queries)

	result := dashboard.SearchResult{Type: entity.PropertyTypeLocalStorage, Key: "token", Display: "x"}
	next, _ = m.Update(SearchMsg{View: panel.SearchView{Query: "to", Results: []dashboard.SearchResult{result}}})
	m = next.(DashboardModel)
	assert.Contains(t, m.View(), "token")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	run(t, cmd)
	require.Len(t, f.pinned, 1)
	assert.Equal(t, "token", f.pinned[0].Key)
}

func TestDashboardModel_DropsOutdatedSearchResults(t *testing.T) {
	m := newTestModel(t, newFakeController())
	next, _ := m.Update(keyRunes("/"))
	m = next.(DashboardModel)
	next, _ = m.Update(keyRunes("tok"))
	m = next.(DashboardModel)

	next, _ = m.Update(SearchMsg{View: panel.SearchView{
		Query:   "to",
		Results: []dashboard.SearchResult{{Type: entity.PropertyTypeCookie, Key: "old"}},
	}})

	assert.Empty(t, next.(DashboardModel).search.Results)
}

func TestDashboardModel_EnterFlushesPendingSearch(t *testing.T) {
	f := newFakeController()
	m := newTestModel(t, f)
	next, _ := m.Update(keyRunes("/"))
	m = next.(DashboardModel)
	next, _ = m.Update(keyRunes("to"))
	m = next.(DashboardModel)
	next, _ = m.Update(SearchMsg{View: panel.SearchView{
		Query:   "to",
		Results: []dashboard.SearchResult{{Type: entity.PropertyTypeCookie, Key: "token"}},
	}})
	m = next.(DashboardModel)
	next, _ = m.Update(keyRunes("k"))
	m = next.(DashboardModel)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, run(t, cmd))

	assert.Equal(t, 1, f.flushes)
	assert.Empty(t, f.pinned)
}

func TestDashboardModel_SearchTypingDoesNotQuit(t *testing.T) {
	m := newTestModel(t, newFakeController())
	next, _ := m.Update(keyRunes("/"))
	m = next.(DashboardModel)

	next, _ = m.Update(keyRunes("q"))

	assert.Equal(t, stateSearch, next.(DashboardModel).state)
	assert.Equal(t, "q", next.(DashboardModel).searchInput.Value())
}

func TestDashboardModel_RenameFlow(t *testing.T) {
	f := newFakeController()
	m := newTestModel(t, f)
	m.records.SetCursor(0)

	next, _ := m.Update(keyRunes("a"))
	m = next.(DashboardModel)
	require.Equal(t, stateAlias, m.state)
	m.aliasInput.SetValue("Auth")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	run(t, cmd)

	assert.Equal(t, stateDashboard, next.(DashboardModel).state)
	id := entity.PropertyIdentity{Type: entity.PropertyTypeLocalStorage, Key: "a", Domain: "example.com"}
	assert.Equal(t, "Auth", f.renamed[id])
}

func TestDashboardModel_BannerAndFailures(t *testing.T) {
	m := newTestModel(t, newFakeController())

	next, _ := m.Update(BannerMsg{Text: "browser unavailable"})
	m = next.(DashboardModel)
	assert.Contains(t, m.View(), "browser unavailable")

	next, _ = m.Update(opDoneMsg{action: "unpin", result: entity.OperationResult{Error: "boom"}})
	assert.Contains(t, next.(DashboardModel).View(), "unpin failed: boom")
}

func TestDashboardModel_TickStopsWhenFailed(t *testing.T) {
	f := newFakeController()
	f.failed = true
	m := newTestModel(t, f)

	_, cmd := m.Update(tickMsg{})
	assert.Nil(t, cmd)
}

func TestNextMode(t *testing.T) {
	assert.Equal(t, entity.OrganizeByType, nextMode(entity.OrganizeDefault))
	assert.Equal(t, entity.OrganizeDefault, nextMode(entity.OrganizeCustom))
	assert.Equal(t, entity.OrganizationModes[0], nextMode(""))
}

func TestProgramRenderer_DropsUntilAttached(t *testing.T) {
	r := NewProgramRenderer()
	r.ShowNotice("lost")

	var got []tea.Msg
	r.Attach(func(msg tea.Msg) { got = append(got, msg) })
	r.RenderDashboard(panel.DashboardView{Domain: "example.com"})
	r.RenderSearch(panel.SearchView{Query: "q"})
	r.ShowBanner("down")
	r.ShowNotice("hi")

	require.Len(t, got, 4)
	assert.Equal(t, "example.com", got[0].(DashboardMsg).View.Domain)
	assert.Equal(t, "q", got[1].(SearchMsg).View.Query)
	assert.Equal(t, BannerMsg{Text: "down"}, got[2])
	assert.Equal(t, NoticeMsg{Text: "hi"}, got[3])
}

func TestDashboardModel_DetailView(t *testing.T) {
	m := newTestModel(t, newFakeController())
	m.view.Records[0].Display = `{"user":"ada"}`
	m.view.Records[0].JSONViewable = true
	m.records.SetCursor(0)

	next, _ := m.Update(keyRunes("v"))
	m = next.(DashboardModel)
	require.Equal(t, stateDetail, m.state)
	assert.Contains(t, m.View(), `"user": "ada"`)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateDashboard, next.(DashboardModel).state)
}

func TestDetailContent(t *testing.T) {
	assert.Equal(t, "not found", detailContent(dashboard.ReconciledRecord{}))
	assert.Equal(t, "plain", detailContent(dashboard.ReconciledRecord{Found: true, Display: "plain"}))
}
