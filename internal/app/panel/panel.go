// Package panel drives one dashboard session: it follows the inspected
// tab, refreshes live data, and renders pinned properties and search
// results through a Renderer.
package panel

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/pinboard/internal/application/port"
	"github.com/bnema/pinboard/internal/application/usecase"
	"github.com/bnema/pinboard/internal/domain/dashboard"
	"github.com/bnema/pinboard/internal/domain/entity"
	"github.com/bnema/pinboard/internal/domain/url"
	"github.com/bnema/pinboard/internal/logging"
)

const (
	// DefaultTabDebounce coalesces bursts of tab activation and navigation.
	DefaultTabDebounce = 300 * time.Millisecond
	// DefaultSearchDebounce coalesces keystrokes in the search box.
	DefaultSearchDebounce = 300 * time.Millisecond

	unavailableBanner = "Lost connection to the browser. Restart pinboard to reconnect."
)

// ErrReorderRequiresCustomMode is returned when a drag-reorder is attempted
// outside custom organization mode.
var ErrReorderRequiresCustomMode = errors.New("reordering is only available in custom mode")

// DashboardView is everything needed to draw the pinned list.
type DashboardView struct {
	Tab       *entity.Tab
	Domain    string
	Records   []dashboard.ReconciledRecord
	Mode      entity.OrganizationMode
	Theme     entity.Theme
	RequestID uint64
}

// SearchView is everything needed to draw search results.
type SearchView struct {
	Query     string
	Domain    string
	Results   []dashboard.SearchResult
	Truncated bool
}

// Renderer receives render requests. Calls may arrive from timer goroutines.
type Renderer interface {
	RenderDashboard(view DashboardView)
	RenderSearch(view SearchView)
	// ShowBanner reports a persistent failure.
	ShowBanner(msg string)
	// ShowNotice reports a transient, non-fatal message.
	ShowNotice(msg string)
}

// HealthChecker reports whether the browser collaborator is gone for good.
type HealthChecker interface {
	Failed() bool
}

// Config tunes the controller.
type Config struct {
	TabDebounce    time.Duration
	SearchDebounce time.Duration
	// Locale selects collation for domain and alphabetical ordering.
	Locale string
}

// Deps lists the collaborators of a Panel.
type Deps struct {
	Pins     *usecase.ManagePinsUseCase
	Settings *usecase.ManageSettingsUseCase
	Refresh  *usecase.RefreshLiveDataUseCase
	Search   *usecase.SearchPropertiesUseCase
	Edit     *usecase.EditLiveDataUseCase
	Tabs     port.TabProvider
	Renderer Renderer
	// Health is optional.
	Health HealthChecker
	Config Config
}

// Panel is the controller of one dashboard session.
type Panel struct {
	deps      Deps
	organizer *dashboard.Organizer
	baseCtx   context.Context

	tabDebounce    *Debouncer
	searchDebounce *Debouncer

	mu     sync.RWMutex
	tab    *entity.Tab
	domain string
	// shown is the refresh cycle tab and domain belong to.
	shown  uint64
	failed bool
}

// New creates a panel. ctx is used for work started by debounced events.
func New(ctx context.Context, deps Deps) *Panel {
	cfg := deps.Config
	if cfg.TabDebounce == 0 {
		cfg.TabDebounce = DefaultTabDebounce
	}
	if cfg.SearchDebounce == 0 {
		cfg.SearchDebounce = DefaultSearchDebounce
	}
	deps.Config = cfg

	return &Panel{
		deps:           deps,
		organizer:      dashboard.NewOrganizer(cfg.Locale),
		baseCtx:        logging.WithComponent(ctx, "panel"),
		tabDebounce:    NewDebouncer(cfg.TabDebounce),
		searchDebounce: NewDebouncer(cfg.SearchDebounce),
		domain:         url.UnknownDomain,
	}
}

// Close stops pending debounced work.
func (p *Panel) Close() {
	p.tabDebounce.Stop()
	p.searchDebounce.Stop()
}

// Tab returns the tab the panel currently shows.
func (p *Panel) Tab() (*entity.Tab, string) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.tab, p.domain
}

// Failed reports whether the panel stopped after losing the browser.
func (p *Panel) Failed() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.failed
}

// OnTabChanged schedules a debounced refresh.
func (p *Panel) OnTabChanged() {
	p.tabDebounce.Call(func() {
		if res := p.Refresh(p.baseCtx); !res.Success {
			logging.FromContext(p.baseCtx).Debug().Str("error", res.Error).Msg("debounced refresh failed")
		}
	})
}

// CheckTab compares the browser's current tab with the displayed one and
// schedules a refresh when it changed.
func (p *Panel) CheckTab(ctx context.Context) bool {
	if p.Failed() {
		return false
	}
	tab, err := p.deps.Tabs.GetCurrentTab(ctx)
	if err != nil {
		p.fail(ctx, err)
		return false
	}

	p.mu.RLock()
	current := p.tab
	p.mu.RUnlock()

	if sameTab(current, tab) {
		return false
	}
	p.OnTabChanged()
	return true
}

// Refresh reloads the current tab's data and renders the dashboard.
// The refresh started last wins: results of an earlier one that finish
// late are dropped, whichever tab each of them saw.
func (p *Panel) Refresh(ctx context.Context) entity.OperationResult {
	if res, stop := p.guard(); stop {
		return res
	}
	id := p.deps.Refresh.ReserveRequest()
	log := logging.FromContext(ctx).With().Uint64("request_id", id).Logger()

	tab, err := p.deps.Tabs.GetCurrentTab(ctx)
	if err != nil {
		return p.fail(ctx, err)
	}
	domain := url.UnknownDomain
	if tab != nil {
		domain = url.DomainOf(tab.URL)
	}

	snap, applied := p.deps.Refresh.RefreshRequest(ctx, id, tab)
	if p.deps.Health != nil && p.deps.Health.Failed() {
		return p.fail(ctx, port.ErrCollaboratorUnavailable)
	}
	if !applied {
		log.Debug().Msg("refresh superseded, not rendering")
		return entity.OK()
	}

	p.mu.Lock()
	if id < p.shown {
		p.mu.Unlock()
		log.Debug().Uint64("shown", p.shown).Msg("refresh superseded, not rendering")
		return entity.OK()
	}
	p.tab, p.domain, p.shown = tab, domain, id
	p.mu.Unlock()

	return p.renderFor(ctx, tab, domain, snap)
}

// SetLocale switches the collation used for ordering and redraws.
func (p *Panel) SetLocale(ctx context.Context, locale string) entity.OperationResult {
	p.mu.Lock()
	p.organizer = dashboard.NewOrganizer(locale)
	p.mu.Unlock()
	return p.Rerender(ctx)
}

// Rerender draws the dashboard from the cached snapshot.
func (p *Panel) Rerender(ctx context.Context) entity.OperationResult {
	if res, stop := p.guard(); stop {
		return res
	}
	return p.render(ctx, p.deps.Refresh.Snapshot())
}

// OnSearchInput schedules a debounced search.
func (p *Panel) OnSearchInput(query string) {
	p.searchDebounce.Call(func() {
		p.RunSearch(p.baseCtx, query)
	})
}

// FlushSearch runs a scheduled search without waiting for the debounce delay.
func (p *Panel) FlushSearch() {
	p.searchDebounce.Flush()
}

// RunSearch searches the cached snapshot immediately.
func (p *Panel) RunSearch(ctx context.Context, query string) entity.OperationResult {
	if res, stop := p.guard(); stop {
		return res
	}
	_, domain := p.Tab()

	out, err := p.deps.Search.Search(ctx, query, p.deps.Refresh.Snapshot(), domain)
	if err != nil {
		return p.fail(ctx, err)
	}
	p.deps.Renderer.RenderSearch(SearchView{
		Query:     out.Query,
		Domain:    domain,
		Results:   out.Results,
		Truncated: out.Truncated,
	})
	return entity.OK()
}

// Pin pins a property of the current tab.
func (p *Panel) Pin(ctx context.Context, t entity.PropertyType, key, alias string) entity.OperationResult {
	if res, stop := p.guard(); stop {
		return res
	}
	tab, domain := p.Tab()

	input := usecase.PinInput{Type: t, Key: key, Domain: domain, Alias: alias}
	if tab != nil {
		input.URL = tab.URL
		input.TabID = tab.ID
	}
	res, err := p.deps.Pins.Pin(ctx, input)
	if err != nil {
		return p.fail(ctx, err)
	}
	if res.AlreadyPinned {
		p.deps.Renderer.ShowNotice(fmt.Sprintf("%s is already pinned", res.Property.DisplayName()))
	}
	return p.afterMutation(ctx)
}

// PinOutcome is the result of pinning a search result.
type PinOutcome struct {
	entity.OperationResult
	Property entity.PinnedProperty
	// AlreadyPinned is true when the pin existed and nothing changed.
	AlreadyPinned bool
}

// PinSearchResult pins a search result for the current domain. A non-empty
// alias names the new pin; an existing pin keeps its alias.
func (p *Panel) PinSearchResult(ctx context.Context, result dashboard.SearchResult, alias string) PinOutcome {
	if res, stop := p.guard(); stop {
		return PinOutcome{OperationResult: res}
	}
	tab, domain := p.Tab()

	res, err := p.deps.Search.PinFromResult(ctx, result, domain, alias, tab)
	if err != nil {
		return PinOutcome{OperationResult: p.fail(ctx, err)}
	}
	out := PinOutcome{Property: res.Property, AlreadyPinned: res.AlreadyPinned}
	if res.AlreadyPinned {
		p.deps.Renderer.ShowNotice(fmt.Sprintf("%s is already pinned", res.Property.DisplayName()))
	}
	out.OperationResult = p.afterMutation(ctx)
	return out
}

// UnpinAt removes the pin at a position of the persisted list.
func (p *Panel) UnpinAt(ctx context.Context, index int) entity.OperationResult {
	if res, stop := p.guard(); stop {
		return res
	}
	if err := p.deps.Pins.UnpinAt(ctx, index); err != nil {
		return p.fail(ctx, err)
	}
	return p.afterMutation(ctx)
}

// UnpinByKey removes a pin by identity.
func (p *Panel) UnpinByKey(ctx context.Context, id entity.PropertyIdentity) entity.OperationResult {
	if res, stop := p.guard(); stop {
		return res
	}
	if err := p.deps.Pins.UnpinByKey(ctx, id.Type, id.Key, id.Domain); err != nil {
		return p.fail(ctx, err)
	}
	return p.afterMutation(ctx)
}

// Rename changes a pin alias.
func (p *Panel) Rename(ctx context.Context, id entity.PropertyIdentity, alias string) entity.OperationResult {
	if res, stop := p.guard(); stop {
		return res
	}
	if err := p.deps.Pins.Rename(ctx, id, alias); err != nil {
		return p.fail(ctx, err)
	}
	return p.afterMutation(ctx)
}

// Reorder drops dragged before target. Only allowed in custom mode.
func (p *Panel) Reorder(ctx context.Context, dragged, target entity.PropertyIdentity) entity.OperationResult {
	if res, stop := p.guard(); stop {
		return res
	}
	settings, err := p.deps.Settings.Get(ctx)
	if err != nil {
		return p.fail(ctx, err)
	}
	if settings.OrganizationMode != entity.OrganizeCustom {
		return p.fail(ctx, ErrReorderRequiresCustomMode)
	}
	if _, err := p.deps.Pins.Reorder(ctx, dragged, target); err != nil {
		return p.fail(ctx, err)
	}
	return p.afterMutation(ctx)
}

// SetMode changes the organization mode.
func (p *Panel) SetMode(ctx context.Context, mode string) entity.OperationResult {
	if res, stop := p.guard(); stop {
		return res
	}
	if _, err := p.deps.Settings.SetOrganizationMode(ctx, mode); err != nil {
		return p.fail(ctx, err)
	}
	return p.afterMutation(ctx)
}

// ToggleTheme flips the theme.
func (p *Panel) ToggleTheme(ctx context.Context) entity.OperationResult {
	if res, stop := p.guard(); stop {
		return res
	}
	if _, err := p.deps.Settings.ToggleTheme(ctx); err != nil {
		return p.fail(ctx, err)
	}
	return p.afterMutation(ctx)
}

// SetCookie writes a cookie on the current tab.
func (p *Panel) SetCookie(ctx context.Context, in usecase.CookieInput) entity.OperationResult {
	if res, stop := p.guard(); stop {
		return res
	}
	tab, _ := p.Tab()
	if err := p.deps.Edit.SetCookie(ctx, tab, in); err != nil {
		return p.fail(ctx, err)
	}
	return p.afterMutation(ctx)
}

// DeleteCookie removes a cookie from the current tab.
func (p *Panel) DeleteCookie(ctx context.Context, name, domain, path string) entity.OperationResult {
	if res, stop := p.guard(); stop {
		return res
	}
	tab, _ := p.Tab()
	if err := p.deps.Edit.DeleteCookie(ctx, tab, name, domain, path); err != nil {
		return p.fail(ctx, err)
	}
	return p.afterMutation(ctx)
}

// SetStorageItem writes a storage item on the current tab.
func (p *Panel) SetStorageItem(ctx context.Context, t entity.PropertyType, key, value string) entity.OperationResult {
	if res, stop := p.guard(); stop {
		return res
	}
	tab, _ := p.Tab()
	if err := p.deps.Edit.SetStorageItem(ctx, tab, t, key, value); err != nil {
		return p.fail(ctx, err)
	}
	return p.afterMutation(ctx)
}

// RemoveStorageItem deletes a storage item on the current tab.
func (p *Panel) RemoveStorageItem(ctx context.Context, t entity.PropertyType, key string) entity.OperationResult {
	if res, stop := p.guard(); stop {
		return res
	}
	tab, _ := p.Tab()
	if err := p.deps.Edit.RemoveStorageItem(ctx, tab, t, key); err != nil {
		return p.fail(ctx, err)
	}
	return p.afterMutation(ctx)
}

func (p *Panel) afterMutation(ctx context.Context) entity.OperationResult {
	if p.deps.Health != nil && p.deps.Health.Failed() {
		return p.fail(ctx, port.ErrCollaboratorUnavailable)
	}
	return p.render(ctx, p.deps.Refresh.Snapshot())
}

// render draws snap against the displayed tab. A snapshot from a cycle
// whose tab is not committed yet is left to that cycle's Refresh.
func (p *Panel) render(ctx context.Context, snap entity.Snapshot) entity.OperationResult {
	p.mu.RLock()
	tab, domain, shown := p.tab, p.domain, p.shown
	p.mu.RUnlock()
	if snap.RequestID > shown {
		return entity.OK()
	}
	return p.renderFor(ctx, tab, domain, snap)
}

func (p *Panel) renderFor(ctx context.Context, tab *entity.Tab, domain string, snap entity.Snapshot) entity.OperationResult {
	pins, err := p.deps.Pins.ListAll(ctx)
	if err != nil {
		return p.fail(ctx, err)
	}
	settings, err := p.deps.Settings.Get(ctx)
	if err != nil {
		return p.fail(ctx, err)
	}

	records := dashboard.Reconcile(pins, domain, snap)
	p.mu.RLock()
	organizer := p.organizer
	p.mu.RUnlock()
	records = organizer.Organize(records, settings.OrganizationMode)

	p.deps.Renderer.RenderDashboard(DashboardView{
		Tab:       tab,
		Domain:    domain,
		Records:   records,
		Mode:      settings.OrganizationMode,
		Theme:     settings.Theme,
		RequestID: snap.RequestID,
	})
	return entity.OK()
}

func (p *Panel) guard() (entity.OperationResult, bool) {
	if p.Failed() {
		return entity.Failed(port.ErrCollaboratorUnavailable), true
	}
	return entity.OperationResult{}, false
}

// fail reports err to the user and converts it to the failure shape.
// Losing the browser switches the panel into its failed state.
func (p *Panel) fail(ctx context.Context, err error) entity.OperationResult {
	log := logging.FromContext(ctx)

	var verr *usecase.ValidationError
	switch {
	case errors.Is(err, port.ErrCollaboratorUnavailable):
		p.mu.Lock()
		first := !p.failed
		p.failed = true
		p.mu.Unlock()
		if first {
			log.Error().Err(err).Msg("browser unavailable, panel stopped")
			p.tabDebounce.Stop()
			p.searchDebounce.Stop()
			p.deps.Renderer.ShowBanner(unavailableBanner)
		}
	case errors.Is(err, usecase.ErrPinNotFound),
		errors.Is(err, usecase.ErrCookieNotFound),
		errors.Is(err, usecase.ErrUnsupportedPage),
		errors.Is(err, usecase.ErrNoActiveTab),
		errors.Is(err, usecase.ErrInvalidMode),
		errors.Is(err, usecase.ErrInvalidTheme),
		errors.Is(err, ErrReorderRequiresCustomMode),
		errors.As(err, &verr):
		log.Debug().Err(err).Msg("operation rejected")
		p.deps.Renderer.ShowNotice(err.Error())
	default:
		log.Error().Err(err).Msg("operation failed")
		p.deps.Renderer.ShowNotice(err.Error())
	}
	return entity.Failed(err)
}

func sameTab(a, b *entity.Tab) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID && a.URL == b.URL
}
