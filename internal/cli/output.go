package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/pinboard/internal/app/panel"
	"github.com/bnema/pinboard/internal/cli/styles"
	"github.com/bnema/pinboard/internal/domain/dashboard"
)

// OutputRenderer implements panel.Renderer for one-shot commands. It keeps
// the last views so commands can act on them, and prints only while echo
// is enabled.
type OutputRenderer struct {
	mu       sync.Mutex
	out      io.Writer
	errOut   io.Writer
	renderer *styles.DashboardRenderer
	json     bool
	echo     bool

	dashboard *panel.DashboardView
	search    *panel.SearchView
	banner    string
}

var _ panel.Renderer = (*OutputRenderer)(nil)

// NewOutputRenderer creates a renderer writing views to out and messages
// to errOut.
func NewOutputRenderer(out, errOut io.Writer, r *styles.DashboardRenderer) *OutputRenderer {
	return &OutputRenderer{out: out, errOut: errOut, renderer: r}
}

// SetJSON switches view output to indented JSON.
func (o *OutputRenderer) SetJSON(enabled bool) {
	o.mu.Lock()
	o.json = enabled
	o.mu.Unlock()
}

// SetEcho enables or disables printing of views.
func (o *OutputRenderer) SetEcho(enabled bool) {
	o.mu.Lock()
	o.echo = enabled
	o.mu.Unlock()
}

// SetRenderer swaps the styled renderer, e.g. after a theme change.
func (o *OutputRenderer) SetRenderer(r *styles.DashboardRenderer) {
	o.mu.Lock()
	o.renderer = r
	o.mu.Unlock()
}

// RenderDashboard implements panel.Renderer.
func (o *OutputRenderer) RenderDashboard(view panel.DashboardView) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.dashboard = &view
	if !o.echo {
		return
	}
	if o.json {
		o.writeJSON(dashboardJSON(view))
		return
	}
	fmt.Fprint(o.out, o.renderer.RenderDashboard(view))
}

// RenderSearch implements panel.Renderer.
func (o *OutputRenderer) RenderSearch(view panel.SearchView) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.search = &view
	if !o.echo {
		return
	}
	if o.json {
		o.writeJSON(searchJSON(view))
		return
	}
	fmt.Fprint(o.out, o.renderer.RenderSearch(view))
}

// ShowBanner implements panel.Renderer.
func (o *OutputRenderer) ShowBanner(msg string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if msg == o.banner {
		return
	}
	o.banner = msg
	fmt.Fprint(o.errOut, o.renderer.RenderBanner(msg))
}

// ShowNotice implements panel.Renderer.
func (o *OutputRenderer) ShowNotice(msg string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprint(o.errOut, o.renderer.RenderNotice(msg))
}

// LastDashboard returns the most recent dashboard view, if any.
func (o *OutputRenderer) LastDashboard() (panel.DashboardView, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.dashboard == nil {
		return panel.DashboardView{}, false
	}
	return *o.dashboard, true
}

// LastSearch returns the most recent search view, if any.
func (o *OutputRenderer) LastSearch() (panel.SearchView, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.search == nil {
		return panel.SearchView{}, false
	}
	return *o.search, true
}

func (o *OutputRenderer) writeJSON(v any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprint(o.errOut, o.renderer.RenderError(err))
	}
}

// RecordJSON is the JSON shape of a dashboard record.
type RecordJSON struct {
	Index  int    `json:"index"`
	Type   string `json:"type"`
	Key    string `json:"key"`
	Alias  string `json:"alias,omitempty"`
	Domain string `json:"domain,omitempty"`
	Found  bool   `json:"found"`
	Value  any    `json:"value,omitempty"`
}

// DashboardJSON is the JSON shape of a dashboard view.
type DashboardJSON struct {
	URL     string       `json:"url,omitempty"`
	Domain  string       `json:"domain"`
	Mode    string       `json:"mode"`
	Theme   string       `json:"theme"`
	Records []RecordJSON `json:"records"`
}

// SearchResultJSON is the JSON shape of a search result.
type SearchResultJSON struct {
	Type   string `json:"type"`
	Key    string `json:"key"`
	Value  any    `json:"value"`
	Pinned bool   `json:"pinned"`
}

// SearchJSON is the JSON shape of a search view.
type SearchJSON struct {
	Query     string             `json:"query"`
	Domain    string             `json:"domain"`
	Results   []SearchResultJSON `json:"results"`
	Truncated bool               `json:"truncated"`
}

func dashboardJSON(v panel.DashboardView) DashboardJSON {
	out := DashboardJSON{
		Domain:  v.Domain,
		Mode:    string(v.Mode),
		Theme:   string(v.Theme),
		Records: make([]RecordJSON, 0, len(v.Records)),
	}
	if v.Tab != nil {
		out.URL = v.Tab.URL
	}
	for _, r := range v.Records {
		out.Records = append(out.Records, recordJSON(r))
	}
	return out
}

func recordJSON(r dashboard.ReconciledRecord) RecordJSON {
	rec := RecordJSON{
		Index:  r.Index,
		Type:   string(r.Property.Type),
		Key:    r.Property.Key,
		Alias:  r.Property.Alias,
		Domain: r.Property.Domain,
		Found:  r.Found,
	}
	if r.Found {
		rec.Value = r.Raw
	}
	return rec
}

func searchJSON(v panel.SearchView) SearchJSON {
	out := SearchJSON{
		Query:     v.Query,
		Domain:    v.Domain,
		Results:   make([]SearchResultJSON, 0, len(v.Results)),
		Truncated: v.Truncated,
	}
	for _, r := range v.Results {
		out.Results = append(out.Results, SearchResultJSON{
			Type:   string(r.Type),
			Key:    r.Key,
			Value:  r.Value,
			Pinned: r.Pinned,
		})
	}
	return out
}
