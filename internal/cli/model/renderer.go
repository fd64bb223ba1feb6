package model

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/pinboard/internal/app/panel"
)

// ProgramRenderer forwards panel render calls to a running Bubble Tea
// program. Calls made before Attach are dropped.
type ProgramRenderer struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

var _ panel.Renderer = (*ProgramRenderer)(nil)

// NewProgramRenderer creates a detached renderer.
func NewProgramRenderer() *ProgramRenderer {
	return &ProgramRenderer{}
}

// Attach routes messages to send, usually (*tea.Program).Send.
func (r *ProgramRenderer) Attach(send func(tea.Msg)) {
	r.mu.Lock()
	r.send = send
	r.mu.Unlock()
}

func (r *ProgramRenderer) dispatch(msg tea.Msg) {
	r.mu.RLock()
	send := r.send
	r.mu.RUnlock()
	if send != nil {
		send(msg)
	}
}

// RenderDashboard implements panel.Renderer.
func (r *ProgramRenderer) RenderDashboard(view panel.DashboardView) {
	r.dispatch(DashboardMsg{View: view})
}

// RenderSearch implements panel.Renderer.
func (r *ProgramRenderer) RenderSearch(view panel.SearchView) {
	r.dispatch(SearchMsg{View: view})
}

// ShowBanner implements panel.Renderer.
func (r *ProgramRenderer) ShowBanner(msg string) {
	r.dispatch(BannerMsg{Text: msg})
}

// ShowNotice implements panel.Renderer.
func (r *ProgramRenderer) ShowNotice(msg string) {
	r.dispatch(NoticeMsg{Text: msg})
}
