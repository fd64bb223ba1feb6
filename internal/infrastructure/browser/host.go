// Package browser attaches to a Chromium-family browser over the DevTools
// protocol and exposes the active tab's storage and cookies.
package browser

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/bnema/pinboard/internal/application/port"
	"github.com/bnema/pinboard/internal/domain/entity"
	"github.com/bnema/pinboard/internal/logging"
)

// Options configures how the host reaches the browser.
type Options struct {
	// ControlURL is a DevTools endpoint (ws://..., http://host:port or a
	// bare port). Empty launches a local browser.
	ControlURL string
	// Headless applies to launched browsers only.
	Headless bool
	// Bin is the browser binary for launched browsers. Empty lets the
	// launcher find or download one.
	Bin string
	// TargetID pins the host to one tab instead of the most recent page.
	TargetID string
}

// Host implements port.BrowserHost with go-rod.
type Host struct {
	mu       sync.RWMutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	targetID string
	// disconnect drops the DevTools websocket.
	disconnect context.CancelFunc
}

var _ port.BrowserHost = (*Host)(nil)

// Open connects to an existing browser or launches a new one.
func Open(ctx context.Context, opts Options) (*Host, error) {
	log := logging.FromContext(ctx)

	h := &Host{targetID: opts.TargetID}

	controlURL := opts.ControlURL
	if controlURL != "" {
		resolved, err := launcher.ResolveURL(controlURL)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve control url %q: %w", controlURL, err)
		}
		controlURL = resolved
		log.Debug().Str("control_url", controlURL).Msg("connecting to running browser")
	} else {
		l := launcher.New().Headless(opts.Headless)
		if opts.Bin != "" {
			l = l.Bin(opts.Bin)
		}
		u, err := l.Launch()
		if err != nil {
			return nil, fmt.Errorf("failed to launch browser: %w", err)
		}
		h.launcher = l
		controlURL = u
		log.Debug().Str("control_url", controlURL).Bool("headless", opts.Headless).Msg("launched browser")
	}

	connCtx, cancel := context.WithCancel(context.Background())
	b := rod.New().Context(connCtx).ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		cancel()
		if h.launcher != nil {
			h.launcher.Cleanup()
		}
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}
	h.browser = b
	h.disconnect = cancel

	log.Info().Str("control_url", controlURL).Msg("browser attached")
	return h, nil
}

// Close detaches from the browser and stops it if it was launched here.
// A browser we only attached to keeps running.
func (h *Host) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var err error
	if h.browser != nil && h.launcher != nil {
		err = h.browser.Close()
	}
	h.browser = nil
	if h.disconnect != nil {
		h.disconnect()
		h.disconnect = nil
	}
	if h.launcher != nil {
		h.launcher.Cleanup()
		h.launcher = nil
	}
	return err
}

// GetCurrentTab returns the pinned tab when it still exists, otherwise the
// first ordinary page target.
func (h *Host) GetCurrentTab(ctx context.Context) (*entity.Tab, error) {
	b, err := h.conn()
	if err != nil {
		return nil, err
	}

	pages, err := b.Context(ctx).Pages()
	if err != nil {
		return nil, classify(fmt.Errorf("failed to list pages: %w", err))
	}

	h.mu.RLock()
	want := h.targetID
	h.mu.RUnlock()

	var first *entity.Tab
	for _, p := range pages {
		info, err := p.Context(ctx).Info()
		if err != nil {
			logging.FromContext(ctx).Debug().Err(err).Msg("skipping page without target info")
			continue
		}
		if string(info.Type) != "page" || isInternalTarget(info.URL) {
			continue
		}
		tab := &entity.Tab{ID: string(info.TargetID), URL: info.URL, Title: info.Title}
		if want != "" && tab.ID == want {
			return tab, nil
		}
		if first == nil {
			first = tab
		}
	}
	return first, nil
}

func (h *Host) conn() (*rod.Browser, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.browser == nil {
		return nil, port.ErrCollaboratorUnavailable
	}
	return h.browser, nil
}

func (h *Host) page(ctx context.Context, tab *entity.Tab) (*rod.Page, error) {
	if tab == nil {
		return nil, fmt.Errorf("no tab selected")
	}
	b, err := h.conn()
	if err != nil {
		return nil, err
	}
	p, err := b.PageFromTarget(proto.TargetTargetID(tab.ID))
	if err != nil {
		return nil, classify(fmt.Errorf("failed to attach to tab %s: %w", tab.ID, err))
	}
	return p.Context(ctx), nil
}

// isInternalTarget filters DevTools windows and extension pages out of
// tab selection.
func isInternalTarget(rawURL string) bool {
	for _, prefix := range []string{"devtools://", "chrome-extension://", "moz-extension://"} {
		if strings.HasPrefix(rawURL, prefix) {
			return true
		}
	}
	return false
}
