// Package cli wires the pinboard use cases for the command line and TUI.
package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/pinboard/internal/app/panel"
	"github.com/bnema/pinboard/internal/application/usecase"
	"github.com/bnema/pinboard/internal/cli/styles"
	"github.com/bnema/pinboard/internal/domain/build"
	"github.com/bnema/pinboard/internal/domain/dashboard"
	"github.com/bnema/pinboard/internal/domain/repository"
	"github.com/bnema/pinboard/internal/infrastructure/browser"
	"github.com/bnema/pinboard/internal/infrastructure/config"
	"github.com/bnema/pinboard/internal/infrastructure/persistence/memory"
	"github.com/bnema/pinboard/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/pinboard/internal/logging"
)

// AppOptions are the global command line overrides.
type AppOptions struct {
	// ConfigFile replaces the XDG config file.
	ConfigFile string
	// Ephemeral keeps pins in memory for the lifetime of the process.
	Ephemeral bool
	// ControlURL overrides browser.control_url.
	ControlURL string
	// Target attaches to one DevTools target id.
	Target string
	// Headless overrides browser.headless for launched browsers.
	Headless bool
	// Interactive keeps stderr free of log output while the TUI owns the
	// terminal.
	Interactive bool
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	Renderer      *styles.DashboardRenderer
	BuildInfo     build.Info

	store repository.BlobStore
	db    *sql.DB

	// Use cases that only need the store
	PinsUC     *usecase.ManagePinsUseCase
	SettingsUC *usecase.ManageSettingsUseCase

	opts       AppOptions
	logCleanup func()

	browserOnce sync.Once
	browserErr  error
	host        *browser.Host
	guarded     *browser.GuardedHost

	ctx context.Context
}

// NewApp loads configuration, opens the store and builds the store-only
// use cases. The browser is attached lazily by Browser.
func NewApp(opts AppOptions) (*App, error) {
	mgr, err := newConfigManager(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()
	if opts.ControlURL != "" {
		cfg.Browser.ControlURL = opts.ControlURL
	}
	if opts.Headless {
		cfg.Browser.Headless = true
	}

	logger, cleanup := newLogger(cfg, opts.Interactive)
	ctx := logging.WithContext(context.Background(), logger)

	app := &App{
		Config:        cfg,
		ConfigManager: mgr,
		opts:          opts,
		logCleanup:    cleanup,
		ctx:           ctx,
	}

	if opts.Ephemeral {
		app.store = memory.NewBlobStore()
		logger.Debug().Msg("using in-memory store")
	} else {
		db, err := sqlite.NewConnection(ctx, cfg.Database.Path)
		if err != nil {
			_ = app.Close()
			return nil, fmt.Errorf("open database: %w", err)
		}
		app.db = db
		app.store = sqlite.NewBlobStore(db)
	}

	app.PinsUC = usecase.NewManagePinsUseCase(app.store)
	app.SettingsUC = usecase.NewManageSettingsUseCase(app.store).WithInitialTheme(cfg.Appearance.Theme)

	settings, err := app.SettingsUC.Get(ctx)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("load dashboard settings: %w", err)
	}
	app.SetTheme(styles.NewTheme(settings.Theme))

	return app, nil
}

// newLogger logs to the rotating file when enabled. One-shot commands also
// print warnings to stderr; the TUI never does.
func newLogger(cfg *config.Config, interactive bool) (zerolog.Logger, func()) {
	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
	logCfg.Format = cfg.Logging.Format
	logCfg.TimeFormat = "15:04:05"

	consoleLevel := logging.ConsoleLevel(logCfg.Level)
	if interactive {
		consoleLevel = zerolog.Disabled
	}

	if !cfg.Logging.EnableFileLog {
		if interactive {
			return zerolog.Nop(), func() {}
		}
		logCfg.Level = consoleLevel
		return logging.New(logCfg), func() {}
	}

	logger, cleanup, err := logging.NewWithFile(logCfg, logging.FileConfig{
		Dir:        cfg.Logging.LogDir,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAge,
		Compress:   cfg.Logging.Compress,
	}, consoleLevel)
	if err != nil {
		if !interactive {
			fmt.Fprintf(os.Stderr, "pinboard: file logging disabled: %v\n", err)
		}
		logCfg.Level = consoleLevel
		return logging.New(logCfg), func() {}
	}
	return logger, cleanup
}

func newConfigManager(path string) (*config.Manager, error) {
	if path != "" {
		return config.NewManagerForFile(path)
	}
	return config.NewManager()
}

// SetTheme replaces the theme used by the renderers.
func (a *App) SetTheme(theme *styles.Theme) {
	a.Theme = theme
	a.Renderer = styles.NewDashboardRenderer(theme)
}

// Browser attaches to the browser on first use.
func (a *App) Browser() (*browser.GuardedHost, error) {
	a.browserOnce.Do(func() {
		host, err := browser.Open(a.ctx, browser.Options{
			ControlURL: a.Config.Browser.ControlURL,
			Headless:   a.Config.Browser.Headless,
			Bin:        a.Config.Browser.Bin,
			TargetID:   a.opts.Target,
		})
		if err != nil {
			a.browserErr = err
			return
		}
		a.host = host
		a.guarded = browser.NewGuardedHost(host, a.Config.RetryPolicy())
	})
	return a.guarded, a.browserErr
}

// NewPanel builds a dashboard controller rendering to r.
func (a *App) NewPanel(r panel.Renderer) (*panel.Panel, error) {
	host, err := a.Browser()
	if err != nil {
		return nil, fmt.Errorf("attach browser: %w", err)
	}

	refresh := usecase.NewRefreshLiveDataUseCase(host, host, host, a.Config.RefreshTimeout())
	search := usecase.NewSearchPropertiesUseCase(a.PinsUC, dashboard.SearchOptions{
		MinQueryLength: a.Config.Search.MinQueryLength,
		MaxResults:     a.Config.Search.MaxResults,
	})
	edit := usecase.NewEditLiveDataUseCase(host, host, refresh)

	return panel.New(a.ctx, panel.Deps{
		Pins:     a.PinsUC,
		Settings: a.SettingsUC,
		Refresh:  refresh,
		Search:   search,
		Edit:     edit,
		Tabs:     host,
		Renderer: r,
		Health:   host,
		Config: panel.Config{
			TabDebounce:    a.Config.TabDebounce(),
			SearchDebounce: a.Config.SearchDebounce(),
			Locale:         a.Config.Organize.Locale,
		},
	}), nil
}

// WatchConfig follows edits of the config file and hands the settings a
// running panel can change to p. Other keys apply on the next start.
func (a *App) WatchConfig(p *panel.Panel) error {
	locale := a.Config.Organize.Locale
	a.ConfigManager.OnConfigChange(func(cfg *config.Config) {
		log := logging.FromContext(a.ctx)
		if cfg.Organize.Locale == locale {
			log.Debug().Msg("config reloaded")
			return
		}
		locale = cfg.Organize.Locale
		log.Info().Str("locale", locale).Msg("collation locale changed")
		p.SetLocale(a.ctx, locale)
	})
	return a.ConfigManager.Watch(a.ctx)
}

// Close releases all resources.
func (a *App) Close() error {
	var errs []error
	if a.host != nil {
		if err := a.host.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close browser: %w", err))
		}
		a.host = nil
	}
	if a.db != nil {
		if err := sqlite.Close(a.db); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
		a.db = nil
	}
	if a.logCleanup != nil {
		a.logCleanup()
		a.logCleanup = nil
	}
	return errors.Join(errs...)
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
