package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// envPrefix scopes environment overrides: PINBOARD_SEARCH_MAX_RESULTS and
// so on.
const envPrefix = "PINBOARD"

// envAliases are short variable names accepted next to the derived ones.
var envAliases = map[string]string{
	"logging.level":       "PINBOARD_LOG_LEVEL",
	"logging.format":      "PINBOARD_LOG_FORMAT",
	"browser.control_url": "PINBOARD_CONTROL_URL",
}

// Manager owns the loaded configuration and keeps it in sync with the
// file on disk.
type Manager struct {
	config           *Config
	viper            *viper.Viper
	mu               sync.RWMutex
	callbacks        []func(*Config)
	watching         bool
	pendingSelfWrite bool
	// explicit is true when the file path was given by the caller.
	explicit bool
	log      *zerolog.Logger
}

// NewManager creates a configuration manager reading
// $XDG_CONFIG_HOME/pinboard/config.toml.
func NewManager() (*Manager, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config directory (is HOME or XDG_CONFIG_HOME set?): %w", err)
	}
	v := viper.New()
	v.SetConfigName(strings.TrimSuffix(configName, filepath.Ext(configName)))
	v.AddConfigPath(dir)
	return newManager(v, false)
}

// NewManagerForFile creates a manager bound to an explicit config file.
func NewManagerForFile(path string) (*Manager, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return newManager(v, true)
}

func newManager(v *viper.Viper, explicit bool) (*Manager, error) {
	v.SetConfigType("toml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envAliases {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}
	return &Manager{viper: v, explicit: explicit}, nil
}

// Load reads the file (creating it with defaults when missing), applies
// environment overrides and validates the result.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.explicit {
		if err := EnsureDirectories(); err != nil {
			return fmt.Errorf("create pinboard directories: %w", err)
		}
	}
	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}
	return m.reloadFromViper()
}

// reloadFromViper rebuilds m.config from the current viper state.
func (m *Manager) reloadFromViper() error {
	cfg, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensureRuntimePaths(cfg); err != nil {
		return err
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	m.config = cfg
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil:
		return nil
	case !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("read %s (must be valid TOML): %w", m.configPath(), err)
	}

	path, err := m.createDefaultConfig()
	if err != nil {
		return fmt.Errorf("create default config at %s: %w", path, err)
	}
	m.viper.SetConfigFile(path)
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("read freshly written %s: %w", path, err)
	}
	return nil
}

// configPath is the file in use, or the default location before any read.
func (m *Manager) configPath() string {
	if path := m.viper.ConfigFileUsed(); path != "" {
		return path
	}
	path, _ := GetConfigFile()
	return path
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode %s (check value types): %w", m.configPath(), err)
	}
	return cfg, nil
}

// ensureRuntimePaths fills the database path and log directory when the
// file leaves them empty.
func ensureRuntimePaths(cfg *Config) error {
	if cfg.Database.Path == "" {
		path, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		cfg.Database.Path = path
	}
	if cfg.Logging.LogDir == "" {
		dir, err := GetLogDir()
		if err != nil {
			return fmt.Errorf("resolve log directory: %w", err)
		}
		cfg.Logging.LogDir = dir
	}
	return nil
}

func normalizeConfig(cfg *Config) {
	lowerOr := func(s, fallback string) string {
		if s = strings.ToLower(strings.TrimSpace(s)); s == "" {
			return fallback
		}
		return s
	}
	cfg.Logging.Level = lowerOr(cfg.Logging.Level, defaultLogLevel)
	cfg.Logging.Format = lowerOr(cfg.Logging.Format, defaultLogFormat)
	cfg.Logging.LogDir = strings.TrimSpace(cfg.Logging.LogDir)
	cfg.Browser.ControlURL = strings.TrimSpace(cfg.Browser.ControlURL)
	cfg.Browser.Bin = strings.TrimSpace(cfg.Browser.Bin)
	if cfg.Organize.Locale = strings.TrimSpace(cfg.Organize.Locale); cfg.Organize.Locale == "" {
		cfg.Organize.Locale = defaultLocale
	}
	// Unknown themes are left for validation to report.
	if theme := lowerOr(cfg.Appearance.Theme, "dark"); theme == "light" || theme == "dark" {
		cfg.Appearance.Theme = theme
	}
}

// Get returns a copy of the current configuration, or the defaults before
// Load.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	cfg := *m.config
	return &cfg
}

// Set updates one key, validates the result and writes the file. The
// previous value is restored when anything fails.
func (m *Manager) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !slices.Contains(Keys(), key) {
		return fmt.Errorf("unknown config key %q", key)
	}

	previous := m.viper.Get(key)
	m.viper.Set(key, value)
	err := func() error {
		cfg, err := m.unmarshalConfig()
		if err != nil {
			return err
		}
		normalizeConfig(cfg)
		if err := validateConfig(cfg); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		return m.saveLocked(cfg)
	}()
	if err != nil {
		m.viper.Set(key, previous)
	}
	return err
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveLocked(cfg)
}

func (m *Manager) saveLocked(cfg *Config) error {
	if err := WriteConfigOrdered(cfg, m.configPath()); err != nil {
		return err
	}
	// The watcher will see our own write; it must not clobber m.config.
	m.pendingSelfWrite = m.watching

	saved := *cfg
	if err := ensureRuntimePaths(&saved); err != nil {
		return err
	}
	m.config = &saved
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults and, next to them, the JSON
// schema editors can validate against.
func (m *Manager) createDefaultConfig() (string, error) {
	path := m.configPath()
	if path == "" {
		return "", errors.New("no config location")
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return path, err
	}
	if err := WriteConfigOrdered(DefaultConfig(), path); err != nil {
		return path, err
	}
	fmt.Fprintf(os.Stderr, "Created default configuration file: %s\n", path)

	return path, WriteSchemaFile(filepath.Join(filepath.Dir(path), schemaName))
}

// setting is one settable key and its default.
type setting struct {
	key   string
	value any
}

// settings lists every key in file order. database.path and logging.log_dir
// default to empty and are resolved per user at load time.
func settings(d *Config) []setting {
	return []setting{
		{"database.path", d.Database.Path},
		{"logging.level", d.Logging.Level},
		{"logging.format", d.Logging.Format},
		{"logging.log_dir", d.Logging.LogDir},
		{"logging.enable_file_log", d.Logging.EnableFileLog},
		{"logging.max_size_mb", d.Logging.MaxSizeMB},
		{"logging.max_backups", d.Logging.MaxBackups},
		{"logging.max_age", d.Logging.MaxAge},
		{"logging.compress", d.Logging.Compress},
		{"browser.control_url", d.Browser.ControlURL},
		{"browser.headless", d.Browser.Headless},
		{"browser.bin", d.Browser.Bin},
		{"refresh.timeout_ms", d.Refresh.TimeoutMs},
		{"refresh.tab_debounce_ms", d.Refresh.TabDebounceMs},
		{"refresh.search_debounce_ms", d.Refresh.SearchDebounceMs},
		{"retry.max_attempts", d.Retry.MaxAttempts},
		{"retry.backoff_ms", d.Retry.BackoffMs},
		{"search.min_query_length", d.Search.MinQueryLength},
		{"search.max_results", d.Search.MaxResults},
		{"organize.locale", d.Organize.Locale},
		{"appearance.theme", d.Appearance.Theme},
	}
}

func (m *Manager) setDefaults() {
	for _, s := range settings(DefaultConfig()) {
		m.viper.SetDefault(s.key, s.value)
	}
}

// Keys lists every settable configuration key.
func Keys() []string {
	all := settings(DefaultConfig())
	keys := make([]string, len(all))
	for i, s := range all {
		keys[i] = s.key
	}
	return keys
}
