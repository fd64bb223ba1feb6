package config

import (
	"time"

	"github.com/bnema/pinboard/internal/application/port"
)

// Config represents the complete configuration for pinboard.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging"`
	// Browser selects the Chromium instance the panel attaches to.
	Browser BrowserConfig `mapstructure:"browser" yaml:"browser" toml:"browser"`
	// Refresh controls live data loading and event debouncing.
	Refresh RefreshConfig `mapstructure:"refresh" yaml:"refresh" toml:"refresh"`
	// Retry controls how transient DevTools failures are retried.
	Retry  RetryConfig  `mapstructure:"retry" yaml:"retry" toml:"retry"`
	Search SearchConfig `mapstructure:"search" yaml:"search" toml:"search"`
	// Organize controls alphabetical ordering.
	Organize   OrganizeConfig   `mapstructure:"organize" yaml:"organize" toml:"organize"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path" toml:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" jsonschema:"enum=json,enum=console"`

	// File output. The TUI only ever logs to the file.
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" jsonschema:"minimum=0"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" jsonschema:"minimum=0"`
	// MaxAge is in days.
	MaxAge   int  `mapstructure:"max_age" yaml:"max_age" toml:"max_age" jsonschema:"minimum=0"`
	Compress bool `mapstructure:"compress" yaml:"compress" toml:"compress"`
}

// BrowserConfig describes how to reach the inspected browser.
type BrowserConfig struct {
	// ControlURL is a DevTools websocket URL or a host:port. Empty launches a browser.
	ControlURL string `mapstructure:"control_url" yaml:"control_url" toml:"control_url"`
	// Headless only applies when pinboard launches the browser itself.
	Headless bool `mapstructure:"headless" yaml:"headless" toml:"headless"`
	// Bin overrides the browser binary used for launching.
	Bin string `mapstructure:"bin" yaml:"bin" toml:"bin"`
}

// RefreshConfig holds live data timing knobs, all in milliseconds.
type RefreshConfig struct {
	TimeoutMs        int `mapstructure:"timeout_ms" yaml:"timeout_ms" toml:"timeout_ms" jsonschema:"minimum=1"`
	TabDebounceMs    int `mapstructure:"tab_debounce_ms" yaml:"tab_debounce_ms" toml:"tab_debounce_ms" jsonschema:"minimum=0"`
	SearchDebounceMs int `mapstructure:"search_debounce_ms" yaml:"search_debounce_ms" toml:"search_debounce_ms" jsonschema:"minimum=0"`
}

// RetryConfig holds retry policy settings.
type RetryConfig struct {
	MaxAttempts int `mapstructure:"max_attempts" yaml:"max_attempts" toml:"max_attempts" jsonschema:"minimum=1"`
	BackoffMs   int `mapstructure:"backoff_ms" yaml:"backoff_ms" toml:"backoff_ms" jsonschema:"minimum=0"`
}

// SearchConfig holds search engine settings.
type SearchConfig struct {
	MinQueryLength int `mapstructure:"min_query_length" yaml:"min_query_length" toml:"min_query_length" jsonschema:"minimum=1"`
	// MaxResults caps the result list; 0 disables the cap.
	MaxResults int `mapstructure:"max_results" yaml:"max_results" toml:"max_results" jsonschema:"minimum=0"`
}

// OrganizeConfig holds organizer settings.
type OrganizeConfig struct {
	// Locale is a BCP 47 tag used for alphabetical collation.
	Locale string `mapstructure:"locale" yaml:"locale" toml:"locale"`
}

// AppearanceConfig holds appearance settings.
type AppearanceConfig struct {
	// Theme is applied when the store has no saved theme yet.
	Theme string `mapstructure:"theme" yaml:"theme" toml:"theme" jsonschema:"enum=light,enum=dark"`
}

// RefreshTimeout returns the per-source timeout.
func (c *Config) RefreshTimeout() time.Duration {
	return time.Duration(c.Refresh.TimeoutMs) * time.Millisecond
}

// TabDebounce returns the tab-change debounce delay.
func (c *Config) TabDebounce() time.Duration {
	return time.Duration(c.Refresh.TabDebounceMs) * time.Millisecond
}

// SearchDebounce returns the search input debounce delay.
func (c *Config) SearchDebounce() time.Duration {
	return time.Duration(c.Refresh.SearchDebounceMs) * time.Millisecond
}

// RetryPolicy converts the retry section to a port.RetryPolicy.
func (c *Config) RetryPolicy() port.RetryPolicy {
	return port.RetryPolicy{
		MaxAttempts: c.Retry.MaxAttempts,
		Backoff:     port.LinearBackoff(time.Duration(c.Retry.BackoffMs) * time.Millisecond),
	}
}
