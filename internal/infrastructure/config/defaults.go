package config

// Default configuration constants
const (
	// Logging defaults
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
	defaultLogSizeMB = 10
	defaultLogBackup = 3
	defaultLogMaxAge = 7 // days

	// Refresh defaults
	defaultRefreshTimeoutMs = 5000 // per source
	defaultTabDebounceMs    = 300
	defaultSearchDebounceMs = 300

	// Retry defaults
	defaultRetryMaxAttempts = 3
	defaultRetryBackoffMs   = 100

	// Search defaults
	defaultMinQueryLength = 2
	defaultMaxResults     = 200

	defaultLocale = "en"
	defaultTheme  = "dark"
)

// DefaultConfig returns the default configuration values for pinboard.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			// Path is set dynamically in config.Load()
		},
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			EnableFileLog: true,
			MaxSizeMB:     defaultLogSizeMB,
			MaxBackups:    defaultLogBackup,
			MaxAge:        defaultLogMaxAge,
			Compress:      true,
			// LogDir is set dynamically in config.Load()
		},
		Browser: BrowserConfig{
			Headless: false,
		},
		Refresh: RefreshConfig{
			TimeoutMs:        defaultRefreshTimeoutMs,
			TabDebounceMs:    defaultTabDebounceMs,
			SearchDebounceMs: defaultSearchDebounceMs,
		},
		Retry: RetryConfig{
			MaxAttempts: defaultRetryMaxAttempts,
			BackoffMs:   defaultRetryBackoffMs,
		},
		Search: SearchConfig{
			MinQueryLength: defaultMinQueryLength,
			MaxResults:     defaultMaxResults,
		},
		Organize: OrganizeConfig{
			Locale: defaultLocale,
		},
		Appearance: AppearanceConfig{
			Theme: defaultTheme,
		},
	}
}
