package config

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateBrowser(config)...)
	validationErrors = append(validationErrors, validateRefresh(config)...)
	validationErrors = append(validationErrors, validateRetry(config)...)
	validationErrors = append(validationErrors, validateSearch(config)...)
	validationErrors = append(validationErrors, validateOrganize(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error, disabled (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "json", "console":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: json, console (got: %s)",
			config.Logging.Format,
		))
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	return validationErrors
}

func validateBrowser(config *Config) []string {
	raw := config.Browser.ControlURL
	if raw == "" || !strings.Contains(raw, "://") {
		// empty launches a browser; host:port is resolved at connect time
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return []string{fmt.Sprintf("browser.control_url is not a valid URL: %v", err)}
	}
	switch u.Scheme {
	case "ws", "wss", "http", "https":
		return nil
	}
	return []string{fmt.Sprintf("browser.control_url must use ws, wss, http or https (got: %s)", u.Scheme)}
}

func validateRefresh(config *Config) []string {
	var validationErrors []string
	if config.Refresh.TimeoutMs < 1 {
		validationErrors = append(validationErrors, "refresh.timeout_ms must be at least 1")
	}
	if config.Refresh.TabDebounceMs < 0 {
		validationErrors = append(validationErrors, "refresh.tab_debounce_ms must be non-negative")
	}
	if config.Refresh.SearchDebounceMs < 0 {
		validationErrors = append(validationErrors, "refresh.search_debounce_ms must be non-negative")
	}
	return validationErrors
}

func validateRetry(config *Config) []string {
	var validationErrors []string
	if config.Retry.MaxAttempts < 1 || config.Retry.MaxAttempts > 10 {
		validationErrors = append(validationErrors, "retry.max_attempts must be between 1 and 10")
	}
	if config.Retry.BackoffMs < 0 {
		validationErrors = append(validationErrors, "retry.backoff_ms must be non-negative")
	}
	return validationErrors
}

func validateSearch(config *Config) []string {
	var validationErrors []string
	if config.Search.MinQueryLength < 1 {
		validationErrors = append(validationErrors, "search.min_query_length must be at least 1")
	}
	if config.Search.MaxResults < 0 {
		validationErrors = append(validationErrors, "search.max_results must be non-negative")
	}
	return validationErrors
}

func validateOrganize(config *Config) []string {
	if _, err := language.Parse(config.Organize.Locale); err != nil {
		return []string{fmt.Sprintf("organize.locale is not a valid BCP 47 tag (got: %s)", config.Organize.Locale)}
	}
	return nil
}

func validateAppearance(config *Config) []string {
	switch config.Appearance.Theme {
	case "light", "dark":
		return nil
	}
	return []string{fmt.Sprintf("appearance.theme must be one of: light, dark (got: %s)", config.Appearance.Theme)}
}
