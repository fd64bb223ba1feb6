package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags subsequent log lines with the emitting component.
func WithComponent(ctx context.Context, component string) context.Context {
	return withField(ctx, "component", component)
}

// WithTabID tags subsequent log lines with a DevTools target id.
func WithTabID(ctx context.Context, tabID string) context.Context {
	return withField(ctx, "tab_id", tabID)
}

// WithURL tags subsequent log lines with a page URL.
func WithURL(ctx context.Context, url string) context.Context {
	return withField(ctx, "url", url)
}

// WithDomain tags subsequent log lines with the dashboard domain.
func WithDomain(ctx context.Context, domain string) context.Context {
	return withField(ctx, "domain", domain)
}

func withField(ctx context.Context, key, value string) context.Context {
	return FromContext(ctx).With().Str(key, value).Logger().WithContext(ctx)
}
