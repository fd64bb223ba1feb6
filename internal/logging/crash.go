package logging

import (
	"context"
	"runtime"
	"runtime/debug"
)

// LogPanic records a recovered panic with its stack and re-panics. Use it
// deferred at the top of a goroutine whose stderr is not visible, such as
// the TUI:
//
//	defer logging.LogPanic(ctx)
func LogPanic(ctx context.Context) {
	r := recover()
	if r == nil {
		return
	}

	FromContext(ctx).Error().
		Interface("panic", r).
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Bytes("stack", debug.Stack()).
		Msg("panic")

	panic(r)
}
