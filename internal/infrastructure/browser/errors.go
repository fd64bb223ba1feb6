package browser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/pinboard/internal/application/port"
)

// Messages that mean the DevTools connection itself is gone.
var closedConnMarkers = []string{
	"use of closed network connection",
	"websocket: close",
	"connection reset by peer",
	"broken pipe",
	"connection refused",
}

// Messages that mean the page was busy or navigating; a retry can succeed.
var transientMarkers = []string{
	"cannot find context with specified id",
	"execution context was destroyed",
	"inspected target navigated or closed",
	"no target with given id",
}

// classify maps DevTools failures onto the port error kinds.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) ||
		errors.Is(err, port.ErrCollaboratorUnavailable) ||
		errors.Is(err, port.ErrTransient) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", port.ErrTransient, err)
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", port.ErrCollaboratorUnavailable, err)
	}

	msg := strings.ToLower(err.Error())
	for _, m := range closedConnMarkers {
		if strings.Contains(msg, m) {
			return fmt.Errorf("%w: %w", port.ErrCollaboratorUnavailable, err)
		}
	}
	for _, m := range transientMarkers {
		if strings.Contains(msg, m) {
			return fmt.Errorf("%w: %w", port.ErrTransient, err)
		}
	}
	return err
}
