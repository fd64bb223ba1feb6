package port

import (
	"context"
	"errors"
)

var (
	// ErrCollaboratorUnavailable means the browser connection is gone.
	// Nothing can succeed until the panel is restarted.
	ErrCollaboratorUnavailable = errors.New("browser collaborator unavailable")

	// ErrTransient marks an I/O failure worth retrying.
	ErrTransient = errors.New("transient collaborator error")
)

// IsTransient reports whether err should be retried at the transport boundary.
// Deadline errors are transient; cancellation and unavailability are not.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrCollaboratorUnavailable) || errors.Is(err, context.Canceled) {
		return false
	}
	return errors.Is(err, ErrTransient) || errors.Is(err, context.DeadlineExceeded)
}
