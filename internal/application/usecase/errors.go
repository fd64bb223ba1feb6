package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrPinNotFound is returned when no pin matches the requested identity.
	ErrPinNotFound = errors.New("pinned property not found")

	// ErrInvalidPin is returned for pins without a valid type or key.
	ErrInvalidPin = errors.New("invalid pinned property")

	// ErrCookieNotFound is returned when a cookie vanished before an edit.
	ErrCookieNotFound = errors.New("cookie not found")

	// ErrUnsupportedPage is returned when storage is edited on a page that
	// cannot run injected scripts.
	ErrUnsupportedPage = errors.New("page does not support storage access")

	// ErrNoActiveTab is returned when the browser has no inspectable tab.
	ErrNoActiveTab = errors.New("no active tab")
)

// ValidationError reports a rejected form field before any mutation is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
