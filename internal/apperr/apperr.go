// Package apperr defines the error kinds the engine reports so that the
// handler layer can map them to HTTP responses without inspecting messages.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks an entity that is absent upstream. For editorial
	// data this is recoverable; for the mandatory pricing fetch it is not.
	ErrNotFound = errors.New("not found")

	// ErrTimeout marks an outbound call that hit its deadline. Callers map
	// it to service-unavailable semantics rather than not-found.
	ErrTimeout = errors.New("upstream timeout")

	// ErrUpstream marks a non-2xx response from a partner feed.
	ErrUpstream = errors.New("upstream error")

	// ErrValidation marks a request missing a required parameter. It is
	// raised before any engine work happens.
	ErrValidation = errors.New("invalid request")
)

// StatusError carries the upstream HTTP status alongside the service name.
// It unwraps to ErrUpstream so callers can match with errors.Is.
type StatusError struct {
	Service string
	Status  int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Service, e.Status)
}

func (e *StatusError) Unwrap() error {
	return ErrUpstream
}

// Upstream builds a StatusError for a non-2xx response.
func Upstream(service string, status int) error {
	return &StatusError{Service: service, Status: status}
}

// NotFound wraps ErrNotFound with the entity that was missing.
func NotFound(entity, key string) error {
	return fmt.Errorf("%s %q: %w", entity, key, ErrNotFound)
}

// Timeout wraps ErrTimeout with the service that timed out.
func Timeout(service string) error {
	return fmt.Errorf("%s: %w", service, ErrTimeout)
}

// Validation wraps ErrValidation with the offending parameter name.
func Validation(param string) error {
	return fmt.Errorf("missing required parameter %q: %w", param, ErrValidation)
}
