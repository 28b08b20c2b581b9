// Package mp provides the Materials Project data-source adapter: a typed
// HTTP client over the summary API plus the Source interface the
// recommendation core consumes.
package mp

import (
	"errors"
	"fmt"
)

// ConfigError represents a construction-time configuration problem, typically
// a missing API key. It is fatal and never retried.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("materials project config error: %s", e.Message)
}

// APIError represents a transport or HTTP-level failure talking to the
// Materials Project API.
type APIError struct {
	Operation  string
	StatusCode int
	Message    string
	Cause      error
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("materials project %s failed: %s: %v", e.Operation, e.Message, e.Cause)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("materials project %s failed: %s (HTTP %d)", e.Operation, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("materials project %s failed: %s", e.Operation, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// NotFoundError indicates a material identifier absent from the database.
// Callers that iterate over identifiers may recover from it per-ID.
type NotFoundError struct {
	MaterialID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("material %s not found", e.MaterialID)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
