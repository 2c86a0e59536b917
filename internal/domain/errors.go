package domain

import "fmt"

// ValidationError reports a submission that fails compliance checks before
// any calculation runs. It names the offending field so the caller can
// surface a specific message.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

// NewValidationError creates a validation error for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ExternalLookupError wraps a failure from an external provider (distance or
// exchange-rate lookup). The engine never retries these; callers decide the
// fallback behaviour.
type ExternalLookupError struct {
	Source string
	Err    error
}

func (e *ExternalLookupError) Error() string {
	return fmt.Sprintf("%s lookup failed: %v", e.Source, e.Err)
}

func (e *ExternalLookupError) Unwrap() error { return e.Err }
