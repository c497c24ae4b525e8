package domain

import "fmt"

// ConfigError indicates invalid generation parameters (empty account
// universe, non-positive date window). Generation fails fast with this error
// before any sampling happens.
type ConfigError struct {
	Reason string
}

// NewConfigError creates a ConfigError with the given reason.
func NewConfigError(reason string) *ConfigError {
	return &ConfigError{Reason: reason}
}

func (e *ConfigError) Error() string {
	return "invalid generation config: " + e.Reason
}

// ValidationError indicates a source row that is missing a required key
// field. Unification fails with this error rather than silently skipping the
// row, since the unified table's row-count guarantee depends on total
// correspondence with the valuation feed.
type ValidationError struct {
	Source string
	Reason string
}

// NewValidationError creates a ValidationError for the given source feed.
func NewValidationError(source, reason string) *ValidationError {
	return &ValidationError{Source: source, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s row: %s", e.Source, e.Reason)
}
