package region

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is wrapped by a FieldError for an absent required field.
	ErrMissingField = errors.New("missing required field")
	// ErrNotInteger is wrapped by a FieldError for a value that does not parse as an integer.
	ErrNotInteger = errors.New("not an integer")
)

// FieldError reports a mod field that cannot be rendered.
type FieldError struct {
	// Identifier is the mod's declared identifier.
	Identifier string
	// Field is the offending parameter name, e.g. "or" or "ascii[2]".
	Field string
	// Value is the raw value, empty for missing fields.
	Value string
	Err   error
}

// Error implements error.
func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrMissingField) {
		return fmt.Sprintf("region: mod %q: field %q: %v", e.Identifier, e.Field, e.Err)
	}
	return fmt.Sprintf("region: mod %q: field %q: value %q: %v", e.Identifier, e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FieldError) Unwrap() error { return e.Err }
