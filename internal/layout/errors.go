package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration matches every *ConfigError via errors.Is.
	ErrConfiguration = errors.New("layout: invalid configuration")

	// ErrInvalidIntent matches every *IntentError via errors.Is.
	ErrInvalidIntent = errors.New("layout: invalid item intent")

	// ErrUnknownItem is returned when an item id was never issued by the container
	// or has already been removed.
	ErrUnknownItem = errors.New("layout: unknown item")
)

// ConfigError reports a container configuration that cannot be built.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("layout: invalid configuration: %s=%v: %s", e.Field, e.Value, e.Reason)
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

// IntentError reports an item intent rejected before any container state changed.
type IntentError struct {
	Field  string
	Value  any
	Reason string
}

// Error implements the error interface.
func (e *IntentError) Error() string {
	return fmt.Sprintf("layout: invalid item intent: %s=%v: %s", e.Field, e.Value, e.Reason)
}

// Is reports whether target is ErrInvalidIntent.
func (e *IntentError) Is(target error) bool {
	return target == ErrInvalidIntent
}
