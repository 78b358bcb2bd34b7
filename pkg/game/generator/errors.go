package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrNoStartTemplate is returned when the catalog has no usable start room
	ErrNoStartTemplate = errors.New("start room template not assigned")
	// ErrInvalidConfig is returned when a config value is out of range
	ErrInvalidConfig = errors.New("invalid generator config")
)

// ConfigError is a fatal configuration problem found before any room is placed
type ConfigError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("[%s] %s: %v", e.Field, e.Reason, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func invalidConfig(field, reason string) error {
	return &ConfigError{Field: field, Reason: reason, Err: ErrInvalidConfig}
}

func missingStart(reason string) error {
	return &ConfigError{Field: "StartRoom", Reason: reason, Err: ErrNoStartTemplate}
}
