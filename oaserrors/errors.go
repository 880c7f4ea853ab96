package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrLoad indicates a contract document could not be loaded.
	ErrLoad = errors.New("load error")

	// ErrSpecNotFound indicates the contract file does not exist.
	ErrSpecNotFound = errors.New("spec file not found")

	// ErrMalformedSpec indicates the contract content is not a JSON object.
	ErrMalformedSpec = errors.New("malformed spec")

	// ErrUnsupportedFormat indicates an unknown report format was requested.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// LoadError represents a failure to load a contract document.
type LoadError struct {
	// Path is the file path or source identifier
	Path string
	// NotFound is true when the file does not exist
	NotFound bool
	// Malformed is true when the content could not be decoded
	Malformed bool
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *LoadError) Error() string {
	var msg string
	switch {
	case e.NotFound:
		msg = "spec file not found"
		if e.Path != "" {
			msg += ": " + e.Path
		}
		return msg
	case e.Malformed:
		msg = "invalid JSON"
	default:
		msg = "load error"
	}
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrLoad, and also ErrSpecNotFound or ErrMalformedSpec
// when the corresponding flag is set.
func (e *LoadError) Is(target error) bool {
	switch target {
	case ErrLoad:
		return true
	case ErrSpecNotFound:
		return e.NotFound
	case ErrMalformedSpec:
		return e.Malformed
	}
	return false
}

// FormatError represents a request for a report format that cannot be produced.
type FormatError struct {
	// Format is the requested format name
	Format string
	// Supported lists the formats that are available
	Supported []string
}

// Error returns a human-readable error message.
func (e *FormatError) Error() string {
	msg := fmt.Sprintf("unsupported format %q", e.Format)
	if len(e.Supported) > 0 {
		msg += fmt.Sprintf(" (supported: %v)", e.Supported)
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *FormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
