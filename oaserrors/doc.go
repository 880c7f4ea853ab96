// Package oaserrors provides structured error types for contractdiff.
//
// Import path: github.com/erraggy/contractdiff/oaserrors
//
// Library packages never terminate the host process. Instead they return one
// of the error types below, and the command-line entry point alone decides
// how to report it and which exit status to use.
//
// # Error Types
//
//   - [LoadError]: a contract document could not be read or decoded
//   - [FormatError]: a report was requested in a format that is not supported
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
//   - [ErrLoad]: matches any [LoadError]
//   - [ErrSpecNotFound]: matches a [LoadError] for a missing file
//   - [ErrMalformedSpec]: matches a [LoadError] for undecodable content
//   - [ErrUnsupportedFormat]: matches any [FormatError]
//   - [ErrConfig]: matches any [ConfigError]
//
// # Usage
//
//	loaded, err := loader.Load("openapi.json")
//	if errors.Is(err, oaserrors.ErrSpecNotFound) {
//	    // fall back to an empty baseline
//	}
package oaserrors
