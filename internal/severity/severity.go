// Package severity provides the severity scale attached to every detected
// contract change.
//
// The levels are ordered from least to most severe:
// Low < Medium < High < Critical
//
// Severity is correlated with, but not identical to, a change's type: removing
// an optional parameter is informational with medium severity, while removing
// a required one is breaking with high severity.
package severity

import "fmt"

// Severity indicates how strongly a change is expected to affect consumers.
type Severity int

const (
	// SeverityLow indicates changes consumers can safely ignore.
	SeverityLow Severity = iota

	// SeverityMedium indicates changes that may affect some consumers.
	SeverityMedium

	// SeverityHigh indicates changes that will break consumers relying on
	// the affected element.
	SeverityHigh

	// SeverityCritical is reserved for changes that break every consumer.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Parse returns the Severity named by s.
func Parse(s string) (Severity, error) {
	switch s {
	case "low":
		return SeverityLow, nil
	case "medium":
		return SeverityMedium, nil
	case "high":
		return SeverityHigh, nil
	case "critical":
		return SeverityCritical, nil
	}
	return 0, fmt.Errorf("severity: unknown level %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
