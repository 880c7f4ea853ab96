package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/erraggy/contractdiff/differ"
	"github.com/erraggy/contractdiff/oaserrors"
	"go.yaml.in/yaml/v4"
)

// Report format identifiers.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Exit codes returned by ExitCode.
const (
	ExitOK       = 0
	ExitBreaking = 1
)

var supportedFormats = []string{FormatText, FormatJSON, FormatYAML}

// Formats returns the supported format identifiers.
func Formats() []string {
	return slices.Clone(supportedFormats)
}

// ValidateFormat returns a *oaserrors.FormatError when format is unknown.
func ValidateFormat(format string) error {
	if slices.Contains(supportedFormats, format) {
		return nil
	}
	return &oaserrors.FormatError{Format: format, Supported: Formats()}
}

// Format renders r in the given format. The result has no trailing newline.
func Format(r *differ.DiffReport, format string) (string, error) {
	if err := ValidateFormat(format); err != nil {
		return "", err
	}

	switch format {
	case FormatJSON:
		return formatJSON(r)
	case FormatYAML:
		return formatYAML(r)
	default:
		return formatText(r), nil
	}
}

// Write renders r and writes it to w followed by a newline. Nothing is
// written when rendering fails.
func Write(w io.Writer, r *differ.DiffReport, format string) error {
	out, err := Format(r, format)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out+"\n"); err != nil {
		return fmt.Errorf("writing %s report: %w", format, err)
	}
	return nil
}

// ExitCode returns ExitBreaking when r has breaking changes, else ExitOK.
func ExitCode(r *differ.DiffReport) int {
	if r != nil && r.HasBreakingChanges() {
		return ExitBreaking
	}
	return ExitOK
}

func formatJSON(r *differ.DiffReport) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(newDocument(r)); err != nil {
		return "", fmt.Errorf("marshaling to json: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func formatYAML(r *differ.DiffReport) (string, error) {
	data, err := yaml.Marshal(newDocument(r))
	if err != nil {
		return "", fmt.Errorf("marshaling to yaml: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
