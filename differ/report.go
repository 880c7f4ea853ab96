package differ

import (
	"fmt"

	"github.com/erraggy/contractdiff/loader"
)

// comparedAtLayout renders UTC timestamps with microsecond precision and a
// trailing Z.
const comparedAtLayout = "2006-01-02T15:04:05.000000Z"

// unknownVersion is reported when a contract does not declare info.version.
const unknownVersion = "unknown"

// Summary holds the change counts of a report.
type Summary struct {
	TotalChanges         int `json:"total_changes" yaml:"total_changes"`
	BreakingChanges      int `json:"breaking_changes" yaml:"breaking_changes"`
	AdditiveChanges      int `json:"additive_changes" yaml:"additive_changes"`
	InformationalChanges int `json:"informational_changes" yaml:"informational_changes"`
	DeprecatedChanges    int `json:"deprecated_changes" yaml:"deprecated_changes"`
}

// Entry is one key/value pair of a report section, in display order.
type Entry struct {
	Key   string
	Value any
}

// Entries returns the summary counts keyed by their report names.
func (s Summary) Entries() []Entry {
	return []Entry{
		{"total_changes", s.TotalChanges},
		{"breaking_changes", s.BreakingChanges},
		{"additive_changes", s.AdditiveChanges},
		{"informational_changes", s.InformationalChanges},
		{"deprecated_changes", s.DeprecatedChanges},
	}
}

// Metadata describes the comparison itself.
type Metadata struct {
	// ComparedAt is the UTC comparison time, ISO-8601 with a trailing Z
	ComparedAt string `json:"compared_at" yaml:"compared_at"`
	// OldSpecVersion is the old contract's info.version, or "unknown"
	OldSpecVersion string `json:"old_spec_version" yaml:"old_spec_version"`
	// NewSpecVersion is the new contract's info.version, or "unknown"
	NewSpecVersion string `json:"new_spec_version" yaml:"new_spec_version"`
	// StrictMode echoes the strict mode setting
	StrictMode bool `json:"strict_mode" yaml:"strict_mode"`
	// DifferVersion is always DifferVersion
	DifferVersion string `json:"differ_version" yaml:"differ_version"`
}

// Entries returns the metadata fields keyed by their report names.
func (m Metadata) Entries() []Entry {
	return []Entry{
		{"compared_at", m.ComparedAt},
		{"old_spec_version", m.OldSpecVersion},
		{"new_spec_version", m.NewSpecVersion},
		{"strict_mode", m.StrictMode},
		{"differ_version", m.DifferVersion},
	}
}

// DiffReport is the complete result of one comparison. It is built once and
// not modified afterwards.
type DiffReport struct {
	Summary Summary
	// Changes holds every change in detection order
	Changes []ChangeItem
	// BreakingChanges, AdditiveChanges and InformationalChanges are filtered
	// views of Changes. Deprecated changes only appear in Changes and in
	// Summary.DeprecatedChanges.
	BreakingChanges      []ChangeItem
	AdditiveChanges      []ChangeItem
	InformationalChanges []ChangeItem
	Metadata             Metadata
}

// HasBreakingChanges reports whether any breaking change was detected.
func (r *DiffReport) HasBreakingChanges() bool {
	return len(r.BreakingChanges) > 0
}

// buildReport partitions changes by type and assembles the summary and metadata.
func (d *Differ) buildReport(old, cur loader.Document, changes []ChangeItem) *DiffReport {
	r := &DiffReport{
		Changes:              make([]ChangeItem, 0, len(changes)),
		BreakingChanges:      make([]ChangeItem, 0),
		AdditiveChanges:      make([]ChangeItem, 0),
		InformationalChanges: make([]ChangeItem, 0),
	}
	r.Changes = append(r.Changes, changes...)

	for _, c := range r.Changes {
		switch c.Type {
		case ChangeTypeBreaking:
			r.BreakingChanges = append(r.BreakingChanges, c)
		case ChangeTypeAdditive:
			r.AdditiveChanges = append(r.AdditiveChanges, c)
		case ChangeTypeInformational:
			r.InformationalChanges = append(r.InformationalChanges, c)
		case ChangeTypeDeprecated:
			r.Summary.DeprecatedChanges++
		}
	}

	r.Summary.TotalChanges = len(r.Changes)
	r.Summary.BreakingChanges = len(r.BreakingChanges)
	r.Summary.AdditiveChanges = len(r.AdditiveChanges)
	r.Summary.InformationalChanges = len(r.InformationalChanges)

	r.Metadata = Metadata{
		ComparedAt:     d.now().UTC().Format(comparedAtLayout),
		OldSpecVersion: specVersion(old),
		NewSpecVersion: specVersion(cur),
		StrictMode:     d.StrictMode,
		DifferVersion:  DifferVersion,
	}

	return r
}

// specVersion returns info.version as declared, or "unknown" when absent.
func specVersion(doc loader.Document) string {
	v, ok := doc.Info()["version"]
	if !ok || v == nil {
		return unknownVersion
	}
	if s, isString := v.(string); isString {
		return s
	}
	return fmt.Sprint(v)
}
