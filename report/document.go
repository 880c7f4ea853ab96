package report

import "github.com/erraggy/contractdiff/differ"

// document is the serialized form shared by JSON and YAML output.
type document struct {
	Summary              differ.Summary  `json:"summary" yaml:"summary"`
	Metadata             differ.Metadata `json:"metadata" yaml:"metadata"`
	Changes              []change        `json:"changes" yaml:"changes"`
	BreakingChanges      []change        `json:"breaking_changes" yaml:"breaking_changes"`
	AdditiveChanges      []change        `json:"additive_changes" yaml:"additive_changes"`
	InformationalChanges []change        `json:"informational_changes" yaml:"informational_changes"`
}

type change struct {
	Type        string `json:"type" yaml:"type"`
	Category    string `json:"category" yaml:"category"`
	Location    string `json:"location" yaml:"location"`
	Description string `json:"description" yaml:"description"`
	OldValue    any    `json:"old_value,omitempty" yaml:"old_value,omitempty"`
	NewValue    any    `json:"new_value,omitempty" yaml:"new_value,omitempty"`
	Severity    string `json:"severity" yaml:"severity"`
}

func newDocument(r *differ.DiffReport) document {
	return document{
		Summary:              r.Summary,
		Metadata:             r.Metadata,
		Changes:              newChanges(r.Changes),
		BreakingChanges:      newChanges(r.BreakingChanges),
		AdditiveChanges:      newChanges(r.AdditiveChanges),
		InformationalChanges: newChanges(r.InformationalChanges),
	}
}

func newChanges(items []differ.ChangeItem) []change {
	out := make([]change, 0, len(items))
	for _, c := range items {
		out = append(out, change{
			Type:        string(c.Type),
			Category:    string(c.Category),
			Location:    c.Location,
			Description: c.Description,
			OldValue:    c.OldValue,
			NewValue:    c.NewValue,
			Severity:    c.Severity.String(),
		})
	}
	return out
}
