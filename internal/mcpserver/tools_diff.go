package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/contractdiff/differ"
	"github.com/erraggy/contractdiff/report"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type diffInput struct {
	OldSpec      specInput `json:"old_spec"                jsonschema:"The baseline OpenAPI contract"`
	NewSpec      specInput `json:"new_spec"                jsonschema:"The candidate OpenAPI contract to compare against the baseline"`
	Strict       bool      `json:"strict,omitempty"        jsonschema:"Record strict mode in the report metadata"`
	BreakingOnly bool      `json:"breaking_only,omitempty" jsonschema:"Only list breaking changes"`
	Format       string    `json:"format,omitempty"        jsonschema:"Also render the full report as text, json or yaml"`
}

type diffChange struct {
	Type        string `json:"type"`
	Category    string `json:"category"`
	Severity    string `json:"severity"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type diffOutput struct {
	TotalChanges       int          `json:"total_changes"`
	BreakingCount      int          `json:"breaking_count"`
	AdditiveCount      int          `json:"additive_count"`
	InformationalCount int          `json:"informational_count"`
	DeprecatedCount    int          `json:"deprecated_count"`
	OldSpecVersion     string       `json:"old_spec_version"`
	NewSpecVersion     string       `json:"new_spec_version"`
	Changes            []diffChange `json:"changes,omitempty"`
	Truncated          bool         `json:"truncated,omitempty"`
	Warnings           []string     `json:"warnings,omitempty"`
	Report             string       `json:"report,omitempty"`
	Summary            string       `json:"summary"`
}

func handleDiff(ctx context.Context, _ *mcp.CallToolRequest, input diffInput) (*mcp.CallToolResult, diffOutput, error) {
	if input.Format != "" {
		if err := report.ValidateFormat(input.Format); err != nil {
			return errResult(err), diffOutput{}, nil
		}
	}

	oldLoaded, err := input.OldSpec.resolve(ctx)
	if err != nil {
		return errResult(fmt.Errorf("old_spec: %w", err)), diffOutput{}, nil
	}
	newLoaded, err := input.NewSpec.resolve(ctx)
	if err != nil {
		return errResult(fmt.Errorf("new_spec: %w", err)), diffOutput{}, nil
	}

	r, err := differ.DiffWithOptions(
		differ.WithOldDocument(oldLoaded.Document),
		differ.WithNewDocument(newLoaded.Document),
		differ.WithStrictMode(input.Strict),
	)
	if err != nil {
		return errResult(err), diffOutput{}, nil
	}

	listed := r.Changes
	if input.BreakingOnly {
		listed = r.BreakingChanges
	}

	output := diffOutput{
		TotalChanges:       r.Summary.TotalChanges,
		BreakingCount:      r.Summary.BreakingChanges,
		AdditiveCount:      r.Summary.AdditiveChanges,
		InformationalCount: r.Summary.InformationalChanges,
		DeprecatedCount:    r.Summary.DeprecatedChanges,
		OldSpecVersion:     r.Metadata.OldSpecVersion,
		NewSpecVersion:     r.Metadata.NewSpecVersion,
		Changes:            makeSlice[diffChange](min(len(listed), cfg.ChangeLimit)),
	}

	for i, c := range listed {
		if i >= cfg.ChangeLimit {
			output.Truncated = true
			break
		}
		output.Changes = append(output.Changes, diffChange{
			Type:        string(c.Type),
			Category:    string(c.Category),
			Severity:    c.Severity.String(),
			Location:    c.Location,
			Description: c.Description,
		})
	}

	for _, w := range oldLoaded.Warnings {
		output.Warnings = append(output.Warnings, "old_spec: "+w)
	}
	for _, w := range newLoaded.Warnings {
		output.Warnings = append(output.Warnings, "new_spec: "+w)
	}

	if input.Format != "" {
		rendered, err := report.Format(r, input.Format)
		if err != nil {
			return errResult(err), diffOutput{}, nil
		}
		output.Report = rendered
	}

	output.Summary = buildDiffSummary(output)
	return nil, output, nil
}

func buildDiffSummary(output diffOutput) string {
	if output.TotalChanges == 0 {
		return "No changes detected."
	}

	summary := ""
	if output.BreakingCount > 0 {
		summary = "Breaking changes detected. "
	}

	summary += formatCount(output.TotalChanges, "change") + " found"
	if output.BreakingCount > 0 {
		summary += " (" + formatCount(output.BreakingCount, "breaking change") + ")."
	} else {
		summary += "."
	}
	return summary
}
