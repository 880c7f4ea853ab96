package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffTool_DetectsChanges(t *testing.T) {
	input := diffInput{
		OldSpec: specInput{Content: oldContract},
		NewSpec: specInput{Content: newContract},
	}
	result, output, err := handleDiff(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.Equal(t, 3, output.TotalChanges)
	assert.Equal(t, 1, output.BreakingCount)
	assert.Equal(t, 1, output.AdditiveCount)
	assert.Equal(t, 1, output.InformationalCount)
	assert.Equal(t, "1.0.0", output.OldSpecVersion)
	assert.Equal(t, "1.1.0", output.NewSpecVersion)
	require.Len(t, output.Changes, 3)

	first := output.Changes[0]
	assert.Equal(t, "breaking", first.Type)
	assert.Equal(t, "parameter", first.Category)
	assert.Equal(t, "high", first.Severity)
	assert.Equal(t, "GET /api/products.parameters[id]", first.Location)

	assert.Equal(t, "Breaking changes detected. 3 changes found (1 breaking change).", output.Summary)
	assert.Empty(t, output.Report)
}

func TestDiffTool_BreakingOnly(t *testing.T) {
	_, output, err := handleDiff(context.Background(), &mcp.CallToolRequest{}, diffInput{
		OldSpec:      specInput{Content: oldContract},
		NewSpec:      specInput{Content: newContract},
		BreakingOnly: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, output.TotalChanges, "counts cover the whole report")
	require.Len(t, output.Changes, 1)
	assert.Equal(t, "breaking", output.Changes[0].Type)
}

func TestDiffTool_NoChanges(t *testing.T) {
	_, output, err := handleDiff(context.Background(), &mcp.CallToolRequest{}, diffInput{
		OldSpec: specInput{Content: oldContract},
		NewSpec: specInput{Content: oldContract},
	})
	require.NoError(t, err)
	assert.Zero(t, output.TotalChanges)
	assert.Nil(t, output.Changes)
	assert.Equal(t, "No changes detected.", output.Summary)
}

func TestDiffTool_RenderedReport(t *testing.T) {
	_, output, err := handleDiff(context.Background(), &mcp.CallToolRequest{}, diffInput{
		OldSpec: specInput{Content: oldContract},
		NewSpec: specInput{Content: newContract},
		Format:  "json",
		Strict:  true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, output.Report)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(output.Report), &parsed))
	metadata, ok := parsed["metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, metadata["strict_mode"])
}

func TestDiffTool_UnsupportedFormat(t *testing.T) {
	result, _, err := handleDiff(context.Background(), &mcp.CallToolRequest{}, diffInput{
		OldSpec: specInput{Content: oldContract},
		NewSpec: specInput{Content: newContract},
		Format:  "xml",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, `unsupported format "xml"`)
}

func TestDiffTool_InputErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   diffInput
		wantMsg string
	}{
		{
			name:    "missing old spec",
			input:   diffInput{NewSpec: specInput{Content: newContract}},
			wantMsg: "old_spec: exactly one of file or content",
		},
		{
			name:    "malformed new spec",
			input:   diffInput{OldSpec: specInput{Content: oldContract}, NewSpec: specInput{Content: "[1, 2"}},
			wantMsg: "new_spec: invalid JSON",
		},
		{
			name:    "missing file is sanitized",
			input:   diffInput{OldSpec: specInput{File: "/tmp/contractdiff-missing/v1.json"}, NewSpec: specInput{Content: newContract}},
			wantMsg: "old_spec: spec file not found: <path>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleDiff(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
			text, ok := result.Content[0].(*mcp.TextContent)
			require.True(t, ok)
			assert.Contains(t, text.Text, tt.wantMsg)
		})
	}
}

func TestDiffTool_ChangeLimit(t *testing.T) {
	withConfig(t, &serverConfig{MaxInlineSize: 1 << 20, ChangeLimit: 2})

	_, output, err := handleDiff(context.Background(), &mcp.CallToolRequest{}, diffInput{
		OldSpec: specInput{Content: oldContract},
		NewSpec: specInput{Content: newContract},
	})
	require.NoError(t, err)
	assert.Len(t, output.Changes, 2)
	assert.True(t, output.Truncated)
	assert.Equal(t, 3, output.TotalChanges)
}

func TestDiffTool_ValidationWarnings(t *testing.T) {
	withConfig(t, &serverConfig{MaxInlineSize: 1 << 20, ChangeLimit: 10, ValidateInputs: true})

	_, output, err := handleDiff(context.Background(), &mcp.CallToolRequest{}, diffInput{
		OldSpec: specInput{Content: `{"paths": {}}`},
		NewSpec: specInput{Content: oldContract},
	})
	require.NoError(t, err)
	require.NotEmpty(t, output.Warnings)
	assert.Contains(t, output.Warnings[0], "old_spec: ")
}

func TestBuildDiffSummary(t *testing.T) {
	assert.Equal(t, "No changes detected.", buildDiffSummary(diffOutput{}))
	assert.Equal(t, "1 change found.", buildDiffSummary(diffOutput{TotalChanges: 1}))
	assert.Equal(t, "Breaking changes detected. 4 changes found (2 breaking changes).",
		buildDiffSummary(diffOutput{TotalChanges: 4, BreakingCount: 2}))
}
