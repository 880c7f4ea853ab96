// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes contract diffing as a tool over stdio.
package mcpserver

import (
	"context"
	"regexp"
	"strconv"

	"github.com/erraggy/contractdiff"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `contractdiff MCP server: compares two OpenAPI JSON contracts and classifies every change as breaking, additive, informational or deprecated.

Configuration: defaults are read from CONTRACTDIFF_MCP_* environment variables set in your MCP client config.

Key settings:
- CONTRACTDIFF_MCP_MAX_INLINE_SIZE (default: 10485760) - maximum inline content size in bytes
- CONTRACTDIFF_MCP_CHANGE_LIMIT (default: 200) - maximum number of changes returned per call
- CONTRACTDIFF_MCP_VALIDATE (default: false) - report OpenAPI validation warnings for inputs`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := newServer(contractdiff.Version())
	return server.Run(ctx, &mcp.StdioTransport{})
}

func newServer(version string) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "contractdiff", Version: version},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "diff",
		Description: "Compare an old (baseline) and a new OpenAPI JSON contract. Each change is classified as breaking, additive, informational or deprecated with a severity of low, medium, high or critical. Paths, methods, parameters, request bodies, responses, operation IDs, info version/title, servers and component schema names are compared. Use breaking_only=true to list only breaking changes. Set format to text, json or yaml to also receive the rendered report.",
	}, handleDiff)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

func formatCount(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
