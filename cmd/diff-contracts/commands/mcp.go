package commands

import (
	"github.com/erraggy/contractdiff/internal/mcpserver"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the diff tool over MCP on stdio",
		Long: `Start a Model Context Protocol server on stdin/stdout exposing a "diff"
tool. Configure it with CONTRACTDIFF_MCP_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return mcpserver.Run(cmd.Context())
		},
	}
}
