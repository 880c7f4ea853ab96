// Package commands implements the diff-contracts command tree.
package commands

import (
	"context"
	"errors"
	"io"

	"github.com/erraggy/contractdiff"
	"github.com/erraggy/contractdiff/internal/cliutil"
	"github.com/spf13/cobra"
)

// errBreakingChanges signals exit status 1 without an error message.
var errBreakingChanges = errors.New("breaking changes detected")

// Execute runs the command line with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errBreakingChanges):
		return 1
	default:
		cliutil.Writef(stderr, "Error: %v\n", err)
		return 1
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &diffFlags{}

	root := &cobra.Command{
		Use:   "diff-contracts --new-spec PATH [--old-spec PATH]",
		Short: "Detect breaking changes between two OpenAPI contracts",
		Long: `diff-contracts compares a baseline OpenAPI JSON contract with a candidate
and classifies every difference as breaking, additive, informational or
deprecated.

Compared elements: paths, HTTP methods, parameters (by name and location),
request bodies, response status codes, operation IDs, info version and title,
servers (by url) and component schema names.

Exit Status:
  0    No breaking changes
  1    Breaking changes found, or the run failed

Defaults may be set in .contractdiff.toml or with CONTRACTDIFF_* environment
variables. Flags given on the command line always win.`,
		Example: `  diff-contracts --new-spec build/openapi.json
  diff-contracts --old-spec v1.json --new-spec v2.json --format json
  diff-contracts --new-spec v2.json --format yaml --output report.yaml`,
		Version:       contractdiff.Version(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDiff(cmd, flags)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(`{{printf "diff-contracts version %s\n" .Version}}`)

	flags.register(root)

	root.AddCommand(newMCPCmd())
	root.AddCommand(newVersionCmd())
	return root
}
