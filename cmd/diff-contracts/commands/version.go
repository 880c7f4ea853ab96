package commands

import (
	"github.com/erraggy/contractdiff"
	"github.com/erraggy/contractdiff/internal/cliutil"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cliutil.Writef(cmd.OutOrStdout(), "diff-contracts\n%s\n", contractdiff.BuildInfo())
		},
	}
}
