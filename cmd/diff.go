package cmd

import (
	"github.com/spf13/cobra"

	"layoutfix.dev/pkg/layoutfix/internal/domain"
)

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Preview the rewrite as unified diffs",
		Long:  "Print a unified diff for every target file the rewrite would change. Nothing is written.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Diff(cmd.Context(), domain.DiffArgs{Root: rootPath()})
		},
	}
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
