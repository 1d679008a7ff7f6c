package cmd

import (
	"github.com/spf13/cobra"

	"layoutfix.dev/pkg/layoutfix/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List target files and the wrapper matches left in each",
		Long:  "Show which target files exist under the root and how many DashboardLayout imports and tags remain. Nothing is written.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Status(cmd.Context(), domain.StatusArgs{Root: rootPath()})
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
