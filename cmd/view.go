package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"layoutfix.dev/pkg/layoutfix/internal/domain"
	m "layoutfix.dev/pkg/layoutfix/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [report]",
		Short: "View a previously written run report",
		Long:  "Render a YAML run report written with --report. Defaults to the configured report path.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportPath := m.Path(viper.GetString(reportConfigKey))
			if len(args) == 1 {
				reportPath = m.Path(args[0])
			}

			return workflow.View(cmd.Context(), domain.ViewArgs{Report: reportPath})
		},
	}
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
