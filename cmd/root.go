// Package cmd provides the root command and CLI setup for layoutfix.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"layoutfix.dev/pkg/layoutfix/internal/adapter"
	"layoutfix.dev/pkg/layoutfix/internal/controller"
	"layoutfix.dev/pkg/layoutfix/internal/domain"
	m "layoutfix.dev/pkg/layoutfix/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var rewriter domain.Rewriter
var workflow domain.Workflow
var ui controller.UI

// rootDirFlag is the directory the target paths are resolved against.
var rootDirFlag string

// reportFlag is the optional YAML run report destination.
var reportFlag string

var verboseFlag bool
var logFileFlag string

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	rewriter = domain.NewLayoutRewriter()
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		ui,
		rewriter,
	)
}

const rootLongDescription = `layoutfix removes the DashboardLayout wrapper from the dashboard pages.

For each target file it drops the DashboardLayout import (named or default
form) and the opening and closing <DashboardLayout> tags, keeping everything
in between. Missing files are skipped. Files are rewritten in place with LF
line endings.

Run without arguments from the application root.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "layoutfix",
		Short:        "Strip the DashboardLayout wrapper from dashboard pages",
		Long:         rootLongDescription,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Fix(cmd.Context(), domain.FixArgs{
				Root:   rootPath(),
				Report: m.Path(viper.GetString(reportConfigKey)),
			})
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&rootDirFlag, rootFlagName, "C",
			defaultRoot,
			"directory the target paths are resolved against",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(rootFlagName), rootConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename(), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.Flags().StringVar(&reportFlag, reportFlagName, defaultReport, "write a YAML run report to this file")
	bindFlagToConfig(cmd.Flags().Lookup(reportFlagName), reportConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func rootPath() m.Path {
	root := viper.GetString(rootConfigKey)
	if root == "" {
		root = defaultRoot
	}

	return m.Path(root)
}
