package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pakt-build/pakt/internal/version"
	"github.com/pakt-build/pakt/pkg/logging"
)

var (
	verbosity  int
	configPath string

	rootCmd = &cobra.Command{
		Use:   "pakt",
		Short: "A pluggable asset build tool",
		Long: `pakt resolves which plugins apply to each file of your project from a
declarative configuration mapping glob patterns to plugin pipelines,
and runs them through the build stages: resolve, transform, bundle,
name, package, optimize and report.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the project config file (default: nearest .paktrc or pakt.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(pluginsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pakt version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
