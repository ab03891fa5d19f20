package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rnacentral/pipeline-setup/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pipeline-setup",
	Short: "Generate the configuration for an import pipeline release",
	Long: `pipeline-setup asks which source databases to import and how to run each
pipeline stage, then writes local.config, db_selection.config and
run_pipeline.sh. Without a subcommand it runs generate.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to the configuration file (default ./pipeline-setup.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-format", logging.FormatText, "Log format: text or json")
}
