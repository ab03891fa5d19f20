package main

import (
	"github.com/rnacentral/pipeline-setup/internal/generate"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <run-id>",
	Short: "Regenerate the artifacts of a recorded run without prompting",
	Long: `Loads the answers recorded for a previous run and writes the artifacts
again, using the current templates and output paths.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		store, closeStore, err := requireStore(cfg.Store)
		if err != nil {
			return err
		}
		defer closeStore()

		g := generate.New(
			generate.WithStore(store),
			generate.WithTemplates(cfg.Templates),
			generate.WithOutputs(cfg.Outputs),
			generate.WithLogger(logger),
			generate.WithProgress(cmd.OutOrStdout()),
		)
		res, err := g.Replay(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printSummary(cmd, res, stdoutIsTerminal())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
}
