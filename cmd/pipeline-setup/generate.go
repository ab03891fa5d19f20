package main

import (
	"fmt"

	"github.com/rnacentral/pipeline-setup/internal/config"
	"github.com/rnacentral/pipeline-setup/internal/generate"
	"github.com/rnacentral/pipeline-setup/internal/presentation/tui"
	"github.com/rnacentral/pipeline-setup/internal/prompt"
	"github.com/rnacentral/pipeline-setup/pkg/ports"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Ask the release questions and write the pipeline artifacts",
	Long: `Reads the database catalog, asks one question per eligible database and
then the pipeline settings, and writes the three artifacts. Use --answers to
run headless from a prepared YAML or JSON file.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if path, _ := cmd.Flags().GetString("catalog-file"); path != "" {
		cfg.Catalog.File = path
	}
	if noRecord, _ := cmd.Flags().GetBool("no-record"); noRecord {
		cfg.Store.Backend = config.BackendNone
	}

	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	asker, err := newAsker(cmd)
	if err != nil {
		return err
	}
	store, closeStore, err := newStore(cfg.Store)
	if err != nil {
		return err
	}
	defer closeStore()

	interactive := stdoutIsTerminal()
	if interactive {
		tui.PrintBanner(cmd.OutOrStdout())
	}

	g := generate.New(
		generate.WithCatalog(newCatalog(cfg)),
		generate.WithIgnoreSet(ignoreSet(cfg)),
		generate.WithAsker(asker),
		generate.WithStore(store),
		generate.WithTemplates(cfg.Templates),
		generate.WithOutputs(cfg.Outputs),
		generate.WithLogger(logger),
		generate.WithProgress(cmd.OutOrStdout()),
	)

	res, err := g.Run(cmd.Context())
	if err != nil {
		return err
	}
	printSummary(cmd, res, interactive)
	return nil
}

func newAsker(cmd *cobra.Command) (ports.Asker, error) {
	path, _ := cmd.Flags().GetString("answers")
	if path == "" {
		return prompt.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout()), nil
	}
	script, err := prompt.LoadScript(path)
	if err != nil {
		return nil, err
	}
	return script.Asker(), nil
}

func printSummary(cmd *cobra.Command, res *generate.Result, interactive bool) {
	md := tui.Summary(res)
	if interactive {
		if rendered, err := tui.NewRenderer()(md); err == nil {
			md = rendered
		}
	}
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprint(cmd.OutOrStdout(), md)
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().String("answers", "", "Answer questions from a YAML/JSON file instead of prompting")
	cmd.Flags().String("catalog-file", "", "Read the database catalog from a YAML file instead of PostgreSQL")
	cmd.Flags().Bool("no-record", false, "Do not record the answers for later replay")
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addGenerateFlags(generateCmd)

	addGenerateFlags(rootCmd)
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = runGenerate
}
