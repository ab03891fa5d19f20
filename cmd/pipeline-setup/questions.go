package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rnacentral/pipeline-setup/internal/catalog"
	"github.com/rnacentral/pipeline-setup/internal/presentation/graph"
	"github.com/rnacentral/pipeline-setup/internal/questions"
	"github.com/rnacentral/pipeline-setup/pkg/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the questionnaire",
	Long: `Prints the pipeline questions with their defaults and visibility rules.
With --databases the eligible database questions from the catalog are printed first.
The mermaid format draws the visibility rules; --run highlights what a recorded
run answered.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		withDatabases, _ := cmd.Flags().GetBool("databases")

		var qs []domain.Question
		if withDatabases {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ids, err := catalog.Eligible(cmd.Context(), newCatalog(cfg), ignoreSet(cfg))
			if err != nil {
				return err
			}
			qs = append(qs, questions.Databases(ids)...)
		}
		qs = append(qs, questions.Pipeline()...)

		out := cmd.OutOrStdout()
		switch format {
		case "yaml":
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(qs)
		case "json":
			data, err := json.MarshalIndent(qs, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
			return nil
		case "mermaid":
			overlay, err := runOverlay(cmd)
			if err != nil {
				return err
			}
			fmt.Fprint(out, graph.GenerateMermaid(qs, overlay))
			return nil
		case "text":
			for i, q := range qs {
				fmt.Fprintf(out, "%2d. %-28s %-8s default=%-10q %s\n", i+1, q.Key, q.Kind, q.DefaultText(), describeVisibility(q))
			}
			return nil
		default:
			return fmt.Errorf("unknown format %q (text, yaml, json, mermaid)", format)
		}
	},
}

func runOverlay(cmd *cobra.Command) (*graph.Overlay, error) {
	runID, _ := cmd.Flags().GetString("run")
	if runID == "" {
		return nil, nil
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	store, closeStore, err := requireStore(cfg.Store)
	if err != nil {
		return nil, err
	}
	defer closeStore()

	run, err := store.Load(cmd.Context(), runID)
	if err != nil {
		return nil, fmt.Errorf("load run %s: %w", runID, err)
	}
	answers := make(domain.Answers, len(run.Databases)+len(run.Pipeline))
	for k, v := range run.Databases {
		answers[k] = v
	}
	for k, v := range run.Pipeline {
		answers[k] = v
	}
	return &graph.Overlay{Answers: answers}, nil
}

func describeVisibility(q domain.Question) string {
	if q.VisibleWhen == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "when %s", q.VisibleWhen)
	if q.VisibleWhen.WhenAbsent {
		b.WriteString(" (or unanswered)")
	}
	return b.String()
}

func init() {
	rootCmd.AddCommand(questionsCmd)
	questionsCmd.Flags().StringP("format", "f", "text", "Output format: text, yaml, json or mermaid")
	questionsCmd.Flags().String("run", "", "Recorded run to overlay on the mermaid graph")
	questionsCmd.Flags().Bool("databases", false, "Include the database questions from the catalog")
}
