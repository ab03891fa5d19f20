package main

import (
	"errors"
	"fmt"

	"github.com/rnacentral/pipeline-setup/internal/generate"
	"github.com/rnacentral/pipeline-setup/internal/presentation/tui"
	"github.com/rnacentral/pipeline-setup/internal/prompt"
	"github.com/rnacentral/pipeline-setup/internal/questions"
	"github.com/rnacentral/pipeline-setup/internal/render"
	"github.com/rnacentral/pipeline-setup/pkg/domain"
	"github.com/rnacentral/pipeline-setup/pkg/schema"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the questionnaire, the templates and optionally an answers file",
	Long: `Validates the question schema, then renders every configured template
against sample answers so missing keys are caught before a release. With
--answers the given answers file is type-checked as well.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		checks := tui.NewCheckList(cmd.OutOrStdout())

		if err := schema.ValidateQuestions(questions.Pipeline()); err != nil {
			return fmt.Errorf("questionnaire: %w", err)
		}
		checks.Pass("questionnaire")

		sample := &domain.Run{
			Databases: domain.Answers{"ena": true, "rfam": false, "ensembl": true},
			Pipeline:  domain.Answers{"release": "25", "r2dt.publish": "/tmp/r2dt", "email": "ops@example.org"},
		}

		var failed []error
		engine := render.New()
		for _, a := range generate.Artifacts(cfg.Templates, cfg.Outputs) {
			label := a.Template
			if a.Override != "" {
				label = a.Override
			}
			if err := checkTemplate(engine, a, sample); err != nil {
				checks.Fail(label, err)
				failed = append(failed, err)
				continue
			}
			checks.Pass(label)
		}

		if path, _ := cmd.Flags().GetString("answers"); path != "" {
			script, err := prompt.LoadScript(path)
			if err != nil {
				return err
			}
			run := &domain.Run{Databases: script.Databases, Pipeline: script.Pipeline}
			if err := generate.CheckAnswers(run); err != nil {
				checks.Fail(path, err)
				failed = append(failed, err)
			} else {
				checks.Pass(path)
			}
		}

		if len(failed) > 0 {
			return fmt.Errorf("validation failed: %w", errors.Join(failed...))
		}
		return nil
	},
}

func checkTemplate(engine *render.Engine, a generate.Artifact, run *domain.Run) error {
	text, err := render.Source(a.Template, a.Override)
	if err != nil {
		return err
	}
	data, err := a.Context(run)
	if err != nil {
		return err
	}
	_, err = engine.Render(a.Template, text, data)
	return err
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().String("answers", "", "Also type-check this answers file")
}
