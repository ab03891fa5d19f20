//go:build cucumber

package normalize_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cucumber/godog"

	"github.com/rnacentral/pipeline-setup/internal/normalize"
	"github.com/rnacentral/pipeline-setup/internal/projection"
	"github.com/rnacentral/pipeline-setup/pkg/domain"
)

// TestNormalizeScenarios runs the normalization feature scenarios.
func TestNormalizeScenarios(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "normalize",
		ScenarioInitializer: InitializeNormalizeScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{"features"},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeNormalizeScenario wires steps for normalization scenarios.
func InitializeNormalizeScenario(ctx *godog.ScenarioContext) {
	state := &normalizeState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		*state = normalizeState{}
		return ctx, nil
	})

	ctx.Step(`^the database answers:$`, state.givenDatabaseAnswers)
	ctx.Step(`^the pipeline answers:$`, state.givenPipelineAnswers)
	ctx.Step(`^I normalize the database answers$`, state.whenNormalizeDatabases)
	ctx.Step(`^I normalize the pipeline answers$`, state.whenNormalizePipeline)
	ctx.Step(`^group "([^"]+)" has (\d+) members$`, state.thenGroupSize)
	ctx.Step(`^group "([^"]+)" has member "([^"]+)" set to (true|false)$`, state.thenGroupMember)
	ctx.Step(`^"([^"]+)" is not a flag in the database selection$`, state.thenNoFlag)
	ctx.Step(`^the database selection has flag "([^"]+)" set to (true|false)$`, state.thenFlag)
	ctx.Step(`^the pipeline variable "([^"]+)" is "([^"]*)"$`, state.thenPipelineVar)
	ctx.Step(`^the slurm variable "([^"]+)" is "([^"]*)"$`, state.thenSlurmVar)
	ctx.Step(`^normalization fails with a malformed answer$`, state.thenMalformed)
}

type normalizeState struct {
	raw       domain.Answers
	databases normalize.DatabaseConfig
	pipeline  domain.RenderContext
	slurm     domain.RenderContext
	err       error
}

// answers reads a key/value table. true and false become booleans, anything
// else stays text.
func answers(table *godog.Table) domain.Answers {
	raw := domain.Answers{}
	for i, row := range table.Rows {
		if i == 0 {
			continue
		}
		key, value := row.Cells[0].Value, row.Cells[1].Value
		switch value {
		case "true":
			raw[key] = true
		case "false":
			raw[key] = false
		default:
			raw[key] = value
		}
	}
	return raw
}

func (s *normalizeState) givenDatabaseAnswers(table *godog.Table) error {
	s.raw = answers(table)
	return nil
}

func (s *normalizeState) givenPipelineAnswers(table *godog.Table) error {
	s.raw = answers(table)
	return nil
}

func (s *normalizeState) whenNormalizeDatabases() error {
	s.databases, s.err = normalize.Databases(s.raw)
	return nil
}

func (s *normalizeState) whenNormalizePipeline() error {
	cfg, err := normalize.Pipeline(s.raw)
	if err != nil {
		s.err = err
		return nil
	}
	job, err := normalize.Slurm(s.raw)
	if err != nil {
		s.err = err
		return nil
	}
	s.pipeline = projection.Pipeline(cfg)
	s.slurm = projection.Slurm(job)
	return nil
}

func (s *normalizeState) thenGroupSize(group string, size int) error {
	if s.err != nil {
		return s.err
	}
	if got := len(s.databases.Groups[group]); got != size {
		return fmt.Errorf("group %s has %d members, want %d", group, got, size)
	}
	return nil
}

func (s *normalizeState) thenGroupMember(group, member, value string) error {
	enabled, ok := s.databases.Groups[group][member]
	if !ok {
		return fmt.Errorf("group %s has no member %s", group, member)
	}
	if fmt.Sprint(enabled) != value {
		return fmt.Errorf("%s.%s = %v, want %s", group, member, enabled, value)
	}
	return nil
}

func (s *normalizeState) thenNoFlag(name string) error {
	if _, ok := s.databases.Flags[name]; ok {
		return fmt.Errorf("%s recorded as a flag", name)
	}
	return nil
}

func (s *normalizeState) thenFlag(name, value string) error {
	enabled, ok := s.databases.Flags[name]
	if !ok {
		return fmt.Errorf("no flag %s", name)
	}
	if fmt.Sprint(enabled) != value {
		return fmt.Errorf("%s = %v, want %s", name, enabled, value)
	}
	return nil
}

func (s *normalizeState) thenPipelineVar(name, value string) error {
	return checkVar(s.err, s.pipeline, name, value)
}

func (s *normalizeState) thenSlurmVar(name, value string) error {
	return checkVar(s.err, s.slurm, name, value)
}

func checkVar(err error, ctx domain.RenderContext, name, value string) error {
	if err != nil {
		return err
	}
	got, ok := ctx[name]
	if !ok {
		return fmt.Errorf("no variable %s", name)
	}
	if fmt.Sprint(got) != value {
		return fmt.Errorf("%s = %v, want %q", name, got, value)
	}
	return nil
}

func (s *normalizeState) thenMalformed() error {
	if !errors.Is(s.err, domain.ErrMalformedAnswer) {
		return fmt.Errorf("expected a malformed answer error, got %v", s.err)
	}
	return nil
}
