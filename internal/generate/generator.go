package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rnacentral/pipeline-setup/internal/catalog"
	"github.com/rnacentral/pipeline-setup/internal/config"
	"github.com/rnacentral/pipeline-setup/internal/logging"
	"github.com/rnacentral/pipeline-setup/internal/prompt"
	"github.com/rnacentral/pipeline-setup/internal/questions"
	"github.com/rnacentral/pipeline-setup/internal/render"
	"github.com/rnacentral/pipeline-setup/pkg/adapters/file"
	"github.com/rnacentral/pipeline-setup/pkg/domain"
	"github.com/rnacentral/pipeline-setup/pkg/ports"
	"github.com/rnacentral/pipeline-setup/pkg/schema"
)

// Generator produces the pipeline artifacts from operator answers.
type Generator struct {
	catalog   ports.CatalogSource
	ignore    catalog.IgnoreSet
	asker     ports.Asker
	store     ports.AnswerStore
	engine    *render.Engine
	logger    *slog.Logger
	progress  io.Writer
	templates config.Artifacts
	outputs   config.Artifacts
	now       func() time.Time
	newID     func(time.Time) string
}

// Option configures a Generator.
type Option func(*Generator)

// WithCatalog sets the source of the database list.
func WithCatalog(src ports.CatalogSource) Option {
	return func(g *Generator) {
		g.catalog = src
	}
}

// WithIgnoreSet replaces the default set of databases never offered for import.
func WithIgnoreSet(ignore catalog.IgnoreSet) Option {
	return func(g *Generator) {
		g.ignore = ignore
	}
}

// WithAsker sets how questions are answered.
func WithAsker(a ports.Asker) Option {
	return func(g *Generator) {
		g.asker = a
	}
}

// WithStore records every run's answers so it can be replayed.
func WithStore(s ports.AnswerStore) Option {
	return func(g *Generator) {
		g.store = s
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithProgress sets where operator-facing progress lines are printed.
func WithProgress(w io.Writer) Option {
	return func(g *Generator) {
		g.progress = w
	}
}

// WithTemplates sets per-artifact template override paths.
func WithTemplates(t config.Artifacts) Option {
	return func(g *Generator) {
		g.templates = t
	}
}

// WithOutputs sets per-artifact output paths.
func WithOutputs(o config.Artifacts) Option {
	return func(g *Generator) {
		g.outputs = o
	}
}

// WithClock overrides the time source used to stamp runs.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// New creates a Generator. Outputs default to the standard file names.
func New(opts ...Option) *Generator {
	g := &Generator{
		ignore:  catalog.DefaultIgnoreSet(),
		engine:  render.New(),
		outputs: config.Default().Outputs,
		now:     time.Now,
		newID:   newRunID,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = logging.NewNop()
	}
	if g.progress == nil {
		g.progress = io.Discard
	}
	return g
}

// Result summarizes a completed run.
type Result struct {
	Run      *domain.Run
	Eligible []string
	Written  []string
	Recorded bool
}

// Run asks every question and writes the artifacts.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	if g.catalog == nil {
		return nil, fmt.Errorf("%w: no catalog source configured", domain.ErrCatalogUnavailable)
	}
	if g.asker == nil {
		return nil, errors.New("no asker configured")
	}

	ids, err := catalog.Eligible(ctx, g.catalog, g.ignore)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("catalog loaded", "eligible", len(ids))
	if len(ids) == 0 {
		g.logger.Warn("catalog has no eligible databases, the selection config will be empty")
	}

	fmt.Fprintln(g.progress, "Select the databases to import")
	dbAnswers, err := prompt.Collect(ctx, questions.Databases(ids), g.asker)
	if err != nil {
		return nil, fmt.Errorf("database questions: %w", err)
	}

	fmt.Fprintln(g.progress, "Now configure the pipeline for this release")
	pipeAnswers, err := prompt.Collect(ctx, questions.Pipeline(), g.asker)
	if err != nil {
		return nil, fmt.Errorf("pipeline questions: %w", err)
	}

	createdAt := g.now().UTC()
	run := &domain.Run{
		ID:        g.newID(createdAt),
		Databases: dbAnswers,
		Pipeline:  pipeAnswers,
		CreatedAt: createdAt,
	}
	res := &Result{Run: run, Eligible: ids}
	res.Recorded = g.record(ctx, run)

	res.Written, err = g.Write(ctx, run)
	if err != nil {
		return res, err
	}
	return res, nil
}

// Replay regenerates the artifacts of a recorded run without asking anything.
func (g *Generator) Replay(ctx context.Context, runID string) (*Result, error) {
	if g.store == nil {
		return nil, errors.New("no answer store configured")
	}
	run, err := g.store.Load(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("load run %s: %w", runID, err)
	}

	written, err := g.Write(ctx, run)
	res := &Result{Run: run, Written: written, Recorded: true}
	if err != nil {
		return res, err
	}
	return res, nil
}

// Write type-checks the answers of run and writes every artifact in order.
// It returns the paths written so far, even on failure.
func (g *Generator) Write(ctx context.Context, run *domain.Run) ([]string, error) {
	if err := CheckAnswers(run); err != nil {
		return nil, err
	}

	logger := logging.ForRun(g.logger, run.ID)
	var written []string
	for _, a := range Artifacts(g.templates, g.outputs) {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		if err := g.writeArtifact(logger, a, run); err != nil {
			return written, err
		}
		written = append(written, a.Output)
		fmt.Fprintln(g.progress, a.Done)
	}
	return written, nil
}

func (g *Generator) writeArtifact(logger *slog.Logger, a Artifact, run *domain.Run) error {
	data, err := a.Context(run)
	if err != nil {
		return fmt.Errorf("%s: %w", a.Name, err)
	}

	text, err := render.Source(a.Template, a.Override)
	if err != nil {
		return fmt.Errorf("%s: %w", a.Name, err)
	}
	out, err := g.engine.Render(a.Template, text, data)
	if err != nil {
		return fmt.Errorf("%s: %w", a.Name, err)
	}

	if err := file.WriteAtomic(a.Output, []byte(out), a.Mode); err != nil {
		return fmt.Errorf("%s: write %s: %w", a.Name, a.Output, err)
	}
	logger.Debug("artifact written", "artifact", a.Name, "path", a.Output, "bytes", len(out))
	return nil
}

// record saves run when a store is configured. Failures are logged only,
// since the answers are still turned into artifacts.
func (g *Generator) record(ctx context.Context, run *domain.Run) bool {
	if g.store == nil {
		return false
	}
	logger := logging.ForRun(g.logger, run.ID)
	if err := g.store.Save(ctx, run); err != nil {
		logger.Warn("failed to record run", "error", err)
		return false
	}
	logger.Info("run recorded")
	return true
}

// CheckAnswers verifies that every answer of run has the kind its question declares.
func CheckAnswers(run *domain.Run) error {
	pipeline, err := schema.FromQuestions(questions.Pipeline())
	if err != nil {
		return err
	}
	if err := schema.ValidateAnswers(pipeline, run.Pipeline); err != nil {
		return fmt.Errorf("%w: pipeline answers: %w", domain.ErrMalformedAnswer, err)
	}
	if err := schema.ValidateEach(schema.Bool(), run.Databases); err != nil {
		return fmt.Errorf("%w: database answers: %w", domain.ErrMalformedAnswer, err)
	}
	return nil
}

func newRunID(t time.Time) string {
	return fmt.Sprintf("%s-%s", t.Format("20060102-150405"), uuid.NewString()[:8])
}
