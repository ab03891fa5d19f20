package generate

import (
	"os"

	"github.com/rnacentral/pipeline-setup/internal/config"
	"github.com/rnacentral/pipeline-setup/internal/normalize"
	"github.com/rnacentral/pipeline-setup/internal/projection"
	"github.com/rnacentral/pipeline-setup/internal/render"
	"github.com/rnacentral/pipeline-setup/pkg/domain"
)

// Artifact describes one generated file.
type Artifact struct {
	Name     string
	Template string
	Override string
	Output   string
	Mode     os.FileMode
	Done     string

	project func(run *domain.Run) (domain.RenderContext, error)
}

// Context builds the rendering context for run.
func (a Artifact) Context(run *domain.Run) (domain.RenderContext, error) {
	return a.project(run)
}

// Artifacts returns the three artifacts in generation order.
func Artifacts(templates, outputs config.Artifacts) []Artifact {
	return []Artifact{
		{
			Name:     "pipeline",
			Template: render.TemplatePipeline,
			Override: templates.Pipeline,
			Output:   outputs.Pipeline,
			Mode:     0o644,
			Done:     "local.config file has been generated!",
			project: func(run *domain.Run) (domain.RenderContext, error) {
				cfg, err := normalize.Pipeline(run.Pipeline)
				if err != nil {
					return nil, err
				}
				return projection.Pipeline(cfg), nil
			},
		},
		{
			Name:     "databases",
			Template: render.TemplateDatabases,
			Override: templates.Databases,
			Output:   outputs.Databases,
			Mode:     0o644,
			Done:     "Database selection config file has been generated!",
			project: func(run *domain.Run) (domain.RenderContext, error) {
				cfg, err := normalize.Databases(run.Databases)
				if err != nil {
					return nil, err
				}
				return projection.Databases(cfg), nil
			},
		},
		{
			Name:     "slurm",
			Template: render.TemplateSlurm,
			Override: templates.Slurm,
			Output:   outputs.Slurm,
			Mode:     0o755,
			Done:     "Pipeline run script has been generated!",
			project: func(run *domain.Run) (domain.RenderContext, error) {
				cfg, err := normalize.Slurm(run.Pipeline)
				if err != nil {
					return nil, err
				}
				return projection.Slurm(cfg), nil
			},
		},
	}
}
