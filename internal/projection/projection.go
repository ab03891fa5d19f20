// Package projection maps each normalized view onto the flat context its
// artifact template reads. Projectors are independent of each other.
package projection

import (
	"github.com/rnacentral/pipeline-setup/internal/normalize"
	"github.com/rnacentral/pipeline-setup/pkg/domain"
)

// DatabasesKey is the single key of the database-selection context.
const DatabasesKey = "databases"

// Pipeline builds the pipeline-configuration context keyed by flat identifiers.
func Pipeline(cfg normalize.PipelineConfig) domain.RenderContext {
	return domain.RenderContext{
		domain.FieldNotify.Var():               cfg.Notify,
		domain.FieldRelease.Var():              cfg.Release,
		domain.FieldGenomeMapping.Var():        cfg.GenomeMapping,
		domain.FieldCPAT.Var():                 cfg.CPAT,
		domain.FieldQA.Var():                   cfg.QA,
		domain.FieldQARfam.Var():               cfg.QARfamRun,
		domain.FieldQADfam.Var():               cfg.QADfamRun,
		domain.FieldQAPfam.Var():               cfg.QAPfamRun,
		domain.FieldPrecomputeRun.Var():        cfg.PrecomputeRun,
		domain.FieldPrecomputeMethod.Var():     cfg.PrecomputeMethod,
		domain.FieldR2DTRun.Var():              cfg.R2DTRun,
		domain.FieldR2DTPublish.Var():          cfg.R2DTPublish,
		domain.FieldExportSequenceSearch.Var(): cfg.ExportSequenceSearchRun,
		domain.FieldExportFTP.Var():            cfg.ExportFTPRun,
		domain.FieldExportSearch.Var():         cfg.ExportSearchRun,
	}
}

// Databases builds the database-selection context.
func Databases(cfg normalize.DatabaseConfig) domain.RenderContext {
	return domain.RenderContext{
		DatabasesKey: cfg.Tree(),
	}
}

// Slurm builds the job-script context.
func Slurm(cfg normalize.SlurmConfig) domain.RenderContext {
	return domain.RenderContext{
		"time_limit":  cfg.TimeLimit,
		"email":       cfg.Email,
		"release":     cfg.Release,
		"job_name":    cfg.JobName,
		"output_file": cfg.OutputFile,
		"error_file":  cfg.ErrorFile,
	}
}
