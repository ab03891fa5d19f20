/*
Package pipelinesetup generates the per-release configuration of the RNA
import pipeline from a short questionnaire.

An operator answers one yes/no question per source database that is alive in
the catalog and not on the ignore list, then a fixed set of pipeline questions
(release number, which stages to run, SLURM limits). The answers are turned
into three artifacts:

  - local.config, the Nextflow parameters of the pipeline stages
  - db_selection.config, which databases to import
  - run_pipeline.sh, the SLURM submission script

# Questionnaire

Questions are declared with pkg/dsl and may carry a visibility rule that reads
an earlier answer only. A hidden question is absent from the answers; the
normalizers in internal/normalize supply its default when the artifacts are
built.

# Command line

	pipeline-setup                      # interactive run, same as generate
	pipeline-setup generate --answers answers.yaml --catalog-file catalog.yaml
	pipeline-setup replay 20261016-093000-abcd1234
	pipeline-setup questions -f yaml
	pipeline-setup questions -f mermaid --run 20261016-093000-abcd1234
	pipeline-setup validate

Configuration is read from pipeline-setup.yaml; PGDATABASE supplies the
catalog connection string when none is configured. Recorded answers can be
sealed at rest with store.encryption_key or PIPELINE_SETUP_STORE_KEY.
*/
package pipelinesetup
