package normalize

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/rnacentral/pipeline-setup/pkg/domain"
)

// DefaultRelease is used when no release version was answered.
const DefaultRelease = "25"

// PipelineConfig is the normalized pipeline configuration.
// Field tags are the flat template identifiers.
type PipelineConfig struct {
	Notify                  bool   `mapstructure:"notify"`
	Release                 string `mapstructure:"release"`
	GenomeMapping           bool   `mapstructure:"genome_mapping"`
	CPAT                    bool   `mapstructure:"cpat"`
	QA                      bool   `mapstructure:"qa"`
	QARfamRun               bool   `mapstructure:"qa_rfam_run"`
	QADfamRun               bool   `mapstructure:"qa_dfam_run"`
	QAPfamRun               bool   `mapstructure:"qa_pfam_run"`
	PrecomputeRun           bool   `mapstructure:"precompute_run"`
	PrecomputeMethod        string `mapstructure:"precompute_method"`
	R2DTRun                 bool   `mapstructure:"r2dt_run"`
	R2DTPublish             string `mapstructure:"r2dt_publish"`
	ExportSequenceSearchRun bool   `mapstructure:"export_sequence_search_run"`
	ExportFTPRun            bool   `mapstructure:"export_ftp_run"`
	ExportSearchRun         bool   `mapstructure:"export_search_run"`
}

// pipelineDefaults holds the value substituted for every absent pipeline key.
// A skipped nested question behaves as if its stage had been switched off.
var pipelineDefaults = map[domain.Field]any{
	domain.FieldNotify:               true,
	domain.FieldRelease:              DefaultRelease,
	domain.FieldGenomeMapping:        true,
	domain.FieldCPAT:                 false,
	domain.FieldQA:                   false,
	domain.FieldQARfam:               false,
	domain.FieldQADfam:               false,
	domain.FieldQAPfam:               false,
	domain.FieldPrecomputeRun:        true,
	domain.FieldPrecomputeMethod:     "release",
	domain.FieldR2DTRun:              true,
	domain.FieldR2DTPublish:          "",
	domain.FieldExportSequenceSearch: true,
	domain.FieldExportFTP:            true,
	domain.FieldExportSearch:         true,
}

// PipelineDefault returns the documented default for a pipeline field.
func PipelineDefault(f domain.Field) (any, bool) {
	v, ok := pipelineDefaults[f]
	return v, ok
}

// Pipeline normalizes raw answers into a PipelineConfig.
func Pipeline(raw domain.Answers) (PipelineConfig, error) {
	flat, err := pipelineVars(raw)
	if err != nil {
		return PipelineConfig{}, err
	}

	var cfg PipelineConfig
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &cfg,
		ErrorUnused: true,
		ErrorUnset:  true,
	})
	if err != nil {
		return PipelineConfig{}, fmt.Errorf("pipeline decoder: %w", err)
	}
	if err := dec.Decode(flat); err != nil {
		return PipelineConfig{}, fmt.Errorf("decode pipeline answers: %w", err)
	}
	return cfg, nil
}

// pipelineVars resolves every pipeline field into a flat identifier map.
func pipelineVars(raw domain.Answers) (map[string]any, error) {
	flat := make(map[string]any, len(pipelineDefaults))
	for _, f := range domain.Fields() {
		def, ok := pipelineDefaults[f]
		if !ok {
			continue
		}

		var (
			v   any
			err error
		)
		switch d := def.(type) {
		case bool:
			v, err = raw.Bool(f.Key(), d)
		case string:
			v, err = raw.String(f.Key(), d)
		}
		if err != nil {
			return nil, err
		}
		flat[f.Var()] = v
	}

	if flat[domain.FieldRelease.Var()] == "" {
		flat[domain.FieldRelease.Var()] = DefaultRelease
	}
	return flat, nil
}
