package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/rnacentral/pipeline-setup/pkg/domain"
	"github.com/rnacentral/pipeline-setup/pkg/ports"
	"gopkg.in/yaml.v3"
)

// catalogFile models a YAML catalog fixture:
//
//	databases:
//	  - identifier: ENA
//	    alive: true
//	    ordinal: 1
type catalogFile struct {
	Databases []domain.DatabaseRecord `yaml:"databases"`
}

// FileSource reads the catalog from a YAML file. Entries are returned in file order.
type FileSource struct {
	path string
}

// NewFileSource creates a source backed by the YAML file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Records parses the catalog file.
func (s *FileSource) Records(ctx context.Context) ([]domain.DatabaseRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrCatalogUnavailable, s.path, err)
	}
	return f.Databases, nil
}

// StaticSource serves a fixed list of records.
type StaticSource []domain.DatabaseRecord

// Records returns a copy of the static list.
func (s StaticSource) Records(ctx context.Context) ([]domain.DatabaseRecord, error) {
	return append([]domain.DatabaseRecord(nil), s...), nil
}

// Eligible loads the catalog and applies Filter.
func Eligible(ctx context.Context, src ports.CatalogSource, ignore IgnoreSet) ([]string, error) {
	records, err := src.Records(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(records, ignore), nil
}
