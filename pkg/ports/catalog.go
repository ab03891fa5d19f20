package ports

import (
	"context"

	"github.com/rnacentral/pipeline-setup/pkg/domain"
)

// CatalogSource enumerates the source databases known to the import pipeline.
// Records must be returned ordered by their ordinal; consumers never re-sort.
type CatalogSource interface {
	Records(ctx context.Context) ([]domain.DatabaseRecord, error)
}
