package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rnacentral/pipeline-setup/pkg/domain"
)

const listDatabasesSQL = `select coalesce(descr, ''), alive = 'Y', id from rnc_database order by id`

// PostgresSource reads the catalog from the rnc_database table.
type PostgresSource struct {
	dsn string
}

// NewPostgresSource creates a source for the given connection string.
func NewPostgresSource(dsn string) *PostgresSource {
	return &PostgresSource{dsn: dsn}
}

// Records returns every catalog row ordered by id.
// Any failure is reported as domain.ErrCatalogUnavailable.
func (s *PostgresSource) Records(ctx context.Context) ([]domain.DatabaseRecord, error) {
	if s.dsn == "" {
		return nil, fmt.Errorf("%w: no connection string configured (set PGDATABASE)", domain.ErrCatalogUnavailable)
	}

	conn, err := pgx.Connect(ctx, s.dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: connect: %v", domain.ErrCatalogUnavailable, err)
	}
	defer conn.Close(ctx)

	rows, err := conn.Query(ctx, listDatabasesSQL)
	if err != nil {
		return nil, fmt.Errorf("%w: query: %v", domain.ErrCatalogUnavailable, err)
	}
	defer rows.Close()

	var records []domain.DatabaseRecord
	for rows.Next() {
		var (
			descr string
			alive bool
			id    int64
		)
		if err := rows.Scan(&descr, &alive, &id); err != nil {
			return nil, fmt.Errorf("%w: scan: %v", domain.ErrCatalogUnavailable, err)
		}
		records = append(records, domain.DatabaseRecord{
			Identifier: descr,
			Alive:      alive,
			Ordinal:    int(id),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read rows: %v", domain.ErrCatalogUnavailable, err)
	}
	return records, nil
}
