package ports

import (
	"context"

	"github.com/rnacentral/pipeline-setup/pkg/domain"
)

// AnswerStore defines the interface for persisting recorded answer sessions.
// This allows a release configuration to be regenerated without prompting again.
type AnswerStore interface {
	// Save persists the run under run.ID.
	Save(ctx context.Context, run *domain.Run) error

	// Load retrieves the run for a given ID.
	// Returns domain.ErrRunNotFound if the run does not exist.
	Load(ctx context.Context, runID string) (*domain.Run, error)

	// Delete removes the run for a given ID.
	Delete(ctx context.Context, runID string) error

	// List returns the IDs of all recorded runs.
	List(ctx context.Context) ([]string, error)
}
