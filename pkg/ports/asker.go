package ports

import (
	"context"

	"github.com/rnacentral/pipeline-setup/pkg/domain"
)

// Asker collects the answer to one question.
// The returned value must match the question kind: bool for boolean
// questions, string otherwise.
type Asker interface {
	Ask(ctx context.Context, q domain.Question) (any, error)
}
