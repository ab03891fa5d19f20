package prompt

import (
	"context"
	"fmt"

	"github.com/rnacentral/pipeline-setup/pkg/domain"
	"github.com/rnacentral/pipeline-setup/pkg/ports"
)

// Collect asks every visible question in order and returns the raw answers.
// Visibility is evaluated against the answers gathered so far.
func Collect(ctx context.Context, questions []domain.Question, asker ports.Asker) (domain.Answers, error) {
	answers := make(domain.Answers, len(questions))
	for _, q := range questions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !q.Visible(answers) {
			continue
		}

		v, err := asker.Ask(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("question %q: %w", q.Key, err)
		}
		answers[q.Key] = v
	}
	return answers, nil
}
