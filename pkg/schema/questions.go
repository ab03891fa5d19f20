package schema

import (
	"fmt"

	"github.com/rnacentral/pipeline-setup/pkg/domain"
)

// ValidateQuestions checks the structure of a questionnaire:
// unique keys, choices present iff the question is a selection,
// defaults matching their kind, and visibility rules that only
// read questions appearing strictly earlier.
func ValidateQuestions(questions []domain.Question) error {
	var errs []error
	seen := make(map[string]bool, len(questions))

	for i, q := range questions {
		if q.Key == "" {
			errs = append(errs, &ValidationError{Key: fmt.Sprintf("#%d", i), Reason: "missing key"})
			continue
		}
		if seen[q.Key] {
			errs = append(errs, &ValidationError{Key: q.Key, Reason: "duplicate key"})
		}

		t, err := ForKind(q.Kind, q.Choices)
		if err != nil {
			errs = append(errs, &ValidationError{Key: q.Key, Reason: err.Error()})
		} else if q.Default != nil {
			if err := t.Validate(q.Default); err != nil {
				errs = append(errs, &ValidationError{Key: q.Key, Reason: "default: " + err.Error(), Value: q.Default})
			}
		}

		switch {
		case q.Kind == domain.KindSelect && len(q.Choices) == 0:
			errs = append(errs, &ValidationError{Key: q.Key, Reason: "select question requires choices"})
		case q.Kind != domain.KindSelect && len(q.Choices) > 0:
			errs = append(errs, &ValidationError{Key: q.Key, Reason: "choices are only allowed on select questions"})
		}

		for _, ref := range q.VisibleWhen.References() {
			if !seen[ref] {
				errs = append(errs, &ValidationError{
					Key:    q.Key,
					Reason: fmt.Sprintf("%v: %q", domain.ErrForwardReference, ref),
					cause:  domain.ErrForwardReference,
				})
			}
		}

		seen[q.Key] = true
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

// Keys returns the question keys in schema order.
func Keys(questions []domain.Question) []string {
	keys := make([]string, 0, len(questions))
	for _, q := range questions {
		keys = append(keys, q.Key)
	}
	return keys
}
