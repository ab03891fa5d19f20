package schema

import (
	"sort"

	"github.com/rnacentral/pipeline-setup/pkg/domain"
)

// Schema is a map of answer keys to their expected types.
type Schema map[string]Type

// FromQuestions derives the answer schema of a questionnaire. A text
// question's input validator also applies to recorded answers.
func FromQuestions(questions []domain.Question) (Schema, error) {
	s := make(Schema, len(questions))
	for _, q := range questions {
		t, err := ForKind(q.Kind, q.Choices)
		if err != nil {
			return nil, &ValidationError{Key: q.Key, Reason: err.Error()}
		}
		if q.Kind == domain.KindText && q.Validate != nil {
			t = withValidator(t, q.Validate)
		}
		s[q.Key] = t
	}
	return s, nil
}

func withValidator(base Type, v domain.Validator) Type {
	return Custom(base.Name(), func(value any) error {
		if err := base.Validate(value); err != nil {
			return err
		}
		return v(value.(string))
	})
}

// ValidateAnswers checks the answers that are present against the schema.
// Absent keys are fine (they are defaulted later); unknown keys and
// wrong kinds are reported together.
func ValidateAnswers(schema Schema, answers domain.Answers) error {
	var errs []error

	for _, key := range answers.Keys() {
		value := answers[key]
		fieldType, exists := schema[key]
		if !exists {
			errs = append(errs, &ValidationError{
				Key:    key,
				Reason: "not defined in schema",
				Value:  value,
			})
			continue
		}
		if err := fieldType.Validate(value); err != nil {
			errs = append(errs, &ValidationError{
				Key:    key,
				Reason: err.Error(),
				Value:  value,
			})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

// ValidateEach checks every answer against the same type.
func ValidateEach(t Type, answers domain.Answers) error {
	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []error
	for _, key := range keys {
		if err := t.Validate(answers[key]); err != nil {
			errs = append(errs, &ValidationError{Key: key, Reason: err.Error(), Value: answers[key]})
		}
	}
	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
