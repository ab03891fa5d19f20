package dsl

import (
	"fmt"

	"github.com/rnacentral/pipeline-setup/pkg/domain"
	"github.com/rnacentral/pipeline-setup/pkg/schema"
)

// Builder manages questionnaire construction. Questions keep the order
// in which they were added.
type Builder struct {
	questions []*QuestionBuilder
}

// New creates a new questionnaire builder.
func New() *Builder {
	return &Builder{}
}

func (b *Builder) add(kind domain.Kind, key, prompt string, def any) *QuestionBuilder {
	qb := &QuestionBuilder{
		question: domain.Question{
			Kind:    kind,
			Key:     key,
			Prompt:  prompt,
			Default: def,
		},
		builder: b,
	}
	b.questions = append(b.questions, qb)
	return qb
}

// Confirm appends a yes/no question. Its default is false until set.
func (b *Builder) Confirm(key, prompt string) *QuestionBuilder {
	return b.add(domain.KindBoolean, key, prompt, false)
}

// Text appends a free-text question. Its default is empty until set.
func (b *Builder) Text(key, prompt string) *QuestionBuilder {
	return b.add(domain.KindText, key, prompt, "")
}

// Select appends a single-choice question. The first choice is the default until set.
func (b *Builder) Select(key, prompt string, choices ...string) *QuestionBuilder {
	var def string
	if len(choices) > 0 {
		def = choices[0]
	}
	qb := b.add(domain.KindSelect, key, prompt, def)
	qb.question.Choices = append([]string(nil), choices...)
	return qb
}

// Len returns the number of questions added so far.
func (b *Builder) Len() int {
	return len(b.questions)
}

// Build validates the questionnaire and returns it in declaration order.
func (b *Builder) Build() ([]domain.Question, error) {
	questions := make([]domain.Question, 0, len(b.questions))
	for _, qb := range b.questions {
		questions = append(questions, qb.Build())
	}

	if err := schema.ValidateQuestions(questions); err != nil {
		return nil, fmt.Errorf("invalid questionnaire: %w", err)
	}
	return questions, nil
}

// MustBuild is like Build but panics on an invalid questionnaire.
// It is meant for schemas fixed at compile time.
func (b *Builder) MustBuild() []domain.Question {
	questions, err := b.Build()
	if err != nil {
		panic(err)
	}
	return questions
}
