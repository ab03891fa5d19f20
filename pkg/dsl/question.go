package dsl

import "github.com/rnacentral/pipeline-setup/pkg/domain"

// QuestionBuilder provides a fluent API for configuring a question.
type QuestionBuilder struct {
	question domain.Question
	builder  *Builder
}

// Default sets the value used when the operator accepts the prompt unchanged.
func (q *QuestionBuilder) Default(value any) *QuestionBuilder {
	q.question.Default = value
	return q
}

// Instruction sets the hint printed next to the prompt.
func (q *QuestionBuilder) Instruction(text string) *QuestionBuilder {
	q.question.Instruction = text
	return q
}

// Validate attaches a validator for raw text input.
func (q *QuestionBuilder) Validate(v domain.Validator) *QuestionBuilder {
	q.question.Validate = v
	return q
}

// When shows the question only if the predicate passes.
func (q *QuestionBuilder) When(p *domain.Predicate) *QuestionBuilder {
	q.question.VisibleWhen = p
	return q
}

// WhenTrue shows the question only if the parent key was answered true.
// whenAbsent decides visibility if the parent was never asked.
func (q *QuestionBuilder) WhenTrue(parent string, whenAbsent bool) *QuestionBuilder {
	return q.When(domain.Truthy(parent, whenAbsent))
}

// Build returns the underlying domain.Question.
func (q *QuestionBuilder) Build() domain.Question {
	out := q.question
	if out.Choices != nil {
		out.Choices = append([]string(nil), out.Choices...)
	}
	return out
}
