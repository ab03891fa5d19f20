package prompt

import (
	"context"
	"fmt"
	"os"

	"github.com/rnacentral/pipeline-setup/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Script is a prepared answer file for headless runs.
// JSON files are accepted as well since they are valid YAML.
type Script struct {
	Databases domain.Answers `yaml:"databases" json:"databases"`
	Pipeline  domain.Answers `yaml:"pipeline" json:"pipeline"`
}

// LoadScript reads a script file from disk.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers file: %w", err)
	}
	return ParseScript(data)
}

// ParseScript decodes a script document.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse answers file: %w", err)
	}
	return &s, nil
}

// Asker returns a Scripted asker over both sections.
// Pipeline answers win when a key appears in both.
func (s *Script) Asker() *Scripted {
	return NewScripted(s.Databases.Merge(s.Pipeline))
}

// Scripted answers questions from a fixed answer set. Missing answers take
// the question default; unacceptable ones are errors since nobody can retry.
type Scripted struct {
	answers domain.Answers
}

// NewScripted creates an asker over answers.
func NewScripted(answers domain.Answers) *Scripted {
	return &Scripted{answers: answers.Clone()}
}

// Ask returns the scripted answer for q.
func (s *Scripted) Ask(ctx context.Context, q domain.Question) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, ok := s.answers[q.Key]
	if !ok {
		return Resolve(q, "")
	}

	input, err := scriptInput(q, v)
	if err != nil {
		return nil, err
	}
	return Resolve(q, input)
}

// scriptInput renders a decoded scalar the way an operator would type it.
func scriptInput(q domain.Question, v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case bool:
		if q.Kind != domain.KindBoolean {
			break
		}
		if t {
			return "yes", nil
		}
		return "no", nil
	case int, int64, uint64, float64:
		if q.Kind == domain.KindBoolean {
			break
		}
		return fmt.Sprint(t), nil
	}
	return "", &domain.AnswerKindError{Key: q.Key, Want: q.Kind, Value: v}
}
