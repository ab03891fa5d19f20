package domain

// Kind defines how a question is asked and which value type its answer carries.
type Kind string

const (
	// KindBoolean is a yes/no confirmation. Answers are bool.
	KindBoolean Kind = "boolean"
	// KindText is free text input. Answers are string.
	KindText Kind = "text"
	// KindSelect picks one entry of Choices. Answers are string.
	KindSelect Kind = "select"
)

// Question describes a single prompt presented to the operator.
type Question struct {
	Kind Kind   `json:"kind" yaml:"kind"`
	Key  string `json:"key" yaml:"key"`

	// Prompt is the human-readable message shown to the operator.
	Prompt string `json:"prompt" yaml:"prompt"`
	// Instruction is an optional hint printed next to the prompt.
	Instruction string `json:"instruction,omitempty" yaml:"instruction,omitempty"`

	// Default must match Kind: bool for KindBoolean, string otherwise.
	Default any `json:"default" yaml:"default"`

	// Choices is required iff Kind == KindSelect.
	Choices []string `json:"choices,omitempty" yaml:"choices,omitempty"`

	// Validate checks raw text input before it is accepted.
	Validate Validator `json:"-" yaml:"-"`

	// VisibleWhen hides the question when it evaluates to false.
	// A hidden question is absent from the answer set.
	VisibleWhen *Predicate `json:"visible_when,omitempty" yaml:"visible_when,omitempty"`
}

// Visible reports whether the question should be asked given the answers collected so far.
func (q Question) Visible(answers Answers) bool {
	if q.VisibleWhen == nil {
		return true
	}
	return q.VisibleWhen.Eval(answers)
}

// DefaultText renders the default value the way an operator would type it.
func (q Question) DefaultText() string {
	switch v := q.Default.(type) {
	case bool:
		if v {
			return "yes"
		}
		return "no"
	case string:
		return v
	default:
		return ""
	}
}
