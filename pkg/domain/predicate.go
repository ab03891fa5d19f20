package domain

import "fmt"

// PredicateOp is the comparison a Predicate performs.
type PredicateOp string

const (
	// OpTruthy passes when the referenced answer is true (or a non-empty string).
	OpTruthy PredicateOp = "truthy"
	// OpEquals passes when the referenced answer equals Value.
	OpEquals PredicateOp = "equals"
)

// Predicate is a declarative visibility rule over one earlier answer.
type Predicate struct {
	Op    PredicateOp `json:"op" yaml:"op"`
	Key   string      `json:"key" yaml:"key"`
	Value any         `json:"value,omitempty" yaml:"value,omitempty"`

	// WhenAbsent is the result used when Key has no answer yet.
	WhenAbsent bool `json:"when_absent" yaml:"when_absent"`
}

// Truthy builds a predicate that passes when key was answered true.
func Truthy(key string, whenAbsent bool) *Predicate {
	return &Predicate{Op: OpTruthy, Key: key, WhenAbsent: whenAbsent}
}

// Equals builds a predicate that passes when key was answered with value.
func Equals(key string, value any) *Predicate {
	return &Predicate{Op: OpEquals, Key: key, Value: value}
}

// Eval evaluates the predicate against the answers collected so far.
func (p *Predicate) Eval(answers Answers) bool {
	if p == nil {
		return true
	}
	v, ok := answers[p.Key]
	if !ok {
		return p.WhenAbsent
	}
	switch p.Op {
	case OpTruthy:
		return truthy(v)
	case OpEquals:
		return v == p.Value
	default:
		return false
	}
}

// References lists the answer keys the predicate reads.
func (p *Predicate) References() []string {
	if p == nil || p.Key == "" {
		return nil
	}
	return []string{p.Key}
}

func (p *Predicate) String() string {
	if p == nil {
		return "always"
	}
	switch p.Op {
	case OpEquals:
		return fmt.Sprintf("%s == %v", p.Key, p.Value)
	default:
		return p.Key
	}
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	case nil:
		return false
	default:
		return true
	}
}
