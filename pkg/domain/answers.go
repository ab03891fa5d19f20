package domain

import (
	"fmt"
	"sort"
)

// Answers is the raw answer set keyed by dotted question key.
// Skipped questions are absent, never nil.
type Answers map[string]any

// Bool returns the boolean answer for key, or def when the key is absent.
func (a Answers) Bool(key string, def bool) (bool, error) {
	v, ok := a[key]
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return def, &AnswerKindError{Key: key, Want: KindBoolean, Value: v}
	}
	return b, nil
}

// String returns the text answer for key, or def when the key is absent.
func (a Answers) String(key string, def string) (string, error) {
	v, ok := a[key]
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return def, &AnswerKindError{Key: key, Want: KindText, Value: v}
	}
	return s, nil
}

// Has reports whether key was answered.
func (a Answers) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// Keys returns the answered keys in sorted order.
func (a Answers) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy of the answer set.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Merge returns a new answer set holding a's answers overlaid by other's.
func (a Answers) Merge(other Answers) Answers {
	out := a.Clone()
	for k, v := range other {
		out[k] = v
	}
	return out
}

// AnswerKindError reports a present answer whose value does not match its question kind.
type AnswerKindError struct {
	Key   string
	Want  Kind
	Value any
}

func (e *AnswerKindError) Error() string {
	return fmt.Sprintf("answer %q: expected %s value, got %T", e.Key, e.Want, e.Value)
}

func (e *AnswerKindError) Unwrap() error {
	return ErrMalformedAnswer
}
