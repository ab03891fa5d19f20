package schema

import (
	"fmt"
	"slices"

	"github.com/rnacentral/pipeline-setup/pkg/domain"
)

// Type defines the contract for answer validation.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "string", "bool").
	Name() string
	// Validate checks if a value conforms to this type.
	Validate(value any) error
}

// StringType validates string values.
type StringType struct{}

func (t *StringType) Name() string { return "string" }

func (t *StringType) Validate(value any) error {
	if _, ok := value.(string); !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	return nil
}

// BoolType validates boolean values.
type BoolType struct{}

func (t *BoolType) Name() string { return "bool" }

func (t *BoolType) Validate(value any) error {
	if _, ok := value.(bool); !ok {
		return fmt.Errorf("expected bool, got %T", value)
	}
	return nil
}

// OneOfType validates strings drawn from a fixed set of choices.
type OneOfType struct {
	choices []string
}

func (t *OneOfType) Name() string { return fmt.Sprintf("one of %v", t.choices) }

func (t *OneOfType) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	if !slices.Contains(t.choices, s) {
		return fmt.Errorf("%q is not one of %v", s, t.choices)
	}
	return nil
}

// CustomType applies a user-defined validation function.
type CustomType struct {
	name     string
	validate func(any) error
}

func (t *CustomType) Name() string { return t.name }

func (t *CustomType) Validate(value any) error {
	return t.validate(value)
}

// --- Factory Functions ---

// String creates a string type validator.
func String() Type { return &StringType{} }

// Bool creates a boolean type validator.
func Bool() Type { return &BoolType{} }

// OneOf creates a validator accepting only the given choices.
func OneOf(choices ...string) Type {
	return &OneOfType{choices: slices.Clone(choices)}
}

// Custom creates a custom type validator with a user-defined function.
func Custom(name string, validate func(any) error) Type {
	return &CustomType{name: name, validate: validate}
}

// ForKind returns the type an answer of the given kind must satisfy.
func ForKind(kind domain.Kind, choices []string) (Type, error) {
	switch kind {
	case domain.KindBoolean:
		return Bool(), nil
	case domain.KindText:
		return String(), nil
	case domain.KindSelect:
		return OneOf(choices...), nil
	default:
		return nil, fmt.Errorf("unsupported kind: %s", kind)
	}
}
