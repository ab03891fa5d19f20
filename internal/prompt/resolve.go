package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rnacentral/pipeline-setup/pkg/domain"
)

// InputError is a rejected answer. The operator can retry after seeing Message.
type InputError struct {
	Key     string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Key, e.Message)
}

// ParseConfirm interprets a yes/no reply.
func ParseConfirm(input string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes", "true", "1":
		return true, true
	case "n", "no", "false", "0":
		return false, true
	default:
		return false, false
	}
}

// Resolve turns raw operator input into a typed answer for q.
// Empty input takes the question default; text answers then go through the validator.
func Resolve(q domain.Question, input string) (any, error) {
	input = strings.TrimSpace(input)

	switch q.Kind {
	case domain.KindBoolean:
		if input == "" {
			def, _ := q.Default.(bool)
			return def, nil
		}
		v, ok := ParseConfirm(input)
		if !ok {
			return nil, &InputError{Key: q.Key, Message: fmt.Sprintf("invalid confirmation %q (expected y/n/yes/no)", input)}
		}
		return v, nil

	case domain.KindSelect:
		if input == "" {
			input = q.DefaultText()
		}
		for _, c := range q.Choices {
			if c == input {
				return c, nil
			}
		}
		if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(q.Choices) {
			return q.Choices[n-1], nil
		}
		return nil, &InputError{Key: q.Key, Message: fmt.Sprintf("choose one of: %s", strings.Join(q.Choices, ", "))}

	case domain.KindText:
		if input == "" {
			input = q.DefaultText()
		}
		if q.Validate != nil {
			if err := q.Validate(input); err != nil {
				return nil, &InputError{Key: q.Key, Message: err.Error()}
			}
		}
		return input, nil

	default:
		return nil, fmt.Errorf("question %q has unsupported kind %q", q.Key, q.Kind)
	}
}
