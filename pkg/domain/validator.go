package domain

import "errors"

// MsgInvalidNumber is shown when numeric text input is rejected.
const MsgInvalidNumber = "Please enter a valid number"

// Validator checks raw text input. A non-nil error carries the message shown to the operator.
type Validator func(input string) error

// Digits accepts only non-empty strings made entirely of ASCII digits.
func Digits(message string) Validator {
	return func(input string) error {
		if input == "" {
			return errors.New(message)
		}
		for _, r := range input {
			if r < '0' || r > '9' {
				return errors.New(message)
			}
		}
		return nil
	}
}
