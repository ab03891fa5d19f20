package prompt

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxInputSize bounds a single answer line.
	DefaultMaxInputSize = 4096
	// EnvMaxInputSize overrides DefaultMaxInputSize.
	EnvMaxInputSize = "PIPELINE_SETUP_MAX_INPUT_SIZE"
)

// Input rejections. Both are reported to the operator, who is asked again.
var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
)

// Sanitize bounds the size of an answer line, rejects invalid UTF-8 and drops
// control characters. Tabs survive; line breaks never reach here.
func Sanitize(input string) (string, error) {
	if limit := maxInputSize(); len(input) > limit {
		return "", fmt.Errorf("%w: %d bytes, limit %d", ErrInputTooLarge, len(input), limit)
	}
	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}
	return strings.Map(func(r rune) rune {
		if r != '\t' && unicode.IsControl(r) {
			return -1
		}
		return r
	}, input), nil
}

func maxInputSize() int {
	size, err := strconv.Atoi(os.Getenv(EnvMaxInputSize))
	if err != nil || size <= 0 {
		return DefaultMaxInputSize
	}
	return size
}
