package prompt

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/rnacentral/pipeline-setup/internal/questions"
	"github.com/rnacentral/pipeline-setup/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminal_Confirm(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("\nn\n"), &out)
	qs := questions.Databases([]string{"ena", "rfam"})

	got, err := Collect(context.Background(), qs, term)
	require.NoError(t, err)

	assert.Equal(t, domain.Answers{"ena": true, "rfam": false}, got)
	assert.Contains(t, out.String(), "? Do you want to import ena? (Y/n)")
}

func TestTerminal_RepromptsOnInvalidRelease(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("\nabc\n27\n"), &out)
	q := domain.Question{
		Kind:     domain.KindText,
		Key:      "release",
		Prompt:   "Enter the release version (e.g. 27):",
		Validate: domain.Digits(domain.MsgInvalidNumber),
	}

	v, err := term.Ask(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, "27", v)
	assert.Equal(t, 2, strings.Count(out.String(), domain.MsgInvalidNumber))
}

func TestTerminal_Select(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("all\n"), &out)
	q := domain.Question{
		Kind:    domain.KindSelect,
		Key:     "precompute.method",
		Prompt:  "Which release method should precompute use?",
		Default: "release",
		Choices: []string{"release", "query", "all"},
	}

	v, err := term.Ask(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, "all", v)
	assert.Contains(t, out.String(), "  1) release (default)")
	assert.Contains(t, out.String(), "  3) all")
}

func TestTerminal_Instruction(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("\n"), &out)
	q := domain.Question{
		Kind:        domain.KindText,
		Key:         "r2dt.publish",
		Prompt:      "Where should R2DT publish the secondary structures?",
		Instruction: "Leave blank to use default location",
		Default:     "",
	}

	v, err := term.Ask(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, "", v)
	assert.Contains(t, out.String(), "Leave blank to use default location")
}

func TestTerminal_LastLineWithoutNewline(t *testing.T) {
	term := NewTerminal(strings.NewReader("yes"), io.Discard)
	v, err := term.Ask(context.Background(), domain.Question{Kind: domain.KindBoolean, Key: "notify"})
	require.NoError(t, err)
	assert.Equal(t, true, v)
}

func TestTerminal_EOF(t *testing.T) {
	term := NewTerminal(strings.NewReader(""), io.Discard)
	_, err := term.Ask(context.Background(), domain.Question{Kind: domain.KindBoolean, Key: "notify"})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestTerminal_StripsControlCharacters(t *testing.T) {
	term := NewTerminal(strings.NewReader("2\x1b7\n"), io.Discard)
	v, err := term.Ask(context.Background(), domain.Question{Kind: domain.KindText, Key: "release"})
	require.NoError(t, err)
	assert.Equal(t, "27", v)
}
