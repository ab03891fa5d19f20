package prompt

import (
	"testing"

	"github.com/rnacentral/pipeline-setup/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfirm(t *testing.T) {
	for _, in := range []string{"y", "YES", "true", "1", " Yes "} {
		v, ok := ParseConfirm(in)
		assert.True(t, ok, in)
		assert.True(t, v, in)
	}
	for _, in := range []string{"n", "No", "FALSE", "0"} {
		v, ok := ParseConfirm(in)
		assert.True(t, ok, in)
		assert.False(t, v, in)
	}
	_, ok := ParseConfirm("maybe")
	assert.False(t, ok)
}

func TestResolve_Boolean(t *testing.T) {
	q := domain.Question{Kind: domain.KindBoolean, Key: "ena", Default: true}

	v, err := Resolve(q, "")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	v, err = Resolve(q, "n")
	require.NoError(t, err)
	assert.Equal(t, false, v)

	_, err = Resolve(q, "sure")
	var inErr *InputError
	require.ErrorAs(t, err, &inErr)
	assert.Equal(t, "ena", inErr.Key)
}

func TestResolve_Select(t *testing.T) {
	q := domain.Question{
		Kind:    domain.KindSelect,
		Key:     "precompute.method",
		Default: "release",
		Choices: []string{"release", "query", "all"},
	}

	tests := []struct {
		in   string
		want string
	}{
		{"", "release"},
		{"query", "query"},
		{"3", "all"},
		{" 2 ", "query"},
	}
	for _, tt := range tests {
		v, err := Resolve(q, tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, v, tt.in)
	}

	for _, bad := range []string{"0", "4", "everything"} {
		_, err := Resolve(q, bad)
		var inErr *InputError
		require.ErrorAs(t, err, &inErr, bad)
		assert.Equal(t, "choose one of: release, query, all", inErr.Message)
	}
}

func TestResolve_TextWithValidator(t *testing.T) {
	q := domain.Question{
		Kind:     domain.KindText,
		Key:      "release",
		Default:  "",
		Validate: domain.Digits(domain.MsgInvalidNumber),
	}

	v, err := Resolve(q, "27")
	require.NoError(t, err)
	assert.Equal(t, "27", v)

	for _, bad := range []string{"", "v27", "2.7"} {
		_, err := Resolve(q, bad)
		var inErr *InputError
		require.ErrorAs(t, err, &inErr, bad)
		assert.Equal(t, domain.MsgInvalidNumber, inErr.Message)
	}
}

func TestResolve_TextDefault(t *testing.T) {
	q := domain.Question{Kind: domain.KindText, Key: "time_limit", Default: "240:00:00"}

	v, err := Resolve(q, "")
	require.NoError(t, err)
	assert.Equal(t, "240:00:00", v)
}

func TestResolve_UnknownKind(t *testing.T) {
	_, err := Resolve(domain.Question{Kind: "slider", Key: "x"}, "1")
	require.Error(t, err)

	var inErr *InputError
	assert.NotErrorAs(t, err, &inErr)
}
