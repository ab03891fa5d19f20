package schema

import (
	"errors"
	"testing"

	"github.com/rnacentral/pipeline-setup/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestions() []domain.Question {
	return []domain.Question{
		{Kind: domain.KindBoolean, Key: "qa", Default: true},
		{Kind: domain.KindBoolean, Key: "qa.rfam.run", Default: true, VisibleWhen: domain.Truthy("qa", false)},
		{Kind: domain.KindText, Key: "release", Default: ""},
		{Kind: domain.KindSelect, Key: "precompute.method", Default: "release", Choices: []string{"release", "query", "all"}},
	}
}

func TestValidateAnswers_Success(t *testing.T) {
	s, err := FromQuestions(sampleQuestions())
	require.NoError(t, err)

	err = ValidateAnswers(s, domain.Answers{
		"qa":                true,
		"release":           "27",
		"precompute.method": "all",
	})
	assert.NoError(t, err, "absent keys must not be reported")
}

func TestValidateAnswers_WrongKinds(t *testing.T) {
	s, err := FromQuestions(sampleQuestions())
	require.NoError(t, err)

	err = ValidateAnswers(s, domain.Answers{
		"qa":                "yes",
		"precompute.method": "latest",
		"unknown":           true,
	})
	require.Error(t, err)

	errs := ValidationErrors(err)
	require.Len(t, errs, 3)

	var keys []string
	for _, e := range errs {
		var ve *ValidationError
		require.True(t, errors.As(e, &ve))
		keys = append(keys, ve.Key)
	}
	assert.Equal(t, []string{"precompute.method", "qa", "unknown"}, keys)
}

func TestValidateEach(t *testing.T) {
	assert.NoError(t, ValidateEach(Bool(), domain.Answers{"rfam": true, "ena": false}))

	err := ValidateEach(Bool(), domain.Answers{"rfam": true, "ena": "no"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `field "ena"`)
}

func TestValidateQuestions_Valid(t *testing.T) {
	assert.NoError(t, ValidateQuestions(sampleQuestions()))
}

func TestValidateQuestions_ForwardReference(t *testing.T) {
	qs := []domain.Question{
		{Kind: domain.KindBoolean, Key: "qa.rfam.run", Default: true, VisibleWhen: domain.Truthy("qa", false)},
		{Kind: domain.KindBoolean, Key: "qa", Default: true},
	}
	err := ValidateQuestions(qs)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForwardReference)
}

func TestValidateQuestions_SelfReference(t *testing.T) {
	qs := []domain.Question{
		{Kind: domain.KindBoolean, Key: "qa", Default: true, VisibleWhen: domain.Truthy("qa", true)},
	}
	assert.ErrorIs(t, ValidateQuestions(qs), domain.ErrForwardReference)
}

func TestValidateQuestions_Structure(t *testing.T) {
	qs := []domain.Question{
		{Kind: domain.KindBoolean, Key: "qa", Default: "yes"},
		{Kind: domain.KindBoolean, Key: "qa", Default: true},
		{Kind: domain.KindSelect, Key: "method", Default: "release"},
		{Kind: domain.KindText, Key: "email", Choices: []string{"a"}},
		{Kind: domain.KindBoolean},
	}
	errs := ValidationErrors(ValidateQuestions(qs))
	assert.Len(t, errs, 6)
}

func TestAggregateError_Message(t *testing.T) {
	single := &AggregateError{Errors: []error{&ValidationError{Key: "qa", Reason: "required"}}}
	assert.Equal(t, `field "qa": required`, single.Error())

	multi := &AggregateError{Errors: []error{
		&ValidationError{Key: "qa", Reason: "required"},
		&ValidationError{Key: "cpat", Reason: "expected bool, got string", Value: "x"},
	}}
	assert.Contains(t, multi.Error(), "2 validation errors")
	assert.Contains(t, multi.Error(), `field "cpat": expected bool, got string (got string)`)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []string{"qa", "qa.rfam.run", "release", "precompute.method"}, Keys(sampleQuestions()))
}

func TestFromQuestions_TextValidator(t *testing.T) {
	s, err := FromQuestions([]domain.Question{
		{Kind: domain.KindText, Key: "release", Validate: domain.Digits("Please enter a valid number")},
	})
	require.NoError(t, err)

	assert.NoError(t, ValidateAnswers(s, domain.Answers{"release": "27"}))

	err = ValidateAnswers(s, domain.Answers{"release": "latest"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Please enter a valid number")

	err = ValidateAnswers(s, domain.Answers{"release": 27})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected string")
}
