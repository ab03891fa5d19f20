package questions

import (
	"testing"

	"github.com/rnacentral/pipeline-setup/pkg/domain"
	"github.com/rnacentral/pipeline-setup/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabases(t *testing.T) {
	qs := Databases([]string{"ena", "ensembl"})
	require.Len(t, qs, 2)

	assert.Equal(t, "ena", qs[0].Key)
	assert.Equal(t, domain.KindBoolean, qs[0].Kind)
	assert.Equal(t, true, qs[0].Default)
	assert.Equal(t, "Do you want to import ensembl?", qs[1].Prompt)
	assert.NoError(t, schema.ValidateQuestions(qs))

	assert.Empty(t, Databases(nil))
}

func TestPipeline_OrderMatchesFields(t *testing.T) {
	qs := Pipeline()

	fields := domain.Fields()
	require.Len(t, qs, len(fields))
	for i, f := range fields {
		assert.Equal(t, f.Key(), qs[i].Key, "position %d", i)
	}
}

func TestPipeline_IsStructurallyValid(t *testing.T) {
	assert.NoError(t, schema.ValidateQuestions(Pipeline()))
}

func TestPipeline_Visibility(t *testing.T) {
	byKey := make(map[string]domain.Question)
	for _, q := range Pipeline() {
		byKey[q.Key] = q
	}

	for _, key := range []string{"qa.rfam.run", "qa.dfam.run", "qa.pfam.run"} {
		q := byKey[key]
		assert.False(t, q.Visible(domain.Answers{"qa": false}), key)
		assert.True(t, q.Visible(domain.Answers{"qa": true}), key)
		assert.False(t, q.Visible(domain.Answers{}), "%s hidden when qa was never asked", key)
	}

	method := byKey["precompute.method"]
	assert.False(t, method.Visible(domain.Answers{"precompute.run": false}))
	assert.True(t, method.Visible(domain.Answers{"precompute.run": true}))
	assert.Equal(t, []string{MethodRelease, MethodQuery, MethodAll}, method.Choices)

	publish := byKey["r2dt.publish"]
	assert.False(t, publish.Visible(domain.Answers{"r2dt.run": false}))
	assert.Equal(t, "Leave blank to use default location", publish.Instruction)

	for _, key := range []string{"notify", "release", "qa", "time_limit", "email"} {
		assert.Nil(t, byKey[key].VisibleWhen, key)
	}
}

func TestPipeline_Defaults(t *testing.T) {
	byKey := make(map[string]domain.Question)
	for _, q := range Pipeline() {
		byKey[q.Key] = q
	}

	assert.Equal(t, true, byKey["qa.rfam.run"].Default)
	assert.Equal(t, false, byKey["qa.dfam.run"].Default)
	assert.Equal(t, false, byKey["qa.pfam.run"].Default)
	assert.Equal(t, "release", byKey["precompute.method"].Default)
	assert.Equal(t, DefaultTimeLimit, byKey["time_limit"].Default)
	assert.Equal(t, "", byKey["email"].Default)
}

func TestPipeline_ReleaseValidator(t *testing.T) {
	var release domain.Question
	for _, q := range Pipeline() {
		if q.Key == "release" {
			release = q
		}
	}
	require.NotNil(t, release.Validate)
	assert.NoError(t, release.Validate("27"))

	err := release.Validate("twenty-seven")
	require.Error(t, err)
	assert.Equal(t, "Please enter a valid number", err.Error())
}
