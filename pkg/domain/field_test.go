package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestField_KeyAndVar(t *testing.T) {
	assert.Equal(t, "qa.rfam.run", FieldQARfam.Key())
	assert.Equal(t, "qa_rfam_run", FieldQARfam.Var())
	assert.Equal(t, "export_sequence_search_run", FieldExportSequenceSearch.Var())
	assert.Equal(t, "notify", FieldNotify.Var())
}

func TestField_RoundTrip(t *testing.T) {
	for _, f := range Fields() {
		got, ok := FieldFromKey(f.Key())
		assert.True(t, ok, "key %s", f.Key())
		assert.Equal(t, f, got)

		got, ok = FieldFromVar(f.Var())
		assert.True(t, ok, "var %s", f.Var())
		assert.Equal(t, f, got)
	}
}

func TestFields_OrderAndCount(t *testing.T) {
	fields := Fields()
	assert.Len(t, fields, 17)
	assert.Equal(t, FieldNotify, fields[0])
	assert.Equal(t, FieldEmail, fields[len(fields)-1])
}

func TestFieldFromKey_Unknown(t *testing.T) {
	_, ok := FieldFromKey("qa_rfam_run")
	assert.False(t, ok)
	assert.Equal(t, "field(unknown)", Field(0).String())
}
