package domain

import "strings"

// Field identifies one entry of the pipeline answer namespace.
// Answer keys use three-part dotted notation where a stage has sub-options
// (stage.option.property); template variables use the flat underscore form.
type Field int

const (
	FieldNotify Field = iota + 1
	FieldRelease
	FieldGenomeMapping
	FieldCPAT
	FieldQA
	FieldQARfam
	FieldQADfam
	FieldQAPfam
	FieldPrecomputeRun
	FieldPrecomputeMethod
	FieldR2DTRun
	FieldR2DTPublish
	FieldExportSequenceSearch
	FieldExportFTP
	FieldExportSearch
	FieldTimeLimit
	FieldEmail
)

var fieldKeys = map[Field]string{
	FieldNotify:               "notify",
	FieldRelease:              "release",
	FieldGenomeMapping:        "genome_mapping",
	FieldCPAT:                 "cpat",
	FieldQA:                   "qa",
	FieldQARfam:               "qa.rfam.run",
	FieldQADfam:               "qa.dfam.run",
	FieldQAPfam:               "qa.pfam.run",
	FieldPrecomputeRun:        "precompute.run",
	FieldPrecomputeMethod:     "precompute.method",
	FieldR2DTRun:              "r2dt.run",
	FieldR2DTPublish:          "r2dt.publish",
	FieldExportSequenceSearch: "export.sequence_search.run",
	FieldExportFTP:            "export.ftp.run",
	FieldExportSearch:         "export.search.run",
	FieldTimeLimit:            "time_limit",
	FieldEmail:                "email",
}

var keyFields = func() map[string]Field {
	m := make(map[string]Field, len(fieldKeys))
	for f, k := range fieldKeys {
		m[k] = f
	}
	return m
}()

// Fields returns every field in questionnaire order.
func Fields() []Field {
	out := make([]Field, 0, len(fieldKeys))
	for f := FieldNotify; f <= FieldEmail; f++ {
		out = append(out, f)
	}
	return out
}

// Key returns the canonical dotted answer key.
func (f Field) Key() string {
	return fieldKeys[f]
}

// Var returns the flat identifier used by rendering contexts.
func (f Field) Var() string {
	return FlatKey(f.Key())
}

func (f Field) String() string {
	if k, ok := fieldKeys[f]; ok {
		return k
	}
	return "field(unknown)"
}

// FieldFromKey resolves a dotted answer key back to its Field.
func FieldFromKey(key string) (Field, bool) {
	f, ok := keyFields[key]
	return f, ok
}

// FieldFromVar resolves a flat identifier back to its Field.
func FieldFromVar(name string) (Field, bool) {
	for f, k := range fieldKeys {
		if FlatKey(k) == name {
			return f, true
		}
	}
	return 0, false
}

// FlatKey rewrites a dotted key into its underscore-joined form.
func FlatKey(dotted string) string {
	return strings.ReplaceAll(dotted, ".", "_")
}
