// Package generate runs the questionnaire end to end and writes the three
// pipeline artifacts.
//
// A run is strictly sequential: read the catalog, ask the database
// questions, ask the pipeline questions, then normalize, project, render and
// write each artifact in turn. There is no rollback: when a later artifact
// fails, earlier ones stay on disk.
package generate
