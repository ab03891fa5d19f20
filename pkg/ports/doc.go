/*
Package ports defines the driven ports (interfaces) of the pipeline configurator.

These interfaces decouple the core transformation from the systems around it, so the
catalog can come from PostgreSQL or a fixture file and recorded runs can live on disk,
in Redis or in memory.

# Key Interfaces

  - CatalogSource: Enumerates the source databases known to the import pipeline.
  - AnswerStore: Persists and loads recorded answer sessions for replay.
  - Asker: Collects the answer to a single question from an operator or a script.
*/
package ports
