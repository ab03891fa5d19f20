/*
Package domain contains the core models of the pipeline configurator.

It defines the question model that drives the operator questionnaire, the namespace of
answer keys, and the records handed between the catalog, the normalizers and the
renderer. The package is kept pure and free of I/O so every other layer can depend on it.

# Key Entities

  - Question: one prompt definition (kind, key, default, choices, validator, visibility).
  - Field: the typed enumeration of the pipeline answer namespace ("qa.rfam.run").
  - Predicate: a declarative visibility rule evaluated against earlier answers.
  - Answers: the raw answer set returned by a prompter, keyed by dotted key.
  - DatabaseRecord: one entry of the source-database catalog.
  - Run: a recorded answer session that can be replayed later.
*/
package domain
