/*
Package dsl provides a fluent builder for questionnaires.

It lets the static questionnaires be declared in Go with type-checked defaults and
declarative visibility rules instead of closures, so a schema can be introspected and
validated before it is ever shown to an operator.

Example usage:

	b := dsl.New()

	b.Confirm("qa", "Do you want to run QA?").
		Default(true)

	b.Confirm("qa.rfam.run", "Do you want to run Rfam QA?").
		Default(true).
		WhenTrue("qa", false)

	b.Select("precompute.method", "Which release method should precompute use?",
		"release", "query", "all")

	questions, err := b.Build() // rejects forward references, duplicate keys...
*/
package dsl
