// Package normalize turns a raw answer set into the typed, defaulted view each
// generated artifact needs.
//
// Every normalizer is total over absent keys: a question that was never asked
// takes its documented default. A key that is present with a value of the
// wrong kind breaks the prompting contract and is reported as an error
// wrapping domain.ErrMalformedAnswer.
//
// Each call builds fresh structures and never mutates its input, so the three
// artifact views of one run cannot leak into each other.
package normalize
