// Package schema validates questionnaires and the answers collected for them.
//
// It keeps a small type system (string, bool, one-of and custom validators) that maps
// question kinds to the value types their answers must carry. Two checks are offered:
//
// Structural checks on a questionnaire before it is asked:
//
//	if err := schema.ValidateQuestions(questions); err != nil {
//	    // duplicate keys, missing choices, forward references...
//	}
//
// Type-level checks on a raw answer set before it is normalized:
//
//	s, _ := schema.FromQuestions(questions)
//	if err := schema.ValidateAnswers(s, answers); err != nil {
//	    // a present answer has the wrong kind
//	}
//
// Absent answers are never an error here; defaulting is the normalizer's job.
// Failures are reported as *ValidationError values collected in an *AggregateError.
package schema
