// Package prompt collects raw answers for an ordered questionnaire.
//
// Collect walks the questions once, left to right, skipping every question
// whose visibility rule fails so its key is absent from the result. The
// actual asking is delegated to a ports.Asker: Terminal talks to an operator,
// Scripted answers from a prepared file for headless runs.
package prompt
