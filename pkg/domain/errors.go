package domain

import "errors"

// ErrCatalogUnavailable is returned when the database catalog cannot be read.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// ErrMalformedAnswer is returned when an answer value does not match its question kind.
var ErrMalformedAnswer = errors.New("malformed answer")

// ErrRunNotFound is returned when a recorded run cannot be found in the store.
var ErrRunNotFound = errors.New("run not found")

// ErrForwardReference is returned when a visibility rule reads a later question.
var ErrForwardReference = errors.New("visibility rule references a later question")
