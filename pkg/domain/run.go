package domain

import "time"

// Run is a recorded answer session. It holds the raw answers only;
// generated artifacts are never stored.
type Run struct {
	ID        string    `json:"id"`
	Databases Answers   `json:"databases"`
	Pipeline  Answers   `json:"pipeline"`
	CreatedAt time.Time `json:"created_at"`
}

// RenderContext is the flat mapping handed to the templating engine.
type RenderContext map[string]any
