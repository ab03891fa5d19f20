// Package logging builds the slog loggers used by the CLI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options configures New.
type Options struct {
	Level  slog.Level
	Format string
	// Output defaults to os.Stderr so prompts and progress on stdout stay clean.
	Output io.Writer
}

// New creates a configured application logger.
// It standardizes common keys (e.g., "error" -> "err").
func New(opts Options) (*slog.Logger, error) {
	w := opts.Output
	if w == nil {
		w = os.Stderr
	}
	handlerOpts := &slog.HandlerOptions{
		Level:       opts.Level,
		ReplaceAttr: replaceAttr,
	}

	switch strings.ToLower(opts.Format) {
	case "", FormatText:
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (text, json)", opts.Format)
	}
}

func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == "error" {
		a.Key = "err"
	}
	return a
}

// ForRun tags every record with the run being generated or replayed.
func ForRun(logger *slog.Logger, runID string) *slog.Logger {
	return logger.With("run_id", runID)
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
