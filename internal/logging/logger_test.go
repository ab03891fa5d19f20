package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: slog.LevelInfo, Output: &buf})
	require.NoError(t, err)

	logger.Debug("hidden")
	ForRun(logger, "r1").Warn("store failed", "error", errors.New("boom"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "run_id=r1")
	assert.Contains(t, out, "err=boom")
	assert.NotContains(t, out, "error=")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: slog.LevelDebug, Format: "JSON", Output: &buf})
	require.NoError(t, err)

	logger.Debug("artifact written", "error", "none")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "artifact written", record["msg"])
	assert.Equal(t, "none", record["err"])
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New(Options{Format: "logfmt"})
	assert.Error(t, err)
}
