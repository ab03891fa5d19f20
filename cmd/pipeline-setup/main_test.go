package main

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

// workspace lays out a config, a catalog file and an answers file in a temp dir.
func workspace(t *testing.T) (dir, cfgPath string) {
	t.Helper()
	dir = t.TempDir()

	writeFile(t, filepath.Join(dir, "catalog.yaml"), `
databases:
  - {identifier: ENA, alive: true, ordinal: 1}
  - {identifier: Ensembl, alive: true, ordinal: 2}
  - {identifier: CRW, alive: true, ordinal: 3}
  - {identifier: gtrnadb, alive: true, ordinal: 4}
`)
	writeFile(t, filepath.Join(dir, "answers.yaml"), `
databases:
  gtrnadb: false
pipeline:
  release: "27"
  qa: false
`)

	cfgPath = filepath.Join(dir, "pipeline-setup.yaml")
	writeFile(t, cfgPath, `
catalog:
  file: `+filepath.Join(dir, "catalog.yaml")+`
outputs:
  pipeline: `+filepath.Join(dir, "out", "local.config")+`
  databases: `+filepath.Join(dir, "out", "db_selection.config")+`
  slurm: `+filepath.Join(dir, "out", "run_pipeline.sh")+`
store:
  backend: file
  path: `+filepath.Join(dir, "runs")+`
`)
	return dir, cfgPath
}

func TestGenerateReplayAndRuns(t *testing.T) {
	dir, cfgPath := workspace(t)

	out, err := execute(t, "generate", "--config", cfgPath, "--answers", filepath.Join(dir, "answers.yaml"))
	require.NoError(t, err, out)
	assert.Contains(t, out, "local.config file has been generated!")
	assert.Contains(t, out, "Pipeline run script has been generated!")
	assert.Contains(t, out, "# Release 27")

	selection, err := os.ReadFile(filepath.Join(dir, "out", "db_selection.config"))
	require.NoError(t, err)
	assert.Contains(t, string(selection), "gtrnadb.run = false")
	assert.NotContains(t, string(selection), "crw")

	out, err = execute(t, "runs", "list", "--config", cfgPath)
	require.NoError(t, err)
	ids := strings.Fields(out)
	require.Len(t, ids, 1)

	require.NoError(t, os.RemoveAll(filepath.Join(dir, "out")))
	out, err = execute(t, "replay", ids[0], "--config", cfgPath)
	require.NoError(t, err, out)
	assert.FileExists(t, filepath.Join(dir, "out", "run_pipeline.sh"))

	out, err = execute(t, "runs", "show", ids[0], "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, `"release": "27"`)

	out, err = execute(t, "questions", "--format", "mermaid", "--run", ids[0], "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "class release answered;")
	assert.Contains(t, out, "class qa_rfam_run skipped;")

	out, err = execute(t, "runs", "delete", ids[0], "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed run")

	_, err = execute(t, "replay", ids[0], "--config", cfgPath)
	assert.Error(t, err)
}

func TestGenerateWithEncryptedStore(t *testing.T) {
	dir, cfgPath := workspace(t)
	key := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{7}, 32))
	cfg, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	writeFile(t, cfgPath, string(cfg)+"  encryption_key: "+key+"\n")

	out, err := execute(t, "generate", "--config", cfgPath, "--answers", filepath.Join(dir, "answers.yaml"))
	require.NoError(t, err, out)

	out, err = execute(t, "runs", "list", "--config", cfgPath)
	require.NoError(t, err)
	ids := strings.Fields(out)
	require.Len(t, ids, 1)

	raw, err := os.ReadFile(filepath.Join(dir, "runs", ids[0]+".json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "__encrypted__")
	assert.NotContains(t, string(raw), "gtrnadb")

	out, err = execute(t, "runs", "show", ids[0], "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, `"release": "27"`)
}

func TestQuestionsCommand(t *testing.T) {
	out, err := execute(t, "questions", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"key": "qa.rfam.run"`)
	assert.Contains(t, out, `"op": "truthy"`)

	out, err = execute(t, "questions", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "precompute.method")
	assert.Contains(t, out, "when precompute.run (or unanswered)")

	out, err = execute(t, "questions", "--format", "mermaid", "--run", "")
	require.NoError(t, err)
	assert.Contains(t, out, `qa -- "yes" --> qa_rfam_run`)
	assert.NotContains(t, out, "classDef")

	_, err = execute(t, "questions", "--format", "xml")
	assert.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	dir, cfgPath := workspace(t)

	out, err := execute(t, "validate", "--config", cfgPath, "--answers", filepath.Join(dir, "answers.yaml"))
	require.NoError(t, err, out)
	assert.Contains(t, out, "✓ questionnaire")
	assert.Contains(t, out, "✓ run.sh.tmpl")

	broken := filepath.Join(dir, "broken.tmpl")
	writeFile(t, broken, "{{ .missing }}")
	badCfg := filepath.Join(dir, "bad.yaml")
	writeFile(t, badCfg, "templates:\n  slurm: "+broken+"\n")

	out, err = execute(t, "validate", "--config", badCfg, "--answers", "")
	require.Error(t, err)
	assert.Contains(t, out, "✗ "+broken)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "pipeline-setup version "))
}
