package render

import (
	"embed"
	"fmt"
	"os"
	"path"
)

// Names of the built-in templates.
const (
	TemplatePipeline  = "local.config.tmpl"
	TemplateDatabases = "database_selection.config.tmpl"
	TemplateSlurm     = "run.sh.tmpl"
)

//go:embed templates/*.tmpl
var builtin embed.FS

// Builtin returns the embedded template text for name.
func Builtin(name string) (string, error) {
	data, err := builtin.ReadFile(path.Join("templates", name))
	if err != nil {
		return "", fmt.Errorf("no built-in template %s: %w", name, err)
	}
	return string(data), nil
}

// Source returns the override file when one is configured, otherwise the built-in template.
func Source(name, override string) (string, error) {
	if override == "" {
		return Builtin(name)
	}
	data, err := os.ReadFile(override)
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", override, err)
	}
	return string(data), nil
}
