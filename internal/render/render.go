// Package render feeds rendering contexts through text/template.
//
// Templates are strict: referencing a key the context does not supply is an
// error, never an empty string.
package render

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/rnacentral/pipeline-setup/pkg/domain"
)

// TemplateError reports a template that failed to parse or execute.
type TemplateError struct {
	Name string
	Err  error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %s: %v", e.Name, e.Err)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

// Engine renders artifact templates.
type Engine struct {
	funcs template.FuncMap
}

// New creates an Engine with the helper functions available to every template.
func New() *Engine {
	return &Engine{
		funcs: template.FuncMap{
			"isGroup": isGroup,
		},
	}
}

// Render parses text and executes it against ctx.
func (e *Engine) Render(name, text string, ctx domain.RenderContext) (string, error) {
	tmpl, err := e.Parse(name, text)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any(ctx)); err != nil {
		return "", &TemplateError{Name: name, Err: err}
	}
	return buf.String(), nil
}

// Parse compiles text without executing it.
func (e *Engine) Parse(name, text string) (*template.Template, error) {
	tmpl, err := template.New(name).
		Option("missingkey=error").
		Funcs(e.funcs).
		Parse(text)
	if err != nil {
		return nil, &TemplateError{Name: name, Err: err}
	}
	return tmpl, nil
}

// isGroup reports whether a database-selection entry holds per-member flags.
func isGroup(v any) bool {
	_, ok := v.(map[string]bool)
	return ok
}
