package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// CheckList prints one line per validation check. Colours are dropped when w
// is not a terminal.
type CheckList struct {
	w    io.Writer
	pass lipgloss.Style
	fail lipgloss.Style
	dim  lipgloss.Style
}

// NewCheckList creates a CheckList writing to w.
func NewCheckList(w io.Writer) *CheckList {
	r := lipgloss.NewRenderer(w)
	return &CheckList{
		w:    w,
		pass: r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		fail: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		dim:  r.NewStyle().Faint(true),
	}
}

// Pass reports a successful check.
func (c *CheckList) Pass(label string) {
	fmt.Fprintf(c.w, "%s %s\n", c.pass.Render("✓"), label)
}

// Fail reports a failed check with its cause.
func (c *CheckList) Fail(label string, err error) {
	fmt.Fprintf(c.w, "%s %s: %s\n", c.fail.Render("✗"), label, c.dim.Render(err.Error()))
}
