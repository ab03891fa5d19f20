package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the start-of-run banner to w.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{" ┌──────────────────────────────────┐", "#818cf8"},
		{" │   RNAcentral import pipeline     │", "#a78bfa"},
		{" │   configuration                  │", "#c084fc"},
		{" └──────────────────────────────────┘", "#e879f9"},
	}

	fmt.Fprintln(out)
	for _, l := range lines {
		fmt.Fprintln(out, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Configuring RNAcentral import pipeline...")
}
