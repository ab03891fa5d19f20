package tui

import (
	"fmt"
	"strings"

	"github.com/rnacentral/pipeline-setup/internal/generate"
	"github.com/rnacentral/pipeline-setup/internal/normalize"
)

// Summary describes a finished run as markdown.
func Summary(res *generate.Result) string {
	var b strings.Builder

	release := normalize.DefaultRelease
	if slurm, err := normalize.Slurm(res.Run.Pipeline); err == nil {
		release = slurm.Release
	}
	fmt.Fprintf(&b, "# Release %s\n\n", release)

	if len(res.Written) > 0 {
		b.WriteString("| Artifact | Path |\n|---|---|\n")
		names := []string{"pipeline config", "database selection", "job script"}
		for i, path := range res.Written {
			name := path
			if i < len(names) {
				name = names[i]
			}
			fmt.Fprintf(&b, "| %s | `%s` |\n", name, path)
		}
		b.WriteString("\n")
	}

	var selected, declined []string
	for _, key := range res.Run.Databases.Keys() {
		if on, _ := res.Run.Databases.Bool(key, false); on {
			selected = append(selected, key)
		} else {
			declined = append(declined, key)
		}
	}
	fmt.Fprintf(&b, "**Databases imported (%d):** %s\n\n", len(selected), listOrNone(selected))
	if len(declined) > 0 {
		fmt.Fprintf(&b, "**Skipped (%d):** %s\n\n", len(declined), strings.Join(declined, ", "))
	}

	if res.Recorded {
		fmt.Fprintf(&b, "Answers recorded as `%s`. Regenerate with `pipeline-setup replay %s`.\n", res.Run.ID, res.Run.ID)
	}
	return b.String()
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "_none_"
	}
	return strings.Join(items, ", ")
}
