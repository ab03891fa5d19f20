// Package graph draws the questionnaire as a Mermaid flowchart.
package graph

import (
	"fmt"
	"strings"

	"github.com/rnacentral/pipeline-setup/pkg/domain"
)

// Overlay marks which questions a recorded run answered.
type Overlay struct {
	Answers domain.Answers
}

// GenerateMermaid produces a Mermaid flowchart from the ordered questions.
// Shapes follow the question kind:
// - Boolean: {Rhombus}
// - Select: [/Parallelogram/]
// - Text: [Rectangle]
// Each visibility rule becomes an edge from the question it reads. Rules that
// also pass while the parent is unanswered are drawn dotted.
func GenerateMermaid(questions []domain.Question, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, q := range questions {
		safeID := sanitizeMermaidID(q.Key)

		opener, closer := "[", "]"
		switch q.Kind {
		case domain.KindBoolean:
			opener, closer = "{", "}"
		case domain.KindSelect:
			opener, closer = "[/", "/]"
		}

		label := q.Key
		if d := q.DefaultText(); d != "" {
			label = fmt.Sprintf("%s <br/> default: %s", q.Key, d)
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, escapeLabel(label), closer))

		p := q.VisibleWhen
		if p == nil || p.Key == "" {
			continue
		}
		cond := "yes"
		if p.Op == domain.OpEquals {
			cond = fmt.Sprintf("= %v", p.Value)
		}
		arrow := fmt.Sprintf("-- \"%s\" -->", escapeLabel(cond))
		if p.WhenAbsent {
			arrow = fmt.Sprintf("-. \"%s\" .->", escapeLabel(cond))
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", sanitizeMermaidID(p.Key), arrow, safeID))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef answered fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef skipped fill:#eeeeee,stroke:#9e9e9e,stroke-dasharray:4,color:#000;\n")

		for _, q := range questions {
			class := "skipped"
			if _, ok := overlay.Answers[q.Key]; ok {
				class = "answered"
			}
			sb.WriteString(fmt.Sprintf("    class %s %s;\n", sanitizeMermaidID(q.Key), class))
		}
	}

	return sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, " ", "_")
	// Mermaid reserves "end" as a keyword.
	if s == "end" {
		s = "end_"
	}
	return s
}
