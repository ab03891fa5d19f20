package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rnacentral/pipeline-setup/pkg/domain"
)

// Terminal asks questions line by line on a text stream.
// Rejected input is reported and the question is asked again.
type Terminal struct {
	reader *bufio.Reader
	out    *termenv.Output
}

// NewTerminal creates an asker over r and w, defaulting to stdin and stdout.
// Colour is used only when w is a terminal.
func NewTerminal(r io.Reader, w io.Writer) *Terminal {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &Terminal{
		reader: bufio.NewReader(r),
		out:    termenv.NewOutput(w),
	}
}

// Ask presents q and blocks until a valid answer is read.
func (t *Terminal) Ask(ctx context.Context, q domain.Question) (any, error) {
	t.printQuestion(q)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fmt.Fprint(t.out, t.accent("> "))

		line, err := t.readLine()
		if err != nil {
			return nil, err
		}

		v, err := Resolve(q, line)
		if err != nil {
			var inErr *InputError
			if errors.As(err, &inErr) {
				fmt.Fprintf(t.out, "%s\n", t.out.String(inErr.Message).Foreground(t.out.Color("#fb7185")))
				continue
			}
			return nil, err
		}
		return v, nil
	}
}

func (t *Terminal) printQuestion(q domain.Question) {
	header := t.accent("? ") + t.out.String(q.Prompt).Bold().String()

	switch q.Kind {
	case domain.KindBoolean:
		hint := "(y/N)"
		if def, _ := q.Default.(bool); def {
			hint = "(Y/n)"
		}
		fmt.Fprintf(t.out, "%s %s\n", header, t.faint(hint))
	case domain.KindSelect:
		fmt.Fprintln(t.out, header)
		for i, c := range q.Choices {
			line := fmt.Sprintf("  %d) %s", i+1, c)
			if c == q.DefaultText() {
				line += " " + t.faint("(default)")
			}
			fmt.Fprintln(t.out, line)
		}
	default:
		if def := q.DefaultText(); def != "" {
			header += " " + t.faint("["+def+"]")
		}
		fmt.Fprintln(t.out, header)
	}

	if q.Instruction != "" {
		fmt.Fprintf(t.out, "  %s\n", t.faint(q.Instruction))
	}
}

// readLine returns the next sanitized line. A final line without a newline is
// still accepted; EOF before any input is io.ErrUnexpectedEOF.
func (t *Terminal) readLine() (string, error) {
	for {
		text, err := t.reader.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return "", err
			}
			if text == "" {
				return "", io.ErrUnexpectedEOF
			}
		}

		clean, serr := Sanitize(strings.TrimSpace(text))
		if serr == nil {
			return clean, nil
		}
		fmt.Fprintf(t.out, "Error: %v. Please try again.\n", serr)
		if err != nil {
			return "", io.ErrUnexpectedEOF
		}
	}
}

func (t *Terminal) accent(s string) string {
	return t.out.String(s).Foreground(t.out.Color("#818cf8")).String()
}

func (t *Terminal) faint(s string) string {
	return t.out.String(s).Faint().String()
}
