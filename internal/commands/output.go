package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/csheth/quoffice/internal/transcript"
)

var (
	positionStyle = lipgloss.NewStyle().Faint(true)
	labelStyle    = lipgloss.NewStyle().Bold(true)
	headerStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Italic(true)
)

// printer writes command output, styling it only when the destination is a
// terminal so piped output stays plain.
type printer struct {
	w      io.Writer
	styled bool
}

func newPrinter(w io.Writer) printer {
	return printer{w: w, styled: isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (p printer) render(style lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return style.Render(text)
}

func (p printer) Result(line transcript.DialogueLine) {
	_, _ = fmt.Fprintf(p.w, "%s  %s\n",
		p.render(positionStyle, fmt.Sprintf("#%d", line.Position)),
		p.render(labelStyle, transcript.Label(line)))
}

func (p printer) Window(w transcript.Window) {
	_, _ = fmt.Fprintln(p.w, p.render(headerStyle, w.Header().String()))
	for _, line := range w.Lines {
		text := fmt.Sprintf("%s: %s", line.Character, line.Text)
		if w.IsSelected(line) {
			_, _ = fmt.Fprintf(p.w, "> %s\n", p.render(selectedStyle, text))
			continue
		}
		_, _ = fmt.Fprintf(p.w, "  %s\n", text)
	}
}
