package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/quoffice/internal/transcript"
)

type pageLayout struct {
	windowWidth    int
	windowHeight   int
	viewportWidth  int
	viewportHeight int
	listHeight     int
}

func newPageLayout() pageLayout {
	return pageLayout{
		viewportWidth:  80,
		viewportHeight: 12,
		listHeight:     8,
	}
}

func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	innerWidth := width - viewportHorizontalPadding
	if innerWidth < minViewportWidth {
		innerWidth = minViewportWidth
	}
	l.viewportWidth = innerWidth
	// hero, input, messages and the status bar
	const chrome = 9
	usable := height - chrome
	if usable < 10 {
		usable = 10
	}
	l.listHeight = usable * 2 / 5
	if l.listHeight < 3 {
		l.listHeight = 3
	}
	l.viewportHeight = usable - l.listHeight
	if l.viewportHeight < 5 {
		l.viewportHeight = 5
	}
}

type contentBuilder struct {
	builder strings.Builder
	lines   int
}

func (cb *contentBuilder) WriteString(s string) {
	cb.builder.WriteString(s)
	cb.lines += strings.Count(s, "\n")
}

func (cb *contentBuilder) WriteRune(r rune) {
	cb.builder.WriteRune(r)
	if r == '\n' {
		cb.lines++
	}
}

func (cb *contentBuilder) String() string {
	return cb.builder.String()
}

func (cb *contentBuilder) Line() int {
	return cb.lines
}

type contextView struct {
	content      string
	selectedLine int
}

// buildContextContent renders the window body for the viewport and records
// which rendered line the selected quote starts on.
func (m *model) buildContextContent(w transcript.Window) contextView {
	cb := &contentBuilder{}
	wrap := m.wrapWidth(len(selectedMarker))
	selectedLine := 0
	for idx, line := range w.Lines {
		body := wordwrap.String(quoteText(line), wrap)
		if w.IsSelected(line) {
			selectedLine = cb.Line()
			cb.WriteString(selectedMarker)
			cb.WriteString(indentContinuation(selectedQuoteStyle.Render(body), "  "))
		} else {
			speaker := line.Character + ":"
			if rest, ok := strings.CutPrefix(body, speaker); ok {
				body = speakerStyle.Render(speaker) + rest
			}
			cb.WriteString("  ")
			cb.WriteString(indentContinuation(body, "  "))
		}
		if idx < len(w.Lines)-1 {
			cb.WriteRune('\n')
		}
	}
	return contextView{content: cb.String(), selectedLine: selectedLine}
}

// resultRows renders every match label. Labels shared by several matches get
// their corpus position appended so rows stay distinguishable.
func resultRows(res transcript.Results) []string {
	lines := res.Lines()
	rows := make([]string, len(lines))
	for i, line := range lines {
		label := transcript.Label(line)
		if res.Collisions(label) > 1 {
			label = fmt.Sprintf("%s #%d", label, line.Position)
		}
		rows[i] = label
	}
	return rows
}

// visibleRange returns the slice of rows to draw so cursor stays on screen.
func visibleRange(total, cursor, offset, height int) (start, end int) {
	if height <= 0 || total <= 0 {
		return 0, 0
	}
	start = offset
	if cursor < start {
		start = cursor
	}
	if cursor >= start+height {
		start = cursor - height + 1
	}
	start = max(0, min(start, total-height))
	end = min(total, start+height)
	return start, end
}

func indentContinuation(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}

func (m *model) wrapWidth(padding int) int {
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}
	if padding < 0 {
		padding = 0
	}
	available := width - padding
	if available < 20 {
		available = 20
	}
	return available
}
