package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *model) View() string {
	switch m.stage {
	case stageLoading:
		return m.viewLoading()
	case stageInput, stageResults, stageContext:
		return m.viewSearch()
	default:
		return ""
	}
}

func (m *model) viewLoading() string {
	source := "transcripts"
	if m.config.Source != nil {
		source = m.config.Source.Pattern()
	}
	body := fmt.Sprintf("%s Loading %s…", m.spinner.View(), source)
	parts := []string{m.heroView(), body}
	if m.errorMessage != "" {
		parts = append(parts, errorStyle.Render(m.errorMessage))
	}
	return joinNonEmpty(parts)
}

func (m *model) viewSearch() string {
	m.refreshViewportIfDirty()
	parts := []string{
		m.heroView(),
		m.input.View(),
		m.messagesView(),
		m.resultsView(),
		m.contextView(),
	}
	if m.helpVisible {
		parts = append(parts, m.keyLegendView())
	}
	parts = append(parts, m.statusBarView())
	return joinNonEmpty(parts)
}

func (m *model) heroView() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		heroTitleStyle.Render(heroTitle),
		taglineStyle.Render(heroTagline),
	)
}

func (m *model) messagesView() string {
	var lines []string
	if m.errorMessage != "" {
		lines = append(lines, errorStyle.Render(m.errorMessage))
	}
	if m.warnMessage != "" {
		lines = append(lines, warningStyle.Render(m.warnMessage))
	}
	if m.infoMessage != "" {
		lines = append(lines, helperStyle.Render(m.infoMessage))
	}
	return strings.Join(lines, "\n")
}

func (m *model) resultsView() string {
	if len(m.rows) == 0 {
		return ""
	}
	selected, hasSelection := m.session.Selection()
	results, _ := m.session.Results()
	positions := results.Positions()

	start, end := visibleRange(len(m.rows), m.cursor, m.offset, m.layout.listHeight)
	lines := []string{sectionHeaderStyle.Render(fmt.Sprintf("Results (%d)", len(m.rows)))}
	for i := start; i < end; i++ {
		row := m.rows[i]
		chosen := hasSelection && positions[i] == selected
		switch {
		case i == m.cursor && m.stage == stageResults:
			lines = append(lines, cursorLineStyle.Render(cursorMarker+row))
		case chosen:
			lines = append(lines, chosenLineStyle.Render("• "+row))
		default:
			lines = append(lines, "  "+row)
		}
	}
	if end-start < len(m.rows) {
		lines = append(lines, helperStyle.Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(m.rows))))
	}
	return strings.Join(lines, "\n")
}

func (m *model) contextView() string {
	if m.session == nil {
		return ""
	}
	window, ok := m.session.Context(m.radius)
	if !ok {
		return ""
	}
	return joinNonEmpty([]string{
		contextHeaderStyle.Render(window.Header().String()),
		m.viewport.View(),
	})
}

func (m *model) statusBarView() string {
	stats := []string{
		fmt.Sprintf("Lines %d", m.corpus.Len()),
		fmt.Sprintf("Radius %d", m.radius),
	}
	if len(m.rows) > 0 {
		stats = append(stats, fmt.Sprintf("Matches %d", len(m.rows)))
	}
	stats = append(stats, m.jobStatusBadges()...)
	stats = append(stats, "? help")
	return statusBarStyle.Render(strings.Join(stats, "  •  "))
}

func (m *model) jobStatusBadges() []string {
	var badges []string
	for _, j := range m.runningJobs {
		if j.Status == jobRunning {
			badges = append(badges, fmt.Sprintf("%s…", j.Kind))
		}
	}
	slices.Sort(badges)
	return badges
}

func (m *model) keyLegendView() string {
	hints := []keyHint{
		{"Enter", "Search / select"},
		{"↑/↓ j/k", "Move"},
		{"g/G", "Top or bottom"},
		{"+/- ←/→", "Context radius"},
		{"Tab /", "Edit query"},
		{"y", "Copy quote"},
		{"Esc", "Back"},
		{"?", "Toggle help"},
		{"Ctrl+C", "Quit"},
	}
	rows := []string{sectionHeaderStyle.Render("Keys")}
	const columns = 3
	for i := 0; i < len(hints); i += columns {
		end := min(i+columns, len(hints))
		var cells []string
		for _, hint := range hints[i:end] {
			key := keyStyle.Render(hint.Key)
			desc := keyDescStyle.Render(" " + hint.Description)
			cells = append(cells, lipgloss.JoinHorizontal(lipgloss.Top, key, desc))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return legendBoxStyle.Render(strings.Join(rows, "\n"))
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}
