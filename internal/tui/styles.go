package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/quoffice/internal/config"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

var themes = map[string]Palette{
	config.ThemeOffice: {
		Primary:    lipgloss.Color("#5b8fc7"),
		Secondary:  lipgloss.Color("#c9a227"),
		Foreground: lipgloss.Color("#e8e4d8"),
		Muted:      lipgloss.Color("#8a8a8a"),
		Surface:    lipgloss.Color("#2f3b4c"),
		Success:    lipgloss.Color("#7fb069"),
		Warning:    lipgloss.Color("#e6a23c"),
		Error:      lipgloss.Color("#d9534f"),
	},
	config.ThemeTokyoNight: {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	config.ThemeGruvbox: {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

var (
	heroTitleStyle     lipgloss.Style
	taglineStyle       lipgloss.Style
	sectionHeaderStyle lipgloss.Style
	helperStyle        lipgloss.Style
	warningStyle       lipgloss.Style
	errorStyle         lipgloss.Style
	statusBarStyle     lipgloss.Style
	cursorLineStyle    lipgloss.Style
	chosenLineStyle    lipgloss.Style
	contextHeaderStyle lipgloss.Style
	speakerStyle       lipgloss.Style
	selectedQuoteStyle lipgloss.Style
	keyStyle           lipgloss.Style
	keyDescStyle       lipgloss.Style
	legendBoxStyle     lipgloss.Style
)

func init() {
	SetTheme(config.ThemeOffice)
}

// SetTheme rebuilds the package styles from the named palette. Unknown names
// are ignored and reported as false.
func SetTheme(name string) bool {
	p, ok := GetPalette(name)
	if !ok {
		return false
	}
	heroTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
	taglineStyle = lipgloss.NewStyle().Italic(true).Foreground(p.Muted)
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Secondary)
	helperStyle = lipgloss.NewStyle().Foreground(p.Muted)
	warningStyle = lipgloss.NewStyle().Foreground(p.Warning)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Error)
	statusBarStyle = lipgloss.NewStyle().Foreground(p.Foreground).Background(p.Surface).Padding(0, 1)
	cursorLineStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
	chosenLineStyle = lipgloss.NewStyle().Foreground(p.Success)
	contextHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Foreground).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(p.Muted)
	speakerStyle = lipgloss.NewStyle().Foreground(p.Secondary)
	selectedQuoteStyle = lipgloss.NewStyle().Bold(true).Italic(true).Foreground(p.Primary)
	keyStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Primary).Padding(0, 1)
	keyDescStyle = lipgloss.NewStyle().Foreground(p.Foreground).PaddingRight(2)
	legendBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Muted).Padding(0, 1)
	return true
}
