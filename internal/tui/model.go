package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/csheth/quoffice/internal/config"
	"github.com/csheth/quoffice/internal/session"
	"github.com/csheth/quoffice/internal/transcript"
)

// Config wires runtime options into the TUI program.
type Config struct {
	// Context bounds background jobs. Defaults to context.Background.
	Context context.Context
	Source  CorpusSource
	Radius  int
	Theme   string
	Logger  zerolog.Logger
}

// New returns a tea.Model ready to be mounted into a Program.
func New(cfg Config) tea.Model {
	if cfg.Radius < config.MinRadius || cfg.Radius > config.MaxRadius {
		cfg.Radius = config.DefaultRadius
	}
	if cfg.Theme != "" {
		SetTheme(cfg.Theme)
	}

	input := textinput.New()
	input.Placeholder = queryPlaceholder
	input.Prompt = "Quote › "
	input.CharLimit = queryCharLimit
	input.Width = 60

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	layout := newPageLayout()
	vp := viewport.New(layout.viewportWidth, layout.viewportHeight)
	vp.MouseWheelEnabled = true

	return &model{
		config:      cfg,
		logger:      cfg.Logger,
		stage:       stageLoading,
		jobs:        newJobBus(cfg.Context, cfg.Logger),
		input:       input,
		spinner:     spin,
		viewport:    vp,
		layout:      layout,
		radius:      cfg.Radius,
		runningJobs: map[string]job{},
	}
}

// LoadError returns the corpus load failure that stopped the program, if any.
func LoadError(m tea.Model) error {
	if mm, ok := m.(*model); ok {
		return mm.loadErr
	}
	return nil
}

type model struct {
	config Config
	logger zerolog.Logger
	stage  stage
	jobs   *jobBus

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	layout   pageLayout

	corpus  *transcript.Corpus
	session *session.Session
	rows    []string
	cursor  int
	offset  int
	radius  int

	viewportDirty bool
	infoMessage   string
	warnMessage   string
	errorMessage  string
	helpVisible   bool
	runningJobs   map[string]job
	loadErr       error
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.jobs.Start(jobKindLoad, loadCorpusJob(m.config.Source)),
	)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.stage == stageLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case jobStartedMsg:
		m.runningJobs[msg.Job.ID] = msg.Job
		return m, nil
	case jobDoneMsg:
		delete(m.runningJobs, msg.Job.ID)
		return m.handleJobResult(msg.Payload)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.stage == stageContext {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.viewport.Width = m.layout.viewportWidth
		m.viewport.Height = m.layout.viewportHeight
		m.input.Width = max(20, m.layout.viewportWidth-len(m.input.Prompt)-2)
		m.markViewportDirty()
		return m, nil
	}
	return m, nil
}

func (m *model) handleJobResult(payload tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := payload.(type) {
	case corpusLoadedMsg:
		if msg.err != nil {
			m.loadErr = msg.err
			m.errorMessage = msg.err.Error()
			return m, tea.Quit
		}
		m.corpus = msg.corpus
		m.session = session.New(msg.corpus)
		m.stage = stageInput
		m.infoMessage = msgReady
		return m, m.input.Focus()
	case copyResultMsg:
		if msg.err != nil {
			m.errorMessage = msg.err.Error()
			return m, nil
		}
		m.errorMessage = ""
		m.infoMessage = fmt.Sprintf("Copied %q", previewText(msg.text, 60))
		return m, nil
	}
	return m, nil
}

func (m *model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.stage {
	case stageLoading:
		if key.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		return m, nil
	case stageInput:
		return m.handleInputKey(key)
	case stageResults:
		return m.handleResultsKey(key)
	case stageContext:
		return m.handleContextKey(key)
	default:
		return m, nil
	}
}

func (m *model) handleInputKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		m.submit(m.input.Value())
		return m, nil
	case tea.KeyTab:
		if len(m.rows) > 0 {
			m.focusResults()
			return m, nil
		}
		m.infoMessage = msgNoResultsYet
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m *model) handleResultsKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, handled := m.handleSharedKey(key); handled {
		return m, cmd
	}
	switch key.String() {
	case "esc":
		return m, m.focusInput()
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "g", "home":
		m.moveCursor(-len(m.rows))
	case "G", "end":
		m.moveCursor(len(m.rows))
	case "enter", " ":
		m.selectAtCursor()
	case "left":
		m.adjustRadius(-1)
	case "right":
		m.adjustRadius(1)
	}
	return m, nil
}

func (m *model) handleContextKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, handled := m.handleSharedKey(key); handled {
		return m, cmd
	}
	switch key.String() {
	case "esc":
		m.stage = stageResults
		return m, nil
	case "g", "home":
		m.viewport.GotoTop()
		return m, nil
	case "G", "end":
		m.viewport.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(key)
	return m, cmd
}

// handleSharedKey covers keys that behave the same in the results list and
// the context pane.
func (m *model) handleSharedKey(key tea.KeyMsg) (tea.Cmd, bool) {
	switch key.String() {
	case "tab", "/":
		return m.focusInput(), true
	case "+", "=":
		m.adjustRadius(1)
	case "-", "_":
		m.adjustRadius(-1)
	case "y":
		return m.copySelection(), true
	case "?":
		m.helpVisible = !m.helpVisible
	default:
		return nil, false
	}
	return nil, true
}

func (m *model) submit(query string) {
	outcome := m.session.Submit(query)
	m.logger.Info().Str("query", query).Str("outcome", outcome.String()).Msg("search submitted")
	m.errorMessage = ""
	m.warnMessage = ""
	switch outcome {
	case session.OutcomeSkipped:
		m.infoMessage = msgEmptyQuery
	case session.OutcomeNoMatches:
		m.infoMessage = ""
		m.warnMessage = msgNoQuotes
		m.rows = nil
		m.cursor, m.offset = 0, 0
		m.viewport.SetContent("")
	case session.OutcomeMatched:
		results, _ := m.session.Results()
		m.logger.Debug().Str("query", results.Query).Int("matches", results.Len()).Msg("search matched")
		m.rows = resultRows(results)
		m.cursor, m.offset = 0, 0
		m.infoMessage = msgChooseQuote
		m.viewport.SetContent("")
		m.focusResults()
	}
}

func (m *model) focusResults() {
	m.stage = stageResults
	m.input.Blur()
}

func (m *model) focusInput() tea.Cmd {
	m.stage = stageInput
	return m.input.Focus()
}

func (m *model) moveCursor(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursor = max(0, min(len(m.rows)-1, m.cursor+delta))
	start, _ := visibleRange(len(m.rows), m.cursor, m.offset, m.layout.listHeight)
	m.offset = start
}

func (m *model) selectAtCursor() {
	results, ok := m.session.Results()
	if !ok {
		return
	}
	positions := results.Positions()
	if m.cursor < 0 || m.cursor >= len(positions) {
		return
	}
	position := positions[m.cursor]
	if err := m.session.Select(position); err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.logger.Info().Int("position", position).Msg("quote selected")
	m.errorMessage = ""
	m.infoMessage = ""
	m.stage = stageContext
	m.markViewportDirty()
}

func (m *model) adjustRadius(delta int) {
	next := max(config.MinRadius, min(config.MaxRadius, m.radius+delta))
	if next == m.radius {
		return
	}
	m.radius = next
	m.logger.Debug().Int("radius", next).Msg("context radius changed")
	m.markViewportDirty()
}

func (m *model) copySelection() tea.Cmd {
	position, ok := m.session.Selection()
	if !ok {
		m.infoMessage = msgSelectFirst
		return nil
	}
	line, ok := m.corpus.Line(position)
	if !ok {
		return nil
	}
	return m.jobs.Start(jobKindCopy, copyQuoteJob(quoteText(line)))
}

func (m *model) markViewportDirty() {
	m.viewportDirty = true
}

func (m *model) refreshViewportIfDirty() {
	if !m.viewportDirty {
		return
	}
	m.viewportDirty = false
	if m.session == nil {
		return
	}
	window, ok := m.session.Context(m.radius)
	if !ok {
		m.viewport.SetContent("")
		return
	}
	view := m.buildContextContent(window)
	m.viewport.SetContent(view.content)
	m.viewport.SetYOffset(max(0, view.selectedLine-m.viewport.Height/2))
}

func previewText(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return strings.TrimSpace(string(runes[:limit])) + "…"
}
