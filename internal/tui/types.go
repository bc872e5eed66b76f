package tui

type stage int

const (
	stageLoading stage = iota
	stageInput
	stageResults
	stageContext
)

func (s stage) String() string {
	switch s {
	case stageLoading:
		return "loading"
	case stageInput:
		return "input"
	case stageResults:
		return "results"
	case stageContext:
		return "context"
	default:
		return "unknown"
	}
}

const (
	heroTitle   = "quoffice"
	heroTagline = "Find a line from The Office and read the scene around it."
)

const (
	msgReady         = "Type a keyword or phrase and press Enter."
	msgEmptyQuery    = "Please enter a keyword or phrase to search for quotes."
	msgNoQuotes      = "No quotes found."
	msgChooseQuote   = "Choose a quote below to see the conversation"
	msgSelectFirst   = "Select a quote with Enter before copying."
	msgNoResultsYet  = "Search for a quote first."
	queryPlaceholder = "bears beets battlestar galactica"
)

const (
	minViewportWidth          = 40
	viewportHorizontalPadding = 4
	queryCharLimit            = 200
	selectedMarker            = "> "
	cursorMarker              = "▸ "
)

type keyHint struct {
	Key         string
	Description string
}
