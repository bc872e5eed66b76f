package tui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/quoffice/internal/transcript"
)

// CorpusSource supplies the transcript corpus. *transcript.Source satisfies it.
type CorpusSource interface {
	Pattern() string
	Corpus() (*transcript.Corpus, error)
}

type corpusLoadedMsg struct {
	corpus *transcript.Corpus
	err    error
}

type copyResultMsg struct {
	text string
	err  error
}

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

func loadCorpusJob(src CorpusSource) jobRunner {
	return func(context.Context) (tea.Msg, error) {
		if src == nil {
			err := fmt.Errorf("%w: no transcript source configured", transcript.ErrLoad)
			return corpusLoadedMsg{err: err}, err
		}
		corpus, err := src.Corpus()
		if err != nil {
			return corpusLoadedMsg{err: err}, err
		}
		return corpusLoadedMsg{corpus: corpus}, nil
	}
}

func copyQuoteJob(text string) jobRunner {
	return func(context.Context) (tea.Msg, error) {
		if err := writeClipboard(text); err != nil {
			err = fmt.Errorf("copy to clipboard: %w", err)
			return copyResultMsg{text: text, err: err}, err
		}
		return copyResultMsg{text: text}, nil
	}
}

// quoteText renders a line the way it is copied and printed.
func quoteText(line transcript.DialogueLine) string {
	return fmt.Sprintf("%s: %s", line.Character, line.Text)
}
