// Package session tracks one user's search results and selected line across
// interactions with the transcript corpus.
package session

import (
	"errors"
	"fmt"

	"github.com/csheth/quoffice/internal/transcript"
)

var (
	// ErrNoResults is returned when selecting while no results are held.
	ErrNoResults = errors.New("session: no search results")
	// ErrNotInResults is returned when a position is not one of the matches.
	ErrNotInResults = errors.New("session: position not in results")
)

// State is the result half of a session. It is exactly one of Unset,
// Empty or Populated.
type State interface {
	isState()
}

// Unset means no search has run yet.
type Unset struct{}

// Empty means the last search ran and matched nothing.
type Empty struct {
	Query string
}

// Populated holds the matches of the last search.
type Populated struct {
	Query   string
	Results transcript.Results
}

func (Unset) isState()     {}
func (Empty) isState()     {}
func (Populated) isState() {}

// Outcome describes what Submit did.
type Outcome int

const (
	// OutcomeSkipped means the query was empty and nothing changed.
	OutcomeSkipped Outcome = iota
	// OutcomeNoMatches means the search ran and the state is now Empty.
	OutcomeNoMatches
	// OutcomeMatched means the state is now Populated.
	OutcomeMatched
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeNoMatches:
		return "no-matches"
	case OutcomeMatched:
		return "matched"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Session is owned by a single interactive user and is not safe for
// concurrent use. The corpus it reads is shared and never mutated.
type Session struct {
	corpus *transcript.Corpus
	state  State

	selected    int
	hasSelected bool
}

// New starts a session with no search performed.
func New(corpus *transcript.Corpus) *Session {
	return &Session{corpus: corpus, state: Unset{}}
}

// Corpus returns the corpus the session searches.
func (s *Session) Corpus() *transcript.Corpus {
	return s.corpus
}

// State returns the current result state.
func (s *Session) State() State {
	return s.state
}

// Results returns the current matches when the state is Populated.
func (s *Session) Results() (transcript.Results, bool) {
	populated, ok := s.state.(Populated)
	if !ok {
		return transcript.Results{}, false
	}
	return populated.Results, true
}

// Submit runs a search. An empty query leaves the session untouched; any
// other query replaces the results and clears the selection.
func (s *Session) Submit(query string) Outcome {
	results := transcript.Search(s.corpus, query)
	if !results.Performed {
		return OutcomeSkipped
	}
	s.selected, s.hasSelected = 0, false
	if results.Empty() {
		s.state = Empty{Query: results.Query}
		return OutcomeNoMatches
	}
	s.state = Populated{Query: results.Query, Results: results}
	return OutcomeMatched
}

// Select picks position from the current results.
func (s *Session) Select(position int) error {
	results, ok := s.Results()
	if !ok {
		return ErrNoResults
	}
	if !results.Contains(position) {
		return fmt.Errorf("%w: %d", ErrNotInResults, position)
	}
	s.selected, s.hasSelected = position, true
	return nil
}

// SelectLabel picks the result rendered as label. Colliding labels resolve
// to the lowest position.
func (s *Session) SelectLabel(label string) error {
	results, ok := s.Results()
	if !ok {
		return ErrNoResults
	}
	position, found := results.Lookup(label)
	if !found {
		return fmt.Errorf("%w: label %q", ErrNotInResults, label)
	}
	return s.Select(position)
}

// ClearSelection drops the selection but keeps the results.
func (s *Session) ClearSelection() {
	s.selected, s.hasSelected = 0, false
}

// Selection returns the selected corpus position.
func (s *Session) Selection() (int, bool) {
	if !s.hasSelected {
		return 0, false
	}
	return s.selected, true
}

// Context returns the window around the selection. It reports false when
// there is nothing valid to show.
func (s *Session) Context(radius int) (transcript.Window, bool) {
	position, ok := s.Selection()
	if !ok {
		return transcript.Window{}, false
	}
	if results, ok := s.Results(); !ok || !results.Contains(position) {
		return transcript.Window{}, false
	}
	window, err := transcript.ContextWindow(s.corpus, position, radius)
	if err != nil {
		return transcript.Window{}, false
	}
	return window, true
}
