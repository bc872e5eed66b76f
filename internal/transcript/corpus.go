// Package transcript holds the dialogue corpus and the search and context
// window operations that run over it.
package transcript

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrLoad wraps every failure to build a corpus from its source.
	ErrLoad = errors.New("transcript: load failed")
	// ErrPositionOutOfRange is returned when a position is outside the corpus.
	ErrPositionOutOfRange = errors.New("transcript: position out of range")
	// ErrNegativeRadius is returned for a context radius below zero.
	ErrNegativeRadius = errors.New("transcript: negative radius")
)

// DialogueLine is one row of the transcript table.
type DialogueLine struct {
	Position       int
	Text           string
	NormalizedText string
	Character      string
	Season         int
	Episode        int
	EpisodeName    string
	IMDBRating     float64
	HasRating      bool
	AirDate        string
}

// Rating formats the IMDb rating the way the dataset prints it, or "n/a".
func (l DialogueLine) Rating() string {
	if !l.HasRating {
		return "n/a"
	}
	return strconv.FormatFloat(l.IMDBRating, 'f', -1, 64)
}

// Label renders the display label used in result lists.
func Label(l DialogueLine) string {
	return fmt.Sprintf("%s (S%dE%d) - %s", l.Character, l.Season, l.Episode, l.Text)
}

// Corpus is the ordered, read-only dialogue table. Row order is narrative
// order and a line's index is its Position.
type Corpus struct {
	lines []DialogueLine
}

// NewCorpus builds a corpus from lines in narrative order. Positions and
// normalized text are assigned here and never recomputed.
func NewCorpus(lines []DialogueLine) *Corpus {
	owned := make([]DialogueLine, len(lines))
	for i, line := range lines {
		line.Position = i
		line.NormalizedText = Normalize(line.Text)
		owned[i] = line
	}
	return &Corpus{lines: owned}
}

// Len returns the number of lines.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.lines)
}

// Line returns the line at position.
func (c *Corpus) Line(position int) (DialogueLine, bool) {
	if c == nil || position < 0 || position >= len(c.lines) {
		return DialogueLine{}, false
	}
	return c.lines[position], true
}

// Lines returns a copy of every line.
func (c *Corpus) Lines() []DialogueLine {
	if c == nil {
		return nil
	}
	return append([]DialogueLine(nil), c.lines...)
}

// Stats summarises the corpus for the stats command.
type Stats struct {
	Lines      int
	Characters int
	Seasons    int
	Episodes   int
}

// Stats counts lines and distinct characters, seasons and episodes.
func (c *Corpus) Stats() Stats {
	if c == nil {
		return Stats{}
	}
	characters := map[string]struct{}{}
	seasons := map[int]struct{}{}
	type episodeKey struct{ season, episode int }
	episodes := map[episodeKey]struct{}{}
	for _, line := range c.lines {
		if name := strings.TrimSpace(line.Character); name != "" {
			characters[name] = struct{}{}
		}
		seasons[line.Season] = struct{}{}
		episodes[episodeKey{line.Season, line.Episode}] = struct{}{}
	}
	return Stats{
		Lines:      len(c.lines),
		Characters: len(characters),
		Seasons:    len(seasons),
		Episodes:   len(episodes),
	}
}
