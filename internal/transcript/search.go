package transcript

import (
	"slices"
	"strings"
)

// Results is the ordered outcome of one search.
type Results struct {
	// Query is the normalized query the results were computed for.
	Query string
	// Performed is false when the query was blank and no search ran.
	Performed bool

	corpus    *Corpus
	positions []int
	labels    map[string]int
	counts    map[string]int
}

// Search returns every line whose normalized text contains the normalized
// query, in corpus order. A blank query runs no search.
func Search(c *Corpus, query string) Results {
	normalized := Normalize(query)
	res := Results{Query: normalized, corpus: c}
	if Blank(query) || c == nil {
		return res
	}
	res.Performed = true
	for _, line := range c.lines {
		if strings.Contains(line.NormalizedText, normalized) {
			res.positions = append(res.positions, line.Position)
		}
	}
	res.indexLabels()
	return res
}

// Len returns the number of matches.
func (r Results) Len() int {
	return len(r.positions)
}

// Empty reports whether nothing matched.
func (r Results) Empty() bool {
	return len(r.positions) == 0
}

// Positions returns the matching corpus positions in ascending order.
func (r Results) Positions() []int {
	return append([]int(nil), r.positions...)
}

// Lines returns the matching lines in corpus order.
func (r Results) Lines() []DialogueLine {
	out := make([]DialogueLine, 0, len(r.positions))
	for _, pos := range r.positions {
		if line, ok := r.corpus.Line(pos); ok {
			out = append(out, line)
		}
	}
	return out
}

// Contains reports whether position is one of the matches.
func (r Results) Contains(position int) bool {
	_, found := slices.BinarySearch(r.positions, position)
	return found
}

// Lookup resolves a display label back to a corpus position. When several
// matches render the same label the lowest position wins.
func (r Results) Lookup(label string) (int, bool) {
	pos, ok := r.labels[label]
	return pos, ok
}

// Collisions reports how many matches share label; values above one mean
// the label alone cannot tell them apart.
func (r Results) Collisions(label string) int {
	return r.counts[label]
}

func (r *Results) indexLabels() {
	r.labels = make(map[string]int, len(r.positions))
	r.counts = make(map[string]int, len(r.positions))
	for _, pos := range r.positions {
		label := Label(r.corpus.lines[pos])
		r.counts[label]++
		if _, seen := r.labels[label]; !seen {
			r.labels[label] = pos
		}
	}
}
