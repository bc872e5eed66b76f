package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func windowPositions(w Window) []int {
	out := make([]int, 0, len(w.Lines))
	for _, line := range w.Lines {
		out = append(out, line.Position)
	}
	return out
}

func TestContextWindowClampsAtStart(t *testing.T) {
	w, err := ContextWindow(numberedCorpus(5), 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, w.Start)
	assert.Equal(t, 4, w.End)
	assert.Equal(t, []int{0, 1, 2, 3}, windowPositions(w))
	assert.Equal(t, 4, w.Len())
}

func TestContextWindowClampsAtEnd(t *testing.T) {
	c := numberedCorpus(10)
	w, err := ContextWindow(c, 9, 4)
	require.NoError(t, err)
	assert.Equal(t, 5, w.Start)
	assert.Equal(t, c.Len(), w.End)
}

func TestContextWindowInterior(t *testing.T) {
	w, err := ContextWindow(numberedCorpus(20), 10, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 8, 9, 10, 11, 12, 13}, windowPositions(w))
	assert.Equal(t, 7, w.Len())
}

func TestContextWindowZeroRadius(t *testing.T) {
	w, err := ContextWindow(numberedCorpus(3), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, windowPositions(w))
}

func TestContextWindowAlwaysContainsSelection(t *testing.T) {
	c := numberedCorpus(7)
	for pos := 0; pos < c.Len(); pos++ {
		for radius := 0; radius <= 10; radius++ {
			w, err := ContextWindow(c, pos, radius)
			require.NoError(t, err)
			assert.LessOrEqual(t, w.Start, pos)
			assert.Greater(t, w.End, pos)
			assert.GreaterOrEqual(t, w.Start, 0)
			assert.LessOrEqual(t, w.End, c.Len())
			if w.Start > 0 && w.End < c.Len() {
				assert.Equal(t, 2*radius+1, w.Len())
			}
			selected, ok := w.SelectedLine()
			require.True(t, ok)
			assert.Equal(t, pos, selected.Position)
		}
	}
}

func TestContextWindowRejectsInvalidInput(t *testing.T) {
	c := numberedCorpus(3)

	_, err := ContextWindow(c, 3, 1)
	assert.ErrorIs(t, err, ErrPositionOutOfRange)
	_, err = ContextWindow(c, -1, 1)
	assert.ErrorIs(t, err, ErrPositionOutOfRange)
	_, err = ContextWindow(c, 0, -1)
	assert.ErrorIs(t, err, ErrNegativeRadius)
	_, err = ContextWindow(nil, 0, 1)
	assert.ErrorIs(t, err, ErrPositionOutOfRange)
}

func TestWindowIsSelectedUsesPosition(t *testing.T) {
	c := NewCorpus([]DialogueLine{
		lineAt("Michael", "Yes."),
		lineAt("Michael", "Yes."),
		lineAt("Michael", "Yes."),
	})
	w, err := ContextWindow(c, 1, 1)
	require.NoError(t, err)

	var selected []int
	for _, line := range w.Lines {
		if w.IsSelected(line) {
			selected = append(selected, line.Position)
		}
	}
	assert.Equal(t, []int{1}, selected)
}

func TestWindowHeader(t *testing.T) {
	c := NewCorpus([]DialogueLine{lineAt("Dwight", "Fact.")})
	w, err := ContextWindow(c, 0, 3)
	require.NoError(t, err)

	h := w.Header()
	assert.Equal(t, "Halloween", h.EpisodeName)
	assert.Equal(t, "Halloween | Season 2 Ep. 5 | IMDB Rating 8.2 | Air Date 2005-10-18", h.String())
	assert.Equal(t, Header{}, Window{}.Header())
}
