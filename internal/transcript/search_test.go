package transcript

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func officeCorpus() *Corpus {
	return NewCorpus([]DialogueLine{
		lineAt("Jim", "Question. What kind of bear is best?"),
		lineAt("Dwight", "Bears. Beets. Battlestar Galactica."),
		lineAt("Michael", "And I knew exactly what to do. But in a much more real sense, I had no idea what to do."),
		lineAt("Kevin", "I like bananas."),
		lineAt("Dwight", "BEARS do not... what is going on?!"),
	})
}

func TestSearchBearsBeets(t *testing.T) {
	res := Search(officeCorpus(), "bears beets")
	require.True(t, res.Performed)
	assert.Equal(t, "bears beets", res.Query)
	assert.Equal(t, []int{1}, res.Positions())
}

func TestSearchIsSubstringNotToken(t *testing.T) {
	res := Search(officeCorpus(), "an")
	assert.Equal(t, []int{2, 3}, res.Positions())
}

func TestSearchIgnoresCaseAndPunctuation(t *testing.T) {
	res := Search(officeCorpus(), "BEARS!!!")
	assert.Equal(t, []int{1, 4}, res.Positions())

	lines := res.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "Dwight", lines[0].Character)
	assert.Equal(t, 4, lines[1].Position)
}

func TestSearchNoMatch(t *testing.T) {
	res := Search(officeCorpus(), "xyzzy123nomatch")
	assert.True(t, res.Performed)
	assert.True(t, res.Empty())
	assert.Equal(t, 0, res.Len())
	assert.Empty(t, res.Lines())
}

func TestSearchEmptyQueryDoesNotSearch(t *testing.T) {
	for _, q := range []string{"", " ", "   ", "\t\n", "?!", " ?! ... "} {
		res := Search(officeCorpus(), q)
		assert.False(t, res.Performed, "query %q", q)
		assert.True(t, res.Empty(), "query %q", q)
	}
}

func TestSearchSingleSpaceDoesNotMatchEverything(t *testing.T) {
	c := officeCorpus()
	res := Search(c, " ")
	assert.False(t, res.Performed)
	assert.Empty(t, res.Positions())
	assert.True(t, Search(c, " bear ").Performed)
}

func TestSearchSoundAndComplete(t *testing.T) {
	c := officeCorpus()
	for _, q := range []string{"what", "a", "bear", "do", "i", "nothing here", "s b"} {
		res := Search(c, q)
		needle := Normalize(q)
		for _, line := range c.Lines() {
			want := strings.Contains(line.NormalizedText, needle)
			assert.Equal(t, want, res.Contains(line.Position), "query %q line %d", q, line.Position)
		}
		positions := res.Positions()
		for i := 1; i < len(positions); i++ {
			assert.Less(t, positions[i-1], positions[i], "results must follow corpus order")
		}
	}
}

func TestResultsLookupFirstMatchWins(t *testing.T) {
	c := NewCorpus([]DialogueLine{
		lineAt("Michael", "No! God! No! God, please, no!"),
		lineAt("Toby", "Hi Michael."),
		lineAt("Michael", "No! God! No! God, please, no!"),
	})

	for i := 0; i < 3; i++ {
		res := Search(c, "god please")
		require.Equal(t, []int{0, 2}, res.Positions())

		label := Label(mustLine(t, c, 2))
		pos, ok := res.Lookup(label)
		require.True(t, ok)
		assert.Equal(t, 0, pos)
		assert.Equal(t, 2, res.Collisions(label))
	}
}

func TestResultsLookupUnknownLabel(t *testing.T) {
	res := Search(officeCorpus(), "bears")
	_, ok := res.Lookup("Creed (S9E23) - nope")
	assert.False(t, ok)
	assert.Equal(t, 0, res.Collisions("Creed (S9E23) - nope"))

	label := Label(mustLine(t, officeCorpus(), 4))
	pos, ok := res.Lookup(label)
	require.True(t, ok)
	assert.Equal(t, 4, pos)
	assert.Equal(t, 1, res.Collisions(label))
}

func TestZeroResults(t *testing.T) {
	var res Results
	assert.True(t, res.Empty())
	assert.False(t, res.Contains(0))
	_, ok := res.Lookup("x")
	assert.False(t, ok)
	assert.Empty(t, res.Lines())
}

func mustLine(t *testing.T, c *Corpus, pos int) DialogueLine {
	t.Helper()
	line, ok := c.Line(pos)
	require.True(t, ok)
	return line
}
