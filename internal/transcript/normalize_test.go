package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercases", input: "Hello", want: "hello"},
		{name: "strips punctuation", input: "Bears. Beets. Battlestar Galactica.", want: "bears beets battlestar galactica"},
		{name: "keeps internal spacing", input: "That's  what she said!", want: "thats  what she said"},
		{name: "keeps digits and underscore", input: "Room_101, floor 3?", want: "room_101 floor 3"},
		{name: "keeps accented letters", input: "Café Disco!", want: "café disco"},
		{name: "folds compatibility forms", input: "ﬁnance", want: "finance"},
		{name: "folds vulgar fractions to digits", input: "½ off", want: "12 off"},
		{name: "folds trademark sign", input: "Dunder Mifflin™", want: "dunder mifflintm"},
		{name: "folds no-break space", input: "Mr.\u00a0Scott", want: "mr scott"},
		{name: "empty", input: "", want: ""},
		{name: "only punctuation", input: "?!...", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"Bears. Beets. Battlestar Galactica.",
		"I DECLARE BANKRUPTCY!!!",
		"  leading and trailing  ",
		"Ünïcödé — dashes – and “quotes”",
		"tabs\tand\nnewlines",
		"İstanbul",
		"",
	}
	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "input %q", input)
	}
}

func TestNormalizeIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, Normalize("hello"), Normalize("Hello!"))
	assert.Equal(t, Normalize("michael scott"), Normalize("MICHAEL SCOTT"))
}

func TestBlank(t *testing.T) {
	for _, q := range []string{"", " ", "\t \n", "?!", " ... "} {
		assert.True(t, Blank(q), "query %q", q)
	}
	for _, q := range []string{"a", " bears ", "3"} {
		assert.False(t, Blank(q), "query %q", q)
	}
}

func TestNormalizeValueRejectsNonText(t *testing.T) {
	s := "Dwight!"
	assert.Equal(t, "dwight", NormalizeValue("Dwight!"))
	assert.Equal(t, "dwight", NormalizeValue([]byte("Dwight!")))
	assert.Equal(t, "dwight", NormalizeValue(&s))
	assert.Equal(t, "", NormalizeValue(42))
	assert.Equal(t, "", NormalizeValue(3.5))
	assert.Equal(t, "", NormalizeValue(nil))
	assert.Equal(t, "", NormalizeValue((*string)(nil)))
}
