package transcript

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns the comparable form of a dialogue line or query: NFKC
// folded, lowercased, with every rune that is neither a word rune (letter,
// number, underscore) nor whitespace removed. Spacing is kept as-is so word
// boundaries survive.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	// cases.Caser is stateful; build one per call.
	lowered := cases.Lower(language.Und).String(norm.NFKC.String(text))
	stripped := strings.Map(func(r rune) rune {
		if isWordRune(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, lowered)
	// Removing runes can leave composable neighbours (conjoining jamo);
	// recompose so a second pass is a no-op.
	return norm.NFKC.String(stripped)
}

// Blank reports whether query normalizes to nothing but whitespace. Blank
// queries never run a search.
func Blank(query string) bool {
	return strings.TrimSpace(Normalize(query)) == ""
}

// NormalizeValue normalizes v when it is textual and returns "" otherwise.
func NormalizeValue(v any) string {
	switch s := v.(type) {
	case string:
		return Normalize(s)
	case []byte:
		return Normalize(string(s))
	case *string:
		if s == nil {
			return ""
		}
		return Normalize(*s)
	default:
		return ""
	}
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
