package transcript

import "fmt"

func lineAt(character, text string) DialogueLine {
	return DialogueLine{
		Text:        text,
		Character:   character,
		Season:      2,
		Episode:     5,
		EpisodeName: "Halloween",
		IMDBRating:  8.2,
		HasRating:   true,
		AirDate:     "2005-10-18",
	}
}

func numberedCorpus(n int) *Corpus {
	lines := make([]DialogueLine, n)
	for i := range lines {
		lines[i] = lineAt("Michael", fmt.Sprintf("line %d", i))
	}
	return NewCorpus(lines)
}
