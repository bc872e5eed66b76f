package transcript

import "fmt"

// Window is a contiguous run of lines around a selected position.
type Window struct {
	Start    int
	End      int
	Selected int
	Lines    []DialogueLine
}

// ContextWindow returns the lines within radius of position, clamped to the
// corpus bounds. End is exclusive.
func ContextWindow(c *Corpus, position, radius int) (Window, error) {
	if radius < 0 {
		return Window{}, fmt.Errorf("%w: %d", ErrNegativeRadius, radius)
	}
	if position < 0 || position >= c.Len() {
		return Window{}, fmt.Errorf("%w: %d not in [0,%d)", ErrPositionOutOfRange, position, c.Len())
	}
	start := max(0, position-radius)
	end := min(c.Len(), position+radius+1)
	return Window{
		Start:    start,
		End:      end,
		Selected: position,
		Lines:    append([]DialogueLine(nil), c.lines[start:end]...),
	}, nil
}

// Len returns the number of lines in the window.
func (w Window) Len() int {
	return w.End - w.Start
}

// IsSelected compares by position so repeated text is never confused with
// the selection.
func (w Window) IsSelected(line DialogueLine) bool {
	return line.Position == w.Selected
}

// SelectedLine returns the line the window is centred on.
func (w Window) SelectedLine() (DialogueLine, bool) {
	idx := w.Selected - w.Start
	if idx < 0 || idx >= len(w.Lines) {
		return DialogueLine{}, false
	}
	return w.Lines[idx], true
}

// Header describes the episode of the selected line.
type Header struct {
	EpisodeName string
	Season      int
	Episode     int
	Rating      string
	AirDate     string
}

// Header returns the episode metadata shown above the window.
func (w Window) Header() Header {
	line, ok := w.SelectedLine()
	if !ok {
		return Header{}
	}
	return Header{
		EpisodeName: line.EpisodeName,
		Season:      line.Season,
		Episode:     line.Episode,
		Rating:      line.Rating(),
		AirDate:     line.AirDate,
	}
}

func (h Header) String() string {
	return fmt.Sprintf("%s | Season %d Ep. %d | IMDB Rating %s | Air Date %s",
		h.EpisodeName, h.Season, h.Episode, h.Rating, h.AirDate)
}
