package tuitest

import (
	"regexp"
	"strings"
)

// Frame is one full repaint of the screen.
type Frame struct {
	Index int
	ANSI  string
	Plain string
}

var (
	// Screen clears and cursor-home moves both start a repaint.
	repaintPattern = regexp.MustCompile(`\x1b\[[0-9;]*J|\x1b\[H`)
	csiPattern     = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)
	oscPattern     = regexp.MustCompile(`\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)
	shiftReplacer  = strings.NewReplacer("\x0e", "", "\x0f", "", "\x00", "")
)

func parseFrames(raw []byte) []Frame {
	stream := strings.ReplaceAll(string(raw), "\r", "")
	var frames []Frame
	for _, segment := range repaintPattern.Split(stream, -1) {
		plain := tidyLines(plainText(segment))
		if plain == "" {
			continue
		}
		frames = append(frames, Frame{Index: len(frames), ANSI: segment, Plain: plain})
	}
	return frames
}

// FinalFrame returns the last captured frame. The second return value is false
// when no frames were recorded.
func (r *Recording) FinalFrame() (Frame, bool) {
	if r == nil || len(r.Frames) == 0 {
		return Frame{}, false
	}
	return r.Frames[len(r.Frames)-1], true
}

// Plain returns the whole terminal stream without escape sequences. Renderers
// that repaint only changed lines leave partial frames, so assertions about
// text that appeared at any point should use this instead of FinalFrame.
func (r *Recording) Plain() string {
	if r == nil {
		return ""
	}
	return plainText(strings.ReplaceAll(string(r.Raw), "\r", ""))
}

// Contains reports whether text was written to the terminal at any point.
func (r *Recording) Contains(text string) bool {
	return strings.Contains(r.Plain(), text)
}

func plainText(s string) string {
	s = oscPattern.ReplaceAllString(s, "")
	s = csiPattern.ReplaceAllString(s, "")
	return shiftReplacer.Replace(s)
}

// tidyLines drops trailing spaces and trailing blank lines.
func tidyLines(s string) string {
	lines := strings.Split(s, "\n")
	end := 0
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
		if strings.TrimSpace(lines[i]) != "" {
			end = i + 1
		}
	}
	return strings.Join(lines[:end], "\n")
}
