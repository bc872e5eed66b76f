package tuitest

import (
	"bytes"
	"io"
)

// terminalReply pairs a query a program may send to its terminal with the
// answer a real emulator would give.
type terminalReply struct {
	query []byte
	reply []byte
}

// Bubble Tea and termenv probe the cursor position and the default colors on
// startup and stall until they get an answer.
var terminalReplies = []terminalReply{
	{query: []byte("\x1b[6n"), reply: []byte("\x1b[1;1R")},
	{query: []byte("\x1b]10;?\x07"), reply: []byte("\x1b]10;rgb:cccc/cccc/cccc\x07")},
	{query: []byte("\x1b]10;?\x1b\\"), reply: []byte("\x1b]10;rgb:cccc/cccc/cccc\x1b\\")},
	{query: []byte("\x1b]11;?\x07"), reply: []byte("\x1b]11;rgb:0000/0000/0000\x07")},
	{query: []byte("\x1b]11;?\x1b\\"), reply: []byte("\x1b]11;rgb:0000/0000/0000\x1b\\")},
}

const (
	responderMaxBuffer = 256
	responderTail      = 64
)

type terminalResponder struct {
	w       io.Writer
	pending []byte
}

func newTerminalResponder(w io.Writer) *terminalResponder {
	return &terminalResponder{w: w, pending: make([]byte, 0, responderMaxBuffer)}
}

// Process scans chunk for terminal queries and answers them in stream order.
// Queries split across reads are matched once the rest arrives.
func (tr *terminalResponder) Process(chunk []byte) {
	tr.pending = append(tr.pending, chunk...)
	for {
		match, end := tr.nextQuery()
		if match == nil {
			break
		}
		tr.pending = tr.pending[end:]
		_, _ = tr.w.Write(match.reply)
	}
	if len(tr.pending) > responderMaxBuffer {
		tr.pending = append(tr.pending[:0], tr.pending[len(tr.pending)-responderTail:]...)
	}
}

// nextQuery returns the earliest query in the pending bytes and the offset
// just past it.
func (tr *terminalResponder) nextQuery() (*terminalReply, int) {
	var (
		best    *terminalReply
		bestIdx = -1
	)
	for i := range terminalReplies {
		idx := bytes.Index(tr.pending, terminalReplies[i].query)
		if idx < 0 {
			continue
		}
		if bestIdx < 0 || idx < bestIdx {
			best, bestIdx = &terminalReplies[i], idx
		}
	}
	if best == nil {
		return nil, 0
	}
	return best, bestIdx + len(best.query)
}
