package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

const escape = 0x1b

// screenBuffer turns a raw pty byte stream into plain lines. Control
// sequences are stripped; carriage return, newline, backspace and tab move
// the cursor so progress lines that rewrite themselves render in place.
type screenBuffer struct {
	lines    [][]rune
	col      int
	maxLines int
	pending  []byte
}

func newScreenBuffer(maxLines int) *screenBuffer {
	return &screenBuffer{
		lines:    [][]rune{{}},
		maxLines: maxLines,
	}
}

// Write appends a chunk of output
func (b *screenBuffer) Write(p []byte) {
	data := append(b.pending, p...)
	data, b.pending = splitIncomplete(data)

	for _, r := range ansi.Strip(string(data)) {
		b.put(r)
	}
	b.trim()
}

// Text returns the buffered lines joined with newlines
func (b *screenBuffer) Text() string {
	out := make([]string, len(b.lines))
	for i, line := range b.lines {
		out[i] = string(line)
	}
	return strings.Join(out, "\n")
}

// Reset clears the buffer
func (b *screenBuffer) Reset() {
	b.lines = [][]rune{{}}
	b.col = 0
	b.pending = nil
}

func (b *screenBuffer) put(r rune) {
	last := len(b.lines) - 1
	switch r {
	case '\r':
		b.col = 0
	case '\n':
		b.lines = append(b.lines, []rune{})
		b.col = 0
	case '\b':
		if b.col > 0 {
			b.col--
		}
	case '\t':
		next := (b.col/8 + 1) * 8
		for b.col < next {
			b.set(last, ' ')
		}
	case '\a':
	default:
		if r < 0x20 {
			return
		}
		b.set(last, r)
	}
}

func (b *screenBuffer) set(line int, r rune) {
	if b.col < len(b.lines[line]) {
		b.lines[line][b.col] = r
	} else {
		b.lines[line] = append(b.lines[line], r)
	}
	b.col++
}

func (b *screenBuffer) trim() {
	if b.maxLines > 0 && len(b.lines) > b.maxLines {
		b.lines = b.lines[len(b.lines)-b.maxLines:]
	}
}

// splitIncomplete holds back a trailing escape sequence that has not been
// terminated yet, or a rune cut in half, so the next chunk can complete it.
func splitIncomplete(data []byte) (complete, rest []byte) {
	idx := -1
	for i := len(data) - 1; i >= 0; i-- {
		if data[i] == escape {
			idx = i
			break
		}
	}
	if idx >= 0 && !sequenceComplete(data[idx:]) {
		return holdBack(data, idx)
	}
	if n := partialRuneLen(data); n > 0 {
		return holdBack(data, len(data)-n)
	}
	return data, nil
}

func holdBack(data []byte, idx int) (complete, rest []byte) {
	rest = make([]byte, len(data)-idx)
	copy(rest, data[idx:])
	return data[:idx], rest
}

// partialRuneLen returns the length of a UTF-8 encoding cut off at the end of data
func partialRuneLen(data []byte) int {
	for i := len(data) - 1; i >= 0 && i >= len(data)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(data[i]) {
			continue
		}
		if utf8.FullRune(data[i:]) {
			return 0
		}
		return len(data) - i
	}
	return 0
}

func sequenceComplete(seq []byte) bool {
	if len(seq) < 2 {
		return false
	}
	switch seq[1] {
	case '[':
		for _, c := range seq[2:] {
			if c >= 0x40 && c <= 0x7e {
				return true
			}
		}
		return false
	case ']':
		// an ST terminator would start with a later escape
		for _, c := range seq[2:] {
			if c == '\a' {
				return true
			}
		}
		return false
	default:
		return true
	}
}
