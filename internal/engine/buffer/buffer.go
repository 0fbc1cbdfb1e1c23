package buffer

import "strings"

// Observer is told which lines a mutation touched. Lines are in
// [from, from+count); a count of -1 means through the end of the buffer.
// A count of 0 still reports that comment and string boundaries may have
// moved.
type Observer interface {
	LinesChanged(from, count int)
}

// Buffer is an ordered list of glyph lines. It always holds at least one
// line.
type Buffer struct {
	lines       []Line
	tabSize     int
	readOnly    bool
	textChanged bool
	observer    Observer

	breakpoints  map[int]bool
	errorMarkers map[int]string
}

// New creates a buffer holding one empty line.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		lines:        []Line{{}},
		tabSize:      DefaultTabSize,
		breakpoints:  make(map[int]bool),
		errorMarkers: make(map[int]string),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewFromString creates a buffer with initial content.
func NewFromString(s string, opts ...Option) *Buffer {
	b := New(opts...)
	b.SetText(s)
	b.textChanged = false
	return b
}

// SetObserver replaces the observer notified of touched lines.
func (b *Buffer) SetObserver(o Observer) {
	b.observer = o
}

func (b *Buffer) notify(from, count int) {
	if b.observer != nil {
		b.observer.LinesChanged(from, count)
	}
}

// SetText replaces the whole content. Lines are split on '\n' and '\r' is
// dropped. Content can be replaced while the buffer is read-only.
func (b *Buffer) SetText(text string) {
	b.lines = b.lines[:0]
	for _, s := range strings.Split(text, "\n") {
		b.lines = append(b.lines, lineFromString(s))
	}
	b.textChanged = true
	b.notify(0, -1)
}

// SetLines replaces the whole content with one line per element. An empty
// slice leaves a single empty line.
func (b *Buffer) SetLines(lines []string) {
	b.lines = b.lines[:0]
	for _, s := range lines {
		b.lines = append(b.lines, lineFromString(s))
	}
	if len(b.lines) == 0 {
		b.lines = append(b.lines, Line{})
	}
	b.textChanged = true
	b.notify(0, -1)
}

// Text returns the whole content, lines joined by '\n'.
func (b *Buffer) Text() string {
	last := len(b.lines) - 1
	return b.GetText(Coordinates{}, Coordinates{Line: last, Column: b.LineMaxColumn(last)})
}

// Lines returns the content as one string per line.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = l.String()
	}
	return out
}

// LineCount returns the number of lines. It is never less than one.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the glyphs of a line, or nil if the index is out of range.
// The slice aliases buffer storage: callers may change glyph colors and
// flags but must not change its length or characters.
func (b *Buffer) Line(index int) Line {
	if index < 0 || index >= len(b.lines) {
		return nil
	}
	return b.lines[index]
}

// LineText returns the text of a line, or "" if the index is out of range.
func (b *Buffer) LineText(index int) string {
	return b.Line(index).String()
}

// TabSize returns the tab size.
func (b *Buffer) TabSize() int {
	return b.tabSize
}

// SetTabSize changes the tab size, clamped to [1, MaxTabSize].
func (b *Buffer) SetTabSize(size int) {
	b.tabSize = clampTabSize(size)
}

// ReadOnly reports whether mutations are rejected.
func (b *Buffer) ReadOnly() bool {
	return b.readOnly
}

// SetReadOnly toggles read-only mode.
func (b *Buffer) SetReadOnly(readOnly bool) {
	b.readOnly = readOnly
}

// TextChanged reports whether the content changed since the flag was last
// cleared.
func (b *Buffer) TextChanged() bool {
	return b.textChanged
}

// ClearTextChanged resets the text-changed flag.
func (b *Buffer) ClearTextChanged() {
	b.textChanged = false
}
