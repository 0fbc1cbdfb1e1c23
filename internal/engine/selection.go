package engine

import (
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/cursor"
)

// CursorPosition returns the cursor clamped into the buffer.
func (e *Editor) CursorPosition() Coordinates {
	return e.buf.Sanitize(e.state.Cursor)
}

// SetCursorPosition moves the cursor without touching the selection.
func (e *Editor) SetCursorPosition(pos Coordinates) {
	pos = e.buf.Sanitize(pos)
	if e.state.Cursor != pos {
		e.state.Cursor = pos
		e.cursorPositionChanged = true
	}
}

// SetSelectionStart moves the start of the selection. The ends are swapped
// if the start passes the end.
func (e *Editor) SetSelectionStart(pos Coordinates) {
	e.setSelectionEnds(e.buf.Sanitize(pos), e.state.SelectionEnd)
}

// SetSelectionEnd moves the end of the selection. The ends are swapped if
// the end passes the start.
func (e *Editor) SetSelectionEnd(pos Coordinates) {
	e.setSelectionEnds(e.state.SelectionStart, e.buf.Sanitize(pos))
}

// setSelectionEnds stores a and b in order and flags a change.
func (e *Editor) setSelectionEnds(a, b Coordinates) {
	start, end := buffer.MinCoordinates(a, b), buffer.MaxCoordinates(a, b)
	if start != e.state.SelectionStart || end != e.state.SelectionEnd {
		e.state.SelectionStart = start
		e.state.SelectionEnd = end
		e.cursorPositionChanged = true
	}
}

// SetSelection selects the text between start and end, in either order,
// snapping the ends according to mode.
//
// SelectionWord moves start to the beginning of its word and, unless end
// already sits on a word boundary, moves end past its word. Boundaries
// follow color roles while the colorizer is enabled and whitespace
// otherwise. SelectionLine extends the range to whole lines.
func (e *Editor) SetSelection(start, end Coordinates, mode SelectionMode) {
	start, end = e.buf.Sanitize(start), e.buf.Sanitize(end)
	start, end = buffer.MinCoordinates(start, end), buffer.MaxCoordinates(start, end)

	switch mode {
	case cursor.SelectionWord:
		start = e.buf.FindWordStart(start)
		if !e.buf.IsOnWordBoundary(end, e.colorizer.Enabled()) {
			end = e.buf.FindWordEnd(e.buf.FindWordStart(end))
		}
	case cursor.SelectionLine:
		start = Coordinates{Line: start.Line}
		end = Coordinates{Line: end.Line, Column: e.buf.LineMaxColumn(end.Line)}
	}

	e.setSelectionEnds(start, end)
}

// SelectWordUnderCursor selects the word under the cursor.
func (e *Editor) SelectWordUnderCursor() {
	c := e.CursorPosition()
	e.SetSelection(e.buf.FindWordStart(c), e.buf.FindWordEnd(c), cursor.SelectionNormal)
}

// SelectAll selects the whole buffer.
func (e *Editor) SelectAll() {
	e.SetSelection(Coordinates{}, Coordinates{Line: e.buf.LineCount()}, cursor.SelectionNormal)
}

// HasSelection reports whether the selection is not empty.
func (e *Editor) HasSelection() bool {
	return e.state.HasSelection()
}

// SelectedText returns the selected text.
func (e *Editor) SelectedText() string {
	return e.buf.GetText(e.state.SelectionStart, e.state.SelectionEnd)
}

// selectAnchors applies the interactive anchors as the selection.
func (e *Editor) selectAnchors(mode SelectionMode) {
	start, end := e.anchors.Ordered()
	e.SetSelection(start, end, mode)
}

// collapseAt puts the cursor, the selection and the anchors at c.
func (e *Editor) collapseAt(c Coordinates) {
	e.anchors.Collapse(c)
	e.SetSelection(c, c, cursor.SelectionNormal)
	e.SetCursorPosition(c)
}
