package engine

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/history"
)

// EnterCharacter types one character at the cursor, replacing the
// selection if there is one.
//
// A newline splits the line and, when the grammar auto-indents, repeats
// the leading blanks of the line up to the cursor. A tab with a selection
// spanning lines indents every selected line instead, or outdents them
// when shift is set. In overwrite mode a typed character replaces the one
// under the cursor. Other control characters are ignored.
func (e *Editor) EnterCharacter(ch rune, shift bool) error {
	if e.buf.ReadOnly() {
		return e.readOnlyError("enter character")
	}
	if !isEnterable(ch) {
		return nil
	}

	rec := e.newRecord("Type")
	hadSelection := e.HasSelection()
	if hadSelection {
		if ch == '\t' && e.state.SelectionStart.Line != e.state.SelectionEnd.Line {
			return e.indentSelection(rec, shift)
		}
		if err := e.removeSelection(rec); err != nil {
			return err
		}
	}

	pos := e.snap(e.state.Cursor)
	text := string(ch)
	switch {
	case ch == '\n':
		if e.colorizer.Grammar().AutoIndent() {
			text += e.leadingBlanks(pos)
		}
	case e.overwrite && !hadSelection:
		if next := e.buf.Advance(pos); next.Line == pos.Line && next != pos {
			rec.Removed = e.buf.GetText(pos, next)
			rec.RemovedStart, rec.RemovedEnd = pos, next
			if err := e.buf.DeleteRange(pos, next); err != nil {
				return err
			}
		}
	}

	end, _, err := e.buf.InsertTextAt(pos, text)
	if err != nil {
		return err
	}
	rec.Added = text
	rec.AddedStart, rec.AddedEnd = pos, end

	e.collapseAt(end)
	e.colorizer.Colorize(pos.Line-1, 3)
	return e.commit(rec)
}

// InsertText inserts text at the cursor, replacing the selection if there
// is one. The cursor ends up after the inserted text.
func (e *Editor) InsertText(text string) error {
	return e.insertText(text, "Insert")
}

// Paste inserts clipboard text like InsertText, recorded as a paste.
func (e *Editor) Paste(text string) error {
	return e.insertText(text, "Paste")
}

func (e *Editor) insertText(text, description string) error {
	if e.buf.ReadOnly() {
		return e.readOnlyError(strings.ToLower(description))
	}
	if text == "" {
		return nil
	}

	rec := e.newRecord(description)
	if e.HasSelection() {
		if err := e.removeSelection(rec); err != nil {
			return err
		}
	}

	pos := e.snap(e.state.Cursor)
	end, lines, err := e.buf.InsertTextAt(pos, text)
	if err != nil {
		return err
	}
	rec.Added = e.buf.GetText(pos, end)
	rec.AddedStart, rec.AddedEnd = pos, end

	e.collapseAt(end)
	e.colorizer.Colorize(pos.Line-1, lines+2)
	return e.commit(rec)
}

// Copy returns the selected text, or the cursor's line when nothing is
// selected.
func (e *Editor) Copy() string {
	if e.HasSelection() {
		return e.SelectedText()
	}
	return e.CurrentLineText()
}

// Cut removes the selection and returns it. Without a selection it does
// nothing and returns "". A read-only editor copies instead.
func (e *Editor) Cut() (string, error) {
	if e.buf.ReadOnly() {
		return e.Copy(), nil
	}
	if !e.HasSelection() {
		return "", nil
	}

	rec := e.newRecord("Cut")
	text := e.SelectedText()
	if err := e.removeSelection(rec); err != nil {
		return "", err
	}
	return text, e.commit(rec)
}

// Delete removes the selection, or the character after the cursor. At the
// end of a line it joins the next line; at the end of the buffer it does
// nothing.
func (e *Editor) Delete() error {
	if e.buf.ReadOnly() {
		return e.readOnlyError("delete")
	}

	rec := e.newRecord("Delete")
	if e.HasSelection() {
		if err := e.removeSelection(rec); err != nil {
			return err
		}
		return e.commit(rec)
	}

	pos := e.snap(e.state.Cursor)
	next := e.buf.Advance(pos)
	if next == pos {
		return nil
	}
	return e.removeSpan(rec, pos, next)
}

// Backspace removes the selection, or the character before the cursor. At
// the start of a line it joins the previous line; at the start of the
// buffer it does nothing.
func (e *Editor) Backspace() error {
	if e.buf.ReadOnly() {
		return e.readOnlyError("backspace")
	}

	rec := e.newRecord("Backspace")
	if e.HasSelection() {
		if err := e.removeSelection(rec); err != nil {
			return err
		}
		return e.commit(rec)
	}

	pos := e.snap(e.state.Cursor)
	var start Coordinates
	if pos.Column == 0 {
		if pos.Line == 0 {
			return nil
		}
		prev := pos.Line - 1
		start = Coordinates{Line: prev, Column: e.buf.LineMaxColumn(prev)}
	} else {
		glyphs := e.buf.Line(pos.Line)
		cindex := e.buf.CharacterIndex(pos) - 1
		for cindex > 0 && buffer.IsContinuation(glyphs[cindex].Char) {
			cindex--
		}
		start = Coordinates{Line: pos.Line, Column: e.buf.CharacterColumn(pos.Line, cindex)}
	}
	return e.removeSpan(rec, start, pos)
}

// indentSelection adds or removes one level of indentation on every line
// the selection touches. A selection ending at column 0 leaves that line
// alone. Nothing is recorded if no line changed.
func (e *Editor) indentSelection(rec *history.Record, outdent bool) error {
	start := Coordinates{Line: e.state.SelectionStart.Line}
	end := e.state.SelectionEnd
	originalEnd := end
	if end.Column == 0 && end.Line > 0 {
		end.Line--
	}
	end.Column = e.buf.LineMaxColumn(end.Line)

	rec.Removed = e.buf.GetText(start, end)
	rec.RemovedStart, rec.RemovedEnd = start, end

	modified := false
	for line := start.Line; line <= end.Line; line++ {
		changed, err := e.indentLine(line, outdent)
		if err != nil {
			return err
		}
		modified = modified || changed
	}
	if !modified {
		return nil
	}

	rangeEnd := Coordinates{Line: end.Line, Column: e.buf.LineMaxColumn(end.Line)}
	selEnd := rangeEnd
	if originalEnd.Column == 0 {
		selEnd = Coordinates{Line: originalEnd.Line}
	}
	rec.Added = e.buf.GetText(start, rangeEnd)
	rec.AddedStart, rec.AddedEnd = start, rangeEnd

	e.state.SelectionStart = start
	e.state.SelectionEnd = selEnd
	e.anchors.Start = start
	e.anchors.End = selEnd
	e.setMovedCursor(selEnd)
	e.cursorPositionChanged = true

	e.colorizer.Colorize(start.Line-1, end.Line-start.Line+3)
	return e.commit(rec)
}

// indentLine inserts a leading tab or removes a leading tab or up to one
// tab width of spaces.
func (e *Editor) indentLine(line int, outdent bool) (bool, error) {
	if !outdent {
		if _, _, err := e.buf.InsertTextAt(Coordinates{Line: line}, "\t"); err != nil {
			return false, err
		}
		return true, nil
	}

	glyphs := e.buf.Line(line)
	n := 0
	if len(glyphs) > 0 && glyphs[0].Char == '\t' {
		n = 1
	} else {
		for n < len(glyphs) && n < e.buf.TabSize() && glyphs[n].Char == ' ' {
			n++
		}
	}
	if n == 0 {
		return false, nil
	}

	to := Coordinates{Line: line, Column: e.buf.CharacterColumn(line, n)}
	if err := e.buf.DeleteRange(Coordinates{Line: line}, to); err != nil {
		return false, err
	}
	return true, nil
}

// removeSelection records and deletes the selection, leaving the cursor at
// its start.
func (e *Editor) removeSelection(rec *history.Record) error {
	start, end := e.state.SelectionStart, e.state.SelectionEnd
	rec.Removed = e.buf.GetText(start, end)
	rec.RemovedStart, rec.RemovedEnd = start, end
	if err := e.buf.DeleteRange(start, end); err != nil {
		return err
	}
	rec.AddedStart, rec.AddedEnd = start, start

	e.collapseAt(start)
	e.colorizer.Colorize(start.Line, 1)
	return nil
}

// removeSpan records and deletes [start, end) and commits the record.
func (e *Editor) removeSpan(rec *history.Record, start, end Coordinates) error {
	rec.Removed = e.buf.GetText(start, end)
	rec.RemovedStart, rec.RemovedEnd = start, end
	if err := e.buf.DeleteRange(start, end); err != nil {
		return err
	}
	rec.AddedStart, rec.AddedEnd = start, start

	e.collapseAt(start)
	e.colorizer.Colorize(start.Line, 1)
	return e.commit(rec)
}

func (e *Editor) newRecord(description string) *history.Record {
	return &history.Record{Description: description, Before: e.state}
}

// commit stores rec with the current state as its after state. Records that
// change nothing are dropped.
func (e *Editor) commit(rec *history.Record) error {
	if rec.Empty() {
		return nil
	}
	rec.After = e.state
	if err := e.history.Add(rec); err != nil {
		return fmt.Errorf("record %s: %w", rec.Description, err)
	}
	return nil
}

// snap clamps c into the buffer and moves it onto a glyph boundary.
func (e *Editor) snap(c Coordinates) Coordinates {
	c = e.buf.Sanitize(c)
	return Coordinates{Line: c.Line, Column: e.buf.CharacterColumn(c.Line, e.buf.CharacterIndex(c))}
}

// leadingBlanks returns the spaces and tabs that start pos's line, up to
// pos.
func (e *Editor) leadingBlanks(pos Coordinates) string {
	glyphs := e.buf.Line(pos.Line)
	limit := e.buf.CharacterIndex(pos)
	var sb strings.Builder
	for i := 0; i < limit && i < len(glyphs); i++ {
		c := glyphs[i].Char
		if c != ' ' && c != '\t' {
			break
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

func (e *Editor) readOnlyError(op string) error {
	e.logger.Debug("%s rejected: read-only", op)
	return fmt.Errorf("%s: %w", op, ErrReadOnly)
}

func isEnterable(ch rune) bool {
	if ch == '\n' || ch == '\t' {
		return true
	}
	return ch >= 0x20 && ch != 0x7f && utf8.ValidRune(ch)
}
