package engine

import (
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/cursor"
)

// Movement never records undo entries. With selecting set, the selection
// grows or shrinks from the anchor the cursor left; otherwise it collapses
// at the new cursor.

// MoveUp moves the cursor up by amount lines. The column is remembered
// across short lines.
func (e *Editor) MoveUp(amount int, selecting bool) {
	old := e.state.Cursor
	e.state.Cursor.Line = max(0, old.Line-amount)
	if old == e.state.Cursor {
		return
	}
	e.cursorPositionChanged = true
	e.anchors.MoveBackward(old, e.state.Cursor, selecting)
	e.selectAnchors(cursor.SelectionNormal)
}

// MoveDown moves the cursor down by amount lines.
func (e *Editor) MoveDown(amount int, selecting bool) {
	old := e.state.Cursor
	e.state.Cursor.Line = max(0, min(e.buf.LineCount()-1, old.Line+amount))
	if old == e.state.Cursor {
		return
	}
	e.cursorPositionChanged = true
	e.anchors.MoveForward(old, e.state.Cursor, selecting)
	e.selectAnchors(cursor.SelectionNormal)
}

// MoveLeft moves the cursor back by amount characters, wrapping to the end
// of the previous line. In word mode each step lands on a word start.
func (e *Editor) MoveLeft(amount int, selecting, wordMode bool) {
	old := e.state.Cursor
	pos := e.CursorPosition()
	line := pos.Line
	cindex := e.buf.CharacterIndex(pos)

	for ; amount > 0; amount-- {
		if cindex == 0 {
			if line > 0 {
				line--
				cindex = len(e.buf.Line(line))
			}
		} else {
			glyphs := e.buf.Line(line)
			cindex--
			for cindex > 0 && buffer.IsContinuation(glyphs[cindex].Char) {
				cindex--
			}
		}

		if wordMode {
			pos = e.buf.FindWordStart(Coordinates{Line: line, Column: e.buf.CharacterColumn(line, cindex)})
			cindex = e.buf.CharacterIndex(pos)
		}
	}

	e.setMovedCursor(Coordinates{Line: line, Column: e.buf.CharacterColumn(line, cindex)})
	e.anchors.MoveBackward(old, e.state.Cursor, selecting)
	e.selectAnchors(movementMode(selecting, wordMode))
}

// MoveRight moves the cursor forward by amount characters, wrapping to the
// start of the next line. In word mode each step lands on the next word.
func (e *Editor) MoveRight(amount int, selecting, wordMode bool) {
	old := e.state.Cursor
	pos := e.CursorPosition()
	cindex := e.buf.CharacterIndex(pos)

	for ; amount > 0; amount-- {
		glyphs := e.buf.Line(pos.Line)
		if cindex >= len(glyphs) {
			if pos.Line >= e.buf.LineCount()-1 {
				break
			}
			pos = Coordinates{Line: pos.Line + 1}
			cindex = 0
			continue
		}

		cindex = min(cindex+buffer.CharLength(glyphs[cindex].Char), len(glyphs))
		pos = Coordinates{Line: pos.Line, Column: e.buf.CharacterColumn(pos.Line, cindex)}
		if wordMode {
			pos = e.buf.FindNextWord(pos)
			cindex = e.buf.CharacterIndex(pos)
		}
	}

	e.setMovedCursor(pos)
	e.anchors.MoveForward(old, e.state.Cursor, selecting)
	e.selectAnchors(movementMode(selecting, wordMode))
}

// MoveTop moves the cursor to the start of the buffer.
func (e *Editor) MoveTop(selecting bool) {
	old := e.state.Cursor
	e.SetCursorPosition(Coordinates{})
	if old == e.state.Cursor {
		return
	}
	e.anchors.MoveBackward(old, e.state.Cursor, selecting)
	e.selectAnchors(cursor.SelectionNormal)
}

// MoveBottom moves the cursor to the start of the last line.
func (e *Editor) MoveBottom(selecting bool) {
	old := e.state.Cursor
	e.SetCursorPosition(Coordinates{Line: e.buf.LineCount() - 1})
	if old == e.state.Cursor {
		return
	}
	e.anchors.MoveForward(old, e.state.Cursor, selecting)
	e.selectAnchors(cursor.SelectionNormal)
}

// MoveHome moves the cursor to the start of its line.
func (e *Editor) MoveHome(selecting bool) {
	old := e.state.Cursor
	e.SetCursorPosition(Coordinates{Line: e.CursorPosition().Line})
	if old == e.state.Cursor {
		return
	}
	e.anchors.MoveBackward(old, e.state.Cursor, selecting)
	e.selectAnchors(cursor.SelectionNormal)
}

// MoveEnd moves the cursor to the end of its line.
func (e *Editor) MoveEnd(selecting bool) {
	old := e.state.Cursor
	line := e.CursorPosition().Line
	e.SetCursorPosition(Coordinates{Line: line, Column: e.buf.LineMaxColumn(line)})
	if old == e.state.Cursor {
		return
	}
	e.anchors.MoveForward(old, e.state.Cursor, selecting)
	e.selectAnchors(cursor.SelectionNormal)
}

func (e *Editor) setMovedCursor(pos Coordinates) {
	if e.state.Cursor != pos {
		e.state.Cursor = pos
		e.cursorPositionChanged = true
	}
}

func movementMode(selecting, wordMode bool) SelectionMode {
	if selecting && wordMode {
		return cursor.SelectionWord
	}
	return cursor.SelectionNormal
}
