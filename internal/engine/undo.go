package engine

import (
	"github.com/dshills/quill/internal/engine/cursor"
	"github.com/dshills/quill/internal/engine/history"
)

// editorTarget replays undo records against the editor.
type editorTarget struct {
	e *Editor
}

func (t editorTarget) DeleteRange(start, end Coordinates) error {
	return t.e.buf.DeleteRange(start, end)
}

func (t editorTarget) InsertTextAt(where Coordinates, text string) (Coordinates, int, error) {
	return t.e.buf.InsertTextAt(where, text)
}

func (t editorTarget) Colorize(fromLine, count int) {
	t.e.colorizer.Colorize(fromLine, count)
}

func (t editorTarget) RestoreState(s cursor.State) {
	t.e.state = s
	t.e.anchors = cursor.Anchors{Start: s.SelectionStart, End: s.SelectionEnd}
	t.e.cursorPositionChanged = true
}

var _ history.Target = editorTarget{}

// CanUndo reports whether Undo would revert anything.
func (e *Editor) CanUndo() bool {
	return !e.buf.ReadOnly() && e.history.CanUndo()
}

// CanRedo reports whether Redo would reapply anything.
func (e *Editor) CanRedo() bool {
	return !e.buf.ReadOnly() && e.history.CanRedo()
}

// Undo reverts up to steps edits and returns how many were reverted. It is
// a no-op on a read-only editor.
func (e *Editor) Undo(steps int) (int, error) {
	if e.buf.ReadOnly() {
		return 0, nil
	}
	n, err := e.history.Undo(editorTarget{e}, steps)
	if err != nil {
		e.logger.Error("undo failed after %d steps: %v", n, err)
		return n, err
	}
	if n > 0 {
		e.logger.Debug("undid %d edits", n)
	}
	return n, nil
}

// Redo reapplies up to steps undone edits and returns how many were
// reapplied. It is a no-op on a read-only editor.
func (e *Editor) Redo(steps int) (int, error) {
	if e.buf.ReadOnly() {
		return 0, nil
	}
	n, err := e.history.Redo(editorTarget{e}, steps)
	if err != nil {
		e.logger.Error("redo failed after %d steps: %v", n, err)
		return n, err
	}
	if n > 0 {
		e.logger.Debug("redid %d edits", n)
	}
	return n, nil
}

// UndoDescription names the edit Undo would revert.
func (e *Editor) UndoDescription() (string, bool) {
	info, ok := e.history.PeekUndo()
	return info.Description, ok
}

// RedoDescription names the edit Redo would reapply.
func (e *Editor) RedoDescription() (string, bool) {
	info, ok := e.history.PeekRedo()
	return info.Description, ok
}
