package history

import (
	"errors"
	"testing"

	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/cursor"
)

type bufferTarget struct {
	buf       *buffer.Buffer
	state     cursor.State
	colorized [][2]int
}

func (b *bufferTarget) DeleteRange(start, end Coordinates) error {
	return b.buf.DeleteRange(start, end)
}

func (b *bufferTarget) InsertTextAt(where Coordinates, text string) (Coordinates, int, error) {
	return b.buf.InsertTextAt(where, text)
}

func (b *bufferTarget) Colorize(fromLine, count int) {
	b.colorized = append(b.colorized, [2]int{fromLine, count})
}

func (b *bufferTarget) RestoreState(s cursor.State) {
	b.state = s
}

func at(line, col int) Coordinates {
	return Coordinates{Line: line, Column: col}
}

func stateAt(c Coordinates) cursor.State {
	return cursor.State{Cursor: c, SelectionStart: c, SelectionEnd: c}
}

// typeText inserts text at the cursor and records the edit like the editor
// does.
func typeText(t *testing.T, log *Log, tgt *bufferTarget, text string) *Record {
	t.Helper()
	before := tgt.state
	start := tgt.state.Cursor
	end, _, err := tgt.buf.InsertTextAt(start, text)
	if err != nil {
		t.Fatalf("InsertTextAt: %v", err)
	}
	tgt.state = stateAt(end)
	r := &Record{
		Added:       text,
		AddedStart:  start,
		AddedEnd:    end,
		Before:      before,
		After:       tgt.state,
		Description: "Type",
	}
	if err := log.Add(r); err != nil {
		t.Fatalf("Add: %v", err)
	}
	return r
}

func TestUndoRedoInsert(t *testing.T) {
	tgt := &bufferTarget{buf: buffer.NewFromString("xyz")}
	log := NewLog(0)
	typeText(t, log, tgt, "ab\nc")

	if got := tgt.buf.Text(); got != "ab\ncxyz" {
		t.Fatalf("Text() = %q", got)
	}
	after := tgt.state

	n, err := log.Undo(tgt, 1)
	if err != nil || n != 1 {
		t.Fatalf("Undo = %d, %v", n, err)
	}
	if got := tgt.buf.Text(); got != "xyz" {
		t.Errorf("after undo Text() = %q, want xyz", got)
	}
	if tgt.state != stateAt(at(0, 0)) {
		t.Errorf("after undo state = %v", tgt.state)
	}

	n, err = log.Redo(tgt, 1)
	if err != nil || n != 1 {
		t.Fatalf("Redo = %d, %v", n, err)
	}
	if got := tgt.buf.Text(); got != "ab\ncxyz" {
		t.Errorf("after redo Text() = %q", got)
	}
	if tgt.state != after {
		t.Errorf("after redo state = %v, want %v", tgt.state, after)
	}
}

func TestUndoRedoReplace(t *testing.T) {
	tgt := &bufferTarget{buf: buffer.NewFromString("hello world")}
	tgt.state = cursor.State{Cursor: at(0, 11), SelectionStart: at(0, 6), SelectionEnd: at(0, 11)}
	before := tgt.state
	log := NewLog(0)

	removed := tgt.buf.GetText(at(0, 6), at(0, 11))
	if err := tgt.buf.DeleteRange(at(0, 6), at(0, 11)); err != nil {
		t.Fatal(err)
	}
	end, _, err := tgt.buf.InsertTextAt(at(0, 6), "there")
	if err != nil {
		t.Fatal(err)
	}
	tgt.state = stateAt(end)
	r := &Record{
		Added: "there", AddedStart: at(0, 6), AddedEnd: end,
		Removed: removed, RemovedStart: at(0, 6), RemovedEnd: at(0, 11),
		Before: before, After: tgt.state,
	}
	if err := log.Add(r); err != nil {
		t.Fatal(err)
	}

	if _, err := log.Undo(tgt, 1); err != nil {
		t.Fatal(err)
	}
	if tgt.buf.Text() != "hello world" || tgt.state != before {
		t.Errorf("undo: %q %v", tgt.buf.Text(), tgt.state)
	}
	if _, err := log.Redo(tgt, 1); err != nil {
		t.Fatal(err)
	}
	if tgt.buf.Text() != "hello there" || tgt.state != r.After {
		t.Errorf("redo: %q %v", tgt.buf.Text(), tgt.state)
	}
}

func TestColorizeWindows(t *testing.T) {
	tgt := &bufferTarget{buf: buffer.NewFromString("a\nb\nc")}
	tgt.state = stateAt(at(1, 0))
	log := NewLog(0)
	typeText(t, log, tgt, "x\ny")

	tgt.colorized = nil
	if _, err := log.Undo(tgt, 1); err != nil {
		t.Fatal(err)
	}
	if len(tgt.colorized) != 1 || tgt.colorized[0] != [2]int{0, 3} {
		t.Errorf("undo colorized %v, want [[0 3]]", tgt.colorized)
	}

	tgt.colorized = nil
	if _, err := log.Redo(tgt, 1); err != nil {
		t.Fatal(err)
	}
	if len(tgt.colorized) != 1 || tgt.colorized[0] != [2]int{0, 2} {
		t.Errorf("redo colorized %v, want [[0 2]]", tgt.colorized)
	}
}

func TestMultiStep(t *testing.T) {
	tgt := &bufferTarget{buf: buffer.New()}
	log := NewLog(0)
	for _, s := range []string{"a", "b", "c", "d"} {
		typeText(t, log, tgt, s)
	}

	n, err := log.Undo(tgt, 3)
	if err != nil || n != 3 {
		t.Fatalf("Undo(3) = %d, %v", n, err)
	}
	if tgt.buf.Text() != "a" {
		t.Errorf("Text() = %q, want a", tgt.buf.Text())
	}

	n, _ = log.Undo(tgt, 5)
	if n != 1 || tgt.buf.Text() != "" {
		t.Errorf("Undo(5) = %d, text %q", n, tgt.buf.Text())
	}
	if log.CanUndo() {
		t.Error("CanUndo() should be false once exhausted")
	}
	if n, _ := log.Undo(tgt, 1); n != 0 {
		t.Errorf("Undo on empty history = %d", n)
	}

	n, _ = log.Redo(tgt, 10)
	if n != 4 || tgt.buf.Text() != "abcd" {
		t.Errorf("Redo(10) = %d, text %q", n, tgt.buf.Text())
	}
	if log.CanRedo() {
		t.Error("CanRedo() should be false once exhausted")
	}
}

func TestAddTruncatesRedo(t *testing.T) {
	tgt := &bufferTarget{buf: buffer.New()}
	log := NewLog(0)
	typeText(t, log, tgt, "a")
	typeText(t, log, tgt, "b")
	if _, err := log.Undo(tgt, 1); err != nil {
		t.Fatal(err)
	}
	if !log.CanRedo() {
		t.Fatal("expected redo to be available")
	}

	typeText(t, log, tgt, "c")
	if log.CanRedo() {
		t.Error("new edit should discard the redo tail")
	}
	if log.Len() != 2 || log.Index() != 2 {
		t.Errorf("Len() = %d, Index() = %d; want 2, 2", log.Len(), log.Index())
	}
	if tgt.buf.Text() != "ac" {
		t.Errorf("Text() = %q, want ac", tgt.buf.Text())
	}
}

func TestMaxEntries(t *testing.T) {
	tgt := &bufferTarget{buf: buffer.New()}
	log := NewLog(2)
	for _, s := range []string{"a", "b", "c"} {
		typeText(t, log, tgt, s)
	}
	if log.Len() != 2 || log.Index() != 2 {
		t.Errorf("Len() = %d, Index() = %d", log.Len(), log.Index())
	}
	n, _ := log.Undo(tgt, 10)
	if n != 2 || tgt.buf.Text() != "a" {
		t.Errorf("Undo(10) = %d, text %q", n, tgt.buf.Text())
	}
}

func TestInvalidRecord(t *testing.T) {
	log := NewLog(0)
	err := log.Add(&Record{AddedStart: at(1, 0), AddedEnd: at(0, 0)})
	if !errors.Is(err, ErrInvalidRecord) {
		t.Errorf("expected ErrInvalidRecord, got %v", err)
	}
	if log.Len() != 0 {
		t.Error("invalid record should not be added")
	}
}

func TestPeek(t *testing.T) {
	tgt := &bufferTarget{buf: buffer.New()}
	log := NewLog(0)
	if _, ok := log.PeekUndo(); ok {
		t.Error("PeekUndo on empty log")
	}
	typeText(t, log, tgt, "a")

	info, ok := log.PeekUndo()
	if !ok || info.Description != "Type" || info.Timestamp.IsZero() {
		t.Errorf("PeekUndo() = %+v, %v", info, ok)
	}
	if _, ok := log.PeekRedo(); ok {
		t.Error("PeekRedo with nothing undone")
	}

	log.Clear()
	if log.CanUndo() || log.CanRedo() || log.Len() != 0 {
		t.Error("Clear() left records behind")
	}
}
