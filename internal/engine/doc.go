// Package engine provides the editing facade for Quill.
//
// An Editor owns one glyph buffer, its colorizer, the undo log and the
// cursor state, and exposes the operations a front end drives: text
// queries, cursor movement, selection, character entry, clipboard style
// edits and undo/redo.
//
// # Architecture
//
// The editor is built on several sub-packages:
//
//   - buffer: lines of glyphs, the coordinate model and raw mutations
//   - cursor: cursor/selection state and interactive selection anchors
//   - history: undo records with before/after state snapshots
//   - highlight: grammars and the incremental colorizer
//   - palette: color roles and display colors
//
// # Threading
//
// An Editor is not safe for concurrent use. It is owned by one goroutine,
// normally the front end's event loop, which interleaves input handling
// with ColorizeStep calls.
//
// # Basic Usage
//
//	e := engine.New(
//	    engine.WithText("int main() {}\n"),
//	    engine.WithGrammar(highlight.MustCompile(highlight.C())),
//	)
//
//	e.SetCursorPosition(buffer.Coordinates{Line: 0, Column: 12})
//	e.EnterCharacter('\n', false)
//	e.InsertText("return 0;")
//
//	// Once per frame
//	e.ColorizeStep()
//
//	e.Undo(1)
//
// # Edits and Undo
//
// Every mutating call records one undo entry holding the text it added and
// removed plus the cursor state before and after. Undo and Redo replay
// those entries, so Undo followed by Redo returns to the edited state
// exactly. Movement and selection calls never record entries.
//
// # Read-Only Mode
//
// A read-only editor rejects mutations with ErrReadOnly, reports CanUndo
// false and treats Undo/Redo as no-ops. Cut copies instead of removing.
package engine
