// Package cursor holds the editor's cursor and selection state.
//
// State is a plain value: a cursor coordinate plus an ordered selection
// (start never after end). Undo records store whole State snapshots, so a
// State must stay copyable and comparable with ==.
//
// Anchors tracks the interactive selection ends while the user extends a
// selection with the keyboard. The anchor that sat under the cursor before a
// move follows it; the other stays put.
//
//	var a cursor.Anchors
//	a.Collapse(pos)
//	a.MoveForward(pos, next, true) // shift+right: End follows the cursor
//	start, end := a.Ordered()
package cursor
