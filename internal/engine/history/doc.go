// Package history provides the undo/redo log for the editor engine.
//
// Every edit produces one Record: the text it added and where, the text it
// removed and where, and the full cursor state before and after. Undo
// deletes the added span, reinserts the removed text and restores the
// "before" state; Redo does the reverse and restores "after". Because the
// states are snapshots rather than deltas, Undo followed by Redo reproduces
// the edited state exactly.
//
// Records are replayed through a Target, which the editor implements with
// its buffer primitives:
//
//	log := history.NewLog(1000)
//	log.Add(rec)
//	log.Undo(target, 1)
//	log.Redo(target, 1)
//
// # Log Model
//
// The log is a flat list plus an index. Records before the index can be
// undone, records from the index on can be redone. Adding a record discards
// the redo tail.
package history
