package history

import (
	"fmt"
	"time"

	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/cursor"
)

// Coordinates is an alias for buffer.Coordinates for convenience.
type Coordinates = buffer.Coordinates

// Target is what a Record replays against.
type Target interface {
	DeleteRange(start, end Coordinates) error
	InsertTextAt(where Coordinates, text string) (Coordinates, int, error)
	Colorize(fromLine, count int)
	RestoreState(s cursor.State)
}

// Record is one reversible edit.
type Record struct {
	Added      string
	AddedStart Coordinates
	AddedEnd   Coordinates

	Removed      string
	RemovedStart Coordinates
	RemovedEnd   Coordinates

	Before cursor.State
	After  cursor.State

	// Description names the edit for display ("Type", "Paste").
	Description string
	Timestamp   time.Time
}

// Validate checks that both spans are ordered.
func (r *Record) Validate() error {
	if r.AddedEnd.Before(r.AddedStart) {
		return fmt.Errorf("%w: added %s-%s", ErrInvalidRecord, r.AddedStart, r.AddedEnd)
	}
	if r.RemovedEnd.Before(r.RemovedStart) {
		return fmt.Errorf("%w: removed %s-%s", ErrInvalidRecord, r.RemovedStart, r.RemovedEnd)
	}
	return nil
}

// Empty reports whether the record changes no text.
func (r *Record) Empty() bool {
	return r.Added == "" && r.Removed == ""
}

// Undo reverts the edit and restores the state before it.
func (r *Record) Undo(t Target) error {
	if r.Added != "" {
		if err := t.DeleteRange(r.AddedStart, r.AddedEnd); err != nil {
			return fmt.Errorf("undo %s: %w", r.Description, err)
		}
		t.Colorize(r.AddedStart.Line-1, r.AddedEnd.Line-r.AddedStart.Line+2)
	}

	if r.Removed != "" {
		if _, _, err := t.InsertTextAt(r.RemovedStart, r.Removed); err != nil {
			return fmt.Errorf("undo %s: %w", r.Description, err)
		}
		t.Colorize(r.RemovedStart.Line-1, r.RemovedEnd.Line-r.RemovedStart.Line+2)
	}

	t.RestoreState(r.Before)
	return nil
}

// Redo reapplies the edit and restores the state after it.
func (r *Record) Redo(t Target) error {
	if r.Removed != "" {
		if err := t.DeleteRange(r.RemovedStart, r.RemovedEnd); err != nil {
			return fmt.Errorf("redo %s: %w", r.Description, err)
		}
		t.Colorize(r.RemovedStart.Line-1, r.RemovedEnd.Line-r.RemovedStart.Line+1)
	}

	if r.Added != "" {
		if _, _, err := t.InsertTextAt(r.AddedStart, r.Added); err != nil {
			return fmt.Errorf("redo %s: %w", r.Description, err)
		}
		t.Colorize(r.AddedStart.Line-1, r.AddedEnd.Line-r.AddedStart.Line+1)
	}

	t.RestoreState(r.After)
	return nil
}
