package cursor

import (
	"fmt"

	"github.com/dshills/quill/internal/engine/buffer"
)

// Coordinates is an alias for buffer.Coordinates for convenience.
type Coordinates = buffer.Coordinates

// SelectionMode controls how selection endpoints snap.
type SelectionMode uint8

const (
	// SelectionNormal keeps the exact endpoints.
	SelectionNormal SelectionMode = iota
	// SelectionWord snaps both endpoints to word boundaries.
	SelectionWord
	// SelectionLine snaps to whole lines.
	SelectionLine
)

// String returns the mode name.
func (m SelectionMode) String() string {
	switch m {
	case SelectionNormal:
		return "normal"
	case SelectionWord:
		return "word"
	case SelectionLine:
		return "line"
	default:
		return fmt.Sprintf("SelectionMode(%d)", m)
	}
}

// State is the cursor position and the current selection.
type State struct {
	Cursor         Coordinates
	SelectionStart Coordinates
	SelectionEnd   Coordinates
}

// HasSelection returns true if the selection is not empty.
func (s State) HasSelection() bool {
	return s.SelectionEnd.After(s.SelectionStart)
}

// Collapsed returns s with the selection emptied at the cursor.
func (s State) Collapsed() State {
	s.SelectionStart = s.Cursor
	s.SelectionEnd = s.Cursor
	return s
}

// String returns a debug representation of the state.
func (s State) String() string {
	return fmt.Sprintf("cursor %s selection %s-%s", s.Cursor, s.SelectionStart, s.SelectionEnd)
}
