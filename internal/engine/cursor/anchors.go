package cursor

import "github.com/dshills/quill/internal/engine/buffer"

// Anchors are the two ends of a selection being extended interactively.
// They are unordered; use Ordered before applying them.
type Anchors struct {
	Start Coordinates
	End   Coordinates
}

// Collapse puts both anchors at c.
func (a *Anchors) Collapse(c Coordinates) {
	a.Start = c
	a.End = c
}

// MoveBackward updates the anchors after the cursor moved from old to cur
// towards the buffer start. Without selecting, both anchors collapse to cur.
func (a *Anchors) MoveBackward(old, cur Coordinates, selecting bool) {
	if !selecting {
		a.Collapse(cur)
		return
	}
	switch old {
	case a.Start:
		a.Start = cur
	case a.End:
		a.End = cur
	default:
		a.Start = cur
		a.End = old
	}
}

// MoveForward updates the anchors after the cursor moved from old to cur
// towards the buffer end. Without selecting, both anchors collapse to cur.
func (a *Anchors) MoveForward(old, cur Coordinates, selecting bool) {
	if !selecting {
		a.Collapse(cur)
		return
	}
	switch old {
	case a.End:
		a.End = cur
	case a.Start:
		a.Start = cur
	default:
		a.Start = old
		a.End = cur
	}
}

// Ordered returns the anchors with start not after end.
func (a Anchors) Ordered() (start, end Coordinates) {
	return buffer.MinCoordinates(a.Start, a.End), buffer.MaxCoordinates(a.Start, a.End)
}
