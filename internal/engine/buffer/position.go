package buffer

import "fmt"

// Coordinates is a (line, rendered column) position. Both are 0-indexed.
type Coordinates struct {
	Line   int
	Column int
}

// String returns a human-readable representation of the coordinates.
func (c Coordinates) String() string {
	return fmt.Sprintf("(%d:%d)", c.Line, c.Column)
}

// Compare returns -1 if c < other, 0 if c == other, 1 if c > other.
func (c Coordinates) Compare(other Coordinates) int {
	if c.Line < other.Line {
		return -1
	}
	if c.Line > other.Line {
		return 1
	}
	if c.Column < other.Column {
		return -1
	}
	if c.Column > other.Column {
		return 1
	}
	return 0
}

// Before returns true if c comes before other.
func (c Coordinates) Before(other Coordinates) bool {
	return c.Compare(other) < 0
}

// After returns true if c comes after other.
func (c Coordinates) After(other Coordinates) bool {
	return c.Compare(other) > 0
}

// MinCoordinates returns the earlier of two coordinates.
func MinCoordinates(a, b Coordinates) Coordinates {
	if b.Before(a) {
		return b
	}
	return a
}

// MaxCoordinates returns the later of two coordinates.
func MaxCoordinates(a, b Coordinates) Coordinates {
	if b.After(a) {
		return b
	}
	return a
}

// CharLength returns the length in bytes of the UTF-8 sequence introduced by
// lead byte c. Legacy 5 and 6 byte forms are recognised so a malformed lead
// byte still consumes its whole run. Continuation and ASCII bytes count as 1.
func CharLength(c byte) int {
	switch {
	case c&0xFE == 0xFC:
		return 6
	case c&0xFC == 0xF8:
		return 5
	case c&0xF8 == 0xF0:
		return 4
	case c&0xF0 == 0xE0:
		return 3
	case c&0xE0 == 0xC0:
		return 2
	}
	return 1
}

// IsContinuation reports whether c is a UTF-8 continuation byte.
func IsContinuation(c byte) bool {
	return c&0xC0 == 0x80
}
