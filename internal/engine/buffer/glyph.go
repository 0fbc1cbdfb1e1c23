package buffer

import "github.com/dshills/quill/internal/engine/palette"

// Glyph is one byte of line text with the classification the colorizer
// assigned to it.
type Glyph struct {
	Char  byte
	Color palette.Index

	// Comment is set inside a single-line comment.
	Comment bool
	// MultiLineComment is set inside a block comment.
	MultiLineComment bool
	// Preprocessor is set inside a preprocessor directive.
	Preprocessor bool
}

// NewGlyph returns an unclassified glyph.
func NewGlyph(c byte) Glyph {
	return Glyph{Char: c, Color: palette.Default}
}

// Line is the glyph sequence of one buffer line.
type Line []Glyph

// String returns the line text.
func (l Line) String() string {
	b := make([]byte, len(l))
	for i, g := range l {
		b[i] = g.Char
	}
	return string(b)
}

// Bytes returns the line text as a byte slice.
func (l Line) Bytes() []byte {
	b := make([]byte, len(l))
	for i, g := range l {
		b[i] = g.Char
	}
	return b
}

func lineFromString(s string) Line {
	l := make(Line, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\r' {
			continue
		}
		l = append(l, NewGlyph(s[i]))
	}
	return l
}
