package buffer

// advanceColumn returns the column after a glyph holding c.
func (b *Buffer) advanceColumn(col int, c byte) int {
	if c == '\t' {
		return (col/b.tabSize)*b.tabSize + b.tabSize
	}
	return col + 1
}

// CharacterIndex returns the glyph index reached by walking the line until
// the rendered column reaches c.Column. It returns -1 if c.Line is outside
// the buffer and never returns more than the line length.
func (b *Buffer) CharacterIndex(c Coordinates) int {
	if c.Line < 0 || c.Line >= len(b.lines) {
		return -1
	}
	line := b.lines[c.Line]
	col := 0
	i := 0
	for i < len(line) && col < c.Column {
		col = b.advanceColumn(col, line[i].Char)
		i += CharLength(line[i].Char)
	}
	if i > len(line) {
		i = len(line)
	}
	return i
}

// CharacterColumn returns the rendered column of glyph index on a line.
func (b *Buffer) CharacterColumn(line, index int) int {
	if line < 0 || line >= len(b.lines) {
		return 0
	}
	l := b.lines[line]
	col := 0
	i := 0
	for i < index && i < len(l) {
		col = b.advanceColumn(col, l[i].Char)
		i += CharLength(l[i].Char)
	}
	return col
}

// LineCharacterCount returns the number of characters on a line, counting
// a multi-byte sequence once.
func (b *Buffer) LineCharacterCount(line int) int {
	if line < 0 || line >= len(b.lines) {
		return 0
	}
	l := b.lines[line]
	n := 0
	for i := 0; i < len(l); n++ {
		i += CharLength(l[i].Char)
	}
	return n
}

// LineMaxColumn returns the rendered width of a line.
func (b *Buffer) LineMaxColumn(line int) int {
	if line < 0 || line >= len(b.lines) {
		return 0
	}
	return b.CharacterColumn(line, len(b.lines[line]))
}

// Sanitize clamps c into the buffer. A line past the end resolves to the end
// of the last line; a negative line resolves to the buffer start. The column
// is clamped into [0, LineMaxColumn(line)].
func (b *Buffer) Sanitize(c Coordinates) Coordinates {
	if c.Line < 0 {
		return Coordinates{}
	}
	if c.Line >= len(b.lines) {
		last := len(b.lines) - 1
		return Coordinates{Line: last, Column: b.LineMaxColumn(last)}
	}
	maxCol := b.LineMaxColumn(c.Line)
	if c.Column > maxCol {
		c.Column = maxCol
	}
	if c.Column < 0 {
		c.Column = 0
	}
	return c
}

// Advance returns the position one character after c. At the end of a line
// it moves to the start of the next one; at the end of the buffer it
// returns c sanitized.
func (b *Buffer) Advance(c Coordinates) Coordinates {
	c = b.Sanitize(c)
	line := b.lines[c.Line]
	idx := b.CharacterIndex(c)
	if idx < len(line) {
		idx += CharLength(line[idx].Char)
		if idx > len(line) {
			idx = len(line)
		}
		return Coordinates{Line: c.Line, Column: b.CharacterColumn(c.Line, idx)}
	}
	if c.Line+1 < len(b.lines) {
		return Coordinates{Line: c.Line + 1}
	}
	return c
}
