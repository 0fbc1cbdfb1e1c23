package buffer

// isSpace matches the C locale whitespace set.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// FindWordStart returns the start of the word under c. A word is a run of
// glyphs sharing one color role and not broken by whitespace.
func (b *Buffer) FindWordStart(c Coordinates) Coordinates {
	if c.Line < 0 || c.Line >= len(b.lines) {
		return c
	}
	line := b.lines[c.Line]
	idx := b.CharacterIndex(c)
	if idx >= len(line) {
		return c
	}

	for idx > 0 && isSpace(line[idx].Char) {
		idx--
	}

	start := line[idx].Color
	for idx > 0 {
		ch := line[idx].Char
		if !IsContinuation(ch) {
			if isSpace(ch) {
				idx++
				break
			}
			if start != line[idx-1].Color {
				break
			}
		}
		idx--
	}
	return Coordinates{Line: c.Line, Column: b.CharacterColumn(c.Line, idx)}
}

// FindWordEnd returns the position just past the word under c. Trailing
// whitespace is included when c is on whitespace.
func (b *Buffer) FindWordEnd(c Coordinates) Coordinates {
	if c.Line < 0 || c.Line >= len(b.lines) {
		return c
	}
	line := b.lines[c.Line]
	idx := b.CharacterIndex(c)
	if idx >= len(line) {
		return c
	}

	prevSpace := isSpace(line[idx].Char)
	start := line[idx].Color
	for idx < len(line) {
		ch := line[idx].Char
		if start != line[idx].Color {
			break
		}
		if prevSpace != isSpace(ch) {
			if isSpace(ch) {
				for idx < len(line) && isSpace(line[idx].Char) {
					idx++
				}
			}
			break
		}
		idx += CharLength(ch)
	}
	if idx > len(line) {
		idx = len(line)
	}
	return Coordinates{Line: c.Line, Column: b.CharacterColumn(c.Line, idx)}
}

// FindNextWord returns the start of the next alphanumeric word after c,
// crossing lines as needed. Past the last word it returns the buffer end.
func (b *Buffer) FindNextWord(from Coordinates) Coordinates {
	at := from
	if at.Line < 0 || at.Line >= len(b.lines) {
		return at
	}

	idx := b.CharacterIndex(from)
	isWord := false
	skip := false
	if idx < len(b.lines[at.Line]) {
		isWord = isAlnum(b.lines[at.Line][idx].Char)
		skip = isWord
	}

	for !isWord || skip {
		if at.Line >= len(b.lines) {
			last := len(b.lines) - 1
			return Coordinates{Line: last, Column: b.LineMaxColumn(last)}
		}
		line := b.lines[at.Line]
		if idx < len(line) {
			isWord = isAlnum(line[idx].Char)
			if isWord && !skip {
				return Coordinates{Line: at.Line, Column: b.CharacterColumn(at.Line, idx)}
			}
			if !isWord {
				skip = false
			}
			idx++
		} else {
			idx = 0
			at.Line++
			skip = false
			isWord = false
		}
	}
	return at
}

// IsOnWordBoundary reports whether c sits between two words. With byColor
// set, a boundary is a change of color role; otherwise it is a change
// between whitespace and non-whitespace. Line starts and ends are always
// boundaries.
func (b *Buffer) IsOnWordBoundary(c Coordinates, byColor bool) bool {
	if c.Line < 0 || c.Line >= len(b.lines) || c.Column <= 0 {
		return true
	}
	line := b.lines[c.Line]
	idx := b.CharacterIndex(c)
	if idx <= 0 || idx >= len(line) {
		return true
	}
	if byColor {
		return line[idx].Color != line[idx-1].Color
	}
	return isSpace(line[idx].Char) != isSpace(line[idx-1].Char)
}

// WordAt returns the word under c.
func (b *Buffer) WordAt(c Coordinates) string {
	start := b.FindWordStart(c)
	end := b.FindWordEnd(c)
	if start.Line < 0 || start.Line >= len(b.lines) {
		return ""
	}
	line := b.lines[start.Line]
	si := b.CharacterIndex(start)
	ei := b.CharacterIndex(end)
	if si < 0 || ei > len(line) || si >= ei {
		return ""
	}
	return line[si:ei].String()
}
