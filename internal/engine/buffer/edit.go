package buffer

import (
	"fmt"
	"slices"
	"strings"
)

// InsertLine inserts an empty line at index. Lines at or after index, and
// their markers, move down by one.
func (b *Buffer) InsertLine(index int) error {
	if b.readOnly {
		return ErrReadOnly
	}
	if index < 0 || index > len(b.lines) {
		return fmt.Errorf("%w: %d", ErrLineOutOfRange, index)
	}
	b.insertLine(index, Line{})
	b.textChanged = true
	b.notify(index, 1)
	return nil
}

func (b *Buffer) insertLine(index int, l Line) {
	b.lines = slices.Insert(b.lines, index, l)
	b.shiftMarkers(index, 1)
}

// RemoveLine removes one line.
func (b *Buffer) RemoveLine(index int) error {
	return b.RemoveLines(index, index+1)
}

// RemoveLines removes the lines in [start, end). Markers on removed lines
// are dropped and markers after them move up. Removing every line fails
// with ErrLastLine.
func (b *Buffer) RemoveLines(start, end int) error {
	if b.readOnly {
		return ErrReadOnly
	}
	if start < 0 || end > len(b.lines) || start > end {
		return fmt.Errorf("%w: lines [%d, %d)", ErrRangeInvalid, start, end)
	}
	if start == end {
		return nil
	}
	if len(b.lines)-(end-start) < 1 {
		return ErrLastLine
	}
	b.removeLines(start, end)
	b.textChanged = true
	b.notify(start, 0)
	return nil
}

func (b *Buffer) removeLines(start, end int) {
	b.lines = slices.Delete(b.lines, start, end)
	b.dropMarkers(start, end)
}

// InsertTextAt inserts text at where. A '\n' splits the current line and
// '\r' is ignored. Inserted glyphs are unclassified until the colorizer
// reaches them. It returns the position just past the inserted text and the
// number of lines created.
func (b *Buffer) InsertTextAt(where Coordinates, text string) (Coordinates, int, error) {
	if b.readOnly {
		return where, 0, ErrReadOnly
	}
	where = b.Sanitize(where)
	if text == "" {
		return where, 0, nil
	}

	startLine := where.Line
	cindex := b.CharacterIndex(where)
	added := 0
	pending := make(Line, 0, len(text))

	flush := func() {
		b.lines[where.Line] = slices.Insert(b.lines[where.Line], cindex, pending...)
		cindex += len(pending)
		pending = pending[:0]
	}

	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case '\r':
		case '\n':
			flush()
			line := b.lines[where.Line]
			tail := slices.Clone(line[cindex:])
			b.lines[where.Line] = line[:cindex]
			b.insertLine(where.Line+1, tail)
			where.Line++
			cindex = 0
			added++
		default:
			pending = append(pending, NewGlyph(c))
		}
	}
	flush()

	where.Column = b.CharacterColumn(where.Line, cindex)
	b.textChanged = true
	b.notify(startLine, added+1)
	return where, added, nil
}

// DeleteRange removes the text between start and end. Both are sanitized
// first. On a single line the span is cut out; across lines the tail of the
// end line is joined onto the head of the start line and the lines between
// are removed.
func (b *Buffer) DeleteRange(start, end Coordinates) error {
	if b.readOnly {
		return ErrReadOnly
	}
	start = b.Sanitize(start)
	end = b.Sanitize(end)
	if end.Before(start) {
		return fmt.Errorf("%w: %s > %s", ErrRangeInvalid, start, end)
	}
	if start == end {
		return nil
	}

	si := b.CharacterIndex(start)
	ei := b.CharacterIndex(end)

	if start.Line == end.Line {
		if si >= ei {
			return nil
		}
		b.lines[start.Line] = slices.Delete(b.lines[start.Line], si, ei)
	} else {
		head := b.lines[start.Line][:si]
		tail := b.lines[end.Line][ei:]
		b.lines[start.Line] = append(head, tail...)
		b.removeLines(start.Line+1, end.Line+1)
	}

	b.textChanged = true
	b.notify(start.Line, 1)
	return nil
}

// GetText returns the text between two positions with '\n' at line
// boundaries. It is the inverse of InsertTextAt.
func (b *Buffer) GetText(start, end Coordinates) string {
	start = b.Sanitize(start)
	end = b.Sanitize(end)
	if end.Before(start) {
		start, end = end, start
	}

	var sb strings.Builder
	si := b.CharacterIndex(start)
	ei := b.CharacterIndex(end)
	for l := start.Line; l <= end.Line; l++ {
		line := b.lines[l]
		from, to := 0, len(line)
		if l == start.Line {
			from = si
		}
		if l == end.Line {
			to = ei
		}
		for i := from; i < to; i++ {
			sb.WriteByte(line[i].Char)
		}
		if l < end.Line {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
