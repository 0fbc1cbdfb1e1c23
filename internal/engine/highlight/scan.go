package highlight

import "github.com/dshills/quill/internal/engine/buffer"

func isBlank(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// hasPrefixAt reports whether the line holds s starting at glyph i.
func hasPrefixAt(line buffer.Line, i int, s string) bool {
	if i < 0 || i+len(s) > len(line) {
		return false
	}
	for k := 0; k < len(s); k++ {
		if line[i+k].Char != s[k] {
			return false
		}
	}
	return true
}

// scanComments walks the whole buffer and sets the Comment,
// MultiLineComment and Preprocessor flag of every glyph.
//
// Quoted strings are tracked so comment markers inside them are ignored.
// A line ending in '\' continues its line comment, string or directive onto
// the next line.
func (c *Colorizer) scanComments() {
	g := c.grammar
	n := c.buf.LineCount()

	// commentLine == n means no block comment is open.
	commentLine, commentIndex := n, 0
	open := func(line, index int) bool {
		return commentLine < line || (commentLine == line && commentIndex <= index)
	}

	var inString, inSingle, inPreproc bool
	firstChar := true
	continued := false

	for l := 0; l < n; l++ {
		line := c.buf.Line(l)

		if !continued {
			inString = false
			inSingle = false
			inPreproc = false
			firstChar = true
		}
		continued = false
		if len(line) == 0 {
			continue
		}

		for i := 0; i < len(line); {
			ch := line[i].Char
			next := i + buffer.CharLength(ch)

			if ch != g.preprocChar && !isBlank(ch) {
				firstChar = false
			}

			inComment := open(l, i)
			single := false

			if inString {
				if ch == '"' {
					if i+1 < len(line) && line[i+1].Char == '"' {
						next = i + 2
					} else {
						inString = false
					}
				} else if ch == '\\' {
					next = i + 2
				}
			} else {
				if firstChar && g.preprocChar != 0 && ch == g.preprocChar && !inComment && !inSingle {
					inPreproc = true
				}

				switch {
				case inComment || inSingle:
				case ch == '"':
					inString = true
				case g.commentStart != "" && hasPrefixAt(line, i, g.commentStart):
					commentLine, commentIndex = l, i
				case g.singleLineComment != "" && hasPrefixAt(line, i, g.singleLineComment):
					inSingle = true
				}

				inComment = open(l, i)
				single = inSingle

				if inComment && g.commentEnd != "" {
					endAt := i + 1 - len(g.commentEnd)
					minEnd := 0
					if commentLine == l {
						minEnd = commentIndex + len(g.commentStart)
					}
					if endAt >= minEnd && hasPrefixAt(line, endAt, g.commentEnd) {
						commentLine, commentIndex = n, 0
					}
				}
			}

			next = min(next, len(line))
			for k := i; k < next; k++ {
				line[k].MultiLineComment = inComment
				line[k].Comment = single
				line[k].Preprocessor = inPreproc
			}
			i = next
		}

		continued = line[len(line)-1].Char == '\\'
	}
}
