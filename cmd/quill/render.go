package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/quill/internal/engine"
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/palette"
)

const ansiReset = "\x1b[0m"

// glyphStyle maps a colored glyph to a terminal style. Keywords are bold
// and comments italic on top of the palette color.
func glyphStyle(e *engine.Editor, g buffer.Glyph) tcell.Style {
	style := tcell.StyleDefault.Foreground(e.GlyphColor(g).RGB)
	switch {
	case g.Comment || g.MultiLineComment:
		style = style.Italic(true)
	case g.Color == palette.Keyword:
		style = style.Bold(true)
	}
	return style
}

// sgr returns the escape sequence selecting style.
func sgr(style tcell.Style) string {
	fg, _, attrs := style.Decompose()

	params := []string{"0"}
	if attrs&tcell.AttrBold != 0 {
		params = append(params, "1")
	}
	if attrs&tcell.AttrItalic != 0 {
		params = append(params, "3")
	}
	if r, g, b := fg.RGB(); r >= 0 {
		params = append(params, "38", "2",
			strconv.Itoa(int(r)), strconv.Itoa(int(g)), strconv.Itoa(int(b)))
	}
	return "\x1b[" + strings.Join(params, ";") + "m"
}

// writeANSI writes the editor text with 24-bit color escapes. Styles only
// change on character boundaries so multi-byte sequences stay intact.
func writeANSI(w io.Writer, e *engine.Editor) error {
	bw := bufio.NewWriter(w)
	for line := 0; line < e.LineCount(); line++ {
		if line > 0 {
			bw.WriteByte('\n')
		}

		current := ""
		for _, g := range e.Glyphs(line) {
			if !buffer.IsContinuation(g.Char) {
				if seq := sgr(glyphStyle(e, g)); seq != current {
					bw.WriteString(seq)
					current = seq
				}
			}
			bw.WriteByte(g.Char)
		}
		if current != "" {
			bw.WriteString(ansiReset)
		}
	}
	return bw.Flush()
}

// roleName describes the coloring of a glyph. Comment flags win over the
// token role.
func roleName(g buffer.Glyph) string {
	var name string
	switch {
	case g.Comment:
		name = palette.Comment.String()
	case g.MultiLineComment:
		name = palette.MultiLineComment.String()
	default:
		name = g.Color.String()
	}
	if g.Preprocessor {
		name += "+preprocessor"
	}
	return name
}

// writeRoles prints one line per run of identically colored glyphs:
// "line:start-end role text", with byte offsets and an exclusive end.
// Runs in the default role are skipped.
func writeRoles(w io.Writer, e *engine.Editor) error {
	bw := bufio.NewWriter(w)
	defaultRole := palette.Default.String()

	for line := 0; line < e.LineCount(); line++ {
		glyphs := e.Glyphs(line)
		for start := 0; start < len(glyphs); {
			role := roleName(glyphs[start])
			end := start + 1
			for end < len(glyphs) && roleName(glyphs[end]) == role {
				end++
			}
			if role != defaultRole {
				text := make([]byte, 0, end-start)
				for _, g := range glyphs[start:end] {
					text = append(text, g.Char)
				}
				fmt.Fprintf(bw, "%d:%d-%d %s %q\n", line, start, end, role, text)
			}
			start = end
		}
	}
	return bw.Flush()
}

// writePalette prints every role with its color and alpha.
func writePalette(w io.Writer, p *palette.Palette) error {
	bw := bufio.NewWriter(w)
	for _, idx := range palette.Indexes() {
		c := p.Get(idx)
		fmt.Fprintf(bw, "%-28s %s %02x\n", idx, c.Hex(), c.Alpha)
	}
	return bw.Flush()
}
