// Package buffer implements the line/glyph text buffer and its coordinate
// model.
//
// A Buffer is an ordered list of lines, each an ordered list of glyphs. A
// glyph holds one byte of UTF-8 text plus the color role and comment flags
// the colorizer assigns to it. A multi-byte character therefore spans
// several glyphs; every operation that moves between characters uses the
// lead byte to skip continuation bytes and never stops mid-sequence.
//
// Positions are expressed as Coordinates: a line index and a rendered
// column. Columns count one per character, except tabs, which advance to the
// next multiple of the tab size:
//
//	buf := buffer.New(buffer.WithTabSize(4))
//	buf.SetText("\tABC")
//	buf.LineMaxColumn(0) // 7
//	buf.CharacterIndex(buffer.Coordinates{Line: 0, Column: 5}) // 2, the glyph holding 'B'
//
// The buffer always holds at least one line. Mutations report the lines they
// touched to an optional Observer so a colorizer can re-tokenize them later.
//
// A Buffer is not safe for concurrent use. One owner drives it.
package buffer
