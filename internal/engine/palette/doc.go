// Package palette defines the color roles assigned to buffer glyphs and the
// display colors a front end paints them with.
//
// The engine only ever stores an Index on each glyph. Mapping an Index to a
// Color is left to whoever renders the buffer, so the same colorized buffer
// can be painted with the dark palette, the light palette, or a palette
// loaded from user configuration.
//
// Colors are kept as tcell colors with a separate alpha channel:
//
//	p := palette.Dark()
//	kw := p.Get(palette.Keyword)
//	fmt.Println(kw.Hex()) // #569cd6
package palette
