package highlight

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/palette"
)

// GlyphColor returns the display color of a glyph. Comment flags win over
// the token role; glyphs inside a preprocessor directive are blended
// halfway toward the preprocessor color.
func GlyphColor(p *palette.Palette, g buffer.Glyph) palette.Color {
	var c palette.Color
	switch {
	case g.Comment:
		c = p.Get(palette.Comment)
	case g.MultiLineComment:
		c = p.Get(palette.MultiLineComment)
	default:
		c = p.Get(g.Color)
	}

	if g.Preprocessor {
		c = Blend(c, p.Get(palette.Preprocessor), 0.5)
	}
	return c
}

// Blend mixes a toward b by t in RGB space. Alpha is interpolated the
// same way.
func Blend(a, b palette.Color, t float64) palette.Color {
	mixed := toColorful(a.RGB).BlendRgb(toColorful(b.RGB), t)
	r, g, bl := mixed.Clamped().RGB255()
	alpha := float64(a.Alpha) + (float64(b.Alpha)-float64(a.Alpha))*t
	return palette.Color{
		RGB:   tcell.NewRGBColor(int32(r), int32(g), int32(bl)),
		Alpha: uint8(alpha + 0.5),
	}
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{
		R: float64(r&0xff) / 255,
		G: float64(g&0xff) / 255,
		B: float64(b&0xff) / 255,
	}
}
