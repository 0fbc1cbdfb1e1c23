package palette

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Errors returned by palette operations.
var (
	ErrUnknownRole    = errors.New("unknown color role")
	ErrInvalidColor   = errors.New("invalid color")
	ErrUnknownPalette = errors.New("unknown palette")
)

// Color is a display color with an alpha channel. Terminal front ends
// ignore Alpha; compositing front ends blend with it.
type Color struct {
	RGB   tcell.Color
	Alpha uint8
}

// FromABGR converts a packed 0xAABBGGRR value.
func FromABGR(v uint32) Color {
	r := int32(v & 0xff)
	g := int32((v >> 8) & 0xff)
	b := int32((v >> 16) & 0xff)
	return Color{
		RGB:   tcell.NewRGBColor(r, g, b),
		Alpha: uint8(v >> 24),
	}
}

// ABGR packs the color as 0xAABBGGRR.
func (c Color) ABGR() uint32 {
	r, g, b := c.RGB.RGB()
	return uint32(c.Alpha)<<24 | uint32(b&0xff)<<16 | uint32(g&0xff)<<8 | uint32(r&0xff)
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	r, g, b := c.RGB.RGB()
	return colorful.Color{
		R: float64(r&0xff) / 255,
		G: float64(g&0xff) / 255,
		B: float64(b&0xff) / 255,
	}.Hex()
}

// ParseColor parses a color name understood by tcell ("red", "#569cd6")
// or an "#rrggbbaa" value carrying alpha. Colors without alpha are opaque.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if len(s) == 9 && s[0] == '#' {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return Color{
			RGB:   tcell.NewRGBColor(int32(v>>24), int32((v>>16)&0xff), int32((v>>8)&0xff)),
			Alpha: uint8(v & 0xff),
		}, nil
	}
	c := tcell.GetColor(s)
	if c == tcell.ColorDefault {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{RGB: c, Alpha: 0xff}, nil
}

// Palette maps every role to a color.
type Palette [Max]Color

// Get returns the color for a role.
func (p *Palette) Get(i Index) Color {
	if i >= Max {
		return p[Default]
	}
	return p[i]
}

// Set replaces the color for a role.
func (p *Palette) Set(i Index, c Color) {
	if i < Max {
		p[i] = c
	}
}

// WithOverrides returns a copy of p with the named roles replaced.
// Keys are role names, values anything ParseColor accepts.
func (p Palette) WithOverrides(overrides map[string]string) (Palette, error) {
	out := p
	for role, value := range overrides {
		idx, ok := ParseIndex(role)
		if !ok {
			return p, fmt.Errorf("%w: %q", ErrUnknownRole, role)
		}
		c, err := ParseColor(value)
		if err != nil {
			return p, fmt.Errorf("role %s: %w", role, err)
		}
		out[idx] = c
	}
	return out, nil
}

// ByName returns a built-in palette: "dark" or "light".
func ByName(name string) (Palette, error) {
	switch strings.ToLower(name) {
	case "", "dark":
		return Dark(), nil
	case "light":
		return Light(), nil
	default:
		return Palette{}, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
}

func fromTable(table [Max]uint32) Palette {
	var p Palette
	for i, v := range table {
		p[i] = FromABGR(v)
	}
	return p
}

// Dark returns the default dark palette.
func Dark() Palette {
	return fromTable([Max]uint32{
		0xff7f7f7f, // default
		0xffd69c56, // keyword
		0xff00ff00, // number
		0xff7070e0, // string
		0xff70a0e0, // char literal
		0xffffffff, // punctuation
		0xff408080, // preprocessor
		0xffaaaaaa, // identifier
		0xff9bc64d, // known identifier
		0xffc040a0, // preproc identifier
		0xff206020, // comment
		0xff406020, // multi-line comment
		0xff101010, // background
		0xffe0e0e0, // cursor
		0x80a06020, // selection
		0x800020ff, // error marker
		0x40f08000, // breakpoint
		0xff707000, // line number
		0x40000000, // current line fill
		0x40808080, // current line fill, inactive
		0x40a0a0a0, // current line edge
	})
}

// Light returns the default light palette.
func Light() Palette {
	return fromTable([Max]uint32{
		0xff7f7f7f,
		0xffff0c06,
		0xff008000,
		0xff2020a0,
		0xff304070,
		0xff000000,
		0xff406060,
		0xff404040,
		0xff606010,
		0xffc040a0,
		0xff205020,
		0xff405020,
		0xffffffff,
		0xff000000,
		0x80600000,
		0xa00010ff,
		0x80f08000,
		0xff505000,
		0x40000000,
		0x40808080,
		0x40000000,
	})
}
