package buffer

import (
	"testing"

	"github.com/dshills/quill/internal/engine/palette"
)

func colorRange(b *Buffer, line, from, to int, idx palette.Index) {
	l := b.Line(line)
	for i := from; i < to; i++ {
		l[i].Color = idx
	}
}

func TestFindWordUncolored(t *testing.T) {
	b := NewFromString("foo bar")
	at := Coordinates{Line: 0, Column: 5}

	if got := b.FindWordStart(at); got != (Coordinates{0, 4}) {
		t.Errorf("FindWordStart = %s, want (0:4)", got)
	}
	if got := b.FindWordEnd(at); got != (Coordinates{0, 7}) {
		t.Errorf("FindWordEnd = %s, want (0:7)", got)
	}
	if got := b.WordAt(at); got != "bar" {
		t.Errorf("WordAt = %q, want bar", got)
	}
}

func TestFindWordColored(t *testing.T) {
	b := NewFromString("foo bar")
	colorRange(b, 0, 0, 3, palette.Identifier)
	colorRange(b, 0, 4, 7, palette.Identifier)
	at := Coordinates{Line: 0, Column: 5}

	if got := b.FindWordStart(at); got != (Coordinates{0, 4}) {
		t.Errorf("FindWordStart = %s, want (0:4)", got)
	}
	if got := b.FindWordEnd(at); got != (Coordinates{0, 7}) {
		t.Errorf("FindWordEnd = %s, want (0:7)", got)
	}
}

func TestFindWordStopsAtColorChange(t *testing.T) {
	b := NewFromString("if(x)")
	colorRange(b, 0, 0, 2, palette.Keyword)
	colorRange(b, 0, 2, 3, palette.Punctuation)
	colorRange(b, 0, 3, 4, palette.Identifier)
	colorRange(b, 0, 4, 5, palette.Punctuation)

	if got := b.FindWordEnd(Coordinates{0, 0}); got != (Coordinates{0, 2}) {
		t.Errorf("FindWordEnd = %s, want (0:2)", got)
	}
	if got := b.FindWordStart(Coordinates{0, 3}); got != (Coordinates{0, 3}) {
		t.Errorf("FindWordStart = %s, want (0:3)", got)
	}
}

func TestFindWordEndFromWhitespace(t *testing.T) {
	b := NewFromString("ab   cd")
	if got := b.FindWordEnd(Coordinates{0, 2}); got != (Coordinates{0, 5}) {
		t.Errorf("FindWordEnd from spaces = %s, want (0:5)", got)
	}
}

func TestFindNextWord(t *testing.T) {
	b := NewFromString("foo, bar\n  baz")
	tests := []struct {
		from Coordinates
		want Coordinates
	}{
		{Coordinates{0, 0}, Coordinates{0, 5}},
		{Coordinates{0, 3}, Coordinates{0, 5}},
		{Coordinates{0, 5}, Coordinates{1, 2}},
		{Coordinates{1, 2}, Coordinates{1, 5}},
	}
	for _, tt := range tests {
		if got := b.FindNextWord(tt.from); got != tt.want {
			t.Errorf("FindNextWord(%s) = %s, want %s", tt.from, got, tt.want)
		}
	}
}

func TestIsOnWordBoundary(t *testing.T) {
	b := NewFromString("ab cd")
	if !b.IsOnWordBoundary(Coordinates{0, 0}, false) {
		t.Error("line start should be a boundary")
	}
	if !b.IsOnWordBoundary(Coordinates{0, 2}, false) {
		t.Error("word/space edge should be a boundary")
	}
	if b.IsOnWordBoundary(Coordinates{0, 1}, false) {
		t.Error("inside a word is not a boundary")
	}

	colorRange(b, 0, 0, 1, palette.Keyword)
	if !b.IsOnWordBoundary(Coordinates{0, 1}, true) {
		t.Error("color change should be a boundary")
	}
	if b.IsOnWordBoundary(Coordinates{0, 4}, true) {
		t.Error("same color should not be a boundary")
	}
}
