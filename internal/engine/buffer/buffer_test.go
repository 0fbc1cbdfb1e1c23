package buffer

import (
	"errors"
	"testing"
)

type recordingObserver struct {
	calls [][2]int
}

func (r *recordingObserver) LinesChanged(from, count int) {
	r.calls = append(r.calls, [2]int{from, count})
}

func TestNewBuffer(t *testing.T) {
	b := New()
	if b.LineCount() != 1 {
		t.Errorf("LineCount() = %d, want 1", b.LineCount())
	}
	if b.Text() != "" {
		t.Errorf("Text() = %q, want empty", b.Text())
	}
	if b.TabSize() != DefaultTabSize {
		t.Errorf("TabSize() = %d, want %d", b.TabSize(), DefaultTabSize)
	}
}

func TestSetTextRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"hello",
		"line1\nline2",
		"a\n\nb\n",
		"héllo wörld",
	}
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			b := NewFromString(text)
			if got := b.Text(); got != text {
				t.Errorf("Text() = %q, want %q", got, text)
			}
			if b.TextChanged() {
				t.Error("NewFromString should not leave the text-changed flag set")
			}
		})
	}
}

func TestSetTextDropsCarriageReturns(t *testing.T) {
	b := NewFromString("a\r\nb")
	if got := b.Lines(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Lines() = %q", got)
	}
}

func TestSetLinesEmpty(t *testing.T) {
	b := NewFromString("abc")
	b.SetLines(nil)
	if b.LineCount() != 1 || b.LineText(0) != "" {
		t.Errorf("SetLines(nil) left %d lines %q", b.LineCount(), b.Lines())
	}
}

func TestTabColumns(t *testing.T) {
	b := New(WithTabSize(4))
	if _, _, err := b.InsertTextAt(Coordinates{}, "\tABC"); err != nil {
		t.Fatalf("InsertTextAt: %v", err)
	}

	if got := b.LineMaxColumn(0); got != 7 {
		t.Errorf("LineMaxColumn = %d, want 7", got)
	}
	idx := b.CharacterIndex(Coordinates{Line: 0, Column: 5})
	if idx != 2 || b.Line(0)[idx].Char != 'B' {
		t.Errorf("CharacterIndex({0,5}) = %d, want index of 'B' (2)", idx)
	}

	tests := []struct {
		index int
		col   int
	}{
		{0, 0},
		{1, 4},
		{2, 5},
		{3, 6},
		{4, 7},
	}
	for _, tt := range tests {
		if got := b.CharacterColumn(0, tt.index); got != tt.col {
			t.Errorf("CharacterColumn(0, %d) = %d, want %d", tt.index, got, tt.col)
		}
	}
}

func TestTabStopsMidLine(t *testing.T) {
	b := NewFromString("ab\tc", WithTabSize(4))
	if got := b.LineMaxColumn(0); got != 5 {
		t.Errorf("LineMaxColumn = %d, want 5", got)
	}
	if got := b.CharacterColumn(0, 3); got != 4 {
		t.Errorf("column of 'c' = %d, want 4", got)
	}
}

func TestMultiByteColumns(t *testing.T) {
	b := NewFromString("aé€😀b")
	// a(1) é(2) €(3) 😀(4) b(1)
	if got := b.LineMaxColumn(0); got != 5 {
		t.Errorf("LineMaxColumn = %d, want 5", got)
	}
	if got := b.LineCharacterCount(0); got != 5 {
		t.Errorf("LineCharacterCount = %d, want 5", got)
	}
	if got := b.CharacterIndex(Coordinates{Line: 0, Column: 3}); got != 6 {
		t.Errorf("CharacterIndex col 3 = %d, want 6", got)
	}
	if got := b.CharacterIndex(Coordinates{Line: 0, Column: 4}); got != 10 {
		t.Errorf("CharacterIndex col 4 = %d, want 10", got)
	}
}

func TestCharLength(t *testing.T) {
	tests := []struct {
		b    byte
		want int
	}{
		{'a', 1},
		{0x80, 1},
		{0xC3, 2},
		{0xE2, 3},
		{0xF0, 4},
		{0xF8, 5},
		{0xFC, 6},
	}
	for _, tt := range tests {
		if got := CharLength(tt.b); got != tt.want {
			t.Errorf("CharLength(%#x) = %d, want %d", tt.b, got, tt.want)
		}
	}
	if !IsContinuation(0xA9) || IsContinuation('a') || IsContinuation(0xC3) {
		t.Error("IsContinuation misclassified a byte")
	}
}

func TestSanitize(t *testing.T) {
	b := NewFromString("abc\n\tx\nlast line", WithTabSize(4))
	tests := []struct {
		in   Coordinates
		want Coordinates
	}{
		{Coordinates{0, 1}, Coordinates{0, 1}},
		{Coordinates{0, 10}, Coordinates{0, 3}},
		{Coordinates{0, -3}, Coordinates{0, 0}},
		{Coordinates{-1, 5}, Coordinates{0, 0}},
		{Coordinates{1, 9}, Coordinates{1, 5}},
		{Coordinates{7, 0}, Coordinates{2, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			got := b.Sanitize(tt.in)
			if got != tt.want {
				t.Errorf("Sanitize(%s) = %s, want %s", tt.in, got, tt.want)
			}
			if again := b.Sanitize(got); again != got {
				t.Errorf("Sanitize not idempotent: %s then %s", got, again)
			}
		})
	}
}

func TestAdvance(t *testing.T) {
	b := NewFromString("aé\nb")
	c := b.Advance(Coordinates{0, 0})
	if c != (Coordinates{0, 1}) {
		t.Errorf("Advance over 'a' = %s", c)
	}
	c = b.Advance(c)
	if c != (Coordinates{0, 2}) {
		t.Errorf("Advance over 'é' = %s", c)
	}
	c = b.Advance(c)
	if c != (Coordinates{1, 0}) {
		t.Errorf("Advance at line end = %s", c)
	}
	c = b.Advance(Coordinates{1, 1})
	if c != (Coordinates{1, 1}) {
		t.Errorf("Advance at buffer end = %s", c)
	}
}

func TestInsertTextAt(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		at       Coordinates
		text     string
		want     string
		wantEnd  Coordinates
		newLines int
	}{
		{"start", "world", Coordinates{0, 0}, "hello ", "hello world", Coordinates{0, 6}, 0},
		{"middle", "ac", Coordinates{0, 1}, "b", "abc", Coordinates{0, 2}, 0},
		{"newline split", "abcd", Coordinates{0, 2}, "\n", "ab\ncd", Coordinates{1, 0}, 1},
		{"multi line", "ad", Coordinates{0, 1}, "b\nc\n", "ab\nc\nd", Coordinates{2, 0}, 2},
		{"carriage return ignored", "", Coordinates{0, 0}, "a\r\nb", "a\nb", Coordinates{1, 1}, 1},
		{"tab advances to stop", "x", Coordinates{0, 0}, "\t", "\tx", Coordinates{0, 4}, 0},
		{"past end sanitized", "ab", Coordinates{5, 0}, "c", "abc", Coordinates{0, 3}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString(tt.initial)
			end, n, err := b.InsertTextAt(tt.at, tt.text)
			if err != nil {
				t.Fatalf("InsertTextAt: %v", err)
			}
			if got := b.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
			if end != tt.wantEnd {
				t.Errorf("end = %s, want %s", end, tt.wantEnd)
			}
			if n != tt.newLines {
				t.Errorf("new lines = %d, want %d", n, tt.newLines)
			}
			if !b.TextChanged() {
				t.Error("TextChanged() should be set")
			}
		})
	}
}

func TestDeleteRange(t *testing.T) {
	tests := []struct {
		name       string
		initial    string
		start, end Coordinates
		want       string
	}{
		{"same line", "hello world", Coordinates{0, 5}, Coordinates{0, 11}, "hello"},
		{"cross line", "abc\ndef\nghi", Coordinates{0, 1}, Coordinates{2, 2}, "ai"},
		{"join lines", "ab\ncd", Coordinates{0, 2}, Coordinates{1, 0}, "abcd"},
		{"multi byte", "aé€b", Coordinates{0, 1}, Coordinates{0, 3}, "ab"},
		{"empty range", "abc", Coordinates{0, 1}, Coordinates{0, 1}, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString(tt.initial)
			if err := b.DeleteRange(tt.start, tt.end); err != nil {
				t.Fatalf("DeleteRange: %v", err)
			}
			if got := b.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeleteRangeInverted(t *testing.T) {
	b := NewFromString("abc")
	err := b.DeleteRange(Coordinates{0, 2}, Coordinates{0, 1})
	if !errors.Is(err, ErrRangeInvalid) {
		t.Errorf("expected ErrRangeInvalid, got %v", err)
	}
}

func TestDeleteInsertRoundTrip(t *testing.T) {
	const text = "first\tline\nsécond\n\nfourth 😀 line"
	ranges := [][2]Coordinates{
		{{0, 0}, {0, 3}},
		{{0, 2}, {1, 3}},
		{{0, 5}, {3, 4}},
		{{1, 0}, {2, 0}},
		{{3, 7}, {3, 8}},
		{{0, 0}, {3, 14}},
	}
	for _, r := range ranges {
		t.Run(r[0].String()+"-"+r[1].String(), func(t *testing.T) {
			b := NewFromString(text)
			removed := b.GetText(r[0], r[1])
			if err := b.DeleteRange(r[0], r[1]); err != nil {
				t.Fatalf("DeleteRange: %v", err)
			}
			if _, _, err := b.InsertTextAt(r[0], removed); err != nil {
				t.Fatalf("InsertTextAt: %v", err)
			}
			if got := b.Text(); got != text {
				t.Errorf("round trip = %q, want %q", got, text)
			}
		})
	}
}

func TestGetText(t *testing.T) {
	b := NewFromString("abc\ndef\nghi")
	tests := []struct {
		start, end Coordinates
		want       string
	}{
		{Coordinates{0, 1}, Coordinates{0, 3}, "bc"},
		{Coordinates{0, 1}, Coordinates{1, 2}, "bc\nde"},
		{Coordinates{0, 0}, Coordinates{9, 0}, "abc\ndef\nghi"},
		{Coordinates{1, 2}, Coordinates{0, 1}, "bc\nde"},
	}
	for _, tt := range tests {
		if got := b.GetText(tt.start, tt.end); got != tt.want {
			t.Errorf("GetText(%s, %s) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestRemoveLastLineRejected(t *testing.T) {
	b := NewFromString("only")
	if err := b.RemoveLine(0); !errors.Is(err, ErrLastLine) {
		t.Errorf("RemoveLine on 1-line buffer: got %v, want ErrLastLine", err)
	}
	if b.LineCount() != 1 {
		t.Errorf("LineCount() = %d", b.LineCount())
	}

	b = NewFromString("a\nb\nc")
	if err := b.RemoveLines(0, 3); !errors.Is(err, ErrLastLine) {
		t.Errorf("RemoveLines(all): got %v, want ErrLastLine", err)
	}
	if err := b.RemoveLines(0, 2); err != nil {
		t.Fatalf("RemoveLines: %v", err)
	}
	if b.Text() != "c" {
		t.Errorf("Text() = %q, want c", b.Text())
	}
}

func TestInsertLine(t *testing.T) {
	b := NewFromString("a\nb")
	if err := b.InsertLine(1); err != nil {
		t.Fatalf("InsertLine: %v", err)
	}
	if b.Text() != "a\n\nb" {
		t.Errorf("Text() = %q", b.Text())
	}
	if err := b.InsertLine(10); !errors.Is(err, ErrLineOutOfRange) {
		t.Errorf("InsertLine(10): got %v", err)
	}
}

func TestMarkersRenumbered(t *testing.T) {
	b := NewFromString("0\n1\n2\n3\n4")
	b.SetErrorMarkers(map[int]string{1: "one", 2: "two", 4: "four"})
	b.SetBreakpoints(map[int]bool{0: true, 3: false})

	if err := b.InsertLine(2); err != nil {
		t.Fatalf("InsertLine: %v", err)
	}
	em := b.ErrorMarkers()
	if em[1] != "one" || em[3] != "two" || em[5] != "four" || len(em) != 3 {
		t.Errorf("after InsertLine(2) markers = %v", em)
	}
	bp := b.Breakpoints()
	if !bp[0] || len(bp) != 2 {
		t.Errorf("after InsertLine(2) breakpoints = %v", bp)
	}
	if enabled, ok := bp[4]; !ok || enabled {
		t.Errorf("breakpoint on line 3 should move to 4 disabled, got %v", bp)
	}

	if err := b.RemoveLine(3); err != nil {
		t.Fatalf("RemoveLine: %v", err)
	}
	em = b.ErrorMarkers()
	if em[1] != "one" || em[4] != "four" || len(em) != 2 {
		t.Errorf("after RemoveLine(3) markers = %v", em)
	}
	bp = b.Breakpoints()
	if _, ok := bp[3]; !ok || len(bp) != 2 {
		t.Errorf("after RemoveLine(3) breakpoints = %v", bp)
	}
}

func TestMarkersFollowSplitAndJoin(t *testing.T) {
	b := NewFromString("ab\ncd")
	b.SetErrorMarkers(map[int]string{1: "err"})
	if _, _, err := b.InsertTextAt(Coordinates{0, 1}, "\n"); err != nil {
		t.Fatalf("InsertTextAt: %v", err)
	}
	if b.ErrorMarkers()[2] != "err" {
		t.Errorf("marker should follow line to 2: %v", b.ErrorMarkers())
	}
	if err := b.DeleteRange(Coordinates{0, 1}, Coordinates{1, 1}); err != nil {
		t.Fatalf("DeleteRange: %v", err)
	}
	if b.ErrorMarkers()[1] != "err" {
		t.Errorf("marker should move back to 1: %v", b.ErrorMarkers())
	}
}

func TestReadOnly(t *testing.T) {
	b := NewFromString("abc", WithReadOnly(true))
	if _, _, err := b.InsertTextAt(Coordinates{}, "x"); !errors.Is(err, ErrReadOnly) {
		t.Errorf("InsertTextAt: got %v", err)
	}
	if err := b.DeleteRange(Coordinates{0, 0}, Coordinates{0, 1}); !errors.Is(err, ErrReadOnly) {
		t.Errorf("DeleteRange: got %v", err)
	}
	if err := b.InsertLine(0); !errors.Is(err, ErrReadOnly) {
		t.Errorf("InsertLine: got %v", err)
	}
	if b.Text() != "abc" {
		t.Errorf("read-only buffer changed: %q", b.Text())
	}
}

func TestObserverNotified(t *testing.T) {
	obs := &recordingObserver{}
	b := NewFromString("abc\ndef", WithObserver(obs))
	obs.calls = nil

	if _, _, err := b.InsertTextAt(Coordinates{1, 1}, "x\ny"); err != nil {
		t.Fatal(err)
	}
	if err := b.DeleteRange(Coordinates{0, 1}, Coordinates{1, 0}); err != nil {
		t.Fatal(err)
	}
	want := [][2]int{{1, 2}, {0, 1}}
	if len(obs.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", obs.calls, want)
	}
	for i := range want {
		if obs.calls[i] != want[i] {
			t.Errorf("call %d = %v, want %v", i, obs.calls[i], want[i])
		}
	}
}

func TestSetTabSizeClamped(t *testing.T) {
	b := New()
	b.SetTabSize(0)
	if b.TabSize() != 1 {
		t.Errorf("TabSize() = %d, want 1", b.TabSize())
	}
	b.SetTabSize(100)
	if b.TabSize() != MaxTabSize {
		t.Errorf("TabSize() = %d, want %d", b.TabSize(), MaxTabSize)
	}
}
