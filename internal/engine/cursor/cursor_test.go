package cursor

import "testing"

func TestStateHasSelection(t *testing.T) {
	s := State{Cursor: Coordinates{Line: 1, Column: 2}}
	if s.HasSelection() {
		t.Error("zero selection should be empty")
	}
	s.SelectionEnd = Coordinates{Line: 0, Column: 3}
	if !s.HasSelection() {
		t.Error("expected a selection")
	}
	if c := s.Collapsed(); c.HasSelection() || c.SelectionStart != s.Cursor {
		t.Errorf("Collapsed() = %v", c)
	}
}

func TestSelectionModeString(t *testing.T) {
	tests := []struct {
		mode SelectionMode
		want string
	}{
		{SelectionNormal, "normal"},
		{SelectionWord, "word"},
		{SelectionLine, "line"},
		{SelectionMode(9), "SelectionMode(9)"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestAnchorsExtend(t *testing.T) {
	p := func(l, c int) Coordinates { return Coordinates{Line: l, Column: c} }

	tests := []struct {
		name      string
		start     Coordinates
		end       Coordinates
		forward   bool
		old, cur  Coordinates
		selecting bool
		wantStart Coordinates
		wantEnd   Coordinates
	}{
		{"collapse forward", p(0, 0), p(0, 3), true, p(0, 3), p(0, 4), false, p(0, 4), p(0, 4)},
		{"extend end forward", p(0, 0), p(0, 3), true, p(0, 3), p(0, 4), true, p(0, 0), p(0, 4)},
		{"shrink from start forward", p(0, 0), p(0, 3), true, p(0, 0), p(0, 1), true, p(0, 1), p(0, 3)},
		{"new selection forward", p(1, 0), p(1, 0), true, p(0, 2), p(0, 5), true, p(0, 2), p(0, 5)},
		{"extend start backward", p(0, 2), p(0, 5), false, p(0, 2), p(0, 1), true, p(0, 1), p(0, 5)},
		{"shrink end backward", p(0, 2), p(0, 5), false, p(0, 5), p(0, 4), true, p(0, 2), p(0, 4)},
		{"new selection backward", p(3, 3), p(3, 3), false, p(1, 1), p(0, 0), true, p(0, 0), p(1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Anchors{Start: tt.start, End: tt.end}
			if tt.forward {
				a.MoveForward(tt.old, tt.cur, tt.selecting)
			} else {
				a.MoveBackward(tt.old, tt.cur, tt.selecting)
			}
			start, end := a.Ordered()
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("got %s-%s, want %s-%s", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
