package lua

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/highlight"
	"github.com/dshills/quill/internal/engine/palette"
)

const numberScript = `
function tokenize(text)
  local s, e = string.find(text, "^%d+")
  if s then return s, e, "number" end
  s, e = string.find(text, "^TODO")
  if s then return s, e, "keyword" end
  s, e = string.find(text, "^@")
  if s then return s, e, "cursor" end
  return nil
end
`

func TestTokenize(t *testing.T) {
	tok, err := NewTokenizer("numbers.lua", numberScript)
	if err != nil {
		t.Fatalf("NewTokenizer() error = %v", err)
	}
	defer tok.Close()

	tests := []struct {
		text       string
		begin, end int
		role       palette.Index
		ok         bool
	}{
		{"123abc", 0, 3, palette.Number, true},
		{"TODO later", 0, 4, palette.Keyword, true},
		{"abc", 0, 0, palette.Default, false},
		{"@x", 0, 0, palette.Default, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			begin, end, role, ok := tok.Tokenize([]byte(tt.text))
			if begin != tt.begin || end != tt.end || role != tt.role || ok != tt.ok {
				t.Errorf("Tokenize(%q) = %d, %d, %v, %v, want %d, %d, %v, %v",
					tt.text, begin, end, role, ok, tt.begin, tt.end, tt.role, tt.ok)
			}
		})
	}
	if tok.Err() != nil {
		t.Errorf("Err() = %v", tok.Err())
	}
}

func TestTokenizerDrivesColorizer(t *testing.T) {
	tok, err := NewTokenizer("numbers.lua", numberScript)
	if err != nil {
		t.Fatalf("NewTokenizer() error = %v", err)
	}
	defer tok.Close()

	buf := buffer.NewFromString("12 TODO")
	c := highlight.NewColorizer(buf, highlight.Plain().WithTokenizer(tok.Func()))
	c.Flush()

	want := []palette.Index{
		palette.Number, palette.Number, palette.Default,
		palette.Keyword, palette.Keyword, palette.Keyword, palette.Keyword,
	}
	for i, g := range buf.Line(0) {
		if g.Color != want[i] {
			t.Errorf("cell %d = %v, want %v", i, g.Color, want[i])
		}
	}
}

func TestNewTokenizerErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   error
	}{
		{"syntax error", "function (", nil},
		{"no tokenize", "x = 1", ErrNoTokenizeFunc},
		{"load error", "error('boom')", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTokenizer(tt.name, tt.source)
			var se *ScriptError
			if !errors.As(err, &se) {
				t.Fatalf("error %v is not a *ScriptError", err)
			}
			if se.Script != tt.name {
				t.Errorf("Script = %q, want %q", se.Script, tt.name)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRuntimeErrorDisablesTokenizer(t *testing.T) {
	tok, err := NewTokenizer("boom.lua", `function tokenize(text) error("boom") end`)
	if err != nil {
		t.Fatalf("NewTokenizer() error = %v", err)
	}
	defer tok.Close()

	if _, _, _, ok := tok.Tokenize([]byte("x")); ok {
		t.Error("failing script should not match")
	}
	if tok.Err() == nil {
		t.Fatal("Err() should report the failure")
	}
	var se *ScriptError
	if !errors.As(tok.Err(), &se) || se.Script != "boom.lua" {
		t.Errorf("Err() = %v", tok.Err())
	}
}

func TestExecutionTimeout(t *testing.T) {
	tok, err := NewTokenizer("spin.lua", `function tokenize(text) while true do end end`,
		WithExecutionTimeout(50*time.Millisecond))
	if err != nil {
		t.Fatalf("NewTokenizer() error = %v", err)
	}
	defer tok.Close()

	tok.Tokenize([]byte("x"))
	if !errors.Is(tok.Err(), ErrExecutionTimeout) {
		t.Errorf("Err() = %v, want ErrExecutionTimeout", tok.Err())
	}
}

func TestSandbox(t *testing.T) {
	var printed []string
	s := NewState(WithPrint(func(line string) { printed = append(printed, line) }))
	defer s.Close()

	err := s.DoString("probe", `
		assert(dofile == nil)
		assert(loadfile == nil)
		assert(load == nil)
		assert(require == nil)
		assert(io == nil)
		assert(os == nil)
		assert(string.find("abc", "b") == 2)
		print("hi", 1)
	`)
	if err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
	if len(printed) != 1 || printed[0] != "hi\t1" {
		t.Errorf("printed = %q", printed)
	}
}

func TestClosedState(t *testing.T) {
	s := NewState()
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !s.IsClosed() {
		t.Error("IsClosed() = false after Close")
	}
	if err := s.DoString("x", "x = 1"); !errors.Is(err, ErrStateClosed) {
		t.Errorf("DoString() error = %v, want ErrStateClosed", err)
	}
	if _, err := s.Call("f", 1); !errors.Is(err, ErrStateClosed) {
		t.Errorf("Call() error = %v, want ErrStateClosed", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestLoadTokenizer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numbers.lua")
	if err := os.WriteFile(path, []byte(numberScript), 0o644); err != nil {
		t.Fatal(err)
	}
	tok, err := LoadTokenizer(path)
	if err != nil {
		t.Fatalf("LoadTokenizer() error = %v", err)
	}
	defer tok.Close()
	if tok.Name() != "numbers.lua" {
		t.Errorf("Name() = %q", tok.Name())
	}

	if _, err := LoadTokenizer(filepath.Join(t.TempDir(), "missing.lua")); err == nil {
		t.Error("LoadTokenizer() on a missing file should fail")
	}
}
