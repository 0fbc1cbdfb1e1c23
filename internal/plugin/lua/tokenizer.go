package lua

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/quill/internal/engine/highlight"
	"github.com/dshills/quill/internal/engine/palette"
)

// TokenizeFuncName is the global function a tokenizer script must define.
const TokenizeFuncName = "tokenize"

// Tokenizer adapts a Lua tokenize function to highlight.TokenizeFunc.
// A script that fails at run time is disabled; Err reports why.
type Tokenizer struct {
	state *State
	name  string
	err   error
}

// LoadTokenizer reads and loads a tokenizer script from disk.
func LoadTokenizer(path string, opts ...StateOption) (*Tokenizer, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tokenizer: %w", err)
	}
	return NewTokenizer(filepath.Base(path), string(src), opts...)
}

// NewTokenizer loads a tokenizer script from source.
func NewTokenizer(name, source string, opts ...StateOption) (*Tokenizer, error) {
	state := NewState(opts...)
	if err := state.DoString(name, source); err != nil {
		state.Close()
		return nil, &ScriptError{Script: name, Err: err}
	}
	if state.GetGlobal(TokenizeFuncName).Type() != lua.LTFunction {
		state.Close()
		return nil, &ScriptError{Script: name, Err: ErrNoTokenizeFunc}
	}
	return &Tokenizer{state: state, name: name}, nil
}

// Name returns the script name.
func (t *Tokenizer) Name() string {
	return t.name
}

// Func returns the tokenizer as a grammar callback.
func (t *Tokenizer) Func() highlight.TokenizeFunc {
	return t.Tokenize
}

// Tokenize calls the script on text. The script's 1-based inclusive
// bounds are converted to a half-open byte range. Out-of-range bounds and
// unknown or non-token roles are treated as no match.
func (t *Tokenizer) Tokenize(text []byte) (begin, end int, role palette.Index, ok bool) {
	if t.err != nil {
		return 0, 0, palette.Default, false
	}

	res, err := t.state.Call(TokenizeFuncName, 3, lua.LString(text))
	if err != nil {
		t.err = &ScriptError{Script: t.name, Err: err}
		return 0, 0, palette.Default, false
	}
	if res[0] == lua.LNil {
		return 0, 0, palette.Default, false
	}

	first, okFirst := res[0].(lua.LNumber)
	last, okLast := res[1].(lua.LNumber)
	name, okName := res[2].(lua.LString)
	if !okFirst || !okLast || !okName {
		return 0, 0, palette.Default, false
	}

	begin, end = int(first)-1, int(last)
	if begin < 0 || end <= begin || end > len(text) {
		return 0, 0, palette.Default, false
	}

	role, found := palette.ParseIndex(string(name))
	if !found || !role.IsToken() {
		return 0, 0, palette.Default, false
	}
	return begin, end, role, true
}

// Err returns the run-time error that disabled the tokenizer, if any.
func (t *Tokenizer) Err() error {
	return t.err
}

// Close releases the script's Lua state.
func (t *Tokenizer) Close() error {
	return t.state.Close()
}
