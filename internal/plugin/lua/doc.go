// Package lua runs grammar tokenizers written in Lua.
//
// A grammar definition may name a script instead of, or in addition to,
// its regular-expression rules. The script defines a global function
//
//	function tokenize(text)
//	    local s, e = string.find(text, "^%d+")
//	    if s then return s, e, "number" end
//	    return nil
//	end
//
// which receives the rest of the line and returns the 1-based inclusive
// bounds of the token found at or after its start, plus a role name. The
// colorizer calls it before trying the grammar's rules; returning nil hands
// control back to the rules.
//
// # Sandbox
//
// Scripts run in a State that opens only the base, table, string and math
// libraries. File loading (dofile, loadfile, load, loadstring, require) is
// removed, and print is routed to a caller-supplied function. Every call
// runs under an execution timeout.
//
// gopher-lua's LState is not goroutine-safe. A State serialises its own
// calls, but a Tokenizer is meant to be driven by the goroutine that owns
// the colorizer.
package lua
