// Package highlight assigns color roles to buffer glyphs.
//
// A Grammar is the compiled, immutable form of a Definition: keyword and
// identifier tables, an ordered list of regular-expression rules, comment
// delimiters and a preprocessor marker. Definitions are plain data and can be
// loaded from TOML or YAML; Compile anchors every rule at the current
// position so rules are tried in order and the first match wins.
//
// The Colorizer applies a grammar to a buffer in two phases:
//
//   - Phase A walks the whole buffer and flags glyphs inside comments and
//     preprocessor directives. A single edit can open or close a block
//     comment arbitrarily far away, so this phase always rescans everything
//     once an edit has dirtied it.
//   - Phase B re-derives token roles for a pending window of lines, a chunk
//     at a time, so a front end can spread the work over several frames.
//
// Edits widen the pending window through Colorize. Nothing happens until the
// owner calls Step (one chunk) or Flush (until done):
//
//	c := highlight.NewColorizer(buf, grammar)
//	buf.InsertTextAt(pos, "/* ")
//	for c.Step() {
//		// render a frame
//	}
//
// The Colorizer is single-threaded. Stopping the Step calls is the only way
// to cancel; all state survives until the next call.
package highlight
