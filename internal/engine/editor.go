package engine

import (
	"slices"

	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/cursor"
	"github.com/dshills/quill/internal/engine/highlight"
	"github.com/dshills/quill/internal/engine/history"
	"github.com/dshills/quill/internal/engine/palette"
	"github.com/dshills/quill/internal/logging"
)

// Re-export commonly used types for convenience.
type (
	// Coordinates is a (line, rendered column) position.
	Coordinates = buffer.Coordinates

	// State is the cursor position and selection.
	State = cursor.State

	// SelectionMode controls how selection endpoints snap.
	SelectionMode = cursor.SelectionMode
)

// Re-export constants.
const (
	SelectionNormal = cursor.SelectionNormal
	SelectionWord   = cursor.SelectionWord
	SelectionLine   = cursor.SelectionLine
)

// Editor is the editing facade over one buffer.
type Editor struct {
	buf       *buffer.Buffer
	colorizer *highlight.Colorizer
	history   *history.Log
	palette   palette.Palette
	logger    *logging.Logger

	state   cursor.State
	anchors cursor.Anchors

	overwrite             bool
	cursorPositionChanged bool
}

// New creates an editor.
func New(opts ...Option) *Editor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = logging.Discard()
	}

	buf := buffer.NewFromString(o.text,
		buffer.WithTabSize(o.tabSize),
		buffer.WithReadOnly(o.readOnly),
	)

	e := &Editor{
		buf:       buf,
		history:   history.NewLog(o.maxUndo),
		palette:   o.palette,
		logger:    logger.WithComponent("editor"),
		overwrite: o.overwrite,
	}
	e.colorizer = highlight.NewColorizer(buf, o.grammar,
		highlight.WithChunkLines(o.chunkLines),
		highlight.WithEnabled(o.colorize),
	)
	return e
}

// Text returns the whole content, lines joined by '\n'.
func (e *Editor) Text() string {
	return e.buf.Text()
}

// SetText replaces the content, clears the undo log and clamps the cursor
// and selection into the new text.
func (e *Editor) SetText(text string) {
	e.buf.SetText(text)
	e.resetAfterLoad()
}

// TextLines returns the content as one string per line.
func (e *Editor) TextLines() []string {
	return e.buf.Lines()
}

// SetTextLines replaces the content with one line per element.
func (e *Editor) SetTextLines(lines []string) {
	e.buf.SetLines(lines)
	e.resetAfterLoad()
}

func (e *Editor) resetAfterLoad() {
	e.history.Clear()
	e.state = cursor.State{
		Cursor:         e.buf.Sanitize(e.state.Cursor),
		SelectionStart: e.buf.Sanitize(e.state.SelectionStart),
		SelectionEnd:   e.buf.Sanitize(e.state.SelectionEnd),
	}
	e.anchors = cursor.Anchors{Start: e.state.SelectionStart, End: e.state.SelectionEnd}
	e.cursorPositionChanged = true
}

// LineCount returns the number of lines.
func (e *Editor) LineCount() int {
	return e.buf.LineCount()
}

// LineText returns the text of one line.
func (e *Editor) LineText(line int) string {
	return e.buf.LineText(line)
}

// CurrentLineText returns the text of the cursor's line.
func (e *Editor) CurrentLineText() string {
	return e.buf.LineText(e.CursorPosition().Line)
}

// WordAt returns the word under c.
func (e *Editor) WordAt(c Coordinates) string {
	return e.buf.WordAt(e.buf.Sanitize(c))
}

// WordUnderCursor returns the word under the cursor.
func (e *Editor) WordUnderCursor() string {
	return e.WordAt(e.CursorPosition())
}

// Glyphs returns a copy of one line's glyphs with their current
// classification.
func (e *Editor) Glyphs(line int) buffer.Line {
	return slices.Clone(e.buf.Line(line))
}

// State returns the cursor and selection.
func (e *Editor) State() State {
	return e.state
}

// TabSize returns the tab size.
func (e *Editor) TabSize() int {
	return e.buf.TabSize()
}

// SetTabSize changes the tab size, clamped to [1, 32].
func (e *Editor) SetTabSize(size int) {
	e.buf.SetTabSize(size)
}

// ReadOnly reports whether mutations are rejected.
func (e *Editor) ReadOnly() bool {
	return e.buf.ReadOnly()
}

// SetReadOnly toggles read-only mode.
func (e *Editor) SetReadOnly(readOnly bool) {
	e.buf.SetReadOnly(readOnly)
}

// Overwrite reports whether typed characters replace the one under the
// cursor.
func (e *Editor) Overwrite() bool {
	return e.overwrite
}

// SetOverwrite toggles overwrite mode.
func (e *Editor) SetOverwrite(overwrite bool) {
	e.overwrite = overwrite
}

// ColorizerEnabled reports whether ColorizeStep does any work.
func (e *Editor) ColorizerEnabled() bool {
	return e.colorizer.Enabled()
}

// SetColorizerEnabled toggles colorization. It also changes how word
// selection finds boundaries.
func (e *Editor) SetColorizerEnabled(enabled bool) {
	e.colorizer.SetEnabled(enabled)
}

// Grammar returns the active grammar.
func (e *Editor) Grammar() *highlight.Grammar {
	return e.colorizer.Grammar()
}

// SetGrammar swaps the grammar, discarding every classification.
func (e *Editor) SetGrammar(g *highlight.Grammar) {
	e.colorizer.SetGrammar(g)
	e.logger.Debug("grammar set to %s", e.colorizer.Grammar().Name())
}

// Palette returns the palette used by GlyphColor.
func (e *Editor) Palette() palette.Palette {
	return e.palette
}

// SetPalette replaces the palette.
func (e *Editor) SetPalette(p palette.Palette) {
	e.palette = p
}

// GlyphColor returns the display color of a glyph under the current
// palette.
func (e *Editor) GlyphColor(g buffer.Glyph) palette.Color {
	return highlight.GlyphColor(&e.palette, g)
}

// ColorizeStep classifies one chunk of pending lines. It returns true
// while work remains.
func (e *Editor) ColorizeStep() bool {
	return e.colorizer.Step()
}

// FlushColors classifies every pending line.
func (e *Editor) FlushColors() {
	e.colorizer.Flush()
}

// Colorize schedules count lines from fromLine for classification. A count
// of -1 extends to the end of the buffer.
func (e *Editor) Colorize(fromLine, count int) {
	e.colorizer.Colorize(fromLine, count)
}

// Breakpoints returns the breakpoint map (line to enabled).
func (e *Editor) Breakpoints() map[int]bool {
	return e.buf.Breakpoints()
}

// SetBreakpoints replaces the breakpoints.
func (e *Editor) SetBreakpoints(bp map[int]bool) {
	e.buf.SetBreakpoints(bp)
}

// SetBreakpoint adds or toggles the breakpoint on a line. Lines outside
// the buffer are ignored.
func (e *Editor) SetBreakpoint(line int, enabled bool) {
	if line >= 0 && line < e.buf.LineCount() {
		e.buf.SetBreakpoint(line, enabled)
	}
}

// ClearBreakpoint removes the breakpoint on a line.
func (e *Editor) ClearBreakpoint(line int) {
	e.buf.ClearBreakpoint(line)
}

// ErrorMarkers returns the error marker map (line to message).
func (e *Editor) ErrorMarkers() map[int]string {
	return e.buf.ErrorMarkers()
}

// SetErrorMarkers replaces the error markers.
func (e *Editor) SetErrorMarkers(markers map[int]string) {
	e.buf.SetErrorMarkers(markers)
}

// TextChanged reports whether the content changed since ClearChanged.
func (e *Editor) TextChanged() bool {
	return e.buf.TextChanged()
}

// CursorPositionChanged reports whether the cursor or selection moved since
// ClearChanged.
func (e *Editor) CursorPositionChanged() bool {
	return e.cursorPositionChanged
}

// ClearChanged resets the text and cursor change flags. Front ends call it
// once per frame after reacting to them.
func (e *Editor) ClearChanged() {
	e.buf.ClearTextChanged()
	e.cursorPositionChanged = false
}
