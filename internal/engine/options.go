package engine

import (
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/highlight"
	"github.com/dshills/quill/internal/engine/history"
	"github.com/dshills/quill/internal/engine/palette"
	"github.com/dshills/quill/internal/logging"
)

// Default configuration values.
const (
	DefaultTabSize        = buffer.DefaultTabSize
	DefaultMaxUndoEntries = history.DefaultMaxEntries
	DefaultChunkLines     = highlight.DefaultChunkLines
)

// Option configures an Editor during creation.
type Option func(*options)

type options struct {
	text       string
	tabSize    int
	readOnly   bool
	overwrite  bool
	grammar    *highlight.Grammar
	palette    palette.Palette
	maxUndo    int
	chunkLines int
	colorize   bool
	logger     *logging.Logger
}

func defaultOptions() options {
	return options{
		tabSize:    DefaultTabSize,
		palette:    palette.Dark(),
		maxUndo:    DefaultMaxUndoEntries,
		chunkLines: DefaultChunkLines,
		colorize:   true,
	}
}

// WithText sets the initial content of the editor.
func WithText(text string) Option {
	return func(o *options) {
		o.text = text
	}
}

// WithTabSize sets the tab size. Values are clamped to [1, 32].
func WithTabSize(size int) Option {
	return func(o *options) {
		o.tabSize = size
	}
}

// WithReadOnly creates the editor in read-only mode.
func WithReadOnly(readOnly bool) Option {
	return func(o *options) {
		o.readOnly = readOnly
	}
}

// WithOverwrite starts the editor in overwrite mode.
func WithOverwrite(overwrite bool) Option {
	return func(o *options) {
		o.overwrite = overwrite
	}
}

// WithGrammar sets the initial grammar. Nil selects plain text.
func WithGrammar(g *highlight.Grammar) Option {
	return func(o *options) {
		o.grammar = g
	}
}

// WithPalette sets the palette used by GlyphColor.
func WithPalette(p palette.Palette) Option {
	return func(o *options) {
		o.palette = p
	}
}

// WithMaxUndo sets the maximum number of undo records.
func WithMaxUndo(max int) Option {
	return func(o *options) {
		if max > 0 {
			o.maxUndo = max
		}
	}
}

// WithChunkLines sets how many lines one ColorizeStep classifies.
func WithChunkLines(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.chunkLines = n
		}
	}
}

// WithColorizerEnabled sets whether ColorizeStep does any work.
func WithColorizerEnabled(enabled bool) Option {
	return func(o *options) {
		o.colorize = enabled
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
