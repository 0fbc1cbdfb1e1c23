package highlight

import (
	"math"

	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/palette"
)

const (
	// DefaultChunkLines is the number of lines one Step classifies with
	// regular-expression rules only.
	DefaultChunkLines = 10
	// DefaultCallbackChunkLines is the number of lines one Step classifies
	// when the grammar has a tokenize callback.
	DefaultCallbackChunkLines = 10000
)

// ColorizerOption is a functional option for configuring a Colorizer.
type ColorizerOption func(*Colorizer)

// WithChunkLines sets the lines per Step for grammars without a callback.
func WithChunkLines(n int) ColorizerOption {
	return func(c *Colorizer) {
		if n > 0 {
			c.chunkLines = n
		}
	}
}

// WithCallbackChunkLines sets the lines per Step for grammars with a
// tokenize callback.
func WithCallbackChunkLines(n int) ColorizerOption {
	return func(c *Colorizer) {
		if n > 0 {
			c.callbackChunkLines = n
		}
	}
}

// WithEnabled sets the initial enabled state.
func WithEnabled(enabled bool) ColorizerOption {
	return func(c *Colorizer) {
		c.enabled = enabled
	}
}

// Colorizer keeps the glyph roles of one buffer in step with a grammar.
// It registers itself as the buffer's observer.
type Colorizer struct {
	buf     *buffer.Buffer
	grammar *Grammar
	enabled bool

	checkComments bool
	rangeMin      int
	rangeMax      int

	chunkLines         int
	callbackChunkLines int
}

// NewColorizer binds a colorizer to buf and schedules the whole buffer. A
// nil grammar selects Plain.
func NewColorizer(buf *buffer.Buffer, g *Grammar, opts ...ColorizerOption) *Colorizer {
	if g == nil {
		g = Plain()
	}
	c := &Colorizer{
		buf:                buf,
		grammar:            g,
		enabled:            true,
		rangeMin:           math.MaxInt,
		rangeMax:           0,
		chunkLines:         DefaultChunkLines,
		callbackChunkLines: DefaultCallbackChunkLines,
	}

	for _, opt := range opts {
		opt(c)
	}

	buf.SetObserver(c)
	c.Colorize(0, -1)
	return c
}

// LinesChanged implements buffer.Observer.
func (c *Colorizer) LinesChanged(from, count int) {
	c.Colorize(from, count)
}

// Grammar returns the active grammar.
func (c *Colorizer) Grammar() *Grammar {
	return c.grammar
}

// SetGrammar swaps the grammar, clears every glyph classification and
// schedules a full rescan. A nil grammar selects Plain.
func (c *Colorizer) SetGrammar(g *Grammar) {
	if g == nil {
		g = Plain()
	}
	c.grammar = g
	c.reset()
	c.Colorize(0, -1)
}

// Enabled reports whether Step does any work.
func (c *Colorizer) Enabled() bool {
	return c.enabled
}

// SetEnabled toggles colorization. Pending work is kept while disabled.
func (c *Colorizer) SetEnabled(enabled bool) {
	c.enabled = enabled
}

// Colorize adds count lines starting at from to the pending window and
// marks comment state dirty. A count of -1 extends to the end of the
// buffer.
func (c *Colorizer) Colorize(from, count int) {
	n := c.buf.LineCount()
	to := n
	if count != -1 {
		to = min(n, from+count)
	}
	c.rangeMin = max(0, min(c.rangeMin, from))
	c.rangeMax = max(c.rangeMin, max(c.rangeMax, to))
	c.checkComments = true
}

// PendingRange returns the window awaiting classification.
func (c *Colorizer) PendingRange() (from, to int, ok bool) {
	if c.rangeMin < c.rangeMax {
		return c.rangeMin, c.rangeMax, true
	}
	return 0, 0, false
}

// Pending reports whether a Step would do any work.
func (c *Colorizer) Pending() bool {
	return c.checkComments || c.rangeMin < c.rangeMax
}

// Step runs the comment scan if it is dirty and classifies one chunk of
// the pending window. It returns true while work remains. A disabled
// colorizer does nothing.
func (c *Colorizer) Step() bool {
	if !c.enabled {
		return c.Pending()
	}

	if c.checkComments {
		c.scanComments()
		c.checkComments = false
	}

	if c.rangeMin < c.rangeMax {
		chunk := c.chunkLines
		if c.grammar.tokenize != nil {
			chunk = c.callbackChunkLines
		}
		to := min(c.rangeMin+chunk, c.rangeMax)
		c.colorizeRange(c.rangeMin, to)
		c.rangeMin = to
		if c.rangeMin == c.rangeMax {
			c.rangeMin = math.MaxInt
			c.rangeMax = 0
		}
	}

	return c.Pending()
}

// Flush steps until no work remains. It returns immediately when disabled.
func (c *Colorizer) Flush() {
	for c.enabled && c.Step() {
	}
}

func (c *Colorizer) colorizeRange(from, to int) {
	to = min(to, c.buf.LineCount())
	for i := max(from, 0); i < to; i++ {
		line := c.buf.Line(i)
		if len(line) == 0 {
			continue
		}
		text := line.Bytes()
		for j := range line {
			line[j].Color = palette.Default
		}
		c.classifyLine(line, text)
	}
}

func (c *Colorizer) classifyLine(line buffer.Line, text []byte) {
	g := c.grammar
	first := 0
	for first < len(text) {
		begin, end, role, ok := c.match(text, first)
		if !ok {
			first++
			continue
		}
		if role == palette.Identifier {
			role = g.Classify(string(text[begin:end]), line[begin].Preprocessor)
		}
		for j := begin; j < end; j++ {
			line[j].Color = role
		}
		first = end
	}
}

// match finds the token at text[first:]. The tokenize callback is asked
// first; empty matches are ignored so every token advances.
func (c *Colorizer) match(text []byte, first int) (begin, end int, role palette.Index, ok bool) {
	rest := text[first:]
	if tok := c.grammar.tokenize; tok != nil {
		b, e, r, found := tok(rest)
		if found && b >= 0 && e > b && e <= len(rest) {
			return first + b, first + e, r, true
		}
	}
	for _, rule := range c.grammar.rules {
		if n := rule.Match(rest); n > 0 {
			return first, first + n, rule.Role, true
		}
	}
	return 0, 0, palette.Default, false
}

// reset clears every glyph classification.
func (c *Colorizer) reset() {
	for i := 0; i < c.buf.LineCount(); i++ {
		line := c.buf.Line(i)
		for j := range line {
			line[j].Color = palette.Default
			line[j].Comment = false
			line[j].MultiLineComment = false
			line[j].Preprocessor = false
		}
	}
}
