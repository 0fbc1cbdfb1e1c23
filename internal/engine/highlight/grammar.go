package highlight

import (
	"fmt"
	"regexp"
	"slices"

	"golang.org/x/text/cases"

	"github.com/dshills/quill/internal/engine/palette"
)

// TokenizeFunc recognises the token at the start of text. It returns the
// token bounds relative to text and its role, or ok=false to fall back to
// the grammar's rules.
type TokenizeFunc func(text []byte) (begin, end int, role palette.Index, ok bool)

// Identifier is a known name with a description.
type Identifier struct {
	Declaration string
}

// Rule is a compiled token rule.
type Rule struct {
	Pattern string
	Role    palette.Index
	re      *regexp.Regexp
}

// Match returns the length of the rule's match at the start of text, or 0.
func (r Rule) Match(text []byte) int {
	loc := r.re.FindIndex(text)
	if loc == nil {
		return 0
	}
	return loc[1]
}

// Grammar is an immutable compiled language definition.
type Grammar struct {
	name       string
	extensions []string

	keywords           map[string]struct{}
	identifiers        map[string]Identifier
	preprocIdentifiers map[string]Identifier
	rules              []Rule

	commentStart      string
	commentEnd        string
	singleLineComment string
	preprocChar       byte

	caseSensitive bool
	autoIndent    bool
	tokenize      TokenizeFunc
}

// Compile validates a definition and builds a grammar from it.
func Compile(def Definition) (*Grammar, error) {
	if def.Name == "" {
		return nil, ErrNoName
	}

	g := &Grammar{
		name:               def.Name,
		extensions:         slices.Clone(def.Extensions),
		keywords:           make(map[string]struct{}, len(def.Keywords)),
		identifiers:        make(map[string]Identifier, len(def.Identifiers)),
		preprocIdentifiers: make(map[string]Identifier, len(def.PreprocIdentifiers)),
		commentStart:       def.CommentStart,
		commentEnd:         def.CommentEnd,
		singleLineComment:  def.SingleLineComment,
		caseSensitive:      boolOr(def.CaseSensitive, true),
		autoIndent:         boolOr(def.AutoIndent, true),
	}

	switch len(def.PreprocChar) {
	case 0:
	case 1:
		if def.PreprocChar[0] >= 0x80 {
			return nil, fmt.Errorf("grammar %s: %w", def.Name, ErrInvalidPreprocChar)
		}
		g.preprocChar = def.PreprocChar[0]
	default:
		return nil, fmt.Errorf("grammar %s: %w", def.Name, ErrInvalidPreprocChar)
	}

	for _, k := range def.Keywords {
		g.keywords[g.fold(k)] = struct{}{}
	}
	for name, decl := range def.Identifiers {
		g.identifiers[g.fold(name)] = Identifier{Declaration: decl}
	}
	for name, decl := range def.PreprocIdentifiers {
		g.preprocIdentifiers[g.fold(name)] = Identifier{Declaration: decl}
	}

	for i, rd := range def.Rules {
		role, ok := palette.ParseIndex(rd.Color)
		if !ok || !role.IsToken() {
			return nil, &RuleError{Grammar: def.Name, Index: i, Pattern: rd.Pattern,
				Err: fmt.Errorf("%w: %q", ErrUnknownRole, rd.Color)}
		}
		re, err := regexp.Compile("^(?:" + rd.Pattern + ")")
		if err != nil {
			return nil, &RuleError{Grammar: def.Name, Index: i, Pattern: rd.Pattern, Err: err}
		}
		g.rules = append(g.rules, Rule{Pattern: rd.Pattern, Role: role, re: re})
	}

	return g, nil
}

// MustCompile is like Compile but panics on error. It is meant for
// definitions built into the program.
func MustCompile(def Definition) *Grammar {
	g, err := Compile(def)
	if err != nil {
		panic(err)
	}
	return g
}

// Plain returns a grammar with no rules. Text under it stays unclassified.
func Plain() *Grammar {
	return MustCompile(Definition{Name: "Plain Text"})
}

// WithTokenizer returns a copy of g that consults fn before its rules.
func (g *Grammar) WithTokenizer(fn TokenizeFunc) *Grammar {
	cp := *g
	cp.tokenize = fn
	return &cp
}

// fold normalises a name for lookup in a case-insensitive grammar.
func (g *Grammar) fold(s string) string {
	if g.caseSensitive {
		return s
	}
	return cases.Fold().String(s)
}

// Classify returns the role of an identifier: keyword, known identifier,
// preprocessor identifier, or plain identifier, in that order. Inside a
// preprocessor directive only preprocessor identifiers are recognised.
func (g *Grammar) Classify(word string, inPreprocessor bool) palette.Index {
	word = g.fold(word)
	if !inPreprocessor {
		if _, ok := g.keywords[word]; ok {
			return palette.Keyword
		}
		if _, ok := g.identifiers[word]; ok {
			return palette.KnownIdentifier
		}
	}
	if _, ok := g.preprocIdentifiers[word]; ok {
		return palette.PreprocIdentifier
	}
	return palette.Identifier
}

// Name returns the grammar name.
func (g *Grammar) Name() string { return g.name }

// Extensions returns the file extensions the grammar claims.
func (g *Grammar) Extensions() []string { return slices.Clone(g.extensions) }

// Rules returns the compiled rules in match order.
func (g *Grammar) Rules() []Rule { return slices.Clone(g.rules) }

// CommentStart returns the block comment opener.
func (g *Grammar) CommentStart() string { return g.commentStart }

// CommentEnd returns the block comment closer.
func (g *Grammar) CommentEnd() string { return g.commentEnd }

// SingleLineComment returns the line comment marker.
func (g *Grammar) SingleLineComment() string { return g.singleLineComment }

// PreprocChar returns the directive marker, or 0 if directives are disabled.
func (g *Grammar) PreprocChar() byte { return g.preprocChar }

// CaseSensitive reports whether identifier lookup is case-sensitive.
func (g *Grammar) CaseSensitive() bool { return g.caseSensitive }

// AutoIndent reports whether a new line copies the previous line's indent.
func (g *Grammar) AutoIndent() bool { return g.autoIndent }

// Tokenizer returns the custom tokenize callback, if any.
func (g *Grammar) Tokenizer() TokenizeFunc { return g.tokenize }

// Keywords returns the keyword set, sorted.
func (g *Grammar) Keywords() []string {
	var keys []string
	for k := range g.keywords {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// LookupIdentifier returns the known identifier or preprocessor identifier
// for a name, for hover text.
func (g *Grammar) LookupIdentifier(name string) (Identifier, bool) {
	name = g.fold(name)
	if id, ok := g.identifiers[name]; ok {
		return id, true
	}
	id, ok := g.preprocIdentifiers[name]
	return id, ok
}
