package palette

import "strings"

// Index identifies a color role. Token roles are assigned to glyphs by the
// colorizer; the remaining roles describe editor chrome.
type Index uint8

const (
	Default Index = iota
	Keyword
	Number
	String
	CharLiteral
	Punctuation
	Preprocessor
	Identifier
	KnownIdentifier
	PreprocIdentifier
	Comment
	MultiLineComment
	Background
	Cursor
	Selection
	ErrorMarker
	Breakpoint
	LineNumber
	CurrentLineFill
	CurrentLineFillInactive
	CurrentLineEdge

	// Max is the number of roles. It is not a valid role.
	Max
)

var indexNames = [Max]string{
	Default:                 "default",
	Keyword:                 "keyword",
	Number:                  "number",
	String:                  "string",
	CharLiteral:             "char-literal",
	Punctuation:             "punctuation",
	Preprocessor:            "preprocessor",
	Identifier:              "identifier",
	KnownIdentifier:         "known-identifier",
	PreprocIdentifier:       "preproc-identifier",
	Comment:                 "comment",
	MultiLineComment:        "multi-line-comment",
	Background:              "background",
	Cursor:                  "cursor",
	Selection:               "selection",
	ErrorMarker:             "error-marker",
	Breakpoint:              "breakpoint",
	LineNumber:              "line-number",
	CurrentLineFill:         "current-line-fill",
	CurrentLineFillInactive: "current-line-fill-inactive",
	CurrentLineEdge:         "current-line-edge",
}

// String returns the role name.
func (i Index) String() string {
	if i < Max {
		return indexNames[i]
	}
	return "unknown"
}

// IsToken reports whether the role can be assigned to a glyph.
func (i Index) IsToken() bool {
	return i < Background
}

// ParseIndex returns the role with the given name. Matching ignores case
// and treats '_' and ' ' like '-', so "Known_Identifier" resolves too.
func ParseIndex(name string) (Index, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.NewReplacer("_", "-", " ", "-").Replace(name)
	for i, n := range indexNames {
		if n == name {
			return Index(i), true
		}
	}
	return Default, false
}

// Indexes returns every role in declaration order.
func Indexes() []Index {
	out := make([]Index, 0, Max)
	for i := Index(0); i < Max; i++ {
		out = append(out, i)
	}
	return out
}
