package highlight

// Definition is the data form of a grammar, as written in grammar files.
type Definition struct {
	Name       string   `toml:"name" yaml:"name"`
	Extensions []string `toml:"extensions" yaml:"extensions"`

	Keywords []string `toml:"keywords" yaml:"keywords"`
	// Identifiers maps known identifiers to a short declaration shown by
	// front ends, such as "Built-in function".
	Identifiers map[string]string `toml:"identifiers" yaml:"identifiers"`
	// PreprocIdentifiers are recognised inside preprocessor directives.
	PreprocIdentifiers map[string]string `toml:"preprocIdentifiers" yaml:"preprocIdentifiers"`

	// Rules are tried in order at each position; the first match wins.
	Rules []RuleDefinition `toml:"rules" yaml:"rules"`

	CommentStart      string `toml:"commentStart" yaml:"commentStart"`
	CommentEnd        string `toml:"commentEnd" yaml:"commentEnd"`
	SingleLineComment string `toml:"singleLineComment" yaml:"singleLineComment"`

	// PreprocChar starts a directive when it is the first non-blank
	// character of a line. Empty disables directives.
	PreprocChar string `toml:"preprocChar" yaml:"preprocChar"`

	// CaseSensitive defaults to true.
	CaseSensitive *bool `toml:"caseSensitive" yaml:"caseSensitive"`
	// AutoIndent defaults to true.
	AutoIndent *bool `toml:"autoIndent" yaml:"autoIndent"`

	// Script names a Lua tokenizer, relative to the definition file.
	Script string `toml:"script" yaml:"script"`
}

// RuleDefinition pairs a pattern with the role of the text it matches.
type RuleDefinition struct {
	Pattern string `toml:"pattern" yaml:"pattern"`
	Color   string `toml:"color" yaml:"color"`
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func boolPtr(v bool) *bool {
	return &v
}
