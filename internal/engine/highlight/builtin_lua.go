package highlight

// Lua returns the Lua definition. Lua has no preprocessor.
func Lua() Definition {
	return Definition{
		Name:       "Lua",
		Extensions: []string{".lua"},
		Keywords: []string{
			"and", "break", "do", "else", "elseif", "end", "false", "for", "function", "goto", "if",
			"in", "local", "nil", "not", "or", "repeat", "return", "then", "true", "until", "while",
		},
		Identifiers: describe(nil, []string{
			"assert", "collectgarbage", "error", "getmetatable", "ipairs", "load", "next", "pairs",
			"pcall", "print", "rawequal", "rawget", "rawlen", "rawset", "require", "select",
			"setmetatable", "tonumber", "tostring", "type", "xpcall", "coroutine", "io", "math",
			"os", "string", "table", "utf8",
		}, "Built-in"),
		Rules: []RuleDefinition{
			{`"(\\.|[^"])*"`, "string"},
			{`'(\\.|[^'])*'`, "string"},
			{`0[xX][0-9a-fA-F]+`, "number"},
			{`([0-9]+([.][0-9]*)?|[.][0-9]+)([eE][+-]?[0-9]+)?`, "number"},
			{`[a-zA-Z_][a-zA-Z0-9_]*`, "identifier"},
			{`[\[\]\{\}\#\%\^\&\*\(\)\-\+\=\~\|\<\>\/\;\,\.\:]`, "punctuation"},
		},
		CommentStart:      "--[[",
		CommentEnd:        "]]",
		SingleLineComment: "--",
	}
}
