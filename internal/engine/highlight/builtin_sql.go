package highlight

// SQL returns a case-insensitive SQL definition.
func SQL() Definition {
	return Definition{
		Name:       "SQL",
		Extensions: []string{".sql"},
		Keywords: []string{
			"select", "from", "where", "and", "or", "not", "insert", "into", "values", "update",
			"set", "delete", "create", "table", "drop", "alter", "index", "join", "inner", "left",
			"right", "outer", "on", "as", "group", "by", "order", "having", "limit", "offset",
			"distinct", "union", "all", "null", "is", "in", "like", "between", "exists", "case",
			"when", "then", "else", "end", "primary", "key", "foreign", "references", "default",
			"asc", "desc", "begin", "commit", "rollback",
		},
		Identifiers: describe(nil, []string{
			"count", "sum", "avg", "min", "max", "coalesce", "nullif", "lower", "upper", "length",
			"substr", "trim", "now", "cast", "integer", "text", "varchar", "boolean", "timestamp",
		}, "Built-in"),
		Rules: []RuleDefinition{
			{`'([^']|'')*'`, "string"},
			{`[0-9]+([.][0-9]*)?`, "number"},
			{`[a-zA-Z_][a-zA-Z0-9_]*`, "identifier"},
			{`[\(\)\*\+\-\/\=\<\>\!\;\,\.]`, "punctuation"},
		},
		CommentStart:      "/*",
		CommentEnd:        "*/",
		SingleLineComment: "--",
		CaseSensitive:     boolPtr(false),
	}
}

// Builtins returns fresh copies of every built-in definition.
func Builtins() []Definition {
	return []Definition{GLSL(), AngelScript(), C(), Lua(), SQL()}
}
