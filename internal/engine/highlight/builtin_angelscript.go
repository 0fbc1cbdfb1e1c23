package highlight

// AngelScript returns the AngelScript definition.
func AngelScript() Definition {
	return Definition{
		Name:       "AngelScript",
		Extensions: []string{".as"},
		Keywords: []string{
			"and", "abstract", "auto", "bool", "break", "case", "cast", "class", "const", "continue",
			"default", "do", "double", "else", "enum", "false", "final", "float", "for", "from",
			"funcdef", "function", "get", "if", "import", "in", "inout", "int", "interface", "int8",
			"int16", "int32", "int64", "is", "mixin", "namespace", "not", "null", "or", "out",
			"override", "private", "protected", "return", "set", "shared", "super", "switch", "this",
			"true", "typedef", "uint", "uint8", "uint16", "uint32", "uint64", "void", "while", "xor",
		},
		Identifiers: describe(nil, []string{
			"cos", "sin", "tab", "acos", "asin", "atan", "atan2", "cosh", "sinh", "tanh", "log",
			"log10", "pow", "sqrt", "abs", "ceil", "floor", "fraction", "closeTo", "fpFromIEEE",
			"fpToIEEE", "complex", "opEquals", "opAddAssign", "opSubAssign", "opMulAssign",
			"opDivAssign", "opAdd", "opSub", "opMul", "opDiv",
		}, "Built-in function"),
		Rules: []RuleDefinition{
			{`L?"(\\.|[^"])*"`, "string"},
			{`'\\?[^']'`, "string"},
			{`[+-]?([0-9]+([.][0-9]*)?|[.][0-9]+)([eE][+-]?[0-9]+)?[fF]?`, "number"},
			{`[+-]?[0-9]+[Uu]?[lL]?[lL]?`, "number"},
			{`0[0-7]+[Uu]?[lL]?[lL]?`, "number"},
			{`0[xX][0-9a-fA-F]+[uU]?[lL]?[lL]?`, "number"},
			{`[a-zA-Z_][a-zA-Z0-9_]*`, "identifier"},
			{`[\[\]\{\}\!\%\^\&\*\(\)\-\+\=\~\|\<\>\?\/\;\,\.]`, "punctuation"},
		},
		CommentStart:      "/*",
		CommentEnd:        "*/",
		SingleLineComment: "//",
		PreprocChar:       "#",
	}
}
