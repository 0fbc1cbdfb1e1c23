package highlight

// C returns the C definition.
func C() Definition {
	return Definition{
		Name:       "C",
		Extensions: []string{".c", ".h"},
		Keywords: []string{
			"auto", "break", "case", "char", "const", "continue", "default", "do", "double", "else",
			"enum", "extern", "float", "for", "goto", "if", "inline", "int", "long", "register",
			"restrict", "return", "short", "signed", "sizeof", "static", "struct", "switch",
			"typedef", "union", "unsigned", "void", "volatile", "while", "_Alignas", "_Alignof",
			"_Atomic", "_Bool", "_Complex", "_Generic", "_Imaginary", "_Noreturn",
			"_Static_assert", "_Thread_local",
		},
		Identifiers: describe(nil, []string{
			"abort", "abs", "atexit", "atof", "atoi", "atol", "calloc", "exit", "fclose", "fgets",
			"fopen", "fprintf", "fputs", "fread", "free", "fwrite", "getchar", "malloc", "memcpy",
			"memmove", "memset", "printf", "putchar", "puts", "qsort", "realloc", "snprintf",
			"sprintf", "strcat", "strchr", "strcmp", "strcpy", "strlen", "strncmp", "strncpy",
			"strstr", "NULL", "size_t", "FILE", "EOF",
		}, "Standard library"),
		PreprocIdentifiers: describe(nil, []string{
			"defined", "__FILE__", "__LINE__", "__DATE__", "__TIME__", "__STDC__",
			"__STDC_VERSION__", "__func__",
		}, "Predefined macro"),
		Rules: []RuleDefinition{
			{`[ \t]*#[ \t]*[a-zA-Z_]+`, "preprocessor"},
			{`L?"(\\.|[^"])*"`, "string"},
			{`'\\?[^']'`, "char-literal"},
			{`0[xX][0-9a-fA-F]+[uU]?[lL]?[lL]?`, "number"},
			{`[+-]?([0-9]+([.][0-9]*)?|[.][0-9]+)([eE][+-]?[0-9]+)?[fF]?`, "number"},
			{`[a-zA-Z_][a-zA-Z0-9_]*`, "identifier"},
			{`[\[\]\{\}\!\%\^\&\*\(\)\-\+\=\~\|\<\>\?\/\;\,\.\:]`, "punctuation"},
		},
		CommentStart:      "/*",
		CommentEnd:        "*/",
		SingleLineComment: "//",
		PreprocChar:       "#",
	}
}
