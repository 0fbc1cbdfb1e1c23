package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/quill/internal/engine/highlight"
)

const tomlGrammar = `
name = "Ini"
extensions = [".ini"]
keywords = ["true", "false"]
singleLineComment = ";"
script = "ini.lua"

[[rules]]
pattern = '\[[^\]]*\]'
color = "keyword"

[[rules]]
pattern = '[a-zA-Z_][a-zA-Z0-9_]*'
color = "identifier"
`

const yamlGrammar = `
name: Props
extensions: [.properties]
singleLineComment: "#"
caseSensitive: false
rules:
  - pattern: '[a-zA-Z_.]+'
    color: identifier
  - pattern: '='
    color: punctuation
`

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadGrammarTOML(t *testing.T) {
	dir := t.TempDir()
	def, err := LoadGrammar(writeFile(t, dir, "ini.toml", tomlGrammar))
	if err != nil {
		t.Fatalf("LoadGrammar() error = %v", err)
	}
	if def.Name != "Ini" || len(def.Rules) != 2 || def.Rules[0].Color != "keyword" {
		t.Errorf("def = %+v", def)
	}
	if def.Script != filepath.Join(dir, "ini.lua") {
		t.Errorf("Script = %q, want it resolved against the file", def.Script)
	}
	if _, err := highlight.Compile(def); err != nil {
		t.Errorf("Compile() error = %v", err)
	}
}

func TestLoadGrammarYAML(t *testing.T) {
	def, err := LoadGrammar(writeFile(t, t.TempDir(), "props.yaml", yamlGrammar))
	if err != nil {
		t.Fatalf("LoadGrammar() error = %v", err)
	}
	g, err := highlight.Compile(def)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if g.CaseSensitive() {
		t.Error("caseSensitive: false should be honoured")
	}
}

func TestLoadGrammarErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		path string
	}{
		{"unknown key", writeFile(t, dir, "bad.toml", "name = \"x\"\ncolour = 1\n")},
		{"extension", writeFile(t, dir, "x.json", "{}")},
		{"missing", filepath.Join(dir, "none.yaml")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadGrammar(tt.path); err == nil {
				t.Error("LoadGrammar() should fail")
			}
		})
	}
}

func TestLoadGrammarDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.toml", tomlGrammar)
	writeFile(t, dir, "b.yml", yamlGrammar)
	writeFile(t, dir, "c.toml", "name = ")
	writeFile(t, dir, "notes.txt", "ignored")

	defs, err := LoadGrammarDir(dir)
	if err == nil {
		t.Error("broken file should be reported")
	}
	if len(defs) != 2 || defs[0].Name != "Ini" || defs[1].Name != "Props" {
		t.Errorf("defs = %+v", defs)
	}
}

func TestIsGrammarFile(t *testing.T) {
	for path, want := range map[string]bool{
		"a.toml": true, "a.YAML": true, "a.yml": true, "a.lua": false, "a": false,
	} {
		if got := IsGrammarFile(path); got != want {
			t.Errorf("IsGrammarFile(%q) = %v, want %v", path, got, want)
		}
	}
}
