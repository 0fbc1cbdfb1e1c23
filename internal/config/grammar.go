package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dshills/quill/internal/config/loader"
	"github.com/dshills/quill/internal/engine/highlight"
)

// GrammarExtensions lists the file extensions LoadGrammar understands.
var GrammarExtensions = []string{".toml", ".yaml", ".yml"}

// IsGrammarFile reports whether path has a grammar file extension.
func IsGrammarFile(path string) bool {
	return slices.Contains(GrammarExtensions, strings.ToLower(filepath.Ext(path)))
}

// LoadGrammar decodes a TOML or YAML grammar file. A relative Script path
// is resolved against the file's directory.
func LoadGrammar(path string) (highlight.Definition, error) {
	var dec loader.Decoder
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		dec = loader.NewTOMLLoader(path)
	case ".yaml", ".yml":
		dec = loader.NewYAMLLoader(path)
	default:
		return highlight.Definition{}, fmt.Errorf("grammar file %s: unsupported extension", path)
	}

	var def highlight.Definition
	if err := dec.DecodeFile(path, &def); err != nil {
		return highlight.Definition{}, err
	}
	if def.Script != "" && !filepath.IsAbs(def.Script) {
		def.Script = filepath.Join(filepath.Dir(path), def.Script)
	}
	return def, nil
}

// LoadGrammarDir loads every grammar file in dir, in name order. Files
// that fail are skipped and their errors returned joined.
func LoadGrammarDir(dir string) ([]highlight.Definition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading grammar directory: %w", err)
	}

	var defs []highlight.Definition
	var errs []error
	for _, e := range entries {
		if e.IsDir() || !IsGrammarFile(e.Name()) {
			continue
		}
		def, err := LoadGrammar(filepath.Join(dir, e.Name()))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		defs = append(defs, def)
	}
	return defs, errors.Join(errs...)
}
