// Package config loads quill's settings and grammar files.
//
// Settings come from three layers, later layers winning:
//
//  1. built-in defaults (Default)
//  2. a TOML file, usually quill.toml
//  3. QUILL_* environment variables, e.g. QUILL_EDITOR_TAB_SIZE=2
//
// The layers are merged as generic maps and then bound to Config, so any
// setting can be overridden from the environment without extra code.
//
// Grammar files are TOML or YAML documents that decode into
// highlight.Definition. See LoadGrammar.
package config
