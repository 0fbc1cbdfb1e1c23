package config

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/quill/internal/config/loader"
	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/palette"
	"github.com/dshills/quill/internal/logging"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "QUILL_"

// Config is the complete set of quill settings.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	Grammar GrammarConfig `toml:"grammar"`
	Logging LoggingConfig `toml:"logging"`
	Palette PaletteConfig `toml:"palette"`
}

// EditorConfig holds buffer and editing settings.
type EditorConfig struct {
	TabSize   int  `toml:"tabSize"`
	ReadOnly  bool `toml:"readOnly"`
	Overwrite bool `toml:"overwrite"`
	// Colorize enables the colorizer.
	Colorize bool `toml:"colorize"`
	// MaxUndo bounds the undo log. Zero selects the default.
	MaxUndo int `toml:"maxUndo"`
	// ChunkLines is the number of lines colorized per step.
	ChunkLines int `toml:"chunkLines"`
}

// GrammarConfig selects and locates grammars.
type GrammarConfig struct {
	// Default names the grammar used when no extension matches.
	Default string `toml:"default"`
	// Paths lists directories of grammar files loaded at start-up.
	Paths []string `toml:"paths"`
	// Watch reloads grammar files when they change.
	Watch bool `toml:"watch"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// PaletteConfig selects the color palette.
type PaletteConfig struct {
	// Base is "dark" or "light".
	Base string `toml:"base"`
	// Colors overrides individual roles, e.g. keyword = "#569cd6".
	Colors map[string]string `toml:"colors"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			TabSize:    buffer.DefaultTabSize,
			Colorize:   true,
			MaxUndo:    1000,
			ChunkLines: 10,
		},
		Logging: LoggingConfig{Level: "info"},
		Palette: PaletteConfig{Base: "dark"},
	}
}

// Load layers the file at path and QUILL_* environment variables over
// the defaults and validates the result. An empty or missing path skips
// the file layer.
func Load(path string) (*Config, error) {
	return load(loader.NewTOMLLoader(path), loader.NewEnvLoader(EnvPrefix))
}

func load(layers ...loader.Loader) (*Config, error) {
	merged, err := toMap(Default())
	if err != nil {
		return nil, err
	}

	for _, l := range layers {
		m, err := l.Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, m)
	}

	data, err := toml.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("encoding merged config: %w", err)
	}
	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("binding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func toMap(cfg *Config) (map[string]any, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding defaults: %w", err)
	}
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding defaults: %w", err)
	}
	return m, nil
}

// Validate checks every setting and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error

	if c.Editor.TabSize < 1 || c.Editor.TabSize > buffer.MaxTabSize {
		errs = append(errs, &ValidationError{
			Path: "editor.tabSize", Value: c.Editor.TabSize,
			Message: fmt.Sprintf("must be between 1 and %d", buffer.MaxTabSize),
		})
	}
	if c.Editor.MaxUndo < 0 {
		errs = append(errs, &ValidationError{Path: "editor.maxUndo", Value: c.Editor.MaxUndo, Message: "must not be negative"})
	}
	if c.Editor.ChunkLines < 0 {
		errs = append(errs, &ValidationError{Path: "editor.chunkLines", Value: c.Editor.ChunkLines, Message: "must not be negative"})
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, &ValidationError{Path: "logging.level", Value: c.Logging.Level, Message: err.Error()})
	}
	if _, err := c.BuildPalette(); err != nil {
		errs = append(errs, &ValidationError{Path: "palette", Value: c.Palette.Base, Message: err.Error()})
	}

	return errors.Join(errs...)
}

// BuildPalette returns the base palette with the configured overrides.
func (c *Config) BuildPalette() (palette.Palette, error) {
	base, err := palette.ByName(c.Palette.Base)
	if err != nil {
		return palette.Palette{}, err
	}
	return base.WithOverrides(c.Palette.Colors)
}

// LogLevel returns the parsed logging level, or info if it is invalid.
func (c *Config) LogLevel() logging.Level {
	level, _ := logging.ParseLevel(c.Logging.Level)
	return level
}
