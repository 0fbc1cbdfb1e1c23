package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/quill/internal/config"
	"github.com/dshills/quill/internal/config/watcher"
	"github.com/dshills/quill/internal/engine"
	"github.com/dshills/quill/internal/engine/highlight"
	"github.com/dshills/quill/internal/logging"
	"github.com/dshills/quill/internal/plugin/lua"
)

// Session is the single owner of one editor and everything configured
// around it: the grammar registry, scripted tokenizers, the palette and
// the optional grammar watcher. A Session is not safe for concurrent use;
// the watcher delivers events on a channel that ApplyReloads drains on the
// owner's goroutine.
type Session struct {
	id       uuid.UUID
	cfg      *config.Config
	logger   *logging.Logger
	registry *highlight.Registry
	editor   *engine.Editor
	watcher  *watcher.Watcher

	// tokenizers holds the scripts attached to registered grammars, keyed
	// by lower-cased grammar name.
	tokenizers map[string]*lua.Tokenizer

	path   string
	closed bool
}

// Options configures a session. Non-zero fields override the loaded
// configuration.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// LogLevel sets the logging verbosity.
	LogLevel string

	// LogOutput receives log lines. Nil selects stderr.
	LogOutput io.Writer

	// Grammar names the grammar used when a file extension matches none.
	Grammar string

	// ReadOnly opens the editor in read-only mode.
	ReadOnly bool
}

// New loads the configuration named by opts and creates a session.
func New(opts Options) (*Session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}
	return NewWithConfig(cfg, opts)
}

// NewWithConfig creates a session from an already loaded configuration.
func NewWithConfig(cfg *config.Config, opts Options) (*Session, error) {
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if opts.Grammar != "" {
		cfg.Grammar.Default = opts.Grammar
	}
	if opts.ReadOnly {
		cfg.Editor.ReadOnly = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}

	id := uuid.New()
	logger := logging.New(logging.Config{
		Level:  cfg.LogLevel(),
		Output: opts.LogOutput,
		Prefix: "quill",
	}).WithField("session", id.String())

	pal, err := cfg.BuildPalette()
	if err != nil {
		return nil, &InitError{Component: "palette", Err: err}
	}

	s := &Session{
		id:         id,
		cfg:        cfg,
		logger:     logger,
		registry:   highlight.DefaultRegistry(),
		tokenizers: make(map[string]*lua.Tokenizer),
	}

	// Grammar load errors are non-fatal: the built-in grammars remain.
	for _, dir := range cfg.Grammar.Paths {
		if err := s.loadGrammarDir(dir); err != nil {
			logger.Warn("grammar directory %s: %v", dir, err)
		}
	}

	s.editor = engine.New(
		engine.WithTabSize(cfg.Editor.TabSize),
		engine.WithReadOnly(cfg.Editor.ReadOnly),
		engine.WithOverwrite(cfg.Editor.Overwrite),
		engine.WithColorizerEnabled(cfg.Editor.Colorize),
		engine.WithMaxUndo(cfg.Editor.MaxUndo),
		engine.WithChunkLines(cfg.Editor.ChunkLines),
		engine.WithPalette(pal),
		engine.WithGrammar(s.defaultGrammar()),
		engine.WithLogger(logger),
	)

	if cfg.Grammar.Watch && len(cfg.Grammar.Paths) > 0 {
		if err := s.startWatcher(); err != nil {
			s.Close()
			return nil, &InitError{Component: "grammar watcher", Err: err}
		}
	}

	logger.Info("session started with grammar %s", s.editor.Grammar().Name())
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id.String()
}

// Config returns the configuration the session was built from.
func (s *Session) Config() *config.Config {
	return s.cfg
}

// Logger returns the session logger.
func (s *Session) Logger() *logging.Logger {
	return s.logger
}

// Registry returns the grammar registry.
func (s *Session) Registry() *highlight.Registry {
	return s.registry
}

// Editor returns the session's editor.
func (s *Session) Editor() *engine.Editor {
	return s.editor
}

// Path returns the file last opened, or "".
func (s *Session) Path() string {
	return s.path
}

// OpenFile loads a file into the editor and selects a grammar by its
// extension.
func (s *Session) OpenFile(path string) error {
	if s.closed {
		return ErrSessionClosed
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return NewOperationError("open", path, err)
	}
	s.SetContent(path, string(data))
	return nil
}

// SetContent replaces the editor text. name selects the grammar by
// extension; an unknown or empty extension keeps the default grammar.
func (s *Session) SetContent(name, text string) {
	s.path = name
	s.editor.SetText(text)
	s.editor.SetGrammar(s.grammarFor(name))
	s.logger.Debug("loaded %d lines as %s", s.editor.LineCount(), s.editor.Grammar().Name())
}

// SetGrammar switches the editor to a registered grammar.
func (s *Session) SetGrammar(name string) error {
	g, err := s.registry.Get(name)
	if err != nil {
		return NewOperationError("set grammar", name, err)
	}
	s.editor.SetGrammar(g)
	return nil
}

// Close stops the watcher and releases every tokenizer script.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if s.watcher != nil {
		if err := s.watcher.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	for name, tok := range s.tokenizers {
		if err := tok.Close(); err != nil {
			errs = append(errs, fmt.Errorf("tokenizer %s: %w", name, err))
		}
	}
	clear(s.tokenizers)

	s.logger.Info("session closed")
	return errors.Join(errs...)
}

// grammarFor picks the grammar for a file name.
func (s *Session) grammarFor(name string) *highlight.Grammar {
	if ext := filepath.Ext(name); ext != "" {
		if g, ok := s.registry.ByExtension(ext); ok {
			return g
		}
	}
	return s.defaultGrammar()
}

// defaultGrammar returns the configured default, or plain text.
func (s *Session) defaultGrammar() *highlight.Grammar {
	name := strings.TrimSpace(s.cfg.Grammar.Default)
	if name == "" {
		return highlight.Plain()
	}
	g, err := s.registry.Get(name)
	if err != nil {
		s.logger.Warn("default grammar: %v", err)
		return highlight.Plain()
	}
	return g
}
