package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/quill/internal/config"
	"github.com/dshills/quill/internal/config/watcher"
	"github.com/dshills/quill/internal/engine/highlight"
	"github.com/dshills/quill/internal/plugin/lua"
)

// loadGrammarDir registers every grammar file in dir. Files that fail are
// skipped; their errors are returned joined.
func (s *Session) loadGrammarDir(dir string) error {
	defs, err := config.LoadGrammarDir(dir)
	errs := []error{err}
	for _, def := range defs {
		if _, err := s.RegisterDefinition(def); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RegisterDefinition compiles a grammar definition, attaches its Lua
// tokenizer if it names one, and registers the result, replacing any
// grammar of the same name.
func (s *Session) RegisterDefinition(def highlight.Definition) (*highlight.Grammar, error) {
	g, err := highlight.Compile(def)
	if err != nil {
		return nil, NewOperationError("compile grammar", def.Name, err)
	}

	key := strings.ToLower(def.Name)
	if def.Script != "" {
		scriptLog := s.logger.WithFields(map[string]any{"grammar": def.Name, "component": "lua"})
		tok, err := lua.LoadTokenizer(def.Script, lua.WithPrint(func(msg string) {
			scriptLog.Info("%s", msg)
		}))
		if err != nil {
			return nil, NewOperationError("load tokenizer", def.Script, err)
		}
		g = g.WithTokenizer(tok.Func())
		s.replaceTokenizer(key, tok)
	} else {
		s.replaceTokenizer(key, nil)
	}

	s.registry.Register(g)
	s.logger.Debug("registered grammar %s", g.Name())
	return g, nil
}

func (s *Session) replaceTokenizer(key string, tok *lua.Tokenizer) {
	if old, ok := s.tokenizers[key]; ok {
		if err := old.Close(); err != nil {
			s.logger.Warn("closing tokenizer %s: %v", old.Name(), err)
		}
		delete(s.tokenizers, key)
	}
	if tok != nil {
		s.tokenizers[key] = tok
	}
}

// TokenizerErr reports why the named grammar's script was disabled, if it
// has one and it failed.
func (s *Session) TokenizerErr(grammar string) error {
	if tok, ok := s.tokenizers[strings.ToLower(grammar)]; ok {
		return tok.Err()
	}
	return nil
}

func (s *Session) startWatcher() error {
	w, err := watcher.New(watcher.WithFilter(config.IsGrammarFile))
	if err != nil {
		return err
	}
	for _, dir := range s.cfg.Grammar.Paths {
		if err := w.Add(dir); err != nil {
			w.Close()
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	s.watcher = w
	s.logger.Info("watching %d grammar directories", len(s.cfg.Grammar.Paths))
	return nil
}

// ApplyReloads applies every pending grammar file change without blocking
// and returns the number of grammars reloaded. A reloaded grammar that is
// active in the editor is swapped in, which forces a full recolor.
func (s *Session) ApplyReloads() (int, error) {
	if s.closed {
		return 0, ErrSessionClosed
	}
	if s.watcher == nil {
		return 0, ErrNoWatcher
	}

	n := 0
	for {
		select {
		case ev, ok := <-s.watcher.Events():
			if !ok {
				return n, nil
			}
			if s.reload(ev) {
				n++
			}
		case err, ok := <-s.watcher.Errors():
			if !ok {
				return n, nil
			}
			if errors.Is(err, watcher.ErrEventDropped) {
				s.logger.Warn("missed grammar reload: %v", err)
				continue
			}
			s.logger.Warn("grammar watcher: %v", err)
		default:
			return n, nil
		}
	}
}

// reload re-registers the grammar in a changed file. Removed files keep
// their grammar registered.
func (s *Session) reload(ev watcher.Event) bool {
	if ev.Op.Has(watcher.OpRemove) || ev.Op.Has(watcher.OpRename) {
		s.logger.Info("grammar file %s removed; keeping its grammar", ev.Path)
		return false
	}

	def, err := config.LoadGrammar(ev.Path)
	if err != nil {
		s.logger.Warn("reload %s: %v", ev.Path, err)
		return false
	}
	g, err := s.RegisterDefinition(def)
	if err != nil {
		s.logger.Warn("reload %s: %v", ev.Path, err)
		return false
	}

	if strings.EqualFold(s.editor.Grammar().Name(), g.Name()) {
		s.editor.SetGrammar(g)
	}
	s.logger.Info("reloaded grammar %s from %s", g.Name(), ev.Path)
	return true
}
