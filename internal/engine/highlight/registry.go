package highlight

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Registry holds the grammars available to a session, by name and by file
// extension. It is safe for concurrent use; the grammar watcher registers
// reloaded grammars from its own goroutine.
type Registry struct {
	mu sync.RWMutex

	// byName maps lower-cased grammar names to grammars
	byName map[string]*Grammar

	// byExtension maps file extensions to grammars
	byExtension map[string]*Grammar
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:      make(map[string]*Grammar),
		byExtension: make(map[string]*Grammar),
	}
}

// DefaultRegistry returns a registry holding every built-in grammar.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, def := range Builtins() {
		r.Register(MustCompile(def))
	}
	return r
}

// Register adds g, replacing any grammar with the same name and taking
// over its extensions.
func (r *Registry) Register(g *Grammar) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(g.Name())
	if old, ok := r.byName[key]; ok {
		for _, ext := range old.extensions {
			if r.byExtension[normalizeExt(ext)] == old {
				delete(r.byExtension, normalizeExt(ext))
			}
		}
	}

	r.byName[key] = g
	for _, ext := range g.extensions {
		r.byExtension[normalizeExt(ext)] = g
	}
}

// Get returns the grammar with the given name. Names match without regard
// to case.
func (r *Registry) Get(name string) (*Grammar, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrGrammarNotFound, name)
	}
	return g, nil
}

// ByExtension returns the grammar for a file extension, with or without
// the leading dot.
func (r *Registry) ByExtension(ext string) (*Grammar, bool) {
	if ext == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.byExtension[normalizeExt(ext)]
	return g, ok
}

// Names returns the registered grammar names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for _, g := range r.byName {
		names = append(names, g.Name())
	}
	slices.Sort(names)
	return names
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
