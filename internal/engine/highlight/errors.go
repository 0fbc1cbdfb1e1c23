package highlight

import (
	"errors"
	"fmt"
)

// Errors returned by grammar operations.
var (
	// ErrNoName indicates a definition without a name.
	ErrNoName = errors.New("grammar has no name")

	// ErrInvalidRule indicates a rule that does not compile.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrUnknownRole indicates a rule color that names no palette role.
	ErrUnknownRole = errors.New("unknown color role")

	// ErrInvalidPreprocChar indicates a preprocessor marker that is not a
	// single ASCII character.
	ErrInvalidPreprocChar = errors.New("preprocessor marker must be one ASCII character")

	// ErrGrammarNotFound indicates a lookup for an unregistered grammar.
	ErrGrammarNotFound = errors.New("grammar not found")
)

// RuleError describes a rule that failed to compile.
type RuleError struct {
	// Grammar is the name of the grammar being compiled.
	Grammar string
	// Index is the rule's position in the rule list.
	Index int
	// Pattern is the offending pattern.
	Pattern string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *RuleError) Error() string {
	return fmt.Sprintf("grammar %s: rule %d (%q): %v", e.Grammar, e.Index, e.Pattern, e.Err)
}

// Unwrap returns ErrInvalidRule and the underlying error.
func (e *RuleError) Unwrap() []error {
	return []error{ErrInvalidRule, e.Err}
}
