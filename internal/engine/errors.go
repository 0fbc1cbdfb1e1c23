package engine

import (
	"github.com/dshills/quill/internal/engine/buffer"
)

// Errors returned by editor operations.
var (
	// ErrReadOnly indicates a mutation was attempted on a read-only editor.
	ErrReadOnly = buffer.ErrReadOnly

	// ErrRangeInvalid indicates a range whose start is after its end.
	ErrRangeInvalid = buffer.ErrRangeInvalid
)
