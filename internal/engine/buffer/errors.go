package buffer

import "errors"

// Errors returned by buffer operations.
var (
	// ErrReadOnly indicates a mutation was attempted on a read-only buffer.
	ErrReadOnly = errors.New("buffer is read-only")

	// ErrLastLine indicates a removal would leave the buffer without lines.
	ErrLastLine = errors.New("cannot remove the last line")

	// ErrRangeInvalid indicates a range whose start is after its end.
	ErrRangeInvalid = errors.New("invalid range")

	// ErrLineOutOfRange indicates a line index outside the buffer.
	ErrLineOutOfRange = errors.New("line out of range")
)
