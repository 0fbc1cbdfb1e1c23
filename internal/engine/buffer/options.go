package buffer

const (
	// DefaultTabSize is the tab size of a new buffer.
	DefaultTabSize = 4
	// MaxTabSize is the largest accepted tab size.
	MaxTabSize = 32
)

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithTabSize sets the buffer's tab size. Values are clamped to
// [1, MaxTabSize].
func WithTabSize(size int) Option {
	return func(b *Buffer) {
		b.tabSize = clampTabSize(size)
	}
}

// WithReadOnly creates the buffer in read-only mode.
func WithReadOnly(readOnly bool) Option {
	return func(b *Buffer) {
		b.readOnly = readOnly
	}
}

// WithObserver registers the observer notified of touched lines.
func WithObserver(o Observer) Option {
	return func(b *Buffer) {
		b.observer = o
	}
}

func clampTabSize(size int) int {
	if size < 1 {
		return 1
	}
	if size > MaxTabSize {
		return MaxTabSize
	}
	return size
}
