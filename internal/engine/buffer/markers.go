package buffer

import "maps"

// Breakpoints returns a copy of the breakpoint map (line to enabled).
func (b *Buffer) Breakpoints() map[int]bool {
	return maps.Clone(b.breakpoints)
}

// SetBreakpoints replaces all breakpoints.
func (b *Buffer) SetBreakpoints(bp map[int]bool) {
	b.breakpoints = make(map[int]bool, len(bp))
	maps.Copy(b.breakpoints, bp)
}

// SetBreakpoint adds or updates the breakpoint on a line.
func (b *Buffer) SetBreakpoint(line int, enabled bool) {
	b.breakpoints[line] = enabled
}

// ClearBreakpoint removes the breakpoint on a line.
func (b *Buffer) ClearBreakpoint(line int) {
	delete(b.breakpoints, line)
}

// ErrorMarkers returns a copy of the error marker map (line to message).
func (b *Buffer) ErrorMarkers() map[int]string {
	return maps.Clone(b.errorMarkers)
}

// SetErrorMarkers replaces all error markers.
func (b *Buffer) SetErrorMarkers(markers map[int]string) {
	b.errorMarkers = make(map[int]string, len(markers))
	maps.Copy(b.errorMarkers, markers)
}

// shiftMarkers moves markers on lines >= from by delta.
func (b *Buffer) shiftMarkers(from, delta int) {
	b.breakpoints = shiftKeys(b.breakpoints, from, delta)
	b.errorMarkers = shiftKeys(b.errorMarkers, from, delta)
}

// dropMarkers removes markers on lines [start, end) and moves later ones up.
func (b *Buffer) dropMarkers(start, end int) {
	for line := start; line < end; line++ {
		delete(b.breakpoints, line)
		delete(b.errorMarkers, line)
	}
	b.shiftMarkers(end, start-end)
}

func shiftKeys[V any](m map[int]V, from, delta int) map[int]V {
	if len(m) == 0 {
		return m
	}
	out := make(map[int]V, len(m))
	for line, v := range m {
		if line >= from {
			line += delta
		}
		out[line] = v
	}
	return out
}
