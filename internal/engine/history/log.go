package history

import (
	"errors"
	"time"
)

// Errors returned by history operations.
var (
	ErrInvalidRecord = errors.New("invalid undo record")
)

// DefaultMaxEntries is the log capacity used when none is given.
const DefaultMaxEntries = 1000

// RecordInfo describes a record without exposing its text.
type RecordInfo struct {
	Description string
	Timestamp   time.Time
}

// Log is the ordered list of records plus the undo index.
type Log struct {
	records    []*Record
	index      int
	maxEntries int
}

// NewLog creates a log holding at most maxEntries records. Non-positive
// values select DefaultMaxEntries.
func NewLog(maxEntries int) *Log {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Log{maxEntries: maxEntries}
}

// Add appends a record after discarding anything that could be redone.
// The oldest records are dropped once the log is full.
func (l *Log) Add(r *Record) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if r.Timestamp.IsZero() {
		r.Timestamp = time.Now()
	}

	clear(l.records[l.index:])
	l.records = append(l.records[:l.index], r)
	l.index++

	if len(l.records) > l.maxEntries {
		excess := len(l.records) - l.maxEntries
		clear(l.records[:excess])
		l.records = l.records[excess:]
		l.index -= excess
	}
	return nil
}

// CanUndo returns true if a record can be undone.
func (l *Log) CanUndo() bool {
	return l.index > 0
}

// CanRedo returns true if a record can be redone.
func (l *Log) CanRedo() bool {
	return l.index < len(l.records)
}

// Undo reverts up to steps records and returns how many were reverted.
// It stops at the first failing record, leaving it in place.
func (l *Log) Undo(t Target, steps int) (int, error) {
	done := 0
	for ; steps > 0 && l.CanUndo(); steps-- {
		if err := l.records[l.index-1].Undo(t); err != nil {
			return done, err
		}
		l.index--
		done++
	}
	return done, nil
}

// Redo reapplies up to steps records and returns how many were reapplied.
func (l *Log) Redo(t Target, steps int) (int, error) {
	done := 0
	for ; steps > 0 && l.CanRedo(); steps-- {
		if err := l.records[l.index].Redo(t); err != nil {
			return done, err
		}
		l.index++
		done++
	}
	return done, nil
}

// Clear removes all records.
func (l *Log) Clear() {
	clear(l.records)
	l.records = l.records[:0]
	l.index = 0
}

// Len returns the number of records.
func (l *Log) Len() int {
	return len(l.records)
}

// Index returns the undo index: the number of records that can be undone.
func (l *Log) Index() int {
	return l.index
}

// MaxEntries returns the log capacity.
func (l *Log) MaxEntries() int {
	return l.maxEntries
}

// PeekUndo describes the record the next Undo would revert.
func (l *Log) PeekUndo() (RecordInfo, bool) {
	if !l.CanUndo() {
		return RecordInfo{}, false
	}
	return info(l.records[l.index-1]), true
}

// PeekRedo describes the record the next Redo would reapply.
func (l *Log) PeekRedo() (RecordInfo, bool) {
	if !l.CanRedo() {
		return RecordInfo{}, false
	}
	return info(l.records[l.index]), true
}

func info(r *Record) RecordInfo {
	return RecordInfo{Description: r.Description, Timestamp: r.Timestamp}
}
