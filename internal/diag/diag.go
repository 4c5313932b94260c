// Package diag carries the warning and notice stream produced by a pipeline
// run. Components emit events into an injected Sink instead of printing, so
// the core stays testable without capturing process output.
package diag

import "fmt"

// Level classifies an event's severity.
type Level string

// Supported event levels. Warnings mark per-row or per-entry degradation;
// notices surface post-run information such as a missing optional capability.
const (
	LevelWarn   Level = "WARN"
	LevelNotice Level = "NOTICE"
)

// Event is a single human-readable diagnostic.
type Event struct {
	// Level is the event severity.
	Level Level
	// Row is the 1-based input file position, or 0 when not row-scoped.
	Row int
	// Entry names the offending entry title, when one applies.
	Entry string
	// Message is the formatted diagnostic text.
	Message string
}

// Sink consumes diagnostic events. Implementations must never fail the
// caller; emitting is fire-and-forget.
type Sink interface {
	Emit(evt Event)
}

// Warnf builds a row-scoped warning event.
func Warnf(row int, entry, format string, args ...any) Event {
	return Event{
		Level:   LevelWarn,
		Row:     row,
		Entry:   entry,
		Message: fmt.Sprintf(format, args...),
	}
}

// Noticef builds an informational notice event.
func Noticef(format string, args ...any) Event {
	return Event{
		Level:   LevelNotice,
		Message: fmt.Sprintf(format, args...),
	}
}
