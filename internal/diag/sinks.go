package diag

import (
	"sync"

	"go.uber.org/zap"
)

// LogSink forwards events to a structured logger.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink wires a zap logger to the Sink interface.
func NewLogSink(logger *zap.Logger) *LogSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSink{logger: logger}
}

// Emit logs the event with structured fields at a level matching its severity.
func (s *LogSink) Emit(evt Event) {
	fields := []zap.Field{}
	if evt.Row > 0 {
		fields = append(fields, zap.Int("row", evt.Row))
	}
	if evt.Entry != "" {
		fields = append(fields, zap.String("entry", evt.Entry))
	}
	switch evt.Level {
	case LevelWarn:
		s.logger.Warn(evt.Message, fields...)
	default:
		s.logger.Info(evt.Message, fields...)
	}
}

// MemorySink records events in memory. It is safe for concurrent use and
// exists mainly for tests.
type MemorySink struct {
	mu     sync.Mutex
	events []Event
}

// NewMemorySink creates an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Emit appends the event.
func (s *MemorySink) Emit(evt Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, evt)
}

// Events returns a copy of everything emitted so far.
func (s *MemorySink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Warnings returns only the warning-level events.
func (s *MemorySink) Warnings() []Event {
	var out []Event
	for _, evt := range s.Events() {
		if evt.Level == LevelWarn {
			out = append(out, evt)
		}
	}
	return out
}
