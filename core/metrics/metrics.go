package metrics

import "time"

// CreationEvent describes one registry instantiation attempt.
type CreationEvent struct {
	Key string
	OK  bool
}

// ExecutionEvent describes one delegated strategy call.
type ExecutionEvent struct {
	Component string
	OK        bool
	Duration  time.Duration
}

// Sink records registry and strategy events for observability purposes.
type Sink interface {
	RecordCreation(ev CreationEvent)
	RecordExecution(ev ExecutionEvent)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) RecordCreation(CreationEvent)   {}
func (NopSink) RecordExecution(ExecutionEvent) {}
