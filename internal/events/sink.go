package events

import (
	"sync"
)

// Fields carries the structured payload of an event.
type Fields map[string]any

// Sink receives diagnostic events from the engine stages.
// Implementations must be safe for concurrent use, dates are computed in parallel.
type Sink interface {
	Emit(event string, fields Fields)
}

var _ Sink = Nop{}

// Nop drops every event.
type Nop struct{}

func (Nop) Emit(string, Fields) {}

// OrNop returns the sink, or a Nop when it is nil.
func OrNop(s Sink) Sink {
	if s == nil {
		return Nop{}
	}
	return s
}

var _ Sink = Multi{}

// Multi fans an event out to all of its sinks, in order.
type Multi []Sink

func (m Multi) Emit(event string, fields Fields) {
	for _, s := range m {
		s.Emit(event, fields)
	}
}

// Event is a recorded Emit call.
type Event struct {
	Name   string
	Fields Fields
}

var _ Sink = (*Recorder)(nil)

// Recorder keeps every event it receives, used in tests.
type Recorder struct {
	mutex  sync.Mutex
	events []Event
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Emit(event string, fields Fields) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.events = append(r.events, Event{Name: event, Fields: fields})
}

func (r *Recorder) Events() []Event {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Named returns the recorded events with the given name.
func (r *Recorder) Named(name string) []Event {
	var out []Event
	for _, e := range r.Events() {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

type withFields struct {
	sink Sink
	base Fields
}

// With returns a sink that adds base to the fields of every event.
// Fields set by the emitter win over base.
func With(s Sink, base Fields) Sink {
	return withFields{sink: OrNop(s), base: base}
}

func (w withFields) Emit(event string, fields Fields) {
	merged := make(Fields, len(w.base)+len(fields))
	for k, v := range w.base {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	w.sink.Emit(event, merged)
}
