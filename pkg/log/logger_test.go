package log

import (
	"sync"
	"testing"
)

// recordingLogger collects events for assertions.
type recordingLogger struct {
	mu     sync.Mutex
	events []Event
}

func (r *recordingLogger) Log(event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingLogger) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func TestNoopLoggerDiscards(t *testing.T) {
	var l Logger = NoopLogger{}
	// Must not panic
	l.Log(Event{SessionID: "s-1", Op: OpConvert})
}
