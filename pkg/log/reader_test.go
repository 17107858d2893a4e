package log

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/engunit/engunit-go/pkg/unit"
)

func createTestTraceFile(t *testing.T, events []Event) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.elog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test trace: %v", err)
	}

	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func readAll(t *testing.T, r *Reader) []Event {
	t.Helper()
	var read []Event
	for {
		event, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		read = append(read, event)
	}
	return read
}

func TestReaderIteratesEvents(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), SessionID: "s-1", Op: OpConvert, Domain: unit.DomainTemperature},
		{Timestamp: time.Now(), SessionID: "s-2", Op: OpAdd, Domain: unit.DomainPressure},
		{Timestamp: time.Now(), SessionID: "s-3", Op: OpRead, Domain: unit.DomainAnalogSensor},
	}

	reader, err := NewReader(createTestTraceFile(t, events))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)
	if len(read) != 3 {
		t.Fatalf("got %d events, want 3", len(read))
	}
	for i, want := range []string{"s-1", "s-2", "s-3"} {
		if read[i].SessionID != want {
			t.Errorf("event %d: got %q, want %q", i, read[i].SessionID, want)
		}
	}
}

func TestReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "nope.elog")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFilteredReader(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	events := []Event{
		{Timestamp: base, SessionID: "a", Op: OpConvert, Domain: unit.DomainTemperature},
		{Timestamp: base.Add(time.Minute), SessionID: "a", Op: OpRead, Domain: unit.DomainAnalogSensor, Channel: "PT-101"},
		{Timestamp: base.Add(2 * time.Minute), SessionID: "b", Op: OpRead, Domain: unit.DomainThermoResistor, Channel: "TT-201",
			Error: &ErrorData{Kind: ErrorKindOutOfRange, Message: "out of range"}},
		{Timestamp: base.Add(3 * time.Minute), SessionID: "b", Op: OpSub, Domain: unit.DomainTemperature},
	}
	path := createTestTraceFile(t, events)

	read := Op(OpRead)
	temp := unit.DomainTemperature
	start := base.Add(time.Minute)
	end := base.Add(3 * time.Minute)

	tests := []struct {
		name   string
		filter Filter
		want   []string // channels or session IDs, in order
		key    func(Event) string
	}{
		{"session", Filter{SessionID: "b"}, []string{"b", "b"}, func(e Event) string { return e.SessionID }},
		{"op", Filter{Op: &read}, []string{"PT-101", "TT-201"}, func(e Event) string { return e.Channel }},
		{"domain", Filter{Domain: &temp}, []string{"CONVERT", "SUB"}, func(e Event) string { return e.Op.String() }},
		{"channel", Filter{Channel: "TT-201"}, []string{"TT-201"}, func(e Event) string { return e.Channel }},
		{"failed", Filter{FailedOnly: true}, []string{"TT-201"}, func(e Event) string { return e.Channel }},
		{"time window", Filter{TimeStart: &start, TimeEnd: &end}, []string{"PT-101", "TT-201"}, func(e Event) string { return e.Channel }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, err := NewFilteredReader(path, tt.filter)
			if err != nil {
				t.Fatalf("NewFilteredReader failed: %v", err)
			}
			defer reader.Close()

			got := readAll(t, reader)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d events, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if k := tt.key(got[i]); k != tt.want[i] {
					t.Errorf("event %d: got %q, want %q", i, k, tt.want[i])
				}
			}
		})
	}
}
