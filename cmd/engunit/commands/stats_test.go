package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/engunit/engunit-go/pkg/log"
	"github.com/engunit/engunit-go/pkg/unit"
)

func TestCollectStats(t *testing.T) {
	path := writeTestTrace(t, testEvents())

	reader, err := log.NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	stats, err := collectStats(reader)
	if err != nil {
		t.Fatalf("collectStats failed: %v", err)
	}

	if stats.TotalEvents != 4 {
		t.Errorf("TotalEvents: got %d, want 4", stats.TotalEvents)
	}
	if len(stats.Sessions) != 2 {
		t.Errorf("Sessions: got %d, want 2", len(stats.Sessions))
	}
	if stats.EventsByOp[log.OpRead] != 3 {
		t.Errorf("reads: got %d, want 3", stats.EventsByOp[log.OpRead])
	}
	if stats.EventsByDomain[unit.DomainAnalogSensor] != 2 {
		t.Errorf("analog events: got %d, want 2", stats.EventsByDomain[unit.DomainAnalogSensor])
	}
	if stats.Errors != 1 || stats.ErrorsByKind[log.ErrorKindOutOfRange] != 1 {
		t.Errorf("errors: got %d (%v)", stats.Errors, stats.ErrorsByKind)
	}
	if got := stats.TimeRange.End.Sub(stats.TimeRange.Start); got != 3*time.Second {
		t.Errorf("time range: got %v, want 3s", got)
	}

	pt := stats.Channels["PT-101"]
	if pt == nil {
		t.Fatal("missing PT-101 stats")
	}
	if pt.Reads != 2 || pt.Min != 125 || pt.Max != 250 || pt.Unit != "MEASURE" {
		t.Errorf("PT-101: got %+v", *pt)
	}

	tt := stats.Channels["TT-201"]
	if tt == nil || tt.Errors != 1 || tt.Reads != 0 {
		t.Errorf("TT-201: got %+v", tt)
	}
}

func TestRunStats(t *testing.T) {
	path := writeTestTrace(t, testEvents())

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"Total events: 4",
		"Sessions:     2",
		"Errors:       1",
		"READ",
		"OUT_OF_RANGE",
		"PT-101",
		"min=125 max=250 MEASURE",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}
