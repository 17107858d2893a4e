package commands

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/engunit/engunit-go/pkg/catalog"
	"github.com/engunit/engunit-go/pkg/wire"
)

func TestRunChannels(t *testing.T) {
	var buf bytes.Buffer
	if err := RunChannels(loadPlant(t), &buf); err != nil {
		t.Fatalf("RunChannels failed: %v", err)
	}
	output := buf.String()

	if !strings.HasPrefix(output, "Catalog: boiler-house\n") {
		t.Errorf("unexpected header: %q", output)
	}
	for _, want := range []string{
		"PT-101", "mA_4_20 -> MEASURE [0.0, 250.0] kPa", "Feed water pressure",
		"TT-202", "Cu100_Ohm -> F",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestRunChannelsNoCatalog(t *testing.T) {
	if err := RunChannels(nil, &bytes.Buffer{}); err == nil {
		t.Error("expected error without catalog")
	}
}

func TestRunRead(t *testing.T) {
	conv := catalog.NewConverter(loadPlant(t), nil)

	var buf bytes.Buffer
	if err := RunRead(conv, "PT-101", 12, &buf); err != nil {
		t.Fatalf("RunRead failed: %v", err)
	}
	if got := buf.String(); got != "PT-101: 125.0 kPa\n" {
		t.Errorf("got %q", got)
	}

	err := RunRead(conv, "XX-1", 1, &bytes.Buffer{})
	if !errors.Is(err, catalog.ErrUnknownChannel) {
		t.Errorf("expected ErrUnknownChannel, got %v", err)
	}
}

func TestParseAssignments(t *testing.T) {
	raw, err := ParseAssignments([]string{"PT-101=12", "TT-201=100.5"})
	if err != nil {
		t.Fatalf("ParseAssignments failed: %v", err)
	}
	if raw["PT-101"] != 12 || raw["TT-201"] != 100.5 {
		t.Errorf("got %v", raw)
	}

	for _, bad := range []string{"PT-101", "=12", "PT-101=abc"} {
		if _, err := ParseAssignments([]string{bad}); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestRunSnapshotText(t *testing.T) {
	conv := catalog.NewConverter(loadPlant(t), nil)

	var buf bytes.Buffer
	err := RunSnapshot(conv, map[string]float64{"LT-102": 2.5, "PT-101": 12}, "text", &buf)
	if err != nil {
		t.Fatalf("RunSnapshot failed: %v", err)
	}

	want := "AnalogSensorMeasure\t125.0 kPa\nAnalogSensorMeasure\t25.0 %\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestRunSnapshotCBOR(t *testing.T) {
	conv := catalog.NewConverter(loadPlant(t), nil)

	var buf bytes.Buffer
	if err := RunSnapshot(conv, map[string]float64{"PT-101": 12}, "cbor", &buf); err != nil {
		t.Fatalf("RunSnapshot failed: %v", err)
	}

	snap, err := wire.DecodeSnapshot(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeSnapshot failed: %v", err)
	}
	if snap.Source != "boiler-house" {
		t.Errorf("Source: got %q", snap.Source)
	}
	if len(snap.Readings) != 1 || snap.Readings[0].Value != 125 {
		t.Errorf("Readings: got %+v", snap.Readings)
	}
}

func TestRunSnapshotHex(t *testing.T) {
	conv := catalog.NewConverter(loadPlant(t), nil)

	var buf bytes.Buffer
	if err := RunSnapshot(conv, map[string]float64{"TT-201": 100}, "hex", &buf); err != nil {
		t.Fatalf("RunSnapshot failed: %v", err)
	}

	data, err := hex.DecodeString(strings.TrimSpace(buf.String()))
	if err != nil {
		t.Fatalf("output is not hex: %v", err)
	}
	if _, err := wire.DecodeSnapshot(data); err != nil {
		t.Errorf("DecodeSnapshot failed: %v", err)
	}
}

func TestRunSnapshotUnknownFormat(t *testing.T) {
	conv := catalog.NewConverter(loadPlant(t), nil)
	if err := RunSnapshot(conv, nil, "xml", &bytes.Buffer{}); err == nil {
		t.Error("expected error for unknown format")
	}
}
