package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/engunit/engunit-go/pkg/catalog"
	"github.com/engunit/engunit-go/pkg/log"
	"github.com/engunit/engunit-go/pkg/unit"
)

func loadPlant(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load(filepath.Join("testdata", "plant.yaml"))
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	return cat
}

// writeTestTrace writes events to a temporary trace file and returns its path.
func writeTestTrace(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.elog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test trace: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

var testBase = time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)

func testEvents() []log.Event {
	return []log.Event{
		{
			Timestamp: testBase,
			SessionID: "abc12345-6789-0123-4567-890abcdef012",
			Op:        log.OpConvert,
			Domain:    unit.DomainTemperature,
			Input:     &log.Quantity{Value: 283.15, Unit: "K", Display: "283.15 K"},
			Target:    "C",
			Output:    &log.Quantity{Value: 10, Unit: "C", Display: "10.0 C"},
		},
		{
			Timestamp: testBase.Add(time.Second),
			SessionID: "abc12345-6789-0123-4567-890abcdef012",
			Op:        log.OpRead,
			Domain:    unit.DomainAnalogSensor,
			Channel:   "PT-101",
			Input:     &log.Quantity{Value: 12, Unit: "mA_4_20"},
			Target:    "MEASURE",
			Output:    &log.Quantity{Value: 125, Unit: "MEASURE", Display: "125.0 kPa"},
		},
		{
			Timestamp: testBase.Add(2 * time.Second),
			SessionID: "abc12345-6789-0123-4567-890abcdef012",
			Op:        log.OpRead,
			Domain:    unit.DomainAnalogSensor,
			Channel:   "PT-101",
			Input:     &log.Quantity{Value: 20, Unit: "mA_4_20"},
			Target:    "MEASURE",
			Output:    &log.Quantity{Value: 250, Unit: "MEASURE", Display: "250.0 kPa"},
		},
		{
			Timestamp: testBase.Add(3 * time.Second),
			SessionID: "ffff0000-6789-0123-4567-890abcdef012",
			Op:        log.OpRead,
			Domain:    unit.DomainThermoResistor,
			Channel:   "TT-201",
			Input:     &log.Quantity{Value: 500, Unit: "Pt100_Ohm"},
			Target:    "C",
			Error:     &log.ErrorData{Kind: log.ErrorKindOutOfRange, Message: "value out of range"},
		},
	}
}
