package wire

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/engunit/engunit-go/pkg/measure"
	"github.com/engunit/engunit-go/pkg/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadingRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		reading Reading
	}{
		{
			name:    "temperature",
			reading: Reading{Domain: unit.DomainTemperature, Unit: "K", Value: 283.15},
		},
		{
			name:    "thermoresistor",
			reading: Reading{Domain: unit.DomainThermoResistor, Unit: "Pt100_Ohm", Value: 119.4},
		},
		{
			name: "scaled analog",
			reading: Reading{
				Domain: unit.DomainAnalogSensor,
				Unit:   "mA_4_20",
				Value:  12,
				Scale:  &Scale{Low: 0, High: 100, Label: "kPa"},
			},
		},
		{
			name:    "unscaled analog",
			reading: Reading{Domain: unit.DomainAnalogSensor, Unit: "V_0_10", Value: 2.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeReading(&tt.reading)
			require.NoError(t, err)

			decoded, err := DecodeReading(data)
			require.NoError(t, err)
			assert.Equal(t, tt.reading, *decoded)
		})
	}
}

func TestReadingValidation(t *testing.T) {
	tests := []struct {
		name    string
		reading Reading
		wantErr error
	}{
		{"unknown domain", Reading{Domain: unit.Domain(99), Unit: "C"}, unit.ErrUnknownDomain},
		{"missing unit", Reading{Domain: unit.DomainTemperature}, ErrMissingUnit},
		{"nan", Reading{Domain: unit.DomainPressure, Unit: "Pa", Value: math.NaN()}, ErrNonFiniteValue},
		{"scale on pressure", Reading{Domain: unit.DomainPressure, Unit: "Pa", Scale: &Scale{High: 1}}, ErrUnexpectedScale},
		{"empty scale", Reading{Domain: unit.DomainAnalogSensor, Unit: "MEASURE", Scale: &Scale{Low: 5, High: 5}}, unit.ErrRangeInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EncodeReading(&tt.reading)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEncodeDecodeMeasure(t *testing.T) {
	p, err := measure.NewPressure(50, unit.PressureKPa)
	require.NoError(t, err)

	data, err := EncodeMeasure(p)
	require.NoError(t, err)

	m, err := DecodeMeasure(data)
	require.NoError(t, err)
	assert.Equal(t, unit.DomainPressure, m.Domain())
	assert.Equal(t, unit.PressureKPa, m.Unit())
	assert.Equal(t, "50.0 kPa", m.String())
}

func TestEncodeDecodeScaledAnalog(t *testing.T) {
	a, err := measure.NewScaledAnalogSensorMeasure(12, unit.AnalogMA4To20, 50, 250, "kPa")
	require.NoError(t, err)

	data, err := EncodeMeasure(a)
	require.NoError(t, err)

	m, err := DecodeMeasure(data)
	require.NoError(t, err)

	decoded, ok := m.(measure.AnalogSensorMeasure)
	require.True(t, ok, "got %T", m)

	scale, ok := decoded.Scale()
	require.True(t, ok)
	assert.Equal(t, unit.Scale{Low: 50, High: 250, Label: "kPa"}, scale)

	eu, err := decoded.ConvertTo(unit.AnalogMeasure)
	require.NoError(t, err)
	assert.InDelta(t, 150, eu.Value(), 1e-9)
}

func TestDecodeMeasureUnknownUnit(t *testing.T) {
	data, err := Marshal(Reading{Domain: unit.DomainPressure, Unit: "psi", Value: 1})
	require.NoError(t, err)

	_, err = DecodeMeasure(data)
	assert.ErrorIs(t, err, unit.ErrUnknownUnit)
}

func TestDecodeMeasureUnscaledPercent(t *testing.T) {
	data, err := Marshal(Reading{Domain: unit.DomainAnalogSensor, Unit: "percent", Value: 50})
	require.NoError(t, err)

	_, err = DecodeMeasure(data)
	assert.ErrorIs(t, err, unit.ErrMissingRange)
}

func TestSnapshotRoundTrip(t *testing.T) {
	ts := time.Unix(1767225600, 0).UTC()
	snap := Snapshot{
		Timestamp: ts,
		Source:    "plant-a",
		Readings: []Reading{
			{Domain: unit.DomainTemperature, Unit: "C", Value: 21.5},
			{Domain: unit.DomainMassFlow, Unit: "kg_h", Value: 950},
		},
	}

	data, err := EncodeSnapshot(&snap)
	require.NoError(t, err)

	decoded, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.True(t, decoded.Timestamp.Equal(ts))
	assert.Equal(t, snap.Source, decoded.Source)
	assert.Equal(t, snap.Readings, decoded.Readings)
}

func TestSnapshotRejectsInvalidReading(t *testing.T) {
	snap := Snapshot{Readings: []Reading{{Domain: unit.DomainTemperature}}}
	_, err := EncodeSnapshot(&snap)
	assert.ErrorIs(t, err, ErrMissingUnit)
}

func TestUnknownFieldsIgnored(t *testing.T) {
	// A reading from a newer producer with an extra key
	msg := map[int]any{
		1:  uint8(unit.DomainTemperature),
		2:  "F",
		3:  95.0,
		99: "future field",
	}

	data, err := Marshal(msg)
	require.NoError(t, err)

	decoded, err := DecodeReading(data)
	require.NoError(t, err, "unknown fields must be ignored")
	assert.Equal(t, "F", decoded.Unit)
	assert.Equal(t, 95.0, decoded.Value)
}

func TestCBORCompactness(t *testing.T) {
	data, err := EncodeReading(&Reading{Domain: unit.DomainTemperature, Unit: "C", Value: 20})
	require.NoError(t, err)

	// map(3) + 3 small keys + domain + "C" + float
	if len(data) > 16 {
		t.Errorf("CBOR encoding too large: %d bytes (expected <= 16)", len(data))
	}
	t.Logf("CBOR size: %d bytes", len(data))
}

func TestDecodeReadingGarbage(t *testing.T) {
	_, err := DecodeReading([]byte{0xff})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrMissingUnit))
}
