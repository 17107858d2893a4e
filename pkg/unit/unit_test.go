package unit

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainString(t *testing.T) {
	tests := []struct {
		d    Domain
		want string
	}{
		{DomainTemperature, "Temperature"},
		{DomainThermoResistor, "ThermoResistor"},
		{DomainAnalogSensor, "AnalogSensorMeasure"},
		{DomainPressure, "Pressure"},
		{DomainMassFlow, "MassFlow"},
		{Domain(0xFF), "Domain(255)"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("Domain(%d).String() = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestParseDomain(t *testing.T) {
	for _, d := range Domains {
		got, err := ParseDomain(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}

	got, err := ParseDomain(" analog ")
	require.NoError(t, err)
	assert.Equal(t, DomainAnalogSensor, got)

	_, err = ParseDomain("voltage")
	assert.ErrorIs(t, err, ErrUnknownDomain)
}

func TestTemperatureConversions(t *testing.T) {
	tests := []struct {
		v        float64
		from, to Unit
		want     float64
	}{
		{10, TemperatureC, TemperatureK, 283.15},
		{95, TemperatureF, TemperatureC, 35},
		{123.5, TemperatureC, TemperatureF, 254.3},
		{0, TemperatureK, TemperatureC, -273.15},
		{-40, TemperatureF, TemperatureC, -40},
	}
	for _, tt := range tests {
		got, err := Convert(tt.v, tt.from, tt.to)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-9, "%g %s -> %s", tt.v, tt.from, tt.to)
	}
}

func TestConvertIdentityIsExact(t *testing.T) {
	values := []float64{0, 1, -17.3, 0.1 + 0.2, 1e300, math.SmallestNonzeroFloat64}
	for _, d := range Domains {
		r, err := Lookup(d)
		require.NoError(t, err)
		for _, u := range r.Units() {
			if d == DomainAnalogSensor && !u.(AnalogUnit).IsSignal() {
				continue
			}
			for _, v := range values {
				got, err := r.Convert(v, u, u)
				require.NoError(t, err)
				if got != v {
					t.Errorf("%s: Convert(%g, %s, %s) = %g", d, v, u, u, got)
				}
			}
		}
	}
}

func TestRoundTripLinearDomains(t *testing.T) {
	scale := &Scale{Low: -50, High: 150, Label: "C"}
	registries := []*Registry{Temperature, Pressure, MassFlow, Analog(scale)}

	for _, r := range registries {
		for _, u1 := range r.Units() {
			for _, u2 := range r.Units() {
				for _, v := range []float64{-12.5, 0, 3, 1234.5678} {
					there, err := r.Convert(v, u1, u2)
					require.NoError(t, err)
					back, err := r.Convert(there, u2, u1)
					require.NoError(t, err)
					tol := 1e-9 * math.Max(1, math.Abs(v))
					if math.Abs(back-v) > tol {
						t.Errorf("%s: %g %s -> %g %s -> %g", r.Domain(), v, u1, there, u2, back)
					}
				}
			}
		}
	}
}

func TestRoundTripThermoResistor(t *testing.T) {
	units := ThermoResistor.Units()
	for _, c := range []float64{-55, 0, 21.7, 99.9, 150} {
		for _, u1 := range units {
			v, err := ThermoResistor.Convert(c, ResistorC, u1)
			require.NoError(t, err)
			for _, u2 := range units {
				there, err := ThermoResistor.Convert(v, u1, u2)
				require.NoError(t, err, "%s -> %s", u1, u2)
				back, err := ThermoResistor.Convert(there, u2, u1)
				require.NoError(t, err, "%s -> %s", u2, u1)
				assert.InDelta(t, v, back, 1e-3, "%g %s -> %s -> %s", v, u1, u2, u1)
			}
		}
	}
}

func TestThermoResistorPt100(t *testing.T) {
	c, err := ThermoResistor.Convert(119.4, ResistorPt100, ResistorC)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, c, 0.015)

	ohm, err := ThermoResistor.Convert(0, ResistorC, ResistorPt100)
	require.NoError(t, err)
	assert.Equal(t, 100.0, ohm)

	k, err := ThermoResistor.Convert(100, ResistorPt100, ResistorK)
	require.NoError(t, err)
	assert.InDelta(t, 273.15, k, 1e-9)
}

func TestThermoResistorOutOfRange(t *testing.T) {
	_, err := ThermoResistor.Convert(900, ResistorC, ResistorPt100)
	require.Error(t, err)

	var ue *Error
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, DomainThermoResistor, ue.Domain)
	assert.Equal(t, "Pt100_Ohm", ue.Unit)

	_, err = ThermoResistor.Convert(10, ResistorCu100, ResistorC)
	assert.Error(t, err)
}

func TestAnalogScaling(t *testing.T) {
	r := Analog(&Scale{Low: 0, High: 100, Label: "kPa"})

	v, err := r.Convert(12, AnalogMA4To20, AnalogMeasure)
	require.NoError(t, err)
	assert.Equal(t, 50.0, v)

	v, err = r.Convert(12, AnalogMA4To20, AnalogPercent)
	require.NoError(t, err)
	assert.Equal(t, 50.0, v)

	v, err = r.Convert(75, AnalogPercent, AnalogV1To5)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	v, err = r.Convert(10, AnalogMA0To20, AnalogMA4To20)
	require.NoError(t, err)
	assert.Equal(t, 12.0, v)
}

func TestAnalogMissingRange(t *testing.T) {
	_, err := Convert(12, AnalogMA4To20, AnalogMeasure)
	assert.ErrorIs(t, err, ErrMissingRange)

	_, err = Convert(12, AnalogMA4To20, AnalogPercent)
	assert.ErrorIs(t, err, ErrMissingRange)

	_, err = Analog(nil).ToBase(50, AnalogPercent)
	assert.ErrorIs(t, err, ErrMissingRange)

	v, err := Convert(12, AnalogMA4To20, AnalogV1To5)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

func TestScaleValidate(t *testing.T) {
	assert.NoError(t, Scale{Low: 0, High: 1}.Validate())
	assert.NoError(t, Scale{Low: 100, High: 0}.Validate())
	assert.ErrorIs(t, Scale{Low: 5, High: 5}.Validate(), ErrRangeInvalid)
}

func TestCrossDomainConversion(t *testing.T) {
	_, err := Convert(10, TemperatureC, ResistorK)
	assert.ErrorIs(t, err, ErrCrossDomainConversion)

	_, err = Temperature.Convert(10, TemperatureC, PressurePa)
	assert.ErrorIs(t, err, ErrCrossDomainConversion)

	_, err = Pressure.Converter(MassFlowKgH)
	assert.ErrorIs(t, err, ErrCrossDomainConversion)
}

func TestUnknownUnit(t *testing.T) {
	_, err := Temperature.Convert(1, TemperatureC, TemperatureUnit(0x7F))
	assert.ErrorIs(t, err, ErrUnknownUnit)

	_, err = Convert(1, nil, TemperatureC)
	assert.ErrorIs(t, err, ErrUnknownUnit)

	_, err = Parse(DomainPressure, "psi")
	assert.ErrorIs(t, err, ErrUnknownUnit)
	assert.EqualError(t, err, "lookup Pressure psi: unknown unit")
}

func TestParse(t *testing.T) {
	for _, d := range Domains {
		units, err := Units(d)
		require.NoError(t, err)
		require.NotEmpty(t, units)
		for _, u := range units {
			got, err := Parse(d, u.String())
			require.NoError(t, err)
			assert.Equal(t, u, got)
		}
	}

	_, err := Units(Domain(0))
	assert.ErrorIs(t, err, ErrUnknownDomain)
}

func TestRegistryBase(t *testing.T) {
	assert.Equal(t, TemperatureC, Temperature.Base())
	assert.Equal(t, ResistorC, ThermoResistor.Base())
	assert.Equal(t, PressurePa, Pressure.Base())
	assert.Equal(t, MassFlowKgH, MassFlow.Base())
	assert.Nil(t, Analog(nil).Base())
}

func TestNewRegistryIgnoresForeignAndDuplicateRules(t *testing.T) {
	r := NewRegistry(DomainTemperature,
		Rule{TemperatureC, nil},
		Rule{PressurePa, nil},
		Rule{TemperatureC, nil},
		Rule{nil, nil},
	)
	assert.Len(t, r.Units(), 1)
	assert.True(t, r.Has(TemperatureC))
	assert.False(t, r.Has(PressurePa))
}

func TestPressureAndMassFlow(t *testing.T) {
	atm, err := Convert(101325, PressurePa, PressureAtm)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, atm, 1e-6)

	kpa, err := Convert(2.5, PressureBar, PressureKPa)
	require.NoError(t, err)
	assert.InDelta(t, 250.0, kpa, 1e-9)

	kgd, err := Convert(50, MassFlowKgH, MassFlowKgD)
	require.NoError(t, err)
	assert.InDelta(t, 1200.0, kgd, 1e-9)

	ts, err := Convert(50, MassFlowKgH, MassFlowTS)
	require.NoError(t, err)
	assert.InDelta(t, 50.0/1000/3600, ts, 1e-15)
}

func TestSymbols(t *testing.T) {
	tests := []struct {
		u    Unit
		want string
	}{
		{TemperatureK, "K"},
		{ResistorPt100, "Ohm"},
		{ResistorF, "F"},
		{AnalogMA4To20, "mA"},
		{AnalogV0To10, "V"},
		{AnalogPercent, "%"},
		{AnalogMeasure, "EU"},
		{PressureKgfCm2, "kgf/cm2"},
		{MassFlowKgS, "kg/s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.u.Symbol(), tt.u.String())
	}
}
