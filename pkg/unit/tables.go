package unit

import (
	"fmt"

	"github.com/engunit/engunit-go/pkg/converter"
)

// Offsets and factors relative to the reference units.
const (
	kelvinOffset      = 273.15
	fahrenheitCoeff   = 1.8
	fahrenheitOffset  = 32.0
	secondsPerHour    = 3600.0
	hoursPerDay       = 24.0
	kilogramsPerTonne = 1000.0
)

// Temperature is the registry of the Temperature domain (reference C).
var Temperature = NewRegistry(DomainTemperature,
	Rule{TemperatureC, converter.Identity},
	Rule{TemperatureF, converter.MustLinear(fahrenheitCoeff, fahrenheitOffset, converter.Unbounded())},
	Rule{TemperatureK, converter.MustLinear(1, kelvinOffset, converter.Unbounded())},
)

// ThermoResistor is the registry of the ThermoResistor domain (reference C).
var ThermoResistor = NewRegistry(DomainThermoResistor,
	Rule{ResistorC, converter.Identity},
	Rule{ResistorF, converter.MustLinear(fahrenheitCoeff, fahrenheitOffset, converter.Unbounded())},
	Rule{ResistorK, converter.MustLinear(1, kelvinOffset, converter.Unbounded())},
	Rule{ResistorPt100, converter.NewPlatinum(100, converter.PlatinumIEC)},
	Rule{ResistorPt50, converter.NewPlatinum(50, converter.PlatinumIEC)},
	Rule{ResistorP100, converter.NewPlatinum(100, converter.Platinum391)},
	Rule{ResistorP50, converter.NewPlatinum(50, converter.Platinum391)},
	Rule{ResistorCu100, converter.NewCopper(100, converter.Copper428)},
	Rule{ResistorNi100, converter.NewNickel(100, converter.Nickel617)},
)

// Pressure is the registry of the Pressure domain (reference Pa).
var Pressure = NewRegistry(DomainPressure,
	Rule{PressurePa, converter.Identity},
	Rule{PressureKPa, converter.MustMult(1e-3)},
	Rule{PressureMPa, converter.MustMult(1e-6)},
	Rule{PressureKgfCm2, converter.MustMult(0.0000101971621)},
	Rule{PressureKgfM2, converter.MustMult(0.101971621)},
	Rule{PressureBar, converter.MustMult(1e-5)},
	Rule{PressureMmHg, converter.MustMult(0.0075006158)},
	Rule{PressureMmH2O, converter.MustMult(0.101971621)},
	Rule{PressureMH2O, converter.MustMult(0.000101971621)},
	Rule{PressureAtm, converter.MustMult(0.0000098692327)},
)

// MassFlow is the registry of the MassFlow domain (reference kg_h).
var MassFlow = NewRegistry(DomainMassFlow,
	Rule{MassFlowKgH, converter.Identity},
	Rule{MassFlowTH, converter.MustMult(1 / kilogramsPerTonne)},
	Rule{MassFlowKgD, converter.MustMult(hoursPerDay)},
	Rule{MassFlowKgS, converter.MustMult(1 / secondsPerHour)},
	Rule{MassFlowTS, converter.MustMult(1 / kilogramsPerTonne / secondsPerHour)},
)

// analogUnscaled is the analog registry without a Scale.
var analogUnscaled = Analog(nil)

// Scale maps the analog signal span onto a physical range.
type Scale struct {
	// Low is the physical value at the bottom of the signal span.
	Low float64

	// High is the physical value at the top of the signal span.
	High float64

	// Label is the physical unit label (e.g. "kPa").
	Label string
}

// Validate checks that the scale has a non-empty span.
func (s Scale) Validate() error {
	if s.Low == s.High {
		return fmt.Errorf("%w: [%g, %g]", ErrRangeInvalid, s.Low, s.High)
	}
	return nil
}

// Span returns High - Low.
func (s Scale) Span() float64 {
	return s.High - s.Low
}

// Analog returns the AnalogSensorMeasure registry for scale. The reference is
// the signal fraction in [0,1]. With a nil scale, MEASURE and percent fail
// with ErrMissingRange. The scale must be valid.
func Analog(scale *Scale) *Registry {
	rules := make([]Rule, 0, len(signalSpans)+2)
	for _, u := range []AnalogUnit{AnalogMA4To20, AnalogMA0To20, AnalogMA0To5, AnalogV1To5, AnalogV0To10} {
		low, high, _ := u.Span()
		rules = append(rules, Rule{u, converter.MustLinear(high-low, low, converter.Unbounded())})
	}

	if scale == nil || scale.Validate() != nil {
		missing := converter.Unavailable(ErrMissingRange)
		rules = append(rules,
			Rule{AnalogMeasure, missing},
			Rule{AnalogPercent, missing},
		)
	} else {
		rules = append(rules,
			Rule{AnalogMeasure, converter.MustLinear(scale.Span(), scale.Low, converter.Unbounded())},
			Rule{AnalogPercent, converter.MustMult(100)},
		)
	}
	return NewRegistry(DomainAnalogSensor, rules...)
}

// Lookup returns the registry of domain d. The AnalogSensorMeasure registry
// returned here has no Scale.
func Lookup(d Domain) (*Registry, error) {
	switch d {
	case DomainTemperature:
		return Temperature, nil
	case DomainThermoResistor:
		return ThermoResistor, nil
	case DomainAnalogSensor:
		return analogUnscaled, nil
	case DomainPressure:
		return Pressure, nil
	case DomainMassFlow:
		return MassFlow, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDomain, d)
	}
}

// Units returns the units of domain d in declaration order.
func Units(d Domain) ([]Unit, error) {
	r, err := Lookup(d)
	if err != nil {
		return nil, err
	}
	return r.Units(), nil
}

// Parse returns the unit of domain d with the given enumeration name.
func Parse(d Domain, name string) (Unit, error) {
	r, err := Lookup(d)
	if err != nil {
		return nil, err
	}
	return r.Lookup(name)
}

// Convert converts v between two units of the same domain. Units of different
// domains fail with ErrCrossDomainConversion. Analog MEASURE and percent need a
// scale; use Analog(scale).Convert for them.
func Convert(v float64, from, to Unit) (float64, error) {
	if from == nil || to == nil {
		return 0, &Error{Op: "convert", Err: ErrUnknownUnit}
	}
	if from.Domain() != to.Domain() {
		return 0, newError("convert", from.Domain(), to, ErrCrossDomainConversion)
	}
	r, err := Lookup(from.Domain())
	if err != nil {
		return 0, err
	}
	return r.Convert(v, from, to)
}
