package measure

import (
	"errors"

	"github.com/engunit/engunit-go/pkg/unit"
)

// ErrUnsupportedMeasure is returned for Measure implementations this package
// does not know.
var ErrUnsupportedMeasure = errors.New("unsupported measure type")

// Compile-time interface satisfaction checks.
var (
	_ Measure = Temperature{}
	_ Measure = ThermoResistor{}
	_ Measure = AnalogSensorMeasure{}
	_ Measure = Pressure{}
	_ Measure = MassFlow{}
)

func wrap[M Measure](m M, err error) (Measure, error) {
	if err != nil {
		return nil, err
	}
	return m, nil
}

// New creates a quantity of v in unit u. Analog quantities created here have
// no scale.
func New(v float64, u unit.Unit) (Measure, error) {
	switch u := u.(type) {
	case unit.TemperatureUnit:
		return wrap(NewTemperature(v, u))
	case unit.ResistorUnit:
		return wrap(NewThermoResistor(v, u))
	case unit.AnalogUnit:
		return wrap(NewAnalogSensorMeasure(v, u))
	case unit.PressureUnit:
		return wrap(NewPressure(v, u))
	case unit.MassFlowUnit:
		return wrap(NewMassFlow(v, u))
	case nil:
		return nil, &unit.Error{Op: "new", Err: unit.ErrUnknownUnit}
	default:
		return nil, unit.NewError("new", u.Domain(), u, unit.ErrUnknownUnit)
	}
}

// Convert returns m expressed in unit u. A unit of another domain fails with
// unit.ErrCrossDomainConversion.
func Convert(m Measure, u unit.Unit) (Measure, error) {
	if m == nil || u == nil {
		return nil, &unit.Error{Op: "convert", Err: unit.ErrUnknownUnit}
	}
	if u.Domain() != m.Domain() {
		return nil, unit.NewError("convert", m.Domain(), u, unit.ErrCrossDomainConversion)
	}

	unknown := unit.NewError("convert", m.Domain(), u, unit.ErrUnknownUnit)
	switch m := m.(type) {
	case Temperature:
		if u, ok := u.(unit.TemperatureUnit); ok {
			return wrap(m.ConvertTo(u))
		}
		return nil, unknown
	case ThermoResistor:
		if u, ok := u.(unit.ResistorUnit); ok {
			return wrap(m.ConvertTo(u))
		}
		return nil, unknown
	case AnalogSensorMeasure:
		if u, ok := u.(unit.AnalogUnit); ok {
			return wrap(m.ConvertTo(u))
		}
		return nil, unknown
	case Pressure:
		if u, ok := u.(unit.PressureUnit); ok {
			return wrap(m.ConvertTo(u))
		}
		return nil, unknown
	case MassFlow:
		if u, ok := u.(unit.MassFlowUnit); ok {
			return wrap(m.ConvertTo(u))
		}
		return nil, unknown
	default:
		return nil, unit.NewError("convert", m.Domain(), u, ErrUnsupportedMeasure)
	}
}

// Add returns a + b in a's unit. Operands of different domains fail with
// unit.ErrCrossDomainOperation.
func Add(a, b Measure) (Measure, error) {
	return arith("add", a, b)
}

// Sub returns a - b in a's unit. Operands of different domains fail with
// unit.ErrCrossDomainOperation.
func Sub(a, b Measure) (Measure, error) {
	return arith("sub", a, b)
}

func arith(op string, a, b Measure) (Measure, error) {
	if a == nil || b == nil {
		return nil, &unit.Error{Op: op, Err: ErrUnsupportedMeasure}
	}
	crossDomain := unit.NewError(op, a.Domain(), b.Unit(), unit.ErrCrossDomainOperation)
	if a.Domain() != b.Domain() {
		return nil, crossDomain
	}

	switch a := a.(type) {
	case Temperature:
		if b, ok := b.(Temperature); ok {
			return wrap(pick(op, a.Add, a.Sub)(b))
		}
	case ThermoResistor:
		if b, ok := b.(ThermoResistor); ok {
			return wrap(pick(op, a.Add, a.Sub)(b))
		}
	case AnalogSensorMeasure:
		if b, ok := b.(AnalogSensorMeasure); ok {
			return wrap(pick(op, a.Add, a.Sub)(b))
		}
	case Pressure:
		if b, ok := b.(Pressure); ok {
			return wrap(pick(op, a.Add, a.Sub)(b))
		}
	case MassFlow:
		if b, ok := b.(MassFlow); ok {
			return wrap(pick(op, a.Add, a.Sub)(b))
		}
	default:
		return nil, unit.NewError(op, a.Domain(), a.Unit(), ErrUnsupportedMeasure)
	}
	return nil, crossDomain
}

func pick[M any](op string, add, sub func(M) (M, error)) func(M) (M, error) {
	if op == "sub" {
		return sub
	}
	return add
}
