package measure

import (
	"fmt"

	"github.com/engunit/engunit-go/pkg/unit"
)

// AnalogSensorMeasure is an analog sensor reading: a raw current or voltage
// loop signal, optionally tied to a physical range by a Scale.
//
// Without a scale only the signal units (mA_4_20, V_1_5, ...) are usable;
// MEASURE and percent fail with unit.ErrMissingRange.
type AnalogSensorMeasure struct {
	quantity
	scale *unit.Scale
	rules *unit.Registry
}

// NewAnalogSensorMeasure creates an unscaled analog reading of v in unit u.
func NewAnalogSensorMeasure(v float64, u unit.AnalogUnit) (AnalogSensorMeasure, error) {
	return newAnalog(v, u, nil)
}

// NewScaledAnalogSensorMeasure creates an analog reading whose signal span
// maps onto the physical range [low, high] labeled label (e.g. "kPa").
func NewScaledAnalogSensorMeasure(v float64, u unit.AnalogUnit, low, high float64, label string) (AnalogSensorMeasure, error) {
	s := &unit.Scale{Low: low, High: high, Label: label}
	if err := s.Validate(); err != nil {
		return AnalogSensorMeasure{}, unit.NewError("new", unit.DomainAnalogSensor, u, err)
	}
	return newAnalog(v, u, s)
}

func newAnalog(v float64, u unit.AnalogUnit, s *unit.Scale) (AnalogSensorMeasure, error) {
	rules := unit.Analog(s)
	q, err := newQuantity(rules, v, u)
	if err != nil {
		return AnalogSensorMeasure{}, err
	}
	return AnalogSensorMeasure{quantity: q, scale: s, rules: rules}, nil
}

// Scale returns the physical range, if one is configured.
func (a AnalogSensorMeasure) Scale() (unit.Scale, bool) {
	if a.scale == nil {
		return unit.Scale{}, false
	}
	return *a.scale, true
}

// Fraction returns the signal as a fraction of its span.
func (a AnalogSensorMeasure) Fraction() float64 {
	return a.base
}

// ConvertTo returns the reading expressed in unit u. The scale is kept.
func (a AnalogSensorMeasure) ConvertTo(u unit.AnalogUnit) (AnalogSensorMeasure, error) {
	q, err := a.convert(a.registry(), u)
	if err != nil {
		return AnalogSensorMeasure{}, err
	}
	return a.with(q), nil
}

// Add returns a + o in a's unit and scale. Span fractions are added, so
// 50% + 25% is 75% of the span whatever the signal units.
func (a AnalogSensorMeasure) Add(o AnalogSensorMeasure) (AnalogSensorMeasure, error) {
	if err := a.checkScale("add", o); err != nil {
		return AnalogSensorMeasure{}, err
	}
	q, err := a.add(a.registry(), o.quantity)
	if err != nil {
		return AnalogSensorMeasure{}, err
	}
	return a.with(q), nil
}

// Sub returns a - o in a's unit and scale.
func (a AnalogSensorMeasure) Sub(o AnalogSensorMeasure) (AnalogSensorMeasure, error) {
	if err := a.checkScale("sub", o); err != nil {
		return AnalogSensorMeasure{}, err
	}
	q, err := a.sub(a.registry(), o.quantity)
	if err != nil {
		return AnalogSensorMeasure{}, err
	}
	return a.with(q), nil
}

// String renders "<value> <symbol>"; MEASURE uses the scale's label.
func (a AnalogSensorMeasure) String() string {
	if a.unit == unit.AnalogMeasure && a.scale != nil && a.scale.Label != "" {
		return FormatValue(a.value) + " " + a.scale.Label
	}
	return a.quantity.String()
}

// GoString returns the value together with its span fraction and scale.
func (a AnalogSensorMeasure) GoString() string {
	s := a.goString("fraction")
	if a.scale != nil {
		s += fmt.Sprintf(". Scale: [%s, %s] %s",
			FormatValue(a.scale.Low), FormatValue(a.scale.High), a.scale.Label)
	}
	return s
}

// registry returns the rules for the reading's scale. The zero value has no
// registry yet.
func (a AnalogSensorMeasure) registry() *unit.Registry {
	if a.rules == nil {
		return unit.Analog(a.scale)
	}
	return a.rules
}

func (a AnalogSensorMeasure) with(q quantity) AnalogSensorMeasure {
	return AnalogSensorMeasure{quantity: q, scale: a.scale, rules: a.rules}
}

func (a AnalogSensorMeasure) checkScale(op string, o AnalogSensorMeasure) error {
	if a.scale != nil && o.scale != nil && *a.scale != *o.scale {
		return unit.NewError(op, unit.DomainAnalogSensor, o.unit, ErrScaleMismatch)
	}
	return nil
}
