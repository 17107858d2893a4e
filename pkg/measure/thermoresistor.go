package measure

import "github.com/engunit/engunit-go/pkg/unit"

// ThermoResistor is a resistance thermometer reading. It is expressed either
// as a temperature (C, F, K) or as the resistance of a sensor type
// (Pt100_Ohm, Cu100_Ohm, ...). Converting between resistance units of
// different sensor types yields the resistance the other sensor would show at
// the same temperature.
type ThermoResistor struct {
	quantity
}

// NewThermoResistor creates a reading of v in unit u. Values outside the
// sensor's range fail with converter.ErrOutOfRange.
func NewThermoResistor(v float64, u unit.ResistorUnit) (ThermoResistor, error) {
	q, err := newQuantity(unit.ThermoResistor, v, u)
	if err != nil {
		return ThermoResistor{}, err
	}
	return ThermoResistor{q}, nil
}

// ConvertTo returns the reading expressed in unit u.
func (r ThermoResistor) ConvertTo(u unit.ResistorUnit) (ThermoResistor, error) {
	q, err := r.convert(unit.ThermoResistor, u)
	if err != nil {
		return ThermoResistor{}, err
	}
	return ThermoResistor{q}, nil
}

// Celsius returns the temperature in degrees Celsius.
func (r ThermoResistor) Celsius() float64 {
	return r.base
}

// Add returns r + o in r's unit.
func (r ThermoResistor) Add(o ThermoResistor) (ThermoResistor, error) {
	q, err := r.add(unit.ThermoResistor, o.quantity)
	if err != nil {
		return ThermoResistor{}, err
	}
	return ThermoResistor{q}, nil
}

// Sub returns r - o in r's unit.
func (r ThermoResistor) Sub(o ThermoResistor) (ThermoResistor, error) {
	q, err := r.sub(unit.ThermoResistor, o.quantity)
	if err != nil {
		return ThermoResistor{}, err
	}
	return ThermoResistor{q}, nil
}

// GoString returns the value together with its reference value.
func (r ThermoResistor) GoString() string {
	return r.goString(unit.ResistorC.String())
}
