package measure

import "github.com/engunit/engunit-go/pkg/unit"

// Pressure is a pressure (reference Pa).
type Pressure struct {
	quantity
}

// NewPressure creates a pressure of v in unit u.
func NewPressure(v float64, u unit.PressureUnit) (Pressure, error) {
	q, err := newQuantity(unit.Pressure, v, u)
	if err != nil {
		return Pressure{}, err
	}
	return Pressure{q}, nil
}

// ConvertTo returns the pressure expressed in unit u.
func (p Pressure) ConvertTo(u unit.PressureUnit) (Pressure, error) {
	q, err := p.convert(unit.Pressure, u)
	if err != nil {
		return Pressure{}, err
	}
	return Pressure{q}, nil
}

// Add returns p + o in p's unit.
func (p Pressure) Add(o Pressure) (Pressure, error) {
	q, err := p.add(unit.Pressure, o.quantity)
	if err != nil {
		return Pressure{}, err
	}
	return Pressure{q}, nil
}

// Sub returns p - o in p's unit.
func (p Pressure) Sub(o Pressure) (Pressure, error) {
	q, err := p.sub(unit.Pressure, o.quantity)
	if err != nil {
		return Pressure{}, err
	}
	return Pressure{q}, nil
}

// GoString returns the value together with its reference value.
func (p Pressure) GoString() string {
	return p.goString(unit.PressurePa.String())
}
