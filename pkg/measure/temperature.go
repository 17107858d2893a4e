package measure

import "github.com/engunit/engunit-go/pkg/unit"

// Temperature is a temperature in C, F or K.
type Temperature struct {
	quantity
}

// NewTemperature creates a temperature of v in unit u.
func NewTemperature(v float64, u unit.TemperatureUnit) (Temperature, error) {
	q, err := newQuantity(unit.Temperature, v, u)
	if err != nil {
		return Temperature{}, err
	}
	return Temperature{q}, nil
}

// ConvertTo returns the temperature expressed in unit u.
func (t Temperature) ConvertTo(u unit.TemperatureUnit) (Temperature, error) {
	q, err := t.convert(unit.Temperature, u)
	if err != nil {
		return Temperature{}, err
	}
	return Temperature{q}, nil
}

// Add returns t + o in t's unit.
func (t Temperature) Add(o Temperature) (Temperature, error) {
	q, err := t.add(unit.Temperature, o.quantity)
	if err != nil {
		return Temperature{}, err
	}
	return Temperature{q}, nil
}

// Sub returns t - o in t's unit.
func (t Temperature) Sub(o Temperature) (Temperature, error) {
	q, err := t.sub(unit.Temperature, o.quantity)
	if err != nil {
		return Temperature{}, err
	}
	return Temperature{q}, nil
}

// GoString returns the value together with its reference value.
func (t Temperature) GoString() string {
	return t.goString(unit.TemperatureC.String())
}
