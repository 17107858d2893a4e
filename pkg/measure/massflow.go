package measure

import "github.com/engunit/engunit-go/pkg/unit"

// MassFlow is a mass flow rate (reference kg/h).
type MassFlow struct {
	quantity
}

// NewMassFlow creates a mass flow of v in unit u.
func NewMassFlow(v float64, u unit.MassFlowUnit) (MassFlow, error) {
	q, err := newQuantity(unit.MassFlow, v, u)
	if err != nil {
		return MassFlow{}, err
	}
	return MassFlow{q}, nil
}

// ConvertTo returns the flow expressed in unit u.
func (m MassFlow) ConvertTo(u unit.MassFlowUnit) (MassFlow, error) {
	q, err := m.convert(unit.MassFlow, u)
	if err != nil {
		return MassFlow{}, err
	}
	return MassFlow{q}, nil
}

// Add returns m + o in m's unit.
func (m MassFlow) Add(o MassFlow) (MassFlow, error) {
	q, err := m.add(unit.MassFlow, o.quantity)
	if err != nil {
		return MassFlow{}, err
	}
	return MassFlow{q}, nil
}

// Sub returns m - o in m's unit.
func (m MassFlow) Sub(o MassFlow) (MassFlow, error) {
	q, err := m.sub(unit.MassFlow, o.quantity)
	if err != nil {
		return MassFlow{}, err
	}
	return MassFlow{q}, nil
}

// GoString returns the value together with its reference value.
func (m MassFlow) GoString() string {
	return m.goString(unit.MassFlowKgH.String())
}
