package catalog

import (
	"errors"
	"fmt"

	"github.com/engunit/engunit-go/pkg/measure"
	"github.com/engunit/engunit-go/pkg/unit"
)

// ErrUnknownChannel is returned when a channel name is not in the catalog.
var ErrUnknownChannel = errors.New("unknown channel")

// Channel returns the channel with the given name. A nil catalog has no
// channels.
func (c *Catalog) Channel(name string) (*Channel, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownChannel, name)
	}
	i, ok := c.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownChannel, name)
	}
	return &c.Channels[i], nil
}

// Names returns the channel names in declaration order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.Channels))
	for i := range c.Channels {
		names[i] = c.Channels[i].Name
	}
	return names
}

// Domain returns the domain of the channel's raw input.
func (ch *Channel) Domain() unit.Domain {
	if ch.Kind == KindThermoResistor {
		return unit.DomainThermoResistor
	}
	return unit.DomainAnalogSensor
}

// InputUnit returns the unit of raw readings.
func (ch *Channel) InputUnit() unit.Unit { return ch.input }

// OutputUnit returns the unit readings are reported in.
func (ch *Channel) OutputUnit() unit.Unit { return ch.output }

// Raw returns raw as a measure in the channel's input unit.
func (ch *Channel) Raw(raw float64) (measure.Measure, error) {
	switch u := ch.input.(type) {
	case nil:
		return nil, fmt.Errorf("channel %s: not validated", ch.Name)
	case unit.AnalogUnit:
		a, err := measure.NewScaledAnalogSensorMeasure(raw, u, ch.Range.Low, ch.Range.High, ch.Label)
		if err != nil {
			return nil, err
		}
		return a, nil
	default:
		return measure.New(raw, u)
	}
}

// Read converts a raw reading into the channel's output unit.
func (ch *Channel) Read(raw float64) (measure.Measure, error) {
	m, err := ch.Raw(raw)
	if err != nil {
		return nil, err
	}
	return measure.Convert(m, ch.output)
}
