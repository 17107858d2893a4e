// Package catalog maps raw sensor channel readings to physical quantities.
//
// A catalog is a YAML document listing the channels of a plant: analog
// current or voltage loops with their physical range, and resistance
// thermometers with their sensor curve. Reading a channel turns the raw
// signal (mA, V or Ohm) into the configured output unit.
package catalog

import "github.com/engunit/engunit-go/pkg/unit"

// Kind identifies the type of sensor behind a channel.
type Kind string

const (
	// KindAnalog is a current or voltage loop.
	KindAnalog Kind = "analog"

	// KindThermoResistor is a resistance thermometer.
	KindThermoResistor Kind = "thermoresistor"
)

// Catalog is a set of channels loaded from YAML.
type Catalog struct {
	// Name of the plant or installation.
	Name string `yaml:"name"`

	// Description of the catalog.
	Description string `yaml:"description,omitempty"`

	// Channels in declaration order.
	Channels []Channel `yaml:"channels"`

	index map[string]int
}

// Channel describes one sensor input.
type Channel struct {
	// Name is the unique channel tag (e.g., "PT-101").
	Name string `yaml:"name"`

	// Kind is the sensor type.
	Kind Kind `yaml:"kind"`

	// Description explains what the channel measures.
	Description string `yaml:"description,omitempty"`

	// Signal is the analog signal unit (e.g., "mA_4_20"). Analog only.
	Signal string `yaml:"signal,omitempty"`

	// Range is the physical range of the signal span. Analog only.
	Range *Range `yaml:"range,omitempty"`

	// Label is the physical unit label of the range (e.g., "kPa").
	Label string `yaml:"label,omitempty"`

	// Sensor is the resistance unit of the curve (e.g., "Pt100_Ohm").
	// Thermoresistor only.
	Sensor string `yaml:"sensor,omitempty"`

	// Output is the unit readings are reported in. Defaults to MEASURE for
	// analog channels and C for thermoresistors.
	Output string `yaml:"output,omitempty"`

	input  unit.Unit
	output unit.Unit
}

// Range is a physical value range.
type Range struct {
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`
}
