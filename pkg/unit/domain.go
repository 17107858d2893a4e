package unit

import (
	"fmt"
	"strings"
)

// Domain identifies a family of mutually convertible units.
type Domain uint8

const (
	DomainTemperature    Domain = 0x01
	DomainThermoResistor Domain = 0x02
	DomainAnalogSensor   Domain = 0x03
	DomainPressure       Domain = 0x04
	DomainMassFlow       Domain = 0x05
)

// Domains lists all known domains in declaration order.
var Domains = []Domain{
	DomainTemperature,
	DomainThermoResistor,
	DomainAnalogSensor,
	DomainPressure,
	DomainMassFlow,
}

// String returns the domain name.
func (d Domain) String() string {
	switch d {
	case DomainTemperature:
		return "Temperature"
	case DomainThermoResistor:
		return "ThermoResistor"
	case DomainAnalogSensor:
		return "AnalogSensorMeasure"
	case DomainPressure:
		return "Pressure"
	case DomainMassFlow:
		return "MassFlow"
	default:
		return fmt.Sprintf("Domain(%d)", uint8(d))
	}
}

// ParseDomain parses a domain name. Matching ignores case, and "analog" is
// accepted for AnalogSensorMeasure.
func ParseDomain(s string) (Domain, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "temperature":
		return DomainTemperature, nil
	case "thermoresistor", "resistor":
		return DomainThermoResistor, nil
	case "analogsensormeasure", "analog":
		return DomainAnalogSensor, nil
	case "pressure":
		return DomainPressure, nil
	case "massflow":
		return DomainMassFlow, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDomain, s)
	}
}

// Unit is a member of a domain's unit enumeration.
type Unit interface {
	// Domain returns the domain the unit belongs to.
	Domain() Domain

	// Symbol returns the display symbol (e.g. "C", "mA", "kPa").
	Symbol() string

	// String returns the enumeration name (e.g. "Pt100_Ohm", "mA_4_20").
	String() string
}
