package unit

import "fmt"

// TemperatureUnit is a unit of the Temperature domain.
type TemperatureUnit uint8

const (
	TemperatureC TemperatureUnit = 0x01
	TemperatureF TemperatureUnit = 0x02
	TemperatureK TemperatureUnit = 0x03
)

// Domain implements Unit.
func (TemperatureUnit) Domain() Domain { return DomainTemperature }

// String returns the unit name.
func (u TemperatureUnit) String() string {
	switch u {
	case TemperatureC:
		return "C"
	case TemperatureF:
		return "F"
	case TemperatureK:
		return "K"
	default:
		return fmt.Sprintf("TemperatureUnit(%d)", uint8(u))
	}
}

// Symbol returns the display symbol.
func (u TemperatureUnit) Symbol() string { return u.String() }

// ResistorUnit is a unit of the ThermoResistor domain.
type ResistorUnit uint8

const (
	ResistorC ResistorUnit = 0x01
	ResistorF ResistorUnit = 0x02
	ResistorK ResistorUnit = 0x03

	// ResistorPt100 is platinum, R0 = 100 Ohm, alpha 0.00385 (IEC 60751).
	ResistorPt100 ResistorUnit = 0x10

	// ResistorPt50 is platinum, R0 = 50 Ohm, alpha 0.00385 (IEC 60751).
	ResistorPt50 ResistorUnit = 0x11

	// ResistorP100 is platinum, R0 = 100 Ohm, alpha 0.00391 ("100P").
	ResistorP100 ResistorUnit = 0x12

	// ResistorP50 is platinum, R0 = 50 Ohm, alpha 0.00391 ("50P").
	ResistorP50 ResistorUnit = 0x13

	// ResistorCu100 is copper, R0 = 100 Ohm, alpha 0.00428.
	ResistorCu100 ResistorUnit = 0x20

	// ResistorNi100 is nickel, R0 = 100 Ohm, alpha 0.00617.
	ResistorNi100 ResistorUnit = 0x30
)

// Domain implements Unit.
func (ResistorUnit) Domain() Domain { return DomainThermoResistor }

// String returns the unit name.
func (u ResistorUnit) String() string {
	switch u {
	case ResistorC:
		return "C"
	case ResistorF:
		return "F"
	case ResistorK:
		return "K"
	case ResistorPt100:
		return "Pt100_Ohm"
	case ResistorPt50:
		return "Pt50_Ohm"
	case ResistorP100:
		return "P100_Ohm"
	case ResistorP50:
		return "P50_Ohm"
	case ResistorCu100:
		return "Cu100_Ohm"
	case ResistorNi100:
		return "Ni100_Ohm"
	default:
		return fmt.Sprintf("ResistorUnit(%d)", uint8(u))
	}
}

// Symbol returns the display symbol.
func (u ResistorUnit) Symbol() string {
	if u.IsResistance() {
		return "Ohm"
	}
	return u.String()
}

// IsResistance returns true for sensor resistance units.
func (u ResistorUnit) IsResistance() bool {
	return u >= ResistorPt100
}

// AnalogUnit is a unit of the AnalogSensorMeasure domain.
type AnalogUnit uint8

const (
	AnalogMA4To20 AnalogUnit = 0x01
	AnalogMA0To20 AnalogUnit = 0x02
	AnalogMA0To5  AnalogUnit = 0x03
	AnalogV1To5   AnalogUnit = 0x04
	AnalogV0To10  AnalogUnit = 0x05

	// AnalogMeasure is the physical quantity described by the Scale.
	AnalogMeasure AnalogUnit = 0x10
	// AnalogPercent is the percentage of the signal span.
	AnalogPercent AnalogUnit = 0x11
)

// Domain implements Unit.
func (AnalogUnit) Domain() Domain { return DomainAnalogSensor }

// String returns the unit name.
func (u AnalogUnit) String() string {
	switch u {
	case AnalogMA4To20:
		return "mA_4_20"
	case AnalogMA0To20:
		return "mA_0_20"
	case AnalogMA0To5:
		return "mA_0_5"
	case AnalogV1To5:
		return "V_1_5"
	case AnalogV0To10:
		return "V_0_10"
	case AnalogMeasure:
		return "MEASURE"
	case AnalogPercent:
		return "percent"
	default:
		return fmt.Sprintf("AnalogUnit(%d)", uint8(u))
	}
}

// Symbol returns the display symbol. AnalogMeasure renders as "EU"
// (engineering units); quantities substitute their physical label.
func (u AnalogUnit) Symbol() string {
	switch u {
	case AnalogMA4To20, AnalogMA0To20, AnalogMA0To5:
		return "mA"
	case AnalogV1To5, AnalogV0To10:
		return "V"
	case AnalogMeasure:
		return "EU"
	case AnalogPercent:
		return "%"
	default:
		return u.String()
	}
}

// IsSignal returns true for raw electrical signal units.
func (u AnalogUnit) IsSignal() bool {
	_, ok := signalSpans[u]
	return ok
}

// Span returns the raw signal bounds of a signal unit.
func (u AnalogUnit) Span() (low, high float64, ok bool) {
	s, ok := signalSpans[u]
	return s[0], s[1], ok
}

var signalSpans = map[AnalogUnit][2]float64{
	AnalogMA4To20: {4, 20},
	AnalogMA0To20: {0, 20},
	AnalogMA0To5:  {0, 5},
	AnalogV1To5:   {1, 5},
	AnalogV0To10:  {0, 10},
}

// PressureUnit is a unit of the Pressure domain.
type PressureUnit uint8

const (
	PressurePa     PressureUnit = 0x01
	PressureKPa    PressureUnit = 0x02
	PressureMPa    PressureUnit = 0x03
	PressureKgfCm2 PressureUnit = 0x04
	PressureKgfM2  PressureUnit = 0x05
	PressureBar    PressureUnit = 0x06
	PressureMmHg   PressureUnit = 0x07
	PressureMmH2O  PressureUnit = 0x08
	PressureMH2O   PressureUnit = 0x09
	PressureAtm    PressureUnit = 0x0A
)

// Domain implements Unit.
func (PressureUnit) Domain() Domain { return DomainPressure }

// String returns the unit name.
func (u PressureUnit) String() string {
	switch u {
	case PressurePa:
		return "Pa"
	case PressureKPa:
		return "kPa"
	case PressureMPa:
		return "MPa"
	case PressureKgfCm2:
		return "kgs_sm_2"
	case PressureKgfM2:
		return "kgs_m_2"
	case PressureBar:
		return "bar"
	case PressureMmHg:
		return "mm_hg"
	case PressureMmH2O:
		return "mm_h2o"
	case PressureMH2O:
		return "m_h2o"
	case PressureAtm:
		return "atm"
	default:
		return fmt.Sprintf("PressureUnit(%d)", uint8(u))
	}
}

// Symbol returns the display symbol.
func (u PressureUnit) Symbol() string {
	switch u {
	case PressureKgfCm2:
		return "kgf/cm2"
	case PressureKgfM2:
		return "kgf/m2"
	case PressureMmHg:
		return "mm.Hg"
	case PressureMmH2O:
		return "mm.H2O"
	case PressureMH2O:
		return "m.H2O"
	default:
		return u.String()
	}
}

// MassFlowUnit is a unit of the MassFlow domain.
type MassFlowUnit uint8

const (
	MassFlowKgH MassFlowUnit = 0x01
	MassFlowTH  MassFlowUnit = 0x02
	MassFlowKgD MassFlowUnit = 0x03
	MassFlowKgS MassFlowUnit = 0x04
	MassFlowTS  MassFlowUnit = 0x05
)

// Domain implements Unit.
func (MassFlowUnit) Domain() Domain { return DomainMassFlow }

// String returns the unit name.
func (u MassFlowUnit) String() string {
	switch u {
	case MassFlowKgH:
		return "kg_h"
	case MassFlowTH:
		return "t_h"
	case MassFlowKgD:
		return "kg_d"
	case MassFlowKgS:
		return "kg_s"
	case MassFlowTS:
		return "t_s"
	default:
		return fmt.Sprintf("MassFlowUnit(%d)", uint8(u))
	}
}

// Symbol returns the display symbol.
func (u MassFlowUnit) Symbol() string {
	switch u {
	case MassFlowKgH:
		return "kg/h"
	case MassFlowTH:
		return "t/h"
	case MassFlowKgD:
		return "kg/d"
	case MassFlowKgS:
		return "kg/s"
	case MassFlowTS:
		return "t/s"
	default:
		return u.String()
	}
}

// Compile-time interface satisfaction checks.
var (
	_ Unit = TemperatureUnit(0)
	_ Unit = ResistorUnit(0)
	_ Unit = AnalogUnit(0)
	_ Unit = PressureUnit(0)
	_ Unit = MassFlowUnit(0)
)
