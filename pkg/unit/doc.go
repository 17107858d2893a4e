// Package unit defines the measurement domains, their closed unit
// enumerations and the registry that routes conversions through each
// domain's reference unit.
//
// # Domains
//
//	Domain           Reference   Units
//	Temperature      C           C, F, K
//	ThermoResistor   C           C, F, K, Pt100_Ohm, Pt50_Ohm, P100_Ohm, P50_Ohm, Cu100_Ohm, Ni100_Ohm
//	AnalogSensor     fraction    mA_4_20, mA_0_20, mA_0_5, V_1_5, V_0_10, MEASURE, percent
//	Pressure         Pa          Pa, kPa, MPa, kgs_sm_2, kgs_m_2, bar, mm_hg, mm_h2o, m_h2o, atm
//	MassFlow         kg_h        kg_h, t_h, kg_d, kg_s, t_s
//
// The analog reference is the raw signal normalized to a [0,1] fraction of its
// span. MEASURE and percent need a Scale; without one they fail with
// ErrMissingRange.
//
// # Conversion
//
// Convert normalizes a value into the reference unit of its domain and projects
// it into the target unit. Units of different domains never convert into each
// other: the attempt fails with ErrCrossDomainConversion.
package unit
