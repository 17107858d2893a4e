// Package converter implements the conversion rules that map a value between
// a unit and the reference unit of its domain.
//
// Every rule implements Converter:
//
//	FromBase: reference unit -> unit
//	ToBase:   unit -> reference unit
//
// # Rule Kinds
//
//   - Linear: unit = base*coeff + offset (Celsius to Fahrenheit, signal spans)
//   - Mult: unit = base*coeff (pressure, mass flow)
//   - Func: an arbitrary pair of mapping functions
//   - Resistance: resistance thermometer curves (platinum, copper, nickel)
//     mapping degrees Celsius to Ohm
//
// # Limits
//
// A rule may carry limits expressed in the reference unit. FromBase rejects
// reference values outside the limits, ToBase rejects unit values outside the
// limits projected into the unit. Both sides are rounded to two decimals before
// they are compared, so a reading of 18.5199 Ohm still passes a limit of 18.52.
package converter
