// Package measure provides immutable quantity types: a value paired with a
// unit of one domain.
//
//	t, _ := measure.NewTemperature(10, unit.TemperatureC)
//	k, _ := t.ConvertTo(unit.TemperatureK) // 283.15 K
//
// # Arithmetic
//
// Add and Sub combine the reference values of both operands and express the
// result in the left operand's unit. The unit of the result therefore depends
// on operand order:
//
//	c := 10 C, k := 283.15 K
//	c.Add(k) -> 20 C
//	k.Add(c) -> 293.15 K
//
// Both results describe the same temperature.
//
// # Dynamic Use
//
// Every quantity implements Measure. The package-level New, Convert, Add and
// Sub work on Measure values and reject units and operands of foreign domains
// with unit.ErrCrossDomainConversion and unit.ErrCrossDomainOperation.
package measure
