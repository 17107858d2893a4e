package measure

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/engunit/engunit-go/pkg/unit"
)

// ErrScaleMismatch is returned when analog operands carry different scales.
var ErrScaleMismatch = errors.New("analog scales differ")

// Measure is a quantity of any domain.
type Measure interface {
	fmt.Stringer

	// Domain returns the quantity's domain.
	Domain() unit.Domain

	// Value returns the numeric value in Unit.
	Value() float64

	// Unit returns the unit the value is expressed in.
	Unit() unit.Unit

	// BaseValue returns the value in the domain's reference unit.
	BaseValue() float64
}

// quantity is the state shared by all quantity types.
type quantity struct {
	value float64
	base  float64
	unit  unit.Unit
}

func newQuantity(r *unit.Registry, v float64, u unit.Unit) (quantity, error) {
	base, err := r.ToBase(v, u)
	if err != nil {
		return quantity{}, err
	}
	return quantity{value: v, base: base, unit: u}, nil
}

// project expresses base in unit u.
func project(r *unit.Registry, base float64, u unit.Unit) (quantity, error) {
	v, err := r.FromBase(base, u)
	if err != nil {
		return quantity{}, err
	}
	return quantity{value: v, base: base, unit: u}, nil
}

// convert re-expresses q in unit u. Converting to the current unit returns q.
func (q quantity) convert(r *unit.Registry, u unit.Unit) (quantity, error) {
	if _, err := r.Converter(u); err != nil {
		return quantity{}, err
	}
	if u == q.unit {
		return q, nil
	}
	return project(r, q.base, u)
}

func (q quantity) add(r *unit.Registry, o quantity) (quantity, error) {
	return project(r, q.base+o.base, q.unit)
}

func (q quantity) sub(r *unit.Registry, o quantity) (quantity, error) {
	return project(r, q.base-o.base, q.unit)
}

// Domain returns the quantity's domain.
func (q quantity) Domain() unit.Domain { return q.unit.Domain() }

// Value returns the numeric value.
func (q quantity) Value() float64 { return q.value }

// Unit returns the unit.
func (q quantity) Unit() unit.Unit { return q.unit }

// BaseValue returns the value in the reference unit.
func (q quantity) BaseValue() float64 { return q.base }

// String renders "<value> <symbol>".
func (q quantity) String() string {
	return FormatValue(q.value) + " " + q.unit.Symbol()
}

func (q quantity) goString(baseUnit string) string {
	return fmt.Sprintf("Value:%s %s. Base: %s %s",
		FormatValue(q.value), q.unit, FormatValue(q.base), baseUnit)
}

// FormatValue renders v in the shortest form that round-trips, always with a
// decimal point for finite values ("50.0", "283.15", "1e+21").
func FormatValue(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	abs := math.Abs(v)
	if abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return s
		}
	}
	return s + ".0"
}
