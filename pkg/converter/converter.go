package converter

import (
	"errors"
	"fmt"
	"math"
)

// Conversion errors.
var (
	ErrOutOfRange      = errors.New("value out of range")
	ErrZeroCoefficient = errors.New("coefficient must be non-zero")
)

// limitPrecision is the number of decimals used when comparing against limits.
const limitPrecision = 2

// Converter maps values between a unit and its domain's reference unit.
// Implementations must be safe for concurrent use.
type Converter interface {
	// FromBase converts a value in the reference unit into the unit.
	FromBase(v float64) (float64, error)

	// ToBase converts a value in the unit into the reference unit.
	ToBase(v float64) (float64, error)
}

// Limits bounds the values a converter accepts.
// Nil bounds are open.
type Limits struct {
	Low  *float64
	High *float64
}

// Bounded returns limits closed on both sides.
func Bounded(low, high float64) Limits {
	return Limits{Low: &low, High: &high}
}

// Unbounded returns limits open on both sides.
func Unbounded() Limits {
	return Limits{}
}

// IsBounded returns true if at least one bound is set.
func (l Limits) IsBounded() bool {
	return l.Low != nil || l.High != nil
}

// Check returns ErrOutOfRange if v lies outside the limits.
func (l Limits) Check(v float64) error {
	if math.IsNaN(v) {
		return fmt.Errorf("%w: NaN", ErrOutOfRange)
	}
	if l.Low != nil && round(v) < round(*l.Low) {
		return fmt.Errorf("%w: %g must be >= %g", ErrOutOfRange, v, *l.Low)
	}
	if l.High != nil && round(v) > round(*l.High) {
		return fmt.Errorf("%w: %g must be <= %g", ErrOutOfRange, v, *l.High)
	}
	return nil
}

// project maps the limits through a monotonic function f.
// Decreasing functions swap the bounds.
func (l Limits) project(f func(float64) float64) Limits {
	var out Limits
	if l.Low != nil {
		v := f(*l.Low)
		out.Low = &v
	}
	if l.High != nil {
		v := f(*l.High)
		out.High = &v
	}
	if out.Low != nil && out.High != nil && *out.Low > *out.High {
		out.Low, out.High = out.High, out.Low
	}
	return out
}

func round(v float64) float64 {
	p := math.Pow10(limitPrecision)
	return math.Round(v*p) / p
}

// Func is a converter built from a pair of mapping functions.
// A nil function fails every conversion in that direction with Err.
type Func struct {
	From func(float64) (float64, error)
	To   func(float64) (float64, error)

	// Err is returned when a direction has no function. Defaults to
	// ErrOutOfRange.
	Err error
}

// Unavailable returns a converter that fails every conversion with err.
func Unavailable(err error) Func {
	return Func{Err: err}
}

// FromBase implements Converter.
func (f Func) FromBase(v float64) (float64, error) {
	if f.From == nil {
		return 0, f.err()
	}
	return f.From(v)
}

// ToBase implements Converter.
func (f Func) ToBase(v float64) (float64, error) {
	if f.To == nil {
		return 0, f.err()
	}
	return f.To(v)
}

func (f Func) err() error {
	if f.Err != nil {
		return f.Err
	}
	return ErrOutOfRange
}

// Compile-time interface satisfaction checks.
var (
	_ Converter = Func{}
	_ Converter = (*Linear)(nil)
	_ Converter = (*Resistance)(nil)
)
