package converter

import "math"

// Newton refinement settings for curve inversion.
const (
	newtonMaxIter   = 50
	newtonTolerance = 1e-9 // Ohm
)

// Params holds the coefficients of a resistance thermometer curve.
//
// A, B and C are the forward coefficients (Callendar-Van Dusen for platinum),
// D holds the inverse polynomial coefficients used below R0.
type Params struct {
	A float64
	B float64
	C float64
	D []float64
}

// Standard curve coefficients.
var (
	// PlatinumIEC is the IEC 60751 platinum curve (alpha 0.00385).
	PlatinumIEC = Params{
		A: 3.9083e-3,
		B: -5.775e-7,
		C: -4.183e-12,
		D: []float64{255.819, 9.14550, -2.92363, 1.79090},
	}

	// Platinum391 is the platinum curve with alpha 0.00391 ("100P").
	Platinum391 = Params{
		A: 3.9690e-3,
		B: -5.841e-7,
		C: -4.330e-12,
		D: []float64{251.903, 8.80035, -2.91506, 1.67611},
	}

	// Copper428 is the copper curve with alpha 0.00428.
	Copper428 = Params{
		A: 4.28e-3,
		B: -6.2032e-7,
		C: 8.5154e-10,
		D: []float64{233.87, 7.9370, -2.0062, -0.3953},
	}

	// Nickel617 is the nickel curve with alpha 0.00617.
	Nickel617 = Params{
		A: 5.4963e-3,
		B: 6.7556e-6,
		C: 9.2004e-9,
		D: []float64{144.096, -25.502, 4.4876},
	}
)

// curve is the shape of a resistance-temperature relation, normalized to R0=1.
type curve interface {
	// ratio returns R/R0 at temperature t.
	ratio(t float64) float64
	// slope returns d(R/R0)/dt at temperature t.
	slope(t float64) float64
	// seed returns an approximate temperature for the ratio w = R/R0.
	seed(w float64) float64
}

// Resistance converts between degrees Celsius (reference) and Ohm.
type Resistance struct {
	r0    float64
	curve curve

	base      Limits
	converted Limits
}

// NewPlatinum creates a platinum curve converter, valid from -200 to 850 C.
func NewPlatinum(r0 float64, p Params) *Resistance {
	return newResistance(r0, platinum{p}, Bounded(-200, 850))
}

// NewCopper creates a copper curve converter, valid from -180 to 200 C.
func NewCopper(r0 float64, p Params) *Resistance {
	return newResistance(r0, copper{p}, Bounded(-180, 200))
}

// NewNickel creates a nickel curve converter, valid from -60 to 180 C.
func NewNickel(r0 float64, p Params) *Resistance {
	return newResistance(r0, nickel{p}, Bounded(-60, 180))
}

func newResistance(r0 float64, c curve, limits Limits) *Resistance {
	r := &Resistance{
		r0:    r0,
		curve: c,
		base:  limits,
	}
	r.converted = limits.project(r.resistance)
	return r
}

// R0 returns the nominal resistance at 0 C.
func (r *Resistance) R0() float64 { return r.r0 }

// BaseLimits returns the temperature limits in degrees Celsius.
func (r *Resistance) BaseLimits() Limits { return r.base }

// ConvertedLimits returns the resistance limits in Ohm.
func (r *Resistance) ConvertedLimits() Limits { return r.converted }

// FromBase returns the resistance at temperature t (C).
func (r *Resistance) FromBase(t float64) (float64, error) {
	if err := r.base.Check(t); err != nil {
		return 0, err
	}
	return r.resistance(t), nil
}

// ToBase returns the temperature (C) for resistance ohm.
func (r *Resistance) ToBase(ohm float64) (float64, error) {
	if err := r.converted.Check(ohm); err != nil {
		return 0, err
	}
	return r.temperature(ohm), nil
}

func (r *Resistance) resistance(t float64) float64 {
	return r.r0 * r.curve.ratio(t)
}

// temperature inverts the curve. The seed is refined with Newton's method
// until the forward curve reproduces ohm within newtonTolerance.
func (r *Resistance) temperature(ohm float64) float64 {
	t := r.curve.seed(ohm / r.r0)
	for i := 0; i < newtonMaxIter; i++ {
		diff := r.resistance(t) - ohm
		if math.Abs(diff) < newtonTolerance {
			break
		}
		d := r.r0 * r.curve.slope(t)
		if d == 0 {
			break
		}
		t -= diff / d
	}
	return t
}

// polynomial evaluates sum(d[i] * x^(i+1)).
func polynomial(d []float64, x float64) float64 {
	var sum, pow float64 = 0, 1
	for _, c := range d {
		pow *= x
		sum += c * pow
	}
	return sum
}

// quadraticRoot solves 1 + A*t + B*t^2 = w for t.
func quadraticRoot(a, b, w float64) float64 {
	return (math.Sqrt(a*a-4*b*(1-w)) - a) / (2 * b)
}

type platinum struct{ Params }

func (p platinum) ratio(t float64) float64 {
	w := 1 + p.A*t + p.B*t*t
	if t < 0 {
		w += p.C * (t - 100) * t * t * t
	}
	return w
}

func (p platinum) slope(t float64) float64 {
	s := p.A + 2*p.B*t
	if t < 0 {
		s += p.C * (4*t*t*t - 300*t*t)
	}
	return s
}

func (p platinum) seed(w float64) float64 {
	if w >= 1 {
		return quadraticRoot(p.A, p.B, w)
	}
	return polynomial(p.D, w-1)
}

type copper struct{ Params }

func (c copper) ratio(t float64) float64 {
	if t <= 0 {
		return 1 + c.A*t + c.B*t*(t+6.7) + c.C*t*t*t
	}
	return 1 + c.A*t
}

func (c copper) slope(t float64) float64 {
	if t <= 0 {
		return c.A + c.B*(2*t+6.7) + 3*c.C*t*t
	}
	return c.A
}

func (c copper) seed(w float64) float64 {
	if w >= 1 {
		return (w - 1) / c.A
	}
	return polynomial(c.D, w-1)
}

type nickel struct{ Params }

// nickelKnee is the temperature above which the cubic term applies.
const nickelKnee = 100.0

func (n nickel) ratio(t float64) float64 {
	w := 1 + n.A*t + n.B*t*t
	if t > nickelKnee {
		w += n.C * (t - nickelKnee) * t * t
	}
	return w
}

func (n nickel) slope(t float64) float64 {
	s := n.A + 2*n.B*t
	if t > nickelKnee {
		s += n.C * (3*t*t - 2*nickelKnee*t)
	}
	return s
}

func (n nickel) seed(w float64) float64 {
	knee := n.ratio(nickelKnee)
	if w <= knee {
		return quadraticRoot(n.A, n.B, w)
	}
	return nickelKnee + polynomial(n.D, w-knee)
}
