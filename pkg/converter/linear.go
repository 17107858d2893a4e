package converter

// Linear converts with unit = base*coeff + offset.
type Linear struct {
	coeff  float64
	offset float64

	base      Limits
	converted Limits
}

// Identity is the rule of a domain's reference unit.
var Identity = MustLinear(1, 0, Unbounded())

// NewLinear creates a linear rule. Limits are given in the reference unit.
func NewLinear(coeff, offset float64, limits Limits) (*Linear, error) {
	if coeff == 0 {
		return nil, ErrZeroCoefficient
	}
	l := &Linear{
		coeff:  coeff,
		offset: offset,
		base:   limits,
	}
	l.converted = limits.project(l.from)
	return l, nil
}

// NewMult creates a purely multiplicative rule (offset 0).
func NewMult(coeff float64, limits Limits) (*Linear, error) {
	return NewLinear(coeff, 0, limits)
}

// MustLinear is like NewLinear but panics on error.
// Intended for static unit tables.
func MustLinear(coeff, offset float64, limits Limits) *Linear {
	l, err := NewLinear(coeff, offset, limits)
	if err != nil {
		panic(err)
	}
	return l
}

// MustMult is like NewMult but panics on error.
func MustMult(coeff float64) *Linear {
	return MustLinear(coeff, 0, Unbounded())
}

// Coeff returns the multiplicative coefficient.
func (l *Linear) Coeff() float64 { return l.coeff }

// Offset returns the additive offset.
func (l *Linear) Offset() float64 { return l.offset }

// BaseLimits returns the limits in the reference unit.
func (l *Linear) BaseLimits() Limits { return l.base }

// ConvertedLimits returns the limits projected into the unit.
func (l *Linear) ConvertedLimits() Limits { return l.converted }

// FromBase implements Converter.
func (l *Linear) FromBase(v float64) (float64, error) {
	if err := l.base.Check(v); err != nil {
		return 0, err
	}
	return l.from(v), nil
}

// ToBase implements Converter.
func (l *Linear) ToBase(v float64) (float64, error) {
	if err := l.converted.Check(v); err != nil {
		return 0, err
	}
	return l.to(v), nil
}

// The explicit conversion keeps the compiler from fusing the multiply-add,
// so results are identical on every architecture.
func (l *Linear) from(v float64) float64 {
	return float64(v*l.coeff) + l.offset
}

func (l *Linear) to(v float64) float64 {
	return (v - l.offset) / l.coeff
}
