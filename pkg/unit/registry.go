package unit

import (
	"github.com/engunit/engunit-go/pkg/converter"
)

// Rule binds a unit to the converter that maps it to the reference unit.
type Rule struct {
	Unit      Unit
	Converter converter.Converter
}

// Registry holds the conversion rules of one domain.
// A Registry is immutable after construction and safe for concurrent use.
type Registry struct {
	domain Domain
	base   Unit
	units  []Unit
	rules  map[Unit]converter.Converter
}

// NewRegistry creates a registry for domain d. The first unit whose rule is
// converter.Identity is the reference unit. Rules for units of another domain
// and repeated units are ignored.
func NewRegistry(d Domain, rules ...Rule) *Registry {
	r := &Registry{
		domain: d,
		rules:  make(map[Unit]converter.Converter, len(rules)),
	}
	for _, rule := range rules {
		if rule.Unit == nil || rule.Unit.Domain() != d {
			continue
		}
		if _, dup := r.rules[rule.Unit]; dup {
			continue
		}
		if r.base == nil && rule.Converter == converter.Identity {
			r.base = rule.Unit
		}
		r.units = append(r.units, rule.Unit)
		r.rules[rule.Unit] = rule.Converter
	}
	return r
}

// Domain returns the registry's domain.
func (r *Registry) Domain() Domain { return r.domain }

// Base returns the reference unit, or nil if the reference is not a member
// of the enumeration (AnalogSensorMeasure uses the signal fraction).
func (r *Registry) Base() Unit { return r.base }

// Units returns the supported units in declaration order.
func (r *Registry) Units() []Unit {
	out := make([]Unit, len(r.units))
	copy(out, r.units)
	return out
}

// Has returns true if u belongs to the registry.
func (r *Registry) Has(u Unit) bool {
	_, ok := r.rules[u]
	return ok
}

// Converter returns the rule for u.
func (r *Registry) Converter(u Unit) (converter.Converter, error) {
	if u == nil {
		return nil, newError("lookup", r.domain, nil, ErrUnknownUnit)
	}
	if u.Domain() != r.domain {
		return nil, newError("lookup", r.domain, u, ErrCrossDomainConversion)
	}
	c, ok := r.rules[u]
	if !ok {
		return nil, newError("lookup", r.domain, u, ErrUnknownUnit)
	}
	return c, nil
}

// Lookup returns the unit with the given enumeration name.
func (r *Registry) Lookup(name string) (Unit, error) {
	for _, u := range r.units {
		if u.String() == name {
			return u, nil
		}
	}
	return nil, &Error{Op: "lookup", Domain: r.domain, Unit: name, Err: ErrUnknownUnit}
}

// ToBase normalizes v from unit u into the reference unit.
func (r *Registry) ToBase(v float64, u Unit) (float64, error) {
	c, err := r.Converter(u)
	if err != nil {
		return 0, err
	}
	base, err := c.ToBase(v)
	if err != nil {
		return 0, newError("convert", r.domain, u, err)
	}
	return base, nil
}

// FromBase projects the reference value base into unit u.
func (r *Registry) FromBase(base float64, u Unit) (float64, error) {
	c, err := r.Converter(u)
	if err != nil {
		return 0, err
	}
	v, err := c.FromBase(base)
	if err != nil {
		return 0, newError("convert", r.domain, u, err)
	}
	return v, nil
}

// Convert converts v from unit from to unit to via the reference unit.
// Converting a unit to itself returns v unchanged.
func (r *Registry) Convert(v float64, from, to Unit) (float64, error) {
	if _, err := r.Converter(from); err != nil {
		return 0, err
	}
	if _, err := r.Converter(to); err != nil {
		return 0, err
	}
	if from == to {
		return v, nil
	}
	base, err := r.ToBase(v, from)
	if err != nil {
		return 0, err
	}
	return r.FromBase(base, to)
}
