package wire

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/engunit/engunit-go/pkg/measure"
	"github.com/engunit/engunit-go/pkg/unit"
)

// Validation errors.
var (
	ErrMissingUnit     = errors.New("missing unit")
	ErrNonFiniteValue  = errors.New("value is not finite")
	ErrUnexpectedScale = errors.New("scale only applies to analog readings")
)

// Reading is the wire form of a measure.
type Reading struct {
	Domain unit.Domain `cbor:"1,keyasint"`
	Unit   string      `cbor:"2,keyasint"`
	Value  float64     `cbor:"3,keyasint"`
	Scale  *Scale      `cbor:"4,keyasint,omitempty"`
}

// Scale is the physical range of an analog reading.
type Scale struct {
	Low   float64 `cbor:"1,keyasint"`
	High  float64 `cbor:"2,keyasint"`
	Label string  `cbor:"3,keyasint,omitempty"`
}

// Snapshot is a timestamped batch of readings from one source.
type Snapshot struct {
	Timestamp time.Time `cbor:"1,keyasint"`
	Source    string    `cbor:"2,keyasint,omitempty"`
	Readings  []Reading `cbor:"3,keyasint"`
}

// FromMeasure returns the wire form of m.
func FromMeasure(m measure.Measure) Reading {
	r := Reading{
		Domain: m.Domain(),
		Unit:   m.Unit().String(),
		Value:  m.Value(),
	}
	if a, ok := m.(measure.AnalogSensorMeasure); ok {
		if s, ok := a.Scale(); ok {
			r.Scale = &Scale{Low: s.Low, High: s.High, Label: s.Label}
		}
	}
	return r
}

// Validate checks the reading's structure. It does not resolve the unit.
func (r *Reading) Validate() error {
	if _, err := unit.Lookup(r.Domain); err != nil {
		return err
	}
	if r.Unit == "" {
		return ErrMissingUnit
	}
	if math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
		return ErrNonFiniteValue
	}
	if r.Scale != nil {
		if r.Domain != unit.DomainAnalogSensor {
			return ErrUnexpectedScale
		}
		if err := (unit.Scale{Low: r.Scale.Low, High: r.Scale.High}).Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Measure resolves the reading into a measure.
func (r *Reading) Measure() (measure.Measure, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	u, err := unit.Parse(r.Domain, r.Unit)
	if err != nil {
		return nil, err
	}
	if r.Scale == nil {
		return measure.New(r.Value, u)
	}
	au, ok := u.(unit.AnalogUnit)
	if !ok {
		return nil, fmt.Errorf("unit %s: %w", r.Unit, ErrUnexpectedScale)
	}
	return measure.NewScaledAnalogSensorMeasure(r.Value, au, r.Scale.Low, r.Scale.High, r.Scale.Label)
}

// EncodeMeasure encodes m to CBOR bytes.
func EncodeMeasure(m measure.Measure) ([]byte, error) {
	r := FromMeasure(m)
	return EncodeReading(&r)
}

// DecodeMeasure decodes CBOR bytes into a measure.
func DecodeMeasure(data []byte) (measure.Measure, error) {
	r, err := DecodeReading(data)
	if err != nil {
		return nil, err
	}
	return r.Measure()
}
