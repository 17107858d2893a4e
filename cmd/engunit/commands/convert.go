// Package commands implements the engunit CLI commands.
package commands

import (
	"fmt"
	"io"

	"github.com/engunit/engunit-go/pkg/catalog"
	"github.com/engunit/engunit-go/pkg/measure"
	"github.com/engunit/engunit-go/pkg/unit"
)

// Quantity is a value with a unit name, as typed on the command line.
type Quantity struct {
	Value float64
	Unit  string
}

// ConvertRequest describes a single conversion.
type ConvertRequest struct {
	Domain string
	From   Quantity
	To     string

	// Scale is the physical range of analog quantities (optional).
	Scale *unit.Scale

	// Verbose prints the debug representation with the reference value.
	Verbose bool
}

// ArithRequest describes an addition or subtraction.
type ArithRequest struct {
	Domain  string
	Op      string // "add" or "sub"
	Left    Quantity
	Right   Quantity
	Scale   *unit.Scale
	Verbose bool
}

// ParseQuantity builds a measure of q in the named domain.
func ParseQuantity(domain string, q Quantity, scale *unit.Scale) (measure.Measure, error) {
	d, err := unit.ParseDomain(domain)
	if err != nil {
		return nil, err
	}
	u, err := unit.Parse(d, q.Unit)
	if err != nil {
		return nil, err
	}
	if scale == nil {
		return measure.New(q.Value, u)
	}
	au, ok := u.(unit.AnalogUnit)
	if !ok {
		return nil, fmt.Errorf("a range only applies to the %s domain", unit.DomainAnalogSensor)
	}
	m, err := measure.NewScaledAnalogSensorMeasure(q.Value, au, scale.Low, scale.High, scale.Label)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// RunConvert executes the convert command.
func RunConvert(conv *catalog.Converter, req ConvertRequest, w io.Writer) error {
	m, err := ParseQuantity(req.Domain, req.From, req.Scale)
	if err != nil {
		return err
	}
	u, err := unit.Parse(m.Domain(), req.To)
	if err != nil {
		return err
	}

	out, err := conv.Convert(m, u)
	if err != nil {
		return err
	}
	printMeasure(w, out, req.Verbose)
	return nil
}

// RunArith executes the add and sub commands.
func RunArith(conv *catalog.Converter, req ArithRequest, w io.Writer) error {
	a, err := ParseQuantity(req.Domain, req.Left, req.Scale)
	if err != nil {
		return err
	}
	b, err := ParseQuantity(req.Domain, req.Right, req.Scale)
	if err != nil {
		return err
	}

	var out measure.Measure
	switch req.Op {
	case "add":
		out, err = conv.Add(a, b)
	case "sub":
		out, err = conv.Sub(a, b)
	default:
		return fmt.Errorf("unknown operation: %s (must be add or sub)", req.Op)
	}
	if err != nil {
		return err
	}
	printMeasure(w, out, req.Verbose)
	return nil
}

func printMeasure(w io.Writer, m measure.Measure, verbose bool) {
	if verbose {
		fmt.Fprintf(w, "%#v\n", m)
		return
	}
	fmt.Fprintln(w, m.String())
}
