package catalog

import (
	"fmt"
	"os"

	"github.com/engunit/engunit-go/pkg/unit"
	"gopkg.in/yaml.v3"
)

// LoadError provides details about a catalog loading error.
type LoadError struct {
	// File is the path to the file that failed to load.
	File string

	// Channel is the channel that failed validation, if any.
	Channel string

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Channel != "" {
		msg = "channel " + e.Channel + ": " + msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if e.File != "" {
		return e.File + ": " + msg
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Parse parses and validates a catalog from YAML bytes.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, &LoadError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}

	if len(c.Channels) == 0 {
		return nil, &LoadError{
			Message: "catalog must have at least one channel",
		}
	}

	c.index = make(map[string]int, len(c.Channels))
	for i := range c.Channels {
		ch := &c.Channels[i]
		if ch.Name == "" {
			return nil, &LoadError{
				Message: fmt.Sprintf("channel %d: name is required", i+1),
			}
		}
		if _, dup := c.index[ch.Name]; dup {
			return nil, &LoadError{
				Channel: ch.Name,
				Message: "duplicate channel name",
			}
		}
		if err := ch.resolve(); err != nil {
			return nil, err
		}
		c.index[ch.Name] = i
	}

	return &c, nil
}

// Load loads a catalog from a file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	c, err := Parse(data)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{
			File:    path,
			Message: err.Error(),
		}
	}

	return c, nil
}

// resolve validates the channel and binds its units.
func (ch *Channel) resolve() error {
	var output string
	var err error

	switch ch.Kind {
	case KindAnalog:
		if ch.input, err = ch.parse("signal", unit.DomainAnalogSensor, ch.Signal); err != nil {
			return err
		}
		if !ch.input.(unit.AnalogUnit).IsSignal() {
			return ch.invalid("signal must be a current or voltage unit", nil)
		}
		if ch.Range == nil {
			return ch.invalid("range is required", unit.ErrMissingRange)
		}
		if err := (unit.Scale{Low: ch.Range.Low, High: ch.Range.High}).Validate(); err != nil {
			return ch.invalid("invalid range", err)
		}
		output = orDefault(ch.Output, unit.AnalogMeasure.String())
	case KindThermoResistor:
		if ch.input, err = ch.parse("sensor", unit.DomainThermoResistor, ch.Sensor); err != nil {
			return err
		}
		if !ch.input.(unit.ResistorUnit).IsResistance() {
			return ch.invalid("sensor must be a resistance unit", nil)
		}
		if ch.Range != nil {
			return ch.invalid("range only applies to analog channels", nil)
		}
		output = orDefault(ch.Output, unit.ResistorC.String())
	case "":
		return ch.invalid("kind is required", nil)
	default:
		return ch.invalid(fmt.Sprintf("unknown kind %q", ch.Kind), nil)
	}

	ch.output, err = ch.parse("output", ch.Domain(), output)
	return err
}

func (ch *Channel) parse(field string, d unit.Domain, name string) (unit.Unit, error) {
	if name == "" {
		return nil, ch.invalid(field+" is required", nil)
	}
	u, err := unit.Parse(d, name)
	if err != nil {
		return nil, ch.invalid("invalid "+field, err)
	}
	return u, nil
}

func (ch *Channel) invalid(msg string, cause error) *LoadError {
	return &LoadError{Channel: ch.Name, Message: msg, Cause: cause}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
