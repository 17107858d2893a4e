package log

import (
	"errors"
	"time"

	"github.com/engunit/engunit-go/pkg/converter"
	"github.com/engunit/engunit-go/pkg/measure"
	"github.com/engunit/engunit-go/pkg/unit"
)

// Event represents a trace event for one operation.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the operation ran (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the converter session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Op is the operation performed.
	Op Op `cbor:"3,keyasint"`

	// Domain of the operands.
	Domain unit.Domain `cbor:"4,keyasint"`

	// Channel is the catalog channel name (read operations only).
	Channel string `cbor:"5,keyasint,omitempty"`

	// Input is the quantity the operation started from.
	Input *Quantity `cbor:"6,keyasint,omitempty"`

	// Operand is the right-hand side of add and sub.
	Operand *Quantity `cbor:"7,keyasint,omitempty"`

	// Target is the requested unit of a conversion.
	Target string `cbor:"8,keyasint,omitempty"`

	// Output is the result (absent on failure).
	Output *Quantity `cbor:"9,keyasint,omitempty"`

	// Error describes the failure (absent on success).
	Error *ErrorData `cbor:"10,keyasint,omitempty"`
}

// Failed returns true if the event records a failed operation.
func (e Event) Failed() bool {
	return e.Error != nil
}

// Op identifies the traced operation.
type Op uint8

const (
	// OpConvert is a unit conversion.
	OpConvert Op = 0
	// OpAdd is an addition.
	OpAdd Op = 1
	// OpSub is a subtraction.
	OpSub Op = 2
	// OpRead is a raw channel reading mapped to its physical quantity.
	OpRead Op = 3
)

// String returns the operation name.
func (o Op) String() string {
	switch o {
	case OpConvert:
		return "CONVERT"
	case OpAdd:
		return "ADD"
	case OpSub:
		return "SUB"
	case OpRead:
		return "READ"
	default:
		return "UNKNOWN"
	}
}

// Quantity is the logged form of a measure.
type Quantity struct {
	// Value in Unit.
	Value float64 `cbor:"1,keyasint"`

	// Unit is the enumeration name (e.g. "mA_4_20").
	Unit string `cbor:"2,keyasint"`

	// Display is the rendered quantity (e.g. "50.0 kPa").
	Display string `cbor:"3,keyasint,omitempty"`
}

// QuantityOf returns the logged form of m, or nil for a nil measure.
func QuantityOf(m measure.Measure) *Quantity {
	if m == nil {
		return nil
	}
	return &Quantity{
		Value:   m.Value(),
		Unit:    m.Unit().String(),
		Display: m.String(),
	}
}

// ErrorData captures a failed operation.
type ErrorData struct {
	// Kind classifies the failure.
	Kind ErrorKind `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`
}

// NewErrorData classifies err. It returns nil for a nil error.
func NewErrorData(err error) *ErrorData {
	if err == nil {
		return nil
	}
	return &ErrorData{Kind: Classify(err), Message: err.Error()}
}

// ErrorKind classifies failures.
type ErrorKind uint8

const (
	ErrorKindOther                 ErrorKind = 0
	ErrorKindUnknownUnit           ErrorKind = 1
	ErrorKindCrossDomainConversion ErrorKind = 2
	ErrorKindCrossDomainOperation  ErrorKind = 3
	ErrorKindMissingRange          ErrorKind = 4
	ErrorKindOutOfRange            ErrorKind = 5
	ErrorKindRangeInvalid          ErrorKind = 6
	ErrorKindScaleMismatch         ErrorKind = 7
	ErrorKindUnknownChannel        ErrorKind = 8
)

// String returns the error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindOther:
		return "OTHER"
	case ErrorKindUnknownUnit:
		return "UNKNOWN_UNIT"
	case ErrorKindCrossDomainConversion:
		return "CROSS_DOMAIN_CONVERSION"
	case ErrorKindCrossDomainOperation:
		return "CROSS_DOMAIN_OPERATION"
	case ErrorKindMissingRange:
		return "MISSING_RANGE"
	case ErrorKindOutOfRange:
		return "OUT_OF_RANGE"
	case ErrorKindRangeInvalid:
		return "RANGE_INVALID"
	case ErrorKindScaleMismatch:
		return "SCALE_MISMATCH"
	case ErrorKindUnknownChannel:
		return "UNKNOWN_CHANNEL"
	default:
		return "UNKNOWN"
	}
}

// Classify maps err onto an ErrorKind.
func Classify(err error) ErrorKind {
	switch {
	case errors.Is(err, unit.ErrCrossDomainConversion):
		return ErrorKindCrossDomainConversion
	case errors.Is(err, unit.ErrCrossDomainOperation):
		return ErrorKindCrossDomainOperation
	case errors.Is(err, unit.ErrMissingRange):
		return ErrorKindMissingRange
	case errors.Is(err, unit.ErrRangeInvalid):
		return ErrorKindRangeInvalid
	case errors.Is(err, unit.ErrUnknownUnit):
		return ErrorKindUnknownUnit
	case errors.Is(err, converter.ErrOutOfRange):
		return ErrorKindOutOfRange
	case errors.Is(err, measure.ErrScaleMismatch):
		return ErrorKindScaleMismatch
	default:
		return ErrorKindOther
	}
}
