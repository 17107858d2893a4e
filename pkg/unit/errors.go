package unit

import (
	"errors"
	"fmt"
)

// Unit errors.
var (
	ErrUnknownUnit           = errors.New("unknown unit")
	ErrUnknownDomain         = errors.New("unknown domain")
	ErrCrossDomainConversion = errors.New("cross-domain conversion")
	ErrCrossDomainOperation  = errors.New("cross-domain operation")
	ErrMissingRange          = errors.New("missing range configuration")
	ErrRangeInvalid          = errors.New("invalid range: low and high must differ")
)

// Error describes a failed unit operation.
type Error struct {
	// Op is the operation that failed (convert, lookup, add, ...).
	Op string

	// Domain is the domain the operation ran in.
	Domain Domain

	// Unit names the unit involved, if any.
	Unit string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Unit != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Domain, e.Unit, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Domain, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op string, d Domain, u Unit, err error) *Error {
	e := &Error{Op: op, Domain: d, Err: err}
	if u != nil {
		e.Unit = u.String()
	}
	return e
}

// NewError wraps err with operation, domain and unit context.
// The unit may be nil.
func NewError(op string, d Domain, u Unit, err error) error {
	return newError(op, d, u, err)
}
