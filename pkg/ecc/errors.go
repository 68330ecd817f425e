package ecc

import (
	"errors"
	"fmt"
)

// Errors returned by field and curve operations. Every error produced by this
// package wraps exactly one of them.
var (
	ErrInvalidRange      = errors.New("ecc: value not in field range")
	ErrInvalidModulus    = errors.New("ecc: modulus must be at least 2")
	ErrIncompatibleField = errors.New("ecc: elements belong to different fields")
	ErrNotOnCurve        = errors.New("ecc: point is not on the curve")
	ErrDifferentCurve    = errors.New("ecc: points are not on the same curve")
	ErrDivisionByZero    = errors.New("ecc: division by zero")
)

// Error records the operation that failed and its cause.
type Error struct {
	Op  string // Operation that failed, e.g. "FieldElement.Div"
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// errorf wraps kind with a formatted detail message.
func errorf(op string, kind error, format string, args ...interface{}) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...)),
	}
}

// wrap attributes an error from a nested operation to op, keeping the cause.
func wrap(op string, err error) error {
	var e *Error
	if errors.As(err, &e) {
		return &Error{Op: op, Err: e.Err}
	}
	return &Error{Op: op, Err: err}
}
