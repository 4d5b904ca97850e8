package apperr

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// Expression error kinds. Every *ExpressionError matches exactly one of them
// with errors.Is.
var (
	ErrMalformedExpression = errors.New("malformed expression")
	ErrNumericOverflow     = errors.New("numeric overflow")
)

const (
	KindMalformed = "malformed"
	KindOverflow  = "overflow"
)

// NoPosition marks errors that do not point at a single offset, e.g. empty input.
const NoPosition = -1

// ExpressionError is returned when an arithmetic expression is rejected.
// Pos is a byte offset into the whitespace-stripped expression.
type ExpressionError struct {
	Kind    error
	Pos     int
	Message string
	Err     error
}

func (e *ExpressionError) Error() string {
	msg := e.Kind.Error()
	if e.Pos != NoPosition {
		msg = fmt.Sprintf("%s at position %d", msg, e.Pos)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ExpressionError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// KindName returns the short wire name of the error kind.
func (e *ExpressionError) KindName() string {
	return KindName(e.Kind)
}

func KindName(kind error) string {
	switch {
	case errors.Is(kind, ErrNumericOverflow):
		return KindOverflow
	case errors.Is(kind, ErrMalformedExpression):
		return KindMalformed
	default:
		return ""
	}
}

func NewMalformed(pos int, msg string) *ExpressionError {
	return &ExpressionError{Kind: ErrMalformedExpression, Pos: pos, Message: msg}
}

func NewOverflow(pos int, literal string, err error) *ExpressionError {
	return &ExpressionError{
		Kind:    ErrNumericOverflow,
		Pos:     pos,
		Message: fmt.Sprintf("%q does not fit in a 64-bit signed integer", literal),
		Err:     err,
	}
}
