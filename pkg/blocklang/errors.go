package blocklang

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every error returned by evaluation matches exactly one of
// these with errors.Is
var (
	ErrArityMismatch    = errors.New("arity mismatch")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrUnboundVariable  = errors.New("unbound variable")
	ErrUnknownProcedure = errors.New("unknown procedure")
	ErrNoEnclosingScope = errors.New("no enclosing scope")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrMalformedNode    = errors.New("malformed node")
)

type ArityError struct {
	Proc string
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%v: incorrect number of arguments, wanted: %v, got: %v", e.Proc, e.Want, e.Got)
}

func (e *ArityError) Is(target error) bool { return target == ErrArityMismatch }

type TypeError struct {
	Proc string
	// Index is zero-based
	Index int
	Want  Kind
	Got   Kind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%v: the %v argument should be %v, got: %v", e.Proc, ordinal(e.Index+1), e.Want, e.Got)
}

func (e *TypeError) Is(target error) bool { return target == ErrTypeMismatch }

type UnboundError struct {
	Name string
}

func (e *UnboundError) Error() string {
	return "variable not declared: " + e.Name
}

func (e *UnboundError) Is(target error) bool { return target == ErrUnboundVariable }

type UnknownProcedureError struct {
	Name string
}

func (e *UnknownProcedureError) Error() string {
	return "unknown procedure: " + e.Name
}

func (e *UnknownProcedureError) Is(target error) bool { return target == ErrUnknownProcedure }

type NoEnclosingScopeError struct {
	Name string
}

func (e *NoEnclosingScopeError) Error() string {
	return "can't export from the outermost scope: " + e.Name
}

func (e *NoEnclosingScopeError) Is(target error) bool { return target == ErrNoEnclosingScope }

type DivisionByZeroError struct {
	Proc string
}

func (e *DivisionByZeroError) Error() string {
	return e.Proc + ": division by zero"
}

func (e *DivisionByZeroError) Is(target error) bool { return target == ErrDivisionByZero }

type IndexError struct {
	Proc  string
	Index int64
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: index out of bounds: %v (length %v)", e.Proc, e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }

type MalformedNodeError struct {
	Reason string
}

func (e *MalformedNodeError) Error() string {
	return "malformed node: " + e.Reason
}

func (e *MalformedNodeError) Is(target error) bool { return target == ErrMalformedNode }

// TraceError records the chain of procedure calls an error escaped through,
// outermost first
type TraceError struct {
	Calls []string
	Err   error
}

func (e *TraceError) Error() string {
	return "in " + strings.Join(e.Calls, " > ") + ": " + e.Err.Error()
}

func (e *TraceError) Unwrap() error { return e.Err }

func traceError(proc string, err error) error {
	if trace, ok := err.(*TraceError); ok {
		trace.Calls = append([]string{proc}, trace.Calls...)
		return trace
	}
	return &TraceError{Calls: []string{proc}, Err: err}
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	}
	return fmt.Sprintf("%vth", n)
}
