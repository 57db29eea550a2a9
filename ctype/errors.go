package ctype

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports a missing required field, a wrong arity or a
	// violated cross-field rule.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTypeMismatch reports a value that should have been a type, or a
	// thunk that produced no type.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrRecursionLimit reports a traversal that exceeded the depth ceiling
	// without closing a cycle.
	ErrRecursionLimit = errors.New("maximum recursion depth exceeded")
)

func invalidArgf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func mismatchf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrTypeMismatch, fmt.Sprintf(format, args...))
}
