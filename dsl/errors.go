package dsl

import (
	"errors"
	"fmt"
)

// Parse failures. Every error returned by Parse wraps exactly one of these
// sentinels, so callers can dispatch with errors.Is.
var (
	// Cursor errors
	ErrUnexpectedEndOfInput = errors.New("dsl: unexpected end of input")
	ErrUnexpectedToken      = errors.New("dsl: unexpected token")

	// File-scope errors
	ErrUnrecognizedConstruct  = errors.New("dsl: unrecognized file-level construct")
	ErrTrailingContent        = errors.New("dsl: the postlude must be the last part of the file")
	ErrDuplicateAbstractType  = errors.New("dsl: duplicate abstract type name")

	// Variant validation errors
	ErrDuplicateOperation       = errors.New("dsl: duplicate declaration of pure virtual functions")
	ErrDuplicateImplementation  = errors.New("dsl: duplicate implementation")
	ErrIncompleteImplementation = errors.New("dsl: not all pure virtual functions are implemented")
	ErrDuplicateVariant         = errors.New("dsl: duplicate variant name")
)

// UnexpectedTokenError reports a token whose kind does not match what the
// grammar requires at the current position.
type UnexpectedTokenError struct {
	Expected TokenKind
	Actual   TokenKind
	Lexeme   string
	Pos      int
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("dsl: expected %v, got %v (%q) at position %d",
		e.Expected, e.Actual, e.Lexeme, e.Pos)
}

func (e *UnexpectedTokenError) Unwrap() error { return ErrUnexpectedToken }
