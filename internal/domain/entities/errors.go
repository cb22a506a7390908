package entities

import (
	"errors"
	"fmt"
)

// Parse and capacity failures. Match with errors.Is.
var (
	// ErrTokenCountMismatch means the number of numeric tokens differs from n
	ErrTokenCountMismatch = errors.New("solcheck: token count mismatch")

	// ErrInvalidNumber means a token is not a finite real literal
	ErrInvalidNumber = errors.New("solcheck: invalid number")

	// ErrMalformedExpression means a bracket is missing or unbalanced, a label has no
	// bracket, a label repeats, or a bracket ran out before n numbers
	ErrMalformedExpression = errors.New("solcheck: malformed expression")

	// ErrUnknownLabel means a direction label outside {a,b,c}
	ErrUnknownLabel = errors.New("solcheck: unknown label")

	// ErrDimensionExceeded means n or k is beyond the configured capacity
	ErrDimensionExceeded = errors.New("solcheck: dimension exceeded")
)

// ParseErrorKind classifies a ParseError
type ParseErrorKind int

// Parse error kinds, one per sentinel
const (
	TokenCountMismatch ParseErrorKind = iota + 1
	InvalidNumber
	MalformedExpression
	UnknownLabel
)

var kindSentinels = map[ParseErrorKind]error{
	TokenCountMismatch:  ErrTokenCountMismatch,
	InvalidNumber:       ErrInvalidNumber,
	MalformedExpression: ErrMalformedExpression,
	UnknownLabel:        ErrUnknownLabel,
}

func (k ParseErrorKind) String() string {
	switch k {
	case TokenCountMismatch:
		return "TokenCountMismatch"
	case InvalidNumber:
		return "InvalidNumber"
	case MalformedExpression:
		return "MalformedExpression"
	case UnknownLabel:
		return "UnknownLabel"
	default:
		return "Unknown"
	}
}

// ParseError is the typed failure returned by the solution and vector parsers
type ParseError struct {
	Kind  ParseErrorKind
	Pos   int    // byte offset into the input, -1 when not tied to a position
	Token string // offending token, if any
	Msg   string
}

// NewParseError builds a ParseError
func NewParseError(kind ParseErrorKind, pos int, token, msg string) *ParseError {
	return &ParseError{Kind: kind, Pos: pos, Token: token, Msg: msg}
}

func (e *ParseError) Error() string {
	base := kindSentinels[e.Kind]
	if base == nil {
		base = errors.New("solcheck: parse error")
	}
	switch {
	case e.Pos >= 0 && e.Token != "":
		return fmt.Sprintf("%v at offset %d (%q): %s", base, e.Pos, e.Token, e.Msg)
	case e.Pos >= 0:
		return fmt.Sprintf("%v at offset %d: %s", base, e.Pos, e.Msg)
	default:
		return fmt.Sprintf("%v: %s", base, e.Msg)
	}
}

// Unwrap exposes the kind's sentinel for errors.Is
func (e *ParseError) Unwrap() error {
	return kindSentinels[e.Kind]
}

// SystemError ties a failure to the 1-based system index it occurred in
type SystemError struct {
	Index int
	Err   error
}

func (e *SystemError) Error() string {
	return fmt.Sprintf("system #%d: %v", e.Index, e.Err)
}

func (e *SystemError) Unwrap() error {
	return e.Err
}
