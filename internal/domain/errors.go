package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedIdentifier is returned when a line does not have the
	// token-sector[checksum] shape.
	ErrMalformedIdentifier = errors.New("malformed identifier")
	// ErrMalformedSector is returned when the sector id is not an integer.
	ErrMalformedSector = errors.New("malformed sector id")
	// ErrNotFound is returned when no valid room name contains the target.
	ErrNotFound = errors.New("no matching room")
)

// ParseErrorKind classifies a ParseError.
type ParseErrorKind int

const (
	MalformedIdentifier ParseErrorKind = iota
	MalformedSector
)

func (k ParseErrorKind) String() string {
	switch k {
	case MalformedSector:
		return "malformed sector"
	default:
		return "malformed identifier"
	}
}

// ParseError reports a line that could not be turned into a Record.
// Line is 1-based and zero when the input was a single identifier.
type ParseError struct {
	Line   int
	Input  string
	Kind   ParseErrorKind
	Reason string
}

func (e *ParseError) Error() string {
	msg := e.Kind.String()
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s in %q", e.Line, msg, e.Input)
	}
	return fmt.Sprintf("%s in %q", msg, e.Input)
}

// Unwrap maps the kind onto its sentinel so callers can use errors.Is.
func (e *ParseError) Unwrap() error {
	if e.Kind == MalformedSector {
		return ErrMalformedSector
	}
	return ErrMalformedIdentifier
}
