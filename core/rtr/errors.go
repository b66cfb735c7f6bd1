package rtr

import (
	"errors"
	"strconv"
)

// Parse error kinds. A *ParseError unwraps to exactly one of these,
// so callers can test with errors.Is.
var (
	ErrEmptySegment         = errors.New("empty segment")
	ErrWildcardNotLast      = errors.New("wildcard segment must be last")
	ErrDuplicateCaptureName = errors.New("duplicate capture name")
	ErrEmptyCaptureName     = errors.New("empty capture name")
)

// ErrFrozen is returned when a frozen router is asked to change its routes.
var ErrFrozen = errors.New("router is frozen")

// ParseError reports why a pattern was rejected.
// Index is the zero-based position of the offending segment
// among the pattern's slash-delimited parts.
type ParseError struct {
	Kind    error
	Pattern string
	Segment string
	Index   int
}

func (e *ParseError) Error() string {
	msg := "invalid pattern " + strconv.Quote(e.Pattern) + ": " + e.Kind.Error()
	if e.Segment != "" {
		msg += " " + strconv.Quote(e.Segment)
	}
	return msg + " at segment " + strconv.Itoa(e.Index)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}
