package rtr

import (
	"github.com/rohanthewiz/routerec/consts"
)

// SegmentKind classifies one slash-delimited unit of a pattern.
// The set is closed: every switch over it handles all three kinds.
type SegmentKind uint8

const (
	// Literal matches only its exact text.
	Literal SegmentKind = iota
	// Dynamic matches any single path segment and binds it to a name (e.g. :id).
	Dynamic
	// Wildcard binds the remaining path tail, one or more segments (e.g. *filepath).
	// Only legal as the last segment of a pattern.
	Wildcard
)

func (k SegmentKind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Dynamic:
		return "dynamic"
	case Wildcard:
		return "wildcard"
	default:
		return "unknown"
	}
}

// Segment is a parsed unit of a pattern.
// Text holds the literal text for Literal segments
// and the capture name for Dynamic and Wildcard segments.
type Segment struct {
	Kind SegmentKind
	Text string
}

// String renders the segment back into pattern syntax.
func (s Segment) String() string {
	switch s.Kind {
	case Dynamic:
		return string(consts.RuneColon) + s.Text
	case Wildcard:
		return string(consts.RuneAsterisk) + s.Text
	default:
		return s.Text
	}
}

// classify turns raw segment text into a Segment.
// The caller guarantees raw is not empty.
func classify(raw string) Segment {
	switch raw[0] {
	case consts.RuneColon:
		return Segment{Kind: Dynamic, Text: raw[1:]}
	case consts.RuneAsterisk:
		return Segment{Kind: Wildcard, Text: raw[1:]}
	default:
		return Segment{Kind: Literal, Text: raw}
	}
}
