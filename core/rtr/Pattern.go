package rtr

import (
	"strings"

	"github.com/rohanthewiz/routerec/consts"
)

// RouteID identifies a registered route.
// The tree stores RouteIDs as terminal payloads; Router maps them to handlers.
type RouteID int

// Pattern is a compiled route pattern.
//
// Example:
//
//	Raw:      "/users/:id/files/*path"
//	Segments: [users] [:id] [files] [*path]
type Pattern struct {
	Raw      string    // pattern as registered, for diagnostics
	Segments []Segment // typed segments in order
	ID       RouteID   // assigned by the caller or the Router
}

// Parse compiles a pattern string into typed segments.
// A single leading and a single trailing slash are ignored,
// so "/users/:id" and "users/:id/" have the same shape.
// Interior empty segments ("/a//b") are rejected, not collapsed.
func Parse(pattern string) (Pattern, error) {
	parts, emptyAt := splitPath(pattern)
	if emptyAt >= 0 {
		return Pattern{}, &ParseError{Kind: ErrEmptySegment, Pattern: pattern, Index: emptyAt}
	}

	p := Pattern{Raw: pattern, Segments: make([]Segment, 0, len(parts))}
	seen := make(map[string]struct{}, len(parts))

	for i, part := range parts {
		seg := classify(part)

		if seg.Kind != Literal {
			if seg.Text == "" {
				return Pattern{}, &ParseError{Kind: ErrEmptyCaptureName, Pattern: pattern, Segment: part, Index: i}
			}
			if _, dup := seen[seg.Text]; dup {
				return Pattern{}, &ParseError{Kind: ErrDuplicateCaptureName, Pattern: pattern, Segment: part, Index: i}
			}
			seen[seg.Text] = struct{}{}
		}

		if seg.Kind == Wildcard && i != len(parts)-1 {
			return Pattern{}, &ParseError{Kind: ErrWildcardNotLast, Pattern: pattern, Segment: part, Index: i}
		}

		p.Segments = append(p.Segments, seg)
	}

	return p, nil
}

// MustParse is like Parse but panics on error.
// Intended for patterns known at compile time.
func MustParse(pattern string) Pattern {
	p, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// Names returns the capture names of the pattern in segment order.
func (p Pattern) Names() []string {
	var names []string
	for _, seg := range p.Segments {
		if seg.Kind != Literal {
			names = append(names, seg.Text)
		}
	}
	return names
}

// IsStatic reports whether every segment is a literal.
func (p Pattern) IsStatic() bool {
	for _, seg := range p.Segments {
		if seg.Kind != Literal {
			return false
		}
	}
	return true
}

// String returns the normalized form of the pattern: a leading slash
// followed by the segments joined with slashes.
func (p Pattern) String() string {
	var sb strings.Builder
	if len(p.Segments) == 0 {
		return consts.FwdSlash
	}
	for _, seg := range p.Segments {
		sb.WriteByte(consts.RuneFwdSlash)
		sb.WriteString(seg.String())
	}
	return sb.String()
}

// splitPath splits s on '/' after dropping one leading and one trailing slash.
// If an interior segment is empty its index is returned as emptyAt, otherwise -1.
// "" and "/" both yield zero segments.
func splitPath(s string) (parts []string, emptyAt int) {
	s = strings.TrimPrefix(s, consts.FwdSlash)
	s = strings.TrimSuffix(s, consts.FwdSlash)
	if s == "" {
		return nil, -1
	}

	parts = strings.Split(s, consts.FwdSlash)
	for i, part := range parts {
		if part == "" {
			return parts, i
		}
	}
	return parts, -1
}
