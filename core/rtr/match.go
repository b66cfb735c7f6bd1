package rtr

import (
	"strings"

	"github.com/rohanthewiz/routerec/consts"
)

// Match is the result of a successful recognition.
// Params values are substrings of the recognized path; a Match
// holds no reference into the tree.
type Match struct {
	Route  RouteID
	Params Params
}

// Recognize finds the route matching path in tree.
// It reports false when no registered pattern matches; that is a normal outcome.
func Recognize(path string, tree *Tree) (Match, bool) {
	return tree.Recognize(path)
}

// Recognize finds the route matching path.
//
// At every node the static child for the current segment is tried first,
// then the dynamic child, then the wildcard child. A branch that cannot
// reach a terminal for the rest of the path falls back to the next one,
// so among all patterns able to match the full path, the one preferring
// static over dynamic over wildcard at the earliest divergence wins.
//
// Example with /a/:x/c and /a/b/d registered:
//
//	path /a/b/d: "b" static → "d" static → terminal, route /a/b/d
//	path /a/b/c: "b" static → no "c" child, backtrack → :x → "c" → terminal
func (tree *Tree) Recognize(path string) (Match, bool) {
	node, values := tree.resolve(path)
	if node == nil {
		return Match{}, false
	}

	m := Match{Route: node.route}
	if len(values) > 0 {
		m.Params = make(Params, len(values))
		for i, v := range values {
			m.Params[i] = Parameter{Key: node.names[i], Value: v}
		}
	}
	return m, true
}

// RecognizeFunc is like Recognize but hands every capture to addParameter
// instead of building a Params slice.
func (tree *Tree) RecognizeFunc(path string, addParameter func(key string, value string)) (RouteID, bool) {
	node, values := tree.resolve(path)
	if node == nil {
		return 0, false
	}

	for i, v := range values {
		addParameter(node.names[i], v)
	}
	return node.route, true
}

// resolve splits the path and runs the matcher from the root.
// Returns the terminal node and the captured values in order.
func (tree *Tree) resolve(path string) (*Node, []string) {
	segs, emptyAt := splitPath(path)
	if emptyAt >= 0 {
		return nil, nil
	}
	return tree.root.match(segs, nil)
}

// match consumes segs starting at node.
// values carries the captures collected so far; a failed branch's
// appends are discarded, so siblings may safely reuse the backing array.
func (node *Node) match(segs []string, values []string) (*Node, []string) {
	if len(segs) == 0 {
		if node.terminal {
			return node, values
		}
		return nil, nil
	}

	// 1. Static
	if child := node.statics[segs[0]]; child != nil {
		if found, captured := child.match(segs[1:], values); found != nil {
			return found, captured
		}
	}

	// 2. Dynamic binds exactly one segment
	if node.dynamic != nil {
		if found, captured := node.dynamic.match(segs[1:], append(values, segs[0])); found != nil {
			return found, captured
		}
	}

	// 3. Wildcard absorbs the rest and ends the walk
	if node.wildcard != nil && node.wildcard.terminal {
		return node.wildcard, append(values, strings.Join(segs, consts.FwdSlash))
	}

	return nil, nil
}
