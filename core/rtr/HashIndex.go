package rtr

import (
	"strings"

	"github.com/rohanthewiz/routerec/consts"
)

// HashIndex is a fast lookup table for fully static patterns.
// Keys are the pattern with one leading and one trailing slash removed,
// which is also how a request path is trimmed before lookup,
// so "/blog/post" and "/blog/post/" share the key "blog/post".
//
// A static pattern that matches the whole path is always the winner
// of the static-first tree walk, so consulting HashIndex first
// never changes the result of a lookup.
type HashIndex struct {
	routes map[string]RouteID
}

// NewHashIndex creates an empty index.
// It is important to use this function when a new index is needed.
func NewHashIndex() *HashIndex {
	return &HashIndex{routes: make(map[string]RouteID, 16)}
}

// Add registers a static pattern. Non-static patterns are ignored.
func (hi *HashIndex) Add(pattern Pattern) {
	if !pattern.IsStatic() {
		return
	}
	hi.routes[hashKey(pattern)] = pattern.ID
}

// Remove drops a static pattern from the index.
func (hi *HashIndex) Remove(pattern Pattern) {
	if !pattern.IsStatic() {
		return
	}
	delete(hi.routes, hashKey(pattern))
}

// Lookup finds the route for the given request path.
func (hi *HashIndex) Lookup(path string) (RouteID, bool) {
	path = strings.TrimPrefix(path, consts.FwdSlash)
	path = strings.TrimSuffix(path, consts.FwdSlash)
	id, ok := hi.routes[path]
	return id, ok
}

// Len returns the number of indexed patterns.
func (hi *HashIndex) Len() int {
	return len(hi.routes)
}

func hashKey(pattern Pattern) string {
	texts := make([]string, len(pattern.Segments))
	for i, seg := range pattern.Segments {
		texts[i] = seg.Text
	}
	return strings.Join(texts, consts.FwdSlash)
}
