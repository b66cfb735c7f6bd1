package rtr

import (
	"path"
)

// Group registers routes under a common prefix (e.g., /api/v1).
// Groups can be nested to create hierarchical route structures.
type Group[T any] struct {
	// prefix is prepended to every pattern registered through this group
	prefix string
	router *Router[T]
}

// Group creates a route group with the given prefix.
func (router *Router[T]) Group(prefix string) *Group[T] {
	return &Group[T]{prefix: path.Join("/", prefix), router: router}
}

// Group creates a sub-group with an additional prefix.
// Example: api.Group("/users") under /api registers below /api/users.
func (g *Group[T]) Group(prefix string) *Group[T] {
	return &Group[T]{prefix: path.Join(g.prefix, prefix), router: g.router}
}

// Prefix returns the group's prefix.
func (g *Group[T]) Prefix() string {
	return g.prefix
}

// Add registers handler for the pattern below the group prefix.
func (g *Group[T]) Add(pattern string, handler T) (RouteID, error) {
	return g.router.Add(g.join(pattern), handler)
}

// Remove unregisters the pattern below the group prefix.
func (g *Group[T]) Remove(pattern string) bool {
	return g.router.Remove(g.join(pattern))
}

// join concatenates prefix and pattern. path.Join is not used here
// since it would collapse "//" and hide an empty segment from the parser.
func (g *Group[T]) join(pattern string) string {
	if pattern == "" || pattern == "/" {
		return g.prefix
	}
	if g.prefix == "/" {
		if pattern[0] == '/' {
			return pattern
		}
		return "/" + pattern
	}
	if pattern[0] == '/' {
		return g.prefix + pattern
	}
	return g.prefix + "/" + pattern
}
