package rtr

import (
	"fmt"
	"sync"

	"github.com/rohanthewiz/logger"
)

// Router maps patterns to handlers of any type.
//
// Routes are meant to be registered up front and then looked up from
// many goroutines. Registration at runtime is still safe: Add, Remove
// and Map take an exclusive lock while lookups share a read lock.
// Freeze turns the router read-only.
type Router[T any] struct {
	mu     sync.RWMutex
	tree   Tree
	hash   *HashIndex
	routes []route[T] // indexed by RouteID
	frozen bool
}

// route is one entry of the handler table.
// Replaced or removed entries stay in the table so RouteIDs remain stable.
type route[T any] struct {
	pattern Pattern
	handler T
	live    bool
}

// New creates an empty router.
func New[T any]() *Router[T] {
	return &Router[T]{hash: NewHashIndex()}
}

// Add compiles the pattern and registers the handler for it.
// The returned RouteID is the index of the registration.
// A rejected pattern leaves the router untouched; the error is a *ParseError.
//
// Registering a pattern with the same shape as an earlier one
// (e.g. /users/:id after /users/:uid) replaces it.
func (router *Router[T]) Add(pattern string, handler T) (RouteID, error) {
	p, err := Parse(pattern)
	if err != nil {
		return 0, err
	}

	router.mu.Lock()
	defer router.mu.Unlock()

	if router.frozen {
		return 0, ErrFrozen
	}

	p.ID = RouteID(len(router.routes))

	if prev, ok := router.tree.Find(p); ok {
		old := router.routes[prev].pattern
		router.routes[prev].live = false

		if old.String() != p.String() {
			logger.Warn("Route replaced by pattern with different capture names",
				"previous", old.Raw, "pattern", p.Raw)
		}
	}

	router.routes = append(router.routes, route[T]{pattern: p, handler: handler, live: true})
	router.tree.Insert(p)
	router.hash.Add(p)
	return p.ID, nil
}

// MustAdd is like Add but panics if the pattern is rejected.
func (router *Router[T]) MustAdd(pattern string, handler T) RouteID {
	id, err := router.Add(pattern, handler)
	if err != nil {
		panic(err)
	}
	return id
}

// Remove unregisters the route with the same shape as pattern.
// Returns false if the pattern is invalid, not registered, or the router is frozen.
func (router *Router[T]) Remove(pattern string) bool {
	p, err := Parse(pattern)
	if err != nil {
		return false
	}

	router.mu.Lock()
	defer router.mu.Unlock()

	if router.frozen {
		return false
	}

	id, ok := router.tree.Find(p)
	if !ok {
		return false
	}

	router.tree.Remove(p)
	router.hash.Remove(router.routes[id].pattern)
	router.routes[id].live = false
	return true
}

// Freeze makes the router read-only. Later calls to Add fail with ErrFrozen.
func (router *Router[T]) Freeze() {
	router.mu.Lock()
	router.frozen = true
	router.mu.Unlock()
}

// Recognize finds the route matching path.
// The bool is false when nothing matches.
func (router *Router[T]) Recognize(path string) (Match, bool) {
	router.mu.RLock()
	defer router.mu.RUnlock()

	// Try exact static match first
	if id, ok := router.hash.Lookup(path); ok {
		return Match{Route: id}, true
	}

	return router.tree.Recognize(path)
}

// Lookup finds the handler and parameters for the given path.
func (router *Router[T]) Lookup(path string) (T, Params, bool) {
	m, ok := router.Recognize(path)
	if !ok {
		var empty T
		return empty, nil, false
	}

	router.mu.RLock()
	handler := router.routes[m.Route].handler
	router.mu.RUnlock()

	return handler, m.Params, true
}

// LookupNoAlloc finds the handler for the given path and passes every capture
// to addParameter instead of collecting them into a slice.
func (router *Router[T]) LookupNoAlloc(path string, addParameter func(key string, value string)) (T, bool) {
	router.mu.RLock()
	defer router.mu.RUnlock()

	id, ok := router.hash.Lookup(path)
	if !ok {
		id, ok = router.tree.RecognizeFunc(path, addParameter)
	}

	if !ok {
		var empty T
		return empty, false
	}

	return router.routes[id].handler, true
}

// Handler returns the handler registered under id.
// Replaced and removed routes report false.
func (router *Router[T]) Handler(id RouteID) (T, bool) {
	router.mu.RLock()
	defer router.mu.RUnlock()

	if int(id) < 0 || int(id) >= len(router.routes) || !router.routes[id].live {
		var empty T
		return empty, false
	}
	return router.routes[id].handler, true
}

// Pattern returns the compiled pattern registered under id.
func (router *Router[T]) Pattern(id RouteID) (Pattern, bool) {
	router.mu.RLock()
	defer router.mu.RUnlock()

	if int(id) < 0 || int(id) >= len(router.routes) || !router.routes[id].live {
		return Pattern{}, false
	}
	return router.routes[id].pattern, true
}

// Len returns the number of live routes.
func (router *Router[T]) Len() int {
	router.mu.RLock()
	defer router.mu.RUnlock()
	return router.tree.Len()
}

// Map binds all handlers to a new one provided by the callback.
//
// Use cases:
//   - Adding a middleware wrapper to all routes
//   - Adding debugging or monitoring
func (router *Router[T]) Map(transform func(T) T) {
	router.mu.Lock()
	defer router.mu.Unlock()

	for i := range router.routes {
		if router.routes[i].live {
			router.routes[i].handler = transform(router.routes[i].handler)
		}
	}
}

// ListRoutes returns the live routes in registration order.
func (router *Router[T]) ListRoutes() (routes []RouteList) {
	router.mu.RLock()
	defer router.mu.RUnlock()

	for _, r := range router.routes {
		if !r.live {
			continue
		}
		routes = append(routes, RouteList{
			Route:      r.pattern.ID,
			Pattern:    r.pattern.String(),
			HandlerRef: fmt.Sprintf("%v", r.handler),
		})
	}
	return
}
