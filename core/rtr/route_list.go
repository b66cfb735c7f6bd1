package rtr

// RouteList represents a registered route for debugging and inspection purposes.
//
// Fields:
//   - Route: the RouteID assigned at registration
//   - Pattern: the normalized pattern (e.g., "/users/:id")
//   - HandlerRef: String representation of the handler (for debugging)
//
// This is primarily used for:
//   - Route table visualization
//   - Debugging route conflicts
//   - Testing route registration
type RouteList struct {
	Route      RouteID
	Pattern    string
	HandlerRef string
}
