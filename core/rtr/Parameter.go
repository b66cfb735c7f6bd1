package rtr

// Parameter is one capture extracted from a dynamic or wildcard segment.
//
// Example:
//
//	Route: /user/:id/posts/:postId
//	URL:   /user/123/posts/456
//	Result: Params{{Key: "id", Value: "123"}, {Key: "postId", Value: "456"}}
type Parameter struct {
	Key   string
	Value string
}

// Params is an ordered list of captures.
// Order follows the dynamic and wildcard segments of the matched pattern.
type Params []Parameter

// Get returns the value captured under key.
func (params Params) Get(key string) (string, bool) {
	for _, p := range params {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Value returns the value captured under key, or "" if there is none.
func (params Params) Value(key string) string {
	v, _ := params.Get(key)
	return v
}

// Keys returns the capture names in order.
func (params Params) Keys() []string {
	keys := make([]string, len(params))
	for i, p := range params {
		keys[i] = p.Key
	}
	return keys
}

// Map copies the captures into a map.
func (params Params) Map() map[string]string {
	m := make(map[string]string, len(params))
	for _, p := range params {
		m[p.Key] = p.Value
	}
	return m
}
