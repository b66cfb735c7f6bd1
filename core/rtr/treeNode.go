package rtr

import (
	"slices"
)

// Node is a node of the segment trie.
// Each node owns its children; there are no back references.
// A node can have three kinds of children which the matcher
// explores in this order: static (keyed by exact literal text),
// one dynamic child, and one wildcard child.
//
// Example tree for /users, /users/new, /users/:id/posts, /files/*path:
//
//	root
//	 ├── "users" (terminal)
//	 │    ├── "new" (terminal)
//	 │    └── :    (dynamic)
//	 │         └── "posts" (terminal)
//	 └── "files"
//	      └── *    (wildcard, terminal)
type Node struct {
	statics  map[string]*Node // static children by literal text
	dynamic  *Node            // single dynamic child
	wildcard *Node            // single wildcard child, never has children
	route    RouteID          // terminal payload, valid only if terminal is set
	names    []string         // capture names of the pattern ending here
	terminal bool
}

// Static returns the static child for the given literal text, or nil.
func (node *Node) Static(text string) *Node {
	return node.statics[text]
}

// Dynamic returns the dynamic child, or nil.
func (node *Node) Dynamic() *Node {
	return node.dynamic
}

// Wildcard returns the wildcard child, or nil.
func (node *Node) Wildcard() *Node {
	return node.wildcard
}

// Terminal returns the route that ends exactly at this node.
func (node *Node) Terminal() (RouteID, bool) {
	return node.route, node.terminal
}

// StaticKeys returns the literal keys of the static children in sorted order.
func (node *Node) StaticKeys() []string {
	keys := make([]string, 0, len(node.statics))
	for key := range node.statics {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// child returns the child for the given segment, creating it if needed.
// Dynamic and wildcard children are shared by every pattern that
// reaches this node with a segment of that kind, regardless of capture name.
func (node *Node) child(seg Segment) *Node {
	switch seg.Kind {
	case Dynamic:
		if node.dynamic == nil {
			node.dynamic = &Node{}
		}
		return node.dynamic

	case Wildcard:
		if node.wildcard == nil {
			node.wildcard = &Node{}
		}
		return node.wildcard

	default:
		child := node.statics[seg.Text]
		if child == nil {
			if node.statics == nil {
				node.statics = make(map[string]*Node)
			}
			child = &Node{}
			node.statics[seg.Text] = child
		}
		return child
	}
}

// existing returns the child for the given segment without creating it.
func (node *Node) existing(seg Segment) *Node {
	switch seg.Kind {
	case Dynamic:
		return node.dynamic
	case Wildcard:
		return node.wildcard
	default:
		return node.statics[seg.Text]
	}
}

// drop detaches the child for the given segment.
func (node *Node) drop(seg Segment) {
	switch seg.Kind {
	case Dynamic:
		node.dynamic = nil
	case Wildcard:
		node.wildcard = nil
	default:
		delete(node.statics, seg.Text)
		if len(node.statics) == 0 {
			node.statics = nil
		}
	}
}

// empty reports whether the node has neither payload nor children.
func (node *Node) empty() bool {
	return !node.terminal && len(node.statics) == 0 && node.dynamic == nil && node.wildcard == nil
}

// remove clears the terminal reached by segs and prunes
// every node that becomes empty on the way back up.
// Returns whether a terminal was cleared.
func (node *Node) remove(segs []Segment) bool {
	if len(segs) == 0 {
		if !node.terminal {
			return false
		}
		node.terminal = false
		node.route = 0
		node.names = nil
		return true
	}

	next := node.existing(segs[0])
	if next == nil || !next.remove(segs[1:]) {
		return false
	}

	if next.empty() {
		node.drop(segs[0])
	}
	return true
}

// each traverses the subtree depth-first and calls callback on every node
// together with the segments leading to it.
//
// Traversal order:
//  1. Current node
//  2. Static children, sorted by literal text
//  3. Dynamic child (if any)
//  4. Wildcard child (if any)
//
// Dynamic and wildcard segments are reported with an empty capture name
// since names live on patterns, not on nodes.
func (node *Node) each(prefix []Segment, callback func([]Segment, *Node)) {
	callback(prefix, node)
	prefix = slices.Clip(prefix) // siblings must not share a backing array

	for _, key := range node.StaticKeys() {
		node.statics[key].each(append(prefix, Segment{Kind: Literal, Text: key}), callback)
	}

	if node.dynamic != nil {
		node.dynamic.each(append(prefix, Segment{Kind: Dynamic}), callback)
	}

	if node.wildcard != nil {
		node.wildcard.each(append(prefix, Segment{Kind: Wildcard}), callback)
	}
}
