package rtr

// Tree is a segment trie mapping patterns to route IDs.
// The tree mirrors the textual structure of the registered patterns,
// so lookup cost depends on the number of path segments,
// not on the number of registered routes.
//
// Structure example for /users, /users/new, /users/:id:
//
//	root
//	 └── "users"   (route 0)
//	      ├── "new" (route 1)
//	      └── :     (route 2)
//
// Zero value is ready to use - the root node is embedded, not a pointer.
// A Tree does no locking: insert everything first, then share it
// read-only between goroutines. Router adds the locking for runtime changes.
type Tree struct {
	root Node
	size int
}

// Insert adds the pattern to the tree and returns its route ID.
// Every segment is walked from the root, creating children as needed.
// Inserting a pattern that ends on an existing terminal overwrites
// that terminal's route and capture names (last write wins).
func (tree *Tree) Insert(pattern Pattern) RouteID {
	node := &tree.root

	for _, seg := range pattern.Segments {
		node = node.child(seg)
	}

	if !node.terminal {
		tree.size++
	}

	node.route = pattern.ID
	node.names = pattern.Names()
	node.terminal = true
	return pattern.ID
}

// Find returns the route whose pattern has exactly the shape of the given one,
// without matching. Capture names are ignored: /a/:x and /a/:y have the same shape.
func (tree *Tree) Find(pattern Pattern) (RouteID, bool) {
	node := &tree.root

	for _, seg := range pattern.Segments {
		node = node.existing(seg)
		if node == nil {
			return 0, false
		}
	}

	return node.Terminal()
}

// Remove deletes the route registered for the pattern's shape and prunes
// subtrees left without routes. Returns false if no such route exists.
func (tree *Tree) Remove(pattern Pattern) bool {
	if !tree.root.remove(pattern.Segments) {
		return false
	}
	tree.size--
	return true
}

// Root returns the root node for read-only traversal.
func (tree *Tree) Root() *Node {
	return &tree.root
}

// Len returns the number of terminals in the tree.
func (tree *Tree) Len() int {
	return tree.size
}

// Walk calls fn for every terminal in traversal order
// (static children sorted, then dynamic, then wildcard).
// The segments passed to fn carry no capture names.
func (tree *Tree) Walk(fn func(segs []Segment, id RouteID)) {
	tree.root.each(nil, func(segs []Segment, node *Node) {
		if node.terminal {
			fn(segs, node.route)
		}
	})
}
