package rtr

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented view of the trie, one node per line.
// Terminal nodes show their pattern and handler.
//
// Example:
//
//	/
//	  users  → #0 /users (Users)
//	    new  → #1 /users/new (New user)
//	    :    → #2 /users/:id (User)
func (router *Router[T]) Dump(w io.Writer) error {
	router.mu.RLock()
	defer router.mu.RUnlock()

	var err error
	router.tree.root.each(nil, func(segs []Segment, node *Node) {
		if err != nil {
			return
		}

		label := "/"
		if len(segs) > 0 {
			label = nodeLabel(segs[len(segs)-1])
		}

		line := strings.Repeat("  ", len(segs)) + label
		if node.terminal {
			r := router.routes[node.route]
			line += fmt.Sprintf("  → #%d %s (%v)", node.route, r.pattern.String(), r.handler)
		}

		_, err = fmt.Fprintln(w, line)
	})
	return err
}

func nodeLabel(seg Segment) string {
	switch seg.Kind {
	case Dynamic:
		return ":"
	case Wildcard:
		return "*"
	default:
		return seg.Text
	}
}
