package rtr_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/routerec/core/rtr"
)

// insert parses and inserts patterns with IDs in slice order.
func insert(tree *rtr.Tree, patterns ...string) {
	for i, pattern := range patterns {
		p := rtr.MustParse(pattern)
		p.ID = rtr.RouteID(i)
		tree.Insert(p)
	}
}

func TestTreeStructure(t *testing.T) {
	var tree rtr.Tree
	insert(&tree, "/users", "/users/new", "/users/:id", "/users/:uid/posts", "/files/*path")

	root := tree.Root()
	_, ok := root.Terminal()
	assert.False(t, ok)
	assert.DeepEqual(t, root.StaticKeys(), []string{"files", "users"})

	users := root.Static("users")
	assert.True(t, users != nil)
	id, ok := users.Terminal()
	assert.True(t, ok)
	assert.Equal(t, id, rtr.RouteID(0))

	// :id and :uid share the single dynamic child
	dyn := users.Dynamic()
	id, ok = dyn.Terminal()
	assert.True(t, ok)
	assert.Equal(t, id, rtr.RouteID(2))
	id, _ = dyn.Static("posts").Terminal()
	assert.Equal(t, id, rtr.RouteID(3))

	wild := root.Static("files").Wildcard()
	id, ok = wild.Terminal()
	assert.True(t, ok)
	assert.Equal(t, id, rtr.RouteID(4))
	assert.Equal(t, len(wild.StaticKeys()), 0)
	assert.True(t, wild.Dynamic() == nil)

	assert.Equal(t, tree.Len(), 5)
}

func TestTreeRecognize(t *testing.T) {
	var tree rtr.Tree
	insert(&tree, "/users/:id", "/users/new", "/files/*path")

	m, ok := rtr.Recognize("/users/42", &tree)
	assert.True(t, ok)
	assert.Equal(t, m.Route, rtr.RouteID(0))
	assert.Equal(t, m.Params.Value("id"), "42")

	m, ok = tree.Recognize("/users/new")
	assert.True(t, ok)
	assert.Equal(t, m.Route, rtr.RouteID(1))
	assert.Equal(t, len(m.Params), 0)

	m, ok = tree.Recognize("/files/a/b/c")
	assert.True(t, ok)
	assert.Equal(t, m.Route, rtr.RouteID(2))
	assert.DeepEqual(t, m.Params, rtr.Params{{Key: "path", Value: "a/b/c"}})

	_, ok = tree.Recognize("/users")
	assert.False(t, ok)
}

func TestTreeRecognizeFunc(t *testing.T) {
	var tree rtr.Tree
	insert(&tree, "/a/:x/:y")

	var got []string
	id, ok := tree.RecognizeFunc("/a/1/2", func(key, value string) {
		got = append(got, key+"="+value)
	})
	assert.True(t, ok)
	assert.Equal(t, id, rtr.RouteID(0))
	assert.DeepEqual(t, got, []string{"x=1", "y=2"})
}

func TestTreeInsertOverwrites(t *testing.T) {
	var tree rtr.Tree
	p := rtr.MustParse("/a/:x")
	p.ID = 1
	tree.Insert(p)

	q := rtr.MustParse("/a/:y")
	q.ID = 2
	assert.Equal(t, tree.Insert(q), rtr.RouteID(2))

	id, ok := tree.Find(p)
	assert.True(t, ok)
	assert.Equal(t, id, rtr.RouteID(2))
	assert.Equal(t, tree.Len(), 1)

	m, _ := tree.Recognize("/a/v")
	assert.Equal(t, m.Params[0].Key, "y")
}

func TestTreeRemovePrunes(t *testing.T) {
	var tree rtr.Tree
	insert(&tree, "/a/b/c", "/a/:x/d", "/a/*rest")

	assert.True(t, tree.Remove(rtr.MustParse("/a/b/c")))
	assert.True(t, tree.Root().Static("a").Static("b") == nil)

	assert.True(t, tree.Remove(rtr.MustParse("/a/:anything/d")))
	assert.True(t, tree.Root().Static("a").Dynamic() == nil)

	assert.False(t, tree.Remove(rtr.MustParse("/a")))
	assert.True(t, tree.Remove(rtr.MustParse("/a/*rest")))
	assert.True(t, tree.Root().Static("a") == nil)
	assert.Equal(t, tree.Len(), 0)
}

func TestTreeWalk(t *testing.T) {
	var tree rtr.Tree
	insert(&tree, "/b", "/a/:x", "/a/*y", "/a/z", "/")

	var ids []rtr.RouteID
	var shapes []string
	tree.Walk(func(segs []rtr.Segment, id rtr.RouteID) {
		ids = append(ids, id)
		shapes = append(shapes, rtr.Pattern{Segments: segs}.String())
	})

	assert.DeepEqual(t, ids, []rtr.RouteID{4, 3, 1, 2, 0})
	assert.DeepEqual(t, shapes, []string{"/", "/a/z", "/a/:", "/a/*", "/b"})
}

func TestTreeIsReadOnlyDuringLookup(t *testing.T) {
	var tree rtr.Tree
	insert(&tree, "/a/:x/c", "/a/b/d")

	before := tree.Len()
	for _, path := range []string{"/a/b/d", "/a/b/c", "/a/q", "/a/b", "/zzz"} {
		tree.Recognize(path)
	}
	assert.Equal(t, tree.Len(), before)
	assert.True(t, tree.Root().Static("a").Static("zzz") == nil)
	assert.True(t, tree.Root().Static("zzz") == nil)
}
