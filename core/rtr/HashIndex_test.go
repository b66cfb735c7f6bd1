package rtr_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/routerec/core/rtr"
)

func TestHashIndex(t *testing.T) {
	hi := rtr.NewHashIndex()

	p := rtr.MustParse("/blog/post")
	p.ID = 3
	hi.Add(p)
	hi.Add(rtr.MustParse("/blog/:post")) // ignored

	assert.Equal(t, hi.Len(), 1)

	for _, path := range []string{"/blog/post", "blog/post", "/blog/post/"} {
		id, ok := hi.Lookup(path)
		assert.True(t, ok)
		assert.Equal(t, id, rtr.RouteID(3))
	}

	_, ok := hi.Lookup("/blog//post")
	assert.False(t, ok)

	hi.Remove(p)
	_, ok = hi.Lookup("/blog/post")
	assert.False(t, ok)
}
