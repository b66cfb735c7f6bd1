package rtr_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/routerec/core/rtr"
)

// TestConcurrentLookupsDuringRegistration exercises the read/write locking;
// run with -race to be meaningful.
func TestConcurrentLookupsDuringRegistration(t *testing.T) {
	r := rtr.New[int]()
	r.MustAdd("/users/:id", -1)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			r.MustAdd("/static/"+strconv.Itoa(i), i)
		}
	}()

	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				data, params, ok := r.Lookup("/users/" + strconv.Itoa(i))
				if !ok || data != -1 || params.Value("id") != strconv.Itoa(i) {
					t.Errorf("lookup %d: got %d %v %v", i, data, params, ok)
					return
				}
			}
		}()
	}

	wg.Wait()

	data, _, ok := r.Lookup("/static/199")
	assert.True(t, ok)
	assert.Equal(t, data, 199)
	assert.Equal(t, r.Len(), 201)
}

func TestFrozenTreeSharedReads(t *testing.T) {
	var tree rtr.Tree
	insert(&tree, "/a/:x/c", "/a/b/d", "/a/*rest")

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				m, ok := tree.Recognize("/a/b/c")
				if !ok || m.Route != 0 || m.Params.Value("x") != "b" {
					t.Errorf("unexpected match %v %v", m, ok)
					return
				}
			}
		}()
	}
	wg.Wait()
}
