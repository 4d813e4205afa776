package ksl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// S5: lower-bound edge cases.
func TestLowerBoundEdges(t *testing.T) {
	tr := New[int, string](intLess)
	tr.Insert(10, "ten")
	tr.Insert(20, "twenty")
	tr.Insert(30, "thirty")

	it := tr.LowerBound(5)
	assert.True(t, it.Valid())
	assert.Equal(t, 10, it.Key())

	it = tr.LowerBound(10)
	assert.True(t, it.Valid())
	assert.Equal(t, 10, it.Key())

	it = tr.LowerBound(25)
	assert.True(t, it.Valid())
	assert.Equal(t, 30, it.Key())

	it = tr.LowerBound(31)
	assert.False(t, it.Valid())
}

func TestLowerBoundAcrossBlocks(t *testing.T) {
	// MaxNBLK*3 keys span several leaf blocks.
	n := MaxNBLK * 3
	tr := New[int, int](intLess)
	for i := 0; i < n; i++ {
		tr.Insert(i*10, i)
	}

	for i := 0; i < n-1; i++ {
		it := tr.LowerBound(i*10 + 1)
		assert.True(t, it.Valid())
		assert.Equal(t, (i+1)*10, it.Key())
	}
}

func TestLowerBoundStableAcrossUpdateKey(t *testing.T) {
	// property 7: lower_bound(k) returns the same position before and
	// after order-preserving update_key calls.
	tr := New[int, string](intLess)
	for i := 0; i < 30; i += 3 {
		tr.Insert(i, "")
	}

	before := tr.LowerBound(15)
	beforeKey := before.Key()

	// Bump a key that stays strictly between its neighbors.
	tr.UpdateKey(12, 13)
	checkInvariants(t, tr)

	after := tr.LowerBound(15)
	assert.Equal(t, beforeKey, after.Key())
}

func TestLowerBoundByPointInRange(t *testing.T) {
	type rng struct{ lo, hi int }
	less := func(r rng, probe int) bool { return r.hi <= probe }

	tr := New[rng, string](func(a, b rng) bool { return a.hi < b.hi })
	tr.Insert(rng{0, 10}, "a")
	tr.Insert(rng{10, 20}, "b")
	tr.Insert(rng{20, 30}, "c")

	it := LowerBoundBy[rng, string, int](tr, 15, less)
	assert.True(t, it.Valid())
	assert.Equal(t, rng{10, 20}, it.Key())
}
