package ksl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateKeyLeafOnly(t *testing.T) {
	tr := New[int, string](intLess)
	tr.Insert(1, "a")
	tr.Insert(2, "b")
	tr.Insert(3, "c")

	it := tr.UpdateKey(2, 5)
	assert.True(t, it.Valid())
	assert.Equal(t, 5, it.Key())
	assert.Equal(t, "b", it.Value())

	checkInvariants(t, tr)

	got := tr.LowerBound(5)
	assert.True(t, got.Valid())
	assert.Equal(t, "b", got.Value())
}

func TestUpdateKeyRefreshesSeparators(t *testing.T) {
	tr := New[int, int](intLess)
	for i := 0; i < MaxNBLK*3; i++ {
		tr.Insert(i, i)
	}
	checkInvariants(t, tr)

	// Bump the tree's current maximum key further right: every ancestor
	// separator on the right spine must track the new maximum.
	max := MaxNBLK*3 - 1
	tr.UpdateKey(max, max+1000)
	checkInvariants(t, tr)

	it := tr.LowerBound(max + 1000)
	assert.True(t, it.Valid())
	assert.Equal(t, max+1000, it.Key())
}

func TestUpdateKeyPreservesOtherIterators(t *testing.T) {
	tr := New[int, string](intLess)
	tr.Insert(1, "a")
	tr.Insert(2, "b")
	tr.Insert(3, "c")

	unrelated := tr.LowerBound(1)
	tr.UpdateKey(2, 2) // no-op rename, still order preserving

	assert.True(t, unrelated.Valid())
	assert.Equal(t, 1, unrelated.Key())
}
