// Package ksl implements a keyed skip list: an ordered, array-packed
// B+-tree-shaped associative container tuned for the small-to-medium,
// single-threaded key sets a QUIC/HTTP3 stack keeps around (stream IDs,
// byte ranges, packet numbers). Every key lives in a leaf block; leaves
// are chained bidirectionally for O(1) in-order traversal; internal
// blocks hold separators equal to the maximum key of each child subtree.
//
// Inserts split full blocks and removes merge/shift underflowing blocks
// on the way down, so no second, upward-propagating pass is ever needed.
package ksl

import "ksl/internal/assert"

var assertf = assert.That

// Tree is an ordered map from K to V, comparator-driven rather than
// hash-driven. The zero value is not usable; construct one with New.
type Tree[K, V any] struct {
	head  *block[K, V]
	front *block[K, V]
	back  *block[K, V]
	n     int
	less  func(a, b K) bool
}

// New creates an empty tree ordered by less, a one-sided comparator
// (less(a, b) reports whether a sorts strictly before b; equality is
// never asked for directly).
func New[K, V any](less func(a, b K) bool) *Tree[K, V] {
	root := &block[K, V]{leaf: true}
	return &Tree[K, V]{head: root, front: root, back: root, less: less}
}

// Len returns the total number of keys stored.
func (t *Tree[K, V]) Len() int {
	return t.n
}

// Clear drops every entry and resets the tree to a single empty leaf root.
func (t *Tree[K, V]) Clear() {
	root := &block[K, V]{leaf: true}
	t.head, t.front, t.back = root, root, root
	t.n = 0
}

// Free releases the tree's own references to its blocks. Go's garbage
// collector, not a caller-provided allocator, owns block deallocation, so
// this is not a per-block free loop — it exists for API symmetry with the
// source design and to make the tree's blocks collectible immediately
// even if the Tree value itself outlives them.
func (t *Tree[K, V]) Free() {
	t.head, t.front, t.back = nil, nil, nil
	t.n = 0
}

// Begin returns an iterator at the first (smallest) key, or at End if the
// tree is empty.
func (t *Tree[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{b: t.front, i: 0}
}

// End returns the one-past-the-end iterator.
func (t *Tree[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{b: t.back, i: t.back.n}
}
