package ksl

import "ksl/compar"

// UpdateKey replaces the key currently identified by old with new.
// Precondition: old is present, and new preserves the container's
// ordering relative to the neighbors of the node being renamed — the
// caller guarantees the update is order-preserving. If new would reorder
// the container, behavior is undefined; UpdateKey does not check for it.
//
// The iterator pointing at the renamed node remains valid and still
// denotes the same node, now holding new.
func (t *Tree[K, V]) UpdateKey(old, new K) Iterator[K, V] {
	b := t.head
	for !b.leaf {
		i := bsearchBy(b, old, t.less)
		assertf(i < b.n, "UpdateKey: old key not found while descending")

		if compar.Equal(compar.Less[K](t.less), b.keys[i], old) || t.less(b.keys[i], new) {
			b.keys[i] = new
		}
		b = b.kids[i]
	}

	i := bsearchBy(b, old, t.less)
	assertf(i < b.n && compar.Equal(compar.Less[K](t.less), b.keys[i], old), "UpdateKey: old key not present in leaf")
	b.keys[i] = new

	return Iterator[K, V]{b: b, i: i}
}
