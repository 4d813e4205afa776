package ksl

// LowerBound returns an iterator at the first key not less than k, or at
// End if no such key exists.
func (t *Tree[K, V]) LowerBound(k K) Iterator[K, V] {
	return lowerBound(t, k, t.less)
}

// LowerBoundBy probes t with a value of a different type than its own key
// type, using a caller-supplied comparator between key and probe. This is
// a package-level function, not a Tree method, because Go methods on a
// generic type cannot introduce additional type parameters — exactly the
// "second variant... useful for range-keys probed by a point" spec calls
// for. less(key, probe) must report whether key sorts before probe,
// mirroring the argument order of the container's own comparator.
func LowerBoundBy[K, V, P any](t *Tree[K, V], probe P, less func(key K, probe P) bool) Iterator[K, V] {
	return lowerBound(t, probe, less)
}

func lowerBound[K, V, P any](t *Tree[K, V], probe P, less func(key K, probe P) bool) Iterator[K, V] {
	b := t.head
	for !b.leaf {
		i := bsearchBy(b, probe, less)
		if i == b.n {
			b = rightmostLeaf(b)
			break
		}
		b = b.kids[i]
	}

	i := bsearchBy(b, probe, less)
	if i == b.n && b.next != nil {
		return Iterator[K, V]{b: b.next, i: 0}
	}
	return Iterator[K, V]{b: b, i: i}
}

// rightmostLeaf fast-forwards down a block's rightmost spine to the last
// leaf. Used when a key exceeds every separator in an internal block,
// which only happens probing past the container's current maximum.
func rightmostLeaf[K, V any](b *block[K, V]) *block[K, V] {
	for !b.leaf {
		b = b.kids[b.n-1]
	}
	return b
}

// bsearchBy returns the smallest index i in [0, b.n] such that
// ¬less(b.keys[i], probe).
func bsearchBy[K, V, P any](b *block[K, V], probe P, less func(key K, probe P) bool) int {
	lo, hi := 0, b.n
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if less(b.keys[mid], probe) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
