package ksl

// NodeKind identifies which shape Visit was called for, since block's
// tagged-variant layout is not itself exported.
type NodeKind int

const (
	// KindLeaf marks a block holding keys and values directly.
	KindLeaf NodeKind = iota
	// KindInternal marks a block holding keys and child pointers.
	KindInternal
)

// Visit describes a single block for a diagnostic walk: its depth from
// the head (0-based), whether it is a leaf or internal block, its
// occupancy, and its keys in order (the stored keys of a leaf, the
// separator keys of an internal block). Walk never exposes *block
// itself, so callers outside the package (kslfmt, benchmarks) can only
// read the shape of the tree, never mutate it.
type Visit[K any] struct {
	Depth   int
	Kind    NodeKind
	N       int
	Keys    []K
	IsRoot  bool
	NumKids int
}

// Walk performs a pre-order traversal of the tree's block structure,
// calling visit once per block. It exists purely for diagnostics
// (kslfmt's pretty-printer, used by kslbench's -print flag) and is not used
// by any core operation; the source's block layout has no equivalent
// public introspection, so this is new surface grounded on the
// teacher's own PrettyPrint/printNode walk.
func (t *Tree[K, V]) Walk(visit func(v Visit[K])) {
	walkBlock(t.head, 0, true, visit)
}

func walkBlock[K, V any](b *block[K, V], depth int, isRoot bool, visit func(v Visit[K])) {
	if b == nil {
		return
	}
	kind := KindInternal
	numKids := 0
	if b.leaf {
		kind = KindLeaf
	} else {
		numKids = b.n
	}
	keys := make([]K, b.n)
	copy(keys, b.keys[:b.n])
	visit(Visit[K]{Depth: depth, Kind: kind, N: b.n, Keys: keys, IsRoot: isRoot, NumKids: numKids})

	if !b.leaf {
		for i := 0; i < b.n; i++ {
			walkBlock(b.kids[i], depth+1, false, visit)
		}
	}
}
