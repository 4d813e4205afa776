// Package rangeset is a higher-layer consumer of ksl: the kind of
// bookkeeping a QUIC/HTTP3 stack keeps directly on top of the container
// (spec.md's PURPOSE section calls out "byte ranges, packet numbers" as
// the motivating workload). RangeSet coalesces ACKed packet-number
// ranges (or received stream byte ranges — the shape is the same) into
// a minimal set of non-overlapping, non-adjacent [begin, end) spans,
// keyed by compar.RangeExclusive. That comparator only makes overlapping
// spans collide, so Add probes one unit wider on each side to find
// adjacent spans as well.
package rangeset

import (
	"fmt"

	"github.com/flier/goutil/pkg/opt"

	"ksl"
	"ksl/compar"
)

// RangeSet tracks a coalesced set of half-open integer ranges.
type RangeSet struct {
	tree *ksl.Tree[compar.Range, struct{}]
}

// New returns an empty RangeSet.
func New() *RangeSet {
	return &RangeSet{tree: ksl.New[compar.Range, struct{}](compar.RangeExclusive)}
}

// Add records [begin, end) as received/ACKed, coalescing it with any
// existing range it overlaps or touches.
func (s *RangeSet) Add(begin, end int64) error {
	if begin >= end {
		return fmt.Errorf("rangeset: empty or inverted range [%d, %d)", begin, end)
	}
	r := compar.Range{Begin: begin, End: end}

	// RangeExclusive treats touching ranges as distinct (only strict
	// overlap collides), so probe one unit wider on each side to pick up
	// adjacency the way a real coalescing ACK-range tracker must.
	probe := compar.Range{Begin: begin - 1, End: end + 1}
	for {
		it := s.tree.LowerBound(probe)
		if !it.Valid() {
			break
		}
		existing := it.Key()
		if existing.Begin > r.End {
			break
		}
		if !touches(existing, r) {
			break
		}
		s.tree.Remove(existing)
		r = union(r, existing)
		probe = compar.Range{Begin: r.Begin - 1, End: r.End + 1}
	}

	s.tree.Insert(r, struct{}{})
	return nil
}

// Covers reports the coalesced range that contains offset, if any.
func (s *RangeSet) Covers(offset int64) opt.Option[compar.Range] {
	it := ksl.LowerBoundBy[compar.Range, struct{}, int64](s.tree, offset, rangeAtOrAfter)
	if !it.Valid() {
		return opt.None[compar.Range]()
	}
	r := it.Key()
	if compar.CoversPoint(r, offset) {
		return opt.Some(r)
	}
	return opt.None[compar.Range]()
}

// Len returns the number of coalesced ranges currently tracked.
func (s *RangeSet) Len() int {
	return s.tree.Len()
}

// Ranges returns the coalesced ranges in ascending order.
func (s *RangeSet) Ranges() []compar.Range {
	out := make([]compar.Range, 0, s.tree.Len())
	for it := s.tree.Begin(); it.Valid(); it.Next() {
		out = append(out, it.Key())
	}
	return out
}

func touches(a, b compar.Range) bool {
	lo, hi := a.Begin, a.End
	if b.Begin > lo {
		lo = b.Begin
	}
	if b.End < hi {
		hi = b.End
	}
	return lo <= hi
}

func union(a, b compar.Range) compar.Range {
	begin, end := a.Begin, a.End
	if b.Begin < begin {
		begin = b.Begin
	}
	if b.End > end {
		end = b.End
	}
	return compar.Range{Begin: begin, End: end}
}

func rangeAtOrAfter(key compar.Range, offset int64) bool {
	return key.End <= offset
}
