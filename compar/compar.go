// Package compar holds the one-sided comparator convention ksl is built
// on, plus the two reference comparators shipped for range-keyed trees:
// range-compar (order by Begin) and range-exclusive-compar (order by
// Begin, but treat overlapping ranges as equivalent so an overlap lookup
// resolves to the covering entry).
//
// A comparator only ever answers "is a strictly less than b"; equality is
// always derived as !Less(a, b) && !Less(b, a). No comparator in this
// package, or accepted by ksl, returns a three-way result.
package compar

// Less reports whether a sorts strictly before b.
type Less[K any] func(a, b K) bool

// Equal derives equality from a one-sided comparator.
func Equal[K any](less Less[K], a, b K) bool {
	return !less(a, b) && !less(b, a)
}

// Range is a half-open [Begin, End) span, the key type both reference
// comparators below operate on.
type Range struct {
	Begin int64
	End   int64
}

// RangeCompare orders ranges by Begin alone; two ranges starting at the
// same Begin are treated as equivalent regardless of End.
func RangeCompare(a, b Range) bool {
	return a.Begin < b.Begin
}

// RangeExclusive orders ranges by Begin, additionally treating any two
// overlapping ranges as equivalent: max(a.Begin, b.Begin) < min(a.End, b.End).
// A lookup keyed by a narrow probe range resolves to whichever stored
// range covers it.
func RangeExclusive(a, b Range) bool {
	if overlaps(a, b) {
		return false
	}
	return a.Begin < b.Begin
}

func overlaps(a, b Range) bool {
	lo := a.Begin
	if b.Begin > lo {
		lo = b.Begin
	}
	hi := a.End
	if b.End < hi {
		hi = b.End
	}
	return lo < hi
}

// CoversPoint reports whether offset falls inside r under RangeExclusive's
// overlap rule ([Begin, End) is half-open). rangeset uses this alongside
// ksl.LowerBoundBy to probe a Tree[Range, V] with a bare offset instead of
// constructing a synthetic zero-width Range (which, under the strict
// lo < hi overlap test above, would never compare equal to anything).
func CoversPoint(r Range, offset int64) bool {
	return r.Begin <= offset && offset < r.End
}
