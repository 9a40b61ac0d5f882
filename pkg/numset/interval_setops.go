package numset

import "math"

// IntersectInterval set-intersects two intervals. If the candidate bounds
// cross but are within EpsilonRel, the degenerate singleton is returned
// instead of the empty set.
func (i Interval) IntersectInterval(other Interval) DisjointUnion {
	lo := math.Max(i.lo, other.lo)
	hi := math.Min(i.hi, other.hi)
	if lo <= hi {
		return NewDisjointUnion(MustInterval(lo, hi))
	}
	if closeEnough(lo, hi) {
		return NewDisjointUnion(Singleton(lo))
	}
	return Empty()
}

// DifferenceInterval computes the set difference i \ other. Four cases:
// disjoint (other doesn't touch i), fully covered (other swallows i), inner
// overlap (other carves a hole out of the middle, producing two intervals),
// and one-sided overlap (producing one interval).
func (i Interval) DifferenceInterval(other Interval) DisjointUnion {
	if i.hi < other.lo || i.lo > other.hi {
		return NewDisjointUnion(i)
	}
	if other.lo <= i.lo && other.hi >= i.hi {
		return Empty()
	}
	if i.lo < other.lo && i.hi > other.hi {
		return NewDisjointUnion(
			MustInterval(i.lo, other.lo),
			MustInterval(other.hi, i.hi),
		)
	}
	if i.lo < other.lo {
		return NewDisjointUnion(MustInterval(i.lo, other.lo))
	}
	return NewDisjointUnion(MustInterval(other.hi, i.hi))
}

// MaybeMerge attempts to merge i and other if they overlap or touch.
//
//	[1,5] and [3,7] merge to [1,7] since 3 falls within [1,5].
//	[1,2] and [4,5] stay separate since 4 doesn't fall within [1,2].
func (i Interval) MaybeMerge(other Interval) []Interval {
	isLeft := i.lo <= other.lo
	left, right := i, other
	if !isLeft {
		left, right = other, i
	}
	if left.Contains(right.lo) {
		return []Interval{MustInterval(left.lo, math.Max(left.hi, right.hi))}
	}
	return []Interval{left, right}
}
