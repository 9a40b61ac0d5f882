package numset

import (
	"sort"
)

// DisjointUnion is an ordered list of pairwise-disjoint, non-adjacent closed
// intervals. The empty union represents the empty set. Values are
// immutable; construction always flattens, sorts and merges its input.
type DisjointUnion struct {
	intervals []Interval
}

// NewDisjointUnion normalises an arbitrary bag of intervals into a
// DisjointUnion: empties are dropped, the rest are sorted ascending by lower
// bound, and a left-to-right fold merges anything overlapping or touching.
func NewDisjointUnion(intervals ...Interval) DisjointUnion {
	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a].lo < sorted[b].lo })

	merged := make([]Interval, 0, len(sorted))
	for _, next := range sorted {
		if len(merged) == 0 {
			merged = append(merged, next)
			continue
		}
		last := merged[len(merged)-1]
		parts := last.MaybeMerge(next)
		merged = merged[:len(merged)-1]
		merged = append(merged, parts...)
	}

	return DisjointUnion{intervals: merged}
}

// Empty returns the empty numeric set.
func Empty() DisjointUnion {
	return DisjointUnion{}
}

// Intervals returns the union's constituent intervals, sorted ascending and
// non-adjacent. Callers must not mutate the returned slice.
func (u DisjointUnion) Intervals() []Interval {
	return u.intervals
}

// IsEmpty reports whether the union has no constituents.
func (u DisjointUnion) IsEmpty() bool {
	return len(u.intervals) == 0
}

// IsSingleElement reports whether the union is non-empty and its extremes
// coincide (a single point).
func (u DisjointUnion) IsSingleElement() bool {
	if u.IsEmpty() {
		return false
	}
	return u.MinElem() == u.MaxElem()
}

// IsUnbounded reports whether the union spans the entire real line.
func (u DisjointUnion) IsUnbounded() bool {
	if u.IsEmpty() {
		return false
	}
	return u.intervals[0].IsUnbounded()
}

// IsFinite reports whether neither extreme of the union is infinite.
func (u DisjointUnion) IsFinite() bool {
	if u.IsEmpty() {
		return true
	}
	return u.intervals[0].IsFinite() && u.intervals[len(u.intervals)-1].IsFinite()
}

// MinElem returns the lower bound of the first constituent. Panics if the
// union is empty — callers must check IsEmpty first, matching the
// reference implementation's "empty interval cannot have min element".
func (u DisjointUnion) MinElem() float64 {
	if u.IsEmpty() {
		panic("empty union cannot have min element")
	}
	return u.intervals[0].lo
}

// MaxElem returns the upper bound of the last constituent. Panics if the
// union is empty.
func (u DisjointUnion) MaxElem() float64 {
	if u.IsEmpty() {
		panic("empty union cannot have max element")
	}
	return u.intervals[len(u.intervals)-1].hi
}

// Equal reports whether u and other have the same number of constituents,
// pairwise equal.
func (u DisjointUnion) Equal(other DisjointUnion) bool {
	if len(u.intervals) != len(other.intervals) {
		return false
	}
	for i, r := range u.intervals {
		if !r.Equal(other.intervals[i]) {
			return false
		}
	}
	return true
}

// Contains reports whether x lies in some constituent interval.
func (u DisjointUnion) Contains(x float64) bool {
	idx := sort.Search(len(u.intervals), func(i int) bool { return u.intervals[i].lo > x })
	if idx == 0 {
		return false
	}
	return u.intervals[idx-1].Contains(x)
}

// ClosestElem returns the element of the union nearest to target: target
// itself if it already lies in a constituent, otherwise the nearer of the
// adjacent bounds.
func (u DisjointUnion) ClosestElem(target float64) float64 {
	if u.IsEmpty() {
		panic("empty union cannot have closest element")
	}
	idx := sort.Search(len(u.intervals), func(i int) bool { return u.intervals[i].lo > target })

	var left *Interval
	if idx > 0 {
		left = &u.intervals[idx-1]
	}
	if left != nil && left.Contains(target) {
		return target
	}

	var leftBound, rightBound *float64
	if left != nil {
		v := left.hi
		leftBound = &v
	}
	if idx < len(u.intervals) {
		v := u.intervals[idx].lo
		rightBound = &v
	}

	switch {
	case leftBound != nil && rightBound == nil:
		return *leftBound
	case leftBound == nil && rightBound != nil:
		return *rightBound
	default:
		if target-*leftBound < *rightBound-target {
			return *leftBound
		}
		return *rightBound
	}
}

// String renders the union as its constituent intervals joined with " | ",
// or "{}" when empty.
func (u DisjointUnion) String() string {
	if u.IsEmpty() {
		return "{}"
	}
	s := ""
	for i, r := range u.intervals {
		if i > 0 {
			s += " | "
		}
		s += r.String()
	}
	return s
}
