package numset

// DiscreteSet builds a DisjointUnion whose every constituent is a
// singleton, by wrapping each value before delegating to NewDisjointUnion.
func DiscreteSet(values ...float64) DisjointUnion {
	singles := make([]Interval, len(values))
	for i, v := range values {
		singles[i] = Singleton(v)
	}
	return NewDisjointUnion(singles...)
}

// IterSingles returns the union's singleton values in ascending order. The
// caller is responsible for having constructed u as a discrete set — a
// union with a non-singleton constituent yields that constituent's lower
// bound, which is rarely what's wanted.
func IterSingles(u DisjointUnion) []float64 {
	out := make([]float64, 0, len(u.intervals))
	for _, r := range u.intervals {
		out = append(out, r.lo)
	}
	return out
}
