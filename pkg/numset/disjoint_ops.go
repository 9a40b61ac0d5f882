package numset

// IntersectInterval maps Interval.IntersectInterval over the constituents
// and renormalises.
func (u DisjointUnion) IntersectInterval(other Interval) DisjointUnion {
	var all []Interval
	for _, r := range u.intervals {
		all = append(all, r.IntersectInterval(other).intervals...)
	}
	return NewDisjointUnion(all...)
}

// Intersect set-intersects two unions via a two-pointer merge: for each
// overlapping pair it emits the intersection, then advances whichever
// constituent ends first (advancing both on an approximate tie).
func (u DisjointUnion) Intersect(other DisjointUnion) DisjointUnion {
	var result []Interval
	s, o := 0, 0
	for s < len(u.intervals) && o < len(other.intervals) {
		rs, ro := u.intervals[s], other.intervals[o]
		inter := rs.IntersectInterval(ro)
		if !inter.IsEmpty() {
			result = append(result, inter.intervals...)
		}

		switch {
		case rs.hi < ro.lo:
			s++
		case ro.hi < rs.lo:
			o++
		case rs.hi < ro.hi:
			s++
		case ro.hi < rs.hi:
			o++
		default:
			s++
			o++
		}
	}
	return NewDisjointUnion(result...)
}

// Union concatenates the constituents of both unions and renormalises.
func (u DisjointUnion) Union(other DisjointUnion) DisjointUnion {
	all := append(append([]Interval{}, u.intervals...), other.intervals...)
	return NewDisjointUnion(all...)
}

// DifferenceInterval maps Interval.DifferenceInterval over the constituents
// and renormalises.
func (u DisjointUnion) DifferenceInterval(other Interval) DisjointUnion {
	var all []Interval
	for _, r := range u.intervals {
		all = append(all, r.DifferenceInterval(other).intervals...)
	}
	return NewDisjointUnion(all...)
}

// Difference folds DifferenceInterval over the subtrahend's constituents.
func (u DisjointUnion) Difference(other DisjointUnion) DisjointUnion {
	out := u
	for _, r := range other.intervals {
		out = out.DifferenceInterval(r)
	}
	return out
}

// SymmetricDifference computes (A ∪ B) \ (A ∩ B).
func (u DisjointUnion) SymmetricDifference(other DisjointUnion) DisjointUnion {
	return u.Union(other).Difference(u.Intersect(other))
}

// Add is the Cartesian product of constituent additions, renormalised.
func (u DisjointUnion) Add(other DisjointUnion) DisjointUnion {
	var all []Interval
	for _, r := range u.intervals {
		for _, o := range other.intervals {
			all = append(all, r.Add(o))
		}
	}
	return NewDisjointUnion(all...)
}

// Neg maps Interval.Neg over the constituents.
func (u DisjointUnion) Neg() DisjointUnion {
	var all []Interval
	for _, r := range u.intervals {
		all = append(all, r.Neg())
	}
	return NewDisjointUnion(all...)
}

// Sub is Add(other.Neg()).
func (u DisjointUnion) Sub(other DisjointUnion) DisjointUnion {
	return u.Add(other.Neg())
}

// Mul is the Cartesian product of constituent multiplications, renormalised.
func (u DisjointUnion) Mul(other DisjointUnion) DisjointUnion {
	var all []Interval
	for _, r := range u.intervals {
		for _, o := range other.intervals {
			all = append(all, r.Mul(o))
		}
	}
	return NewDisjointUnion(all...)
}

// Invert maps Interval.Invert over the constituents; each may split into two.
func (u DisjointUnion) Invert() DisjointUnion {
	var all []Interval
	for _, r := range u.intervals {
		all = append(all, r.Invert().intervals...)
	}
	return NewDisjointUnion(all...)
}

// Div is Mul(other.Invert()).
func (u DisjointUnion) Div(other DisjointUnion) DisjointUnion {
	return u.Mul(other.Invert())
}

// Pow is the Cartesian product of constituent exponentiations, renormalised.
func (u DisjointUnion) Pow(other DisjointUnion) (DisjointUnion, error) {
	var all []Interval
	for _, r := range u.intervals {
		for _, o := range other.intervals {
			res, err := r.Pow(o)
			if err != nil {
				return DisjointUnion{}, err
			}
			all = append(all, res.intervals...)
		}
	}
	return NewDisjointUnion(all...), nil
}

// Abs maps Interval.Abs over the constituents, renormalised.
func (u DisjointUnion) Abs() DisjointUnion {
	var all []Interval
	for _, r := range u.intervals {
		all = append(all, r.Abs())
	}
	return NewDisjointUnion(all...)
}

// Log maps Interval.Log over the constituents, renormalised.
func (u DisjointUnion) Log() (DisjointUnion, error) {
	var all []Interval
	for _, r := range u.intervals {
		l, err := r.Log()
		if err != nil {
			return DisjointUnion{}, err
		}
		all = append(all, l)
	}
	return NewDisjointUnion(all...), nil
}

// Sin maps Interval.Sin over the constituents, renormalised.
func (u DisjointUnion) Sin() (DisjointUnion, error) {
	var all []Interval
	for _, r := range u.intervals {
		s, err := r.Sin()
		if err != nil {
			return DisjointUnion{}, err
		}
		all = append(all, s)
	}
	return NewDisjointUnion(all...), nil
}

// Round maps Interval.Round over the constituents.
func (u DisjointUnion) Round(d int) DisjointUnion {
	var all []Interval
	for _, r := range u.intervals {
		all = append(all, r.Round(d))
	}
	return NewDisjointUnion(all...)
}
