package numset

import "math"

// Add arithmetically adds two intervals: [a.lo+b.lo, a.hi+b.hi].
func (i Interval) Add(other Interval) Interval {
	return MustInterval(i.lo+other.lo, i.hi+other.hi)
}

// Neg arithmetically negates the interval: [-hi, -lo].
func (i Interval) Neg() Interval {
	return MustInterval(-i.hi, -i.lo)
}

// Sub arithmetically subtracts other from i: i + (-other).
func (i Interval) Sub(other Interval) Interval {
	return i.Add(other.Neg())
}

// Mul arithmetically multiplies two intervals, taking the min/max over the
// four corner products. 0 * +-Inf is defined as 0 (the inclusive "[0, +-Inf]"
// alternative considered in the original implementation is rejected here —
// see SPEC_FULL.md §4.2).
func (i Interval) Mul(other Interval) Interval {
	guardedMul := func(a, b float64) float64 {
		if a == 0 || b == 0 {
			return 0
		}
		return a * b
	}
	values := [4]float64{
		guardedMul(i.lo, other.lo),
		guardedMul(i.lo, other.hi),
		guardedMul(i.hi, other.lo),
		guardedMul(i.hi, other.hi),
	}
	return MustInterval(minOf(values[:]), maxOf(values[:]))
}

// Invert arithmetically inverts the interval (1/x), returning a disjoint
// union since the reciprocal of an interval spanning zero splits in two.
func (i Interval) Invert() DisjointUnion {
	switch {
	case i.lo == 0 && i.hi == 0:
		return Empty()
	case i.lo < 0 && 0 < i.hi:
		return NewDisjointUnion(
			MustInterval(math.Inf(-1), 1/i.lo),
			MustInterval(1/i.hi, math.Inf(1)),
		)
	case i.lo < 0 && i.hi == 0:
		return NewDisjointUnion(MustInterval(math.Inf(-1), 1/i.lo))
	case i.lo == 0 && i.hi > 0:
		return NewDisjointUnion(MustInterval(1/i.hi, math.Inf(1)))
	default:
		return NewDisjointUnion(MustInterval(1/i.hi, 1/i.lo))
	}
}

// Div arithmetically divides i by other: the disjoint union of i*r for each
// interval r in 1/other.
func (i Interval) Div(other Interval) DisjointUnion {
	inv := other.Invert()
	parts := make([]Interval, 0, len(inv.intervals))
	for _, r := range inv.intervals {
		parts = append(parts, i.Mul(r))
	}
	return NewDisjointUnion(parts...)
}

// Pow arithmetically raises i to the power of other. The result is a
// disjoint union (kept uniform with Invert/Div); it is a single interval
// except for negative exponents, whose reciprocal step can split it in two.
// Zero-crossing exponents, and negative
// bases raised to fractional exponents, are Unsupported.
func (i Interval) Pow(other Interval) (DisjointUnion, error) {
	if other.hi < 0 {
		neg := other.Neg()
		res, err := i.Pow(neg)
		if err != nil {
			return DisjointUnion{}, err
		}
		return res.Invert(), nil
	}
	if other.lo < 0 {
		return DisjointUnion{}, NewUnsupported("crossing zero in exponent not implemented")
	}
	if i.hi < 0 && !isWhole(other.lo) {
		return DisjointUnion{}, NewUnsupported("cannot raise negative base to fractional exponent")
	}
	if !other.IsInteger() && i.lo < 0 {
		return DisjointUnion{}, NewUnsupported("cannot raise negative base to fractional exponent (complex result)")
	}

	a, b := i.lo, i.hi
	c, d := other.lo, other.hi

	pow := func(x, y float64) float64 {
		r := math.Pow(x, y)
		if math.IsInf(r, 0) {
			if x > 0 {
				return math.Inf(1)
			}
			return math.Inf(-1)
		}
		return r
	}

	values := []float64{pow(a, c), pow(a, d), pow(b, c), pow(b, d)}

	if a < 0 && 0 < b {
		values = append(values, math.Pow(0, c), math.Pow(0, d))
		if math.Mod(d, 2) == 1 {
			if k := d - 1; k > c {
				values = append(values, pow(a, k))
			}
		}
	}

	return NewDisjointUnion(MustInterval(minOf(values), maxOf(values))), nil
}

// Abs arithmetically computes |i| by case analysis on the sign of the bounds.
func (i Interval) Abs() Interval {
	switch {
	case i.lo < 0 && 0 < i.hi:
		return MustInterval(0, i.hi)
	case i.lo < 0 && i.hi < 0:
		return MustInterval(-i.hi, -i.lo)
	case i.lo < 0 && i.hi == 0:
		return MustInterval(0, -i.lo)
	case i.lo == 0 && i.hi < 0:
		return MustInterval(i.hi, 0)
	default:
		return i
	}
}

// Log computes [log(lo), log(hi)]. Fails with a DomainViolation if lo <= 0.
func (i Interval) Log() (Interval, error) {
	if i.lo <= 0 {
		return Interval{}, NewDomainViolation("log of non-positive interval")
	}
	return MustInterval(math.Log(i.lo), math.Log(i.hi)), nil
}

// Sin computes sin over the interval. [-1, 1] is returned when the span
// covers a full circle; singletons are computed pointwise. Any other,
// narrower, non-singleton span is Unsupported — a correct result there needs
// a quadrant-aware routine this engine does not implement.
func (i Interval) Sin() (Interval, error) {
	if i.hi-i.lo >= 2*math.Pi {
		return MustInterval(-1, 1), nil
	}
	if i.lo == i.hi {
		return Singleton(math.Sin(i.lo)), nil
	}
	return Interval{}, NewUnsupported("sin of interval not implemented yet")
}

// Round rounds both bounds to d fractional digits.
func (i Interval) Round(d int) Interval {
	return MustInterval(FloatRound(i.lo, d), FloatRound(i.hi, d))
}

func minOf(vs []float64) float64 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(vs []float64) float64 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
