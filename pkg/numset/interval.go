package numset

import "math"

// Interval is a closed real interval [Lo, Hi]. Values are immutable; every
// operation returns a fresh Interval (or DisjointUnion, for operations whose
// result may not be a single interval).
type Interval struct {
	lo, hi float64
}

// NewInterval builds a closed interval [lo, hi]. Both bounds are rounded to
// AbsDigits fractional digits on construction. It fails with a
// DomainViolation if lo > hi, lo is +Inf, or hi is -Inf.
func NewInterval(lo, hi float64) (Interval, error) {
	if lo > hi {
		return Interval{}, NewDomainViolation("min must be less than or equal to max")
	}
	if math.IsInf(lo, 1) || math.IsInf(hi, -1) {
		return Interval{}, NewDomainViolation("min or max has bad infinite value")
	}
	return Interval{lo: FloatRound(lo, AbsDigits), hi: FloatRound(hi, AbsDigits)}, nil
}

// MustInterval is NewInterval for callers that already know the bounds are
// well-formed (tests, literals derived from other intervals).
func MustInterval(lo, hi float64) Interval {
	i, err := NewInterval(lo, hi)
	if err != nil {
		panic(err)
	}
	return i
}

// Singleton returns the degenerate interval [v, v].
func Singleton(v float64) Interval {
	return Interval{lo: FloatRound(v, AbsDigits), hi: FloatRound(v, AbsDigits)}
}

// Lo returns the interval's lower bound.
func (i Interval) Lo() float64 { return i.lo }

// Hi returns the interval's upper bound.
func (i Interval) Hi() float64 { return i.hi }

// IsSingleton reports whether Lo == Hi.
func (i Interval) IsSingleton() bool { return i.lo == i.hi }

// IsUnbounded reports whether the interval spans the entire real line.
func (i Interval) IsUnbounded() bool {
	return math.IsInf(i.lo, -1) && math.IsInf(i.hi, 1)
}

// IsFinite reports whether neither bound is infinite.
func (i Interval) IsFinite() bool {
	return !math.IsInf(i.lo, 0) && !math.IsInf(i.hi, 0)
}

// IsInteger reports whether both bounds are whole numbers, or the interval
// is a singleton whose value has no fractional part.
func (i Interval) IsInteger() bool {
	return isWhole(i.lo) && isWhole(i.hi)
}

func isWhole(v float64) bool {
	if math.IsInf(v, 0) {
		return false
	}
	return v == math.Trunc(v)
}

// AsCenterRel returns (center, rel) with center = (lo+hi)/2 and
// rel = (hi-lo)/(2*|center|); when center == 0, rel = (hi-lo)/2.
func (i Interval) AsCenterRel() (center, rel float64) {
	if i.lo == i.hi {
		return i.lo, 0.0
	}
	center = (i.lo + i.hi) / 2
	if center == 0 {
		rel = (i.hi - i.lo) / 2
	} else {
		rel = (i.hi - i.lo) / 2 / math.Abs(center)
	}
	return center, rel
}

// Equal reports whether both bounds are close under EpsilonRel.
func (i Interval) Equal(other Interval) bool {
	return closeEnough(i.lo, other.lo) && closeEnough(i.hi, other.hi)
}

// Contains reports whether x lies within the interval, or is close to
// either bound under EpsilonRel.
func (i Interval) Contains(x float64) bool {
	if i.lo <= x && x <= i.hi {
		return true
	}
	return closeEnough(i.lo, x) || closeEnough(i.hi, x)
}

// IsSubsetOf reports whether i is contained in other, using the canonical
// (parenthesised) reading of the rule rather than the original's
// unparenthesised "or/and" expression, which is a tautology for some bound
// orderings. See spec's known-ambiguities note on Numeric_Interval.is_subset_of.
func (i Interval) IsSubsetOf(other Interval) bool {
	loOK := i.lo >= other.lo || closeEnough(i.lo, other.lo)
	hiOK := i.hi <= other.hi || closeEnough(i.hi, other.hi)
	return loOK && hiOK
}

// String renders the interval as "[lo, hi]", a singleton "[v]", or, when the
// relative tolerance is under 100%, as a "center ± rel%" tolerance band.
func (i Interval) String() string {
	if i.lo == i.hi {
		return fmtFloat(i.lo, true)
	}
	center, rel := i.AsCenterRel()
	if rel < 1 {
		return fmtFloat(center, false) + " ± " + fmtFloat(rel*100, false) + "%"
	}
	return "[" + formatFloat(i.lo) + ", " + formatFloat(i.hi) + "]"
}

func fmtFloat(v float64, bracket bool) string {
	s := formatFloat(v)
	if bracket {
		return "[" + s + "]"
	}
	return s
}
