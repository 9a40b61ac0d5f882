package numset

// BoolSet is a subset of {true, false}, with four inhabitants: the empty
// set, {true}, {false}, and {true, false}. It is what set-valued
// comparisons between disjoint unions return, since a comparison between
// two non-degenerate sets is not always universally true or false.
type BoolSet struct {
	hasTrue  bool
	hasFalse bool
}

// EmptyBoolSet returns the empty boolean set (the result of comparing
// against an empty numeric set).
func EmptyBoolSet() BoolSet {
	return BoolSet{}
}

// NewBoolSet builds a BoolSet containing exactly the given values.
func NewBoolSet(values ...bool) BoolSet {
	var b BoolSet
	for _, v := range values {
		if v {
			b.hasTrue = true
		} else {
			b.hasFalse = true
		}
	}
	return b
}

// IsEmpty reports whether the set contains neither true nor false.
func (b BoolSet) IsEmpty() bool {
	return !b.hasTrue && !b.hasFalse
}

// IsCertainlyTrue reports whether the set is exactly {true}.
func (b BoolSet) IsCertainlyTrue() bool {
	return b.hasTrue && !b.hasFalse
}

// IsCertainlyFalse reports whether the set is exactly {false}.
func (b BoolSet) IsCertainlyFalse() bool {
	return b.hasFalse && !b.hasTrue
}

// IsAmbiguous reports whether the set is {true, false}.
func (b BoolSet) IsAmbiguous() bool {
	return b.hasTrue && b.hasFalse
}

// Contains reports whether v is a member of the set.
func (b BoolSet) Contains(v bool) bool {
	if v {
		return b.hasTrue
	}
	return b.hasFalse
}

// Union returns the union of two boolean sets.
func (b BoolSet) Union(other BoolSet) BoolSet {
	return BoolSet{hasTrue: b.hasTrue || other.hasTrue, hasFalse: b.hasFalse || other.hasFalse}
}

// String renders the set as e.g. "{true}", "{true, false}", or "{}".
func (b BoolSet) String() string {
	switch {
	case b.IsEmpty():
		return "{}"
	case b.IsCertainlyTrue():
		return "{true}"
	case b.IsCertainlyFalse():
		return "{false}"
	default:
		return "{true, false}"
	}
}
