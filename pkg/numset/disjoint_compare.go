package numset

// GreaterEqual computes the set-valued result of A >= B.
func (u DisjointUnion) GreaterEqual(other DisjointUnion) BoolSet {
	if u.IsEmpty() || other.IsEmpty() {
		return EmptyBoolSet()
	}
	switch {
	case u.MinElem() >= other.MaxElem():
		return NewBoolSet(true)
	case u.MaxElem() < other.MinElem():
		return NewBoolSet(false)
	default:
		return NewBoolSet(true, false)
	}
}

// Greater computes the set-valued result of A > B.
func (u DisjointUnion) Greater(other DisjointUnion) BoolSet {
	if u.IsEmpty() || other.IsEmpty() {
		return EmptyBoolSet()
	}
	switch {
	case u.MinElem() > other.MaxElem():
		return NewBoolSet(true)
	case u.MaxElem() <= other.MinElem():
		return NewBoolSet(false)
	default:
		return NewBoolSet(true, false)
	}
}

// LessEqual computes the set-valued result of A <= B.
func (u DisjointUnion) LessEqual(other DisjointUnion) BoolSet {
	if u.IsEmpty() || other.IsEmpty() {
		return EmptyBoolSet()
	}
	switch {
	case u.MaxElem() <= other.MinElem():
		return NewBoolSet(true)
	case u.MinElem() > other.MaxElem():
		return NewBoolSet(false)
	default:
		return NewBoolSet(true, false)
	}
}

// Less computes the set-valued result of A < B.
func (u DisjointUnion) Less(other DisjointUnion) BoolSet {
	if u.IsEmpty() || other.IsEmpty() {
		return EmptyBoolSet()
	}
	switch {
	case u.MaxElem() < other.MinElem():
		return NewBoolSet(true)
	case u.MinElem() >= other.MaxElem():
		return NewBoolSet(false)
	default:
		return NewBoolSet(true, false)
	}
}
