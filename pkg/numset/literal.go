package numset

// LiteralKind tags which concrete shape a SetLiteral holds.
type LiteralKind int

const (
	// KindScalar holds a single concrete number.
	KindScalar LiteralKind = iota
	// KindInterval holds a closed Interval.
	KindInterval
	// KindDisjointUnion holds a general DisjointUnion.
	KindDisjointUnion
	// KindDiscrete holds a DisjointUnion known to be all singletons.
	KindDiscrete
	// KindBoolSet holds a BoolSet.
	KindBoolSet
)

// SetLiteral is the tagged union of set shapes a solver predicate or a
// PickerOption parameter value can take: a concrete scalar, a closed
// interval, a general disjoint union, a discrete set, or a boolean set.
// Callers dispatch on Kind via a type switch-style method set rather than
// duck typing, per SPEC_FULL.md's capability/tagged-union design note.
type SetLiteral struct {
	Kind     LiteralKind
	scalar   float64
	interval Interval
	union    DisjointUnion
	boolSet  BoolSet
}

// ScalarLiteral wraps a concrete number.
func ScalarLiteral(v float64) SetLiteral {
	return SetLiteral{Kind: KindScalar, scalar: v}
}

// IntervalLiteral wraps a closed interval.
func IntervalLiteral(i Interval) SetLiteral {
	return SetLiteral{Kind: KindInterval, interval: i}
}

// DisjointUnionLiteral wraps a general disjoint union.
func DisjointUnionLiteral(u DisjointUnion) SetLiteral {
	return SetLiteral{Kind: KindDisjointUnion, union: u}
}

// DiscreteLiteral wraps a discrete set.
func DiscreteLiteral(u DisjointUnion) SetLiteral {
	return SetLiteral{Kind: KindDiscrete, union: u}
}

// BoolSetLiteral wraps a boolean set.
func BoolSetLiteral(b BoolSet) SetLiteral {
	return SetLiteral{Kind: KindBoolSet, boolSet: b}
}

// Scalar returns the wrapped scalar and whether the literal is KindScalar.
func (l SetLiteral) Scalar() (float64, bool) {
	return l.scalar, l.Kind == KindScalar
}

// Interval returns the wrapped interval and whether the literal is
// KindInterval.
func (l SetLiteral) Interval() (Interval, bool) {
	return l.interval, l.Kind == KindInterval
}

// Union returns the wrapped disjoint union and whether the literal is
// KindDisjointUnion or KindDiscrete.
func (l SetLiteral) Union() (DisjointUnion, bool) {
	return l.union, l.Kind == KindDisjointUnion || l.Kind == KindDiscrete
}

// BoolSet returns the wrapped boolean set and whether the literal is
// KindBoolSet.
func (l SetLiteral) BoolSet() (BoolSet, bool) {
	return l.boolSet, l.Kind == KindBoolSet
}

// AsDisjointUnion normalises any set literal into a DisjointUnion, the
// common currency the interval algebra operates on. Scalars become
// singletons; plain intervals and discrete sets become their underlying
// union. BoolSet has no numeric representation and panics if asked.
func (l SetLiteral) AsDisjointUnion() DisjointUnion {
	switch l.Kind {
	case KindScalar:
		return DiscreteSet(l.scalar)
	case KindInterval:
		return NewDisjointUnion(l.interval)
	case KindDisjointUnion, KindDiscrete:
		return l.union
	default:
		panic("numset: SetLiteral of kind BoolSet has no numeric representation")
	}
}

// String renders the literal's underlying value.
func (l SetLiteral) String() string {
	switch l.Kind {
	case KindScalar:
		return formatFloat(l.scalar)
	case KindInterval:
		return l.interval.String()
	case KindDisjointUnion, KindDiscrete:
		return l.union.String()
	case KindBoolSet:
		return l.boolSet.String()
	default:
		return "<invalid set literal>"
	}
}
