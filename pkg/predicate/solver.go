// Package predicate defines the contract exchanged with the external
// predicate solver (§6 of SPEC_FULL.md): the predicate constructors the
// parameter-predicate picker in pkg/pick builds from candidate options, and
// the Solver interface it asks which of them hold.
package predicate

import (
	"github.com/atopile/partpick/pkg/module"
	"github.com/atopile/partpick/pkg/numset"
)

// Predicate is a boolean-valued expression over module parameters that the
// solver can prove or disprove. Its internal shape (constraint-graph node,
// SMT term, whatever) belongs entirely to the solver; this engine only
// builds and passes predicates, never inspects them.
type Predicate interface {
	// String renders the predicate for diagnostics.
	String() string
}

// Is builds the predicate "param is a member of literal".
func Is(param module.Parameter, literal numset.SetLiteral) Predicate {
	return isPredicate{param: param, literal: literal}
}

type isPredicate struct {
	param   module.Parameter
	literal numset.SetLiteral
}

func (p isPredicate) String() string {
	return p.param.Name() + " is " + p.literal.String()
}

// And builds the conjunction of the given predicates.
func And(preds ...Predicate) Predicate {
	return junction{op: "and", terms: preds}
}

// Or builds the disjunction of the given predicates. It gives no special
// meaning to an empty term list; the always-true predicate is Tautology.
func Or(preds ...Predicate) Predicate {
	return junction{op: "or", terms: preds}
}

// Tautology is the always-true predicate, used when a candidate option has
// no parameters to constrain against.
var Tautology Predicate = junction{op: "or", terms: nil, tautology: true}

type junction struct {
	op        string
	terms     []Predicate
	tautology bool
}

func (j junction) String() string {
	if j.tautology {
		return "true"
	}
	s := "("
	for i, t := range j.terms {
		if i > 0 {
			s += " " + j.op + " "
		}
		s += t.String()
	}
	return s + ")"
}

// Tag identifies which caller-supplied value a predicate was built for, so
// AssertAnyPredicate's result can be mapped back to it.
type Tag any

// TaggedPredicate pairs a predicate with the caller's tag for it.
type TaggedPredicate struct {
	Predicate Predicate
	Tag       Tag
}

// AssertResult is the solver's answer to AssertAnyPredicate: the subset of
// the offered predicates it could simultaneously satisfy, paired with their
// tags, in solver-returned order. SPEC_FULL.md §5 pins this order as
// caller-meaningful: when the solver is order-preserving, this is the
// offered order.
type AssertResult struct {
	TruePredicates []TaggedPredicate
}

// Solver is the external predicate solver this engine drives. Its internal
// SAT/SMT machinery is out of scope; only this contract is consumed.
type Solver interface {
	// AssertAnyPredicate asks the solver which of the given predicates it
	// can simultaneously satisfy with the current constraint state. When
	// lock is set, the solver must durably commit to the chosen disjunct
	// before returning — callers rely on this to stop the solver from
	// silently reneging on a choice made here.
	AssertAnyPredicate(pairs []TaggedPredicate, lock bool) (AssertResult, error)

	// Snapshot renders the solver's current constraint state for
	// diagnostics (used by PickErrorParams).
	Snapshot() string
}
