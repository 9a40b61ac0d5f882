package pick

import (
	"github.com/atopile/partpick/pkg/module"
	"github.com/atopile/partpick/pkg/predicate"
)

// fakeSolver accepts every offered predicate except ones whose rendered
// String() is listed in reject, simulating a solver that can satisfy any
// candidate but a known-bad one. Good enough to exercise the picker's
// control flow without a real constraint engine.
type fakeSolver struct {
	reject   map[string]bool
	snapshot string
}

func newFakeSolver(rejectStrings ...string) *fakeSolver {
	s := &fakeSolver{reject: make(map[string]bool), snapshot: "<snapshot>"}
	for _, r := range rejectStrings {
		s.reject[r] = true
	}
	return s
}

func (s *fakeSolver) AssertAnyPredicate(pairs []predicate.TaggedPredicate, lock bool) (predicate.AssertResult, error) {
	var out []predicate.TaggedPredicate
	for _, p := range pairs {
		if !s.reject[p.Predicate.String()] {
			out = append(out, p)
		}
	}
	return predicate.AssertResult{TruePredicates: out}, nil
}

func (s *fakeSolver) Snapshot() string { return s.snapshot }

// fakeSupplier records the module/option it was attached to.
type fakeSupplier struct {
	attached []PickerOption
	failWith error
}

func (s *fakeSupplier) Attach(m module.Module, o PickerOption) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.attached = append(s.attached, o)
	return nil
}
