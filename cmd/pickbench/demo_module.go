package main

import (
	"fmt"
	"strings"

	"github.com/atopile/partpick/pkg/module"
	"github.com/atopile/partpick/pkg/pick"
	"github.com/atopile/partpick/pkg/predicate"
)

// demoModule is a minimal in-memory module.Module, standing in for the host
// design tool's real graph node. It exists only so this command has
// something concrete to run the picker against.
type demoModule struct {
	name     string
	parent   *demoModule
	children []*demoModule
	traits   map[module.TraitKey]module.Trait
	params   []module.Parameter
}

func newDemoModule(name string, children ...*demoModule) *demoModule {
	m := &demoModule{name: name, traits: make(map[module.TraitKey]module.Trait)}
	for _, c := range children {
		c.parent = m
		m.children = append(m.children, c)
	}
	return m
}

func (m *demoModule) HasTrait(key module.TraitKey) bool {
	_, ok := m.traits[key]
	return ok
}

func (m *demoModule) GetTrait(key module.TraitKey) (module.Trait, bool) {
	t, ok := m.traits[key]
	return t, ok
}

func (m *demoModule) Add(t module.Trait) { m.traits[t.TraitKey()] = t }

func (m *demoModule) Children(directOnly bool, modulesOnly bool) []module.Module {
	var out []module.Module
	for _, c := range m.children {
		out = append(out, c)
		if !directOnly {
			out = append(out, c.Children(false, modulesOnly)...)
		}
	}
	return out
}

func (m *demoModule) Interfaces(directOnly bool) []module.ModuleInterface { return nil }

func (m *demoModule) Parameters() []module.Parameter { return m.params }

func (m *demoModule) ParentWithTrait(key module.TraitKey) (module.Module, bool) {
	for p := m.parent; p != nil; p = p.parent {
		if p.HasTrait(key) {
			return p, true
		}
	}
	return nil, false
}

func (m *demoModule) MostSpecial() module.Module { return m }

func (m *demoModule) PrettyParams(solver module.Solver) string {
	names := make([]string, len(m.params))
	for i, p := range m.params {
		names[i] = p.Name()
	}
	return fmt.Sprintf("%s{%s} (solver: %s)", m.name, strings.Join(names, ", "), solver.Snapshot())
}

func (m *demoModule) String() string { return m.name }

type demoParameter struct{ name string }

func (p demoParameter) Name() string { return p.name }

// demoSolver is a deliberately trivial predicate.Solver: it accepts every
// offered predicate, simulating an always-satisfiable constraint state. A
// real solver's SAT/SMT machinery is out of scope for this engine; this
// exists only to exercise the picker's control flow end to end.
type demoSolver struct {
	asserted []predicate.Predicate
}

func (s *demoSolver) AssertAnyPredicate(pairs []predicate.TaggedPredicate, lock bool) (predicate.AssertResult, error) {
	for _, p := range pairs {
		s.asserted = append(s.asserted, p.Predicate)
	}
	return predicate.AssertResult{TruePredicates: pairs}, nil
}

func (s *demoSolver) Snapshot() string {
	return fmt.Sprintf("%d predicates asserted", len(s.asserted))
}

// demoSupplier accepts every attach and records nothing; a real supplier
// would push footprint/purchasing data into the host's module graph.
type demoSupplier struct{}

func (demoSupplier) Attach(m module.Module, option pick.PickerOption) error {
	return nil
}
