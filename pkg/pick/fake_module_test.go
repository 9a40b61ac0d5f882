package pick

import (
	"fmt"

	"github.com/atopile/partpick/pkg/module"
)

// fakeModule is a minimal in-memory module.Module for exercising the
// picker against a plain tree, without any host design tool.
type fakeModule struct {
	name       string
	parent     *fakeModule
	children   []*fakeModule
	interfaces []*fakeModuleInterface
	traits     map[module.TraitKey]module.Trait
	params     []module.Parameter
}

func newFakeModule(name string, children ...*fakeModule) *fakeModule {
	m := &fakeModule{name: name, traits: make(map[module.TraitKey]module.Trait)}
	for _, c := range children {
		c.parent = m
		m.children = append(m.children, c)
	}
	return m
}

func (m *fakeModule) HasTrait(key module.TraitKey) bool {
	_, ok := m.traits[key]
	return ok
}

func (m *fakeModule) GetTrait(key module.TraitKey) (module.Trait, bool) {
	t, ok := m.traits[key]
	return t, ok
}

func (m *fakeModule) Add(t module.Trait) {
	m.traits[t.TraitKey()] = t
}

func (m *fakeModule) Children(directOnly bool, modulesOnly bool) []module.Module {
	var out []module.Module
	for _, c := range m.children {
		out = append(out, c)
		if !directOnly {
			out = append(out, c.Children(false, modulesOnly)...)
		}
	}
	return out
}

func (m *fakeModule) Interfaces(directOnly bool) []module.ModuleInterface {
	var out []module.ModuleInterface
	for _, i := range m.interfaces {
		out = append(out, i)
	}
	return out
}

func (m *fakeModule) Parameters() []module.Parameter { return m.params }

func (m *fakeModule) ParentWithTrait(key module.TraitKey) (module.Module, bool) {
	for p := m.parent; p != nil; p = p.parent {
		if p.HasTrait(key) {
			return p, true
		}
	}
	return nil, false
}

func (m *fakeModule) MostSpecial() module.Module { return m }

func (m *fakeModule) PrettyParams(solver module.Solver) string {
	return fmt.Sprintf("%s: %s", m.name, solver.Snapshot())
}

func (m *fakeModule) String() string { return m.name }

type fakeParam struct{ name string }

func (p fakeParam) Name() string { return p.name }

// fakeModuleInterface is a transparent containment boundary bundling
// modules without being one itself, for exercising GetPickTree's
// ModuleInterface descent.
type fakeModuleInterface struct {
	modules []*fakeModule
}

func (i *fakeModuleInterface) Children(directOnly bool) []module.Module {
	var out []module.Module
	for _, m := range i.modules {
		out = append(out, m)
		if !directOnly {
			out = append(out, m.Children(false, true)...)
		}
	}
	return out
}
