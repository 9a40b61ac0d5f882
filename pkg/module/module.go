// Package module defines the contracts this engine consumes from a host
// design tool: modules, their traits ("capabilities"), and parameters.
// These are interfaces, not implementations — the host owns the module
// graph; this engine only walks it. See SPEC_FULL.md §6 and §9.
package module

// TraitKey identifies a capability kind by identity rather than by runtime
// type reflection, per SPEC_FULL.md §9's "interface-capability map"
// redesign note: lookup is always by identifier, never subclass matching.
type TraitKey string

// Trait is a capability a Module can carry. Concrete trait types embed
// Trait and add whatever data/behavior the capability needs.
type Trait interface {
	TraitKey() TraitKey
}

// Parameter is a named, addressable parameter a Module exposes — the thing
// interval/disjoint-union set literals ultimately constrain.
type Parameter interface {
	// Name is the parameter's identity within its owning Module, e.g.
	// "resistance" or "power_rating".
	Name() string
}

// Module is the opaque host-graph node this engine walks and attaches
// traits to. Implementations live in the host design tool.
type Module interface {
	// HasTrait reports whether the module carries a capability under key.
	HasTrait(key TraitKey) bool

	// GetTrait returns the capability registered under key, and whether it
	// was found.
	GetTrait(key TraitKey) (Trait, bool)

	// Add installs a trait on the module via message-passing rather than
	// open inheritance, per SPEC_FULL.md §9.
	Add(t Trait)

	// Children returns the module's children. If directOnly is true, only
	// immediate children are returned; modulesOnly restricts the result to
	// child Modules, excluding ModuleInterface containers.
	Children(directOnly bool, modulesOnly bool) []Module

	// Interfaces returns the ModuleInterface containers attached directly to
	// this module (directOnly true), or transitively through nested
	// containers (directOnly false). These never contribute Children
	// entries themselves; a caller that needs the Modules bundled inside
	// them calls ModuleInterface.Children.
	Interfaces(directOnly bool) []ModuleInterface

	// Parameters returns the module's own named parameters.
	Parameters() []Parameter

	// ParentWithTrait walks up the containment chain looking for the
	// nearest ancestor carrying key. ok is false if no such ancestor exists.
	ParentWithTrait(key TraitKey) (Module, bool)

	// MostSpecial returns the most specialised module this one has been
	// refined into (itself, if it was never specialised further).
	MostSpecial() Module

	// PrettyParams renders the module's parameters for diagnostics, using
	// the given solver snapshot.
	PrettyParams(solver Solver) string

	// String names the module for logging and error messages.
	String() string
}

// ModuleInterface is a transparent containment boundary: the pick-tree and
// topological picker walk through it without it contributing a pick-tree
// node of its own. See SPEC_FULL.md §4.6.
type ModuleInterface interface {
	// Children returns the Modules bundled inside this interface. If
	// directOnly is true, nested ModuleInterface layers are still walked
	// through transparently — only Modules are ever returned — but the
	// Modules' own children are not descended into. If false, the full
	// transitive closure (including descendants of the returned Modules) is
	// returned.
	Children(directOnly bool) []Module
}

// Solver is forward-declared here (rather than imported from pkg/predicate)
// purely so Module.PrettyParams can reference it without an import cycle;
// pkg/predicate.Solver satisfies this shape.
type Solver interface {
	Snapshot() string
}
