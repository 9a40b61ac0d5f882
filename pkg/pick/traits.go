package pick

import (
	"github.com/atopile/partpick/pkg/module"
	"github.com/atopile/partpick/pkg/predicate"
)

// Trait keys the picker recognises on host modules. Lookup is always by key,
// never by concrete Go type, per module.TraitKey's identity-based design.
const (
	TraitHasPartPicked module.TraitKey = "has_part_picked"
	TraitHasPicker     module.TraitKey = "has_picker"
	TraitHasFootprint  module.TraitKey = "has_footprint"
	TraitSkipSelfPick  module.TraitKey = "skip_self_pick"
)

// HasPartPicked marks a module as already bound to a concrete part.
type HasPartPicked interface {
	module.Trait
	GetPart() Part
	// GetInfo returns the winning option's descriptive properties
	// (manufacturer, datasheet, ...), nil if none were supplied.
	GetInfo() map[DescriptiveProperty]string
}

type hasPartPickedDefined struct {
	part Part
	info map[DescriptiveProperty]string
}

// NewHasPartPickedDefined records that part was attached to a module, along
// with the winning option's descriptive properties.
func NewHasPartPickedDefined(part Part, info map[DescriptiveProperty]string) HasPartPicked {
	return hasPartPickedDefined{part, info}
}

func (hasPartPickedDefined) TraitKey() module.TraitKey                { return TraitHasPartPicked }
func (h hasPartPickedDefined) GetPart() Part                          { return h.part }
func (h hasPartPickedDefined) GetInfo() map[DescriptiveProperty]string { return h.info }

// removePart is the "REMOVE" pseudo-part: attaching it is a no-op, used to
// mark a module as deliberately unpicked rather than merely unhandled.
type removePart struct{}

func (removePart) Attach(module.Module, PickerOption) error { return nil }

// RemovePart is the pseudo-part NoPickNeeded attaches.
var RemovePart = Part{PartNumber: "REMOVE", Supplier: removePart{}}

type hasPartPickedRemove struct{}

// NewHasPartPickedRemove marks a module as deliberately requiring no part.
func NewHasPartPickedRemove() HasPartPicked { return hasPartPickedRemove{} }

func (hasPartPickedRemove) TraitKey() module.TraitKey                     { return TraitHasPartPicked }
func (hasPartPickedRemove) GetPart() Part                                 { return RemovePart }
func (hasPartPickedRemove) GetInfo() map[DescriptiveProperty]string { return nil }

// HasPicker is carried by modules the topological picker can attempt to
// resolve. Pick should return a PickError (or one of its subtypes) on
// failure and nil on success.
type HasPicker interface {
	module.Trait
	Pick(m module.Module, solver predicate.Solver) error
}

// functionPicker adapts a plain function into a HasPicker trait, mirroring
// has_multi_picker.FunctionPicker for the simple cases that don't need
// their own type (NoPickNeeded, tests, demo wiring).
type functionPicker struct {
	fn func(module.Module, predicate.Solver) error
}

// NewFunctionPicker wraps fn as a HasPicker trait.
func NewFunctionPicker(fn func(module.Module, predicate.Solver) error) HasPicker {
	return functionPicker{fn: fn}
}

func (functionPicker) TraitKey() module.TraitKey { return TraitHasPicker }
func (p functionPicker) Pick(m module.Module, solver predicate.Solver) error {
	return p.fn(m, solver)
}

// NoPickNeeded installs a picker on m that, when run, marks m as requiring
// no part rather than raising PickErrorNotImplemented. Mirrors
// has_part_picked_remove.mark_no_pick_needed.
func NoPickNeeded(m module.Module) {
	m.Add(NewFunctionPicker(func(m module.Module, _ predicate.Solver) error {
		m.Add(NewHasPartPickedRemove())
		return nil
	}))
}
