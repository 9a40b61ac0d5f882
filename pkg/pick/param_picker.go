package pick

import (
	"fmt"
	"strings"

	"github.com/atopile/partpick/pkg/module"
	"github.com/atopile/partpick/pkg/predicate"
)

// PickModuleByParams is the parameter-predicate picker: it turns each
// candidate option into a predicate over m's own parameters, asks the
// solver which candidates it can simultaneously satisfy, and attaches the
// first one the solver accepts. Already-picked modules are a no-op.
func PickModuleByParams(m module.Module, solver predicate.Solver, options []PickerOption) (*PickerOption, error) {
	if m.HasTrait(TraitHasPartPicked) {
		return nil, nil
	}

	params := make(map[string]module.Parameter)
	for _, p := range m.Parameters() {
		params[p.Name()] = p
	}

	var filtered []PickerOption
	for _, o := range options {
		if o.Filter == nil || o.Filter(m) {
			filtered = append(filtered, o)
		}
	}

	var pairs []predicate.TaggedPredicate
	for _, o := range filtered {
		pred, err := optionPredicate(o, params)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, predicate.TaggedPredicate{Predicate: pred, Tag: o})
	}

	if len(pairs) == 0 {
		return nil, NewPickErrorParams(m, options, solver)
	}

	result, err := solver.AssertAnyPredicate(pairs, true)
	if err != nil {
		return nil, err
	}
	if len(result.TruePredicates) == 0 {
		return nil, NewPickErrorParams(m, options, solver)
	}

	option := result.TruePredicates[0].Tag.(PickerOption)

	if option.PinMap != nil {
		attachPinMap(m, option.PinMap)
	}
	if err := option.Part.Supplier.Attach(m, option); err != nil {
		return nil, err
	}
	m.Add(NewHasPartPickedDefined(option.Part, option.Info))

	return &option, nil
}

// optionPredicate builds the conjunction of Is(param, value) predicates for
// o's params, skipping private-prefixed ("_") keys, which constrain
// bookkeeping rather than a solver-visible parameter. An option with no
// public params is unconditionally valid. A public key that names no
// parameter on the module is a caller error (mirrors picker.py's
// pick_module_by_params, where params[k] raises KeyError for the same
// case) rather than a silently-ignored constraint.
func optionPredicate(o PickerOption, params map[string]module.Parameter) (predicate.Predicate, error) {
	var terms []predicate.Predicate
	for k, v := range o.Params {
		if strings.HasPrefix(k, "_") {
			continue
		}
		param, ok := params[k]
		if !ok {
			return nil, fmt.Errorf("option %q references unknown parameter %q", o.Key(), k)
		}
		terms = append(terms, predicate.Is(param, v))
	}
	if len(terms) == 0 {
		return predicate.Tautology, nil
	}
	return predicate.And(terms...), nil
}

// attachPinMapHook lets a host wire pin-map attachment (normally
// can_attach_to_footprint_via_pinmap) without this package depending on
// footprint machinery, which is out of scope here.
var attachPinMapHook func(m module.Module, pins PinMap)

// SetPinMapHook installs the host's pin-map attachment function.
func SetPinMapHook(fn func(m module.Module, pins PinMap)) { attachPinMapHook = fn }

func attachPinMap(m module.Module, pins PinMap) {
	if attachPinMapHook != nil {
		attachPinMapHook(m, pins)
	}
}
