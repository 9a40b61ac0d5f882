package pick

import (
	"fmt"
	"strings"

	"github.com/atopile/partpick/pkg/module"
	"github.com/atopile/partpick/pkg/predicate"
)

// PickError is the base of the picker's error taxonomy. All picker failures
// carry the module they were raised against so callers can report context
// without re-walking the tree.
type PickError struct {
	Msg    string
	Module module.Module
}

func (e *PickError) Error() string { return e.Msg }

// isPickError lets the topological picker distinguish a pick failure (which
// it may recover from by descending into children) from any other error a
// picker trait might return.
func (e *PickError) isPickError() {}

// ModuleOf satisfies callers that only have an error and want the module back
// via errors.As, without exporting the concrete PickError type everywhere.
func (e *PickError) ModuleOf() module.Module { return e.Module }

func newPickError(m module.Module, msg string) *PickError {
	return &PickError{Msg: msg, Module: m}
}

// PickErrorNotImplemented reports that a module has no usable picker;
// PickTopologically raises it for a module without a HasPicker trait.
type PickErrorNotImplemented struct {
	*PickError
}

func NewPickErrorNotImplemented(m module.Module) *PickErrorNotImplemented {
	return &PickErrorNotImplemented{newPickError(m, fmt.Sprintf("could not pick part for %s: not implemented", m))}
}

// PickErrorParams is raised when no offered PickerOption's parameter
// predicates could be satisfied by the solver. The diagnostic dump is
// truncated to maxParamsDump options to keep error output bounded.
type PickErrorParams struct {
	*PickError
	Options []PickerOption
}

// maxParamsDump bounds how many candidate options NewPickErrorParams dumps
// into a diagnostic message. Overridable via SetMaxParamsDump from loaded
// configuration (config.PickerConfig.MaxParamsDump); defaults to the
// original picker's MAX = 5.
var maxParamsDump = 5

// SetMaxParamsDump overrides maxParamsDump. Intended to be called once at
// startup from loaded configuration.
func SetMaxParamsDump(n int) {
	maxParamsDump = n
}

func NewPickErrorParams(m module.Module, options []PickerOption, solver predicate.Solver) *PickErrorParams {
	var b strings.Builder
	n := len(options)
	if n > maxParamsDump {
		n = maxParamsDump
	}
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%+v\n", options[i].Params)
	}
	if len(options) > maxParamsDump {
		fmt.Fprintf(&b, "... and %d more\n", len(options)-maxParamsDump)
	}

	msg := fmt.Sprintf(
		"could not find part for %s\nwith params:\n    %s\nin options:\n    %s",
		m, indent(m.PrettyParams(solver), "    "), indent(b.String(), "    "),
	)
	return &PickErrorParams{newPickError(m, msg), options}
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

// PickErrorChildren aggregates the failures of a module's children. Nested
// PickErrorChildren are flattened so GetAllChildren always yields leaf
// failures, never intermediate aggregates.
type PickErrorChildren struct {
	*PickError
	Children map[module.Module]error
}

func NewPickErrorChildren(m module.Module, children map[module.Module]error) *PickErrorChildren {
	all := flattenChildren(children)
	var b strings.Builder
	fmt.Fprintf(&b, "could not pick parts for children of %s:\n", m)
	for cm, cerr := range all {
		fmt.Fprintf(&b, "%s: caused by %s\n", cm, cerr)
	}
	return &PickErrorChildren{newPickError(m, b.String()), children}
}

// GetAllChildren flattens nested PickErrorChildren so every entry is a leaf
// failure, mirroring the original picker's get_all_children.
func (e *PickErrorChildren) GetAllChildren() map[module.Module]error {
	return flattenChildren(e.Children)
}

func flattenChildren(children map[module.Module]error) map[module.Module]error {
	out := make(map[module.Module]error)
	for m, err := range children {
		var nested *PickErrorChildren
		if asPickErrorChildren(err, &nested) {
			for nm, nerr := range nested.GetAllChildren() {
				out[nm] = nerr
			}
			continue
		}
		out[m] = err
	}
	return out
}

func asPickErrorChildren(err error, target **PickErrorChildren) bool {
	if pec, ok := err.(*PickErrorChildren); ok {
		*target = pec
		return true
	}
	return false
}
