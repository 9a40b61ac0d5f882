package pick

import (
	"context"

	"github.com/atopile/partpick/pkg/module"
	"github.com/atopile/partpick/pkg/predicate"
)

// PickTopologically drains candidates from tree, attempting each module's
// picker trait. A module whose pick fails but has a non-empty subtree is
// recoverable: its children are folded back into the candidate set and
// picking continues there instead. A failure with no subtree to descend
// into propagates.
//
// ctx is checked once per working-set pop for upstream cancellation. On
// cancellation PickTopologically returns ctx.Err() directly (not wrapped as
// a PickError), with no partial-commit recovery attempted.
func PickTopologically(ctx context.Context, tree *Tree, solver predicate.Solver, progress *PickerProgress) error {
	candidates := tree.Copy()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		progress.SetQueueDepth(candidates.Len())

		m, sub, ok := candidates.PopLast()
		if !ok {
			break
		}

		trait, found := m.GetTrait(TraitHasPicker)
		if !found {
			return NewPickErrorNotImplemented(m)
		}
		picker, ok := trait.(HasPicker)
		if !ok {
			return NewPickErrorNotImplemented(m)
		}

		err := picker.Pick(m, solver)
		if err == nil {
			progress.Advance(m)
			continue
		}

		if _, recoverable := asPickError(err); !recoverable {
			return err
		}
		if sub == nil || sub.IsEmpty() {
			return err
		}
		candidates.Update(sub)
	}

	return nil
}

type pickErrorLike interface{ isPickError() }

func asPickError(err error) (pickErrorLike, bool) {
	p, ok := err.(pickErrorLike)
	return p, ok
}

// CheckMissingPicks logs a warning (via the given sink) for every leaf
// module under m that has no picker, hasn't been picked, and isn't
// deliberately skipped — i.e. modules that would silently vanish from any
// downstream netlist or board. Modules with a footprint at least keep their
// physical presence; modules without one disappear entirely, which is
// reported at a higher severity.
func CheckMissingPicks(m module.Module, warn func(msg string)) {
	var missing []module.Module
	collectMissingPicks(m, &missing)

	if len(missing) == 0 {
		return
	}

	var withFootprint, withoutFootprint []module.Module
	for _, mm := range missing {
		if mm.HasTrait(TraitHasFootprint) {
			withFootprint = append(withFootprint, mm)
		} else {
			withoutFootprint = append(withoutFootprint, mm)
		}
	}

	if len(withFootprint) > 0 {
		warn(formatMissing("no pickers for", withFootprint))
	}
	if len(withoutFootprint) > 0 {
		warn(formatMissing("no pickers and no footprint for (will not appear in netlist or board)", withoutFootprint))
	}
}

func collectMissingPicks(m module.Module, out *[]module.Module) {
	most := m.MostSpecial()

	if isMissingPick(most) {
		*out = append(*out, most)
	}
	for _, child := range most.Children(false, true) {
		collectMissingPicks(child, out)
	}
}

func isMissingPick(m module.Module) bool {
	if len(m.Children(false, true)) != 0 {
		return false
	}
	if m.HasTrait(TraitHasPartPicked) || m.HasTrait(TraitHasPicker) {
		return false
	}
	if _, ok := m.ParentWithTrait(TraitHasPartPicked); ok {
		return false
	}
	if m.HasTrait(TraitSkipSelfPick) {
		return false
	}
	if _, ok := m.ParentWithTrait(TraitHasPicker); ok {
		return false
	}
	return true
}

func formatMissing(prefix string, ms []module.Module) string {
	s := prefix + ": "
	for i, m := range ms {
		if i > 0 {
			s += ", "
		}
		s += m.String()
	}
	return s
}
