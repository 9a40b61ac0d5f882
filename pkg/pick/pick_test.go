package pick

import (
	"context"
	"errors"
	"testing"

	"github.com/atopile/partpick/pkg/module"
	"github.com/atopile/partpick/pkg/numset"
	"github.com/atopile/partpick/pkg/predicate"
)

func TestGetPickTreeSkipsAlreadyPicked(t *testing.T) {
	picked := newFakeModule("resistor")
	picked.Add(NewHasPartPickedDefined(Part{PartNumber: "R1"}, nil))

	tree := GetPickTree(picked)
	if !tree.IsEmpty() {
		t.Errorf("expected empty tree for an already-picked module, got %v", tree.TopLevel())
	}
}

func TestGetPickTreeNestsUnderPickableAncestor(t *testing.T) {
	leaf := newFakeModule("leaf")
	leaf.Add(funcPickerOK())

	root := newFakeModule("root", leaf)
	root.Add(funcPickerOK())

	tree := GetPickTree(root)
	top := tree.TopLevel()
	if len(top) != 1 || top[0] != module.Module(root) {
		t.Fatalf("expected root as sole top-level entry, got %v", top)
	}
	sub, _ := tree.Get(root)
	if sub.IsEmpty() {
		t.Error("expected leaf nested under root's subtree")
	}
}

func TestGetPickTreeSkipsSelfPickContainer(t *testing.T) {
	leaf := newFakeModule("leaf")
	leaf.Add(funcPickerOK())

	container := newFakeModule("container", leaf)
	container.Add(funcPickerOK())
	container.Add(skipSelfPickTrait{})

	tree := GetPickTree(container)
	top := tree.TopLevel()
	if len(top) != 1 || top[0] != module.Module(leaf) {
		t.Fatalf("expected leaf promoted to top level past skip-self-pick container, got %v", top)
	}
}

func TestGetPickTreeDescendsThroughModuleInterface(t *testing.T) {
	bundled := newFakeModule("bundled")
	bundled.Add(funcPickerOK())

	root := newFakeModule("root")
	root.interfaces = []*fakeModuleInterface{{modules: []*fakeModule{bundled}}}

	tree := GetPickTree(root)
	top := tree.TopLevel()
	if len(top) != 1 || top[0] != module.Module(bundled) {
		t.Fatalf("expected the interface-bundled module promoted to top level, got %v", top)
	}
}

type skipSelfPickTrait struct{}

func (skipSelfPickTrait) TraitKey() module.TraitKey { return TraitSkipSelfPick }

func TestLeaves(t *testing.T) {
	tree := NewTree()
	a := newFakeModule("a")
	b := newFakeModule("b")
	sub := NewTree()
	sub.Set(b, NewTree())
	tree.Set(a, sub)

	leaves := tree.Leaves()
	if len(leaves) != 1 || leaves[0] != module.Module(b) {
		t.Errorf("Leaves() = %v, want [b]", leaves)
	}
}

func TestPickTopologicallySucceeds(t *testing.T) {
	m := newFakeModule("r1")
	m.Add(funcPickerOK())

	tree := NewTree()
	tree.Set(m, NewTree())

	progress := NewPickerProgress(tree, NoopProgressSink)
	solver := newFakeSolver()
	if err := PickTopologically(context.Background(), tree, solver, progress); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPickTopologicallyDescendsOnFailure(t *testing.T) {
	child := newFakeModule("child")
	child.Add(funcPickerOK())

	parent := newFakeModule("parent", child)
	parent.Add(funcPickerFail())

	tree := NewTree()
	subtree := NewTree()
	subtree.Set(child, NewTree())
	tree.Set(parent, subtree)

	progress := NewPickerProgress(tree, NoopProgressSink)
	solver := newFakeSolver()
	if err := PickTopologically(context.Background(), tree, solver, progress); err != nil {
		t.Fatalf("expected recovery via child, got error: %v", err)
	}
}

func TestPickTopologicallyPropagatesLeafFailure(t *testing.T) {
	m := newFakeModule("lonely")
	m.Add(funcPickerFail())

	tree := NewTree()
	tree.Set(m, NewTree())

	progress := NewPickerProgress(tree, NoopProgressSink)
	solver := newFakeSolver()
	err := PickTopologically(context.Background(), tree, solver, progress)
	if err == nil {
		t.Fatal("expected error for unpickable leaf")
	}
	var pe *PickErrorNotImplemented
	if !errors.As(err, &pe) {
		t.Errorf("expected *PickErrorNotImplemented, got %T", err)
	}
}

func TestPickTopologicallyReturnsContextErrOnCancellation(t *testing.T) {
	m := newFakeModule("r1")
	m.Add(funcPickerOK())

	tree := NewTree()
	tree.Set(m, NewTree())

	progress := NewPickerProgress(tree, NoopProgressSink)
	solver := newFakeSolver()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := PickTopologically(ctx, tree, solver, progress)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if m.HasTrait(TraitHasPartPicked) {
		t.Error("expected no pick attempt once the context is already cancelled")
	}
}

func funcPickerOK() HasPicker {
	return NewFunctionPicker(func(m module.Module, s predicate.Solver) error { return nil })
}

func funcPickerFail() HasPicker {
	return NewFunctionPicker(func(m module.Module, s predicate.Solver) error {
		return NewPickErrorNotImplemented(m)
	})
}

func TestPickModuleByParamsAttachesFirstValidOption(t *testing.T) {
	m := newFakeModule("resistor")
	m.params = []module.Parameter{fakeParam{"resistance"}}

	lowOhm := numset.IntervalLiteral(numset.MustInterval(90, 110))
	highOhm := numset.IntervalLiteral(numset.MustInterval(990, 1010))

	low := PickerOption{
		Part:   Part{PartNumber: "R-100", Supplier: &fakeSupplier{}},
		Params: map[string]numset.SetLiteral{"resistance": lowOhm},
	}
	high := PickerOption{
		Part:   Part{PartNumber: "R-1k", Supplier: &fakeSupplier{}},
		Params: map[string]numset.SetLiteral{"resistance": highOhm},
	}

	solver := newFakeSolver(predicateStringFor("resistance", lowOhm))

	picked, err := PickModuleByParams(m, solver, []PickerOption{low, high})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if picked.Part.PartNumber != "R-1k" {
		t.Errorf("expected the non-rejected option to win, got %s", picked.Part.PartNumber)
	}
	if !m.HasTrait(TraitHasPartPicked) {
		t.Error("expected module to carry has_part_picked after a successful pick")
	}
}

func TestPickModuleByParamsNoValidOption(t *testing.T) {
	m := newFakeModule("resistor")
	m.params = []module.Parameter{fakeParam{"resistance"}}

	lit := numset.IntervalLiteral(numset.MustInterval(90, 110))
	opt := PickerOption{
		Part:   Part{PartNumber: "R-100", Supplier: &fakeSupplier{}},
		Params: map[string]numset.SetLiteral{"resistance": lit},
	}

	solver := newFakeSolver(predicateStringFor("resistance", lit))
	_, err := PickModuleByParams(m, solver, []PickerOption{opt})
	var pe *PickErrorParams
	if !errors.As(err, &pe) {
		t.Fatalf("expected *PickErrorParams, got %v", err)
	}
}

func TestPickModuleByParamsAlreadyPickedIsNoop(t *testing.T) {
	m := newFakeModule("resistor")
	m.Add(NewHasPartPickedDefined(Part{PartNumber: "R1"}, nil))

	opt, err := PickModuleByParams(m, newFakeSolver(), []PickerOption{{Part: Part{PartNumber: "R2"}}})
	if err != nil || opt != nil {
		t.Errorf("expected no-op for already-picked module, got opt=%v err=%v", opt, err)
	}
}

func predicateStringFor(paramName string, lit numset.SetLiteral) string {
	return "(" + paramName + " is " + lit.String() + ")"
}

func TestPickErrorChildrenFlattensNested(t *testing.T) {
	leafA := newFakeModule("a")
	leafB := newFakeModule("b")
	midModule := newFakeModule("mid")
	inner := NewPickErrorChildren(midModule, map[module.Module]error{
		leafB: NewPickErrorNotImplemented(leafB),
	})
	outer := NewPickErrorChildren(newFakeModule("root"), map[module.Module]error{
		leafA:     NewPickErrorNotImplemented(leafA),
		midModule: inner,
	})

	all := outer.GetAllChildren()
	if _, ok := all[leafA]; !ok {
		t.Error("expected leafA in flattened children")
	}
	if _, ok := all[leafB]; !ok {
		t.Error("expected leafB surfaced from nested PickErrorChildren")
	}
	for m := range all {
		if _, isChildren := all[m].(*PickErrorChildren); isChildren {
			t.Errorf("flattened map should contain no nested PickErrorChildren, found one for %v", m)
		}
	}
}

func TestCheckMissingPicksWarnsForLeafWithoutPicker(t *testing.T) {
	orphan := newFakeModule("orphan")
	root := newFakeModule("root", orphan)

	var warnings []string
	CheckMissingPicks(root, func(msg string) { warnings = append(warnings, msg) })

	if len(warnings) == 0 {
		t.Error("expected a warning for an unpicked, pickerless leaf")
	}
}

func TestCheckMissingPicksSkipsModulesUnderPicker(t *testing.T) {
	leaf := newFakeModule("leaf")
	parent := newFakeModule("parent", leaf)
	parent.Add(funcPickerOK())

	var warnings []string
	CheckMissingPicks(parent, func(msg string) { warnings = append(warnings, msg) })

	if len(warnings) != 0 {
		t.Errorf("expected no warnings once an ancestor has a picker, got %v", warnings)
	}
}
