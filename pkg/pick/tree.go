package pick

import (
	"strings"

	"github.com/atopile/partpick/pkg/module"
)

// Tree is the pick-tree: an ordered map from a pickable module to the
// subtree of its descendants that become candidates if picking module
// itself fails. Ordering is insertion order, mirrored from the Python
// original's reliance on dict insertion order for traversal and popitem.
type Tree struct {
	order   []module.Module
	entries map[module.Module]*Tree
}

// NewTree returns an empty pick-tree.
func NewTree() *Tree {
	return &Tree{entries: make(map[module.Module]*Tree)}
}

// Set inserts or replaces the subtree for m, appending m to the insertion
// order if it is new.
func (t *Tree) Set(m module.Module, sub *Tree) {
	if _, ok := t.entries[m]; !ok {
		t.order = append(t.order, m)
	}
	t.entries[m] = sub
}

// Get returns the subtree for m, if present.
func (t *Tree) Get(m module.Module) (*Tree, bool) {
	sub, ok := t.entries[m]
	return sub, ok
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree) IsEmpty() bool { return len(t.order) == 0 }

// Update merges other into t, appending any of other's top-level entries
// not already present and overwriting ones that are.
func (t *Tree) Update(other *Tree) {
	if other == nil {
		return
	}
	for _, m := range other.order {
		t.Set(m, other.entries[m])
	}
}

// Copy returns a shallow copy of t: same modules and subtree pointers, but
// an independent order slice and entries map so popping from the copy
// doesn't mutate t.
func (t *Tree) Copy() *Tree {
	c := &Tree{
		order:   append([]module.Module(nil), t.order...),
		entries: make(map[module.Module]*Tree, len(t.entries)),
	}
	for m, sub := range t.entries {
		c.entries[m] = sub
	}
	return c
}

// PopLast removes and returns the most recently inserted entry, mirroring
// Python dict.popitem's LIFO behavior. ok is false if the tree is empty.
func (t *Tree) PopLast() (m module.Module, sub *Tree, ok bool) {
	if len(t.order) == 0 {
		return nil, nil, false
	}
	last := len(t.order) - 1
	m = t.order[last]
	sub = t.entries[m]
	t.order = t.order[:last]
	delete(t.entries, m)
	return m, sub, true
}

// TopLevel returns the tree's top-level modules in insertion order.
func (t *Tree) TopLevel() []module.Module {
	return append([]module.Module(nil), t.order...)
}

// Len returns the number of top-level entries currently queued.
func (t *Tree) Len() int { return len(t.order) }

// Leaves returns every module in the tree with no further subtree entries
// of its own, collected depth-first.
func (t *Tree) Leaves() []module.Module {
	var out []module.Module
	for _, m := range t.order {
		sub := t.entries[m]
		if sub == nil || sub.IsEmpty() {
			out = append(out, m)
			continue
		}
		out = append(out, sub.Leaves()...)
	}
	return out
}

// GetSubtree returns the subtree rooted at m anywhere within t, searching
// depth-first. ok is false if m is not present.
func (t *Tree) GetSubtree(m module.Module) (*Tree, bool) {
	if sub, ok := t.entries[m]; ok {
		return sub, true
	}
	for _, child := range t.order {
		if sub, ok := t.entries[child]; ok && sub != nil {
			if found, ok := sub.GetSubtree(m); ok {
				return found, true
			}
		}
	}
	return nil, false
}

// Pretty renders the tree for diagnostics.
func (t *Tree) Pretty() string {
	var b strings.Builder
	t.pretty(&b, 0)
	return b.String()
}

func (t *Tree) pretty(b *strings.Builder, depth int) {
	for _, m := range t.order {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(m.String())
		b.WriteString("\n")
		if sub := t.entries[m]; sub != nil {
			sub.pretty(b, depth+1)
		}
	}
}

// GetPickTree builds the pick-tree rooted at m: every module carrying
// TraitHasPicker (and not TraitSkipSelfPick) becomes a node, nested under
// its own ancestor pickable nodes; already-picked subtrees are pruned
// entirely. ModuleInterface containers attached directly to m are walked
// through transparently: the Modules they bundle are folded into this same
// tree level, and the container itself never becomes a node.
func GetPickTree(m module.Module) *Tree {
	root := m.MostSpecial()
	tree := NewTree()

	if root.HasTrait(TraitHasPartPicked) {
		return tree
	}

	mergeInto := tree
	if root.HasTrait(TraitHasPicker) && !root.HasTrait(TraitSkipSelfPick) {
		mergeInto = NewTree()
		tree.Set(root, mergeInto)
	}

	for _, child := range root.Children(true, true) {
		mergeInto.Update(GetPickTree(child))
	}
	for _, iface := range root.Interfaces(true) {
		for _, child := range iface.Children(true) {
			mergeInto.Update(GetPickTree(child))
		}
	}

	return tree
}
