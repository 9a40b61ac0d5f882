package pick

import "github.com/atopile/partpick/pkg/module"

// ProgressSink receives leaf-count advances and working-set size updates as
// the topological picker resolves modules. Implementations (text logger,
// prometheus gauge, JSON lines, or all three) live in pkg/telemetry; this
// package only counts.
type ProgressSink interface {
	Advance(n int)
	SetQueueDepth(n int)
}

// noopSink discards progress, used when the caller doesn't want any.
type noopSink struct{}

func (noopSink) Advance(int)      {}
func (noopSink) SetQueueDepth(int) {}

// NoopProgressSink is a ProgressSink that does nothing.
var NoopProgressSink ProgressSink = noopSink{}

// PickerProgress tracks how many of a pick-tree's leaves remain, reporting
// each advance to a sink. Bookkeeping always reflects the true remaining
// count, independent of whether the sink renders anything.
type PickerProgress struct {
	tree  *Tree
	sink  ProgressSink
	total int
}

// NewPickerProgress seeds a progress tracker from tree's leaf count.
func NewPickerProgress(tree *Tree, sink ProgressSink) *PickerProgress {
	if sink == nil {
		sink = NoopProgressSink
	}
	return &PickerProgress{tree: tree, sink: sink, total: len(tree.Leaves())}
}

// Total is the pick-tree's leaf count at construction time.
func (p *PickerProgress) Total() int { return p.total }

// SetQueueDepth reports how many candidates remain in the topological
// picker's working set.
func (p *PickerProgress) SetQueueDepth(n int) {
	p.sink.SetQueueDepth(n)
}

// Advance reports that module was successfully picked, crediting the sink
// with the number of leaves that resolving module accounted for (itself,
// if it is a leaf; otherwise its whole subtree).
func (p *PickerProgress) Advance(m module.Module) {
	sub, ok := p.tree.GetSubtree(m)
	n := 0
	if ok && sub != nil {
		n = len(sub.Leaves())
	}
	if n == 0 {
		n = 1
	}
	p.sink.Advance(n)
}
