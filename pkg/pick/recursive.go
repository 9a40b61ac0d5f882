package pick

import (
	"context"

	"github.com/atopile/partpick/pkg/module"
	"github.com/atopile/partpick/pkg/predicate"
)

// Logger is the narrow logging surface this package needs, satisfied by
// pkg/telemetry's zerolog-backed logger.
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Infof(format string, args ...any)
}

// PickPartRecursively is the engine's top-level entry point: it builds the
// pick tree rooted at m, audits it for modules that would silently end up
// unpicked, then drives the topological picker across it, reporting
// progress to sink and logging via log. ctx carries upstream cancellation
// through to PickTopologically.
func PickPartRecursively(ctx context.Context, m module.Module, solver predicate.Solver, log Logger, sink ProgressSink) error {
	tree := GetPickTree(m)
	log.Infof("pick tree:\n%s", tree.Pretty())

	CheckMissingPicks(m, func(msg string) { log.Warnf("%s", msg) })

	progress := NewPickerProgress(tree, sink)
	err := PickTopologically(ctx, tree, solver, progress)
	if err == nil {
		return nil
	}

	var pec *PickErrorChildren
	if asErr, ok := err.(*PickErrorChildren); ok {
		pec = asErr
		for cm, cerr := range pec.GetAllChildren() {
			log.Errorf("could not find pick for %s:\n %s\nparams:\n%s", cm, cerr, indent(cm.PrettyParams(solver), "    "))
		}
	}
	return err
}
