package main

import (
	"context"
	"fmt"

	"github.com/atopile/partpick/pkg/module"
	"github.com/atopile/partpick/pkg/numset"
	"github.com/atopile/partpick/pkg/pick"
	"github.com/atopile/partpick/pkg/predicate"
	"github.com/atopile/partpick/pkg/telemetry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Args:  cobra.NoArgs,
	Short: "Build a toy module graph and run the picker against it",
	RunE:  runDemo,
}

func init() {
	runCmd.Flags().String("format", "", "progress output format (text, json, none); overrides config's progress.format")
}

func runDemo(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	numset.SetTolerance(cfg.Tolerance.RelDigits, cfg.Tolerance.AbsDigits)
	pick.SetMaxParamsDump(cfg.Picker.MaxParamsDump)

	logLevel := telemetry.LogLevelInfo
	if verbose {
		logLevel = telemetry.LogLevelDebug
	}
	logger := telemetry.NewLogger(telemetry.LoggerConfig{
		Level:  logLevel,
		Format: telemetry.LogFormat(cfg.Framework.LogFormat),
	})

	if !cfg.Progress.Enabled {
		format = string(telemetry.FormatNone)
	} else if format == "" {
		format = cfg.Progress.Format
	}

	board := buildDemoGraph()

	metrics := telemetry.NewMetrics(prometheus.NewRegistry())
	solver := &demoSolver{}

	tree := pick.GetPickTree(board)
	progress := telemetry.NewProgressReporter(telemetry.OutputFormat(format), len(tree.Leaves()), metrics)

	if err := pick.PickPartRecursively(context.Background(), board, solver, logger, progress); err != nil {
		logger.Errorf("pick failed: %v", err)
		return err
	}

	logger.Infof("pick complete")
	for _, m := range tree.Leaves() {
		dm := m.(*demoModule)
		trait, ok := dm.GetTrait(pick.TraitHasPartPicked)
		if !ok {
			continue
		}
		picked := trait.(pick.HasPartPicked)
		if info := pick.DescribeInfo(picked.GetInfo()); info != "" {
			fmt.Printf("%s -> %s (%s)\n", dm.name, picked.GetPart().PartNumber, info)
		} else {
			fmt.Printf("%s -> %s\n", dm.name, picked.GetPart().PartNumber)
		}
	}
	return nil
}

// buildDemoGraph assembles a tiny board with two resistors, each carrying a
// resistance parameter and a picker trait that delegates to the
// parameter-predicate picker over two candidate values.
func buildDemoGraph() *demoModule {
	r1 := newDemoModule("R1")
	r1.params = []module.Parameter{demoParameter{"resistance"}}
	attachResistorPicker(r1)

	r2 := newDemoModule("R2")
	r2.params = []module.Parameter{demoParameter{"resistance"}}
	attachResistorPicker(r2)

	return newDemoModule("board", r1, r2)
}

// attachResistorPicker offers both a 100R and a 1k candidate; the toy
// always-satisfiable solver accepts every predicate in the order offered, so
// the outcome here simply demonstrates that the first valid option wins.
func attachResistorPicker(m *demoModule) {
	options := []pick.PickerOption{
		{
			Part:   pick.Part{PartNumber: "R-100-1pct", Supplier: demoSupplier{}},
			Params: map[string]numset.SetLiteral{"resistance": numset.IntervalLiteral(numset.MustInterval(99, 101))},
			Info: map[pick.DescriptiveProperty]string{
				pick.PropManufacturer: "Yageo",
				pick.PropDatasheet:    "https://www.yageo.com/upload/media/product/datasheets/PYu-RC_Group_51_RoHS_L_12.pdf",
			},
		},
		{
			Part:   pick.Part{PartNumber: "R-1k-1pct", Supplier: demoSupplier{}},
			Params: map[string]numset.SetLiteral{"resistance": numset.IntervalLiteral(numset.MustInterval(990, 1010))},
			Info: map[pick.DescriptiveProperty]string{
				pick.PropManufacturer: "Yageo",
				pick.PropDatasheet:    "https://www.yageo.com/upload/media/product/datasheets/PYu-RC_Group_51_RoHS_L_12.pdf",
			},
		},
	}

	m.Add(pick.NewFunctionPicker(func(mm module.Module, solver predicate.Solver) error {
		_, err := pick.PickModuleByParams(mm, solver, options)
		return err
	}))
}
