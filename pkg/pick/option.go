// Package pick implements the part-picking control flow: candidate options,
// the pick-tree, the topological picker that drives pick attempts across
// it, and the parameter-predicate picker that turns a candidate list into
// solver predicates. See SPEC_FULL.md §4.6-§4.8.
package pick

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atopile/partpick/pkg/module"
	"github.com/atopile/partpick/pkg/numset"
)

// DescriptiveProperty names a well-known PickerOption.Info key.
type DescriptiveProperty string

const (
	PropManufacturer DescriptiveProperty = "Manufacturer"
	PropPartNumber   DescriptiveProperty = "Partnumber"
	PropDatasheet    DescriptiveProperty = "Datasheet"
)

// Supplier attaches a part's supplier-specific data onto a module. Attach
// may be a no-op for the "remove" pseudo-part (see NoPickNeeded).
type Supplier interface {
	Attach(m module.Module, option PickerOption) error
}

// Part is a unique part identifier plus the supplier that can attach it.
type Part struct {
	PartNumber string
	Supplier   Supplier
}

// PinMap maps a logical pin name to an electrical interface identifier on
// the host's footprint machinery. The concrete interface type is opaque to
// this engine; only the mapping's existence matters for step 4.8.9.
type PinMap map[string]string

// PickerOption is one candidate binding for a module. Equality and hashing
// are by Part alone — two options for the same part are the same option
// for the purposes of candidate deduplication.
type PickerOption struct {
	Part Part

	// Params are narrowest-possible constraints the solver must prove
	// satisfiable for this option to be valid. Keys starting with "_" are a
	// private-prefix convention and are never turned into predicates.
	Params map[string]numset.SetLiteral

	// Filter excludes this option for modules it returns false for. Nil
	// means the option is never filtered out.
	Filter func(module.Module) bool

	PinMap PinMap
	Info   map[DescriptiveProperty]string
}

// Key returns the value PickerOption equality/hashing is defined over.
func (o PickerOption) Key() string {
	return o.Part.PartNumber
}

// DescribeInfo renders a descriptive-property map in a stable order
// (manufacturer, part number, datasheet, then any other keys alphabetically)
// for diagnostic and demonstrator output.
func DescribeInfo(info map[DescriptiveProperty]string) string {
	if len(info) == 0 {
		return ""
	}

	ordered := []DescriptiveProperty{PropManufacturer, PropPartNumber, PropDatasheet}
	seen := make(map[DescriptiveProperty]bool, len(ordered))

	var b strings.Builder
	write := func(key DescriptiveProperty) {
		v, ok := info[key]
		if !ok || seen[key] {
			return
		}
		seen[key] = true
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%s", key, v)
	}

	for _, key := range ordered {
		write(key)
	}

	var rest []DescriptiveProperty
	for key := range info {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	for _, key := range rest {
		write(key)
	}

	return b.String()
}
