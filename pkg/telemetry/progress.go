package telemetry

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// OutputFormat is a progress-reporting output format.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatNone OutputFormat = "none"
)

// ProgressReporter implements pkg/pick.ProgressSink: it turns leaf-count
// advances into human or machine-readable output, and (if metrics is
// non-nil) into the leaves_remaining gauge. Bookkeeping of the remaining
// count is always correct, independent of whether format is FormatNone.
type ProgressReporter struct {
	format  OutputFormat
	out     io.Writer
	total   int
	done    int
	metrics *Metrics
}

// NewProgressReporter builds a reporter seeded with total leaves.
func NewProgressReporter(format OutputFormat, total int, metrics *Metrics) *ProgressReporter {
	return &ProgressReporter{format: format, out: os.Stdout, total: total, metrics: metrics}
}

// Advance records that n more leaves were resolved.
func (pr *ProgressReporter) Advance(n int) {
	pr.done += n
	remaining := pr.total - pr.done
	if remaining < 0 {
		remaining = 0
	}
	pr.metrics.SetLeavesRemaining(remaining)

	switch pr.format {
	case FormatJSON:
		pr.reportJSON(remaining)
	case FormatNone:
	default:
		pr.reportText(remaining)
	}
}

// SetQueueDepth records the topological picker's current working-set size.
func (pr *ProgressReporter) SetQueueDepth(n int) {
	pr.metrics.SetQueueDepth(n)
}

func (pr *ProgressReporter) reportText(remaining int) {
	fmt.Fprintf(pr.out, "[%s] picking: %d/%d remaining\n", time.Now().Format("15:04:05"), remaining, pr.total)
}

func (pr *ProgressReporter) reportJSON(remaining int) {
	data, err := json.Marshal(map[string]any{
		"event":     "pick_progress",
		"total":     pr.total,
		"done":      pr.done,
		"remaining": remaining,
	})
	if err != nil {
		return
	}
	fmt.Fprintln(pr.out, string(data))
}
