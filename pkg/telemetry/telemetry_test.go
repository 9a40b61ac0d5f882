package telemetry

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestLoggerWritesMessages(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelDebug, Format: LogFormatJSON, Output: &buf})

	logger.Infof("picking %s", "R1")
	if !strings.Contains(buf.String(), "picking R1") {
		t.Errorf("expected log output to contain message, got %q", buf.String())
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelWarn, Format: LogFormatJSON, Output: &buf})

	logger.Debugf("should not appear")
	if buf.Len() != 0 {
		t.Errorf("expected debug message to be filtered at warn level, got %q", buf.String())
	}

	logger.Warnf("should appear")
	if buf.Len() == 0 {
		t.Error("expected warn message to pass the warn level filter")
	}
}

func TestProgressReporterTextTracksRemaining(t *testing.T) {
	var buf bytes.Buffer
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	pr := NewProgressReporter(FormatText, 3, metrics)
	pr.out = &buf

	pr.Advance(1)
	pr.Advance(2)

	if !strings.Contains(buf.String(), "0/3 remaining") {
		t.Errorf("expected final report to show 0 remaining, got %q", buf.String())
	}
	if got := testutil.ToFloat64(metrics.LeavesRemaining); got != 0 {
		t.Errorf("expected leaves_remaining gauge = 0, got %v", got)
	}
}

func TestProgressReporterSetQueueDepthUpdatesGauge(t *testing.T) {
	metrics := NewMetrics(prometheus.NewRegistry())
	pr := NewProgressReporter(FormatNone, 2, metrics)

	pr.SetQueueDepth(5)
	if got := testutil.ToFloat64(metrics.QueueDepth); got != 5 {
		t.Errorf("expected queue_depth gauge = 5, got %v", got)
	}

	pr.SetQueueDepth(1)
	if got := testutil.ToFloat64(metrics.QueueDepth); got != 1 {
		t.Errorf("expected queue_depth gauge = 1, got %v", got)
	}
}

func TestProgressReporterNoneSuppressesOutputButKeepsBookkeeping(t *testing.T) {
	var buf bytes.Buffer
	metrics := NewMetrics(prometheus.NewRegistry())
	pr := NewProgressReporter(FormatNone, 2, metrics)
	pr.out = &buf

	pr.Advance(2)

	if buf.Len() != 0 {
		t.Errorf("expected no output for FormatNone, got %q", buf.String())
	}
	if got := testutil.ToFloat64(metrics.LeavesRemaining); got != 0 {
		t.Errorf("expected gauge to still track to 0, got %v", got)
	}
}
