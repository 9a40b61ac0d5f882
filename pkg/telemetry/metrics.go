package telemetry

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes the picker engine's Prometheus gauges: how many
// pick-tree candidates are still queued, and how many leaf modules remain
// unpicked. Both track PickerProgress's bookkeeping, which stays correct
// even when progress reporting itself is silenced.
type Metrics struct {
	QueueDepth      prometheus.Gauge
	LeavesRemaining prometheus.Gauge
}

// NewMetrics registers the picker engine's gauges against reg. Pass
// prometheus.NewRegistry() for an isolated registry, or nil to use the
// default global one.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		QueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "partpick",
			Subsystem: "picker",
			Name:      "queue_depth",
			Help:      "Number of pick-tree candidates still queued for a pick attempt.",
		}),
		LeavesRemaining: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "partpick",
			Subsystem: "picker",
			Name:      "leaves_remaining",
			Help:      "Number of leaf modules not yet successfully picked.",
		}),
	}

	reg.MustRegister(m.QueueDepth, m.LeavesRemaining)
	return m
}

// SetQueueDepth records the current candidate queue depth.
func (m *Metrics) SetQueueDepth(n int) {
	if m == nil {
		return
	}
	m.QueueDepth.Set(float64(n))
}

// SetLeavesRemaining records the current unpicked-leaf count.
func (m *Metrics) SetLeavesRemaining(n int) {
	if m == nil {
		return
	}
	m.LeavesRemaining.Set(float64(n))
}
